// Package cache holds read-through caches in front of repositories.
package cache

import (
	"context"
	"slices"
	"strconv"
	"sync"
	"time"

	gocache "github.com/patrickmn/go-cache"

	"clicktracker/internal/core/domain"
	"clicktracker/internal/core/port"
)

// CampaignCache wraps a port.CampaignRepository and caches GetCampaign
// results for ttl. Writes going through the cache evict the entry; writes
// made elsewhere become visible once the entry expires.
//
// Every write bumps a per-campaign generation. A read that started before
// the bump does not store its result, so an evicted campaign cannot be
// put back with its old value.
type CampaignCache struct {
	port.CampaignRepository
	cache *gocache.Cache

	mu  sync.Mutex
	gen map[int64]uint64
}

func NewCampaignCache(repo port.CampaignRepository, ttl time.Duration) *CampaignCache {
	return &CampaignCache{
		CampaignRepository: repo,
		cache:              gocache.New(ttl, 2*ttl),
		gen:                make(map[int64]uint64),
	}
}

func key(id int64) string { return strconv.FormatInt(id, 10) }

func (c *CampaignCache) GetCampaign(ctx context.Context, id int64) (*domain.Campaign, error) {
	if v, ok := c.cache.Get(key(id)); ok {
		camp := v.(domain.Campaign)
		camp.PlatformIDs = slices.Clone(camp.PlatformIDs)
		return &camp, nil
	}

	c.mu.Lock()
	gen := c.gen[id]
	c.mu.Unlock()

	camp, err := c.CampaignRepository.GetCampaign(ctx, id)
	if err != nil {
		return nil, err
	}
	stored := *camp
	stored.PlatformIDs = slices.Clone(camp.PlatformIDs)

	c.mu.Lock()
	if c.gen[id] == gen {
		c.cache.SetDefault(key(id), stored)
	}
	c.mu.Unlock()
	return camp, nil
}

// invalidate runs after the repository write, so reads that start later
// see the new state.
func (c *CampaignCache) invalidate(id int64) {
	c.mu.Lock()
	c.gen[id]++
	c.cache.Delete(key(id))
	c.mu.Unlock()
}

func (c *CampaignCache) UpdateCampaign(ctx context.Context, camp *domain.Campaign) error {
	defer c.invalidate(camp.ID)
	return c.CampaignRepository.UpdateCampaign(ctx, camp)
}

func (c *CampaignCache) DeleteCampaign(ctx context.Context, id int64) error {
	defer c.invalidate(id)
	return c.CampaignRepository.DeleteCampaign(ctx, id)
}
