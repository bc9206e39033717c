package memory

import (
	"context"
	"fmt"
	"slices"
	"sort"
	"sync"
	"sync/atomic"
	"time"

	"clicktracker/internal/core/domain"
	"clicktracker/internal/core/port"
)

// Store keeps campaigns, platforms, admins and the click log in process
// memory. It implements every repository port and is safe for concurrent
// use. Values handed in or out are copied so callers cannot mutate stored
// state.
type Store struct {
	mu         sync.RWMutex // protects campaigns, platforms, admins and the id sequences
	campaigns  map[int64]domain.Campaign
	platforms  map[int64]domain.Platform
	admins     map[string]domain.Admin
	nextID     int64
	nextPlatID int64
	nextAdmin  int64

	logMu  sync.Mutex
	clicks []domain.ClickRecord

	// counters maps campaign id to *atomic.Int64. LoadOrStore creates each
	// counter exactly once and increments never take a store-wide lock.
	counters sync.Map

	now func() time.Time
}

func NewStore() *Store {
	return &Store{
		campaigns: make(map[int64]domain.Campaign),
		platforms: make(map[int64]domain.Platform),
		admins:    make(map[string]domain.Admin),
		now:       time.Now,
	}
}

func (s *Store) Ping(context.Context) error { return nil }

func cloneCampaign(c domain.Campaign) domain.Campaign {
	c.PlatformIDs = slices.Clone(c.PlatformIDs)
	return c
}

func (s *Store) GetCampaign(ctx context.Context, id int64) (*domain.Campaign, error) {
	if err := ctx.Err(); err != nil {
		return nil, port.Unavailable("get campaign", err)
	}
	s.mu.RLock()
	defer s.mu.RUnlock()

	c, ok := s.campaigns[id]
	if !ok {
		return nil, fmt.Errorf("campaign %d: %w", id, port.ErrNotFound)
	}
	c = cloneCampaign(c)
	return &c, nil
}

func (s *Store) ListCampaigns(ctx context.Context, filter port.CampaignFilter) ([]domain.Campaign, error) {
	if err := ctx.Err(); err != nil {
		return nil, port.Unavailable("list campaigns", err)
	}
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.Campaign, 0, len(s.campaigns))
	for _, c := range s.campaigns {
		if filter.ActiveOnly && !c.Active {
			continue
		}
		if len(filter.PlatformIDs) > 0 && !targetsAny(c.PlatformIDs, filter.PlatformIDs) {
			continue
		}
		out = append(out, cloneCampaign(c))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func targetsAny(have, want []int64) bool {
	for _, id := range want {
		if slices.Contains(have, id) {
			return true
		}
	}
	return false
}

// checkPlatforms must be called with s.mu held.
func (s *Store) checkPlatforms(ids []int64) error {
	for _, id := range ids {
		if _, ok := s.platforms[id]; !ok {
			return fmt.Errorf("platform %d: %w", id, port.ErrInvalidInput)
		}
	}
	return nil
}

func (s *Store) CreateCampaign(ctx context.Context, c *domain.Campaign) error {
	if err := ctx.Err(); err != nil {
		return port.Unavailable("create campaign", err)
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.checkPlatforms(c.PlatformIDs); err != nil {
		return err
	}
	s.nextID++
	now := s.now().UTC()
	c.ID = s.nextID
	c.CreatedAt, c.UpdatedAt = now, now
	s.campaigns[c.ID] = cloneCampaign(*c)
	return nil
}

func (s *Store) UpdateCampaign(ctx context.Context, c *domain.Campaign) error {
	if err := ctx.Err(); err != nil {
		return port.Unavailable("update campaign", err)
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	old, ok := s.campaigns[c.ID]
	if !ok {
		return fmt.Errorf("campaign %d: %w", c.ID, port.ErrNotFound)
	}
	if err := s.checkPlatforms(c.PlatformIDs); err != nil {
		return err
	}
	c.CreatedAt = old.CreatedAt
	c.UpdatedAt = s.now().UTC()
	s.campaigns[c.ID] = cloneCampaign(*c)
	return nil
}

// DeleteCampaign removes the campaign but keeps its clicks and counter.
func (s *Store) DeleteCampaign(ctx context.Context, id int64) error {
	if err := ctx.Err(); err != nil {
		return port.Unavailable("delete campaign", err)
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.campaigns[id]; !ok {
		return fmt.Errorf("campaign %d: %w", id, port.ErrNotFound)
	}
	delete(s.campaigns, id)
	return nil
}

func (s *Store) ListPlatforms(ctx context.Context) ([]domain.Platform, error) {
	if err := ctx.Err(); err != nil {
		return nil, port.Unavailable("list platforms", err)
	}
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.Platform, 0, len(s.platforms))
	for _, p := range s.platforms {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (s *Store) CreatePlatform(ctx context.Context, p *domain.Platform) error {
	if err := ctx.Err(); err != nil {
		return port.Unavailable("create platform", err)
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, existing := range s.platforms {
		if existing.Name == p.Name {
			return fmt.Errorf("platform %q: %w", p.Name, port.ErrAlreadyExists)
		}
	}
	s.nextPlatID++
	p.ID = s.nextPlatID
	s.platforms[p.ID] = *p
	return nil
}

func (s *Store) GetAdminByName(ctx context.Context, name string) (*domain.Admin, error) {
	if err := ctx.Err(); err != nil {
		return nil, port.Unavailable("get admin", err)
	}
	s.mu.RLock()
	defer s.mu.RUnlock()

	a, ok := s.admins[name]
	if !ok {
		return nil, fmt.Errorf("admin %q: %w", name, port.ErrNotFound)
	}
	return &a, nil
}

func (s *Store) UpsertAdmin(ctx context.Context, a *domain.Admin) error {
	if err := ctx.Err(); err != nil {
		return port.Unavailable("upsert admin", err)
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	if old, ok := s.admins[a.Name]; ok {
		a.ID, a.CreatedAt = old.ID, old.CreatedAt
	} else {
		s.nextAdmin++
		a.ID, a.CreatedAt = s.nextAdmin, s.now().UTC()
	}
	s.admins[a.Name] = *a
	return nil
}

func (s *Store) AppendClick(ctx context.Context, click domain.ClickRecord) error {
	if err := ctx.Err(); err != nil {
		return port.Unavailable("append click", err)
	}
	s.logMu.Lock()
	s.clicks = append(s.clicks, click)
	s.logMu.Unlock()
	return nil
}

func (s *Store) CountClicks(ctx context.Context, campaignID int64) (int64, error) {
	if err := ctx.Err(); err != nil {
		return 0, port.Unavailable("count clicks", err)
	}
	s.logMu.Lock()
	defer s.logMu.Unlock()

	var n int64
	for _, c := range s.clicks {
		if c.CampaignID == campaignID {
			n++
		}
	}
	return n, nil
}

func (s *Store) ClickTotals(ctx context.Context) (map[int64]int64, error) {
	if err := ctx.Err(); err != nil {
		return nil, port.Unavailable("click totals", err)
	}
	s.logMu.Lock()
	defer s.logMu.Unlock()

	totals := make(map[int64]int64)
	for _, c := range s.clicks {
		totals[c.CampaignID]++
	}
	return totals, nil
}

func (s *Store) RecentClicks(ctx context.Context, since time.Time) (map[int64]int64, error) {
	if err := ctx.Err(); err != nil {
		return nil, port.Unavailable("recent clicks", err)
	}
	s.logMu.Lock()
	defer s.logMu.Unlock()

	totals := make(map[int64]int64)
	for _, c := range s.clicks {
		if !c.CreatedAt.Before(since) {
			totals[c.CampaignID]++
		}
	}
	return totals, nil
}

// Clicks returns a snapshot of the click log.
func (s *Store) Clicks() []domain.ClickRecord {
	s.logMu.Lock()
	defer s.logMu.Unlock()
	return slices.Clone(s.clicks)
}

func (s *Store) counter(campaignID int64) *atomic.Int64 {
	if v, ok := s.counters.Load(campaignID); ok {
		return v.(*atomic.Int64)
	}
	v, _ := s.counters.LoadOrStore(campaignID, new(atomic.Int64))
	return v.(*atomic.Int64)
}

func (s *Store) IncrementCounter(ctx context.Context, campaignID int64) (int64, error) {
	if err := ctx.Err(); err != nil {
		return 0, port.Unavailable("increment counter", err)
	}
	return s.counter(campaignID).Add(1), nil
}

func (s *Store) GetCount(ctx context.Context, campaignID int64) (int64, error) {
	if err := ctx.Err(); err != nil {
		return 0, port.Unavailable("get count", err)
	}
	if v, ok := s.counters.Load(campaignID); ok {
		return v.(*atomic.Int64).Load(), nil
	}
	return 0, nil
}

func (s *Store) GetCounts(ctx context.Context, campaignIDs []int64) (map[int64]int64, error) {
	if err := ctx.Err(); err != nil {
		return nil, port.Unavailable("get counts", err)
	}
	out := make(map[int64]int64, len(campaignIDs))
	for _, id := range campaignIDs {
		if v, ok := s.counters.Load(id); ok {
			out[id] = v.(*atomic.Int64).Load()
		}
	}
	return out, nil
}

func (s *Store) CompareAndSetCount(ctx context.Context, campaignID int64, previous, count int64) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, port.Unavailable("compare and set count", err)
	}
	if count < 0 {
		return false, fmt.Errorf("counter %d: negative count: %w", campaignID, port.ErrInvalidInput)
	}
	if previous == 0 {
		return s.counter(campaignID).CompareAndSwap(0, count), nil
	}
	v, ok := s.counters.Load(campaignID)
	if !ok {
		return false, nil
	}
	return v.(*atomic.Int64).CompareAndSwap(previous, count), nil
}

// CounterCount returns how many counters exist.
func (s *Store) CounterCount() int {
	n := 0
	s.counters.Range(func(any, any) bool {
		n++
		return true
	})
	return n
}
