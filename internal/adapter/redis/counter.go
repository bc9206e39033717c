package redisadapter

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/redis/go-redis/v9"

	"clicktracker/internal/core/port"
)

// Counter implements port.ClickCounter with one Redis string per
// campaign. INCR creates a missing key at 1, which gives the
// increment-or-create semantics without a separate existence check.
type Counter struct {
	client *redis.Client
	prefix string
}

func NewCounter(client *redis.Client, prefix string) *Counter {
	return &Counter{client: client, prefix: prefix}
}

func (c *Counter) key(campaignID int64) string {
	return fmt.Sprintf("%s:counter:%d", c.prefix, campaignID)
}

func (c *Counter) IncrementCounter(ctx context.Context, campaignID int64) (int64, error) {
	n, err := c.client.Incr(ctx, c.key(campaignID)).Result()
	if err != nil {
		return 0, port.Unavailable(fmt.Sprintf("incr counter %d", campaignID), err)
	}
	return n, nil
}

func (c *Counter) GetCount(ctx context.Context, campaignID int64) (int64, error) {
	n, err := c.client.Get(ctx, c.key(campaignID)).Int64()
	if errors.Is(err, redis.Nil) {
		return 0, nil
	}
	if err != nil {
		return 0, port.Unavailable("get count", err)
	}
	return n, nil
}

func (c *Counter) GetCounts(ctx context.Context, campaignIDs []int64) (map[int64]int64, error) {
	out := make(map[int64]int64, len(campaignIDs))
	if len(campaignIDs) == 0 {
		return out, nil
	}
	keys := make([]string, len(campaignIDs))
	for i, id := range campaignIDs {
		keys[i] = c.key(id)
	}
	vals, err := c.client.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, port.Unavailable("get counts", err)
	}
	for i, v := range vals {
		s, ok := v.(string)
		if !ok {
			continue
		}
		n, err := strconv.ParseInt(s, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("counter %s holds %q: %w", keys[i], s, port.ErrStorageUnavailable)
		}
		out[campaignIDs[i]] = n
	}
	return out, nil
}

// compareAndSet runs GET and SET as one script so no INCR can land in
// between. A missing key reads as 0.
var compareAndSet = redis.NewScript(`
local current = tonumber(redis.call('GET', KEYS[1]) or '0')
if current ~= tonumber(ARGV[1]) then
	return 0
end
redis.call('SET', KEYS[1], ARGV[2])
return 1
`)

func (c *Counter) CompareAndSetCount(ctx context.Context, campaignID int64, previous, count int64) (bool, error) {
	if count < 0 {
		return false, fmt.Errorf("counter %d: negative count: %w", campaignID, port.ErrInvalidInput)
	}
	n, err := compareAndSet.Run(ctx, c.client, []string{c.key(campaignID)}, previous, count).Int()
	if err != nil {
		return false, port.Unavailable(fmt.Sprintf("compare and set count %d", campaignID), err)
	}
	return n == 1, nil
}

func (c *Counter) Ping(ctx context.Context) error {
	if err := c.client.Ping(ctx).Err(); err != nil {
		return port.Unavailable("ping redis", err)
	}
	return nil
}
