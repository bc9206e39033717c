package memory

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"clicktracker/internal/core/domain"
	"clicktracker/internal/core/port"
)

func TestStore_CampaignLifecycle(t *testing.T) {
	ctx := context.Background()
	s := NewStore()

	android := &domain.Platform{Name: "android"}
	require.NoError(t, s.CreatePlatform(ctx, android))
	err := s.CreatePlatform(ctx, &domain.Platform{Name: "android"})
	assert.ErrorIs(t, err, port.ErrAlreadyExists)

	c := &domain.Campaign{Name: "spring", DestinationURL: "https://example.com/a", Active: true, PlatformIDs: []int64{android.ID}}
	require.NoError(t, s.CreateCampaign(ctx, c))
	assert.Equal(t, int64(1), c.ID)
	assert.False(t, c.CreatedAt.IsZero())

	got, err := s.GetCampaign(ctx, c.ID)
	require.NoError(t, err)
	assert.Equal(t, "https://example.com/a", got.DestinationURL)

	// returned values must not alias stored state
	got.PlatformIDs[0] = 99
	again, _ := s.GetCampaign(ctx, c.ID)
	assert.Equal(t, []int64{android.ID}, again.PlatformIDs)

	err = s.CreateCampaign(ctx, &domain.Campaign{Name: "x", PlatformIDs: []int64{42}})
	assert.ErrorIs(t, err, port.ErrInvalidInput)

	c.Active = false
	require.NoError(t, s.UpdateCampaign(ctx, c))
	list, err := s.ListCampaigns(ctx, port.CampaignFilter{ActiveOnly: true})
	require.NoError(t, err)
	assert.Empty(t, list)

	list, err = s.ListCampaigns(ctx, port.CampaignFilter{PlatformIDs: []int64{android.ID}})
	require.NoError(t, err)
	assert.Len(t, list, 1)

	require.NoError(t, s.DeleteCampaign(ctx, c.ID))
	_, err = s.GetCampaign(ctx, c.ID)
	assert.ErrorIs(t, err, port.ErrNotFound)
	assert.ErrorIs(t, s.DeleteCampaign(ctx, c.ID), port.ErrNotFound)
	assert.ErrorIs(t, s.UpdateCampaign(ctx, c), port.ErrNotFound)
}

func TestStore_ConcurrentIncrement(t *testing.T) {
	ctx := context.Background()
	s := NewStore()

	const n = 500
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := s.IncrementCounter(ctx, 7)
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	got, err := s.GetCount(ctx, 7)
	require.NoError(t, err)
	assert.Equal(t, int64(n), got)
	assert.Equal(t, 1, s.CounterCount())
}

func TestStore_CountersAndLog(t *testing.T) {
	ctx := context.Background()
	s := NewStore()

	got, err := s.GetCount(ctx, 3)
	require.NoError(t, err)
	assert.Zero(t, got)
	assert.Zero(t, s.CounterCount())

	for i := 0; i < 3; i++ {
		require.NoError(t, s.AppendClick(ctx, domain.ClickRecord{ID: uuid.New(), CampaignID: 3}))
	}
	require.NoError(t, s.AppendClick(ctx, domain.ClickRecord{ID: uuid.New(), CampaignID: 4}))

	n, err := s.CountClicks(ctx, 3)
	require.NoError(t, err)
	assert.Equal(t, int64(3), n)

	totals, err := s.ClickTotals(ctx)
	require.NoError(t, err)
	assert.Equal(t, map[int64]int64{3: 3, 4: 1}, totals)

	ok, err := s.CompareAndSetCount(ctx, 3, 0, 3)
	require.NoError(t, err)
	assert.True(t, ok)
	counts, err := s.GetCounts(ctx, []int64{3, 4})
	require.NoError(t, err)
	assert.Equal(t, map[int64]int64{3: 3}, counts)

	// a stale expectation leaves the counter alone
	ok, err = s.CompareAndSetCount(ctx, 3, 2, 10)
	require.NoError(t, err)
	assert.False(t, ok)
	ok, err = s.CompareAndSetCount(ctx, 4, 1, 10)
	require.NoError(t, err)
	assert.False(t, ok)
	got, err = s.GetCount(ctx, 3)
	require.NoError(t, err)
	assert.Equal(t, int64(3), got)

	_, err = s.CompareAndSetCount(ctx, 3, 3, -1)
	assert.ErrorIs(t, err, port.ErrInvalidInput)
}

func TestStore_RecentClicks(t *testing.T) {
	ctx := context.Background()
	s := NewStore()
	cutoff := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

	require.NoError(t, s.AppendClick(ctx, domain.ClickRecord{ID: uuid.New(), CampaignID: 1, CreatedAt: cutoff.Add(-time.Second)}))
	require.NoError(t, s.AppendClick(ctx, domain.ClickRecord{ID: uuid.New(), CampaignID: 1, CreatedAt: cutoff}))
	require.NoError(t, s.AppendClick(ctx, domain.ClickRecord{ID: uuid.New(), CampaignID: 2, CreatedAt: cutoff.Add(time.Minute)}))

	recent, err := s.RecentClicks(ctx, cutoff)
	require.NoError(t, err)
	assert.Equal(t, map[int64]int64{1: 1, 2: 1}, recent)
}

func TestStore_CanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	s := NewStore()

	_, err := s.IncrementCounter(ctx, 1)
	assert.ErrorIs(t, err, port.ErrStorageUnavailable)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Zero(t, s.CounterCount())
}
