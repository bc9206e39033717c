package postgres

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
	"clicktracker/internal/testutils"
)

func TestPostgres(t *testing.T) {
	pg := testutils.StartPostgres(t)
	campaigns := NewCampaignRepository(pg.Pool)
	clicks := NewClickRepository(pg.Pool)
	admins := NewAdminRepository(pg.Pool)
	ctx := context.Background()

	t.Run("campaign lifecycle", func(t *testing.T) {
		pg.Truncate(t)

		android := &domain.Platform{Name: "android"}
		require.NoError(t, campaigns.CreatePlatform(ctx, android))
		assert.ErrorIs(t, campaigns.CreatePlatform(ctx, &domain.Platform{Name: "android"}), port.ErrAlreadyExists)

		c := &domain.Campaign{Name: "spring", DestinationURL: "https://example.com/a", Active: true, PlatformIDs: []int64{android.ID}}
		require.NoError(t, campaigns.CreateCampaign(ctx, c))
		assert.NotZero(t, c.ID)

		got, err := campaigns.GetCampaign(ctx, c.ID)
		require.NoError(t, err)
		assert.Equal(t, "https://example.com/a", got.DestinationURL)
		assert.Equal(t, []int64{android.ID}, got.PlatformIDs)

		err = campaigns.CreateCampaign(ctx, &domain.Campaign{Name: "bad", DestinationURL: "https://example.com", PlatformIDs: []int64{999}})
		assert.ErrorIs(t, err, port.ErrInvalidInput)

		c.Active = false
		c.PlatformIDs = nil
		require.NoError(t, campaigns.UpdateCampaign(ctx, c))
		got, err = campaigns.GetCampaign(ctx, c.ID)
		require.NoError(t, err)
		assert.False(t, got.Active)
		assert.Empty(t, got.PlatformIDs)

		list, err := campaigns.ListCampaigns(ctx, port.CampaignFilter{ActiveOnly: true})
		require.NoError(t, err)
		assert.Empty(t, list)

		require.NoError(t, campaigns.DeleteCampaign(ctx, c.ID))
		_, err = campaigns.GetCampaign(ctx, c.ID)
		assert.ErrorIs(t, err, port.ErrNotFound)
		assert.ErrorIs(t, campaigns.DeleteCampaign(ctx, c.ID), port.ErrNotFound)
	})

	t.Run("concurrent increments create one counter", func(t *testing.T) {
		pg.Truncate(t)

		const n = 200
		var wg sync.WaitGroup
		for i := 0; i < n; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				_, err := clicks.IncrementCounter(ctx, 42)
				assert.NoError(t, err)
			}()
		}
		wg.Wait()

		got, err := clicks.GetCount(ctx, 42)
		require.NoError(t, err)
		assert.Equal(t, int64(n), got)

		var rows int
		require.NoError(t, pg.Pool.QueryRow(ctx, `SELECT count(*) FROM click_counters WHERE campaign_id = 42`).Scan(&rows))
		assert.Equal(t, 1, rows)
	})

	t.Run("click log and reconciliation primitives", func(t *testing.T) {
		pg.Truncate(t)

		got, err := clicks.GetCount(ctx, 5)
		require.NoError(t, err)
		assert.Zero(t, got)

		for i := 0; i < 3; i++ {
			require.NoError(t, clicks.AppendClick(ctx, domain.ClickRecord{
				ID: uuid.New(), CampaignID: 5, ClientIP: "10.0.0.1", UserAgent: "test", CreatedAt: time.Now().UTC(),
			}))
		}
		n, err := clicks.CountClicks(ctx, 5)
		require.NoError(t, err)
		assert.Equal(t, int64(3), n)

		totals, err := clicks.ClickTotals(ctx)
		require.NoError(t, err)
		assert.Equal(t, map[int64]int64{5: 3}, totals)

		recent, err := clicks.RecentClicks(ctx, time.Now().Add(time.Hour))
		require.NoError(t, err)
		assert.Empty(t, recent)
		recent, err = clicks.RecentClicks(ctx, time.Now().Add(-time.Hour))
		require.NoError(t, err)
		assert.Equal(t, map[int64]int64{5: 3}, recent)

		ok, err := clicks.CompareAndSetCount(ctx, 5, 0, 3)
		require.NoError(t, err)
		assert.True(t, ok)
		ok, err = clicks.CompareAndSetCount(ctx, 5, 0, 9)
		require.NoError(t, err)
		assert.False(t, ok)
		ok, err = clicks.CompareAndSetCount(ctx, 5, 2, 9)
		require.NoError(t, err)
		assert.False(t, ok)
		counts, err := clicks.GetCounts(ctx, []int64{5, 6})
		require.NoError(t, err)
		assert.Equal(t, map[int64]int64{5: 3}, counts)

		_, err = clicks.CompareAndSetCount(ctx, 5, 3, -1)
		assert.ErrorIs(t, err, port.ErrInvalidInput)
	})

	t.Run("admins", func(t *testing.T) {
		pg.Truncate(t)

		_, err := admins.GetAdminByName(ctx, "root")
		assert.ErrorIs(t, err, port.ErrNotFound)

		a := &domain.Admin{Name: "root", PasswordHash: "h1", Active: true}
		require.NoError(t, admins.UpsertAdmin(ctx, a))
		a.PasswordHash = "h2"
		require.NoError(t, admins.UpsertAdmin(ctx, a))

		got, err := admins.GetAdminByName(ctx, "root")
		require.NoError(t, err)
		assert.Equal(t, "h2", got.PasswordHash)
	})

	t.Run("ping", func(t *testing.T) {
		assert.NoError(t, campaigns.Ping(ctx))
	})
}
