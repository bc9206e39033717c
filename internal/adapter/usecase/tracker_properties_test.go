package usecase

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"clicktracker/internal/adapter/memory"
	"clicktracker/internal/adapter/sqlite"
	"clicktracker/internal/core/domain"
	"clicktracker/internal/core/port"
)

// backend is a store implementing every port the tracker needs.
type backend interface {
	port.CampaignRepository
	port.ClickLog
	port.ClickCounter
}

type backendCase struct {
	name string
	open func(t *testing.T) (backend, func(campaignID int64) int)
}

func backends() []backendCase {
	return []backendCase{
		{
			name: "memory",
			open: func(t *testing.T) (backend, func(int64) int) {
				s := memory.NewStore()
				return s, func(int64) int { return s.CounterCount() }
			},
		},
		{
			name: "sqlite",
			open: func(t *testing.T) (backend, func(int64) int) {
				s, err := sqlite.Open(context.Background(), ":memory:")
				require.NoError(t, err)
				t.Cleanup(func() { _ = s.Close() })
				return s, func(id int64) int {
					n, err := s.CounterRows(context.Background(), id)
					require.NoError(t, err)
					return n
				}
			},
		},
	}
}

func TestTrackerProperties(t *testing.T) {
	for _, bc := range backends() {
		t.Run(bc.name, func(t *testing.T) {
			ctx := context.Background()

			newSubject := func(t *testing.T) (*TrackerUseCase, backend, func(int64) int, int64) {
				store, counterRows := bc.open(t)
				camp := &domain.Campaign{Name: "c", DestinationURL: "https://example.com/landing", Active: true}
				require.NoError(t, store.CreateCampaign(ctx, camp))
				u := NewTrackerUseCase(store, store, store, nil, discardLogger(), TrackerOptions{RedirectInactive: true, RecordTimeout: 5 * time.Second})
				return u, store, counterRows, camp.ID
			}

			visitOf := func(id int64) port.Visit {
				return port.Visit{CampaignID: id, ClientIP: "198.51.100.1", UserAgent: "test", OccurredAt: time.Now()}
			}

			t.Run("concurrent visits are all counted", func(t *testing.T) {
				u, store, _, id := newSubject(t)
				require.NoError(t, u.RecordVisit(ctx, visitOf(id)))
				before, err := store.GetCount(ctx, id)
				require.NoError(t, err)

				const n = 64
				var wg sync.WaitGroup
				errs := make(chan error, n)
				wg.Add(n)
				for i := 0; i < n; i++ {
					go func() {
						defer wg.Done()
						errs <- u.RecordVisit(ctx, visitOf(id))
					}()
				}
				wg.Wait()
				close(errs)
				for err := range errs {
					require.NoError(t, err)
				}

				after, err := store.GetCount(ctx, id)
				require.NoError(t, err)
				assert.Equal(t, before+n, after)
			})

			t.Run("concurrent first visits create one counter", func(t *testing.T) {
				u, store, counterRows, id := newSubject(t)

				const n = 32
				var wg sync.WaitGroup
				wg.Add(n)
				for i := 0; i < n; i++ {
					go func() {
						defer wg.Done()
						assert.NoError(t, u.RecordVisit(ctx, visitOf(id)))
					}()
				}
				wg.Wait()

				assert.Equal(t, 1, counterRows(id))
				got, err := store.GetCount(ctx, id)
				require.NoError(t, err)
				assert.Equal(t, int64(n), got)
			})

			t.Run("missing campaign resolves to not found", func(t *testing.T) {
				u, _, _, _ := newSubject(t)
				_, err := u.Resolve(ctx, "424242")
				assert.ErrorIs(t, err, port.ErrNotFound)
			})

			t.Run("non numeric identifier resolves to not found", func(t *testing.T) {
				u, _, _, _ := newSubject(t)
				_, err := u.Resolve(ctx, "not-a-number")
				assert.ErrorIs(t, err, port.ErrNotFound)
				assert.NotErrorIs(t, err, port.ErrStorageUnavailable)
			})

			t.Run("sequential visits keep log and counter equal", func(t *testing.T) {
				u, store, _, id := newSubject(t)
				const k = 7
				for i := 0; i < k; i++ {
					require.NoError(t, u.RecordVisit(ctx, visitOf(id)))
				}
				logged, err := store.CountClicks(ctx, id)
				require.NoError(t, err)
				counted, err := store.GetCount(ctx, id)
				require.NoError(t, err)
				assert.Equal(t, int64(k), logged)
				assert.Equal(t, int64(k), counted)
			})

			t.Run("counter is created lazily", func(t *testing.T) {
				u, store, counterRows, id := newSubject(t)
				got, err := store.GetCount(ctx, id)
				require.NoError(t, err)
				assert.Zero(t, got)
				assert.Zero(t, counterRows(id))

				require.NoError(t, u.RecordVisit(ctx, visitOf(id)))
				got, err = store.GetCount(ctx, id)
				require.NoError(t, err)
				assert.Equal(t, int64(1), got)
				assert.Equal(t, 1, counterRows(id))
			})

			t.Run("visits to deleted campaigns are still recorded", func(t *testing.T) {
				u, store, _, id := newSubject(t)
				require.NoError(t, store.DeleteCampaign(ctx, id))

				require.NoError(t, u.RecordVisit(ctx, visitOf(id)))
				logged, err := store.CountClicks(ctx, id)
				require.NoError(t, err)
				counted, err := store.GetCount(ctx, id)
				require.NoError(t, err)
				assert.Equal(t, int64(1), logged)
				assert.Equal(t, int64(1), counted)
			})
		})
	}
}
