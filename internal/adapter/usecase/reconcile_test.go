package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"clicktracker/internal/adapter/memory"
	"clicktracker/internal/core/domain"
	"clicktracker/internal/core/port"
	"clicktracker/internal/core/port/mocks"
)

func TestReconcile_RepairsSkew(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()

	// counter failures leave logged clicks uncounted
	counter := mocks.NewMockClickCounter(t)
	counter.EXPECT().IncrementCounter(mock.Anything, mock.Anything).Return(0, errors.New("redis down"))
	tracker := NewTrackerUseCase(store, store, counter, nil, discardLogger(), TrackerOptions{})
	for i := 0; i < 3; i++ {
		_ = tracker.RecordVisit(ctx, port.Visit{CampaignID: 1})
	}
	require.NoError(t, store.AppendClick(ctx, domain.ClickRecord{ID: uuid.New(), CampaignID: 2}))
	_, err := store.IncrementCounter(ctx, 2)
	require.NoError(t, err)
	assert.Equal(t, int64(3), tracker.SkewCount())

	u := NewReconcileUseCase(store, store, discardLogger(), 0)
	corrections, err := u.Reconcile(ctx, nil)
	require.NoError(t, err)
	assert.Equal(t, []port.Correction{{CampaignID: 1, Previous: 0, Actual: 3}}, corrections)

	got, err := store.GetCount(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, int64(3), got)

	corrections, err = u.Reconcile(ctx, nil)
	require.NoError(t, err)
	assert.Empty(t, corrections)
}

func TestReconcile_SingleCampaign(t *testing.T) {
	ctx := context.Background()
	clicks := mocks.NewMockClickLog(t)
	counter := mocks.NewMockClickCounter(t)
	counter.EXPECT().GetCounts(mock.Anything, []int64{5}).Return(map[int64]int64{5: 2}, nil)
	clicks.EXPECT().CountClicks(mock.Anything, int64(5)).Return(0, nil)
	counter.EXPECT().CompareAndSetCount(mock.Anything, int64(5), int64(2), int64(0)).Return(true, nil)

	id := int64(5)
	corrections, err := NewReconcileUseCase(clicks, counter, discardLogger(), 0).Reconcile(ctx, &id)
	require.NoError(t, err)
	assert.Equal(t, []port.Correction{{CampaignID: 5, Previous: 2, Actual: 0}}, corrections)
}

func TestReconcile_StorageFailure(t *testing.T) {
	clicks := mocks.NewMockClickLog(t)
	counter := mocks.NewMockClickCounter(t)
	clicks.EXPECT().ClickTotals(mock.Anything).Return(nil, port.Unavailable("click totals", errors.New("down")))

	_, err := NewReconcileUseCase(clicks, counter, discardLogger(), 0).Reconcile(context.Background(), nil)
	assert.ErrorIs(t, err, port.ErrStorageUnavailable)
}

// visitDuringTotals runs a full visit right after ClickTotals took its
// snapshot, on the calls selected by fire.
type visitDuringTotals struct {
	*memory.Store
	visit func()
	fire  func(call int) bool
	calls int
}

func (v *visitDuringTotals) ClickTotals(ctx context.Context) (map[int64]int64, error) {
	totals, err := v.Store.ClickTotals(ctx)
	v.calls++
	if err == nil && v.fire(v.calls) {
		v.visit()
	}
	return totals, err
}

func TestReconcile_ConcurrentVisitsKeepTheirIncrements(t *testing.T) {
	cases := []struct {
		name string
		fire func(call int) bool
		// skew left after reconciliation
		skew        int64
		corrections int
	}{
		{"visit between counter read and log read", func(call int) bool { return call == 2 }, 0, 1},
		{"visit on every read", func(int) bool { return true }, 1, 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ctx := context.Background()
			store := memory.NewStore()
			old := time.Now().Add(-time.Hour)

			// log 2, counter 1
			for i := 0; i < 2; i++ {
				require.NoError(t, store.AppendClick(ctx, domain.ClickRecord{ID: uuid.New(), CampaignID: 7, CreatedAt: old}))
			}
			_, err := store.IncrementCounter(ctx, 7)
			require.NoError(t, err)

			tracker := NewTrackerUseCase(store, store, store, nil, discardLogger(), TrackerOptions{})
			clickLog := &visitDuringTotals{Store: store, fire: tc.fire, visit: func() {
				require.NoError(t, tracker.RecordVisit(ctx, port.Visit{CampaignID: 7, OccurredAt: old}))
			}}

			corrections, err := NewReconcileUseCase(clickLog, store, discardLogger(), 0).Reconcile(ctx, nil)
			require.NoError(t, err)
			assert.Len(t, corrections, tc.corrections)

			logged, err := store.CountClicks(ctx, 7)
			require.NoError(t, err)
			counted, err := store.GetCount(ctx, 7)
			require.NoError(t, err)
			assert.Equal(t, tc.skew, logged-counted)
		})
	}
}

func TestReconcile_LeavesInFlightClicksUncredited(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()
	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

	// one click whose increment failed an hour ago, one whose visit is
	// still running
	require.NoError(t, store.AppendClick(ctx, domain.ClickRecord{ID: uuid.New(), CampaignID: 3, CreatedAt: now.Add(-time.Hour)}))
	require.NoError(t, store.AppendClick(ctx, domain.ClickRecord{ID: uuid.New(), CampaignID: 3, CreatedAt: now.Add(-time.Second)}))

	u := NewReconcileUseCase(store, store, discardLogger(), time.Minute)
	u.now = func() time.Time { return now }
	corrections, err := u.Reconcile(ctx, nil)
	require.NoError(t, err)
	assert.Equal(t, []port.Correction{{CampaignID: 3, Previous: 0, Actual: 1}}, corrections)

	// the running visit finishes
	_, err = store.IncrementCounter(ctx, 3)
	require.NoError(t, err)
	got, err := store.GetCount(ctx, 3)
	require.NoError(t, err)
	assert.Equal(t, int64(2), got)
}
