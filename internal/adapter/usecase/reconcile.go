package usecase

import (
	"cmp"
	"context"
	"log/slog"
	"maps"
	"slices"
	"time"

	"clicktracker/internal/core/port"
)

// reconcileAttempts bounds how often a counter that moved under
// reconciliation is re-read.
const reconcileAttempts = 3

// ReconcileUseCase implements port.ReconcileUseCase. The click log is the
// source of truth, but counters are only ever changed with a conditional
// write against the value just read, so live increments are never lost.
//
// Clicks younger than settle may still have their increment in flight;
// they are never credited to the counter by reconciliation.
type ReconcileUseCase struct {
	clicks  port.ClickLog
	counter port.ClickCounter
	logger  *slog.Logger
	settle  time.Duration
	now     func() time.Time
}

func NewReconcileUseCase(clicks port.ClickLog, counter port.ClickCounter, logger *slog.Logger, settle time.Duration) *ReconcileUseCase {
	return &ReconcileUseCase{clicks: clicks, counter: counter, logger: logger, settle: settle, now: time.Now}
}

func (u *ReconcileUseCase) Reconcile(ctx context.Context, campaignID *int64) ([]port.Correction, error) {
	var ids []int64
	if campaignID != nil {
		ids = []int64{*campaignID}
	} else {
		totals, err := u.clicks.ClickTotals(ctx)
		if err != nil {
			return nil, err
		}
		ids = slices.Sorted(maps.Keys(totals))
	}

	corrections := make([]port.Correction, 0)
	for attempt := 1; attempt <= reconcileAttempts && len(ids) > 0; attempt++ {
		applied, moved, err := u.reconcileOnce(ctx, ids, campaignID != nil)
		corrections = append(corrections, applied...)
		if err != nil {
			return corrections, err
		}
		ids = moved
	}
	for _, id := range ids {
		u.logger.Warn("counter kept moving, reconciliation skipped", slog.Int64("campaign_id", id))
	}
	slices.SortFunc(corrections, func(a, b port.Correction) int { return cmp.Compare(a.CampaignID, b.CampaignID) })
	return corrections, nil
}

// reconcileOnce reads the counters before the log, so any increment that
// lands in between shows up as a failed compare-and-set instead of being
// overwritten. It returns the campaigns whose counter moved.
func (u *ReconcileUseCase) reconcileOnce(ctx context.Context, ids []int64, single bool) ([]port.Correction, []int64, error) {
	current, err := u.counter.GetCounts(ctx, ids)
	if err != nil {
		return nil, nil, err
	}

	var logged map[int64]int64
	if single {
		n, err := u.clicks.CountClicks(ctx, ids[0])
		if err != nil {
			return nil, nil, err
		}
		logged = map[int64]int64{ids[0]: n}
	} else if logged, err = u.clicks.ClickTotals(ctx); err != nil {
		return nil, nil, err
	}

	var pending map[int64]int64
	if u.settle > 0 {
		if pending, err = u.clicks.RecentClicks(ctx, u.now().Add(-u.settle)); err != nil {
			return nil, nil, err
		}
	}

	var (
		applied []port.Correction
		moved   []int64
	)
	for _, id := range ids {
		prev := current[id]
		target := logged[id]
		if target > prev {
			// recent clicks may still be counted by their own visit
			target = max(prev, target-pending[id])
		}
		if target == prev {
			continue
		}
		ok, err := u.counter.CompareAndSetCount(ctx, id, prev, target)
		if err != nil {
			return applied, nil, err
		}
		if !ok {
			moved = append(moved, id)
			continue
		}
		c := port.Correction{CampaignID: id, Previous: prev, Actual: target}
		applied = append(applied, c)
		u.logger.Info("counter reconciled",
			slog.Int64("campaign_id", id), slog.Int64("previous", c.Previous), slog.Int64("actual", c.Actual))
	}
	return applied, moved, nil
}
