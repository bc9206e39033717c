package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"sync/atomic"
	"time"

	"github.com/google/uuid"

	"clicktracker/internal/core/domain"
	"clicktracker/internal/core/port"
)

// TrackerOptions tune redirect resolution and visit recording.
type TrackerOptions struct {
	// RedirectInactive resolves deactivated campaigns like active ones.
	RedirectInactive bool
	// RecordTimeout bounds a single RecordVisit call. Zero means no limit
	// beyond the caller's context.
	RecordTimeout time.Duration
}

// TrackerUseCase implements port.TrackerUseCase. It orchestrates the
// campaign store, the click log and the click counter.
type TrackerUseCase struct {
	campaigns port.CampaignRepository
	clicks    port.ClickLog
	counter   port.ClickCounter
	skew      port.SkewReporter
	logger    *slog.Logger
	opts      TrackerOptions

	skewed atomic.Int64
	now    func() time.Time
}

// NewTrackerUseCase wires the tracker. A nil reporter only logs skew.
func NewTrackerUseCase(
	campaigns port.CampaignRepository,
	clicks port.ClickLog,
	counter port.ClickCounter,
	skew port.SkewReporter,
	logger *slog.Logger,
	opts TrackerOptions,
) *TrackerUseCase {
	if skew == nil {
		skew = discardSkew{}
	}
	return &TrackerUseCase{
		campaigns: campaigns,
		clicks:    clicks,
		counter:   counter,
		skew:      skew,
		logger:    logger,
		opts:      opts,
		now:       time.Now,
	}
}

type discardSkew struct{}

func (discardSkew) ReportSkew(context.Context, port.SkewEvent) error { return nil }

// Resolve maps identifier to the campaign's destination. It never touches
// the click log or counter.
func (u *TrackerUseCase) Resolve(ctx context.Context, identifier string) (*port.Destination, error) {
	id, ok := domain.ParseCampaignID(identifier)
	if !ok {
		return nil, fmt.Errorf("campaign %q: %w", identifier, port.ErrNotFound)
	}
	camp, err := u.campaigns.GetCampaign(ctx, id)
	if err != nil {
		return nil, err
	}
	if !camp.Active && !u.opts.RedirectInactive {
		return nil, fmt.Errorf("campaign %d is inactive: %w", id, port.ErrNotFound)
	}
	return &port.Destination{CampaignID: camp.ID, URL: camp.DestinationURL, Active: camp.Active}, nil
}

// RecordVisit logs the click first and counts it second, so a counter
// failure can only leave the counter behind the log, never ahead of it.
func (u *TrackerUseCase) RecordVisit(ctx context.Context, visit port.Visit) error {
	if u.opts.RecordTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, u.opts.RecordTimeout)
		defer cancel()
	}

	id, err := uuid.NewV7()
	if err != nil {
		id = uuid.New()
	}
	click := domain.ClickRecord{
		ID:         id,
		CampaignID: visit.CampaignID,
		ClientIP:   visit.ClientIP,
		UserAgent:  visit.UserAgent,
		CreatedAt:  visit.OccurredAt.UTC(),
	}
	if visit.OccurredAt.IsZero() {
		click.CreatedAt = u.now().UTC()
	}

	if err = u.clicks.AppendClick(ctx, click); err != nil {
		return &port.RecordFailure{Step: port.StepLog, CampaignID: click.CampaignID, ClickID: click.ID, Err: err}
	}

	if _, err = u.counter.IncrementCounter(ctx, click.CampaignID); err != nil {
		total := u.skewed.Add(1)
		u.logger.Warn("click logged but not counted",
			slog.Int64("campaign_id", click.CampaignID),
			slog.String("click_id", click.ID.String()),
			slog.Int64("skewed_total", total),
			slog.Any("error", err),
		)
		u.reportSkew(ctx, click, err)
		return &port.RecordFailure{Step: port.StepCounter, CampaignID: click.CampaignID, ClickID: click.ID, Err: err}
	}
	return nil
}

func (u *TrackerUseCase) reportSkew(ctx context.Context, click domain.ClickRecord, cause error) {
	// ctx may already be expired; the report gets its own short deadline.
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), time.Second)
	defer cancel()

	err := u.skew.ReportSkew(ctx, port.SkewEvent{
		CampaignID: click.CampaignID,
		ClickID:    click.ID,
		OccurredAt: click.CreatedAt,
		Reason:     cause.Error(),
	})
	if err != nil {
		u.logger.Error("report counter skew", slog.Int64("campaign_id", click.CampaignID), slog.Any("error", err))
	}
}

func (u *TrackerUseCase) SkewCount() int64 {
	return u.skewed.Load()
}
