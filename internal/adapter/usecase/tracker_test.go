package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"clicktracker/internal/core/domain"
	"clicktracker/internal/core/port"
	"clicktracker/internal/core/port/mocks"
)

type trackerMocks struct {
	campaigns *mocks.MockCampaignRepository
	clicks    *mocks.MockClickLog
	counter   *mocks.MockClickCounter
	skew      *mocks.MockSkewReporter
}

func newTracker(t *testing.T, opts TrackerOptions) (*TrackerUseCase, trackerMocks) {
	m := trackerMocks{
		campaigns: mocks.NewMockCampaignRepository(t),
		clicks:    mocks.NewMockClickLog(t),
		counter:   mocks.NewMockClickCounter(t),
		skew:      mocks.NewMockSkewReporter(t),
	}
	return NewTrackerUseCase(m.campaigns, m.clicks, m.counter, m.skew, discardLogger(), opts), m
}

func TestResolve(t *testing.T) {
	active := &domain.Campaign{ID: 5, DestinationURL: "https://example.com/five", Active: true}
	inactive := &domain.Campaign{ID: 6, DestinationURL: "https://example.com/six", Active: false}

	t.Run("existing campaign", func(t *testing.T) {
		u, m := newTracker(t, TrackerOptions{})
		m.campaigns.EXPECT().GetCampaign(mock.Anything, int64(5)).Return(active, nil)

		dest, err := u.Resolve(context.Background(), "5")
		require.NoError(t, err)
		assert.Equal(t, &port.Destination{CampaignID: 5, URL: "https://example.com/five", Active: true}, dest)
	})

	t.Run("non numeric identifier never reaches the store", func(t *testing.T) {
		u, _ := newTracker(t, TrackerOptions{})
		for _, id := range []string{"abc", "", "-1", "0", "1e3", "99999999999999999999"} {
			_, err := u.Resolve(context.Background(), id)
			assert.ErrorIs(t, err, port.ErrNotFound, id)
		}
	})

	t.Run("unknown campaign", func(t *testing.T) {
		u, m := newTracker(t, TrackerOptions{})
		m.campaigns.EXPECT().GetCampaign(mock.Anything, int64(99)).Return(nil, port.ErrNotFound)

		_, err := u.Resolve(context.Background(), "99")
		assert.ErrorIs(t, err, port.ErrNotFound)
	})

	t.Run("storage failure is not reported as not found", func(t *testing.T) {
		u, m := newTracker(t, TrackerOptions{})
		m.campaigns.EXPECT().GetCampaign(mock.Anything, int64(5)).
			Return(nil, port.Unavailable("get campaign", errors.New("connection refused")))

		_, err := u.Resolve(context.Background(), "5")
		assert.ErrorIs(t, err, port.ErrStorageUnavailable)
		assert.NotErrorIs(t, err, port.ErrNotFound)
	})

	t.Run("inactive campaign redirects by default", func(t *testing.T) {
		u, m := newTracker(t, TrackerOptions{RedirectInactive: true})
		m.campaigns.EXPECT().GetCampaign(mock.Anything, int64(6)).Return(inactive, nil)

		dest, err := u.Resolve(context.Background(), "6")
		require.NoError(t, err)
		assert.False(t, dest.Active)
		assert.Equal(t, "https://example.com/six", dest.URL)
	})

	t.Run("inactive campaign hidden when configured", func(t *testing.T) {
		u, m := newTracker(t, TrackerOptions{RedirectInactive: false})
		m.campaigns.EXPECT().GetCampaign(mock.Anything, int64(6)).Return(inactive, nil)

		_, err := u.Resolve(context.Background(), "6")
		assert.ErrorIs(t, err, port.ErrNotFound)
	})
}

func TestRecordVisit(t *testing.T) {
	visit := port.Visit{CampaignID: 3, ClientIP: "203.0.113.7", UserAgent: "Mozilla/5.0", OccurredAt: time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)}

	t.Run("logs then counts", func(t *testing.T) {
		u, m := newTracker(t, TrackerOptions{})
		var order []string
		m.clicks.EXPECT().AppendClick(mock.Anything, mock.AnythingOfType("domain.ClickRecord")).
			Run(func(_ context.Context, click domain.ClickRecord) {
				order = append(order, "log")
				assert.Equal(t, int64(3), click.CampaignID)
				assert.Equal(t, "203.0.113.7", click.ClientIP)
				assert.Equal(t, "Mozilla/5.0", click.UserAgent)
				assert.Equal(t, visit.OccurredAt, click.CreatedAt)
				assert.NotZero(t, click.ID)
			}).Return(nil)
		m.counter.EXPECT().IncrementCounter(mock.Anything, int64(3)).
			Run(func(context.Context, int64) { order = append(order, "count") }).Return(1, nil)

		require.NoError(t, u.RecordVisit(context.Background(), visit))
		assert.Equal(t, []string{"log", "count"}, order)
		assert.Zero(t, u.SkewCount())
	})

	t.Run("log failure skips counter", func(t *testing.T) {
		u, m := newTracker(t, TrackerOptions{})
		cause := port.Unavailable("append click", errors.New("disk full"))
		m.clicks.EXPECT().AppendClick(mock.Anything, mock.Anything).Return(cause)

		err := u.RecordVisit(context.Background(), visit)
		var failure *port.RecordFailure
		require.ErrorAs(t, err, &failure)
		assert.Equal(t, port.StepLog, failure.Step)
		assert.False(t, failure.Skewed())
		assert.ErrorIs(t, err, port.ErrStorageUnavailable)
		assert.Zero(t, u.SkewCount())
	})

	t.Run("counter failure is reported as skew", func(t *testing.T) {
		u, m := newTracker(t, TrackerOptions{})
		m.clicks.EXPECT().AppendClick(mock.Anything, mock.Anything).Return(nil)
		m.counter.EXPECT().IncrementCounter(mock.Anything, int64(3)).
			Return(0, port.Unavailable("incr", errors.New("timeout")))
		m.skew.EXPECT().ReportSkew(mock.Anything, mock.AnythingOfType("port.SkewEvent")).
			Run(func(_ context.Context, ev port.SkewEvent) {
				assert.Equal(t, int64(3), ev.CampaignID)
				assert.NotEmpty(t, ev.Reason)
			}).Return(nil)

		err := u.RecordVisit(context.Background(), visit)
		var failure *port.RecordFailure
		require.ErrorAs(t, err, &failure)
		assert.Equal(t, port.StepCounter, failure.Step)
		assert.True(t, failure.Skewed())
		assert.Equal(t, int64(1), u.SkewCount())
	})

	t.Run("skew reporter failure does not change the outcome", func(t *testing.T) {
		u, m := newTracker(t, TrackerOptions{})
		m.clicks.EXPECT().AppendClick(mock.Anything, mock.Anything).Return(nil)
		m.counter.EXPECT().IncrementCounter(mock.Anything, int64(3)).Return(0, errors.New("boom"))
		m.skew.EXPECT().ReportSkew(mock.Anything, mock.Anything).Return(errors.New("nats down"))

		err := u.RecordVisit(context.Background(), visit)
		var failure *port.RecordFailure
		require.ErrorAs(t, err, &failure)
		assert.Equal(t, port.StepCounter, failure.Step)
	})

	t.Run("record timeout bounds store calls", func(t *testing.T) {
		u, m := newTracker(t, TrackerOptions{RecordTimeout: 50 * time.Millisecond})
		m.clicks.EXPECT().AppendClick(mock.Anything, mock.Anything).
			RunAndReturn(func(ctx context.Context, _ domain.ClickRecord) error {
				deadline, ok := ctx.Deadline()
				assert.True(t, ok)
				assert.WithinDuration(t, time.Now().Add(50*time.Millisecond), deadline, 50*time.Millisecond)
				<-ctx.Done()
				return port.Unavailable("append click", ctx.Err())
			})

		err := u.RecordVisit(context.Background(), visit)
		assert.ErrorIs(t, err, context.DeadlineExceeded)
	})

	t.Run("zero timestamp defaults to now", func(t *testing.T) {
		u, m := newTracker(t, TrackerOptions{})
		fixed := time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC)
		u.now = func() time.Time { return fixed }
		m.clicks.EXPECT().AppendClick(mock.Anything, mock.Anything).
			Run(func(_ context.Context, click domain.ClickRecord) {
				assert.Equal(t, fixed, click.CreatedAt)
			}).Return(nil)
		m.counter.EXPECT().IncrementCounter(mock.Anything, int64(3)).Return(1, nil)

		require.NoError(t, u.RecordVisit(context.Background(), port.Visit{CampaignID: 3}))
	})
}
