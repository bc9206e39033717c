package usecase

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"sync/atomic"

	"clicktracker/internal/core/port"
)

// VisitRecorder records visits on a fixed pool of workers fed by a bounded
// queue. It implements port.VisitQueue. When the queue is full, visits are
// dropped and logged rather than blocking the redirect.
type VisitRecorder struct {
	tracker port.TrackerUseCase
	logger  *slog.Logger

	mu      sync.RWMutex // guards closed against concurrent Submit and Close
	closed  bool
	queue   chan port.Visit
	wg      sync.WaitGroup
	dropped atomic.Int64
}

func NewVisitRecorder(tracker port.TrackerUseCase, workers, queueSize int, logger *slog.Logger) *VisitRecorder {
	r := &VisitRecorder{
		tracker: tracker,
		logger:  logger,
		queue:   make(chan port.Visit, queueSize),
	}
	r.wg.Add(workers)
	for i := 0; i < workers; i++ {
		go r.work()
	}
	return r
}

func (r *VisitRecorder) Submit(visit port.Visit) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if r.closed {
		r.drop(visit, "recorder closed")
		return false
	}
	select {
	case r.queue <- visit:
		return true
	default:
		r.drop(visit, "queue full")
		return false
	}
}

func (r *VisitRecorder) drop(visit port.Visit, reason string) {
	r.dropped.Add(1)
	r.logger.Warn("visit dropped", slog.Int64("campaign_id", visit.CampaignID), slog.String("reason", reason))
}

// Dropped returns how many visits were never recorded.
func (r *VisitRecorder) Dropped() int64 { return r.dropped.Load() }

// Close stops accepting visits and waits until the queue is drained.
func (r *VisitRecorder) Close() {
	r.mu.Lock()
	if r.closed {
		r.mu.Unlock()
		return
	}
	r.closed = true
	close(r.queue)
	r.mu.Unlock()
	r.wg.Wait()
}

func (r *VisitRecorder) work() {
	defer r.wg.Done()
	for visit := range r.queue {
		if err := r.tracker.RecordVisit(context.Background(), visit); err != nil {
			logRecordFailure(r.logger, err)
		}
	}
}

// logRecordFailure logs a RecordVisit error at a level matching its impact.
func logRecordFailure(logger *slog.Logger, err error) {
	var failure *port.RecordFailure
	if errors.As(err, &failure) && failure.Skewed() {
		// already reported by the tracker
		return
	}
	logger.Error("record visit", slog.Any("error", err))
}
