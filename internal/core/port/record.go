package port

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// RecordStep names the part of a visit recording that failed.
type RecordStep string

const (
	StepLog     RecordStep = "click_log"
	StepCounter RecordStep = "click_counter"
)

// RecordFailure is returned by RecordVisit. A failure at StepLog means
// nothing was written. A failure at StepCounter means the click was logged
// but the counter was not incremented, leaving the two out of step until
// reconciled.
type RecordFailure struct {
	Step       RecordStep
	CampaignID int64
	ClickID    uuid.UUID
	Err        error
}

func (f *RecordFailure) Error() string {
	return fmt.Sprintf("record visit for campaign %d at %s: %v", f.CampaignID, f.Step, f.Err)
}

func (f *RecordFailure) Unwrap() error { return f.Err }

// Skewed reports whether the click log and counter now disagree.
func (f *RecordFailure) Skewed() bool { return f.Step == StepCounter }

// SkewEvent is published when a logged click could not be counted.
type SkewEvent struct {
	CampaignID int64     `json:"campaign_id"`
	ClickID    uuid.UUID `json:"click_id"`
	OccurredAt time.Time `json:"occurred_at"`
	Reason     string    `json:"reason"`
}
