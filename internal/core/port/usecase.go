package port

import (
	"context"
	"time"

	"clicktracker/internal/core/domain"
)

// TrackerUseCase resolves tracking links and records visits.
type TrackerUseCase interface {
	// Resolve maps an external identifier to a destination. Identifiers that
	// are not valid campaign ids and unknown campaigns both yield
	// ErrNotFound. Store failures wrap ErrStorageUnavailable.
	Resolve(ctx context.Context, identifier string) (*Destination, error)

	// RecordVisit appends a click to the log and then increments the
	// campaign's counter. On failure the returned error is a
	// *RecordFailure naming the step that failed.
	RecordVisit(ctx context.Context, visit Visit) error

	// SkewCount returns how many visits were logged but not counted since
	// start.
	SkewCount() int64
}

// VisitQueue accepts visits for asynchronous recording. Submit reports
// false when the visit was dropped.
type VisitQueue interface {
	Submit(visit Visit) bool
}

// Destination is the outcome of a successful Resolve.
type Destination struct {
	CampaignID int64
	URL        string
	Active     bool
}

// Visit describes one request to a tracking URL.
type Visit struct {
	CampaignID int64
	ClientIP   string
	UserAgent  string
	OccurredAt time.Time
}

// CampaignUseCase backs the admin API.
type CampaignUseCase interface {
	GetCampaign(ctx context.Context, id int64) (*CampaignDetails, error)
	ListCampaigns(ctx context.Context, filter CampaignFilter) ([]CampaignDetails, error)
	CreateCampaign(ctx context.Context, in CampaignInput) (*domain.Campaign, error)
	UpdateCampaign(ctx context.Context, id int64, in CampaignInput) (*domain.Campaign, error)
	DeleteCampaign(ctx context.Context, id int64) error
	ListPlatforms(ctx context.Context) ([]domain.Platform, error)
	CreatePlatform(ctx context.Context, name string) (*domain.Platform, error)
}

// CampaignDetails is a campaign together with its click counter value.
type CampaignDetails struct {
	domain.Campaign
	Clicks int64
}

// CampaignInput carries admin edits. A nil Active keeps the current value
// on update and defaults to true on create.
type CampaignInput struct {
	Name           string
	DestinationURL string
	Active         *bool
	PlatformIDs    []int64
}

type AuthUseCase interface {
	// Login checks credentials and issues a session. Any mismatch returns
	// ErrUnauthorized.
	Login(ctx context.Context, name, password string) (*Session, error)
	// Verify validates a session token.
	Verify(token string) (*Session, error)
}

type Session struct {
	Token     string
	Admin     string
	ExpiresAt time.Time
}

// ReconcileUseCase repairs counters from the click log.
type ReconcileUseCase interface {
	// Reconcile recomputes counters from the log for one campaign, or for
	// every campaign with logged clicks when campaignID is nil. It returns
	// the counters it changed.
	Reconcile(ctx context.Context, campaignID *int64) ([]Correction, error)
}

// Correction is one counter change. Actual is the value written, which
// leaves out clicks still within the settle window.
type Correction struct {
	CampaignID int64 `json:"campaign_id"`
	Previous   int64 `json:"previous"`
	Actual     int64 `json:"actual"`
}
