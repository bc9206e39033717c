package port

import (
	"context"
	"time"

	"clicktracker/internal/core/domain"
)

// CampaignFilter narrows ListCampaigns. A campaign matches PlatformIDs when
// it targets at least one of them.
type CampaignFilter struct {
	PlatformIDs []int64
	ActiveOnly  bool
}

// CampaignRepository persists campaigns. GetCampaign, UpdateCampaign and
// DeleteCampaign return ErrNotFound for unknown ids; unknown platform ids
// yield ErrInvalidInput.
type CampaignRepository interface {
	GetCampaign(ctx context.Context, id int64) (*domain.Campaign, error)
	ListCampaigns(ctx context.Context, filter CampaignFilter) ([]domain.Campaign, error)
	// CreateCampaign stores c and fills in its ID and timestamps.
	CreateCampaign(ctx context.Context, c *domain.Campaign) error
	UpdateCampaign(ctx context.Context, c *domain.Campaign) error
	DeleteCampaign(ctx context.Context, id int64) error
}

type PlatformRepository interface {
	ListPlatforms(ctx context.Context) ([]domain.Platform, error)
	// CreatePlatform returns ErrAlreadyExists when the name is taken.
	CreatePlatform(ctx context.Context, p *domain.Platform) error
}

type AdminRepository interface {
	GetAdminByName(ctx context.Context, name string) (*domain.Admin, error)
	UpsertAdmin(ctx context.Context, a *domain.Admin) error
}

// ClickLog is the append-only record of visits.
type ClickLog interface {
	AppendClick(ctx context.Context, click domain.ClickRecord) error
	CountClicks(ctx context.Context, campaignID int64) (int64, error)
	// ClickTotals returns the number of logged clicks per campaign id.
	ClickTotals(ctx context.Context) (map[int64]int64, error)
	// RecentClicks is ClickTotals restricted to clicks created at or after
	// since.
	RecentClicks(ctx context.Context, since time.Time) (map[int64]int64, error)
}

// ClickCounter keeps one running total per campaign. Implementations must
// make IncrementCounter a single atomic increment-or-create: concurrent
// calls never lose an update and never create a second counter for the
// same campaign.
type ClickCounter interface {
	// IncrementCounter adds one to the campaign's counter, creating it at 1
	// when absent, and returns the new value.
	IncrementCounter(ctx context.Context, campaignID int64) (int64, error)
	// GetCount returns 0 for campaigns without a counter.
	GetCount(ctx context.Context, campaignID int64) (int64, error)
	GetCounts(ctx context.Context, campaignIDs []int64) (map[int64]int64, error)
	// CompareAndSetCount stores count only if the counter still holds
	// previous, and reports whether it did. A missing counter holds 0.
	// Only reconciliation uses it.
	CompareAndSetCount(ctx context.Context, campaignID int64, previous, count int64) (bool, error)
}

// SkewReporter is notified when a click was logged but not counted.
type SkewReporter interface {
	ReportSkew(ctx context.Context, ev SkewEvent) error
}

// Pinger is implemented by backends that can report their health.
type Pinger interface {
	Ping(ctx context.Context) error
}
