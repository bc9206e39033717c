package domain

import (
	"time"

	"github.com/google/uuid"
)

// ClickRecord is one entry of the append-only click log. CampaignID is not
// required to reference an existing campaign.
type ClickRecord struct {
	ID         uuid.UUID
	CampaignID int64
	ClientIP   string
	UserAgent  string
	CreatedAt  time.Time
}

// ClickCounter is the running total of clicks for a campaign. It is
// created lazily on the first recorded click.
type ClickCounter struct {
	CampaignID int64
	Count      int64
	UpdatedAt  time.Time
}
