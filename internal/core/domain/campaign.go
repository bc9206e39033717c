package domain

import (
	"strconv"
	"time"
)

// Campaign is a tracked link. Visitors hitting the tracking URL are sent to
// DestinationURL.
type Campaign struct {
	ID             int64
	Name           string
	DestinationURL string
	Active         bool
	PlatformIDs    []int64 // platforms the campaign is shown on
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// ParseCampaignID converts an external identifier into a campaign id. Only
// plain decimal digits of a positive value are accepted; signs, whitespace
// and overflowing values are rejected.
func ParseCampaignID(s string) (int64, bool) {
	if s == "" {
		return 0, false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return 0, false
		}
	}
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}
