package db

import (
	"context"
	"errors"
	"fmt"

	"clicktracker/internal/core/domain"
	"clicktracker/internal/core/port"
)

// DefaultPlatforms are created by Seed.
var DefaultPlatforms = []string{"android", "iphone"}

// Seed inserts the default platforms and, when the store holds no
// campaigns yet, a few demo campaigns. It works against any storage
// driver and is safe to run repeatedly.
func Seed(ctx context.Context, platforms port.PlatformRepository, campaigns port.CampaignRepository) error {
	for _, name := range DefaultPlatforms {
		err := platforms.CreatePlatform(ctx, &domain.Platform{Name: name})
		if err != nil && !errors.Is(err, port.ErrAlreadyExists) {
			return fmt.Errorf("seed platform %q: %w", name, err)
		}
	}

	existing, err := campaigns.ListCampaigns(ctx, port.CampaignFilter{})
	if err != nil {
		return fmt.Errorf("seed: %w", err)
	}
	if len(existing) > 0 {
		return nil
	}

	all, err := platforms.ListPlatforms(ctx)
	if err != nil {
		return fmt.Errorf("seed: %w", err)
	}
	ids := make([]int64, 0, len(all))
	for _, p := range all {
		ids = append(ids, p.ID)
	}

	for i := 1; i <= 3; i++ {
		c := &domain.Campaign{
			Name:           fmt.Sprintf("Campaign %d", i),
			DestinationURL: fmt.Sprintf("https://example.com/landing/%d", i),
			Active:         true,
			PlatformIDs:    ids[:min(i, len(ids))],
		}
		if err = campaigns.CreateCampaign(ctx, c); err != nil {
			return fmt.Errorf("seed campaign %d: %w", i, err)
		}
	}
	return nil
}
