package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"
	"slices"
	"strings"

	"clicktracker/internal/core/domain"
	"clicktracker/internal/core/port"
)

// CampaignUseCase implements port.CampaignUseCase for the admin API.
type CampaignUseCase struct {
	campaigns port.CampaignRepository
	platforms port.PlatformRepository
	counter   port.ClickCounter
	logger    *slog.Logger
}

func NewCampaignUseCase(
	campaigns port.CampaignRepository,
	platforms port.PlatformRepository,
	counter port.ClickCounter,
	logger *slog.Logger,
) *CampaignUseCase {
	return &CampaignUseCase{campaigns: campaigns, platforms: platforms, counter: counter, logger: logger}
}

// GetCampaign returns the campaign with its counter value. Click totals
// always come from the counter, never from scanning the log.
func (u *CampaignUseCase) GetCampaign(ctx context.Context, id int64) (*port.CampaignDetails, error) {
	camp, err := u.campaigns.GetCampaign(ctx, id)
	if err != nil {
		return nil, err
	}
	clicks, err := u.counter.GetCount(ctx, id)
	if err != nil {
		return nil, err
	}
	return &port.CampaignDetails{Campaign: *camp, Clicks: clicks}, nil
}

func (u *CampaignUseCase) ListCampaigns(ctx context.Context, filter port.CampaignFilter) ([]port.CampaignDetails, error) {
	camps, err := u.campaigns.ListCampaigns(ctx, filter)
	if err != nil {
		return nil, err
	}
	out := make([]port.CampaignDetails, len(camps))
	if len(camps) == 0 {
		return out, nil
	}
	ids := make([]int64, len(camps))
	for i, c := range camps {
		ids[i] = c.ID
	}
	counts, err := u.counter.GetCounts(ctx, ids)
	if err != nil {
		return nil, err
	}
	for i, c := range camps {
		out[i] = port.CampaignDetails{Campaign: c, Clicks: counts[c.ID]}
	}
	return out, nil
}

func (u *CampaignUseCase) CreateCampaign(ctx context.Context, in port.CampaignInput) (*domain.Campaign, error) {
	if err := validateInput(in); err != nil {
		return nil, err
	}
	camp := &domain.Campaign{
		Name:           strings.TrimSpace(in.Name),
		DestinationURL: strings.TrimSpace(in.DestinationURL),
		Active:         in.Active == nil || *in.Active,
		PlatformIDs:    normalizeIDs(in.PlatformIDs),
	}
	if err := u.campaigns.CreateCampaign(ctx, camp); err != nil {
		return nil, err
	}
	u.logger.Info("campaign created", slog.Int64("campaign_id", camp.ID), slog.String("destination", camp.DestinationURL))
	return camp, nil
}

func (u *CampaignUseCase) UpdateCampaign(ctx context.Context, id int64, in port.CampaignInput) (*domain.Campaign, error) {
	if err := validateInput(in); err != nil {
		return nil, err
	}
	camp, err := u.campaigns.GetCampaign(ctx, id)
	if err != nil {
		return nil, err
	}
	camp.Name = strings.TrimSpace(in.Name)
	camp.DestinationURL = strings.TrimSpace(in.DestinationURL)
	if in.Active != nil {
		camp.Active = *in.Active
	}
	camp.PlatformIDs = normalizeIDs(in.PlatformIDs)
	if err = u.campaigns.UpdateCampaign(ctx, camp); err != nil {
		return nil, err
	}
	u.logger.Info("campaign updated", slog.Int64("campaign_id", camp.ID), slog.Bool("active", camp.Active))
	return camp, nil
}

func (u *CampaignUseCase) DeleteCampaign(ctx context.Context, id int64) error {
	if err := u.campaigns.DeleteCampaign(ctx, id); err != nil {
		return err
	}
	u.logger.Info("campaign deleted", slog.Int64("campaign_id", id))
	return nil
}

func (u *CampaignUseCase) ListPlatforms(ctx context.Context) ([]domain.Platform, error) {
	return u.platforms.ListPlatforms(ctx)
}

func (u *CampaignUseCase) CreatePlatform(ctx context.Context, name string) (*domain.Platform, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		return nil, fmt.Errorf("platform name is required: %w", port.ErrInvalidInput)
	}
	p := &domain.Platform{Name: name}
	if err := u.platforms.CreatePlatform(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func validateInput(in port.CampaignInput) error {
	if strings.TrimSpace(in.Name) == "" {
		return fmt.Errorf("campaign name is required: %w", port.ErrInvalidInput)
	}
	dest := strings.TrimSpace(in.DestinationURL)
	u, err := url.ParseRequestURI(dest)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("destination %q must be an absolute http(s) URL: %w", dest, port.ErrInvalidInput)
	}
	for _, id := range in.PlatformIDs {
		if id <= 0 {
			return fmt.Errorf("platform id %d: %w", id, port.ErrInvalidInput)
		}
	}
	return nil
}

func normalizeIDs(ids []int64) []int64 {
	out := slices.Clone(ids)
	slices.Sort(out)
	return slices.Compact(out)
}
