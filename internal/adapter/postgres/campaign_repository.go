package postgres

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"clicktracker/internal/core/domain"
	"clicktracker/internal/core/port"
)

// CampaignRepository implements port.CampaignRepository and
// port.PlatformRepository using pgxpool for PostgreSQL.
type CampaignRepository struct {
	pool *pgxpool.Pool
}

// NewCampaignRepository returns a new repository instance.
func NewCampaignRepository(pool *pgxpool.Pool) *CampaignRepository {
	return &CampaignRepository{pool: pool}
}

const selectCampaign = `
        SELECT
            c.id,
            c.name,
            c.destination_url,
            c.active,
            c.created_at,
            c.updated_at,
            COALESCE(array_agg(cp.platform_id ORDER BY cp.platform_id)
                     FILTER (WHERE cp.platform_id IS NOT NULL), '{}')
        FROM campaigns c
        LEFT JOIN campaign_platforms cp ON cp.campaign_id = c.id`

func scanCampaign(row pgx.CollectableRow) (domain.Campaign, error) {
	var c domain.Campaign
	err := row.Scan(&c.ID, &c.Name, &c.DestinationURL, &c.Active, &c.CreatedAt, &c.UpdatedAt, &c.PlatformIDs)
	return c, err
}

// GetCampaign returns a campaign by id.
func (r *CampaignRepository) GetCampaign(ctx context.Context, id int64) (*domain.Campaign, error) {
	rows, err := r.pool.Query(ctx, selectCampaign+` WHERE c.id = $1 GROUP BY c.id`, id)
	if err != nil {
		return nil, mapError("get campaign", err)
	}
	c, err := pgx.CollectExactlyOneRow(rows, scanCampaign)
	if err != nil {
		return nil, mapError(fmt.Sprintf("get campaign %d", id), err)
	}
	return &c, nil
}

// ListCampaigns returns campaigns ordered by id.
func (r *CampaignRepository) ListCampaigns(ctx context.Context, filter port.CampaignFilter) ([]domain.Campaign, error) {
	var (
		where []string
		args  []any
	)
	if filter.ActiveOnly {
		where = append(where, "c.active")
	}
	if len(filter.PlatformIDs) > 0 {
		args = append(args, filter.PlatformIDs)
		where = append(where, fmt.Sprintf(
			"EXISTS (SELECT 1 FROM campaign_platforms f WHERE f.campaign_id = c.id AND f.platform_id = ANY($%d))", len(args)))
	}
	query := selectCampaign
	if len(where) > 0 {
		query += " WHERE " + strings.Join(where, " AND ")
	}
	query += " GROUP BY c.id ORDER BY c.id"

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, mapError("list campaigns", err)
	}
	campaigns, err := pgx.CollectRows(rows, scanCampaign)
	if err != nil {
		return nil, mapError("list campaigns", err)
	}
	return campaigns, nil
}

// CreateCampaign inserts the campaign and its platform links in one
// transaction.
func (r *CampaignRepository) CreateCampaign(ctx context.Context, c *domain.Campaign) (err error) {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return mapError("create campaign", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
		}
	}()

	err = tx.QueryRow(ctx, `
        INSERT INTO campaigns (name, destination_url, active)
        VALUES ($1, $2, $3)
        RETURNING id, created_at, updated_at`,
		c.Name, c.DestinationURL, c.Active).Scan(&c.ID, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		return mapError("create campaign", err)
	}
	if err = linkPlatforms(ctx, tx, c.ID, c.PlatformIDs); err != nil {
		return err
	}
	if err = tx.Commit(ctx); err != nil {
		return mapError("create campaign", err)
	}
	return nil
}

// UpdateCampaign overwrites the campaign's fields and replaces its
// platform links.
func (r *CampaignRepository) UpdateCampaign(ctx context.Context, c *domain.Campaign) (err error) {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return mapError("update campaign", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
		}
	}()

	err = tx.QueryRow(ctx, `
        UPDATE campaigns
        SET name = $2, destination_url = $3, active = $4, updated_at = now()
        WHERE id = $1
        RETURNING created_at, updated_at`,
		c.ID, c.Name, c.DestinationURL, c.Active).Scan(&c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		return mapError(fmt.Sprintf("update campaign %d", c.ID), err)
	}
	if _, err = tx.Exec(ctx, `DELETE FROM campaign_platforms WHERE campaign_id = $1`, c.ID); err != nil {
		return mapError("update campaign platforms", err)
	}
	if err = linkPlatforms(ctx, tx, c.ID, c.PlatformIDs); err != nil {
		return err
	}
	if err = tx.Commit(ctx); err != nil {
		return mapError("update campaign", err)
	}
	return nil
}

func linkPlatforms(ctx context.Context, tx pgx.Tx, campaignID int64, platformIDs []int64) error {
	if len(platformIDs) == 0 {
		return nil
	}
	_, err := tx.Exec(ctx, `
        INSERT INTO campaign_platforms (campaign_id, platform_id)
        SELECT $1, unnest($2::bigint[])
        ON CONFLICT DO NOTHING`, campaignID, platformIDs)
	if err != nil {
		return mapError("link platforms", err)
	}
	return nil
}

// DeleteCampaign removes the campaign. Its clicks and counter stay.
func (r *CampaignRepository) DeleteCampaign(ctx context.Context, id int64) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM campaigns WHERE id = $1`, id)
	if err != nil {
		return mapError("delete campaign", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("delete campaign %d: %w", id, port.ErrNotFound)
	}
	return nil
}

func (r *CampaignRepository) ListPlatforms(ctx context.Context) ([]domain.Platform, error) {
	rows, err := r.pool.Query(ctx, `SELECT id, name FROM platforms ORDER BY id`)
	if err != nil {
		return nil, mapError("list platforms", err)
	}
	platforms, err := pgx.CollectRows(rows, pgx.RowToStructByPos[domain.Platform])
	if err != nil {
		return nil, mapError("list platforms", err)
	}
	return platforms, nil
}

func (r *CampaignRepository) CreatePlatform(ctx context.Context, p *domain.Platform) error {
	err := r.pool.QueryRow(ctx, `INSERT INTO platforms (name) VALUES ($1) RETURNING id`, p.Name).Scan(&p.ID)
	if err != nil {
		return mapError(fmt.Sprintf("create platform %q", p.Name), err)
	}
	return nil
}

// Ping checks connectivity for the health endpoint.
func (r *CampaignRepository) Ping(ctx context.Context) error {
	if err := r.pool.Ping(ctx); err != nil {
		return port.Unavailable("ping postgres", err)
	}
	return nil
}
