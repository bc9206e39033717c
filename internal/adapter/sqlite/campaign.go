package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"clicktracker/internal/core/domain"
	"clicktracker/internal/core/port"
)

// queryer is satisfied by *sql.DB and *sql.Tx.
type queryer interface {
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

func (s *Store) GetCampaign(ctx context.Context, id int64) (*domain.Campaign, error) {
	var (
		c                    domain.Campaign
		createdAt, updatedAt string
	)
	err := s.db.QueryRowContext(ctx,
		`SELECT id, name, destination_url, active, created_at, updated_at FROM campaigns WHERE id = ?`, id).
		Scan(&c.ID, &c.Name, &c.DestinationURL, &c.Active, &createdAt, &updatedAt)
	if err != nil {
		return nil, mapError(fmt.Sprintf("get campaign %d", id), err)
	}
	c.CreatedAt, c.UpdatedAt = parseTime(createdAt), parseTime(updatedAt)

	links, err := platformLinks(ctx, s.db, []int64{c.ID})
	if err != nil {
		return nil, err
	}
	c.PlatformIDs = links[c.ID]
	return &c, nil
}

func (s *Store) ListCampaigns(ctx context.Context, filter port.CampaignFilter) ([]domain.Campaign, error) {
	var (
		where []string
		args  []any
	)
	if filter.ActiveOnly {
		where = append(where, "c.active = 1")
	}
	if len(filter.PlatformIDs) > 0 {
		where = append(where, fmt.Sprintf(
			"EXISTS (SELECT 1 FROM campaign_platforms f WHERE f.campaign_id = c.id AND f.platform_id IN (%s))",
			placeholders(len(filter.PlatformIDs))))
		args = append(args, int64Args(filter.PlatformIDs)...)
	}
	query := `SELECT c.id, c.name, c.destination_url, c.active, c.created_at, c.updated_at FROM campaigns c`
	if len(where) > 0 {
		query += " WHERE " + strings.Join(where, " AND ")
	}
	query += " ORDER BY c.id"

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, mapError("list campaigns", err)
	}
	var campaigns []domain.Campaign
	for rows.Next() {
		var (
			c                    domain.Campaign
			createdAt, updatedAt string
		)
		if err = rows.Scan(&c.ID, &c.Name, &c.DestinationURL, &c.Active, &createdAt, &updatedAt); err != nil {
			rows.Close()
			return nil, mapError("list campaigns", err)
		}
		c.CreatedAt, c.UpdatedAt = parseTime(createdAt), parseTime(updatedAt)
		campaigns = append(campaigns, c)
	}
	err = rows.Err()
	rows.Close()
	if err != nil {
		return nil, mapError("list campaigns", err)
	}
	if len(campaigns) == 0 {
		return campaigns, nil
	}

	ids := make([]int64, len(campaigns))
	for i, c := range campaigns {
		ids[i] = c.ID
	}
	links, err := platformLinks(ctx, s.db, ids)
	if err != nil {
		return nil, err
	}
	for i := range campaigns {
		campaigns[i].PlatformIDs = links[campaigns[i].ID]
	}
	return campaigns, nil
}

func platformLinks(ctx context.Context, q queryer, campaignIDs []int64) (map[int64][]int64, error) {
	rows, err := q.QueryContext(ctx, fmt.Sprintf(
		`SELECT campaign_id, platform_id FROM campaign_platforms WHERE campaign_id IN (%s) ORDER BY platform_id`,
		placeholders(len(campaignIDs))), int64Args(campaignIDs)...)
	if err != nil {
		return nil, mapError("platform links", err)
	}
	defer rows.Close()

	out := make(map[int64][]int64, len(campaignIDs))
	for rows.Next() {
		var cid, pid int64
		if err = rows.Scan(&cid, &pid); err != nil {
			return nil, mapError("platform links", err)
		}
		out[cid] = append(out[cid], pid)
	}
	if err = rows.Err(); err != nil {
		return nil, mapError("platform links", err)
	}
	return out, nil
}

// linkPlatforms checks that every platform exists before linking, so a
// connection without foreign key enforcement still rejects unknown ids.
func linkPlatforms(ctx context.Context, q queryer, campaignID int64, platformIDs []int64) error {
	if len(platformIDs) == 0 {
		return nil
	}
	var known int
	err := q.QueryRowContext(ctx, fmt.Sprintf(`SELECT count(*) FROM platforms WHERE id IN (%s)`,
		placeholders(len(platformIDs))), int64Args(platformIDs)...).Scan(&known)
	if err != nil {
		return mapError("link platforms", err)
	}
	if known != len(uniq(platformIDs)) {
		return fmt.Errorf("link platforms %v: %w", platformIDs, port.ErrInvalidInput)
	}
	for _, pid := range platformIDs {
		_, err = q.ExecContext(ctx,
			`INSERT INTO campaign_platforms (campaign_id, platform_id) VALUES (?, ?) ON CONFLICT DO NOTHING`, campaignID, pid)
		if err != nil {
			return mapError("link platforms", err)
		}
	}
	return nil
}

func uniq(ids []int64) map[int64]struct{} {
	set := make(map[int64]struct{}, len(ids))
	for _, id := range ids {
		set[id] = struct{}{}
	}
	return set
}

func (s *Store) CreateCampaign(ctx context.Context, c *domain.Campaign) (err error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return mapError("create campaign", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	now := s.timestamp()
	res, err := tx.ExecContext(ctx,
		`INSERT INTO campaigns (name, destination_url, active, created_at, updated_at) VALUES (?, ?, ?, ?, ?)`,
		c.Name, c.DestinationURL, c.Active, now, now)
	if err != nil {
		return mapError("create campaign", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return mapError("create campaign", err)
	}
	if err = linkPlatforms(ctx, tx, id, c.PlatformIDs); err != nil {
		return err
	}
	if err = tx.Commit(); err != nil {
		return mapError("create campaign", err)
	}
	c.ID = id
	c.CreatedAt, c.UpdatedAt = parseTime(now), parseTime(now)
	return nil
}

func (s *Store) UpdateCampaign(ctx context.Context, c *domain.Campaign) (err error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return mapError("update campaign", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	now := s.timestamp()
	var createdAt string
	err = tx.QueryRowContext(ctx,
		`UPDATE campaigns SET name = ?, destination_url = ?, active = ?, updated_at = ? WHERE id = ? RETURNING created_at`,
		c.Name, c.DestinationURL, c.Active, now, c.ID).Scan(&createdAt)
	if err != nil {
		return mapError(fmt.Sprintf("update campaign %d", c.ID), err)
	}
	if _, err = tx.ExecContext(ctx, `DELETE FROM campaign_platforms WHERE campaign_id = ?`, c.ID); err != nil {
		return mapError("update campaign platforms", err)
	}
	if err = linkPlatforms(ctx, tx, c.ID, c.PlatformIDs); err != nil {
		return err
	}
	if err = tx.Commit(); err != nil {
		return mapError("update campaign", err)
	}
	c.CreatedAt, c.UpdatedAt = parseTime(createdAt), parseTime(now)
	return nil
}

// DeleteCampaign removes the campaign and its platform links. Clicks and
// the counter stay.
func (s *Store) DeleteCampaign(ctx context.Context, id int64) (err error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return mapError("delete campaign", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	if _, err = tx.ExecContext(ctx, `DELETE FROM campaign_platforms WHERE campaign_id = ?`, id); err != nil {
		return mapError("delete campaign", err)
	}
	res, err := tx.ExecContext(ctx, `DELETE FROM campaigns WHERE id = ?`, id)
	if err != nil {
		return mapError("delete campaign", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return mapError("delete campaign", err)
	}
	if n == 0 {
		err = fmt.Errorf("delete campaign %d: %w", id, port.ErrNotFound)
		return err
	}
	if err = tx.Commit(); err != nil {
		return mapError("delete campaign", err)
	}
	return nil
}

func (s *Store) ListPlatforms(ctx context.Context) ([]domain.Platform, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT id, name FROM platforms ORDER BY id`)
	if err != nil {
		return nil, mapError("list platforms", err)
	}
	defer rows.Close()

	var platforms []domain.Platform
	for rows.Next() {
		var p domain.Platform
		if err = rows.Scan(&p.ID, &p.Name); err != nil {
			return nil, mapError("list platforms", err)
		}
		platforms = append(platforms, p)
	}
	if err = rows.Err(); err != nil {
		return nil, mapError("list platforms", err)
	}
	return platforms, nil
}

func (s *Store) CreatePlatform(ctx context.Context, p *domain.Platform) error {
	err := s.db.QueryRowContext(ctx, `INSERT INTO platforms (name) VALUES (?) RETURNING id`, p.Name).Scan(&p.ID)
	if err != nil {
		return mapError(fmt.Sprintf("create platform %q", p.Name), err)
	}
	return nil
}

func (s *Store) GetAdminByName(ctx context.Context, name string) (*domain.Admin, error) {
	var (
		a         domain.Admin
		createdAt string
	)
	err := s.db.QueryRowContext(ctx, `SELECT id, name, password_hash, active, created_at FROM admins WHERE name = ?`, name).
		Scan(&a.ID, &a.Name, &a.PasswordHash, &a.Active, &createdAt)
	if err != nil {
		return nil, mapError(fmt.Sprintf("get admin %q", name), err)
	}
	a.CreatedAt = parseTime(createdAt)
	return &a, nil
}

func (s *Store) UpsertAdmin(ctx context.Context, a *domain.Admin) error {
	var createdAt string
	err := s.db.QueryRowContext(ctx, `
		INSERT INTO admins (name, password_hash, active, created_at) VALUES (?, ?, ?, ?)
		ON CONFLICT(name) DO UPDATE SET password_hash = excluded.password_hash, active = excluded.active
		RETURNING id, created_at`,
		a.Name, a.PasswordHash, a.Active, s.timestamp()).Scan(&a.ID, &createdAt)
	if err != nil {
		return mapError("upsert admin", err)
	}
	a.CreatedAt = parseTime(createdAt)
	return nil
}
