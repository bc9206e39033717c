package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"clicktracker/internal/core/domain"
	"clicktracker/internal/core/port"
)

// ClickRepository implements port.ClickLog and port.ClickCounter. The
// counter relies on the primary key of click_counters: the upsert in
// IncrementCounter is a single statement, so concurrent increments are
// serialised by the row lock and the first one creates the row.
type ClickRepository struct {
	pool *pgxpool.Pool
}

func NewClickRepository(pool *pgxpool.Pool) *ClickRepository {
	return &ClickRepository{pool: pool}
}

func (r *ClickRepository) AppendClick(ctx context.Context, click domain.ClickRecord) error {
	_, err := r.pool.Exec(ctx, `
        INSERT INTO clicks (id, campaign_id, client_ip, user_agent, created_at)
        VALUES ($1, $2, $3, $4, $5)`,
		click.ID, click.CampaignID, click.ClientIP, click.UserAgent, click.CreatedAt)
	if err != nil {
		return mapError("append click", err)
	}
	return nil
}

func (r *ClickRepository) CountClicks(ctx context.Context, campaignID int64) (int64, error) {
	var n int64
	err := r.pool.QueryRow(ctx, `SELECT count(*) FROM clicks WHERE campaign_id = $1`, campaignID).Scan(&n)
	if err != nil {
		return 0, mapError("count clicks", err)
	}
	return n, nil
}

func (r *ClickRepository) ClickTotals(ctx context.Context) (map[int64]int64, error) {
	rows, err := r.pool.Query(ctx, `SELECT campaign_id, count(*) FROM clicks GROUP BY campaign_id`)
	if err != nil {
		return nil, mapError("click totals", err)
	}
	return collectCounts(rows, "click totals")
}

func (r *ClickRepository) RecentClicks(ctx context.Context, since time.Time) (map[int64]int64, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT campaign_id, count(*) FROM clicks WHERE created_at >= $1 GROUP BY campaign_id`, since)
	if err != nil {
		return nil, mapError("recent clicks", err)
	}
	return collectCounts(rows, "recent clicks")
}

func (r *ClickRepository) IncrementCounter(ctx context.Context, campaignID int64) (int64, error) {
	var count int64
	err := r.pool.QueryRow(ctx, `
        INSERT INTO click_counters (campaign_id, count, updated_at)
        VALUES ($1, 1, now())
        ON CONFLICT (campaign_id) DO UPDATE
            SET count = click_counters.count + 1, updated_at = now()
        RETURNING count`, campaignID).Scan(&count)
	if err != nil {
		return 0, mapError(fmt.Sprintf("increment counter %d", campaignID), err)
	}
	return count, nil
}

func (r *ClickRepository) GetCount(ctx context.Context, campaignID int64) (int64, error) {
	var count int64
	err := r.pool.QueryRow(ctx, `SELECT count FROM click_counters WHERE campaign_id = $1`, campaignID).Scan(&count)
	if errors.Is(err, pgx.ErrNoRows) {
		return 0, nil
	}
	if err != nil {
		return 0, mapError("get count", err)
	}
	return count, nil
}

func (r *ClickRepository) GetCounts(ctx context.Context, campaignIDs []int64) (map[int64]int64, error) {
	if len(campaignIDs) == 0 {
		return map[int64]int64{}, nil
	}
	rows, err := r.pool.Query(ctx, `SELECT campaign_id, count FROM click_counters WHERE campaign_id = ANY($1)`, campaignIDs)
	if err != nil {
		return nil, mapError("get counts", err)
	}
	return collectCounts(rows, "get counts")
}

// CompareAndSetCount is a single conditional statement. With previous 0
// it also creates a missing counter.
func (r *ClickRepository) CompareAndSetCount(ctx context.Context, campaignID int64, previous, count int64) (bool, error) {
	if count < 0 {
		return false, fmt.Errorf("counter %d: negative count: %w", campaignID, port.ErrInvalidInput)
	}
	query := `
        UPDATE click_counters SET count = $3, updated_at = now()
        WHERE campaign_id = $1 AND count = $2`
	args := []any{campaignID, previous, count}
	if previous == 0 {
		query = `
        INSERT INTO click_counters (campaign_id, count, updated_at)
        VALUES ($1, $2, now())
        ON CONFLICT (campaign_id) DO UPDATE
            SET count = EXCLUDED.count, updated_at = now()
            WHERE click_counters.count = 0`
		args = []any{campaignID, count}
	}
	tag, err := r.pool.Exec(ctx, query, args...)
	if err != nil {
		return false, mapError(fmt.Sprintf("compare and set count %d", campaignID), err)
	}
	return tag.RowsAffected() == 1, nil
}

func collectCounts(rows pgx.Rows, op string) (map[int64]int64, error) {
	defer rows.Close()
	out := make(map[int64]int64)
	for rows.Next() {
		var id, n int64
		if err := rows.Scan(&id, &n); err != nil {
			return nil, mapError(op, err)
		}
		out[id] = n
	}
	if err := rows.Err(); err != nil {
		return nil, mapError(op, err)
	}
	return out, nil
}
