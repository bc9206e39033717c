package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"clicktracker/internal/core/domain"
	"clicktracker/internal/core/port"
)

func (s *Store) AppendClick(ctx context.Context, click domain.ClickRecord) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO clicks (id, campaign_id, client_ip, user_agent, created_at) VALUES (?, ?, ?, ?, ?)`,
		click.ID.String(), click.CampaignID, click.ClientIP, click.UserAgent, formatTime(click.CreatedAt))
	if err != nil {
		return mapError("append click", err)
	}
	return nil
}

func (s *Store) CountClicks(ctx context.Context, campaignID int64) (int64, error) {
	var n int64
	if err := s.db.QueryRowContext(ctx, `SELECT count(*) FROM clicks WHERE campaign_id = ?`, campaignID).Scan(&n); err != nil {
		return 0, mapError("count clicks", err)
	}
	return n, nil
}

func (s *Store) ClickTotals(ctx context.Context) (map[int64]int64, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT campaign_id, count(*) FROM clicks GROUP BY campaign_id`)
	if err != nil {
		return nil, mapError("click totals", err)
	}
	return collectCounts(rows, "click totals")
}

func (s *Store) RecentClicks(ctx context.Context, since time.Time) (map[int64]int64, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT campaign_id, count(*) FROM clicks WHERE created_at >= ? GROUP BY campaign_id`, formatTime(since))
	if err != nil {
		return nil, mapError("recent clicks", err)
	}
	return collectCounts(rows, "recent clicks")
}

// IncrementCounter is a single upsert statement; the first call for a
// campaign inserts the row at 1.
func (s *Store) IncrementCounter(ctx context.Context, campaignID int64) (int64, error) {
	var count int64
	err := s.db.QueryRowContext(ctx, `
		INSERT INTO click_counters (campaign_id, count, updated_at) VALUES (?, 1, ?)
		ON CONFLICT(campaign_id) DO UPDATE SET count = click_counters.count + 1, updated_at = excluded.updated_at
		RETURNING count`, campaignID, s.timestamp()).Scan(&count)
	if err != nil {
		return 0, mapError(fmt.Sprintf("increment counter %d", campaignID), err)
	}
	return count, nil
}

func (s *Store) GetCount(ctx context.Context, campaignID int64) (int64, error) {
	var count int64
	err := s.db.QueryRowContext(ctx, `SELECT count FROM click_counters WHERE campaign_id = ?`, campaignID).Scan(&count)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, nil
	}
	if err != nil {
		return 0, mapError("get count", err)
	}
	return count, nil
}

func (s *Store) GetCounts(ctx context.Context, campaignIDs []int64) (map[int64]int64, error) {
	if len(campaignIDs) == 0 {
		return map[int64]int64{}, nil
	}
	rows, err := s.db.QueryContext(ctx, fmt.Sprintf(
		`SELECT campaign_id, count FROM click_counters WHERE campaign_id IN (%s)`, placeholders(len(campaignIDs))),
		int64Args(campaignIDs)...)
	if err != nil {
		return nil, mapError("get counts", err)
	}
	return collectCounts(rows, "get counts")
}

// CompareAndSetCount is a single conditional statement. With previous 0
// it also creates a missing counter.
func (s *Store) CompareAndSetCount(ctx context.Context, campaignID int64, previous, count int64) (bool, error) {
	if count < 0 {
		return false, fmt.Errorf("counter %d: negative count: %w", campaignID, port.ErrInvalidInput)
	}
	var (
		res sql.Result
		err error
	)
	if previous == 0 {
		res, err = s.db.ExecContext(ctx, `
			INSERT INTO click_counters (campaign_id, count, updated_at) VALUES (?, ?, ?)
			ON CONFLICT(campaign_id) DO UPDATE SET count = excluded.count, updated_at = excluded.updated_at
			WHERE click_counters.count = 0`,
			campaignID, count, s.timestamp())
	} else {
		res, err = s.db.ExecContext(ctx,
			`UPDATE click_counters SET count = ?, updated_at = ? WHERE campaign_id = ? AND count = ?`,
			count, s.timestamp(), campaignID, previous)
	}
	if err != nil {
		return false, mapError(fmt.Sprintf("compare and set count %d", campaignID), err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, mapError(fmt.Sprintf("compare and set count %d", campaignID), err)
	}
	return n == 1, nil
}

// CounterRows returns the number of counter rows stored for a campaign.
func (s *Store) CounterRows(ctx context.Context, campaignID int64) (int, error) {
	var n int
	err := s.db.QueryRowContext(ctx, `SELECT count(*) FROM click_counters WHERE campaign_id = ?`, campaignID).Scan(&n)
	if err != nil {
		return 0, mapError("counter rows", err)
	}
	return n, nil
}

func collectCounts(rows *sql.Rows, op string) (map[int64]int64, error) {
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
