package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	// drivers: libsql for Turso, modernc for local files
	_ "github.com/tursodatabase/libsql-client-go/libsql"
	_ "modernc.org/sqlite"

	"clicktracker/internal/core/port"
)

// Store implements the repository ports on a single SQLite (or Turso)
// database. The pool is limited to one connection, so every statement is
// serialised and no query may be issued while another result set is open.
type Store struct {
	db  *sql.DB
	now func() time.Time
}

// Open connects to dsn and creates the schema. DSNs containing libsql://
// or wss:// go through the libsql driver, all others through
// modernc.org/sqlite.
func Open(ctx context.Context, dsn string) (*Store, error) {
	driverName := "sqlite"
	if strings.Contains(dsn, "libsql://") || strings.Contains(dsn, "wss://") {
		driverName = "libsql"
	}

	db, err := sql.Open(driverName, dsn)
	if err != nil {
		return nil, err
	}
	db.SetMaxOpenConns(1)

	if err = db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, err
	}
	if err = migrate(ctx, db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("sqlite schema: %w", err)
	}
	return &Store{db: db, now: time.Now}, nil
}

func migrate(ctx context.Context, db *sql.DB) error {
	query := `
	PRAGMA foreign_keys = ON;

	CREATE TABLE IF NOT EXISTS platforms (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		name TEXT NOT NULL UNIQUE
	);

	CREATE TABLE IF NOT EXISTS campaigns (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		name TEXT NOT NULL,
		destination_url TEXT NOT NULL,
		active INTEGER NOT NULL DEFAULT 1,
		created_at TEXT NOT NULL,
		updated_at TEXT NOT NULL
	);

	CREATE TABLE IF NOT EXISTS campaign_platforms (
		campaign_id INTEGER NOT NULL,
		platform_id INTEGER NOT NULL,
		PRIMARY KEY (campaign_id, platform_id),
		FOREIGN KEY(campaign_id) REFERENCES campaigns(id) ON DELETE CASCADE,
		FOREIGN KEY(platform_id) REFERENCES platforms(id) ON DELETE CASCADE
	);

	CREATE TABLE IF NOT EXISTS clicks (
		id TEXT PRIMARY KEY,
		campaign_id INTEGER NOT NULL,
		client_ip TEXT NOT NULL DEFAULT '',
		user_agent TEXT NOT NULL DEFAULT '',
		created_at TEXT NOT NULL
	);
	CREATE INDEX IF NOT EXISTS idx_clicks_campaign_id ON clicks(campaign_id);
	CREATE INDEX IF NOT EXISTS idx_clicks_created_at ON clicks(created_at);

	CREATE TABLE IF NOT EXISTS click_counters (
		campaign_id INTEGER PRIMARY KEY,
		count INTEGER NOT NULL DEFAULT 0 CHECK (count >= 0),
		updated_at TEXT NOT NULL
	);

	CREATE TABLE IF NOT EXISTS admins (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		name TEXT NOT NULL UNIQUE,
		password_hash TEXT NOT NULL,
		active INTEGER NOT NULL DEFAULT 1,
		created_at TEXT NOT NULL
	);
	`
	_, err := db.ExecContext(ctx, query)
	return err
}

func (s *Store) Close() error { return s.db.Close() }

func (s *Store) Ping(ctx context.Context) error {
	if err := s.db.PingContext(ctx); err != nil {
		return port.Unavailable("ping sqlite", err)
	}
	return nil
}

func (s *Store) timestamp() string {
	return formatTime(s.now())
}

// timeLayout is RFC 3339 with a fixed nine digit fraction, so stored
// timestamps order correctly as text.
const timeLayout = "2006-01-02T15:04:05.000000000Z07:00"

func formatTime(t time.Time) string {
	return t.UTC().Format(timeLayout)
}

func parseTime(s string) time.Time {
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		return time.Time{}
	}
	return t
}

// mapError translates driver errors into port sentinels. Both drivers
// report constraint failures with SQLite's message text.
func mapError(op string, err error) error {
	if errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("%s: %w", op, port.ErrNotFound)
	}
	msg := err.Error()
	switch {
	case strings.Contains(msg, "UNIQUE constraint failed"):
		return fmt.Errorf("%s: %w", op, port.ErrAlreadyExists)
	case strings.Contains(msg, "FOREIGN KEY constraint failed"), strings.Contains(msg, "CHECK constraint failed"):
		return fmt.Errorf("%s: %w", op, port.ErrInvalidInput)
	}
	return port.Unavailable(op, err)
}

func placeholders(n int) string {
	return strings.TrimSuffix(strings.Repeat("?,", n), ",")
}

func int64Args(ids []int64) []any {
	args := make([]any, len(ids))
	for i, id := range ids {
		args[i] = id
	}
	return args
}
