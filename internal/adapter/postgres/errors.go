package postgres

import (
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"clicktracker/internal/core/port"
)

// mapError translates driver errors into port sentinels.
func mapError(op string, err error) error {
	if errors.Is(err, pgx.ErrNoRows) {
		return fmt.Errorf("%s: %w", op, port.ErrNotFound)
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case "23505": // unique_violation
			return fmt.Errorf("%s: %w", op, port.ErrAlreadyExists)
		case "23503", "23514": // foreign_key_violation, check_violation
			return fmt.Errorf("%s: %s: %w", op, pgErr.Detail, port.ErrInvalidInput)
		}
	}
	return port.Unavailable(op, err)
}
