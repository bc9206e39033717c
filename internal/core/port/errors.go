package port

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound is returned when a campaign (or other entity) does not
	// exist. For the tracker it also covers identifiers that are not valid
	// campaign ids.
	ErrNotFound = errors.New("not found")
	// ErrStorageUnavailable marks failures of the underlying store that are
	// not caused by the request itself.
	ErrStorageUnavailable = errors.New("storage unavailable")
	ErrAlreadyExists      = errors.New("already exists")
	ErrInvalidInput       = errors.New("invalid input")
	ErrUnauthorized       = errors.New("unauthorized")
)

// Unavailable wraps a driver error so that callers can match both
// ErrStorageUnavailable and the original cause with errors.Is.
func Unavailable(op string, err error) error {
	return fmt.Errorf("%s: %w", op, errors.Join(ErrStorageUnavailable, err))
}
