package domain

import "time"

// Admin is a back-office user. PasswordHash holds a bcrypt hash.
type Admin struct {
	ID           int64
	Name         string
	PasswordHash string
	Active       bool
	CreatedAt    time.Time
}
