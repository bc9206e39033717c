package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"clicktracker/internal/core/domain"
)

// AdminRepository implements port.AdminRepository.
type AdminRepository struct {
	pool *pgxpool.Pool
}

func NewAdminRepository(pool *pgxpool.Pool) *AdminRepository {
	return &AdminRepository{pool: pool}
}

func (r *AdminRepository) GetAdminByName(ctx context.Context, name string) (*domain.Admin, error) {
	var a domain.Admin
	err := r.pool.QueryRow(ctx, `SELECT id, name, password_hash, active, created_at FROM admins WHERE name = $1`, name).
		Scan(&a.ID, &a.Name, &a.PasswordHash, &a.Active, &a.CreatedAt)
	if err != nil {
		return nil, mapError(fmt.Sprintf("get admin %q", name), err)
	}
	return &a, nil
}

func (r *AdminRepository) UpsertAdmin(ctx context.Context, a *domain.Admin) error {
	err := r.pool.QueryRow(ctx, `
        INSERT INTO admins (name, password_hash, active)
        VALUES ($1, $2, $3)
        ON CONFLICT (name) DO UPDATE SET password_hash = EXCLUDED.password_hash, active = EXCLUDED.active
        RETURNING id, created_at`,
		a.Name, a.PasswordHash, a.Active).Scan(&a.ID, &a.CreatedAt)
	if err != nil {
		return mapError("upsert admin", err)
	}
	return nil
}
