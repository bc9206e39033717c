package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"clicktracker/internal/core/domain"
	"clicktracker/internal/core/port"
)

// AuthUseCase implements port.AuthUseCase with bcrypt password hashes and
// HS256 signed session tokens.
type AuthUseCase struct {
	admins port.AdminRepository
	secret []byte
	ttl    time.Duration
	logger *slog.Logger
	now    func() time.Time
	// compared against on unknown names so they cost the same as a wrong password
	dummyHash []byte
}

func NewAuthUseCase(admins port.AdminRepository, secret string, ttl time.Duration, logger *slog.Logger) *AuthUseCase {
	dummy, err := bcrypt.GenerateFromPassword([]byte(uuid.NewString()), bcrypt.DefaultCost)
	if err != nil {
		// only passwords over 72 bytes fail
		panic(fmt.Sprintf("generate dummy hash: %v", err))
	}
	return &AuthUseCase{
		admins:    admins,
		secret:    []byte(secret),
		ttl:       ttl,
		logger:    logger,
		now:       time.Now,
		dummyHash: dummy,
	}
}

func (u *AuthUseCase) Login(ctx context.Context, name, password string) (*port.Session, error) {
	admin, err := u.admins.GetAdminByName(ctx, name)
	switch {
	case errors.Is(err, port.ErrNotFound):
		_ = bcrypt.CompareHashAndPassword(u.dummyHash, []byte(password))
		return nil, fmt.Errorf("admin %q: %w", name, port.ErrUnauthorized)
	case err != nil:
		return nil, err
	}
	if !admin.Active {
		return nil, fmt.Errorf("admin %q is disabled: %w", name, port.ErrUnauthorized)
	}
	if err = bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte(password)); err != nil {
		u.logger.Warn("admin login failed", slog.String("admin", name))
		return nil, fmt.Errorf("admin %q: %w", name, port.ErrUnauthorized)
	}

	now := u.now()
	expires := now.Add(u.ttl)
	claims := jwt.RegisteredClaims{
		Subject:   admin.Name,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(expires),
		ID:        uuid.NewString(),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(u.secret)
	if err != nil {
		return nil, fmt.Errorf("sign session: %w", err)
	}
	u.logger.Info("admin logged in", slog.String("admin", admin.Name))
	return &port.Session{Token: token, Admin: admin.Name, ExpiresAt: expires}, nil
}

func (u *AuthUseCase) Verify(token string) (*port.Session, error) {
	claims := &jwt.RegisteredClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(*jwt.Token) (any, error) {
		return u.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithTimeFunc(u.now), jwt.WithExpirationRequired())
	if err != nil || !parsed.Valid {
		return nil, fmt.Errorf("session: %w", errors.Join(port.ErrUnauthorized, err))
	}
	return &port.Session{Token: token, Admin: claims.Subject, ExpiresAt: claims.ExpiresAt.Time}, nil
}

// EnsureAdmin creates or updates the configured admin account.
func EnsureAdmin(ctx context.Context, admins port.AdminRepository, name, passwordHash string) error {
	if _, err := bcrypt.Cost([]byte(passwordHash)); err != nil {
		return fmt.Errorf("admin password hash: %w", err)
	}
	return admins.UpsertAdmin(ctx, &domain.Admin{Name: name, PasswordHash: passwordHash, Active: true})
}
