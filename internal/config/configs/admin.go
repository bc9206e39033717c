package configs

import "time"

// Admin configures the back-office login. When PasswordHash is set, the
// admin is created or updated on startup.
type Admin struct {
	Name         string        `env:"NAME" envDefault:"admin"`
	PasswordHash string        `env:"PASSWORD_HASH"`
	JWTSecret    string        `env:"JWT_SECRET"`
	SessionTTL   time.Duration `env:"SESSION_TTL" envDefault:"24h"`
	CookieSecure bool          `env:"COOKIE_SECURE" envDefault:"true"`
}
