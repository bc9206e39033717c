package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	"clicktracker/internal/config/configs"
)

// Config aggregates all configuration sections for the application. Fields
// are populated from environment variables using the caarlos0/env library. The
// nested structs are tagged with envPrefix so their fields are parsed with
// the given prefix. See the individual types in the configs package for
// default values and options. Use Load to construct a Config.
type Config struct {
	// Env specifies the deployment environment (e.g. prod, dev).
	Env string `env:"ENV" envDefault:"prod"`

	HTTP configs.HTTP `envPrefix:"HTTP_"`

	Log configs.Logger `envPrefix:"LOG_"`

	// Psql configures the PostgreSQL connection used when Storage.Driver is
	// "postgres".
	Psql configs.Postgres `envPrefix:"PSQL_"`

	Redis configs.Redis `envPrefix:"REDIS_"`

	SQLite configs.SQLite `envPrefix:"SQLITE_"`

	NATS configs.NATS `envPrefix:"NATS_"`

	// Storage selects the backends for campaigns, the click log and the
	// click counter.
	Storage configs.Storage `envPrefix:"STORAGE_"`

	Tracker configs.Tracker `envPrefix:"TRACKER_"`

	Admin configs.Admin `envPrefix:"ADMIN_"`
}

// Load reads configuration from environment variables into a Config. A .env
// file in the working directory is loaded first when present; variables
// already set in the environment take precedence over it.
func Load() (Config, error) {
	var cfg Config
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return cfg, fmt.Errorf("load .env: %w", err)
	}
	if err := env.Parse(&cfg); err != nil {
		return cfg, err
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Validate checks cross-field constraints env.Parse cannot express.
func (c Config) Validate() error {
	var errs []error

	switch c.Storage.Driver {
	case configs.DriverPostgres, configs.DriverSQLite, configs.DriverMemory:
	default:
		errs = append(errs, fmt.Errorf("unknown STORAGE_DRIVER %q", c.Storage.Driver))
	}

	switch c.Storage.Counter {
	case configs.CounterStore:
	case configs.CounterRedis:
		if c.Redis.Addr == "" {
			errs = append(errs, errors.New("STORAGE_COUNTER=redis requires REDIS_ADDRESS"))
		}
	default:
		errs = append(errs, fmt.Errorf("unknown STORAGE_COUNTER %q", c.Storage.Counter))
	}

	if c.Storage.Driver == configs.DriverSQLite && c.SQLite.DSN == "" {
		errs = append(errs, errors.New("STORAGE_DRIVER=sqlite requires SQLITE_DSN"))
	}

	if c.Tracker.DefaultURL.Scheme == "" || c.Tracker.DefaultURL.Host == "" {
		errs = append(errs, fmt.Errorf("TRACKER_DEFAULT_URL %q must be an absolute URL", c.Tracker.DefaultURL.String()))
	}

	if c.Tracker.AsyncRecord && (c.Tracker.RecordWorkers < 1 || c.Tracker.RecordQueueSize < 1) {
		errs = append(errs, errors.New("TRACKER_ASYNC_RECORD requires positive TRACKER_RECORD_WORKERS and TRACKER_RECORD_QUEUE_SIZE"))
	}

	if c.Tracker.ReconcileSettle < 0 {
		errs = append(errs, errors.New("TRACKER_RECONCILE_SETTLE must not be negative"))
	}

	if c.Admin.PasswordHash != "" && len(c.Admin.JWTSecret) < 16 {
		errs = append(errs, errors.New("ADMIN_JWT_SECRET must be at least 16 bytes when an admin is configured"))
	}

	return errors.Join(errs...)
}
