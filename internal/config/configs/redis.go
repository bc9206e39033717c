package configs

import "time"

// Redis configures the optional Redis click counter backend. An empty Addr
// disables it.
type Redis struct {
	Addr         string        `env:"ADDRESS"`
	Password     string        `env:"PASSWORD"`
	DB           int           `env:"DB" envDefault:"0"`
	PoolSize     int           `env:"POOL_SIZE" envDefault:"10"`
	DialTimeout  time.Duration `env:"DIAL_TIMEOUT" envDefault:"5s"`
	ReadTimeout  time.Duration `env:"READ_TIMEOUT" envDefault:"1s"`
	WriteTimeout time.Duration `env:"WRITE_TIMEOUT" envDefault:"1s"`
	// KeyPrefix namespaces counter keys so several deployments can share a
	// Redis instance.
	KeyPrefix string `env:"KEY_PREFIX" envDefault:"clicktracker"`
}
