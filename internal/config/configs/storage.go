package configs

const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
	DriverMemory   = "memory"

	// CounterStore keeps click counters next to the click log.
	CounterStore = "store"
	CounterRedis = "redis"
)

// Storage selects the persistence backends.
type Storage struct {
	Driver  string `env:"DRIVER" envDefault:"postgres"`
	Counter string `env:"COUNTER" envDefault:"store"`
}
