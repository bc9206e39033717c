package configs

// SQLite configures the embedded store. DSN values starting with libsql://
// or wss:// are opened through the libsql driver, everything else through
// modernc.org/sqlite.
type SQLite struct {
	DSN string `env:"DSN" envDefault:"file:clicktracker.db?_pragma=busy_timeout(5000)"`
}
