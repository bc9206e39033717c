package configs

// NATS configures the counter skew event publisher. An empty URL disables
// publishing; skew is then only logged.
type NATS struct {
	URL         string `env:"URL"`
	SkewSubject string `env:"SKEW_SUBJECT" envDefault:"clicktracker.counter.skew"`
}
