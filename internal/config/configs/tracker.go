package configs

import (
	"net/url"
	"time"
)

// Tracker configures redirect resolution and visit recording.
type Tracker struct {
	// DefaultURL is where visitors are sent when a campaign cannot be
	// resolved.
	DefaultURL url.URL `env:"DEFAULT_URL" envDefault:"https://example.com/"`
	// RedirectInactive keeps redirecting visitors of deactivated campaigns.
	RedirectInactive bool          `env:"REDIRECT_INACTIVE" envDefault:"true"`
	RecordTimeout    time.Duration `env:"RECORD_TIMEOUT" envDefault:"2s"`
	// AsyncRecord hands visits to a bounded worker pool instead of
	// recording them before the redirect is written.
	AsyncRecord     bool `env:"ASYNC_RECORD" envDefault:"true"`
	RecordWorkers   int  `env:"RECORD_WORKERS" envDefault:"4"`
	RecordQueueSize int  `env:"RECORD_QUEUE_SIZE" envDefault:"1024"`
	// TrustForwardedFor takes the client address from X-Forwarded-For.
	// Enable only behind a proxy that overwrites the header.
	TrustForwardedFor bool          `env:"TRUST_FORWARDED_FOR" envDefault:"true"`
	CacheTTL          time.Duration `env:"CACHE_TTL" envDefault:"30s"`
	// ReconcileSettle is how old a click must be before reconciliation
	// credits it to the counter. It should exceed the queue wait plus
	// RecordTimeout.
	ReconcileSettle time.Duration `env:"RECONCILE_SETTLE" envDefault:"1m"`
}
