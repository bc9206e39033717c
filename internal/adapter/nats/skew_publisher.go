package natsadapter

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/nats-io/nats.go"

	"clicktracker/internal/core/port"
)

// Connect opens a NATS connection that keeps reconnecting in the
// background and logs state changes.
func Connect(url string, logger *slog.Logger) (*nats.Conn, error) {
	return nats.Connect(url,
		nats.Name("clicktracker"),
		nats.MaxReconnects(-1),
		nats.ReconnectWait(2*time.Second),
		nats.DisconnectErrHandler(func(_ *nats.Conn, err error) {
			if err != nil {
				logger.Warn("nats disconnected", slog.Any("error", err))
			}
		}),
		nats.ReconnectHandler(func(nc *nats.Conn) {
			logger.Info("nats reconnected", slog.String("url", nc.ConnectedUrl()))
		}),
	)
}

// SkewPublisher implements port.SkewReporter by publishing JSON encoded
// port.SkewEvent messages on a subject.
type SkewPublisher struct {
	conn    *nats.Conn
	subject string
}

func NewSkewPublisher(conn *nats.Conn, subject string) *SkewPublisher {
	return &SkewPublisher{conn: conn, subject: subject}
}

func (p *SkewPublisher) ReportSkew(_ context.Context, ev port.SkewEvent) error {
	data, err := json.Marshal(ev)
	if err != nil {
		return fmt.Errorf("encode skew event: %w", err)
	}
	if err = p.conn.Publish(p.subject, data); err != nil {
		return fmt.Errorf("publish skew event: %w", err)
	}
	return nil
}
