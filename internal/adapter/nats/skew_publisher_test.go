package natsadapter

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"clicktracker/internal/core/port"
	"clicktracker/internal/testutils"
)

func TestSkewPublisher_ReportSkew(t *testing.T) {
	url := testutils.StartNATS(t)
	conn, err := Connect(url, slog.New(slog.NewTextHandler(io.Discard, nil)))
	require.NoError(t, err)
	t.Cleanup(conn.Close)

	sub, err := conn.SubscribeSync("clicktracker.skew")
	require.NoError(t, err)
	require.NoError(t, conn.Flush())

	ev := port.SkewEvent{
		CampaignID: 42,
		ClickID:    uuid.Must(uuid.NewV7()),
		OccurredAt: time.Date(2026, 3, 1, 12, 30, 0, 0, time.UTC),
		Reason:     "redis: connection refused",
	}
	publisher := NewSkewPublisher(conn, "clicktracker.skew")
	require.NoError(t, publisher.ReportSkew(context.Background(), ev))

	msg, err := sub.NextMsg(5 * time.Second)
	require.NoError(t, err)

	var raw map[string]any
	require.NoError(t, json.Unmarshal(msg.Data, &raw))
	assert.Equal(t, map[string]any{
		"campaign_id": float64(42),
		"click_id":    ev.ClickID.String(),
		"occurred_at": "2026-03-01T12:30:00Z",
		"reason":      "redis: connection refused",
	}, raw)

	var got port.SkewEvent
	require.NoError(t, json.Unmarshal(msg.Data, &got))
	assert.Equal(t, ev, got)
}

func TestSkewPublisher_ClosedConnection(t *testing.T) {
	url := testutils.StartNATS(t)
	conn, err := Connect(url, slog.New(slog.NewTextHandler(io.Discard, nil)))
	require.NoError(t, err)
	conn.Close()

	err = NewSkewPublisher(conn, "clicktracker.skew").ReportSkew(context.Background(), port.SkewEvent{CampaignID: 1})
	assert.ErrorContains(t, err, "publish skew event")
}
