package httpadapter

import (
	"io"
	"log/slog"
	"testing"

	"clicktracker/internal/core/port/mocks"
)

type testMocks struct {
	tracker    *mocks.MockTrackerUseCase
	visits     *mocks.MockVisitQueue
	campaigns  *mocks.MockCampaignUseCase
	auth       *mocks.MockAuthUseCase
	reconciler *mocks.MockReconcileUseCase
}

const defaultURL = "https://default.example.com/"

// newTestHandler wires a handler on mocks. With async false, visits are
// recorded synchronously through the tracker mock.
func newTestHandler(t *testing.T, async bool) (*Handler, testMocks) {
	m := testMocks{
		tracker:    mocks.NewMockTrackerUseCase(t),
		visits:     mocks.NewMockVisitQueue(t),
		campaigns:  mocks.NewMockCampaignUseCase(t),
		auth:       mocks.NewMockAuthUseCase(t),
		reconciler: mocks.NewMockReconcileUseCase(t),
	}
	svc := Services{
		Tracker:    m.tracker,
		Campaigns:  m.campaigns,
		Auth:       m.auth,
		Reconciler: m.reconciler,
	}
	if async {
		svc.Visits = m.visits
	}
	h := NewHandler(svc, Options{DefaultURL: defaultURL, TrustForwardedFor: true}, slog.New(slog.NewTextHandler(io.Discard, nil)))
	return h, m
}
