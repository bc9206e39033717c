package httpadapter

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"sort"
	"time"

	"clicktracker/internal/core/port"
)

type reconcileRequest struct {
	CampaignID *int64 `json:"campaign_id"`
}

type reconcileResponse struct {
	Corrections []port.Correction `json:"corrections"`
}

// handleReconcile recomputes counters from the click log. The body is
// optional; without campaign_id every campaign is reconciled.
func (h *Handler) handleReconcile(w http.ResponseWriter, r *http.Request) {
	var req reconcileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		h.writeError(w, http.StatusBadRequest, "invalid JSON")
		return
	}
	if req.CampaignID != nil && *req.CampaignID <= 0 {
		h.writeError(w, http.StatusBadRequest, "invalid campaign_id")
		return
	}

	corrections, err := h.svc.Reconciler.Reconcile(r.Context(), req.CampaignID)
	if err != nil {
		h.writeUseCaseError(w, r, err)
		return
	}
	admin, _ := AdminFromContext(r.Context())
	h.logger.Info("counters reconciled", slog.String("admin", admin), slog.Int("corrections", len(corrections)))
	h.writeJSON(w, http.StatusOK, reconcileResponse{Corrections: corrections})
}

type backendHealth struct {
	Name  string `json:"name"`
	Error string `json:"error,omitempty"`
}

type healthResponse struct {
	Status      string          `json:"status"`
	Backends    []backendHealth `json:"backends"`
	CounterSkew int64           `json:"counter_skew"`
}

// handleHealth pings every backend with a short timeout and reports the
// number of visits that were logged but not counted since start.
func (h *Handler) handleHealth(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()

	resp := healthResponse{Status: "ok", Backends: []backendHealth{}, CounterSkew: h.svc.Tracker.SkewCount()}
	status := http.StatusOK
	for name, p := range h.svc.Health {
		b := backendHealth{Name: name}
		if err := p.Ping(ctx); err != nil {
			b.Error = err.Error()
			resp.Status = "degraded"
			status = http.StatusServiceUnavailable
		}
		resp.Backends = append(resp.Backends, b)
	}
	sort.Slice(resp.Backends, func(i, j int) bool { return resp.Backends[i].Name < resp.Backends[j].Name })
	h.writeJSON(w, status, resp)
}
