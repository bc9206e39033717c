package httpadapter

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"clicktracker/internal/core/port"
)

const notFoundMessage = "This campaign does not exist"

// handleClickRedirect resolves {id} and answers 303 See Other to the
// campaign's destination. Unknown campaigns get 404 with Location set to
// the default site. Lookup failures are answered the same way, but logged
// as errors.
func (h *Handler) handleClickRedirect(w http.ResponseWriter, r *http.Request) {
	dest, ok := h.resolve(r)
	if !ok {
		w.Header().Set("Location", h.opts.DefaultURL)
		w.WriteHeader(http.StatusNotFound)
		return
	}
	h.recordVisit(r, dest)
	http.Redirect(w, r, dest.URL, http.StatusSeeOther)
}

type clickResponse struct {
	RedirectURL string `json:"redirectURL"`
}

type clickNotFoundResponse struct {
	Message     string `json:"message"`
	ErrorCode   int    `json:"errorCode"`
	RedirectURL string `json:"redirectURL"`
}

// handleClickJSON is the script-friendly variant: the destination comes
// back in a JSON body instead of a redirect.
func (h *Handler) handleClickJSON(w http.ResponseWriter, r *http.Request) {
	dest, ok := h.resolve(r)
	if !ok {
		h.writeJSON(w, http.StatusNotFound, clickNotFoundResponse{
			Message:     notFoundMessage,
			ErrorCode:   http.StatusNotFound,
			RedirectURL: h.opts.DefaultURL,
		})
		return
	}
	h.recordVisit(r, dest)
	h.writeJSON(w, http.StatusOK, clickResponse{RedirectURL: dest.URL})
}

func (h *Handler) resolve(r *http.Request) (*port.Destination, bool) {
	id := chi.URLParam(r, "id")
	dest, err := h.svc.Tracker.Resolve(r.Context(), id)
	switch {
	case err == nil:
		return dest, true
	case errors.Is(err, port.ErrNotFound):
		h.logger.Debug("campaign not found", slog.String("id", id))
	default:
		h.logger.Error("resolve campaign", slog.String("id", id), slog.Any("error", err))
	}
	return nil, false
}

// recordVisit never influences the response. The request context is
// detached so a visitor closing the connection does not abort recording.
func (h *Handler) recordVisit(r *http.Request, dest *port.Destination) {
	visit := port.Visit{
		CampaignID: dest.CampaignID,
		ClientIP:   clientIP(r, h.opts.TrustForwardedFor),
		UserAgent:  r.UserAgent(),
		OccurredAt: h.now(),
	}
	if h.svc.Visits != nil {
		h.svc.Visits.Submit(visit)
		return
	}

	err := h.svc.Tracker.RecordVisit(context.WithoutCancel(r.Context()), visit)
	var failure *port.RecordFailure
	if err != nil && !(errors.As(err, &failure) && failure.Skewed()) {
		h.logger.Error("record visit", slog.Int64("campaign_id", dest.CampaignID), slog.Any("error", err))
	}
}
