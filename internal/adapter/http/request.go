package httpadapter

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"clicktracker/internal/core/port"
)

type errorResponse struct {
	StatusCode int    `json:"statusCode"`
	Message    string `json:"message"`
}

func (h *Handler) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		h.logger.Error("encode response error", slog.Any("error", err))
	}
}

func (h *Handler) writeError(w http.ResponseWriter, status int, message string) {
	h.writeJSON(w, status, errorResponse{StatusCode: status, Message: message})
}

// writeUseCaseError maps port sentinels to status codes. Unexpected errors
// are logged and reported as 500 without details.
func (h *Handler) writeUseCaseError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, port.ErrNotFound):
		h.writeError(w, http.StatusNotFound, notFoundMessage)
	case errors.Is(err, port.ErrInvalidInput):
		h.writeError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, port.ErrAlreadyExists):
		h.writeError(w, http.StatusConflict, "Already exists")
	case errors.Is(err, port.ErrUnauthorized):
		h.writeError(w, http.StatusUnauthorized, "Unauthorized")
	default:
		h.logger.Error("admin request failed", slog.String("path", r.URL.Path), slog.Any("error", err))
		h.writeError(w, http.StatusInternalServerError, "Internal server error")
	}
}

type campaignRequest struct {
	Name           string  `json:"name"`
	DestinationURL string  `json:"destination_url"`
	Active         *bool   `json:"active"`
	PlatformIDs    []int64 `json:"platform_ids"`
}

func (c campaignRequest) input() port.CampaignInput {
	return port.CampaignInput{
		Name:           c.Name,
		DestinationURL: c.DestinationURL,
		Active:         c.Active,
		PlatformIDs:    c.PlatformIDs,
	}
}

type campaignResponse struct {
	ID             int64     `json:"id"`
	Name           string    `json:"name"`
	DestinationURL string    `json:"destination_url"`
	Active         bool      `json:"active"`
	PlatformIDs    []int64   `json:"platform_ids"`
	Clicks         int64     `json:"clicks"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

func toCampaignResponse(d port.CampaignDetails) campaignResponse {
	ids := d.PlatformIDs
	if ids == nil {
		ids = []int64{}
	}
	return campaignResponse{
		ID:             d.ID,
		Name:           d.Name,
		DestinationURL: d.DestinationURL,
		Active:         d.Active,
		PlatformIDs:    ids,
		Clicks:         d.Clicks,
		CreatedAt:      d.CreatedAt,
		UpdatedAt:      d.UpdatedAt,
	}
}

type idResponse struct {
	ID int64 `json:"id"`
}
