package httpadapter

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"clicktracker/internal/core/domain"
	"clicktracker/internal/core/port"
)

func (h *Handler) campaignID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, ok := domain.ParseCampaignID(chi.URLParam(r, "id"))
	if !ok {
		h.writeError(w, http.StatusBadRequest, "Bad request")
	}
	return id, ok
}

// handleListCampaigns accepts repeated `platform` query parameters and an
// optional `active=true`.
func (h *Handler) handleListCampaigns(w http.ResponseWriter, r *http.Request) {
	var filter port.CampaignFilter
	q := r.URL.Query()
	for _, raw := range q["platform"] {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || id <= 0 {
			h.writeError(w, http.StatusBadRequest, "invalid platform")
			return
		}
		filter.PlatformIDs = append(filter.PlatformIDs, id)
	}
	if v := q.Get("active"); v != "" {
		active, err := strconv.ParseBool(v)
		if err != nil {
			h.writeError(w, http.StatusBadRequest, "invalid active")
			return
		}
		filter.ActiveOnly = active
	}

	list, err := h.svc.Campaigns.ListCampaigns(r.Context(), filter)
	if err != nil {
		h.writeUseCaseError(w, r, err)
		return
	}
	out := make([]campaignResponse, len(list))
	for i, d := range list {
		out[i] = toCampaignResponse(d)
	}
	h.writeJSON(w, http.StatusOK, out)
}

func (h *Handler) handleGetCampaign(w http.ResponseWriter, r *http.Request) {
	id, ok := h.campaignID(w, r)
	if !ok {
		return
	}
	d, err := h.svc.Campaigns.GetCampaign(r.Context(), id)
	if err != nil {
		h.writeUseCaseError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, toCampaignResponse(*d))
}

func (h *Handler) handleCreateCampaign(w http.ResponseWriter, r *http.Request) {
	var req campaignRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, http.StatusBadRequest, "invalid JSON")
		return
	}
	c, err := h.svc.Campaigns.CreateCampaign(r.Context(), req.input())
	if err != nil {
		h.writeUseCaseError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusCreated, idResponse{ID: c.ID})
}

func (h *Handler) handleUpdateCampaign(w http.ResponseWriter, r *http.Request) {
	id, ok := h.campaignID(w, r)
	if !ok {
		return
	}
	var req campaignRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, http.StatusBadRequest, "invalid JSON")
		return
	}
	c, err := h.svc.Campaigns.UpdateCampaign(r.Context(), id, req.input())
	if err != nil {
		h.writeUseCaseError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, toCampaignResponse(port.CampaignDetails{Campaign: *c}))
}

func (h *Handler) handleDeleteCampaign(w http.ResponseWriter, r *http.Request) {
	id, ok := h.campaignID(w, r)
	if !ok {
		return
	}
	if err := h.svc.Campaigns.DeleteCampaign(r.Context(), id); err != nil {
		h.writeUseCaseError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

type platformDTO struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

func (h *Handler) handleListPlatforms(w http.ResponseWriter, r *http.Request) {
	list, err := h.svc.Campaigns.ListPlatforms(r.Context())
	if err != nil {
		h.writeUseCaseError(w, r, err)
		return
	}
	out := make([]platformDTO, len(list))
	for i, p := range list {
		out[i] = platformDTO{ID: p.ID, Name: p.Name}
	}
	h.writeJSON(w, http.StatusOK, out)
}

func (h *Handler) handleCreatePlatform(w http.ResponseWriter, r *http.Request) {
	var req platformDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, http.StatusBadRequest, "invalid JSON")
		return
	}
	p, err := h.svc.Campaigns.CreatePlatform(r.Context(), req.Name)
	if err != nil {
		h.writeUseCaseError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusCreated, platformDTO{ID: p.ID, Name: p.Name})
}
