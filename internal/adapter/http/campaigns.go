package httpadapter

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// handleListCampaigns returns every published campaign with its status and
// display date range. An optional `at` query parameter (RFC3339) pins the
// instant used for classification.
func (h *Handler) handleListCampaigns(w http.ResponseWriter, r *http.Request) {
	now, err := h.instant(r)
	if err != nil {
		http.Error(w, "invalid 'at' timestamp", http.StatusBadRequest)
		return
	}
	campaigns, err := h.svc.ListCampaigns(r.Context(), now)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, campaigns)
}

// handleGetCampaign returns one campaign with its status, signup
// eligibility and amount constraints. Unknown slugs produce HTTP 404.
func (h *Handler) handleGetCampaign(w http.ResponseWriter, r *http.Request) {
	now, err := h.instant(r)
	if err != nil {
		http.Error(w, "invalid 'at' timestamp", http.StatusBadRequest)
		return
	}
	detail, err := h.svc.GetCampaign(r.Context(), chi.URLParam(r, "slug"), now)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, detail)
}
