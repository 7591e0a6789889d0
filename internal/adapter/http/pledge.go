package httpadapter

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"pledge-engine/internal/core/engine"
	"pledge-engine/internal/core/port"
)

// handleBilling returns the billing schedule for a daily pledge joining now.
// The `daily_amount` query parameter is required and must be a positive
// number; anything else produces HTTP 400.
func (h *Handler) handleBilling(w http.ResponseWriter, r *http.Request) {
	now, err := h.instant(r)
	if err != nil {
		http.Error(w, "invalid 'at' timestamp", http.StatusBadRequest)
		return
	}
	daily, err := engine.ParseAmount(r.URL.Query().Get("daily_amount"))
	if err != nil || !daily.IsPositive() {
		http.Error(w, "invalid 'daily_amount'", http.StatusBadRequest)
		return
	}
	info, err := h.svc.Billing(r.Context(), chi.URLParam(r, "slug"), daily, now)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, info)
}

type validateAmountRequest struct {
	Amount json.Number `json:"amount"`
}

// handleValidateAmount checks a proposed daily amount. Validation failures
// are a normal outcome and are returned with HTTP 200 and is_valid=false.
func (h *Handler) handleValidateAmount(w http.ResponseWriter, r *http.Request) {
	var req validateAmountRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return
	}
	res, err := h.svc.ValidateAmount(r.Context(), chi.URLParam(r, "slug"), req.Amount.String())
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, res)
}

// handleQuote prices a pledge for a participant joining now. A closed
// signup window or an unacceptable amount produce HTTP 422 with the message
// to show the participant.
func (h *Handler) handleQuote(w http.ResponseWriter, r *http.Request) {
	now, err := h.instant(r)
	if err != nil {
		http.Error(w, "invalid 'at' timestamp", http.StatusBadRequest)
		return
	}
	var req port.PledgeRequest
	if err = json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return
	}
	quote, err := h.svc.Quote(r.Context(), chi.URLParam(r, "slug"), req, now)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.logger.Info("pledge quoted",
		slog.String("campaign_id", quote.CampaignID.String()),
		slog.String("quote_id", quote.ID.String()),
		slog.Bool("late_join", quote.Billing.IsLateJoin),
	)
	h.writeJSON(w, http.StatusCreated, quote)
}
