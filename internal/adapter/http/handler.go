package httpadapter

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"pledge-engine/internal/core/domain"
	"pledge-engine/internal/core/port"
)

// Handler contains dependencies and routes. It is an inbound adapter for HTTP.
// It holds a use case to execute business logic, a logger for structured
// logging and the clock supplying "now" when a request does not pin one.
type Handler struct {
	svc    port.CampaignUseCase
	logger *slog.Logger
	now    func() time.Time
	router chi.Router
}

// Option customises a Handler.
type Option func(*Handler)

// WithClock replaces the wall clock used for requests without an "at"
// parameter.
func WithClock(now func() time.Time) Option {
	return func(h *Handler) { h.now = now }
}

// NewHandler creates a handler with all routes configured.
func NewHandler(svc port.CampaignUseCase, logger *slog.Logger, opts ...Option) *Handler {
	h := &Handler{svc: svc, logger: logger, now: time.Now}
	for _, opt := range opts {
		opt(h)
	}
	r := chi.NewRouter()

	r.Route("/api/v1/campaigns", func(r chi.Router) {
		r.Get("/", h.handleListCampaigns)
		r.Route("/{slug}", func(r chi.Router) {
			r.Get("/", h.handleGetCampaign)
			r.Get("/billing", h.handleBilling)
			r.Post("/amount/validate", h.handleValidateAmount)
			r.Post("/quotes", h.handleQuote)
		})
	})
	h.router = r
	return h
}

// Router returns the underlying http.Handler.
func (h *Handler) Router() http.Handler {
	return h.router
}

// instant returns the "at" query parameter (RFC3339) when present, else the
// handler's clock.
func (h *Handler) instant(r *http.Request) (time.Time, error) {
	at := r.URL.Query().Get("at")
	if at == "" {
		return h.now(), nil
	}
	return time.Parse(time.RFC3339, at)
}

// writeError maps use case errors onto status codes. Unknown errors are
// logged and reported as 500 without detail.
func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	var rejected *port.RejectionError
	switch {
	case errors.Is(err, port.ErrCampaignNotFound):
		http.NotFound(w, r)
	case errors.As(err, &rejected):
		h.writeJSON(w, http.StatusUnprocessableEntity, errorBody{Error: rejected.Reason})
	default:
		if errors.Is(err, domain.ErrInvalidWindow) {
			h.logger.Warn("campaign has invalid window", slog.String("path", r.URL.Path), slog.Any("error", err))
		} else {
			h.logger.Error("request error", slog.String("path", r.URL.Path), slog.Any("error", err))
		}
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}

type errorBody struct {
	Error string `json:"error"`
}

func (h *Handler) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		// encoding should rarely fail; log and move on
		h.logger.Error("encode response error", slog.Any("error", err))
	}
}
