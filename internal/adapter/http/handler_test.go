package httpadapter

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"pledge-engine/internal/adapter/usecase"
	"pledge-engine/internal/core/calendar"
	"pledge-engine/internal/core/domain"
	"pledge-engine/internal/core/engine"
	"pledge-engine/internal/core/port/mocks"
)

// 2025-03-15 12:00 in Melbourne.
var fixedNow = time.Date(2025, 3, 15, 1, 0, 0, 0, time.UTC)

func date(s string) *calendar.Date {
	d := calendar.MustParseDate(s)
	return &d
}

func campaign() *domain.Campaign {
	return &domain.Campaign{
		ID:    uuid.MustParse("11111111-2222-4333-8444-555555555555"),
		Slug:  "autumn-appeal",
		Title: "Autumn Appeal",
		Window: domain.CampaignWindow{
			StartDate: *date("2025-03-10"),
			EndDate:   date("2025-03-20"),
		},
		Amounts: domain.AmountConstraints{
			Minimum: decimal.NewFromInt(1),
			Maximum: decimal.NewNullDecimal(decimal.NewFromInt(100)),
			Presets: []decimal.Decimal{decimal.NewFromInt(5), decimal.NewFromInt(10), decimal.NewFromInt(20)},
		},
	}
}

func newServer(t *testing.T) (http.Handler, *mocks.MockCampaignRepository) {
	t.Helper()
	zone, err := calendar.LoadZone("Australia/Melbourne")
	require.NoError(t, err)
	repo := mocks.NewMockCampaignRepository(t)
	svc := usecase.NewCampaignUseCase(repo, engine.New(zone))
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	h := NewHandler(svc, logger, WithClock(func() time.Time { return fixedNow }))
	return h.Router(), repo
}

func do(t *testing.T, h http.Handler, method, target, body string) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()
	var rd io.Reader
	if body != "" {
		rd = strings.NewReader(body)
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(method, target, rd))

	var out map[string]any
	if strings.HasPrefix(rec.Header().Get("Content-Type"), "application/json") && strings.HasPrefix(rec.Body.String(), "{") {
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	}
	return rec, out
}

func TestListCampaigns(t *testing.T) {
	h, repo := newServer(t)
	repo.EXPECT().ListCampaigns(mock.Anything).Return([]domain.Campaign{*campaign()}, nil)

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/campaigns", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var out []map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	require.Len(t, out, 1)
	assert.Equal(t, "autumn-appeal", out[0]["slug"])
	assert.Equal(t, "10 Mar – 20 Mar 2025", out[0]["date_range"])
	assert.Equal(t, map[string]any{"status": "active", "label": "6 days remaining", "tier": "success"}, out[0]["status"])
}

func TestGetCampaignPinnedInstant(t *testing.T) {
	h, repo := newServer(t)
	repo.EXPECT().GetCampaignBySlug(mock.Anything, "autumn-appeal").Return(campaign(), nil)

	rec, out := do(t, h, http.MethodGet, "/api/v1/campaigns/autumn-appeal?at=2025-03-05T00:00:00Z", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Starts in 5 days", out["status"].(map[string]any)["label"])
	assert.Equal(t, true, out["signup"].(map[string]any)["is_open"])
}

func TestGetCampaignNotFound(t *testing.T) {
	h, repo := newServer(t)
	repo.EXPECT().GetCampaignBySlug(mock.Anything, "nope").Return(nil, nil)

	rec, _ := do(t, h, http.MethodGet, "/api/v1/campaigns/nope", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestGetCampaignRepositoryFailure(t *testing.T) {
	h, repo := newServer(t)
	repo.EXPECT().GetCampaignBySlug(mock.Anything, "autumn-appeal").Return(nil, errors.New("db down"))

	rec, _ := do(t, h, http.MethodGet, "/api/v1/campaigns/autumn-appeal", "")
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.NotContains(t, rec.Body.String(), "db down")
}

func TestInvalidInstant(t *testing.T) {
	h, _ := newServer(t)

	rec, _ := do(t, h, http.MethodGet, "/api/v1/campaigns/autumn-appeal?at=yesterday", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestBilling(t *testing.T) {
	h, repo := newServer(t)
	repo.EXPECT().GetCampaignBySlug(mock.Anything, "autumn-appeal").Return(campaign(), nil)

	rec, out := do(t, h, http.MethodGet, "/api/v1/campaigns/autumn-appeal/billing?daily_amount=10", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, true, out["is_late_join"])
	assert.Equal(t, float64(5), out["remaining_days"])
	assert.Equal(t, "50", out["total_amount"])
	assert.Equal(t, "2025-03-16T00:00:00+11:00", out["billing_start_date"])
}

func TestBillingRejectsBadAmount(t *testing.T) {
	h, _ := newServer(t)

	for _, q := range []string{"", "?daily_amount=abc", "?daily_amount=0", "?daily_amount=-5"} {
		rec, _ := do(t, h, http.MethodGet, "/api/v1/campaigns/autumn-appeal/billing"+q, "")
		assert.Equal(t, http.StatusBadRequest, rec.Code, q)
	}
}

func TestValidateAmount(t *testing.T) {
	h, repo := newServer(t)
	repo.EXPECT().GetCampaignBySlug(mock.Anything, "autumn-appeal").Return(campaign(), nil)

	rec, out := do(t, h, http.MethodPost, "/api/v1/campaigns/autumn-appeal/amount/validate", `{"amount": 7}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, false, out["is_valid"])
	assert.Equal(t, "Please select a valid preset amount", out["error"])

	rec, out = do(t, h, http.MethodPost, "/api/v1/campaigns/autumn-appeal/amount/validate", `{"amount": 20}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, true, out["is_valid"])
	assert.NotContains(t, out, "error")

	rec, _ = do(t, h, http.MethodPost, "/api/v1/campaigns/autumn-appeal/amount/validate", `{`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestQuote(t *testing.T) {
	h, repo := newServer(t)
	repo.EXPECT().GetCampaignBySlug(mock.Anything, "autumn-appeal").Return(campaign(), nil)

	rec, out := do(t, h, http.MethodPost, "/api/v1/campaigns/autumn-appeal/quotes",
		`{"daily_amount": "20", "name": "Sam", "message": "Good luck\n"}`)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	assert.NotEmpty(t, out["id"])
	assert.Equal(t, "20", out["daily_amount"])

	billing := out["billing"].(map[string]any)
	assert.Equal(t, "100", billing["total_amount"])

	metadata := out["metadata"].(map[string]any)
	assert.Equal(t, "Good luck", metadata["donor_message"])
	assert.Equal(t, "100.00", metadata["total_amount"])
}

func TestQuoteRejected(t *testing.T) {
	h, repo := newServer(t)
	repo.EXPECT().GetCampaignBySlug(mock.Anything, "autumn-appeal").Return(campaign(), nil)

	rec, out := do(t, h, http.MethodPost, "/api/v1/campaigns/autumn-appeal/quotes", `{"daily_amount": "0"}`)
	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Equal(t, "Minimum daily amount is $1", out["error"])

	rec, out = do(t, h, http.MethodPost, "/api/v1/campaigns/autumn-appeal/quotes?at=2025-03-25T00:00:00Z", `{"daily_amount": "10"}`)
	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Equal(t, "Signup for this campaign has closed", out["error"])
}
