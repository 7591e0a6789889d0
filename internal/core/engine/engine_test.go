package engine

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"pledge-engine/internal/core/calendar"
	"pledge-engine/internal/core/domain"
)

func newEngine(t *testing.T) *Engine {
	t.Helper()
	zone, err := calendar.LoadZone("Australia/Melbourne")
	require.NoError(t, err)
	return New(zone)
}

// noon returns midday Melbourne time on the given civil date.
func noon(t *testing.T, e *Engine, s string) time.Time {
	t.Helper()
	return e.Zone().Midnight(calendar.MustParseDate(s)).Add(12 * time.Hour)
}

func date(s string) *calendar.Date {
	d := calendar.MustParseDate(s)
	return &d
}

func window(start, end string) domain.CampaignWindow {
	w := domain.CampaignWindow{StartDate: *date(start)}
	if end != "" {
		w.EndDate = date(end)
	}
	return w
}
