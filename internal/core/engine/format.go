package engine

import (
	"pledge-engine/internal/core/domain"
)

const (
	shortDate = "2 Jan"
	longDate  = "2 Jan 2006"
)

// FormatRange renders the window for display, e.g. "1 Mar – 15 Mar 2025" or
// "From 1 Mar 2025 (Ongoing)". The year is printed on the start only when it
// differs from the end year.
func FormatRange(w domain.CampaignWindow) string {
	if w.OpenEnded() {
		return "From " + w.StartDate.Format(longDate) + " (Ongoing)"
	}
	start := w.StartDate.Format(shortDate)
	if w.StartDate.Year != w.EndDate.Year {
		start = w.StartDate.Format(longDate)
	}
	return start + " – " + w.EndDate.Format(longDate)
}
