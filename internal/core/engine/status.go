package engine

import (
	"fmt"
	"time"

	"pledge-engine/internal/core/domain"
)

// endingSoonDays is the number of remaining days, today included, at which
// an active campaign is reported as ending soon.
const endingSoonDays = 3

// Classify returns the lifecycle status of the campaign on the civil day
// containing now. Checks run in a fixed order: upcoming, ended, ongoing,
// ending soon, active. A past end date therefore wins over IsOngoing.
func (e *Engine) Classify(w domain.CampaignWindow, now time.Time) domain.CampaignStatus {
	today := e.zone.Today(now)

	if today.Before(w.StartDate) {
		days := e.zone.DaysBetween(today, w.StartDate)
		label := fmt.Sprintf("Starts in %d days", days)
		if days == 1 {
			label = "Starts tomorrow"
		}
		return status(domain.StatusUpcoming, label)
	}

	if w.EndDate != nil && today.After(*w.EndDate) {
		return status(domain.StatusEnded, "Ended")
	}

	if w.OpenEnded() {
		return status(domain.StatusOngoing, "Ongoing")
	}

	// Both today and the end date count.
	remaining := e.zone.DaysBetween(today, *w.EndDate) + 1
	switch {
	case remaining <= 1:
		return status(domain.StatusEndingSoon, "Ends today")
	case remaining == 2:
		return status(domain.StatusEndingSoon, "Ends tomorrow")
	case remaining <= endingSoonDays:
		return status(domain.StatusEndingSoon, fmt.Sprintf("%d days left", remaining))
	}
	return status(domain.StatusActive, fmt.Sprintf("%d days remaining", remaining))
}

func status(s domain.Status, label string) domain.CampaignStatus {
	return domain.CampaignStatus{Status: s, Label: label, Tier: s.Tier()}
}
