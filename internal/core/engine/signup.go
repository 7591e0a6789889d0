package engine

import (
	"time"

	"pledge-engine/internal/core/domain"
)

const reasonSignupClosed = "Signup for this campaign has closed"

// Signup reports whether new participants may join on the civil day
// containing now. An explicit signup end date takes priority over the
// campaign end date; with neither, signup stays open once it has opened.
func (e *Engine) Signup(w domain.CampaignWindow, now time.Time) domain.SignupEligibility {
	today := e.zone.Today(now)

	if w.SignupStartDate != nil && w.SignupStartDate.After(today) {
		return domain.SignupEligibility{Reason: "Signup opens on " + w.SignupStartDate.String()}
	}

	end := w.SignupEndDate
	if end == nil {
		end = w.EndDate
	}
	if end != nil && end.Before(today) {
		return domain.SignupEligibility{Reason: reasonSignupClosed}
	}

	return domain.SignupEligibility{IsOpen: true}
}
