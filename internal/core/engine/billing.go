package engine

import (
	"time"

	"github.com/shopspring/decimal"

	"pledge-engine/internal/core/domain"
)

// Billing computes how a daily pledge joining at now is charged. Joining
// before the campaign starts bills from the start date. Joining on or after
// the start date is a late join and bills from the civil day after today.
// With an end date the remaining days are counted inclusively from the
// billing date to the end date, and TotalAmount is set only when at least
// one day remains. Campaigns without an end date have neither.
func (e *Engine) Billing(w domain.CampaignWindow, daily decimal.Decimal, now time.Time) domain.BillingInfo {
	today := e.zone.Today(now)

	ref := w.StartDate
	late := !today.Before(w.StartDate)
	if late {
		ref = today.AddDays(1)
	}

	info := domain.BillingInfo{
		BillingStartDate: e.zone.Midnight(ref),
		IsLateJoin:       late,
	}
	if w.EndDate == nil {
		return info
	}

	remaining := e.zone.DaysBetween(ref, *w.EndDate) + 1
	info.RemainingDays = &remaining
	if remaining > 0 {
		total := daily.Mul(decimal.NewFromInt(int64(remaining)))
		info.TotalAmount = &total
	}
	return info
}
