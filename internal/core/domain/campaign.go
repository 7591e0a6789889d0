package domain

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"pledge-engine/internal/core/calendar"
)

// ErrInvalidWindow is returned by CampaignWindow.Validate when the dates are
// out of order.
var ErrInvalidWindow = errors.New("invalid campaign window")

// Campaign is a fundraising campaign record as supplied by the content
// repository. Amounts are expressed per day.
type Campaign struct {
	ID          uuid.UUID
	Slug        string
	Title       string
	Description string
	Window      CampaignWindow
	Amounts     AmountConstraints
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// CampaignWindow is the calendar window of a campaign. All dates are civil
// dates in the engine's fixed timezone; EndDate is inclusive. A nil EndDate
// makes the campaign open-ended. The signup dates, when set, restrict when
// new participants may join independently of the campaign dates.
type CampaignWindow struct {
	StartDate       calendar.Date  `json:"start_date"`
	EndDate         *calendar.Date `json:"end_date,omitempty"`
	IsOngoing       bool           `json:"is_ongoing,omitempty"`
	SignupStartDate *calendar.Date `json:"signup_start_date,omitempty"`
	SignupEndDate   *calendar.Date `json:"signup_end_date,omitempty"`
}

// OpenEnded reports whether the window has no usable end: either no end date
// or an explicit ongoing flag.
func (w CampaignWindow) OpenEnded() bool {
	return w.IsOngoing || w.EndDate == nil
}

// Validate checks the ordering of the window's dates. The calculations in
// the engine never call it; callers loading records from storage do.
func (w CampaignWindow) Validate() error {
	if w.StartDate.IsZero() {
		return fmt.Errorf("%w: start date is required", ErrInvalidWindow)
	}
	if w.EndDate != nil && w.EndDate.Before(w.StartDate) {
		return fmt.Errorf("%w: end date %s precedes start date %s", ErrInvalidWindow, w.EndDate, w.StartDate)
	}
	if w.SignupStartDate != nil && w.SignupEndDate != nil && w.SignupEndDate.Before(*w.SignupStartDate) {
		return fmt.Errorf("%w: signup end %s precedes signup start %s", ErrInvalidWindow, w.SignupEndDate, w.SignupStartDate)
	}
	return nil
}

// AmountConstraints bounds the daily amount a participant may pledge. An
// invalid Maximum means no upper bound. When AllowCustom is false and Presets
// is not empty only a preset amount is accepted.
type AmountConstraints struct {
	Minimum     decimal.Decimal     `json:"minimum"`
	Maximum     decimal.NullDecimal `json:"maximum"`
	Presets     []decimal.Decimal   `json:"presets,omitempty"`
	AllowCustom bool                `json:"allow_custom"`
}
