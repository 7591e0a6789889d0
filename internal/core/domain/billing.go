package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// BillingInfo describes how a daily pledge joining now is billed for the rest
// of the campaign. RemainingDays and TotalAmount are nil for open-ended
// campaigns; TotalAmount is also nil when no billable days remain.
type BillingInfo struct {
	BillingStartDate time.Time        `json:"billing_start_date"`
	IsLateJoin       bool             `json:"is_late_join"`
	RemainingDays    *int             `json:"remaining_days,omitempty"`
	TotalAmount      *decimal.Decimal `json:"total_amount,omitempty"`
}

// SignupEligibility tells whether new participants may join. Reason is empty
// when signup is open.
type SignupEligibility struct {
	IsOpen bool   `json:"is_open"`
	Reason string `json:"reason,omitempty"`
}

// AmountValidationResult is the outcome of checking a proposed daily amount.
type AmountValidationResult struct {
	IsValid bool   `json:"is_valid"`
	Error   string `json:"error,omitempty"`
}

// PledgeQuote is a priced, not yet persisted, pledge for one participant.
// Metadata is sanitized and safe to forward to a payment processor.
type PledgeQuote struct {
	ID          uuid.UUID         `json:"id"`
	CampaignID  uuid.UUID         `json:"campaign_id"`
	DailyAmount decimal.Decimal   `json:"daily_amount"`
	Billing     BillingInfo       `json:"billing"`
	Metadata    map[string]string `json:"metadata"`
}
