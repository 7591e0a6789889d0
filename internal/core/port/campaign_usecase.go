package port

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"pledge-engine/internal/core/domain"
)

var (
	ErrSignupClosed  = errors.New("signup closed")
	ErrInvalidAmount = errors.New("invalid amount")
)

// RejectionError is returned when a pledge is refused for a reason the
// participant should see. Kind is ErrSignupClosed or ErrInvalidAmount.
type RejectionError struct {
	Kind   error
	Reason string
}

func (e *RejectionError) Error() string {
	return e.Kind.Error() + ": " + e.Reason
}

func (e *RejectionError) Unwrap() error {
	return e.Kind
}

// CampaignUseCase defines the operations the pledge pages call. Every method
// takes the current instant explicitly so results can be pinned in tests
// and previews.
type CampaignUseCase interface {
	// ListCampaigns returns a summary of every campaign as of now.
	ListCampaigns(ctx context.Context, now time.Time) ([]CampaignSummary, error)

	// GetCampaign returns the campaign with its status and signup
	// eligibility as of now. ErrCampaignNotFound is returned for unknown
	// slugs.
	GetCampaign(ctx context.Context, slug string, now time.Time) (*CampaignDetail, error)

	// Billing returns how a daily pledge of the given amount joining now
	// would be billed.
	Billing(ctx context.Context, slug string, daily decimal.Decimal, now time.Time) (*domain.BillingInfo, error)

	// ValidateAmount checks a daily amount, as typed by the participant,
	// against the campaign's constraints.
	ValidateAmount(ctx context.Context, slug string, raw string) (*domain.AmountValidationResult, error)

	// Quote prices a pledge for a participant joining now. A refused pledge
	// fails with a *RejectionError.
	Quote(ctx context.Context, slug string, req PledgeRequest, now time.Time) (*domain.PledgeQuote, error)
}

// CampaignSummary is a campaign as listed to participants.
type CampaignSummary struct {
	ID        uuid.UUID             `json:"id"`
	Slug      string                `json:"slug"`
	Title     string                `json:"title"`
	Window    domain.CampaignWindow `json:"window"`
	DateRange string                `json:"date_range"`
	Status    domain.CampaignStatus `json:"status"`
}

// CampaignDetail adds what a campaign page needs to the summary.
type CampaignDetail struct {
	CampaignSummary
	Description string                   `json:"description"`
	Signup      domain.SignupEligibility `json:"signup"`
	Amounts     domain.AmountConstraints `json:"amounts"`
}

// PledgeRequest is the form input for a new daily pledge. Name and Message
// are free text and end up in payment metadata after sanitization.
type PledgeRequest struct {
	DailyAmount string `json:"daily_amount"`
	Name        string `json:"name"`
	Message     string `json:"message"`
}
