package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"pledge-engine/internal/core/domain"
	"pledge-engine/internal/core/engine"
	"pledge-engine/internal/core/port"
)

// CampaignUseCase implements port.CampaignUseCase. It loads campaign records
// from the repository and runs the engine on them; it never writes.
type CampaignUseCase struct {
	repo   port.CampaignRepository
	engine *engine.Engine

	// newID issues quote identifiers.
	newID func() uuid.UUID
}

// NewCampaignUseCase creates a use case evaluating campaigns with eng.
func NewCampaignUseCase(repo port.CampaignRepository, eng *engine.Engine) *CampaignUseCase {
	return &CampaignUseCase{repo: repo, engine: eng, newID: uuid.New}
}

// ListCampaigns returns every campaign with its status as of now. Records
// with an invalid window are skipped rather than failing the whole list.
func (u *CampaignUseCase) ListCampaigns(ctx context.Context, now time.Time) ([]port.CampaignSummary, error) {
	campaigns, err := u.repo.ListCampaigns(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]port.CampaignSummary, 0, len(campaigns))
	for i := range campaigns {
		if campaigns[i].Window.Validate() != nil {
			continue
		}
		out = append(out, u.summarize(&campaigns[i], now))
	}
	return out, nil
}

// GetCampaign returns a campaign's page data as of now.
func (u *CampaignUseCase) GetCampaign(ctx context.Context, slug string, now time.Time) (*port.CampaignDetail, error) {
	c, err := u.load(ctx, slug)
	if err != nil {
		return nil, err
	}
	return &port.CampaignDetail{
		CampaignSummary: u.summarize(c, now),
		Description:     c.Description,
		Signup:          u.engine.Signup(c.Window, now),
		Amounts:         c.Amounts,
	}, nil
}

// Billing returns the billing schedule for a daily pledge joining now.
func (u *CampaignUseCase) Billing(ctx context.Context, slug string, daily decimal.Decimal, now time.Time) (*domain.BillingInfo, error) {
	c, err := u.load(ctx, slug)
	if err != nil {
		return nil, err
	}
	info := u.engine.Billing(c.Window, daily, now)
	return &info, nil
}

// ValidateAmount checks raw against the campaign's amount constraints.
func (u *CampaignUseCase) ValidateAmount(ctx context.Context, slug string, raw string) (*domain.AmountValidationResult, error) {
	c, err := u.load(ctx, slug)
	if err != nil {
		return nil, err
	}
	res := engine.ValidateAmountText(raw, c.Amounts)
	return &res, nil
}

// Quote prices a new pledge. Signup eligibility is checked before the
// amount so a closed campaign reports that first.
func (u *CampaignUseCase) Quote(ctx context.Context, slug string, req port.PledgeRequest, now time.Time) (*domain.PledgeQuote, error) {
	c, err := u.load(ctx, slug)
	if err != nil {
		return nil, err
	}

	if signup := u.engine.Signup(c.Window, now); !signup.IsOpen {
		return nil, &port.RejectionError{Kind: port.ErrSignupClosed, Reason: signup.Reason}
	}
	if res := engine.ValidateAmountText(req.DailyAmount, c.Amounts); !res.IsValid {
		return nil, &port.RejectionError{Kind: port.ErrInvalidAmount, Reason: res.Error}
	}
	daily, _ := engine.ParseAmount(req.DailyAmount)

	billing := u.engine.Billing(c.Window, daily, now)
	metadata := map[string]string{
		"campaign_id":    c.ID.String(),
		"campaign_title": c.Title,
		"donor_name":     req.Name,
		"donor_message":  req.Message,
		"daily_amount":   daily.StringFixed(2),
		"billing_start":  billing.BillingStartDate.UTC().Format(time.RFC3339),
	}
	if billing.TotalAmount != nil {
		metadata["total_amount"] = billing.TotalAmount.StringFixed(2)
	}

	return &domain.PledgeQuote{
		ID:          u.newID(),
		CampaignID:  c.ID,
		DailyAmount: daily,
		Billing:     billing,
		Metadata:    engine.SanitizeMetadata(metadata),
	}, nil
}

func (u *CampaignUseCase) load(ctx context.Context, slug string) (*domain.Campaign, error) {
	c, err := u.repo.GetCampaignBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, fmt.Errorf("%w: %q", port.ErrCampaignNotFound, slug)
	}
	if err = c.Window.Validate(); err != nil {
		return nil, fmt.Errorf("campaign %q: %w", slug, err)
	}
	return c, nil
}

func (u *CampaignUseCase) summarize(c *domain.Campaign, now time.Time) port.CampaignSummary {
	return port.CampaignSummary{
		ID:        c.ID,
		Slug:      c.Slug,
		Title:     c.Title,
		Window:    c.Window,
		DateRange: engine.FormatRange(c.Window),
		Status:    u.engine.Classify(c.Window, now),
	}
}
