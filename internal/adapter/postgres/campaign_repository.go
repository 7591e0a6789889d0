package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"pledge-engine/internal/core/calendar"
	"pledge-engine/internal/core/domain"
)

// CampaignRepository implements port.CampaignRepository using pgxpool for
// PostgreSQL.
type CampaignRepository struct {
	pool *pgxpool.Pool
}

// NewCampaignRepository returns a new repository instance.
func NewCampaignRepository(pool *pgxpool.Pool) *CampaignRepository {
	return &CampaignRepository{pool: pool}
}

// Amounts are read as text so they round-trip into decimals exactly.
const campaignColumns = `
            c.id,
            c.slug,
            c.title,
            c.description,
            c.start_date,
            c.end_date,
            c.is_ongoing,
            c.signup_start_date,
            c.signup_end_date,
            c.minimum_amount::text,
            c.maximum_amount::text,
            COALESCE(c.preset_amounts, '{}')::text[],
            c.allow_custom_amount,
            c.created_at,
            c.updated_at`

// campaignRow mirrors one row of campaignColumns before conversion.
type campaignRow struct {
	c                           domain.Campaign
	start                       time.Time
	end, signupStart, signupEnd *time.Time
	minimum                     string
	maximum                     *string
	presets                     []string
}

// ListCampaigns returns published campaigns ordered by start date.
func (r *CampaignRepository) ListCampaigns(ctx context.Context) ([]domain.Campaign, error) {
	query := `SELECT ` + campaignColumns + `
        FROM campaigns c
        WHERE c.published
        ORDER BY c.start_date, c.slug`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	raw, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (campaignRow, error) {
		return scanCampaign(row)
	})
	if err != nil {
		return nil, err
	}
	campaigns := make([]domain.Campaign, 0, len(raw))
	for _, rc := range raw {
		c, err := rc.toDomain()
		if err != nil {
			return nil, err
		}
		campaigns = append(campaigns, c)
	}
	return campaigns, nil
}

// GetCampaignBySlug returns a published campaign by slug, or nil when there
// is none.
func (r *CampaignRepository) GetCampaignBySlug(ctx context.Context, slug string) (*domain.Campaign, error) {
	query := `SELECT ` + campaignColumns + `
        FROM campaigns c
        WHERE c.slug = $1 AND c.published`
	rc, err := scanCampaign(r.pool.QueryRow(ctx, query, slug))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	c, err := rc.toDomain()
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func scanCampaign(row pgx.Row) (campaignRow, error) {
	var rc campaignRow
	err := row.Scan(
		&rc.c.ID,
		&rc.c.Slug,
		&rc.c.Title,
		&rc.c.Description,
		&rc.start,
		&rc.end,
		&rc.c.Window.IsOngoing,
		&rc.signupStart,
		&rc.signupEnd,
		&rc.minimum,
		&rc.maximum,
		&rc.presets,
		&rc.c.Amounts.AllowCustom,
		&rc.c.CreatedAt,
		&rc.c.UpdatedAt,
	)
	return rc, err
}

func (rc campaignRow) toDomain() (domain.Campaign, error) {
	c := rc.c
	c.Window.StartDate = calendar.DateOf(rc.start.UTC())
	c.Window.EndDate = optionalDate(rc.end)
	c.Window.SignupStartDate = optionalDate(rc.signupStart)
	c.Window.SignupEndDate = optionalDate(rc.signupEnd)

	var err error
	if c.Amounts.Minimum, err = decimal.NewFromString(rc.minimum); err != nil {
		return c, fmt.Errorf("campaign %s: minimum amount: %w", c.Slug, err)
	}
	if rc.maximum != nil {
		maximum, err := decimal.NewFromString(*rc.maximum)
		if err != nil {
			return c, fmt.Errorf("campaign %s: maximum amount: %w", c.Slug, err)
		}
		c.Amounts.Maximum = decimal.NewNullDecimal(maximum)
	}
	c.Amounts.Presets = make([]decimal.Decimal, 0, len(rc.presets))
	for _, p := range rc.presets {
		v, err := decimal.NewFromString(p)
		if err != nil {
			return c, fmt.Errorf("campaign %s: preset amount: %w", c.Slug, err)
		}
		c.Amounts.Presets = append(c.Amounts.Presets, v)
	}
	return c, nil
}

// optionalDate converts a nullable DATE column. pgx decodes DATE as UTC
// midnight, so the calendar day is read in UTC.
func optionalDate(t *time.Time) *calendar.Date {
	if t == nil {
		return nil
	}
	d := calendar.DateOf(t.UTC())
	return &d
}
