package port

import (
	"context"
	"errors"

	"pledge-engine/internal/core/domain"
)

var ErrCampaignNotFound = errors.New("campaign not found")

// CampaignRepository is the outbound port to the content repository that
// owns campaign records. The engine only reads from it. Implementations must
// be safe for concurrent use.
type CampaignRepository interface {
	// ListCampaigns returns all published campaigns ordered by start date.
	ListCampaigns(ctx context.Context) ([]domain.Campaign, error)
	// GetCampaignBySlug returns the campaign with the given slug, or nil
	// when none exists.
	GetCampaignBySlug(ctx context.Context, slug string) (*domain.Campaign, error)
}
