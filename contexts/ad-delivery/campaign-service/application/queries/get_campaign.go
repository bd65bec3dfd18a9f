package queries

import (
	"context"
	"log/slog"

	"madison/contexts/ad-delivery/campaign-service/domain/entities"
	domainerrors "madison/contexts/ad-delivery/campaign-service/domain/errors"
	"madison/contexts/ad-delivery/campaign-service/ports"
)

// GetCampaignUseCase is a pure lookup by campaign id.
// Id 0 is never assigned and always resolves to not found.
type GetCampaignUseCase struct {
	Campaigns ports.CampaignRepository
	Logger    *slog.Logger
}

func (u GetCampaignUseCase) Execute(ctx context.Context, campaignID uint64) (entities.Campaign, error) {
	if campaignID == 0 {
		return entities.Campaign{}, domainerrors.ErrCampaignNotFound
	}
	return u.Campaigns.GetCampaign(ctx, campaignID)
}

// ListCampaignsUseCase lists campaigns with optional owner/active filters.
type ListCampaignsUseCase struct {
	Campaigns ports.CampaignRepository
	Logger    *slog.Logger
}

func (u ListCampaignsUseCase) Execute(ctx context.Context, filter ports.CampaignFilter) ([]entities.Campaign, error) {
	return u.Campaigns.ListCampaigns(ctx, filter)
}
