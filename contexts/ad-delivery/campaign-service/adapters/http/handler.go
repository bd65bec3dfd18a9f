package httpadapter

import (
	"context"
	"log/slog"

	application "madison/contexts/ad-delivery/campaign-service/application"
	"madison/contexts/ad-delivery/campaign-service/application/commands"
	"madison/contexts/ad-delivery/campaign-service/application/queries"
	"madison/contexts/ad-delivery/campaign-service/domain/entities"
	"madison/contexts/ad-delivery/campaign-service/ports"
	httptransport "madison/contexts/ad-delivery/campaign-service/transport/http"
)

// Handler maps HTTP DTOs to application commands/queries.
type Handler struct {
	CreateCampaign    commands.CreateCampaignUseCase
	SetCampaignStatus commands.SetCampaignStatusUseCase
	GetCampaign       queries.GetCampaignUseCase
	ListCampaigns     queries.ListCampaignsUseCase
	Logger            *slog.Logger
}

func (h Handler) CreateCampaignHandler(
	ctx context.Context,
	callerID string,
	idempotencyKey string,
	req httptransport.CreateCampaignRequest,
) (httptransport.CreateCampaignResponse, error) {
	logger := application.ResolveLogger(h.Logger)
	logger.Debug("http create campaign received",
		"event", "campaign_http_create_received",
		"module", "ad-delivery/campaign-service",
		"layer", "transport",
		"caller", callerID,
	)

	result, err := h.CreateCampaign.Execute(ctx, commands.CreateCampaignCommand{
		CallerID:       callerID,
		ContentRef:     req.ContentRef,
		IdempotencyKey: idempotencyKey,
	})
	if err != nil {
		return httptransport.CreateCampaignResponse{}, err
	}
	return httptransport.CreateCampaignResponse{
		Campaign: campaignDTO(result.Campaign),
		Replayed: result.Replayed,
	}, nil
}

func (h Handler) SetCampaignStatusHandler(
	ctx context.Context,
	callerID string,
	campaignID uint64,
	req httptransport.SetCampaignStatusRequest,
) (httptransport.SetCampaignStatusResponse, error) {
	result, err := h.SetCampaignStatus.Execute(ctx, commands.SetCampaignStatusCommand{
		CallerID:   callerID,
		CampaignID: campaignID,
		Active:     req.Active,
	})
	if err != nil {
		return httptransport.SetCampaignStatusResponse{}, err
	}
	return httptransport.SetCampaignStatusResponse{
		Campaign: campaignDTO(result.Campaign),
	}, nil
}

func (h Handler) GetCampaignHandler(
	ctx context.Context,
	campaignID uint64,
) (httptransport.GetCampaignResponse, error) {
	campaign, err := h.GetCampaign.Execute(ctx, campaignID)
	if err != nil {
		return httptransport.GetCampaignResponse{}, err
	}
	return httptransport.GetCampaignResponse{Campaign: campaignDTO(campaign)}, nil
}

func (h Handler) ListCampaignsHandler(
	ctx context.Context,
	filter ports.CampaignFilter,
) (httptransport.ListCampaignsResponse, error) {
	campaigns, err := h.ListCampaigns.Execute(ctx, filter)
	if err != nil {
		return httptransport.ListCampaignsResponse{}, err
	}
	items := make([]httptransport.CampaignDTO, 0, len(campaigns))
	for _, campaign := range campaigns {
		items = append(items, campaignDTO(campaign))
	}
	return httptransport.ListCampaignsResponse{Campaigns: items}, nil
}

func campaignDTO(campaign entities.Campaign) httptransport.CampaignDTO {
	return httptransport.CampaignDTO{
		CampaignID: campaign.CampaignID,
		Owner:      campaign.OwnerID,
		ContentRef: campaign.ContentRef,
		Active:     campaign.Active,
		CreatedAt:  campaign.CreatedAt,
		UpdatedAt:  campaign.UpdatedAt,
	}
}
