package httpadapter

import (
	"context"
	"log/slog"

	application "madison/contexts/identity-access/preference-service/application"
	"madison/contexts/identity-access/preference-service/application/commands"
	"madison/contexts/identity-access/preference-service/application/queries"
	httptransport "madison/contexts/identity-access/preference-service/transport/http"
)

// Handler maps HTTP DTOs to application commands/queries.
type Handler struct {
	SetOptOut        commands.SetGlobalOptOutUseCase
	SetBlock         commands.SetAdvertiserBlockUseCase
	CheckEligibility queries.CheckEligibilityUseCase
	GetPreferences   queries.GetPreferencesUseCase
	Logger           *slog.Logger
}

func (h Handler) SetOptOutHandler(
	ctx context.Context,
	callerID string,
	request httptransport.SetOptOutRequest,
) (httptransport.SetOptOutResponse, error) {
	logger := application.ResolveLogger(h.Logger)
	logger.Debug("http set opt-out received",
		"event", "preference_http_opt_out_received",
		"module", "identity-access/preference-service",
		"layer", "transport",
		"address", callerID,
	)

	result, err := h.SetOptOut.Execute(ctx, commands.SetGlobalOptOutCommand{
		CallerID: callerID,
		OptOut:   request.OptOut,
	})
	if err != nil {
		return httptransport.SetOptOutResponse{}, err
	}
	return httptransport.SetOptOutResponse{
		Address:   result.Address,
		OptOut:    result.OptOut,
		UpdatedAt: result.UpdatedAt,
	}, nil
}

func (h Handler) SetBlockHandler(
	ctx context.Context,
	callerID string,
	advertiserID string,
	request httptransport.SetBlockRequest,
) (httptransport.SetBlockResponse, error) {
	result, err := h.SetBlock.Execute(ctx, commands.SetAdvertiserBlockCommand{
		CallerID:     callerID,
		AdvertiserID: advertiserID,
		Blocked:      request.Blocked,
	})
	if err != nil {
		return httptransport.SetBlockResponse{}, err
	}
	return httptransport.SetBlockResponse{
		Address:    result.Address,
		Advertiser: result.Advertiser,
		Blocked:    result.Blocked,
		UpdatedAt:  result.UpdatedAt,
	}, nil
}

func (h Handler) GetPreferencesHandler(
	ctx context.Context,
	address string,
) (httptransport.PreferencesResponse, error) {
	record, err := h.GetPreferences.Execute(ctx, address)
	if err != nil {
		return httptransport.PreferencesResponse{}, err
	}
	return httptransport.PreferencesResponse{
		Address:            record.Address,
		GlobalOptOut:       record.GlobalOptOut,
		BlockedAdvertisers: record.BlockedAdvertisers,
		UpdatedAt:          record.UpdatedAt,
	}, nil
}

func (h Handler) CheckEligibilityHandler(
	ctx context.Context,
	address string,
	advertiser string,
) (httptransport.EligibilityResponse, error) {
	eligible, err := h.CheckEligibility.Execute(ctx, address, advertiser)
	if err != nil {
		return httptransport.EligibilityResponse{}, err
	}
	return httptransport.EligibilityResponse{
		Address:    address,
		Advertiser: advertiser,
		Eligible:   eligible,
	}, nil
}
