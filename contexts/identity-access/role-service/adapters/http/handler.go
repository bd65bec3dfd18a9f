package httpadapter

import (
	"context"
	"log/slog"

	application "madison/contexts/identity-access/role-service/application"
	"madison/contexts/identity-access/role-service/application/commands"
	"madison/contexts/identity-access/role-service/application/queries"
	httptransport "madison/contexts/identity-access/role-service/transport/http"
)

// Handler maps HTTP DTOs to application commands/queries.
type Handler struct {
	GrantAdvertiser  commands.GrantAdvertiserUseCase
	RevokeAdvertiser commands.RevokeAdvertiserUseCase
	CheckRoles       queries.CheckRolesUseCase
	ListAdvertisers  queries.ListAdvertisersUseCase
	Logger           *slog.Logger
}

func (h Handler) GrantAdvertiserHandler(
	ctx context.Context,
	targetID string,
	callerID string,
) (httptransport.GrantAdvertiserResponse, error) {
	logger := application.ResolveLogger(h.Logger)
	logger.Debug("http grant advertiser received",
		"event", "role_http_grant_received",
		"module", "identity-access/role-service",
		"layer", "transport",
		"target", targetID,
		"caller", callerID,
	)

	result, err := h.GrantAdvertiser.Execute(ctx, commands.GrantAdvertiserCommand{
		CallerID: callerID,
		TargetID: targetID,
	})
	if err != nil {
		return httptransport.GrantAdvertiserResponse{}, err
	}
	return httptransport.GrantAdvertiserResponse{
		Address:   result.Grant.Address,
		GrantedBy: result.Grant.GrantedBy,
		GrantedAt: result.Grant.GrantedAt,
		Changed:   result.Changed,
	}, nil
}

func (h Handler) RevokeAdvertiserHandler(
	ctx context.Context,
	targetID string,
	callerID string,
) (httptransport.RevokeAdvertiserResponse, error) {
	result, err := h.RevokeAdvertiser.Execute(ctx, commands.RevokeAdvertiserCommand{
		CallerID: callerID,
		TargetID: targetID,
	})
	if err != nil {
		return httptransport.RevokeAdvertiserResponse{}, err
	}
	return httptransport.RevokeAdvertiserResponse{
		Address: result.Address,
		Changed: result.Changed,
	}, nil
}

func (h Handler) CheckRolesHandler(
	ctx context.Context,
	address string,
) (httptransport.RoleCheckResponse, error) {
	advertiser, err := h.CheckRoles.IsAdvertiser(ctx, address)
	if err != nil {
		return httptransport.RoleCheckResponse{}, err
	}
	administrator, err := h.CheckRoles.IsAdministrator(ctx, address)
	if err != nil {
		return httptransport.RoleCheckResponse{}, err
	}
	return httptransport.RoleCheckResponse{
		Address:       address,
		Advertiser:    advertiser,
		Administrator: administrator,
	}, nil
}

func (h Handler) ListAdvertisersHandler(ctx context.Context) (httptransport.ListAdvertisersResponse, error) {
	grants, err := h.ListAdvertisers.Execute(ctx)
	if err != nil {
		return httptransport.ListAdvertisersResponse{}, err
	}
	items := make([]httptransport.AdvertiserGrantDTO, 0, len(grants))
	for _, grant := range grants {
		items = append(items, httptransport.AdvertiserGrantDTO{
			Address:   grant.Address,
			GrantedBy: grant.GrantedBy,
			GrantedAt: grant.GrantedAt,
			Active:    grant.Active,
			RevokedAt: grant.RevokedAt,
		})
	}
	return httptransport.ListAdvertisersResponse{Advertisers: items}, nil
}
