package queries

import (
	"context"
	"log/slog"
	"strings"

	"madison/contexts/identity-access/role-service/domain/entities"
	"madison/contexts/identity-access/role-service/ports"
)

// CheckRolesUseCase answers pure role membership queries.
type CheckRolesUseCase struct {
	Repository ports.Repository
	Logger     *slog.Logger
}

func (u CheckRolesUseCase) IsAdvertiser(ctx context.Context, address string) (bool, error) {
	address = strings.TrimSpace(address)
	if address == "" {
		return false, nil
	}
	return u.Repository.IsAdvertiser(ctx, address)
}

func (u CheckRolesUseCase) IsAdministrator(ctx context.Context, address string) (bool, error) {
	address = strings.TrimSpace(address)
	if address == "" {
		return false, nil
	}
	return u.Repository.IsAdministrator(ctx, address)
}

// ListAdvertisersUseCase lists advertiser grants for operator tooling.
type ListAdvertisersUseCase struct {
	Repository ports.Repository
	Logger     *slog.Logger
}

func (u ListAdvertisersUseCase) Execute(ctx context.Context) ([]entities.AdvertiserGrant, error) {
	return u.Repository.ListAdvertiserGrants(ctx)
}
