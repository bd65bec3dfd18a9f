package queries

import (
	"context"
	"log/slog"
	"strings"

	"madison/contexts/identity-access/preference-service/domain/entities"
	"madison/contexts/identity-access/preference-service/ports"
)

// CheckEligibilityUseCase answers whether a user may receive a distribution
// from one advertiser. Pure read, no side effects.
type CheckEligibilityUseCase struct {
	Repository ports.Repository
	Logger     *slog.Logger
}

func (u CheckEligibilityUseCase) Execute(ctx context.Context, user string, advertiser string) (bool, error) {
	user = strings.TrimSpace(user)
	advertiser = strings.TrimSpace(advertiser)
	if user == "" {
		return false, nil
	}
	return u.Repository.IsEligible(ctx, user, advertiser)
}

// GetPreferencesUseCase returns one user's stored preference record.
type GetPreferencesUseCase struct {
	Repository ports.Repository
	Logger     *slog.Logger
}

func (u GetPreferencesUseCase) Execute(ctx context.Context, address string) (entities.PreferenceRecord, error) {
	return u.Repository.GetPreferences(ctx, strings.TrimSpace(address))
}
