package commands

import (
	"context"
	"log/slog"
	"strings"
	"time"

	application "madison/contexts/identity-access/role-service/application"
	domainerrors "madison/contexts/identity-access/role-service/domain/errors"
	"madison/contexts/identity-access/role-service/ports"
)

// RevokeAdvertiserCommand contains transport-agnostic input for advertiser revocation.
type RevokeAdvertiserCommand struct {
	CallerID string
	TargetID string
}

// RevokeAdvertiserResult reports whether the revocation changed state.
// Revoking a never-granted address is a no-op success.
type RevokeAdvertiserResult struct {
	Address string `json:"address"`
	Changed bool   `json:"changed"`
}

// RevokeAdvertiserUseCase coordinates administrator-gated advertiser revocation.
type RevokeAdvertiserUseCase struct {
	Repository  ports.Repository
	Outbox      ports.OutboxWriter
	Clock       ports.Clock
	IDGenerator ports.IDGenerator
	Logger      *slog.Logger
}

func (u RevokeAdvertiserUseCase) Execute(ctx context.Context, cmd RevokeAdvertiserCommand) (RevokeAdvertiserResult, error) {
	logger := application.ResolveLogger(u.Logger)

	caller := strings.TrimSpace(cmd.CallerID)
	target := strings.TrimSpace(cmd.TargetID)

	isAdmin, err := u.Repository.IsAdministrator(ctx, caller)
	if err != nil {
		return RevokeAdvertiserResult{}, err
	}
	if !isAdmin {
		return RevokeAdvertiserResult{}, domainerrors.ErrNotAdministrator
	}

	if target == "" {
		// Null target revocation has nothing to deactivate.
		return RevokeAdvertiserResult{Address: target, Changed: false}, nil
	}

	now := u.now()
	changed, err := u.Repository.DeactivateAdvertiserGrant(ctx, target, now)
	if err != nil {
		logger.Error("advertiser revoke write failed",
			"event", "role_revoke_advertiser_write_failed",
			"module", "identity-access/role-service",
			"layer", "application",
			"target", target,
			"caller", caller,
			"error", err.Error(),
		)
		return RevokeAdvertiserResult{}, err
	}

	if changed && u.Outbox != nil {
		eventID, err := u.IDGenerator.NewID(ctx)
		if err != nil {
			return RevokeAdvertiserResult{}, err
		}
		envelope, err := newRoleEnvelope(
			eventID,
			"role.advertiser_revoked",
			target,
			now,
			map[string]any{
				"address":    target,
				"revoked_by": caller,
			},
		)
		if err != nil {
			return RevokeAdvertiserResult{}, err
		}
		if err := u.Outbox.AppendOutbox(ctx, envelope); err != nil {
			return RevokeAdvertiserResult{}, err
		}
	}

	logger.Info("advertiser revoked",
		"event", "role_advertiser_revoked",
		"module", "identity-access/role-service",
		"layer", "application",
		"target", target,
		"caller", caller,
		"changed", changed,
	)
	return RevokeAdvertiserResult{Address: target, Changed: changed}, nil
}

func (u RevokeAdvertiserUseCase) now() time.Time {
	if u.Clock != nil {
		return u.Clock.Now().UTC()
	}
	return time.Now().UTC()
}
