package commands

import (
	"context"
	"log/slog"
	"strings"
	"time"

	application "madison/contexts/identity-access/role-service/application"
	"madison/contexts/identity-access/role-service/domain/entities"
	domainerrors "madison/contexts/identity-access/role-service/domain/errors"
	"madison/contexts/identity-access/role-service/ports"
)

// GrantAdvertiserCommand contains transport-agnostic input for advertiser grants.
type GrantAdvertiserCommand struct {
	CallerID string
	TargetID string
}

// GrantAdvertiserResult reports whether the grant changed state.
// Granting an existing advertiser is a no-op success.
type GrantAdvertiserResult struct {
	Grant   entities.AdvertiserGrant `json:"grant"`
	Changed bool                     `json:"changed"`
}

// GrantAdvertiserUseCase coordinates administrator-gated advertiser grants.
type GrantAdvertiserUseCase struct {
	Repository  ports.Repository
	Outbox      ports.OutboxWriter
	Clock       ports.Clock
	IDGenerator ports.IDGenerator
	Logger      *slog.Logger
}

func (u GrantAdvertiserUseCase) Execute(ctx context.Context, cmd GrantAdvertiserCommand) (GrantAdvertiserResult, error) {
	logger := application.ResolveLogger(u.Logger)

	caller := strings.TrimSpace(cmd.CallerID)
	target := strings.TrimSpace(cmd.TargetID)
	if target == "" {
		return GrantAdvertiserResult{}, domainerrors.ErrNullAddress
	}

	isAdmin, err := u.Repository.IsAdministrator(ctx, caller)
	if err != nil {
		return GrantAdvertiserResult{}, err
	}
	if !isAdmin {
		return GrantAdvertiserResult{}, domainerrors.ErrNotAdministrator
	}

	now := u.now()
	grant := entities.AdvertiserGrant{
		Address:   target,
		GrantedBy: caller,
		GrantedAt: now,
		Active:    true,
	}
	changed, err := u.Repository.UpsertAdvertiserGrant(ctx, grant)
	if err != nil {
		logger.Error("advertiser grant write failed",
			"event", "role_grant_advertiser_write_failed",
			"module", "identity-access/role-service",
			"layer", "application",
			"target", target,
			"caller", caller,
			"error", err.Error(),
		)
		return GrantAdvertiserResult{}, err
	}

	if changed && u.Outbox != nil {
		eventID, err := u.IDGenerator.NewID(ctx)
		if err != nil {
			return GrantAdvertiserResult{}, err
		}
		envelope, err := newRoleEnvelope(
			eventID,
			"role.advertiser_granted",
			target,
			now,
			map[string]any{
				"address":    target,
				"granted_by": caller,
			},
		)
		if err != nil {
			return GrantAdvertiserResult{}, err
		}
		if err := u.Outbox.AppendOutbox(ctx, envelope); err != nil {
			return GrantAdvertiserResult{}, err
		}
	}

	logger.Info("advertiser granted",
		"event", "role_advertiser_granted",
		"module", "identity-access/role-service",
		"layer", "application",
		"target", target,
		"caller", caller,
		"changed", changed,
	)
	return GrantAdvertiserResult{Grant: grant, Changed: changed}, nil
}

func (u GrantAdvertiserUseCase) now() time.Time {
	if u.Clock != nil {
		return u.Clock.Now().UTC()
	}
	return time.Now().UTC()
}
