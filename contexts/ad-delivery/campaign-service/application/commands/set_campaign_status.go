package commands

import (
	"context"
	"log/slog"
	"strings"
	"time"

	application "madison/contexts/ad-delivery/campaign-service/application"
	"madison/contexts/ad-delivery/campaign-service/domain/entities"
	domainerrors "madison/contexts/ad-delivery/campaign-service/domain/errors"
	"madison/contexts/ad-delivery/campaign-service/ports"
)

// SetCampaignStatusCommand toggles a campaign's active flag.
type SetCampaignStatusCommand struct {
	CallerID   string
	CampaignID uint64
	Active     bool
}

type SetCampaignStatusResult struct {
	Campaign entities.Campaign `json:"campaign"`
}

// SetCampaignStatusUseCase allows the campaign owner or the administrator to
// toggle the active flag. Campaigns are never deleted.
type SetCampaignStatusUseCase struct {
	Campaigns   ports.CampaignRepository
	Roles       ports.RoleChecker
	Outbox      ports.OutboxWriter
	Clock       ports.Clock
	IDGenerator ports.IDGenerator
	Logger      *slog.Logger
}

func (u SetCampaignStatusUseCase) Execute(ctx context.Context, cmd SetCampaignStatusCommand) (SetCampaignStatusResult, error) {
	logger := application.ResolveLogger(u.Logger)

	caller := strings.TrimSpace(cmd.CallerID)
	campaign, err := u.Campaigns.GetCampaign(ctx, cmd.CampaignID)
	if err != nil {
		return SetCampaignStatusResult{}, err
	}

	if campaign.OwnerID != caller {
		isAdmin, err := u.Roles.IsAdministrator(ctx, caller)
		if err != nil {
			return SetCampaignStatusResult{}, err
		}
		if !isAdmin {
			return SetCampaignStatusResult{}, domainerrors.ErrNotCampaignOwner
		}
	}

	now := u.now()
	updated, err := u.Campaigns.UpdateCampaignStatus(ctx, cmd.CampaignID, cmd.Active, now)
	if err != nil {
		logger.Error("campaign status write failed",
			"event", "campaign_status_write_failed",
			"module", "ad-delivery/campaign-service",
			"layer", "application",
			"campaign_id", cmd.CampaignID,
			"error", err.Error(),
		)
		return SetCampaignStatusResult{}, err
	}

	if u.Outbox != nil {
		eventID, err := u.IDGenerator.NewID(ctx)
		if err != nil {
			return SetCampaignStatusResult{}, err
		}
		envelope, err := newCampaignEnvelope(
			eventID,
			"campaign.status_changed",
			updated.CampaignID,
			now,
			map[string]any{
				"campaign_id": updated.CampaignID,
				"active":      updated.Active,
				"changed_by":  caller,
			},
		)
		if err != nil {
			return SetCampaignStatusResult{}, err
		}
		if err := u.Outbox.AppendOutbox(ctx, envelope); err != nil {
			return SetCampaignStatusResult{}, err
		}
	}

	logger.Info("campaign status changed",
		"event", "campaign_status_changed",
		"module", "ad-delivery/campaign-service",
		"layer", "application",
		"campaign_id", updated.CampaignID,
		"active", updated.Active,
		"changed_by", caller,
	)
	return SetCampaignStatusResult{Campaign: updated}, nil
}

func (u SetCampaignStatusUseCase) now() time.Time {
	if u.Clock != nil {
		return u.Clock.Now().UTC()
	}
	return time.Now().UTC()
}
