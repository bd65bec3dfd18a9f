package commands

import (
	"context"
	"encoding/json"
	"log/slog"
	"strings"
	"time"

	application "madison/contexts/ad-delivery/campaign-service/application"
	"madison/contexts/ad-delivery/campaign-service/domain/entities"
	domainerrors "madison/contexts/ad-delivery/campaign-service/domain/errors"
	"madison/contexts/ad-delivery/campaign-service/ports"
)

// CreateCampaignCommand contains transport-agnostic input for campaign creation.
// IdempotencyKey is optional: absent means plain execution, a repeated call
// always allocating a fresh campaign id.
type CreateCampaignCommand struct {
	CallerID       string
	ContentRef     string
	IdempotencyKey string
}

type CreateCampaignResult struct {
	Campaign entities.Campaign `json:"campaign"`
	Replayed bool              `json:"replayed"`
}

// CreateCampaignUseCase coordinates advertiser-gated campaign creation.
type CreateCampaignUseCase struct {
	Campaigns      ports.CampaignRepository
	Roles          ports.RoleChecker
	Idempotency    ports.IdempotencyStore
	Outbox         ports.OutboxWriter
	Clock          ports.Clock
	IDGenerator    ports.IDGenerator
	IdempotencyTTL time.Duration
	Logger         *slog.Logger
}

func (u CreateCampaignUseCase) Execute(ctx context.Context, cmd CreateCampaignCommand) (CreateCampaignResult, error) {
	logger := application.ResolveLogger(u.Logger)

	caller := strings.TrimSpace(cmd.CallerID)
	contentRef := strings.TrimSpace(cmd.ContentRef)

	isAdvertiser, err := u.Roles.IsAdvertiser(ctx, caller)
	if err != nil {
		return CreateCampaignResult{}, err
	}
	if !isAdvertiser {
		return CreateCampaignResult{}, domainerrors.ErrNotAdvertiser
	}
	if contentRef == "" {
		return CreateCampaignResult{}, domainerrors.ErrEmptyContentRef
	}

	now := u.now()
	idempotencyKey := strings.TrimSpace(cmd.IdempotencyKey)
	requestHash := ""
	if idempotencyKey != "" && u.Idempotency != nil {
		idempotencyKey = "campaign_create:" + idempotencyKey
		requestHash, err = hashRequest(struct {
			CallerID   string `json:"caller_id"`
			ContentRef string `json:"content_ref"`
		}{CallerID: caller, ContentRef: contentRef})
		if err != nil {
			return CreateCampaignResult{}, err
		}

		existing, found, err := u.Idempotency.GetRecord(ctx, idempotencyKey, now)
		if err != nil {
			return CreateCampaignResult{}, err
		}
		if found {
			if existing.RequestHash != requestHash {
				return CreateCampaignResult{}, domainerrors.ErrIdempotencyKeyConflict
			}
			var replay CreateCampaignResult
			if err := json.Unmarshal(existing.ResponsePayload, &replay); err != nil {
				return CreateCampaignResult{}, err
			}
			replay.Replayed = true
			return replay, nil
		}
	}

	campaign, err := u.Campaigns.CreateCampaign(ctx, entities.Campaign{
		OwnerID:    caller,
		ContentRef: contentRef,
		Active:     true,
		CreatedAt:  now,
		UpdatedAt:  now,
	})
	if err != nil {
		logger.Error("campaign create write failed",
			"event", "campaign_create_write_failed",
			"module", "ad-delivery/campaign-service",
			"layer", "application",
			"owner", caller,
			"error", err.Error(),
		)
		return CreateCampaignResult{}, err
	}

	if u.Outbox != nil {
		eventID, err := u.IDGenerator.NewID(ctx)
		if err != nil {
			return CreateCampaignResult{}, err
		}
		envelope, err := newCampaignEnvelope(
			eventID,
			"campaign.created",
			campaign.CampaignID,
			now,
			map[string]any{
				"campaign_id": campaign.CampaignID,
				"owner":       campaign.OwnerID,
				"content_ref": campaign.ContentRef,
			},
		)
		if err != nil {
			return CreateCampaignResult{}, err
		}
		if err := u.Outbox.AppendOutbox(ctx, envelope); err != nil {
			return CreateCampaignResult{}, err
		}
	}

	result := CreateCampaignResult{Campaign: campaign}
	if idempotencyKey != "" && u.Idempotency != nil {
		responsePayload, err := json.Marshal(result)
		if err != nil {
			return CreateCampaignResult{}, err
		}
		if err := u.Idempotency.PutRecord(ctx, ports.IdempotencyRecord{
			Key:             idempotencyKey,
			RequestHash:     requestHash,
			ResponsePayload: responsePayload,
			ExpiresAt:       now.Add(u.idempotencyTTL()),
		}); err != nil {
			return CreateCampaignResult{}, err
		}
	}

	logger.Info("campaign created",
		"event", "campaign_created",
		"module", "ad-delivery/campaign-service",
		"layer", "application",
		"campaign_id", campaign.CampaignID,
		"owner", campaign.OwnerID,
	)
	return result, nil
}

func (u CreateCampaignUseCase) idempotencyTTL() time.Duration {
	if u.IdempotencyTTL <= 0 {
		return 7 * 24 * time.Hour
	}
	return u.IdempotencyTTL
}

func (u CreateCampaignUseCase) now() time.Time {
	if u.Clock != nil {
		return u.Clock.Now().UTC()
	}
	return time.Now().UTC()
}
