package commands

import (
	"context"
	"encoding/json"
	"log/slog"
	"strings"
	"time"

	application "madison/contexts/ad-delivery/distribution-service/application"
	"madison/contexts/ad-delivery/distribution-service/domain/entities"
	domainerrors "madison/contexts/ad-delivery/distribution-service/domain/errors"
	"madison/contexts/ad-delivery/distribution-service/ports"
)

// SendToManyCommand is the transport-agnostic batch distribution request.
// IdempotencyKey is optional: absent means plain execution, a repeated call
// minting fresh tokens each time.
type SendToManyCommand struct {
	SenderID       string
	CampaignID     uint64
	Recipients     []string
	IdempotencyKey string
}

type SendToManyResult struct {
	Batch    entities.DistributionBatch `json:"batch"`
	Replayed bool                       `json:"replayed"`
}

// SendToManyUseCase distributes one campaign's token to many recipients.
//
// Preconditions are checked in a fixed order before any token is minted:
// sender role, campaign existence, campaign active, campaign ownership,
// non-empty recipient list. Recipients failing eligibility are then skipped
// without error so callers cannot distinguish opt-outs from blocks.
type SendToManyUseCase struct {
	Roles          ports.RoleChecker
	Campaigns      ports.CampaignDirectory
	Eligibility    ports.EligibilityChecker
	Issuer         ports.TokenIssuer
	Batches        ports.BatchRepository
	Idempotency    ports.IdempotencyStore
	Outbox         ports.OutboxWriter
	Clock          ports.Clock
	IDGenerator    ports.IDGenerator
	IdempotencyTTL time.Duration
	Logger         *slog.Logger
}

func (u SendToManyUseCase) Execute(ctx context.Context, cmd SendToManyCommand) (SendToManyResult, error) {
	logger := application.ResolveLogger(u.Logger)

	sender := strings.TrimSpace(cmd.SenderID)
	isAdvertiser, err := u.Roles.IsAdvertiser(ctx, sender)
	if err != nil {
		return SendToManyResult{}, err
	}
	if !isAdvertiser {
		return SendToManyResult{}, domainerrors.ErrSenderNotAdvertiser
	}

	campaign, err := u.Campaigns.GetCampaign(ctx, cmd.CampaignID)
	if err != nil {
		return SendToManyResult{}, err
	}
	if !campaign.Active {
		return SendToManyResult{}, domainerrors.ErrCampaignInactive
	}
	if campaign.Owner != sender {
		return SendToManyResult{}, domainerrors.ErrNotCampaignOwner
	}
	if len(cmd.Recipients) == 0 {
		return SendToManyResult{}, domainerrors.ErrNoRecipients
	}

	now := u.now()
	idempotencyKey := strings.TrimSpace(cmd.IdempotencyKey)
	requestHash := ""
	if idempotencyKey != "" && u.Idempotency != nil {
		idempotencyKey = "distribution_send:" + idempotencyKey
		requestHash, err = hashRequest(struct {
			SenderID   string   `json:"sender_id"`
			CampaignID uint64   `json:"campaign_id"`
			Recipients []string `json:"recipients"`
		}{SenderID: sender, CampaignID: cmd.CampaignID, Recipients: cmd.Recipients})
		if err != nil {
			return SendToManyResult{}, err
		}

		existing, found, err := u.Idempotency.GetRecord(ctx, idempotencyKey, now)
		if err != nil {
			return SendToManyResult{}, err
		}
		if found {
			if existing.RequestHash != requestHash {
				return SendToManyResult{}, domainerrors.ErrIdempotencyKeyConflict
			}
			var replay SendToManyResult
			if err := json.Unmarshal(existing.ResponsePayload, &replay); err != nil {
				return SendToManyResult{}, err
			}
			replay.Replayed = true
			return replay, nil
		}
	}

	// Filter in request order. Null and ineligible recipients are skipped
	// silently; the eventual token ids follow the surviving order.
	eligible := make([]string, 0, len(cmd.Recipients))
	skipped := 0
	for _, recipient := range cmd.Recipients {
		recipient = strings.TrimSpace(recipient)
		if recipient == "" {
			skipped++
			continue
		}
		ok, err := u.Eligibility.IsEligible(ctx, recipient, sender)
		if err != nil {
			return SendToManyResult{}, err
		}
		if !ok {
			skipped++
			continue
		}
		eligible = append(eligible, recipient)
	}

	var issued []ports.IssuedToken
	if len(eligible) > 0 {
		issued, err = u.Issuer.IssueTokens(ctx, campaign.CampaignID, eligible, now)
		if err != nil {
			logger.Error("distribution issuance failed",
				"event", "distribution_issuance_failed",
				"module", "ad-delivery/distribution-service",
				"layer", "application",
				"campaign_id", campaign.CampaignID,
				"eligible_count", len(eligible),
				"error", err.Error(),
			)
			return SendToManyResult{}, err
		}
	}

	batchID, err := u.IDGenerator.NewID(ctx)
	if err != nil {
		return SendToManyResult{}, err
	}
	tokenIDs := make([]uint64, 0, len(issued))
	for _, token := range issued {
		tokenIDs = append(tokenIDs, token.TokenID)
	}
	batch := entities.DistributionBatch{
		BatchID:        batchID,
		CampaignID:     campaign.CampaignID,
		SenderID:       sender,
		RequestedCount: len(cmd.Recipients),
		IssuedCount:    len(issued),
		SkippedCount:   skipped,
		TokenIDs:       tokenIDs,
		CreatedAt:      now,
	}
	if err := u.Batches.SaveBatch(ctx, batch); err != nil {
		return SendToManyResult{}, err
	}

	if u.Outbox != nil {
		if err := u.appendBatchEvents(ctx, batch, issued, now); err != nil {
			return SendToManyResult{}, err
		}
	}

	result := SendToManyResult{Batch: batch}
	if idempotencyKey != "" && u.Idempotency != nil {
		responsePayload, err := json.Marshal(result)
		if err != nil {
			return SendToManyResult{}, err
		}
		if err := u.Idempotency.PutRecord(ctx, ports.IdempotencyRecord{
			Key:             idempotencyKey,
			RequestHash:     requestHash,
			ResponsePayload: responsePayload,
			ExpiresAt:       now.Add(u.idempotencyTTL()),
		}); err != nil {
			return SendToManyResult{}, err
		}
	}

	logger.Info("distribution batch completed",
		"event", "distribution_batch_completed",
		"module", "ad-delivery/distribution-service",
		"layer", "application",
		"batch_id", batch.BatchID,
		"campaign_id", batch.CampaignID,
		"requested_count", batch.RequestedCount,
		"issued_count", batch.IssuedCount,
		"skipped_count", batch.SkippedCount,
	)
	return result, nil
}

func (u SendToManyUseCase) appendBatchEvents(
	ctx context.Context,
	batch entities.DistributionBatch,
	issued []ports.IssuedToken,
	now time.Time,
) error {
	for _, token := range issued {
		eventID, err := u.IDGenerator.NewID(ctx)
		if err != nil {
			return err
		}
		envelope, err := newDistributionEnvelope(
			eventID,
			"adtoken.issued",
			batch.CampaignID,
			now,
			map[string]any{
				"token_id":    token.TokenID,
				"owner":       token.Owner,
				"campaign_id": batch.CampaignID,
				"batch_id":    batch.BatchID,
			},
		)
		if err != nil {
			return err
		}
		if err := u.Outbox.AppendOutbox(ctx, envelope); err != nil {
			return err
		}
	}

	eventID, err := u.IDGenerator.NewID(ctx)
	if err != nil {
		return err
	}
	envelope, err := newDistributionEnvelope(
		eventID,
		"distribution.batch_completed",
		batch.CampaignID,
		now,
		map[string]any{
			"batch_id":        batch.BatchID,
			"campaign_id":     batch.CampaignID,
			"sender":          batch.SenderID,
			"requested_count": batch.RequestedCount,
			"issued_count":    batch.IssuedCount,
			"skipped_count":   batch.SkippedCount,
		},
	)
	if err != nil {
		return err
	}
	return u.Outbox.AppendOutbox(ctx, envelope)
}

func (u SendToManyUseCase) idempotencyTTL() time.Duration {
	if u.IdempotencyTTL <= 0 {
		return 7 * 24 * time.Hour
	}
	return u.IdempotencyTTL
}

func (u SendToManyUseCase) now() time.Time {
	if u.Clock != nil {
		return u.Clock.Now().UTC()
	}
	return time.Now().UTC()
}
