package httpadapter

import (
	"context"
	"log/slog"

	application "madison/contexts/ad-delivery/distribution-service/application"
	"madison/contexts/ad-delivery/distribution-service/application/commands"
	"madison/contexts/ad-delivery/distribution-service/application/queries"
	"madison/contexts/ad-delivery/distribution-service/domain/entities"
	httptransport "madison/contexts/ad-delivery/distribution-service/transport/http"
)

// Handler maps HTTP DTOs to application commands/queries.
type Handler struct {
	SendToMany  commands.SendToManyUseCase
	GetBatch    queries.GetBatchUseCase
	ListBatches queries.ListBatchesUseCase
	Logger      *slog.Logger
}

func (h Handler) SendToManyHandler(
	ctx context.Context,
	callerID string,
	idempotencyKey string,
	req httptransport.SendToManyRequest,
) (httptransport.SendToManyResponse, error) {
	logger := application.ResolveLogger(h.Logger)
	logger.Debug("http send to many received",
		"event", "distribution_http_send_received",
		"module", "ad-delivery/distribution-service",
		"layer", "transport",
		"caller", callerID,
		"campaign_id", req.CampaignID,
		"recipient_count", len(req.Recipients),
	)

	result, err := h.SendToMany.Execute(ctx, commands.SendToManyCommand{
		SenderID:       callerID,
		CampaignID:     req.CampaignID,
		Recipients:     req.Recipients,
		IdempotencyKey: idempotencyKey,
	})
	if err != nil {
		return httptransport.SendToManyResponse{}, err
	}
	return httptransport.SendToManyResponse{
		Batch:    batchDTO(result.Batch),
		Replayed: result.Replayed,
	}, nil
}

func (h Handler) GetBatchHandler(ctx context.Context, batchID string) (httptransport.GetBatchResponse, error) {
	batch, err := h.GetBatch.Execute(ctx, batchID)
	if err != nil {
		return httptransport.GetBatchResponse{}, err
	}
	return httptransport.GetBatchResponse{Batch: batchDTO(batch)}, nil
}

func (h Handler) ListBatchesHandler(ctx context.Context, campaignID uint64) (httptransport.ListBatchesResponse, error) {
	batches, err := h.ListBatches.Execute(ctx, campaignID)
	if err != nil {
		return httptransport.ListBatchesResponse{}, err
	}
	items := make([]httptransport.BatchDTO, 0, len(batches))
	for _, batch := range batches {
		items = append(items, batchDTO(batch))
	}
	return httptransport.ListBatchesResponse{CampaignID: campaignID, Batches: items}, nil
}

func batchDTO(batch entities.DistributionBatch) httptransport.BatchDTO {
	return httptransport.BatchDTO{
		BatchID:        batch.BatchID,
		CampaignID:     batch.CampaignID,
		Sender:         batch.SenderID,
		RequestedCount: batch.RequestedCount,
		IssuedCount:    batch.IssuedCount,
		SkippedCount:   batch.SkippedCount,
		TokenIDs:       batch.TokenIDs,
		CreatedAt:      batch.CreatedAt,
	}
}
