package queries

import (
	"context"
	"log/slog"
	"strings"

	"madison/contexts/ad-delivery/distribution-service/domain/entities"
	domainerrors "madison/contexts/ad-delivery/distribution-service/domain/errors"
	"madison/contexts/ad-delivery/distribution-service/ports"
)

// GetBatchUseCase resolves one distribution batch by id.
type GetBatchUseCase struct {
	Batches ports.BatchRepository
	Logger  *slog.Logger
}

func (u GetBatchUseCase) Execute(ctx context.Context, batchID string) (entities.DistributionBatch, error) {
	if strings.TrimSpace(batchID) == "" {
		return entities.DistributionBatch{}, domainerrors.ErrBatchNotFound
	}
	return u.Batches.GetBatch(ctx, batchID)
}

// ListBatchesUseCase lists batches recorded for one campaign, oldest first.
type ListBatchesUseCase struct {
	Batches ports.BatchRepository
	Logger  *slog.Logger
}

func (u ListBatchesUseCase) Execute(ctx context.Context, campaignID uint64) ([]entities.DistributionBatch, error) {
	return u.Batches.ListBatchesByCampaign(ctx, campaignID)
}
