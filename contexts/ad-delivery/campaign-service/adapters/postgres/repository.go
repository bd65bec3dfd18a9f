package postgresadapter

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"math"
	"strings"
	"time"

	"madison/contexts/ad-delivery/campaign-service/domain/entities"
	domainerrors "madison/contexts/ad-delivery/campaign-service/domain/errors"
	"madison/contexts/ad-delivery/campaign-service/ports"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const (
	campaignCounterName = "campaign_id_seq"

	outboxStatusPending   = "pending"
	outboxStatusPublished = "published"
)

type Repository struct {
	db     *gorm.DB
	logger *slog.Logger
}

func NewRepository(db *gorm.DB, logger *slog.Logger) *Repository {
	if logger == nil {
		logger = slog.Default()
	}
	return &Repository{db: db, logger: logger}
}

// CreateCampaign allocates the next campaign id from the counter row and
// inserts the campaign in the same transaction. Ids are monotonic from 1
// and are never reused, even for campaigns later deactivated.
func (r *Repository) CreateCampaign(ctx context.Context, draft entities.Campaign) (entities.Campaign, error) {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		nextID, err := nextCounterValue(tx, campaignCounterName)
		if err != nil {
			return err
		}
		draft.CampaignID = nextID
		row := campaignModelFromEntity(draft)
		return tx.Create(&row).Error
	})
	if err != nil {
		return entities.Campaign{}, err
	}
	return draft, nil
}

// nextCounterValue locks the named counter row, increments it, and returns
// the new value. The row is created lazily on first use so migrations do
// not need seed data.
func nextCounterValue(tx *gorm.DB, name string) (uint64, error) {
	var counter idCounterModel
	err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("name = ?", name).
		First(&counter).
		Error
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		counter = idCounterModel{Name: name, Value: 1}
		if err := tx.Create(&counter).Error; err != nil {
			return 0, err
		}
		return counter.Value, nil
	case err != nil:
		return 0, err
	}

	if counter.Value == math.MaxUint64 {
		return 0, domainerrors.ErrCounterExhausted
	}
	counter.Value++
	if err := tx.Model(&idCounterModel{}).
		Where("name = ?", name).
		Update("value", counter.Value).
		Error; err != nil {
		return 0, err
	}
	return counter.Value, nil
}

func (r *Repository) UpdateCampaignStatus(ctx context.Context, campaignID uint64, active bool, updatedAt time.Time) (entities.Campaign, error) {
	var updated entities.Campaign
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var row campaignModel
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("campaign_id = ?", campaignID).
			First(&row).
			Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domainerrors.ErrCampaignNotFound
		}
		if err != nil {
			return err
		}
		if err := tx.Model(&campaignModel{}).
			Where("campaign_id = ?", campaignID).
			Updates(map[string]any{
				"active":     active,
				"updated_at": updatedAt,
			}).Error; err != nil {
			return err
		}
		row.Active = active
		row.UpdatedAt = updatedAt
		updated = row.toEntity()
		return nil
	})
	if err != nil {
		return entities.Campaign{}, err
	}
	return updated, nil
}

func (r *Repository) GetCampaign(ctx context.Context, campaignID uint64) (entities.Campaign, error) {
	var row campaignModel
	err := r.db.WithContext(ctx).
		Where("campaign_id = ?", campaignID).
		First(&row).
		Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return entities.Campaign{}, domainerrors.ErrCampaignNotFound
	}
	if err != nil {
		return entities.Campaign{}, err
	}
	return row.toEntity(), nil
}

func (r *Repository) ListCampaigns(ctx context.Context, filter ports.CampaignFilter) ([]entities.Campaign, error) {
	query := r.db.WithContext(ctx).Model(&campaignModel{})
	if owner := strings.TrimSpace(filter.OwnerID); owner != "" {
		query = query.Where("owner_id = ?", owner)
	}
	if filter.Active != nil {
		query = query.Where("active = ?", *filter.Active)
	}

	var rows []campaignModel
	if err := query.Order("campaign_id ASC").Find(&rows).Error; err != nil {
		return nil, err
	}
	items := make([]entities.Campaign, 0, len(rows))
	for _, row := range rows {
		items = append(items, row.toEntity())
	}
	return items, nil
}

func (r *Repository) GetRecord(ctx context.Context, key string, now time.Time) (ports.IdempotencyRecord, bool, error) {
	var row idempotencyModel
	err := r.db.WithContext(ctx).
		Where("idempotency_key = ? AND expires_at > ?", key, now).
		First(&row).
		Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ports.IdempotencyRecord{}, false, nil
	}
	if err != nil {
		return ports.IdempotencyRecord{}, false, err
	}
	return ports.IdempotencyRecord{
		Key:             row.Key,
		RequestHash:     row.RequestHash,
		ResponsePayload: row.ResponsePayload,
		ExpiresAt:       row.ExpiresAt,
	}, true, nil
}

func (r *Repository) PutRecord(ctx context.Context, record ports.IdempotencyRecord) error {
	row := idempotencyModel{
		Key:             record.Key,
		RequestHash:     record.RequestHash,
		ResponsePayload: record.ResponsePayload,
		ExpiresAt:       record.ExpiresAt,
	}
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "idempotency_key"}},
			DoUpdates: clause.AssignmentColumns([]string{"request_hash", "response_payload", "expires_at"}),
		}).
		Create(&row).
		Error
}

func (r *Repository) AppendOutbox(ctx context.Context, envelope ports.EventEnvelope) error {
	payload, err := json.Marshal(envelope)
	if err != nil {
		return err
	}
	row := outboxModel{
		OutboxID:  envelope.EventID,
		EventType: envelope.EventType,
		Payload:   payload,
		Status:    outboxStatusPending,
		CreatedAt: envelope.OccurredAt,
	}
	return r.db.WithContext(ctx).Create(&row).Error
}

func (r *Repository) ListPendingOutbox(ctx context.Context, limit int) ([]ports.OutboxMessage, error) {
	var rows []outboxModel
	err := r.db.WithContext(ctx).
		Where("status = ?", outboxStatusPending).
		Order("created_at ASC").
		Limit(limit).
		Find(&rows).
		Error
	if err != nil {
		return nil, err
	}
	items := make([]ports.OutboxMessage, 0, len(rows))
	for _, row := range rows {
		items = append(items, ports.OutboxMessage{
			OutboxID:  row.OutboxID,
			EventType: row.EventType,
			Payload:   row.Payload,
			CreatedAt: row.CreatedAt,
		})
	}
	return items, nil
}

func (r *Repository) MarkOutboxPublished(ctx context.Context, outboxID string, publishedAt time.Time) error {
	return r.db.WithContext(ctx).
		Model(&outboxModel{}).
		Where("outbox_id = ?", outboxID).
		Updates(map[string]any{
			"status":       outboxStatusPublished,
			"published_at": publishedAt,
		}).
		Error
}
