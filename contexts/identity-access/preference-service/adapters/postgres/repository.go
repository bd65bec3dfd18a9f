package postgresadapter

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"strings"
	"time"

	"madison/contexts/identity-access/preference-service/domain/entities"
	"madison/contexts/identity-access/preference-service/ports"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const (
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

func (r *Repository) GetPreferences(ctx context.Context, address string) (entities.PreferenceRecord, error) {
	address = strings.TrimSpace(address)
	record := entities.PreferenceRecord{Address: address}

	var pref userPreferenceModel
	err := r.db.WithContext(ctx).
		Where("address = ?", address).
		First(&pref).
		Error
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		// Defaults apply for users with no stored record.
	case err != nil:
		return entities.PreferenceRecord{}, err
	default:
		record.GlobalOptOut = pref.GlobalOptOut
		record.UpdatedAt = pref.UpdatedAt
	}

	var blocks []advertiserBlockModel
	err = r.db.WithContext(ctx).
		Where("user_address = ? AND blocked = ?", address, true).
		Order("advertiser_address ASC").
		Find(&blocks).
		Error
	if err != nil {
		return entities.PreferenceRecord{}, err
	}
	for _, block := range blocks {
		record.BlockedAdvertisers = append(record.BlockedAdvertisers, block.AdvertiserAddress)
		if block.UpdatedAt.After(record.UpdatedAt) {
			record.UpdatedAt = block.UpdatedAt
		}
	}
	return record, nil
}

func (r *Repository) SetGlobalOptOut(ctx context.Context, address string, optOut bool, updatedAt time.Time) error {
	row := userPreferenceModel{
		Address:      strings.TrimSpace(address),
		GlobalOptOut: optOut,
		UpdatedAt:    updatedAt,
	}
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "address"}},
			DoUpdates: clause.AssignmentColumns([]string{"global_opt_out", "updated_at"}),
		}).
		Create(&row).
		Error
}

func (r *Repository) SetAdvertiserBlocked(ctx context.Context, address string, advertiser string, blocked bool, updatedAt time.Time) error {
	row := advertiserBlockModel{
		UserAddress:       strings.TrimSpace(address),
		AdvertiserAddress: strings.TrimSpace(advertiser),
		Blocked:           blocked,
		UpdatedAt:         updatedAt,
	}
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_address"}, {Name: "advertiser_address"}},
			DoUpdates: clause.AssignmentColumns([]string{"blocked", "updated_at"}),
		}).
		Create(&row).
		Error
}

func (r *Repository) IsEligible(ctx context.Context, user string, advertiser string) (bool, error) {
	user = strings.TrimSpace(user)

	var optedOut int64
	err := r.db.WithContext(ctx).
		Model(&userPreferenceModel{}).
		Where("address = ? AND global_opt_out = ?", user, true).
		Count(&optedOut).
		Error
	if err != nil {
		return false, err
	}
	if optedOut > 0 {
		return false, nil
	}

	var blocked int64
	err = r.db.WithContext(ctx).
		Model(&advertiserBlockModel{}).
		Where("user_address = ? AND advertiser_address = ? AND blocked = ?", user, strings.TrimSpace(advertiser), true).
		Count(&blocked).
		Error
	if err != nil {
		return false, err
	}
	return blocked == 0, nil
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
