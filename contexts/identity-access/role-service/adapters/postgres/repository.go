package postgresadapter

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"strings"
	"time"

	"madison/contexts/identity-access/role-service/domain/entities"
	"madison/contexts/identity-access/role-service/ports"

	"github.com/jackc/pgx/v5/pgconn"
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

// EnsureAdministrator seeds the fixed administrator row once at bootstrap.
// Subsequent calls with the same address are no-ops.
func (r *Repository) EnsureAdministrator(ctx context.Context, address string, now time.Time) error {
	address = strings.TrimSpace(address)
	if address == "" {
		return errors.New("administrator address is required")
	}
	row := administratorModel{Address: address, CreatedAt: now}
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&row).
		Error
}

func (r *Repository) IsAdministrator(ctx context.Context, address string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&administratorModel{}).
		Where("address = ?", strings.TrimSpace(address)).
		Count(&count).
		Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *Repository) IsAdvertiser(ctx context.Context, address string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&advertiserGrantModel{}).
		Where("address = ? AND active = ?", strings.TrimSpace(address), true).
		Count(&count).
		Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *Repository) UpsertAdvertiserGrant(ctx context.Context, grant entities.AdvertiserGrant) (bool, error) {
	changed := false
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var existing advertiserGrantModel
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("address = ?", grant.Address).
			First(&existing).
			Error
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			row := grantModelFromEntity(grant)
			if err := tx.Create(&row).Error; err != nil {
				if isUniqueViolation(err) {
					return nil
				}
				return err
			}
			changed = true
			return nil
		case err != nil:
			return err
		case existing.Active:
			return nil
		default:
			row := grantModelFromEntity(grant)
			if err := tx.Model(&advertiserGrantModel{}).
				Where("address = ?", grant.Address).
				Updates(map[string]any{
					"granted_by": row.GrantedBy,
					"granted_at": row.GrantedAt,
					"active":     true,
					"revoked_at": nil,
				}).Error; err != nil {
				return err
			}
			changed = true
			return nil
		}
	})
	return changed, err
}

func (r *Repository) DeactivateAdvertiserGrant(ctx context.Context, address string, revokedAt time.Time) (bool, error) {
	result := r.db.WithContext(ctx).
		Model(&advertiserGrantModel{}).
		Where("address = ? AND active = ?", strings.TrimSpace(address), true).
		Updates(map[string]any{
			"active":     false,
			"revoked_at": revokedAt,
		})
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

func (r *Repository) ListAdvertiserGrants(ctx context.Context) ([]entities.AdvertiserGrant, error) {
	var rows []advertiserGrantModel
	if err := r.db.WithContext(ctx).Order("address ASC").Find(&rows).Error; err != nil {
		return nil, err
	}
	items := make([]entities.AdvertiserGrant, 0, len(rows))
	for _, row := range rows {
		items = append(items, row.toEntity())
	}
	return items, nil
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

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}
