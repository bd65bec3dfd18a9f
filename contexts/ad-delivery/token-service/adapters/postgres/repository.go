package postgresadapter

import (
	"context"
	"errors"
	"log/slog"
	"math"
	"strings"
	"time"

	"madison/contexts/ad-delivery/token-service/domain/entities"
	domainerrors "madison/contexts/ad-delivery/token-service/domain/errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const tokenCounterName = "token_id_seq"

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

// IssueTokens reserves a consecutive id range by locking the counter row,
// then inserts all records in the same transaction.
func (r *Repository) IssueTokens(ctx context.Context, campaignID uint64, owners []string, issuedAt time.Time) ([]entities.AdToken, error) {
	if len(owners) == 0 {
		return []entities.AdToken{}, nil
	}

	issued := make([]entities.AdToken, 0, len(owners))
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		firstID, err := reserveTokenIDs(tx, uint64(len(owners)))
		if err != nil {
			return err
		}

		rows := make([]adTokenModel, 0, len(owners))
		for i, owner := range owners {
			token := entities.AdToken{
				TokenID:    firstID + uint64(i),
				Owner:      owner,
				CampaignID: campaignID,
				IssuedAt:   issuedAt,
			}
			issued = append(issued, token)
			rows = append(rows, adTokenModel{
				TokenID:    token.TokenID,
				Owner:      token.Owner,
				CampaignID: token.CampaignID,
				IssuedAt:   token.IssuedAt,
			})
		}
		return tx.Create(&rows).Error
	})
	if err != nil {
		return nil, err
	}
	return issued, nil
}

// reserveTokenIDs locks the token counter, advances it by count, and returns
// the first id of the reserved range.
func reserveTokenIDs(tx *gorm.DB, count uint64) (uint64, error) {
	var counter idCounterModel
	err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("name = ?", tokenCounterName).
		First(&counter).
		Error
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		counter = idCounterModel{Name: tokenCounterName, Value: count}
		if err := tx.Create(&counter).Error; err != nil {
			return 0, err
		}
		return 1, nil
	case err != nil:
		return 0, err
	}

	if count > math.MaxUint64-counter.Value {
		return 0, domainerrors.ErrCounterExhausted
	}
	firstID := counter.Value + 1
	counter.Value += count
	if err := tx.Model(&idCounterModel{}).
		Where("name = ?", tokenCounterName).
		Update("value", counter.Value).
		Error; err != nil {
		return 0, err
	}
	return firstID, nil
}

func (r *Repository) GetToken(ctx context.Context, tokenID uint64) (entities.AdToken, error) {
	var row adTokenModel
	err := r.db.WithContext(ctx).
		Where("token_id = ?", tokenID).
		First(&row).
		Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return entities.AdToken{}, domainerrors.ErrTokenNotFound
	}
	if err != nil {
		return entities.AdToken{}, err
	}
	return row.toEntity(), nil
}

func (r *Repository) BalanceOf(ctx context.Context, owner string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&adTokenModel{}).
		Where("owner = ?", strings.TrimSpace(owner)).
		Count(&count).
		Error
	if err != nil {
		return 0, err
	}
	return count, nil
}

func (r *Repository) ListTokensByOwner(ctx context.Context, owner string) ([]entities.AdToken, error) {
	var rows []adTokenModel
	err := r.db.WithContext(ctx).
		Where("owner = ?", strings.TrimSpace(owner)).
		Order("token_id ASC").
		Find(&rows).
		Error
	if err != nil {
		return nil, err
	}
	items := make([]entities.AdToken, 0, len(rows))
	for _, row := range rows {
		items = append(items, row.toEntity())
	}
	return items, nil
}
