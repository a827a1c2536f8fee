package repos

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/yungbote/lifebalance-backend/internal/logger"
	"github.com/yungbote/lifebalance-backend/internal/types"
)

type ResponseSetRepo interface {
	Upsert(ctx context.Context, tx *gorm.DB, set *types.ResponseSet) (*types.ResponseSet, error)
	GetByUserID(ctx context.Context, tx *gorm.DB, userID uuid.UUID) (*types.ResponseSet, error)
	DeleteByUserID(ctx context.Context, tx *gorm.DB, userID uuid.UUID) error
}

type responseSetRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewResponseSetRepo(db *gorm.DB, baseLog *logger.Logger) ResponseSetRepo {
	return &responseSetRepo{db: db, log: baseLog.With("repo", "ResponseSetRepo")}
}

func (r *responseSetRepo) Upsert(ctx context.Context, tx *gorm.DB, set *types.ResponseSet) (*types.ResponseSet, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	if set.ID == uuid.Nil {
		set.ID = uuid.New()
	}
	if err := transaction.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"responses", "skipped", "updated_at"}),
		}).
		Create(set).Error; err != nil {
		return nil, err
	}
	return set, nil
}

func (r *responseSetRepo) GetByUserID(ctx context.Context, tx *gorm.DB, userID uuid.UUID) (*types.ResponseSet, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	var result types.ResponseSet
	err := transaction.WithContext(ctx).
		Where("user_id = ?", userID).
		First(&result).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &result, nil
}

func (r *responseSetRepo) DeleteByUserID(ctx context.Context, tx *gorm.DB, userID uuid.UUID) error {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	return transaction.WithContext(ctx).
		Where("user_id = ?", userID).
		Delete(&types.ResponseSet{}).Error
}
