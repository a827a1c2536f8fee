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

type InsightRecordRepo interface {
	Upsert(ctx context.Context, tx *gorm.DB, record *types.InsightRecord) (*types.InsightRecord, error)
	GetByUserID(ctx context.Context, tx *gorm.DB, userID uuid.UUID) (*types.InsightRecord, error)
	DeleteByUserID(ctx context.Context, tx *gorm.DB, userID uuid.UUID) error
}

type insightRecordRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewInsightRecordRepo(db *gorm.DB, baseLog *logger.Logger) InsightRecordRepo {
	return &insightRecordRepo{db: db, log: baseLog.With("repo", "InsightRecordRepo")}
}

func (r *insightRecordRepo) Upsert(ctx context.Context, tx *gorm.DB, record *types.InsightRecord) (*types.InsightRecord, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	if record.ID == uuid.Nil {
		record.ID = uuid.New()
	}
	if err := transaction.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"takeaways", "action_items", "generated_at", "updated_at"}),
		}).
		Create(record).Error; err != nil {
		return nil, err
	}
	return record, nil
}

func (r *insightRecordRepo) GetByUserID(ctx context.Context, tx *gorm.DB, userID uuid.UUID) (*types.InsightRecord, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	var result types.InsightRecord
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

func (r *insightRecordRepo) DeleteByUserID(ctx context.Context, tx *gorm.DB, userID uuid.UUID) error {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	return transaction.WithContext(ctx).
		Where("user_id = ?", userID).
		Delete(&types.InsightRecord{}).Error
}
