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

type ScoreSetRepo interface {
	Upsert(ctx context.Context, tx *gorm.DB, set *types.ScoreSet) (*types.ScoreSet, error)
	GetByUserID(ctx context.Context, tx *gorm.DB, userID uuid.UUID) (*types.ScoreSet, error)
	DeleteByUserID(ctx context.Context, tx *gorm.DB, userID uuid.UUID) error
}

type scoreSetRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewScoreSetRepo(db *gorm.DB, baseLog *logger.Logger) ScoreSetRepo {
	return &scoreSetRepo{db: db, log: baseLog.With("repo", "ScoreSetRepo")}
}

func (r *scoreSetRepo) Upsert(ctx context.Context, tx *gorm.DB, set *types.ScoreSet) (*types.ScoreSet, error) {
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
			DoUpdates: clause.AssignmentColumns([]string{"health", "work", "play", "love", "updated_at"}),
		}).
		Create(set).Error; err != nil {
		return nil, err
	}
	return set, nil
}

func (r *scoreSetRepo) GetByUserID(ctx context.Context, tx *gorm.DB, userID uuid.UUID) (*types.ScoreSet, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	var result types.ScoreSet
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

func (r *scoreSetRepo) DeleteByUserID(ctx context.Context, tx *gorm.DB, userID uuid.UUID) error {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	return transaction.WithContext(ctx).
		Where("user_id = ?", userID).
		Delete(&types.ScoreSet{}).Error
}
