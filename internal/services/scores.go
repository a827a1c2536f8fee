package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/yungbote/lifebalance-backend/internal/apperr"
	"github.com/yungbote/lifebalance-backend/internal/clients/redis"
	"github.com/yungbote/lifebalance-backend/internal/lifebalance"
	"github.com/yungbote/lifebalance-backend/internal/logger"
	"github.com/yungbote/lifebalance-backend/internal/repos"
	"github.com/yungbote/lifebalance-backend/internal/requestdata"
	"github.com/yungbote/lifebalance-backend/internal/types"
)

type ScoreService interface {
	// Get returns the user's scores, creating the default midpoint set
	// on first read.
	Get(ctx context.Context) (lifebalance.Scores, error)
	// Update replaces the whole score set.
	Update(ctx context.Context, values map[string]int) (lifebalance.Scores, error)
	// SetArea updates a single area.
	SetArea(ctx context.Context, area string, value int) (lifebalance.Scores, error)
}

type scoreService struct {
	db        *gorm.DB
	log       *logger.Logger
	scoreSets repos.ScoreSetRepo
	cache     *redis.Cache
}

func NewScoreService(db *gorm.DB, log *logger.Logger, scoreSets repos.ScoreSetRepo, cache *redis.Cache) ScoreService {
	return &scoreService{
		db:        db,
		log:       log.With("service", "ScoreService"),
		scoreSets: scoreSets,
		cache:     cache,
	}
}

func scoresCacheKey(userID uuid.UUID) string   { return "scores:" + userID.String() }
func insightsCacheKey(userID uuid.UUID) string { return "insights:" + userID.String() }

func (ss *scoreService) Get(ctx context.Context) (lifebalance.Scores, error) {
	rd := requestdata.GetRequestData(ctx)
	if rd == nil || rd.UserID == uuid.Nil {
		return lifebalance.Scores{}, apperr.ErrUnauthorized
	}

	var cached map[lifebalance.Area]int
	if ss.cache.GetJSON(ctx, scoresCacheKey(rd.UserID), &cached) {
		if scores, err := lifebalance.ScoresFromMap(cached); err == nil {
			return scores, nil
		}
	}

	row, err := ss.scoreSets.GetByUserID(ctx, nil, rd.UserID)
	if err != nil {
		return lifebalance.Scores{}, fmt.Errorf("failed to load scores: %w", apperr.Persistence(err))
	}
	if row == nil {
		defaults := lifebalance.NewScores()
		fresh := &types.ScoreSet{ID: uuid.New(), UserID: rd.UserID}
		fresh.ApplyScores(defaults)
		if _, uErr := ss.scoreSets.Upsert(ctx, nil, fresh); uErr != nil {
			return lifebalance.Scores{}, fmt.Errorf("failed to create default scores: %w", apperr.Persistence(uErr))
		}
		ss.cache.SetJSON(ctx, scoresCacheKey(rd.UserID), defaults.Map())
		return defaults, nil
	}
	scores, err := row.Scores()
	if err != nil {
		return lifebalance.Scores{}, fmt.Errorf("stored scores invalid: %w", err)
	}
	ss.cache.SetJSON(ctx, scoresCacheKey(rd.UserID), scores.Map())
	return scores, nil
}

func (ss *scoreService) Update(ctx context.Context, values map[string]int) (lifebalance.Scores, error) {
	scores, err := ss.Get(ctx)
	if err != nil {
		return lifebalance.Scores{}, err
	}
	for rawArea, value := range values {
		area, pErr := lifebalance.ParseArea(rawArea)
		if pErr != nil {
			return lifebalance.Scores{}, errors.Join(apperr.ErrValidation, pErr)
		}
		if sErr := scores.Set(area, value); sErr != nil {
			return lifebalance.Scores{}, errors.Join(apperr.ErrValidation, sErr)
		}
	}
	return ss.persist(ctx, scores)
}

func (ss *scoreService) SetArea(ctx context.Context, rawArea string, value int) (lifebalance.Scores, error) {
	scores, err := ss.Get(ctx)
	if err != nil {
		return lifebalance.Scores{}, err
	}
	area, pErr := lifebalance.ParseArea(rawArea)
	if pErr != nil {
		return lifebalance.Scores{}, errors.Join(apperr.ErrValidation, pErr)
	}
	if sErr := scores.Set(area, value); sErr != nil {
		return lifebalance.Scores{}, errors.Join(apperr.ErrValidation, sErr)
	}
	return ss.persist(ctx, scores)
}

func (ss *scoreService) persist(ctx context.Context, scores lifebalance.Scores) (lifebalance.Scores, error) {
	rd := requestdata.GetRequestData(ctx)
	if rd == nil || rd.UserID == uuid.Nil {
		return lifebalance.Scores{}, apperr.ErrUnauthorized
	}
	row := &types.ScoreSet{ID: uuid.New(), UserID: rd.UserID}
	row.ApplyScores(scores)
	if _, err := ss.scoreSets.Upsert(ctx, nil, row); err != nil {
		return lifebalance.Scores{}, fmt.Errorf("failed to save scores: %w", apperr.Persistence(err))
	}
	ss.cache.Delete(ctx, scoresCacheKey(rd.UserID))
	return scores, nil
}
