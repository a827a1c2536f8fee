package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/yungbote/lifebalance-backend/internal/apperr"
	"github.com/yungbote/lifebalance-backend/internal/clients/redis"
	"github.com/yungbote/lifebalance-backend/internal/logger"
	"github.com/yungbote/lifebalance-backend/internal/repos"
	"github.com/yungbote/lifebalance-backend/internal/requestdata"
	"github.com/yungbote/lifebalance-backend/internal/types"
)

type UserService interface {
	GetMe(ctx context.Context) (*types.User, error)
	GetAvatar(ctx context.Context) ([]byte, error)
	// DeleteMe removes the account and every document owned by it.
	DeleteMe(ctx context.Context) error
}

type userService struct {
	db            *gorm.DB
	log           *logger.Logger
	userRepo      repos.UserRepo
	userTokenRepo repos.UserTokenRepo
	scoreSets     repos.ScoreSetRepo
	responseSets  repos.ResponseSetRepo
	insights      repos.InsightRecordRepo
	cache         *redis.Cache
}

func NewUserService(
	db *gorm.DB,
	log *logger.Logger,
	userRepo repos.UserRepo,
	userTokenRepo repos.UserTokenRepo,
	scoreSets repos.ScoreSetRepo,
	responseSets repos.ResponseSetRepo,
	insights repos.InsightRecordRepo,
	cache *redis.Cache,
) UserService {
	return &userService{
		db:            db,
		log:           log.With("service", "UserService"),
		userRepo:      userRepo,
		userTokenRepo: userTokenRepo,
		scoreSets:     scoreSets,
		responseSets:  responseSets,
		insights:      insights,
		cache:         cache,
	}
}

func (us *userService) currentUserID(ctx context.Context) (uuid.UUID, error) {
	rd := requestdata.GetRequestData(ctx)
	if rd == nil || rd.UserID == uuid.Nil {
		return uuid.Nil, apperr.ErrUnauthorized
	}
	return rd.UserID, nil
}

func (us *userService) GetMe(ctx context.Context) (*types.User, error) {
	userID, err := us.currentUserID(ctx)
	if err != nil {
		return nil, err
	}
	found, err := us.userRepo.GetByIDs(ctx, nil, []uuid.UUID{userID})
	if err != nil {
		return nil, fmt.Errorf("failed to fetch user: %w", apperr.Persistence(err))
	}
	if len(found) == 0 || found[0] == nil {
		return nil, apperr.ErrNotFound
	}
	return found[0], nil
}

func (us *userService) GetAvatar(ctx context.Context) ([]byte, error) {
	me, err := us.GetMe(ctx)
	if err != nil {
		return nil, err
	}
	if len(me.AvatarPNG) == 0 {
		return nil, apperr.ErrNotFound
	}
	return me.AvatarPNG, nil
}

func (us *userService) DeleteMe(ctx context.Context) error {
	userID, err := us.currentUserID(ctx)
	if err != nil {
		return err
	}
	if err := us.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if dErr := us.userTokenRepo.DeleteByUserID(ctx, tx, userID); dErr != nil {
			return fmt.Errorf("failed to delete tokens: %w", dErr)
		}
		if dErr := us.scoreSets.DeleteByUserID(ctx, tx, userID); dErr != nil {
			return fmt.Errorf("failed to delete scores: %w", dErr)
		}
		if dErr := us.responseSets.DeleteByUserID(ctx, tx, userID); dErr != nil {
			return fmt.Errorf("failed to delete responses: %w", dErr)
		}
		if dErr := us.insights.DeleteByUserID(ctx, tx, userID); dErr != nil {
			return fmt.Errorf("failed to delete insights: %w", dErr)
		}
		if dErr := us.userRepo.DeleteByID(ctx, tx, userID); dErr != nil {
			return fmt.Errorf("failed to delete user: %w", dErr)
		}
		return nil
	}); err != nil {
		return apperr.Persistence(err)
	}
	us.cache.Delete(ctx, scoresCacheKey(userID), insightsCacheKey(userID))
	return nil
}
