package services

import (
	"context"
	"errors"
	"fmt"
	"time"

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

// AssessmentState is the flow position reported to the frontend. It is
// derived from the persisted response set on every read.
type AssessmentState struct {
	CurrentArea     *lifebalance.Area     `json:"current_area,omitempty"`
	CurrentQuestion *lifebalance.Question `json:"current_question,omitempty"`
	AnsweredCount   int                   `json:"answered_count"`
	TotalQuestions  int                   `json:"total_questions"`
	ProgressPercent int                   `json:"progress_percent"`
	Complete        bool                  `json:"complete"`
	Outcome         lifebalance.Outcome   `json:"outcome"`
}

type AssessmentService interface {
	Questions() []lifebalance.Question
	State(ctx context.Context) (*AssessmentState, error)
	// SubmitResponse records one answer for the current question. When
	// the submission completes the flow, insights are derived and
	// persisted in the same transaction.
	SubmitResponse(ctx context.Context, text string) (*AssessmentState, error)
	// Skip force-completes the run with the response set unchanged.
	// Skipped runs never generate insights.
	Skip(ctx context.Context) (*AssessmentState, error)
	// Reset clears the response set and the derived insights.
	Reset(ctx context.Context) error
	// Responses returns the recorded answers keyed by question ID.
	Responses(ctx context.Context) (map[string]string, error)
	Insights(ctx context.Context) (*lifebalance.Insights, error)
}

type assessmentService struct {
	db           *gorm.DB
	log          *logger.Logger
	responseSets repos.ResponseSetRepo
	insights     repos.InsightRecordRepo
	cache        *redis.Cache
}

func NewAssessmentService(
	db *gorm.DB,
	log *logger.Logger,
	responseSets repos.ResponseSetRepo,
	insights repos.InsightRecordRepo,
	cache *redis.Cache,
) AssessmentService {
	return &assessmentService{
		db:           db,
		log:          log.With("service", "AssessmentService"),
		responseSets: responseSets,
		insights:     insights,
		cache:        cache,
	}
}

func (s *assessmentService) Questions() []lifebalance.Question {
	return lifebalance.Questions()
}

func (s *assessmentService) loadFlow(ctx context.Context, tx *gorm.DB, userID uuid.UUID) (*lifebalance.Flow, error) {
	row, err := s.responseSets.GetByUserID(ctx, tx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load responses: %w", apperr.Persistence(err))
	}
	if row == nil {
		return lifebalance.NewFlow(nil), nil
	}
	responses, err := row.ResponseMap()
	if err != nil {
		return nil, fmt.Errorf("stored responses invalid: %w", err)
	}
	flow := lifebalance.NewFlow(responses)
	if row.Skipped {
		flow.Skip()
	}
	return flow, nil
}

func stateFromFlow(flow *lifebalance.Flow) *AssessmentState {
	state := &AssessmentState{
		AnsweredCount:   flow.AnsweredCount(),
		TotalQuestions:  lifebalance.TotalQuestions,
		ProgressPercent: flow.ProgressPercent(),
		Complete:        flow.Complete(),
		Outcome:         flow.Outcome(),
	}
	if q, ok := flow.CurrentQuestion(); ok {
		state.CurrentQuestion = &q
		area := q.Area
		state.CurrentArea = &area
	}
	return state
}

func (s *assessmentService) State(ctx context.Context) (*AssessmentState, error) {
	rd := requestdata.GetRequestData(ctx)
	if rd == nil || rd.UserID == uuid.Nil {
		return nil, apperr.ErrUnauthorized
	}
	flow, err := s.loadFlow(ctx, nil, rd.UserID)
	if err != nil {
		return nil, err
	}
	return stateFromFlow(flow), nil
}

func (s *assessmentService) SubmitResponse(ctx context.Context, text string) (*AssessmentState, error) {
	rd := requestdata.GetRequestData(ctx)
	if rd == nil || rd.UserID == uuid.Nil {
		return nil, apperr.ErrUnauthorized
	}

	var state *AssessmentState
	if err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		flow, err := s.loadFlow(ctx, tx, rd.UserID)
		if err != nil {
			return err
		}

		completedSet, err := flow.Submit(text)
		if err != nil {
			return errors.Join(apperr.ErrValidation, err)
		}

		row := &types.ResponseSet{ID: uuid.New(), UserID: rd.UserID}
		if sErr := row.SetResponseMap(flow.Responses()); sErr != nil {
			return fmt.Errorf("failed to encode responses: %w", sErr)
		}
		if _, uErr := s.responseSets.Upsert(ctx, tx, row); uErr != nil {
			return fmt.Errorf("failed to save responses: %w", uErr)
		}

		// The flow emits the full set exactly once, on the completing
		// submission; that is the only moment insights are generated.
		if completedSet != nil {
			derived := lifebalance.DeriveInsights(completedSet, time.Now().UTC())
			record := &types.InsightRecord{ID: uuid.New(), UserID: rd.UserID}
			if aErr := record.ApplyInsights(derived); aErr != nil {
				return fmt.Errorf("failed to encode insights: %w", aErr)
			}
			if _, uErr := s.insights.Upsert(ctx, tx, record); uErr != nil {
				return fmt.Errorf("failed to save insights: %w", uErr)
			}
		}

		state = stateFromFlow(flow)
		return nil
	}); err != nil {
		if errors.Is(err, apperr.ErrValidation) {
			return nil, err
		}
		return nil, apperr.Persistence(err)
	}

	s.cache.Delete(ctx, insightsCacheKey(rd.UserID))
	return state, nil
}

func (s *assessmentService) Skip(ctx context.Context) (*AssessmentState, error) {
	rd := requestdata.GetRequestData(ctx)
	if rd == nil || rd.UserID == uuid.Nil {
		return nil, apperr.ErrUnauthorized
	}

	var state *AssessmentState
	if err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		flow, err := s.loadFlow(ctx, tx, rd.UserID)
		if err != nil {
			return err
		}
		flow.Skip()

		row := &types.ResponseSet{ID: uuid.New(), UserID: rd.UserID, Skipped: true}
		if sErr := row.SetResponseMap(flow.Responses()); sErr != nil {
			return fmt.Errorf("failed to encode responses: %w", sErr)
		}
		if _, uErr := s.responseSets.Upsert(ctx, tx, row); uErr != nil {
			return fmt.Errorf("failed to save responses: %w", uErr)
		}

		state = stateFromFlow(flow)
		return nil
	}); err != nil {
		return nil, apperr.Persistence(err)
	}
	return state, nil
}

func (s *assessmentService) Reset(ctx context.Context) error {
	rd := requestdata.GetRequestData(ctx)
	if rd == nil || rd.UserID == uuid.Nil {
		return apperr.ErrUnauthorized
	}
	if err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if dErr := s.responseSets.DeleteByUserID(ctx, tx, rd.UserID); dErr != nil {
			return fmt.Errorf("failed to delete responses: %w", dErr)
		}
		// Derived insights are invalidated together with their source.
		if dErr := s.insights.DeleteByUserID(ctx, tx, rd.UserID); dErr != nil {
			return fmt.Errorf("failed to delete insights: %w", dErr)
		}
		return nil
	}); err != nil {
		return apperr.Persistence(err)
	}
	s.cache.Delete(ctx, insightsCacheKey(rd.UserID))
	return nil
}

func (s *assessmentService) Responses(ctx context.Context) (map[string]string, error) {
	rd := requestdata.GetRequestData(ctx)
	if rd == nil || rd.UserID == uuid.Nil {
		return nil, apperr.ErrUnauthorized
	}
	flow, err := s.loadFlow(ctx, nil, rd.UserID)
	if err != nil {
		return nil, err
	}
	return flow.Responses(), nil
}

func (s *assessmentService) Insights(ctx context.Context) (*lifebalance.Insights, error) {
	rd := requestdata.GetRequestData(ctx)
	if rd == nil || rd.UserID == uuid.Nil {
		return nil, apperr.ErrUnauthorized
	}

	var cached lifebalance.Insights
	if s.cache.GetJSON(ctx, insightsCacheKey(rd.UserID), &cached) {
		return &cached, nil
	}

	row, err := s.insights.GetByUserID(ctx, nil, rd.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to load insights: %w", apperr.Persistence(err))
	}
	if row == nil {
		return nil, apperr.ErrNotFound
	}
	ins, err := row.Insights()
	if err != nil {
		return nil, fmt.Errorf("stored insights invalid: %w", err)
	}
	s.cache.SetJSON(ctx, insightsCacheKey(rd.UserID), ins)
	return &ins, nil
}
