package services

import (
	"context"
	"errors"

	"golang.org/x/sync/errgroup"

	"github.com/yungbote/lifebalance-backend/internal/apperr"
	"github.com/yungbote/lifebalance-backend/internal/lifebalance"
	"github.com/yungbote/lifebalance-backend/internal/logger"
)

// Dashboard bundles everything the dashboard page renders in one load.
type Dashboard struct {
	Scores     map[lifebalance.Area]int `json:"scores"`
	Insights   *lifebalance.Insights    `json:"insights,omitempty"`
	Assessment *AssessmentState         `json:"assessment"`
}

type DashboardService interface {
	Load(ctx context.Context) (*Dashboard, error)
}

type dashboardService struct {
	log        *logger.Logger
	scores     ScoreService
	assessment AssessmentService
}

func NewDashboardService(log *logger.Logger, scores ScoreService, assessment AssessmentService) DashboardService {
	return &dashboardService{
		log:        log.With("service", "DashboardService"),
		scores:     scores,
		assessment: assessment,
	}
}

func (ds *dashboardService) Load(ctx context.Context) (*Dashboard, error) {
	var out Dashboard

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		scores, err := ds.scores.Get(gctx)
		if err != nil {
			return err
		}
		out.Scores = scores.Map()
		return nil
	})
	g.Go(func() error {
		ins, err := ds.assessment.Insights(gctx)
		if errors.Is(err, apperr.ErrNotFound) {
			// No completed assessment yet; the dashboard renders its
			// placeholder.
			return nil
		}
		if err != nil {
			return err
		}
		out.Insights = ins
		return nil
	})
	g.Go(func() error {
		state, err := ds.assessment.State(gctx)
		if err != nil {
			return err
		}
		out.Assessment = state
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return &out, nil
}
