package service

import (
	"context"
	"errors"

	"github.com/DarshanR43/satchi/internal/modules/model"
	"github.com/DarshanR43/satchi/internal/modules/repo"
	"github.com/DarshanR43/satchi/internal/pkg/apperr"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type ConsolidationService interface {
	// Fold absorbs the project's latest rubric evaluation into its
	// consolidated score. The average is carried forward incrementally;
	// earlier evaluation rows are never re-read. Folding past the judge
	// panel size is a conflict and leaves the stored row untouched.
	Fold(ctx context.Context, projectID uint) (*model.ConsolidatedScore, error)
	Get(ctx context.Context, projectID uint) (*model.ConsolidatedScore, error)
}

type consolidationService struct {
	consolidated repo.ConsolidatedRepo
	projects     repo.ProjectRepo
}

func NewConsolidationService(consolidated repo.ConsolidatedRepo, projects repo.ProjectRepo) ConsolidationService {
	return &consolidationService{consolidated: consolidated, projects: projects}
}

func (s *consolidationService) Fold(ctx context.Context, projectID uint) (*model.ConsolidatedScore, error) {
	if _, err := s.projects.GetByID(ctx, projectID); err != nil {
		return nil, notFoundOr(err, "project not found")
	}

	cs, err := s.consolidated.FoldLatest(ctx, projectID, func(cs *model.ConsolidatedScore, latest *model.RubricEvaluation) error {
		return FoldScore(cs, latest.Total, latest.NumberOfJudges)
	})
	if err != nil {
		return nil, notFoundOr(err, "no evaluations to consolidate")
	}
	return cs, nil
}

func (s *consolidationService) Get(ctx context.Context, projectID uint) (*model.ConsolidatedScore, error) {
	cs, err := s.consolidated.GetByProject(ctx, projectID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("no consolidated score for project")
		}
		return nil, err
	}
	return cs, nil
}

// FoldScore updates a consolidated row in place with one more
// evaluation total. The new average is (avg*n + total) / (n+1) rounded
// to two places; highest and lowest track the raw totals. A row already
// holding numberOfJudges evaluations rejects further folds.
func FoldScore(cs *model.ConsolidatedScore, total decimal.Decimal, numberOfJudges int) error {
	if numberOfJudges > 0 && cs.TotalEvaluations >= numberOfJudges {
		return apperr.Conflict("all judge evaluations already consolidated")
	}

	if cs.TotalEvaluations == 0 {
		cs.AverageScore = total.Round(2)
		cs.HighestScore = total
		cs.LowestScore = total
	} else {
		n := decimal.NewFromInt(int64(cs.TotalEvaluations))
		cs.AverageScore = cs.AverageScore.Mul(n).Add(total).DivRound(n.Add(decimal.NewFromInt(1)), 2)
		if total.GreaterThan(cs.HighestScore) {
			cs.HighestScore = total
		}
		if total.LessThan(cs.LowestScore) {
			cs.LowestScore = total
		}
	}
	cs.TotalEvaluations++
	return nil
}
