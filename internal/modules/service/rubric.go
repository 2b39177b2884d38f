package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/DarshanR43/satchi/internal/modules/model"
	"github.com/DarshanR43/satchi/internal/modules/repo"
	"github.com/DarshanR43/satchi/internal/pkg/apperr"
	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

const defaultNumberOfJudges = 2

type CreateRubricDefinitionInput struct {
	Code    string
	Name    string
	MaxMark int
}

type SubmitRubricInput struct {
	ProjectID uint
	Evaluator string
	// Marks maps rubric codes to integer scores, e.g. {"creativity": 8}.
	Marks          map[string]int
	NumberOfJudges int
}

type RubricService interface {
	CreateDefinition(ctx context.Context, in CreateRubricDefinitionInput) (*model.RubricDefinition, error)
	ListDefinitions(ctx context.Context) ([]model.RubricDefinition, error)
	// SubmitEvaluation records one evaluator's rubric for a project; the
	// total is the sum of the rubric scores. Each submission is a new row,
	// resubmission semantics belong to the judge-mark path, not here.
	SubmitEvaluation(ctx context.Context, in SubmitRubricInput) (*model.RubricEvaluation, error)
	ListEvaluations(ctx context.Context, projectID uint) ([]model.RubricEvaluation, error)
}

type rubricService struct {
	rubrics  repo.RubricRepo
	projects repo.ProjectRepo
}

func NewRubricService(rubrics repo.RubricRepo, projects repo.ProjectRepo) RubricService {
	return &rubricService{rubrics: rubrics, projects: projects}
}

func (s *rubricService) CreateDefinition(ctx context.Context, in CreateRubricDefinitionInput) (*model.RubricDefinition, error) {
	code := strings.TrimSpace(strings.ToLower(in.Code))
	if code == "" {
		return nil, apperr.Validation("code", "rubric code is required")
	}
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, apperr.Validation("name", "rubric name is required")
	}
	if in.MaxMark <= 0 {
		in.MaxMark = 10
	}

	d := &model.RubricDefinition{Code: code, Name: name, MaxMark: in.MaxMark}
	if err := s.rubrics.CreateDefinition(ctx, d); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperr.Conflict(fmt.Sprintf("rubric %q already defined", code))
		}
		return nil, err
	}
	return d, nil
}

func (s *rubricService) ListDefinitions(ctx context.Context) ([]model.RubricDefinition, error) {
	return s.rubrics.ListDefinitions(ctx)
}

func (s *rubricService) SubmitEvaluation(ctx context.Context, in SubmitRubricInput) (*model.RubricEvaluation, error) {
	if _, err := s.projects.GetByID(ctx, in.ProjectID); err != nil {
		return nil, notFoundOr(err, "project not found")
	}
	if len(in.Marks) == 0 {
		return nil, apperr.Validation("rubric_marks", "at least one rubric mark is required")
	}

	total := decimal.Zero
	stored := make(datatypes.JSONMap, len(in.Marks))
	for code, score := range in.Marks {
		def, err := s.rubrics.GetDefinitionByCode(ctx, code)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, apperr.Validation(fmt.Sprintf("rubric_marks.%s", code), "not a defined rubric")
			}
			return nil, err
		}
		if score < 0 || score > def.MaxMark {
			return nil, apperr.Validation(fmt.Sprintf("rubric_marks.%s", code), fmt.Sprintf("must be between 0 and %d", def.MaxMark))
		}
		total = total.Add(decimal.NewFromInt(int64(score)))
		stored[code] = score
	}

	n := in.NumberOfJudges
	if n <= 0 {
		n = defaultNumberOfJudges
	}

	e := &model.RubricEvaluation{
		ProjectID:      in.ProjectID,
		Evaluator:      strings.TrimSpace(in.Evaluator),
		RubricMarks:    stored,
		NumberOfJudges: n,
		Total:          total,
	}
	if err := s.rubrics.CreateEvaluation(ctx, e); err != nil {
		return nil, err
	}
	return e, nil
}

func (s *rubricService) ListEvaluations(ctx context.Context, projectID uint) ([]model.RubricEvaluation, error) {
	if _, err := s.projects.GetByID(ctx, projectID); err != nil {
		return nil, notFoundOr(err, "project not found")
	}
	return s.rubrics.ListEvaluations(ctx, projectID)
}
