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
	"gorm.io/gorm"
)

// markCeiling bounds a single judge mark; values are validated
// inclusive of both ends.
var markCeiling = decimal.NewFromInt(10000)

type MarkInput struct {
	JudgeName string
	// Mark is carried as a string so the submitted decimal survives
	// exactly; it is parsed, never converted through a float.
	Mark     string
	Comments string
}

type SubmitMarksInput struct {
	ProjectID      uint
	SubSubEventID  uint
	IsDisqualified bool
	Remarks        string
	Marks          []MarkInput
}

type EvaluationService interface {
	// SubmitMarks replaces the full mark set of one (project, competition)
	// scorecard and recomputes the derived aggregates. Partial updates do
	// not exist; the previous marks are gone once this returns.
	SubmitMarks(ctx context.Context, in SubmitMarksInput) (*model.Evaluation, error)
	// Get returns (nil, false, nil) when the project has not been scored
	// in that competition yet.
	Get(ctx context.Context, projectID, subSubEventID uint) (*model.Evaluation, bool, error)
}

type evaluationService struct {
	evaluations repo.EvaluationRepo
	projects    repo.ProjectRepo
	events      repo.EventRepo
	judges      repo.JudgeRepo
}

func NewEvaluationService(evaluations repo.EvaluationRepo, projects repo.ProjectRepo, events repo.EventRepo, judges repo.JudgeRepo) EvaluationService {
	return &evaluationService{
		evaluations: evaluations,
		projects:    projects,
		events:      events,
		judges:      judges,
	}
}

func (s *evaluationService) SubmitMarks(ctx context.Context, in SubmitMarksInput) (*model.Evaluation, error) {
	parsed, err := parseMarks(in.Marks)
	if err != nil {
		return nil, err
	}

	if _, err := s.projects.GetByID(ctx, in.ProjectID); err != nil {
		return nil, notFoundOr(err, "project not found")
	}
	if _, err := s.events.GetSubSub(ctx, in.SubSubEventID); err != nil {
		return nil, notFoundOr(err, "competition not found")
	}

	marks := make([]model.EvaluationJudgeMark, 0, len(parsed))
	for _, p := range parsed {
		m := model.EvaluationJudgeMark{
			JudgeName: p.name,
			Mark:      p.mark,
			Comments:  p.comments,
		}
		// The registry link is best effort; an unregistered judge name
		// still produces a valid mark.
		j, err := s.judges.FindByName(ctx, in.SubSubEventID, p.name)
		if err != nil {
			return nil, err
		}
		if j != nil {
			id := j.ID
			m.SubSubEventJudgeID = &id
		}
		marks = append(marks, m)
	}

	count, total, final := AggregateMarks(markValues(parsed))
	eval := &model.Evaluation{
		ProjectID:      in.ProjectID,
		SubSubEventID:  in.SubSubEventID,
		IsDisqualified: in.IsDisqualified,
		Remarks:        in.Remarks,
		JudgeCount:     count,
		Total:          total,
		FinalScore:     final,
	}

	if err := s.evaluations.ReplaceMarks(ctx, eval, marks); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperr.Conflict("conflicting evaluation write, retry the submission")
		}
		return nil, err
	}
	return eval, nil
}

func (s *evaluationService) Get(ctx context.Context, projectID, subSubEventID uint) (*model.Evaluation, bool, error) {
	eval, err := s.evaluations.GetByProjectAndEvent(ctx, projectID, subSubEventID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, false, nil
		}
		return nil, false, err
	}
	return eval, true, nil
}

type parsedMark struct {
	name     string
	mark     decimal.Decimal
	comments string
}

func parseMarks(in []MarkInput) ([]parsedMark, error) {
	if len(in) == 0 {
		return nil, apperr.Validation("marks", "at least one judge mark is required")
	}

	seen := make(map[string]struct{}, len(in))
	out := make([]parsedMark, 0, len(in))
	for i, m := range in {
		name := strings.TrimSpace(m.JudgeName)
		if name == "" {
			return nil, apperr.Validation(fmt.Sprintf("marks[%d].judge_name", i), "judge name must not be blank")
		}
		if _, dup := seen[name]; dup {
			return nil, apperr.Conflict(fmt.Sprintf("duplicate judge name %q in submission", name))
		}
		seen[name] = struct{}{}

		mark, err := decimal.NewFromString(strings.TrimSpace(m.Mark))
		if err != nil {
			return nil, apperr.Validation(fmt.Sprintf("marks[%d].mark", i), "must be a decimal number")
		}
		if mark.IsNegative() || mark.GreaterThan(markCeiling) {
			return nil, apperr.Validation(fmt.Sprintf("marks[%d].mark", i), "must be between 0 and 10000")
		}
		out = append(out, parsedMark{name: name, mark: mark, comments: m.Comments})
	}
	return out, nil
}

func markValues(parsed []parsedMark) []decimal.Decimal {
	vals := make([]decimal.Decimal, len(parsed))
	for i, p := range parsed {
		vals[i] = p.mark
	}
	return vals
}

// AggregateMarks derives the scorecard aggregates from a mark set: the
// judge count, the exact decimal sum, and the average rounded to two
// places with halves away from zero (1.005 becomes 1.01).
func AggregateMarks(marks []decimal.Decimal) (count int, total, final decimal.Decimal) {
	count = len(marks)
	total = decimal.Zero
	for _, m := range marks {
		total = total.Add(m)
	}
	if count == 0 {
		return 0, decimal.Zero, decimal.Zero
	}
	final = total.DivRound(decimal.NewFromInt(int64(count)), 2)
	return count, total, final
}

func notFoundOr(err error, msg string) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return apperr.NotFound(msg)
	}
	return err
}
