package service

import (
	"context"
	"encoding/csv"
	"io"
	"strconv"

	"github.com/DarshanR43/satchi/internal/modules/repo"
)

type ExportService interface {
	// WriteEvaluationSheet streams the competition's scorecards as CSV,
	// one row per evaluated project.
	WriteEvaluationSheet(ctx context.Context, subSubEventID uint, w io.Writer) error
}

type exportService struct {
	evaluations repo.EvaluationRepo
	events      repo.EventRepo
}

func NewExportService(evaluations repo.EvaluationRepo, events repo.EventRepo) ExportService {
	return &exportService{evaluations: evaluations, events: events}
}

func (s *exportService) WriteEvaluationSheet(ctx context.Context, subSubEventID uint, w io.Writer) error {
	if _, err := s.events.GetSubSub(ctx, subSubEventID); err != nil {
		return notFoundOr(err, "competition not found")
	}
	evals, err := s.evaluations.ListBySubSubEvent(ctx, subSubEventID)
	if err != nil {
		return err
	}

	cw := csv.NewWriter(w)
	header := []string{"project_code", "team_name", "project_topic", "judge_count", "total", "final_score", "is_disqualified", "remarks"}
	if err := cw.Write(header); err != nil {
		return err
	}
	for _, e := range evals {
		code, team, topic := "", "", ""
		if e.Project != nil {
			team = e.Project.TeamName
			topic = e.Project.ProjectTopic
			if e.Project.ProjectCode != nil {
				code = *e.Project.ProjectCode
			}
		}
		row := []string{
			code,
			team,
			topic,
			strconv.Itoa(e.JudgeCount),
			e.Total.StringFixed(2),
			e.FinalScore.StringFixed(2),
			strconv.FormatBool(e.IsDisqualified),
			e.Remarks,
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
