package service

import (
	"bytes"
	"context"
	"encoding/csv"
	"testing"

	"github.com/DarshanR43/satchi/internal/modules/model"
	"github.com/DarshanR43/satchi/internal/pkg/apperr"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestWriteEvaluationSheet(t *testing.T) {
	evals := new(MockEvaluationRepo)
	events := new(MockEventRepo)
	svc := NewExportService(evals, events)

	code := "FEST_TRACK_COMP_001"
	events.On("GetSubSub", mock.Anything, uint(3)).Return(&model.SubSubEvent{ID: 3}, nil)
	evals.On("ListBySubSubEvent", mock.Anything, uint(3)).Return([]model.Evaluation{
		{
			ID:         1,
			JudgeCount: 2,
			Total:      decimal.RequireFromString("160.50"),
			FinalScore: decimal.RequireFromString("80.25"),
			Project: &model.Project{
				TeamName:     "Null Pointers",
				ProjectTopic: "Flood mapping",
				ProjectCode:  &code,
			},
		},
		{
			ID:             2,
			JudgeCount:     1,
			IsDisqualified: true,
			Remarks:        "plagiarised",
			Total:          decimal.RequireFromString("40"),
			FinalScore:     decimal.RequireFromString("40"),
		},
	}, nil)

	var buf bytes.Buffer
	require.NoError(t, svc.WriteEvaluationSheet(context.Background(), 3, &buf))

	rows, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, []string{"project_code", "team_name", "project_topic", "judge_count", "total", "final_score", "is_disqualified", "remarks"}, rows[0])
	assert.Equal(t, []string{code, "Null Pointers", "Flood mapping", "2", "160.50", "80.25", "false", ""}, rows[1])
	assert.Equal(t, []string{"", "", "", "1", "40.00", "40.00", "true", "plagiarised"}, rows[2])
}

func TestWriteEvaluationSheet_UnknownCompetition(t *testing.T) {
	evals := new(MockEvaluationRepo)
	events := new(MockEventRepo)
	svc := NewExportService(evals, events)

	events.On("GetSubSub", mock.Anything, uint(9)).Return(nil, gorm.ErrRecordNotFound)

	var buf bytes.Buffer
	err := svc.WriteEvaluationSheet(context.Background(), 9, &buf)

	require.Error(t, err)
	assert.True(t, apperr.IsNotFound(err))
	assert.Zero(t, buf.Len())
}
