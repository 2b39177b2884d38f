package service

import (
	"context"
	"errors"
	"testing"

	"github.com/DarshanR43/satchi/internal/modules/model"
	"github.com/DarshanR43/satchi/internal/pkg/apperr"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newEvaluationFixture() (*evaluationService, *MockEvaluationRepo, *MockProjectRepo, *MockEventRepo, *MockJudgeRepo) {
	evals := new(MockEvaluationRepo)
	projects := new(MockProjectRepo)
	events := new(MockEventRepo)
	judges := new(MockJudgeRepo)
	svc := NewEvaluationService(evals, projects, events, judges).(*evaluationService)
	return svc, evals, projects, events, judges
}

func TestSubmitMarks_RecomputesAggregates(t *testing.T) {
	svc, evals, projects, events, judges := newEvaluationFixture()

	projects.On("GetByID", mock.Anything, uint(1)).Return(&model.Project{ID: 1}, nil)
	events.On("GetSubSub", mock.Anything, uint(2)).Return(&model.SubSubEvent{ID: 2}, nil)
	judges.On("FindByName", mock.Anything, uint(2), "Prof. Mehta").Return(&model.SubSubEventJudge{ID: 7}, nil)
	judges.On("FindByName", mock.Anything, uint(2), "Dr. Nair").Return(nil, nil)
	evals.On("ReplaceMarks", mock.Anything, mock.Anything, mock.Anything).Return(nil)

	out, err := svc.SubmitMarks(context.Background(), SubmitMarksInput{
		ProjectID:     1,
		SubSubEventID: 2,
		Marks: []MarkInput{
			{JudgeName: "Prof. Mehta", Mark: "78.50"},
			{JudgeName: "Dr. Nair", Mark: "82.00"},
		},
	})

	require.NoError(t, err)
	assert.Equal(t, 2, out.JudgeCount)
	assert.True(t, out.Total.Equal(decimal.RequireFromString("160.50")), "total %s", out.Total)
	assert.True(t, out.FinalScore.Equal(decimal.RequireFromString("80.25")), "final %s", out.FinalScore)
	evals.AssertCalled(t, "ReplaceMarks", mock.Anything, mock.Anything, mock.MatchedBy(func(marks []model.EvaluationJudgeMark) bool {
		if len(marks) != 2 {
			return false
		}
		// The registered judge gets the registry link, the other stays nil.
		return marks[0].SubSubEventJudgeID != nil && *marks[0].SubSubEventJudgeID == 7 && marks[1].SubSubEventJudgeID == nil
	}))
}

func TestSubmitMarks_RoundsHalfAwayFromZero(t *testing.T) {
	svc, evals, projects, events, judges := newEvaluationFixture()

	projects.On("GetByID", mock.Anything, uint(1)).Return(&model.Project{ID: 1}, nil)
	events.On("GetSubSub", mock.Anything, uint(2)).Return(&model.SubSubEvent{ID: 2}, nil)
	judges.On("FindByName", mock.Anything, uint(2), mock.Anything).Return(nil, nil)
	evals.On("ReplaceMarks", mock.Anything, mock.Anything, mock.Anything).Return(nil)

	out, err := svc.SubmitMarks(context.Background(), SubmitMarksInput{
		ProjectID:     1,
		SubSubEventID: 2,
		Marks:         []MarkInput{{JudgeName: "J", Mark: "1.005"}},
	})

	require.NoError(t, err)
	assert.Equal(t, "1.01", out.FinalScore.StringFixed(2))
}

func TestSubmitMarks_EmptyMarks(t *testing.T) {
	svc, evals, _, _, _ := newEvaluationFixture()

	_, err := svc.SubmitMarks(context.Background(), SubmitMarksInput{ProjectID: 1, SubSubEventID: 2})

	require.Error(t, err)
	assert.True(t, apperr.IsValidation(err))
	var ae *apperr.Error
	require.True(t, errors.As(err, &ae))
	assert.Equal(t, "marks", ae.Field)
	evals.AssertNotCalled(t, "ReplaceMarks", mock.Anything, mock.Anything, mock.Anything)
}

func TestSubmitMarks_InvalidMarkCarriesIndex(t *testing.T) {
	svc, _, _, _, _ := newEvaluationFixture()

	tests := []struct {
		name      string
		marks     []MarkInput
		wantField string
	}{
		{
			"blank judge name",
			[]MarkInput{{JudgeName: "A", Mark: "5"}, {JudgeName: "   ", Mark: "5"}},
			"marks[1].judge_name",
		},
		{
			"not a decimal",
			[]MarkInput{{JudgeName: "A", Mark: "ninety"}},
			"marks[0].mark",
		},
		{
			"negative",
			[]MarkInput{{JudgeName: "A", Mark: "-0.01"}},
			"marks[0].mark",
		},
		{
			"above ceiling",
			[]MarkInput{{JudgeName: "A", Mark: "5"}, {JudgeName: "B", Mark: "10000.01"}},
			"marks[1].mark",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.SubmitMarks(context.Background(), SubmitMarksInput{ProjectID: 1, SubSubEventID: 2, Marks: tt.marks})
			require.Error(t, err)
			assert.True(t, apperr.IsValidation(err))
			var ae *apperr.Error
			require.True(t, errors.As(err, &ae))
			assert.Equal(t, tt.wantField, ae.Field)
		})
	}
}

func TestSubmitMarks_DuplicateJudgeRejectedUpfront(t *testing.T) {
	svc, evals, projects, _, _ := newEvaluationFixture()

	_, err := svc.SubmitMarks(context.Background(), SubmitMarksInput{
		ProjectID:     1,
		SubSubEventID: 2,
		Marks: []MarkInput{
			{JudgeName: "Prof. Mehta", Mark: "70"},
			{JudgeName: "Prof. Mehta ", Mark: "80"},
		},
	})

	require.Error(t, err)
	assert.True(t, apperr.IsConflict(err))
	projects.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything)
	evals.AssertNotCalled(t, "ReplaceMarks", mock.Anything, mock.Anything, mock.Anything)
}

func TestSubmitMarks_ProjectNotFound(t *testing.T) {
	svc, _, projects, _, _ := newEvaluationFixture()

	projects.On("GetByID", mock.Anything, uint(9)).Return(nil, gorm.ErrRecordNotFound)

	_, err := svc.SubmitMarks(context.Background(), SubmitMarksInput{
		ProjectID:     9,
		SubSubEventID: 2,
		Marks:         []MarkInput{{JudgeName: "J", Mark: "50"}},
	})

	require.Error(t, err)
	assert.True(t, apperr.IsNotFound(err))
}

func TestSubmitMarks_RepoErrorPropagates(t *testing.T) {
	svc, evals, projects, events, judges := newEvaluationFixture()

	projects.On("GetByID", mock.Anything, uint(1)).Return(&model.Project{ID: 1}, nil)
	events.On("GetSubSub", mock.Anything, uint(2)).Return(&model.SubSubEvent{ID: 2}, nil)
	judges.On("FindByName", mock.Anything, uint(2), mock.Anything).Return(nil, nil)
	boom := errors.New("tx failed")
	evals.On("ReplaceMarks", mock.Anything, mock.Anything, mock.Anything).Return(boom)

	_, err := svc.SubmitMarks(context.Background(), SubmitMarksInput{
		ProjectID:     1,
		SubSubEventID: 2,
		Marks:         []MarkInput{{JudgeName: "J", Mark: "50"}},
	})

	assert.ErrorIs(t, err, boom)
}

func TestGet_MissingEvaluationIsNotAnError(t *testing.T) {
	svc, evals, _, _, _ := newEvaluationFixture()

	evals.On("GetByProjectAndEvent", mock.Anything, uint(1), uint(2)).Return(nil, gorm.ErrRecordNotFound)

	eval, exists, err := svc.Get(context.Background(), 1, 2)

	require.NoError(t, err)
	assert.False(t, exists)
	assert.Nil(t, eval)
}

func TestAggregateMarks(t *testing.T) {
	d := decimal.RequireFromString

	tests := []struct {
		name      string
		marks     []decimal.Decimal
		wantCount int
		wantTotal string
		wantFinal string
	}{
		{"empty", nil, 0, "0.00", "0.00"},
		{"single", []decimal.Decimal{d("78.50")}, 1, "78.50", "78.50"},
		{"pair", []decimal.Decimal{d("78.50"), d("82.00")}, 2, "160.50", "80.25"},
		{"repeating third rounds", []decimal.Decimal{d("10"), d("10"), d("11")}, 3, "31.00", "10.33"},
		{"half rounds away from zero", []decimal.Decimal{d("1.005")}, 1, "1.005", "1.01"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			count, total, final := AggregateMarks(tt.marks)
			assert.Equal(t, tt.wantCount, count)
			assert.True(t, total.Equal(d(tt.wantTotal)), "total %s", total)
			assert.True(t, final.Equal(d(tt.wantFinal)), "final %s", final)
		})
	}
}
