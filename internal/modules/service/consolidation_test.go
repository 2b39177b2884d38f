package service

import (
	"context"
	"testing"

	"github.com/DarshanR43/satchi/internal/modules/model"
	"github.com/DarshanR43/satchi/internal/pkg/apperr"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestFoldScore_Sequence(t *testing.T) {
	d := decimal.RequireFromString

	cs := &model.ConsolidatedScore{ProjectID: 1}
	steps := []struct {
		total    string
		wantAvg  string
		wantHigh string
		wantLow  string
		wantN    int
	}{
		{"50", "50.00", "50", "50", 1},
		{"70", "60.00", "70", "50", 2},
		{"90", "70.00", "90", "50", 3},
	}
	for _, st := range steps {
		require.NoError(t, FoldScore(cs, d(st.total), 3))
		assert.True(t, cs.AverageScore.Equal(d(st.wantAvg)), "avg %s after folding %s", cs.AverageScore, st.total)
		assert.True(t, cs.HighestScore.Equal(d(st.wantHigh)))
		assert.True(t, cs.LowestScore.Equal(d(st.wantLow)))
		assert.Equal(t, st.wantN, cs.TotalEvaluations)
	}
}

func TestFoldScore_RoundsIncrementalAverage(t *testing.T) {
	d := decimal.RequireFromString

	cs := &model.ConsolidatedScore{ProjectID: 1}
	require.NoError(t, FoldScore(cs, d("10"), 3))
	require.NoError(t, FoldScore(cs, d("10"), 3))
	require.NoError(t, FoldScore(cs, d("11"), 3))
	// 31/3 rounded, not truncated.
	assert.Equal(t, "10.33", cs.AverageScore.StringFixed(2))
}

func TestFoldScore_CapacityLeavesRowUntouched(t *testing.T) {
	d := decimal.RequireFromString

	cs := &model.ConsolidatedScore{
		ProjectID:        1,
		AverageScore:     d("60.00"),
		HighestScore:     d("70"),
		LowestScore:      d("50"),
		TotalEvaluations: 2,
	}
	before := *cs

	err := FoldScore(cs, d("90"), 2)

	require.Error(t, err)
	assert.True(t, apperr.IsConflict(err))
	assert.Equal(t, before, *cs)
}

func TestFold_FirstEvaluation(t *testing.T) {
	consolidated := new(MockConsolidatedRepo)
	projects := new(MockProjectRepo)
	svc := NewConsolidationService(consolidated, projects)

	projects.On("GetByID", mock.Anything, uint(1)).Return(&model.Project{ID: 1}, nil)
	consolidated.On("FoldLatest", mock.Anything, uint(1)).Return(&foldState{
		latest: &model.RubricEvaluation{Total: decimal.RequireFromString("42.50"), NumberOfJudges: 2},
	}, nil)

	cs, err := svc.Fold(context.Background(), 1)

	require.NoError(t, err)
	assert.Equal(t, 1, cs.TotalEvaluations)
	assert.Equal(t, "42.50", cs.AverageScore.StringFixed(2))
	assert.True(t, cs.HighestScore.Equal(cs.LowestScore))
}

func TestFold_NoEvaluations(t *testing.T) {
	consolidated := new(MockConsolidatedRepo)
	projects := new(MockProjectRepo)
	svc := NewConsolidationService(consolidated, projects)

	projects.On("GetByID", mock.Anything, uint(1)).Return(&model.Project{ID: 1}, nil)
	consolidated.On("FoldLatest", mock.Anything, uint(1)).Return(nil, gorm.ErrRecordNotFound)

	_, err := svc.Fold(context.Background(), 1)

	require.Error(t, err)
	assert.True(t, apperr.IsNotFound(err))
}

func TestFold_AtPanelCapacity(t *testing.T) {
	consolidated := new(MockConsolidatedRepo)
	projects := new(MockProjectRepo)
	svc := NewConsolidationService(consolidated, projects)

	projects.On("GetByID", mock.Anything, uint(1)).Return(&model.Project{ID: 1}, nil)
	consolidated.On("FoldLatest", mock.Anything, uint(1)).Return(&foldState{
		current: &model.ConsolidatedScore{ProjectID: 1, TotalEvaluations: 2},
		latest:  &model.RubricEvaluation{Total: decimal.RequireFromString("90"), NumberOfJudges: 2},
	}, nil)

	_, err := svc.Fold(context.Background(), 1)

	require.Error(t, err)
	assert.True(t, apperr.IsConflict(err))
}

func TestGetConsolidated_Missing(t *testing.T) {
	consolidated := new(MockConsolidatedRepo)
	projects := new(MockProjectRepo)
	svc := NewConsolidationService(consolidated, projects)

	consolidated.On("GetByProject", mock.Anything, uint(5)).Return(nil, gorm.ErrRecordNotFound)

	_, err := svc.Get(context.Background(), 5)

	require.Error(t, err)
	assert.True(t, apperr.IsNotFound(err))
}
