package service

import (
	"context"
	"errors"
	"testing"

	"github.com/DarshanR43/satchi/internal/modules/model"
	"github.com/DarshanR43/satchi/internal/pkg/apperr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newRubricFixture() (RubricService, *MockRubricRepo, *MockProjectRepo) {
	rubrics := new(MockRubricRepo)
	projects := new(MockProjectRepo)
	return NewRubricService(rubrics, projects), rubrics, projects
}

func TestCreateDefinition_NormalizesCode(t *testing.T) {
	svc, rubrics, _ := newRubricFixture()

	rubrics.On("CreateDefinition", mock.Anything, mock.Anything).Return(nil)

	d, err := svc.CreateDefinition(context.Background(), CreateRubricDefinitionInput{
		Code: "  Creativity ",
		Name: "Creativity",
	})

	require.NoError(t, err)
	assert.Equal(t, "creativity", d.Code)
	assert.Equal(t, 10, d.MaxMark)
}

func TestCreateDefinition_DuplicateCode(t *testing.T) {
	svc, rubrics, _ := newRubricFixture()

	rubrics.On("CreateDefinition", mock.Anything, mock.Anything).Return(gorm.ErrDuplicatedKey)

	_, err := svc.CreateDefinition(context.Background(), CreateRubricDefinitionInput{
		Code: "creativity",
		Name: "Creativity",
	})

	require.Error(t, err)
	assert.True(t, apperr.IsConflict(err))
}

func TestSubmitRubricEvaluation_TotalsScores(t *testing.T) {
	svc, rubrics, projects := newRubricFixture()

	projects.On("GetByID", mock.Anything, uint(1)).Return(&model.Project{ID: 1}, nil)
	rubrics.On("GetDefinitionByCode", mock.Anything, "creativity").Return(&model.RubricDefinition{Code: "creativity", MaxMark: 10}, nil)
	rubrics.On("GetDefinitionByCode", mock.Anything, "impact").Return(&model.RubricDefinition{Code: "impact", MaxMark: 20}, nil)
	rubrics.On("CreateEvaluation", mock.Anything, mock.Anything).Return(nil)

	e, err := svc.SubmitEvaluation(context.Background(), SubmitRubricInput{
		ProjectID: 1,
		Evaluator: "Dr. Nair",
		Marks:     map[string]int{"creativity": 8, "impact": 15},
	})

	require.NoError(t, err)
	assert.Equal(t, "23.00", e.Total.StringFixed(2))
	assert.Equal(t, 2, e.NumberOfJudges)
}

func TestSubmitRubricEvaluation_UndefinedRubric(t *testing.T) {
	svc, rubrics, projects := newRubricFixture()

	projects.On("GetByID", mock.Anything, uint(1)).Return(&model.Project{ID: 1}, nil)
	rubrics.On("GetDefinitionByCode", mock.Anything, "vibes").Return(nil, gorm.ErrRecordNotFound)

	_, err := svc.SubmitEvaluation(context.Background(), SubmitRubricInput{
		ProjectID: 1,
		Marks:     map[string]int{"vibes": 5},
	})

	require.Error(t, err)
	assert.True(t, apperr.IsValidation(err))
	var ae *apperr.Error
	require.True(t, errors.As(err, &ae))
	assert.Equal(t, "rubric_marks.vibes", ae.Field)
}

func TestSubmitRubricEvaluation_ScoreOverMax(t *testing.T) {
	svc, rubrics, projects := newRubricFixture()

	projects.On("GetByID", mock.Anything, uint(1)).Return(&model.Project{ID: 1}, nil)
	rubrics.On("GetDefinitionByCode", mock.Anything, "creativity").Return(&model.RubricDefinition{Code: "creativity", MaxMark: 10}, nil)

	_, err := svc.SubmitEvaluation(context.Background(), SubmitRubricInput{
		ProjectID: 1,
		Marks:     map[string]int{"creativity": 11},
	})

	require.Error(t, err)
	assert.True(t, apperr.IsValidation(err))
	rubrics.AssertNotCalled(t, "CreateEvaluation", mock.Anything, mock.Anything)
}
