package service

import (
	"context"

	"github.com/DarshanR43/satchi/internal/modules/model"
	"github.com/stretchr/testify/mock"
)

// MockEventRepo is a mock implementation of repo.EventRepo
type MockEventRepo struct {
	mock.Mock
}

func (m *MockEventRepo) CreateMain(ctx context.Context, e *model.MainEvent) error {
	args := m.Called(ctx, e)
	return args.Error(0)
}

func (m *MockEventRepo) CreateSub(ctx context.Context, e *model.SubEvent) error {
	args := m.Called(ctx, e)
	return args.Error(0)
}

func (m *MockEventRepo) CreateSubSub(ctx context.Context, e *model.SubSubEvent) error {
	args := m.Called(ctx, e)
	return args.Error(0)
}

func (m *MockEventRepo) GetMain(ctx context.Context, id uint) (*model.MainEvent, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.MainEvent), args.Error(1)
}

func (m *MockEventRepo) GetSub(ctx context.Context, id uint) (*model.SubEvent, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.SubEvent), args.Error(1)
}

func (m *MockEventRepo) GetSubSub(ctx context.Context, id uint) (*model.SubSubEvent, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.SubSubEvent), args.Error(1)
}

func (m *MockEventRepo) GetSubSubByEventID(ctx context.Context, eventID string) (*model.SubSubEvent, error) {
	args := m.Called(ctx, eventID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.SubSubEvent), args.Error(1)
}

func (m *MockEventRepo) GetSubSubWithParents(ctx context.Context, id uint) (*model.SubSubEvent, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.SubSubEvent), args.Error(1)
}

func (m *MockEventRepo) ListMains(ctx context.Context) ([]model.MainEvent, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.MainEvent), args.Error(1)
}

func (m *MockEventRepo) ListSubs(ctx context.Context, mainID uint) ([]model.SubEvent, error) {
	args := m.Called(ctx, mainID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.SubEvent), args.Error(1)
}

func (m *MockEventRepo) ListSubSubs(ctx context.Context, subID uint) ([]model.SubSubEvent, error) {
	args := m.Called(ctx, subID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.SubSubEvent), args.Error(1)
}

func (m *MockEventRepo) DeleteMain(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockEventRepo) DeleteSub(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockEventRepo) DeleteSubSub(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockProjectRepo is a mock implementation of repo.ProjectRepo
type MockProjectRepo struct {
	mock.Mock
}

func (m *MockProjectRepo) CreateWithMembers(ctx context.Context, p *model.Project, members []model.TeamMember) error {
	args := m.Called(ctx, p, members)
	return args.Error(0)
}

func (m *MockProjectRepo) GetByID(ctx context.Context, id uint) (*model.Project, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Project), args.Error(1)
}

func (m *MockProjectRepo) ListBySubSubEvent(ctx context.Context, subSubEventID uint) ([]model.Project, error) {
	args := m.Called(ctx, subSubEventID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Project), args.Error(1)
}

func (m *MockProjectRepo) ListCodesByPrefix(ctx context.Context, prefix string) ([]string, error) {
	args := m.Called(ctx, prefix)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func (m *MockProjectRepo) EmailRegistered(ctx context.Context, email string) (bool, error) {
	args := m.Called(ctx, email)
	return args.Bool(0), args.Error(1)
}

// MockJudgeRepo is a mock implementation of repo.JudgeRepo
type MockJudgeRepo struct {
	mock.Mock
}

func (m *MockJudgeRepo) SyncForEvent(ctx context.Context, subSubEventID uint, names []string, replace bool) ([]model.SubSubEventJudge, error) {
	args := m.Called(ctx, subSubEventID, names, replace)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.SubSubEventJudge), args.Error(1)
}

func (m *MockJudgeRepo) ListForEvent(ctx context.Context, subSubEventID uint) ([]model.SubSubEventJudge, error) {
	args := m.Called(ctx, subSubEventID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.SubSubEventJudge), args.Error(1)
}

func (m *MockJudgeRepo) FindByName(ctx context.Context, subSubEventID uint, name string) (*model.SubSubEventJudge, error) {
	args := m.Called(ctx, subSubEventID, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.SubSubEventJudge), args.Error(1)
}

// MockEvaluationRepo is a mock implementation of repo.EvaluationRepo
type MockEvaluationRepo struct {
	mock.Mock
}

func (m *MockEvaluationRepo) GetByProjectAndEvent(ctx context.Context, projectID, subSubEventID uint) (*model.Evaluation, error) {
	args := m.Called(ctx, projectID, subSubEventID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Evaluation), args.Error(1)
}

func (m *MockEvaluationRepo) ReplaceMarks(ctx context.Context, eval *model.Evaluation, marks []model.EvaluationJudgeMark) error {
	args := m.Called(ctx, eval, marks)
	return args.Error(0)
}

func (m *MockEvaluationRepo) ListBySubSubEvent(ctx context.Context, subSubEventID uint) ([]model.Evaluation, error) {
	args := m.Called(ctx, subSubEventID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Evaluation), args.Error(1)
}

// MockRubricRepo is a mock implementation of repo.RubricRepo
type MockRubricRepo struct {
	mock.Mock
}

func (m *MockRubricRepo) CreateDefinition(ctx context.Context, d *model.RubricDefinition) error {
	args := m.Called(ctx, d)
	return args.Error(0)
}

func (m *MockRubricRepo) ListDefinitions(ctx context.Context) ([]model.RubricDefinition, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.RubricDefinition), args.Error(1)
}

func (m *MockRubricRepo) GetDefinitionByCode(ctx context.Context, code string) (*model.RubricDefinition, error) {
	args := m.Called(ctx, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.RubricDefinition), args.Error(1)
}

func (m *MockRubricRepo) CreateEvaluation(ctx context.Context, e *model.RubricEvaluation) error {
	args := m.Called(ctx, e)
	return args.Error(0)
}

func (m *MockRubricRepo) ListEvaluations(ctx context.Context, projectID uint) ([]model.RubricEvaluation, error) {
	args := m.Called(ctx, projectID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.RubricEvaluation), args.Error(1)
}

// foldState is what MockConsolidatedRepo.FoldLatest hands to the apply
// callback, standing in for the locked row and the latest evaluation.
type foldState struct {
	current *model.ConsolidatedScore
	latest  *model.RubricEvaluation
}

// MockConsolidatedRepo is a mock implementation of repo.ConsolidatedRepo
type MockConsolidatedRepo struct {
	mock.Mock
}

func (m *MockConsolidatedRepo) GetByProject(ctx context.Context, projectID uint) (*model.ConsolidatedScore, error) {
	args := m.Called(ctx, projectID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.ConsolidatedScore), args.Error(1)
}

func (m *MockConsolidatedRepo) FoldLatest(ctx context.Context, projectID uint, apply func(cs *model.ConsolidatedScore, latest *model.RubricEvaluation) error) (*model.ConsolidatedScore, error) {
	args := m.Called(ctx, projectID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	st := args.Get(0).(*foldState)
	cs := st.current
	if cs == nil {
		cs = &model.ConsolidatedScore{ProjectID: projectID}
	}
	if err := apply(cs, st.latest); err != nil {
		return nil, err
	}
	return cs, nil
}

// MockCodeGenerator is a mock implementation of CodeGenerator
type MockCodeGenerator struct {
	mock.Mock
}

func (m *MockCodeGenerator) NextCode(ctx context.Context, mainName, subName, competitionName string) (string, error) {
	args := m.Called(ctx, mainName, subName, competitionName)
	return args.String(0), args.Error(1)
}
