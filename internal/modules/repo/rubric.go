package repo

import (
	"context"

	"github.com/DarshanR43/satchi/internal/modules/model"
	"gorm.io/gorm"
)

type RubricRepo interface {
	CreateDefinition(ctx context.Context, d *model.RubricDefinition) error
	ListDefinitions(ctx context.Context) ([]model.RubricDefinition, error)
	GetDefinitionByCode(ctx context.Context, code string) (*model.RubricDefinition, error)

	CreateEvaluation(ctx context.Context, e *model.RubricEvaluation) error
	ListEvaluations(ctx context.Context, projectID uint) ([]model.RubricEvaluation, error)
}

type rubricRepo struct{ db *gorm.DB }

func NewRubricRepo(db *gorm.DB) RubricRepo {
	return &rubricRepo{db: db}
}

func (r *rubricRepo) CreateDefinition(ctx context.Context, d *model.RubricDefinition) error {
	return r.db.WithContext(ctx).Create(d).Error
}

func (r *rubricRepo) ListDefinitions(ctx context.Context) ([]model.RubricDefinition, error) {
	var items []model.RubricDefinition
	return items, r.db.WithContext(ctx).Order("code").Find(&items).Error
}

func (r *rubricRepo) GetDefinitionByCode(ctx context.Context, code string) (*model.RubricDefinition, error) {
	var d model.RubricDefinition
	if err := r.db.WithContext(ctx).Where("code = ?", code).First(&d).Error; err != nil {
		return nil, err
	}
	return &d, nil
}

func (r *rubricRepo) CreateEvaluation(ctx context.Context, e *model.RubricEvaluation) error {
	return r.db.WithContext(ctx).Create(e).Error
}

func (r *rubricRepo) ListEvaluations(ctx context.Context, projectID uint) ([]model.RubricEvaluation, error) {
	var items []model.RubricEvaluation
	err := r.db.WithContext(ctx).
		Where("project_id = ?", projectID).
		Order("submitted_at, id").
		Find(&items).Error
	return items, err
}
