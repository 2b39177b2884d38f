package repo

import (
	"context"

	"github.com/DarshanR43/satchi/internal/modules/model"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ConsolidatedRepo interface {
	GetByProject(ctx context.Context, projectID uint) (*model.ConsolidatedScore, error)
	// FoldLatest locks the project's consolidated row (creating a zeroed
	// one on first fold), loads the latest rubric evaluation, hands both
	// to apply and saves the mutated row. Returns gorm.ErrRecordNotFound
	// when the project has no rubric evaluations at all; any error from
	// apply rolls the transaction back untouched.
	FoldLatest(ctx context.Context, projectID uint, apply func(cs *model.ConsolidatedScore, latest *model.RubricEvaluation) error) (*model.ConsolidatedScore, error)
}

type consolidatedRepo struct{ db *gorm.DB }

func NewConsolidatedRepo(db *gorm.DB) ConsolidatedRepo {
	return &consolidatedRepo{db: db}
}

func (r *consolidatedRepo) GetByProject(ctx context.Context, projectID uint) (*model.ConsolidatedScore, error) {
	var cs model.ConsolidatedScore
	if err := r.db.WithContext(ctx).Where("project_id = ?", projectID).First(&cs).Error; err != nil {
		return nil, err
	}
	return &cs, nil
}

func (r *consolidatedRepo) FoldLatest(ctx context.Context, projectID uint, apply func(cs *model.ConsolidatedScore, latest *model.RubricEvaluation) error) (*model.ConsolidatedScore, error) {
	var out *model.ConsolidatedScore
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var latest model.RubricEvaluation
		err := tx.
			Where("project_id = ?", projectID).
			Order("submitted_at DESC, id DESC").
			First(&latest).Error
		if err != nil {
			return err
		}

		var cs model.ConsolidatedScore
		err = tx.
			Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("project_id = ?", projectID).
			First(&cs).Error
		switch {
		case err == gorm.ErrRecordNotFound:
			cs = model.ConsolidatedScore{ProjectID: projectID}
		case err != nil:
			return err
		}

		if err := apply(&cs, &latest); err != nil {
			return err
		}
		if err := tx.Save(&cs).Error; err != nil {
			return err
		}
		out = &cs
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}
