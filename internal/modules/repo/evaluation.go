package repo

import (
	"context"

	"github.com/DarshanR43/satchi/internal/modules/model"
	"gorm.io/gorm"
)

type EvaluationRepo interface {
	// GetByProjectAndEvent loads the evaluation with its marks in judge
	// name order.
	GetByProjectAndEvent(ctx context.Context, projectID, subSubEventID uint) (*model.Evaluation, error)
	// ReplaceMarks upserts the evaluation row for (eval.ProjectID,
	// eval.SubSubEventID), drops every existing mark and inserts the given
	// set, all in one transaction. eval carries the derived fields already
	// computed from marks; on return eval and marks hold their row IDs.
	ReplaceMarks(ctx context.Context, eval *model.Evaluation, marks []model.EvaluationJudgeMark) error
	ListBySubSubEvent(ctx context.Context, subSubEventID uint) ([]model.Evaluation, error)
}

type evaluationRepo struct{ db *gorm.DB }

func NewEvaluationRepo(db *gorm.DB) EvaluationRepo {
	return &evaluationRepo{db: db}
}

func (r *evaluationRepo) GetByProjectAndEvent(ctx context.Context, projectID, subSubEventID uint) (*model.Evaluation, error) {
	var e model.Evaluation
	err := r.db.WithContext(ctx).
		Preload("JudgeMarks", func(db *gorm.DB) *gorm.DB {
			return db.Order("judge_name")
		}).
		Where("project_id = ? AND sub_sub_event_id = ?", projectID, subSubEventID).
		First(&e).Error
	if err != nil {
		return nil, err
	}
	return &e, nil
}

func (r *evaluationRepo) ReplaceMarks(ctx context.Context, eval *model.Evaluation, marks []model.EvaluationJudgeMark) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var existing model.Evaluation
		err := tx.
			Where("project_id = ? AND sub_sub_event_id = ?", eval.ProjectID, eval.SubSubEventID).
			First(&existing).Error
		switch {
		case err == gorm.ErrRecordNotFound:
			if err := tx.Create(eval).Error; err != nil {
				return err
			}
		case err != nil:
			return err
		default:
			eval.ID = existing.ID
			eval.SubmittedAt = existing.SubmittedAt
			err := tx.Model(&model.Evaluation{ID: existing.ID}).
				Select("is_disqualified", "remarks", "judge_count", "total", "final_score").
				Updates(map[string]interface{}{
					"is_disqualified": eval.IsDisqualified,
					"remarks":         eval.Remarks,
					"judge_count":     eval.JudgeCount,
					"total":           eval.Total,
					"final_score":     eval.FinalScore,
				}).Error
			if err != nil {
				return err
			}
		}

		if err := tx.
			Where("evaluation_id = ?", eval.ID).
			Delete(&model.EvaluationJudgeMark{}).Error; err != nil {
			return err
		}
		for i := range marks {
			marks[i].EvaluationID = eval.ID
		}
		if len(marks) > 0 {
			if err := tx.Create(&marks).Error; err != nil {
				return err
			}
		}
		eval.JudgeMarks = marks
		return nil
	})
}

func (r *evaluationRepo) ListBySubSubEvent(ctx context.Context, subSubEventID uint) ([]model.Evaluation, error) {
	var items []model.Evaluation
	err := r.db.WithContext(ctx).
		Preload("Project").
		Where("sub_sub_event_id = ?", subSubEventID).
		Order("id").
		Find(&items).Error
	return items, err
}
