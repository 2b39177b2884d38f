package repo

import (
	"context"

	"github.com/DarshanR43/satchi/internal/modules/model"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type JudgeRepo interface {
	// SyncForEvent links the named judges to one competition. With replace
	// set, judges absent from names are unlinked first; existing rows keep
	// their identity and only get their sort order refreshed.
	SyncForEvent(ctx context.Context, subSubEventID uint, names []string, replace bool) ([]model.SubSubEventJudge, error)
	ListForEvent(ctx context.Context, subSubEventID uint) ([]model.SubSubEventJudge, error)
	// FindByName returns nil without error when no registry row matches;
	// marks carry the judge name themselves and survive a missing link.
	FindByName(ctx context.Context, subSubEventID uint, name string) (*model.SubSubEventJudge, error)
}

type judgeRepo struct{ db *gorm.DB }

func NewJudgeRepo(db *gorm.DB) JudgeRepo {
	return &judgeRepo{db: db}
}

func (r *judgeRepo) SyncForEvent(ctx context.Context, subSubEventID uint, names []string, replace bool) ([]model.SubSubEventJudge, error) {
	var out []model.SubSubEventJudge
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if replace {
			if err := tx.
				Where("sub_sub_event_id = ? AND name NOT IN ?", subSubEventID, names).
				Delete(&model.SubSubEventJudge{}).Error; err != nil {
				return err
			}
		}
		for i, name := range names {
			j := model.SubSubEventJudge{
				SubSubEventID: subSubEventID,
				Name:          name,
				Order:         i,
			}
			err := tx.Clauses(clause.OnConflict{
				Columns:   []clause.Column{{Name: "sub_sub_event_id"}, {Name: "name"}},
				DoUpdates: clause.AssignmentColumns([]string{"sort_order"}),
			}).Create(&j).Error
			if err != nil {
				return err
			}
		}
		return tx.
			Where("sub_sub_event_id = ?", subSubEventID).
			Order("sort_order, id").
			Find(&out).Error
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (r *judgeRepo) ListForEvent(ctx context.Context, subSubEventID uint) ([]model.SubSubEventJudge, error) {
	var items []model.SubSubEventJudge
	err := r.db.WithContext(ctx).
		Where("sub_sub_event_id = ?", subSubEventID).
		Order("sort_order, id").
		Find(&items).Error
	return items, err
}

func (r *judgeRepo) FindByName(ctx context.Context, subSubEventID uint, name string) (*model.SubSubEventJudge, error) {
	var j model.SubSubEventJudge
	err := r.db.WithContext(ctx).
		Where("sub_sub_event_id = ? AND name = ?", subSubEventID, name).
		First(&j).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &j, nil
}
