package repo

import (
	"context"

	"github.com/DarshanR43/satchi/internal/modules/model"
	"gorm.io/gorm"
)

type ProjectRepo interface {
	// CreateWithMembers persists the project and its team-member rows in
	// one transaction; nothing survives a partial failure.
	CreateWithMembers(ctx context.Context, p *model.Project, members []model.TeamMember) error
	GetByID(ctx context.Context, id uint) (*model.Project, error)
	ListBySubSubEvent(ctx context.Context, subSubEventID uint) ([]model.Project, error)
	// ListCodesByPrefix returns every assigned project code starting with
	// prefix, for sequence-number derivation.
	ListCodesByPrefix(ctx context.Context, prefix string) ([]string, error)
	// EmailRegistered reports whether the email is already attached to any
	// project, as captain or team member.
	EmailRegistered(ctx context.Context, email string) (bool, error)
}

type projectRepo struct{ db *gorm.DB }

func NewProjectRepo(db *gorm.DB) ProjectRepo {
	return &projectRepo{db: db}
}

func (r *projectRepo) CreateWithMembers(ctx context.Context, p *model.Project, members []model.TeamMember) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(p).Error; err != nil {
			return err
		}
		for i := range members {
			members[i].ProjectID = p.ID
		}
		if len(members) > 0 {
			if err := tx.Create(&members).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *projectRepo) GetByID(ctx context.Context, id uint) (*model.Project, error) {
	var p model.Project
	if err := r.db.WithContext(ctx).First(&p, id).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *projectRepo) ListBySubSubEvent(ctx context.Context, subSubEventID uint) ([]model.Project, error) {
	var items []model.Project
	err := r.db.WithContext(ctx).
		Where("sub_sub_event_id = ?", subSubEventID).
		Order("submitted_at").
		Find(&items).Error
	return items, err
}

func (r *projectRepo) ListCodesByPrefix(ctx context.Context, prefix string) ([]string, error) {
	var codes []string
	err := r.db.WithContext(ctx).
		Model(&model.Project{}).
		Where("project_code LIKE ?", prefix+"%").
		Pluck("project_code", &codes).Error
	return codes, err
}

func (r *projectRepo) EmailRegistered(ctx context.Context, email string) (bool, error) {
	var n int64
	if err := r.db.WithContext(ctx).
		Model(&model.TeamMember{}).
		Where("email = ?", email).
		Count(&n).Error; err != nil {
		return false, err
	}
	if n > 0 {
		return true, nil
	}
	if err := r.db.WithContext(ctx).
		Model(&model.Project{}).
		Where("captain_email = ?", email).
		Count(&n).Error; err != nil {
		return false, err
	}
	return n > 0, nil
}
