package repo

import (
	"context"

	"github.com/DarshanR43/satchi/internal/modules/model"
	"gorm.io/gorm"
)

type EventRepo interface {
	CreateMain(ctx context.Context, e *model.MainEvent) error
	CreateSub(ctx context.Context, e *model.SubEvent) error
	CreateSubSub(ctx context.Context, e *model.SubSubEvent) error

	GetMain(ctx context.Context, id uint) (*model.MainEvent, error)
	GetSub(ctx context.Context, id uint) (*model.SubEvent, error)
	GetSubSub(ctx context.Context, id uint) (*model.SubSubEvent, error)
	// GetSubSubByEventID resolves a competition by its public event code,
	// e.g. "EVT_SS20260131093000123456".
	GetSubSubByEventID(ctx context.Context, eventID string) (*model.SubSubEvent, error)
	// GetSubSubWithParents preloads the main and sub event rows, needed
	// for project-code generation.
	GetSubSubWithParents(ctx context.Context, id uint) (*model.SubSubEvent, error)

	ListMains(ctx context.Context) ([]model.MainEvent, error)
	ListSubs(ctx context.Context, mainID uint) ([]model.SubEvent, error)
	ListSubSubs(ctx context.Context, subID uint) ([]model.SubSubEvent, error)

	DeleteMain(ctx context.Context, id uint) error
	DeleteSub(ctx context.Context, id uint) error
	DeleteSubSub(ctx context.Context, id uint) error
}

type eventRepo struct{ db *gorm.DB }

func NewEventRepo(db *gorm.DB) EventRepo {
	return &eventRepo{db: db}
}

func (r *eventRepo) CreateMain(ctx context.Context, e *model.MainEvent) error {
	return r.db.WithContext(ctx).Create(e).Error
}

func (r *eventRepo) CreateSub(ctx context.Context, e *model.SubEvent) error {
	return r.db.WithContext(ctx).Create(e).Error
}

func (r *eventRepo) CreateSubSub(ctx context.Context, e *model.SubSubEvent) error {
	return r.db.WithContext(ctx).Create(e).Error
}

func (r *eventRepo) GetMain(ctx context.Context, id uint) (*model.MainEvent, error) {
	var e model.MainEvent
	if err := r.db.WithContext(ctx).First(&e, id).Error; err != nil {
		return nil, err
	}
	return &e, nil
}

func (r *eventRepo) GetSub(ctx context.Context, id uint) (*model.SubEvent, error) {
	var e model.SubEvent
	if err := r.db.WithContext(ctx).First(&e, id).Error; err != nil {
		return nil, err
	}
	return &e, nil
}

func (r *eventRepo) GetSubSub(ctx context.Context, id uint) (*model.SubSubEvent, error) {
	var e model.SubSubEvent
	if err := r.db.WithContext(ctx).First(&e, id).Error; err != nil {
		return nil, err
	}
	return &e, nil
}

func (r *eventRepo) GetSubSubByEventID(ctx context.Context, eventID string) (*model.SubSubEvent, error) {
	var e model.SubSubEvent
	if err := r.db.WithContext(ctx).Where(&model.SubSubEvent{EventID: eventID}).First(&e).Error; err != nil {
		return nil, err
	}
	return &e, nil
}

func (r *eventRepo) GetSubSubWithParents(ctx context.Context, id uint) (*model.SubSubEvent, error) {
	var e model.SubSubEvent
	err := r.db.WithContext(ctx).
		Preload("MainEvent").
		Preload("SubEvent").
		First(&e, id).Error
	if err != nil {
		return nil, err
	}
	return &e, nil
}

func (r *eventRepo) ListMains(ctx context.Context) ([]model.MainEvent, error) {
	var items []model.MainEvent
	return items, r.db.WithContext(ctx).Order("id").Find(&items).Error
}

func (r *eventRepo) ListSubs(ctx context.Context, mainID uint) ([]model.SubEvent, error) {
	var items []model.SubEvent
	return items, r.db.WithContext(ctx).Where("main_event_id = ?", mainID).Order("id").Find(&items).Error
}

func (r *eventRepo) ListSubSubs(ctx context.Context, subID uint) ([]model.SubSubEvent, error) {
	var items []model.SubSubEvent
	return items, r.db.WithContext(ctx).Where("sub_event_id = ?", subID).Order("id").Find(&items).Error
}

func (r *eventRepo) DeleteMain(ctx context.Context, id uint) error {
	return r.deleteByID(ctx, &model.MainEvent{}, id)
}

func (r *eventRepo) DeleteSub(ctx context.Context, id uint) error {
	return r.deleteByID(ctx, &model.SubEvent{}, id)
}

func (r *eventRepo) DeleteSubSub(ctx context.Context, id uint) error {
	return r.deleteByID(ctx, &model.SubSubEvent{}, id)
}

func (r *eventRepo) deleteByID(ctx context.Context, m interface{}, id uint) error {
	res := r.db.WithContext(ctx).Delete(m, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
