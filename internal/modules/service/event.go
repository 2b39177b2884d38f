package service

import (
	"context"
	"strings"

	"github.com/DarshanR43/satchi/internal/modules/model"
	"github.com/DarshanR43/satchi/internal/modules/repo"
	"github.com/DarshanR43/satchi/internal/pkg/apperr"
)

type CreateMainEventInput struct {
	Name        string
	Description string
}

type CreateSubEventInput struct {
	MainEventID uint
	Name        string
	Description string
}

type CreateSubSubEventInput struct {
	SubEventID  uint
	Name        string
	Description string
	Rules       string

	MinTeamSize             int
	MaxTeamSize             int
	MinFemaleParticipants   int
	IsFacultyMentorRequired bool
}

type EventService interface {
	CreateMain(ctx context.Context, in CreateMainEventInput) (*model.MainEvent, error)
	CreateSub(ctx context.Context, in CreateSubEventInput) (*model.SubEvent, error)
	CreateSubSub(ctx context.Context, in CreateSubSubEventInput) (*model.SubSubEvent, error)

	ListMains(ctx context.Context) ([]model.MainEvent, error)
	ListSubs(ctx context.Context, mainID uint) ([]model.SubEvent, error)
	ListSubSubs(ctx context.Context, subID uint) ([]model.SubSubEvent, error)
	GetSubSub(ctx context.Context, id uint) (*model.SubSubEvent, error)

	DeleteMain(ctx context.Context, id uint) error
	DeleteSub(ctx context.Context, id uint) error
	DeleteSubSub(ctx context.Context, id uint) error
}

type eventService struct {
	events repo.EventRepo
}

func NewEventService(events repo.EventRepo) EventService {
	return &eventService{events: events}
}

func (s *eventService) CreateMain(ctx context.Context, in CreateMainEventInput) (*model.MainEvent, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, apperr.Validation("name", "event name is required")
	}
	e := &model.MainEvent{
		Name:        name,
		Description: in.Description,
		IsOpen:      true,
	}
	if err := s.events.CreateMain(ctx, e); err != nil {
		return nil, err
	}
	return e, nil
}

func (s *eventService) CreateSub(ctx context.Context, in CreateSubEventInput) (*model.SubEvent, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, apperr.Validation("name", "event name is required")
	}
	if _, err := s.events.GetMain(ctx, in.MainEventID); err != nil {
		return nil, notFoundOr(err, "main event not found")
	}
	e := &model.SubEvent{
		MainEventID: in.MainEventID,
		Name:        name,
		Description: in.Description,
		IsOpen:      true,
	}
	if err := s.events.CreateSub(ctx, e); err != nil {
		return nil, err
	}
	return e, nil
}

func (s *eventService) CreateSubSub(ctx context.Context, in CreateSubSubEventInput) (*model.SubSubEvent, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, apperr.Validation("name", "event name is required")
	}
	parent, err := s.events.GetSub(ctx, in.SubEventID)
	if err != nil {
		return nil, notFoundOr(err, "sub event not found")
	}
	if in.MinTeamSize < 1 {
		in.MinTeamSize = 1
	}
	if in.MaxTeamSize > 0 && in.MaxTeamSize < in.MinTeamSize {
		return nil, apperr.Validation("max_team_size", "must not be below min_team_size")
	}
	e := &model.SubSubEvent{
		MainEventID:             parent.MainEventID,
		SubEventID:              parent.ID,
		Name:                    name,
		Description:             in.Description,
		Rules:                   in.Rules,
		MinTeamSize:             in.MinTeamSize,
		MaxTeamSize:             in.MaxTeamSize,
		MinFemaleParticipants:   in.MinFemaleParticipants,
		IsFacultyMentorRequired: in.IsFacultyMentorRequired,
		IsOpen:                  true,
	}
	if err := s.events.CreateSubSub(ctx, e); err != nil {
		return nil, err
	}
	return e, nil
}

func (s *eventService) ListMains(ctx context.Context) ([]model.MainEvent, error) {
	return s.events.ListMains(ctx)
}

func (s *eventService) ListSubs(ctx context.Context, mainID uint) ([]model.SubEvent, error) {
	if _, err := s.events.GetMain(ctx, mainID); err != nil {
		return nil, notFoundOr(err, "main event not found")
	}
	return s.events.ListSubs(ctx, mainID)
}

func (s *eventService) ListSubSubs(ctx context.Context, subID uint) ([]model.SubSubEvent, error) {
	if _, err := s.events.GetSub(ctx, subID); err != nil {
		return nil, notFoundOr(err, "sub event not found")
	}
	return s.events.ListSubSubs(ctx, subID)
}

func (s *eventService) GetSubSub(ctx context.Context, id uint) (*model.SubSubEvent, error) {
	e, err := s.events.GetSubSub(ctx, id)
	if err != nil {
		return nil, notFoundOr(err, "competition not found")
	}
	return e, nil
}

func (s *eventService) DeleteMain(ctx context.Context, id uint) error {
	return notFoundOrNil(s.events.DeleteMain(ctx, id), "main event not found")
}

func (s *eventService) DeleteSub(ctx context.Context, id uint) error {
	return notFoundOrNil(s.events.DeleteSub(ctx, id), "sub event not found")
}

func (s *eventService) DeleteSubSub(ctx context.Context, id uint) error {
	return notFoundOrNil(s.events.DeleteSubSub(ctx, id), "competition not found")
}

func notFoundOrNil(err error, msg string) error {
	if err == nil {
		return nil
	}
	return notFoundOr(err, msg)
}
