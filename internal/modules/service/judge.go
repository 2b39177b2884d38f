package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/DarshanR43/satchi/internal/modules/model"
	"github.com/DarshanR43/satchi/internal/modules/repo"
	"github.com/DarshanR43/satchi/internal/pkg/apperr"
)

type LinkJudgesInput struct {
	SubSubEventID uint
	Names         []string
	// Replace unlinks judges not present in Names; default keeps them.
	Replace bool
}

type JudgeService interface {
	Link(ctx context.Context, in LinkJudgesInput) ([]model.SubSubEventJudge, error)
	List(ctx context.Context, subSubEventID uint) ([]model.SubSubEventJudge, error)
}

type judgeService struct {
	judges repo.JudgeRepo
	events repo.EventRepo
}

func NewJudgeService(judges repo.JudgeRepo, events repo.EventRepo) JudgeService {
	return &judgeService{judges: judges, events: events}
}

func (s *judgeService) Link(ctx context.Context, in LinkJudgesInput) ([]model.SubSubEventJudge, error) {
	if _, err := s.events.GetSubSub(ctx, in.SubSubEventID); err != nil {
		return nil, notFoundOr(err, "competition not found")
	}
	if len(in.Names) == 0 {
		return nil, apperr.Validation("names", "at least one judge name is required")
	}

	seen := make(map[string]struct{}, len(in.Names))
	names := make([]string, 0, len(in.Names))
	for i, raw := range in.Names {
		name := strings.TrimSpace(raw)
		if name == "" {
			return nil, apperr.Validation(fmt.Sprintf("names[%d]", i), "judge name must not be blank")
		}
		if _, dup := seen[name]; dup {
			return nil, apperr.Validation(fmt.Sprintf("names[%d]", i), "duplicate judge name")
		}
		seen[name] = struct{}{}
		names = append(names, name)
	}

	return s.judges.SyncForEvent(ctx, in.SubSubEventID, names, in.Replace)
}

func (s *judgeService) List(ctx context.Context, subSubEventID uint) ([]model.SubSubEventJudge, error) {
	if _, err := s.events.GetSubSub(ctx, subSubEventID); err != nil {
		return nil, notFoundOr(err, "competition not found")
	}
	return s.judges.ListForEvent(ctx, subSubEventID)
}
