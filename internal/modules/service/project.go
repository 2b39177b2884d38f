package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/DarshanR43/satchi/internal/modules/model"
	"github.com/DarshanR43/satchi/internal/modules/repo"
	"github.com/DarshanR43/satchi/internal/pkg/apperr"
	"github.com/bytedance/sonic"
	"gorm.io/gorm"
)

// codeRetries bounds regeneration attempts when a cross-process race
// trips the unique index on project_code.
const codeRetries = 3

type MemberInput struct {
	Name  string
	Email string
	Phone string
}

type SubmitProjectInput struct {
	// EventID is the competition's public code (EVT_SS...). Empty means
	// the project is registered without an event association and gets no
	// project code.
	EventID string

	TeamName     string
	ProjectTopic string

	CaptainName  string
	CaptainEmail string
	CaptainPhone string

	FacultyMentorName string

	Members []MemberInput
}

type ProjectService interface {
	Submit(ctx context.Context, in SubmitProjectInput) (*model.Project, error)
	Get(ctx context.Context, id uint) (*model.Project, error)
	ListByEvent(ctx context.Context, subSubEventID uint) ([]model.Project, error)
	// GenerateCode exposes the code derivation on its own, without
	// reserving the returned sequence number.
	GenerateCode(ctx context.Context, mainName, subName, competitionName string) (string, error)
}

type projectService struct {
	projects repo.ProjectRepo
	events   repo.EventRepo
	codes    CodeGenerator
}

func NewProjectService(projects repo.ProjectRepo, events repo.EventRepo, codes CodeGenerator) ProjectService {
	return &projectService{projects: projects, events: events, codes: codes}
}

func (s *projectService) Submit(ctx context.Context, in SubmitProjectInput) (*model.Project, error) {
	var event *model.SubSubEvent
	if in.EventID != "" {
		e, err := s.events.GetSubSubByEventID(ctx, in.EventID)
		if err != nil {
			return nil, notFoundOr(err, "competition not found")
		}
		if !e.IsOpen {
			return nil, apperr.Conflict("competition is closed for registration")
		}
		event = e
	}

	captainEmail, allEmails, err := s.validateTeam(ctx, in, event)
	if err != nil {
		return nil, err
	}

	emails := make([]string, 0, len(in.Members))
	for _, m := range in.Members {
		emails = append(emails, normalizeEmail(m.Email))
	}
	emailsJSON, err := sonic.Marshal(emails)
	if err != nil {
		return nil, apperr.Internal("encode team members", err)
	}

	p := &model.Project{
		TeamName:     strings.TrimSpace(in.TeamName),
		ProjectTopic: strings.TrimSpace(in.ProjectTopic),
		CaptainName:  strings.TrimSpace(in.CaptainName),
		CaptainEmail: captainEmail,
		CaptainPhone: strings.TrimSpace(in.CaptainPhone),
		TeamMembers:  emailsJSON,
	}
	if mentor := strings.TrimSpace(in.FacultyMentorName); mentor != "" {
		p.FacultyMentorName = &mentor
	}
	if event != nil {
		id := event.ID
		p.SubSubEventID = &id
	}

	members := make([]model.TeamMember, 0, len(in.Members))
	for _, m := range in.Members {
		members = append(members, model.TeamMember{
			Name:  strings.TrimSpace(m.Name),
			Email: normalizeEmail(m.Email),
			Phone: strings.TrimSpace(m.Phone),
		})
	}

	if event == nil {
		if err := s.projects.CreateWithMembers(ctx, p, members); err != nil {
			return nil, mapMemberConflict(err)
		}
		return p, nil
	}

	// The code is assigned exactly once, synchronously with the insert.
	// Another process may win the same sequence number between generation
	// and commit; regenerate and retry on the unique violation.
	full, err := s.events.GetSubSubWithParents(ctx, event.ID)
	if err != nil {
		return nil, err
	}
	mainName, subName := "", ""
	if full.MainEvent != nil {
		mainName = full.MainEvent.Name
	}
	if full.SubEvent != nil {
		subName = full.SubEvent.Name
	}

	for attempt := 0; attempt < codeRetries; attempt++ {
		code, err := s.codes.NextCode(ctx, mainName, subName, full.Name)
		if err != nil {
			return nil, err
		}
		p.ID = 0
		p.ProjectCode = &code
		err = s.projects.CreateWithMembers(ctx, p, cloneMembers(members))
		if err == nil {
			return p, nil
		}
		if !errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, err
		}
		// The violated index may be team_members.email rather than the
		// project code: a concurrent registration can win an email
		// between the pre-check and the insert. Regenerating codes will
		// never fix that, so tell it apart before retrying.
		taken, cerr := s.firstRegisteredEmail(ctx, allEmails)
		if cerr != nil {
			return nil, cerr
		}
		if taken != "" {
			return nil, apperr.Conflict(fmt.Sprintf("email %s is already registered to a project", taken))
		}
	}
	return nil, apperr.Internal("could not assign a unique project code", gorm.ErrDuplicatedKey)
}

func (s *projectService) validateTeam(ctx context.Context, in SubmitProjectInput, event *model.SubSubEvent) (string, []string, error) {
	captainEmail := normalizeEmail(in.CaptainEmail)
	if captainEmail == "" {
		return "", nil, apperr.Validation("captain_email", "captain email is required")
	}
	if strings.TrimSpace(in.TeamName) == "" {
		return "", nil, apperr.Validation("team_name", "team name is required")
	}

	teamSize := 1 + len(in.Members)
	if event != nil {
		if teamSize < event.MinTeamSize {
			return "", nil, apperr.Validation("members", fmt.Sprintf("team must have at least %d members", event.MinTeamSize))
		}
		if event.MaxTeamSize > 0 && teamSize > event.MaxTeamSize {
			return "", nil, apperr.Validation("members", fmt.Sprintf("team must have at most %d members", event.MaxTeamSize))
		}
		if event.IsFacultyMentorRequired && strings.TrimSpace(in.FacultyMentorName) == "" {
			return "", nil, apperr.Validation("faculty_mentor_name", "a faculty mentor is required for this competition")
		}
	}

	emails := []string{captainEmail}
	seen := map[string]struct{}{captainEmail: {}}
	for i, m := range in.Members {
		email := normalizeEmail(m.Email)
		if email == "" {
			return "", nil, apperr.Validation(fmt.Sprintf("members[%d].email", i), "member email is required")
		}
		if _, dup := seen[email]; dup {
			return "", nil, apperr.Validation(fmt.Sprintf("members[%d].email", i), "duplicate email within the team")
		}
		seen[email] = struct{}{}
		emails = append(emails, email)
	}

	taken, err := s.firstRegisteredEmail(ctx, emails)
	if err != nil {
		return "", nil, err
	}
	if taken != "" {
		return "", nil, apperr.Conflict(fmt.Sprintf("email %s is already registered to a project", taken))
	}
	return captainEmail, emails, nil
}

// firstRegisteredEmail returns the first of emails already attached to
// a project, or "" when all are free.
func (s *projectService) firstRegisteredEmail(ctx context.Context, emails []string) (string, error) {
	for _, email := range emails {
		registered, err := s.projects.EmailRegistered(ctx, email)
		if err != nil {
			return "", err
		}
		if registered {
			return email, nil
		}
	}
	return "", nil
}

func (s *projectService) Get(ctx context.Context, id uint) (*model.Project, error) {
	p, err := s.projects.GetByID(ctx, id)
	if err != nil {
		return nil, notFoundOr(err, "project not found")
	}
	return p, nil
}

func (s *projectService) ListByEvent(ctx context.Context, subSubEventID uint) ([]model.Project, error) {
	if _, err := s.events.GetSubSub(ctx, subSubEventID); err != nil {
		return nil, notFoundOr(err, "competition not found")
	}
	return s.projects.ListBySubSubEvent(ctx, subSubEventID)
}

func (s *projectService) GenerateCode(ctx context.Context, mainName, subName, competitionName string) (string, error) {
	return s.codes.NextCode(ctx, mainName, subName, competitionName)
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func cloneMembers(members []model.TeamMember) []model.TeamMember {
	out := make([]model.TeamMember, len(members))
	copy(out, members)
	for i := range out {
		out[i].ID = 0
		out[i].ProjectID = 0
	}
	return out
}

// mapMemberConflict turns the unique-email violation on team_members
// into the conflict the upfront check would have raised; the row check
// and the insert are not atomic with each other.
func mapMemberConflict(err error) error {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return apperr.Conflict("a team member email is already registered to a project")
	}
	return err
}
