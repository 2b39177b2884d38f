package service

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"sync"

	"github.com/DarshanR43/satchi/internal/modules/repo"
	"github.com/DarshanR43/satchi/internal/pkg/slug"
)

// CodeGenerator derives the next project code for an event hierarchy.
// Codes have the shape MAIN_SUB_COMP_NNN where each segment is a
// normalized event name and NNN is a zero-padded per-prefix sequence.
type CodeGenerator interface {
	NextCode(ctx context.Context, mainName, subName, competitionName string) (string, error)
}

type codeGenerator struct {
	projects repo.ProjectRepo

	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

func NewCodeGenerator(projects repo.ProjectRepo) CodeGenerator {
	return &codeGenerator{
		projects: projects,
		locks:    make(map[string]*sync.Mutex),
	}
}

// NextCode serializes generation per prefix so two concurrent
// submissions to the same competition cannot observe the same maximum
// suffix. Cross-process races are still possible and are caught by the
// unique index on project_code; callers retry on gorm.ErrDuplicatedKey.
func (g *codeGenerator) NextCode(ctx context.Context, mainName, subName, competitionName string) (string, error) {
	prefix := slug.Prefix(mainName, subName, competitionName)

	l := g.prefixLock(prefix)
	l.Lock()
	defer l.Unlock()

	codes, err := g.projects.ListCodesByPrefix(ctx, prefix)
	if err != nil {
		return "", err
	}

	max := 0
	for _, code := range codes {
		if n, ok := suffixOf(code, prefix); ok && n > max {
			max = n
		}
	}
	return fmt.Sprintf("%s_%03d", prefix, max+1), nil
}

func (g *codeGenerator) prefixLock(prefix string) *sync.Mutex {
	g.mu.Lock()
	defer g.mu.Unlock()
	l, ok := g.locks[prefix]
	if !ok {
		l = &sync.Mutex{}
		g.locks[prefix] = l
	}
	return l
}

// suffixOf extracts the numeric sequence from a code that belongs to
// prefix exactly; codes of other prefixes that merely share a LIKE
// match are rejected here.
func suffixOf(code, prefix string) (int, bool) {
	rest, ok := strings.CutPrefix(code, prefix+"_")
	if !ok {
		return 0, false
	}
	n, err := strconv.Atoi(rest)
	if err != nil || n < 0 {
		return 0, false
	}
	return n, true
}
