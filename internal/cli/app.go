package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/zakarianasim073/construction-project-monitoring/internal/domain"
	"github.com/zakarianasim073/construction-project-monitoring/internal/insight"
	"github.com/zakarianasim073/construction-project-monitoring/internal/ledger"
	"github.com/zakarianasim073/construction-project-monitoring/internal/policy"
	"github.com/zakarianasim073/construction-project-monitoring/internal/store"
)

// App holds everything CLI commands need: the store for reads, the ledger
// for writes, the insight service, and session context (role, active
// project, TTY detection).
type App struct {
	Projects store.ProjectStore
	Ledger   ledger.Ledger
	Insight  insight.Service

	// Role is the session's client-side label. It gates which commands run,
	// but the ledger itself knows nothing about it.
	Role domain.Role

	// ProjectFlag is the --project selector; empty means the first listed project.
	ProjectFlag string

	// IsInteractive reports whether stdin is a terminal. Interactive adds
	// fall back to flags when it returns false.
	IsInteractive func() bool
}

func (a *App) interactive() bool {
	return a.IsInteractive != nil && a.IsInteractive()
}

// requireCapability rejects the command when the session role lacks the action.
func (a *App) requireCapability(action policy.Action) error {
	if !policy.CanPerform(a.Role, action) {
		return fmt.Errorf("role %s cannot perform this action (read only)", a.Role)
	}
	return nil
}

// resolveProject picks the working project: the --project selector matched
// against ID, ID prefix, or name substring; otherwise the first project.
func (a *App) resolveProject(ctx context.Context) (*domain.Project, error) {
	projects, err := a.Projects.List(ctx)
	if err != nil {
		return nil, err
	}
	if len(projects) == 0 {
		return nil, fmt.Errorf("no projects exist yet (use 'project create')")
	}

	sel := a.ProjectFlag
	if sel == "" {
		return projects[0], nil
	}

	for _, p := range projects {
		if p.ID == sel {
			return p, nil
		}
	}
	var matches []*domain.Project
	for _, p := range projects {
		if strings.HasPrefix(p.ID, sel) || strings.Contains(strings.ToLower(p.Name), strings.ToLower(sel)) {
			matches = append(matches, p)
		}
	}
	switch len(matches) {
	case 0:
		return nil, fmt.Errorf("project not found: %q", sel)
	case 1:
		return matches[0], nil
	default:
		return nil, fmt.Errorf("project selector %q is ambiguous (%d matches)", sel, len(matches))
	}
}
