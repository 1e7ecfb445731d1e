// Package tui is the interactive dashboard: one tab per module of the
// project, read-only, navigated with the keyboard.
package tui

import (
	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/zakarianasim073/construction-project-monitoring/internal/domain"
)

// Tab identifies one dashboard screen.
type Tab int

const (
	TabOverview Tab = iota
	TabBOQ
	TabSite
	TabFinance
	TabLiability
	TabDocuments
)

var tabTitles = []string{"Overview", "BOQ", "Site", "Finance", "Liability", "Documents"}

// Model is the dashboard TUI model. It renders a snapshot of one project;
// recording new entries happens through the CLI commands, not here.
type Model struct {
	project  *domain.Project
	tab      Tab
	progress progress.Model
	width    int
	height   int
}

// NewModel creates a dashboard model for the given project snapshot.
func NewModel(p *domain.Project) Model {
	bar := progress.New(progress.WithDefaultGradient(), progress.WithWidth(40))
	return Model{project: p, tab: TabOverview, progress: bar}
}

func (m Model) Init() tea.Cmd {
	return nil
}
