package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/zakarianasim073/construction-project-monitoring/internal/cli/formatter"
)

var (
	styleTabActive = lipgloss.NewStyle().
			Foreground(formatter.ColorHeader).
			Bold(true).
			Padding(0, 2).
			Border(lipgloss.RoundedBorder(), true).
			BorderForeground(formatter.ColorHeader)

	styleTabInactive = lipgloss.NewStyle().
				Foreground(formatter.ColorDim).
				Padding(0, 2).
				Border(lipgloss.RoundedBorder(), true).
				BorderForeground(formatter.ColorDim)

	styleTitle = lipgloss.NewStyle().
			Foreground(formatter.ColorFg).
			Bold(true)

	styleHelp = lipgloss.NewStyle().
			Foreground(formatter.ColorDim).
			MarginTop(1)

	styleBody = lipgloss.NewStyle().
			Padding(1, 2)
)
