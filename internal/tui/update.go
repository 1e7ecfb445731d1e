package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, keys.NextTab):
			m.tab = (m.tab + 1) % Tab(len(tabTitles))
		case key.Matches(msg, keys.PrevTab):
			m.tab = (m.tab - 1 + Tab(len(tabTitles))) % Tab(len(tabTitles))
		}
	}
	return m, nil
}
