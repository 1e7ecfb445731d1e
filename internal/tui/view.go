package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/zakarianasim073/construction-project-monitoring/internal/cli/formatter"
	"github.com/zakarianasim073/construction-project-monitoring/internal/metrics"
)

func (m Model) View() string {
	var b strings.Builder

	b.WriteString(styleTitle.Render(fmt.Sprintf("%s  %s", m.project.DisplayID(), m.project.Name)))
	b.WriteString("  ")
	b.WriteString(formatter.StatusPill(m.project.Status))
	b.WriteString("\n")
	b.WriteString(m.renderTabs())
	b.WriteString("\n")
	b.WriteString(styleBody.Render(m.renderBody()))
	b.WriteString("\n")
	b.WriteString(styleHelp.Render("tab/←→ switch · q quit"))
	return b.String()
}

func (m Model) renderTabs() string {
	rendered := make([]string, len(tabTitles))
	for i, title := range tabTitles {
		if Tab(i) == m.tab {
			rendered[i] = styleTabActive.Render(title)
		} else {
			rendered[i] = styleTabInactive.Render(title)
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, rendered...)
}

func (m Model) renderBody() string {
	switch m.tab {
	case TabBOQ:
		return formatter.FormatBOQList(m.project)
	case TabSite:
		return formatter.FormatReportList(m.project)
	case TabFinance:
		return formatter.FormatFinance(m.project)
	case TabLiability:
		return formatter.FormatLiabilities(m.project)
	case TabDocuments:
		return formatter.FormatDocumentList(m.project.Documents)
	default:
		return m.renderOverview()
	}
}

// renderOverview is the only tab not shared with the plain CLI output: it
// uses an animated-capable progress bar instead of the block-glyph bar.
func (m Model) renderOverview() string {
	pct := metrics.ProgressPercent(m.project)

	var b strings.Builder
	b.WriteString(formatter.Bold("Overall progress"))
	b.WriteString("\n")
	b.WriteString(m.progress.ViewAs(float64(pct) / 100))
	b.WriteString(fmt.Sprintf("  %d%%\n\n", pct))
	b.WriteString(formatter.FormatDashboard(m.project))
	return b.String()
}
