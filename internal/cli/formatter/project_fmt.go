package formatter

import (
	"fmt"
	"strings"

	"github.com/zakarianasim073/construction-project-monitoring/internal/domain"
	"github.com/zakarianasim073/construction-project-monitoring/internal/metrics"
)

// FormatProjectList renders the project picker table.
func FormatProjectList(projects []*domain.Project) string {
	headers := []string{"ID", "NAME", "STATUS", "VALUE", "PROGRESS", "END"}
	rows := make([][]string, 0, len(projects))

	for _, p := range projects {
		rows = append(rows, []string{
			p.DisplayID(),
			Bold(p.Name),
			StatusPill(p.Status),
			Money(p.ContractValue),
			RenderProgress(float64(metrics.ProgressPercent(p))/100, 12),
			Date(p.EndDate),
		})
	}

	return RenderBox("Projects", RenderTable(headers, rows))
}

// FormatDashboard renders the project overview card: headline metrics, the
// overview bars, and the liability split.
func FormatDashboard(p *domain.Project) string {
	var b strings.Builder

	b.WriteString(Bold(p.Name) + "\n")
	b.WriteString(StatusPill(p.Status) + "  " + Dim(Date(p.StartDate)+" → "+Date(p.EndDate)) + "\n\n")

	summary := metrics.Summarize(p)
	b.WriteString(fmt.Sprintf("%s  %s\n", Dim("CONTRACT VALUE "), Money(p.ContractValue)))
	b.WriteString(fmt.Sprintf("%s  %s\n", Dim("PROGRESS       "), RenderProgress(float64(metrics.ProgressPercent(p))/100, 24)))
	b.WriteString(fmt.Sprintf("%s  %s\n", Dim("NET POSITION   "), SignedMoney(summary.NetPosition)))
	b.WriteString(fmt.Sprintf("%s  %s\n\n", Dim("OPERATING P/L  "), SignedMoney(metrics.OperationalProfit(p))))

	b.WriteString(renderOverviewBars(p))

	totals := metrics.LiabilityTotals(p)
	if len(totals) > 0 {
		b.WriteString("\n")
		for _, kind := range []domain.LiabilityKind{domain.LiabilityRetention, domain.LiabilityPendingPO, domain.LiabilityUnbilledWork} {
			amount, ok := totals[kind]
			if !ok {
				continue
			}
			b.WriteString(fmt.Sprintf("%s  %s\n", LiabilityBadge(kind), Money(amount)))
		}
	}

	return RenderBox("Project Overview", b.String())
}

// renderOverviewBars scales the four headline amounts against the largest.
func renderOverviewBars(p *domain.Project) string {
	rows := metrics.OverviewSeries(p)

	var max float64
	for _, r := range rows {
		if r.Amount > max {
			max = r.Amount
		}
	}

	var b strings.Builder
	for _, r := range rows {
		frac := 0.0
		if max > 0 {
			frac = r.Amount / max
		}
		width := int(frac * 28)
		bar := StyleBlue.Render(strings.Repeat("▇", width))
		b.WriteString(fmt.Sprintf("%-12s %s %s\n", r.Label, bar, Dim(Money(r.Amount))))
	}
	return b.String()
}
