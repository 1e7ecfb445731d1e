package formatter

import (
	"fmt"
	"strings"

	"github.com/zakarianasim073/construction-project-monitoring/internal/domain"
	"github.com/zakarianasim073/construction-project-monitoring/internal/metrics"
)

// FormatBOQList renders the contract baseline table.
func FormatBOQList(p *domain.Project) string {
	headers := []string{"ITEM", "DESCRIPTION", "UNIT", "RATE", "PLANNED", "EXECUTED", "PROGRESS"}
	rows := make([][]string, 0, len(p.BOQ))

	for i := range p.BOQ {
		l := &p.BOQ[i]
		rows = append(rows, []string{
			l.ID,
			l.Description,
			string(l.Unit),
			Money(l.Rate),
			Qty(l.PlannedQty),
			Qty(l.ExecutedQty),
			RenderProgress(float64(metrics.LineProgressPercent(l))/100, 10),
		})
	}

	var b strings.Builder
	b.WriteString(RenderTable(headers, rows))
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("%s %s\n", Dim("Total contract amount:"), Money(metrics.TotalPlannedValue(p))))

	return RenderBox("Bill of Quantities", b.String())
}

// FormatBOQLine renders one line in detail, including its cost analysis.
func FormatBOQLine(l *domain.BOQLine) string {
	var b strings.Builder

	b.WriteString(Bold(l.Description) + "\n")
	b.WriteString(Dim("ITEM ") + l.ID + "  " + Dim("UNIT ") + string(l.Unit) + "\n\n")

	b.WriteString(fmt.Sprintf("%s  %s\n", Dim("RATE          "), Money(l.Rate)))
	b.WriteString(fmt.Sprintf("%s  %s\n", Dim("PLANNED QTY   "), Qty(l.PlannedQty)))
	b.WriteString(fmt.Sprintf("%s  %s\n", Dim("EXECUTED QTY  "), Qty(l.ExecutedQty)))
	b.WriteString(fmt.Sprintf("%s  %s\n", Dim("REMAINING QTY "), Qty(metrics.RemainingQty(l))))
	b.WriteString(fmt.Sprintf("%s  %s\n", Dim("PROGRESS      "), RenderProgress(float64(metrics.LineProgressPercent(l))/100, 20)))
	b.WriteString(fmt.Sprintf("%s  %s\n", Dim("PLANNED AMT   "), Money(l.PlannedAmount())))
	b.WriteString(fmt.Sprintf("%s  %s\n", Dim("EXECUTED VALUE"), Money(l.ExecutedValue())))

	if ca := l.CostAnalysis; ca != nil {
		margin, _ := l.UnitMargin()
		profit, _ := l.LineProfit()
		b.WriteString("\n" + StyleHeader.Render("COST ANALYSIS") + "\n")
		b.WriteString(fmt.Sprintf("%s  %s\n", Dim("UNIT COST     "), Money(ca.UnitCost)))
		b.WriteString(fmt.Sprintf("%s  %s\n", Dim("UNIT MARGIN   "), SignedMoney(margin)))
		b.WriteString(fmt.Sprintf("%s  %s\n", Dim("LINE PROFIT   "), SignedMoney(profit)))
		b.WriteString(fmt.Sprintf("%s  material %s, labor %s, equipment %s, overhead %s\n",
			Dim("BREAKDOWN     "),
			Money(ca.Breakdown.Material), Money(ca.Breakdown.Labor),
			Money(ca.Breakdown.Equipment), Money(ca.Breakdown.Overhead)))
	}

	return RenderBox("", b.String())
}
