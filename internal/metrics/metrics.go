// Package metrics computes derived figures from a project's current state.
// Every function is pure and total: no mutation, no error paths, and the
// same input always yields the same output. Values are raw numbers and
// enumerated codes; formatting belongs to the presentation layer.
package metrics

import (
	"math"

	"github.com/zakarianasim073/construction-project-monitoring/internal/domain"
)

// TotalPlannedValue sums rate x planned quantity over the BOQ.
func TotalPlannedValue(p *domain.Project) float64 {
	var sum float64
	for i := range p.BOQ {
		sum += p.BOQ[i].PlannedAmount()
	}
	return sum
}

// TotalExecutedValue sums rate x executed quantity over the BOQ.
func TotalExecutedValue(p *domain.Project) float64 {
	var sum float64
	for i := range p.BOQ {
		sum += p.BOQ[i].ExecutedValue()
	}
	return sum
}

// ProgressPercent is the project's overall progress: executed value as a
// rounded percentage of planned value. 0 when nothing is planned.
func ProgressPercent(p *domain.Project) int {
	planned := TotalPlannedValue(p)
	if planned == 0 {
		return 0
	}
	return int(math.Round(100 * TotalExecutedValue(p) / planned))
}

// LineProgressPercent is a single line's progress, capped at 100 so
// over-executed lines do not read above complete. 0 when nothing is planned.
func LineProgressPercent(l *domain.BOQLine) int {
	if l.PlannedQty == 0 {
		return 0
	}
	pct := int(math.Round(100 * l.ExecutedQty / l.PlannedQty))
	if pct > 100 {
		return 100
	}
	return pct
}

// RemainingQty is the quantity left on a line, floored at 0 for
// over-executed lines.
func RemainingQty(l *domain.BOQLine) float64 {
	return math.Max(0, l.PlannedQty-l.ExecutedQty)
}

// TotalBilled sums client-receivable bill amounts regardless of status.
func TotalBilled(p *domain.Project) float64 {
	var sum float64
	for _, b := range p.Bills {
		if b.Kind == domain.BillClientReceivable {
			sum += b.Amount
		}
	}
	return sum
}

// TotalLiabilities sums all liability amounts.
func TotalLiabilities(p *domain.Project) float64 {
	var sum float64
	for _, l := range p.Liabilities {
		sum += l.Amount
	}
	return sum
}

// LiabilityTotals sums liability amounts per kind. Kinds with no entries are
// absent from the map.
func LiabilityTotals(p *domain.Project) map[domain.LiabilityKind]float64 {
	totals := make(map[domain.LiabilityKind]float64)
	for _, l := range p.Liabilities {
		totals[l.Kind] += l.Amount
	}
	return totals
}

// OverviewRow is one bar of the dashboard overview chart.
type OverviewRow struct {
	Label  string
	Amount float64
}

// OverviewSeries returns the four headline amounts shown on the dashboard.
func OverviewSeries(p *domain.Project) []OverviewRow {
	return []OverviewRow{
		{Label: "Planned", Amount: TotalPlannedValue(p)},
		{Label: "Executed", Amount: TotalExecutedValue(p)},
		{Label: "Billed", Amount: TotalBilled(p)},
		{Label: "Liabilities", Amount: TotalLiabilities(p)},
	}
}
