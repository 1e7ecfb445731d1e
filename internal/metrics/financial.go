package metrics

import "github.com/zakarianasim073/construction-project-monitoring/internal/domain"

// FinancialSummary is the billed financial position of a project.
type FinancialSummary struct {
	TotalRevenue  float64 // client bills, any status
	TotalReceived float64 // client bills, PAID
	TotalPending  float64 // client bills, PENDING
	TotalExpenses float64 // vendor bills, any status
	NetPosition   float64 // revenue minus expenses
}

// Summarize partitions the bill log into the billed financial position.
func Summarize(p *domain.Project) FinancialSummary {
	var s FinancialSummary
	for _, b := range p.Bills {
		switch b.Kind {
		case domain.BillClientReceivable:
			s.TotalRevenue += b.Amount
			if b.Status == domain.PaymentPaid {
				s.TotalReceived += b.Amount
			} else {
				s.TotalPending += b.Amount
			}
		case domain.BillVendorPayable:
			s.TotalExpenses += b.Amount
		}
	}
	s.NetPosition = s.TotalRevenue - s.TotalExpenses
	return s
}

// OperationalProfit is the margin earned on executed work: the sum of
// (rate - unit cost) x executed quantity over lines that have been worked
// and have a cost analysis. Lines failing either condition are excluded,
// not counted as zero.
func OperationalProfit(p *domain.Project) float64 {
	var sum float64
	for i := range p.BOQ {
		l := &p.BOQ[i]
		if l.ExecutedQty <= 0 || l.CostAnalysis == nil {
			continue
		}
		sum += (l.Rate - l.CostAnalysis.UnitCost) * l.ExecutedQty
	}
	return sum
}

// ProfitLine is one analyzed BOQ line on the profitability view.
type ProfitLine struct {
	Line       *domain.BOQLine
	UnitMargin float64
	Profit     float64
}

// ProfitLines returns the per-line profitability rows, restricted to lines
// included in OperationalProfit.
func ProfitLines(p *domain.Project) []ProfitLine {
	var rows []ProfitLine
	for i := range p.BOQ {
		l := &p.BOQ[i]
		if l.ExecutedQty <= 0 || l.CostAnalysis == nil {
			continue
		}
		margin := l.Rate - l.CostAnalysis.UnitCost
		rows = append(rows, ProfitLine{Line: l, UnitMargin: margin, Profit: margin * l.ExecutedQty})
	}
	return rows
}

// CostBreakdownTotal sums a line's cost categories. On a consistent record
// this tracks the unit cost, but the record is display data and may drift.
func CostBreakdownTotal(l *domain.BOQLine) float64 {
	if l.CostAnalysis == nil {
		return 0
	}
	b := l.CostAnalysis.Breakdown
	return b.Material + b.Labor + b.Equipment + b.Overhead
}
