package domain

// BOQLine is one priced scope-of-work item from the Bill of Quantities.
// ExecutedQty is the only mutable field on the baseline: it grows when a
// linked daily report is recorded. It is allowed to exceed PlannedQty
// (over-execution happens on real sites); display-side helpers clamp.
type BOQLine struct {
	ID          string
	Description string
	Unit        Unit
	Rate        float64 // currency per unit
	PlannedQty  float64
	ExecutedQty float64
	CostAnalysis *CostAnalysis
}

// CostAnalysis is the actual per-unit cost of a line, when it has been worked out.
type CostAnalysis struct {
	UnitCost  float64
	Breakdown CostBreakdown
}

// CostBreakdown splits a unit cost by category.
type CostBreakdown struct {
	Material  float64
	Labor     float64
	Equipment float64
	Overhead  float64
}

// PlannedAmount is the contract value of the line: rate times planned quantity.
func (l *BOQLine) PlannedAmount() float64 {
	return l.Rate * l.PlannedQty
}

// ExecutedValue is the earned value of the line: rate times executed quantity.
func (l *BOQLine) ExecutedValue() float64 {
	return l.Rate * l.ExecutedQty
}

// UnitMargin returns rate minus actual unit cost, and false when the line
// carries no cost analysis.
func (l *BOQLine) UnitMargin() (float64, bool) {
	if l.CostAnalysis == nil {
		return 0, false
	}
	return l.Rate - l.CostAnalysis.UnitCost, true
}

// LineProfit returns the margin earned on executed work, and false when the
// line carries no cost analysis.
func (l *BOQLine) LineProfit() (float64, bool) {
	margin, ok := l.UnitMargin()
	if !ok {
		return 0, false
	}
	return margin * l.ExecutedQty, true
}

func (l BOQLine) clone() BOQLine {
	if l.CostAnalysis != nil {
		ca := *l.CostAnalysis
		l.CostAnalysis = &ca
	}
	return l
}
