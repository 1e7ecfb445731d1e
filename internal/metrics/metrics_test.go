package metrics

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/zakarianasim073/construction-project-monitoring/internal/domain"
)

func TestProgressPercent_EmptyBOQ(t *testing.T) {
	p := &domain.Project{}
	assert.Equal(t, 0, ProgressPercent(p), "empty BOQ must yield 0, not NaN")
}

func TestProgressPercent(t *testing.T) {
	p := &domain.Project{BOQ: []domain.BOQLine{
		{Rate: 10, PlannedQty: 100, ExecutedQty: 50}, // planned 1000, executed 500
		{Rate: 20, PlannedQty: 50, ExecutedQty: 25},  // planned 1000, executed 500
	}}
	assert.Equal(t, 50, ProgressPercent(p))
}

func TestProgressPercent_Rounds(t *testing.T) {
	p := &domain.Project{BOQ: []domain.BOQLine{
		{Rate: 1, PlannedQty: 3, ExecutedQty: 1}, // 33.33...
	}}
	assert.Equal(t, 33, ProgressPercent(p))
}

func TestLineProgressPercent_Table(t *testing.T) {
	cases := []struct {
		name     string
		line     domain.BOQLine
		expected int
	}{
		{"zero planned", domain.BOQLine{PlannedQty: 0, ExecutedQty: 10}, 0},
		{"half done", domain.BOQLine{PlannedQty: 100, ExecutedQty: 50}, 50},
		{"complete", domain.BOQLine{PlannedQty: 27977, ExecutedQty: 27977}, 100},
		{"over-executed caps at 100", domain.BOQLine{PlannedQty: 100, ExecutedQty: 130}, 100},
		{"rounds up", domain.BOQLine{PlannedQty: 1000, ExecutedQty: 405}, 41},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, LineProgressPercent(&tc.line))
		})
	}
}

func TestRemainingQty_FloorsAtZero(t *testing.T) {
	l := &domain.BOQLine{PlannedQty: 100, ExecutedQty: 130}
	assert.Equal(t, 0.0, RemainingQty(l))

	l = &domain.BOQLine{PlannedQty: 47000, ExecutedQty: 18896}
	assert.Equal(t, 28104.0, RemainingQty(l))
}

func TestLiabilityTotals(t *testing.T) {
	p := &domain.Project{Liabilities: []domain.Liability{
		{Kind: domain.LiabilityRetention, Amount: 1250000},
		{Kind: domain.LiabilityPendingPO, Amount: 867802},
		{Kind: domain.LiabilityUnbilledWork, Amount: 45000},
		{Kind: domain.LiabilityRetention, Amount: 100},
	}}
	totals := LiabilityTotals(p)
	assert.Equal(t, 1250100.0, totals[domain.LiabilityRetention])
	assert.Equal(t, 867802.0, totals[domain.LiabilityPendingPO])
	assert.Equal(t, 45000.0, totals[domain.LiabilityUnbilledWork])
}

func TestLiabilityTotals_EmptyKindsAbsent(t *testing.T) {
	totals := LiabilityTotals(&domain.Project{})
	_, ok := totals[domain.LiabilityRetention]
	assert.False(t, ok)
}

func TestOverviewSeries(t *testing.T) {
	p := &domain.Project{
		BOQ: []domain.BOQLine{{Rate: 10, PlannedQty: 100, ExecutedQty: 40}},
		Bills: []domain.Bill{
			{Kind: domain.BillClientReceivable, Amount: 300},
			{Kind: domain.BillVendorPayable, Amount: 900},
		},
		Liabilities: []domain.Liability{{Amount: 50}},
	}
	rows := OverviewSeries(p)
	assert.Equal(t, []OverviewRow{
		{Label: "Planned", Amount: 1000},
		{Label: "Executed", Amount: 400},
		{Label: "Billed", Amount: 300},
		{Label: "Liabilities", Amount: 50},
	}, rows)
}

func TestDerivedMetrics_Idempotent(t *testing.T) {
	p := &domain.Project{
		BOQ: []domain.BOQLine{
			{Rate: 123.59, PlannedQty: 27977, ExecutedQty: 27977, CostAnalysis: &domain.CostAnalysis{UnitCost: 115}},
		},
		Bills:       []domain.Bill{{Kind: domain.BillClientReceivable, Amount: 12500000, Status: domain.PaymentPaid}},
		Liabilities: []domain.Liability{{Kind: domain.LiabilityRetention, Amount: 1250000}},
	}

	assert.Equal(t, ProgressPercent(p), ProgressPercent(p))
	assert.Equal(t, Summarize(p), Summarize(p))
	assert.Equal(t, OperationalProfit(p), OperationalProfit(p))
	assert.Equal(t, LiabilityTotals(p), LiabilityTotals(p))
}
