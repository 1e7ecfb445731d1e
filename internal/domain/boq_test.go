package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBOQLine_Amounts(t *testing.T) {
	l := &BOQLine{Rate: 295, PlannedQty: 20404, ExecutedQty: 20404}
	assert.InDelta(t, 6019180, l.PlannedAmount(), 0.01)
	assert.InDelta(t, 6019180, l.ExecutedValue(), 0.01)
}

func TestBOQLine_UnitMargin(t *testing.T) {
	l := &BOQLine{Rate: 852, CostAnalysis: &CostAnalysis{UnitCost: 910}}
	margin, ok := l.UnitMargin()
	assert.True(t, ok)
	assert.InDelta(t, -58, margin, 0.01) // loss-making line

	l = &BOQLine{Rate: 852}
	_, ok = l.UnitMargin()
	assert.False(t, ok)
}

func TestBOQLine_LineProfit(t *testing.T) {
	l := &BOQLine{Rate: 123.59, ExecutedQty: 27977, CostAnalysis: &CostAnalysis{UnitCost: 115}}
	profit, ok := l.LineProfit()
	assert.True(t, ok)
	assert.InDelta(t, (123.59-115)*27977, profit, 0.01)

	l = &BOQLine{Rate: 123.59, ExecutedQty: 27977}
	_, ok = l.LineProfit()
	assert.False(t, ok)
}

func TestProgressReport_Optionals(t *testing.T) {
	r := &ProgressReport{}
	assert.False(t, r.Linked())
	assert.Equal(t, 0.0, r.QuantityDone())

	id := "40-190-35"
	r.LinkedBOQID = &id
	assert.True(t, r.Linked())
	assert.Equal(t, 0.0, r.QuantityDone(), "linked with no quantity still reads 0")

	qty := 97.0
	r.WorkDoneQty = &qty
	assert.Equal(t, 97.0, r.QuantityDone())
}

func TestDocumentRecord_MatchesSearch(t *testing.T) {
	d := &DocumentRecord{Name: "Running Bill RA-09.pdf"}
	assert.True(t, d.MatchesSearch(""))
	assert.True(t, d.MatchesSearch("ra-09"))
	assert.True(t, d.MatchesSearch("BILL"))
	assert.False(t, d.MatchesSearch("drawing"))
}
