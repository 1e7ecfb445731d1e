package domain

import "time"

// ProgressReport is one dated field log (a DPR). Reports are append-only:
// once recorded they are never edited or deleted.
//
// LinkedBOQID and WorkDoneQty are pointers so "report not linked" and
// "report linked with zero quantity" stay distinct cases.
type ProgressReport struct {
	ID         string
	Date       time.Time
	Activity   string
	Location   string
	LaborCount int
	Remarks    string
	LinkedBOQID *string
	WorkDoneQty *float64
}

// Linked reports whether the report references a BOQ line.
func (r *ProgressReport) Linked() bool {
	return r.LinkedBOQID != nil && *r.LinkedBOQID != ""
}

// QuantityDone returns the quantity achieved, treating an absent value as 0.
func (r *ProgressReport) QuantityDone() float64 {
	if r.WorkDoneQty == nil {
		return 0
	}
	return *r.WorkDoneQty
}

func (r ProgressReport) clone() ProgressReport {
	if r.LinkedBOQID != nil {
		id := *r.LinkedBOQID
		r.LinkedBOQID = &id
	}
	if r.WorkDoneQty != nil {
		q := *r.WorkDoneQty
		r.WorkDoneQty = &q
	}
	return r
}
