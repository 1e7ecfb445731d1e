// Package testutil provides fixture builders for tests. Builders return
// fully valid records with sensible defaults; options override single fields.
package testutil

import (
	"time"

	"github.com/google/uuid"

	"github.com/zakarianasim073/construction-project-monitoring/internal/domain"
)

// Project options
type ProjectOption func(*domain.Project)

func WithStatus(s domain.ProjectStatus) ProjectOption {
	return func(p *domain.Project) {
		p.Status = s
	}
}

func WithContractValue(v float64) ProjectOption {
	return func(p *domain.Project) {
		p.ContractValue = v
	}
}

func WithBOQ(lines ...domain.BOQLine) ProjectOption {
	return func(p *domain.Project) {
		p.BOQ = lines
	}
}

func WithBills(bills ...domain.Bill) ProjectOption {
	return func(p *domain.Project) {
		p.Bills = bills
	}
}

func WithLiabilities(ls ...domain.Liability) ProjectOption {
	return func(p *domain.Project) {
		p.Liabilities = ls
	}
}

func WithDocuments(docs ...domain.DocumentRecord) ProjectOption {
	return func(p *domain.Project) {
		p.Documents = docs
	}
}

func NewProject(name string, opts ...ProjectOption) *domain.Project {
	now := time.Now().UTC()
	p := &domain.Project{
		ID:            uuid.New().String(),
		Name:          name,
		Status:        domain.ProjectActive,
		ContractValue: 1_000_000,
		StartDate:     now.AddDate(0, -2, 0),
		EndDate:       now.AddDate(0, 10, 0),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// BOQLine options
type LineOption func(*domain.BOQLine)

func WithExecutedQty(q float64) LineOption {
	return func(l *domain.BOQLine) {
		l.ExecutedQty = q
	}
}

func WithUnitCost(cost float64, breakdown domain.CostBreakdown) LineOption {
	return func(l *domain.BOQLine) {
		l.CostAnalysis = &domain.CostAnalysis{UnitCost: cost, Breakdown: breakdown}
	}
}

func NewBOQLine(id, description string, rate, plannedQty float64, opts ...LineOption) domain.BOQLine {
	l := domain.BOQLine{
		ID:          id,
		Description: description,
		Unit:        domain.UnitSQM,
		Rate:        rate,
		PlannedQty:  plannedQty,
	}
	for _, opt := range opts {
		opt(&l)
	}
	return l
}

// ProgressReport options
type ReportOption func(*domain.ProgressReport)

func WithLink(boqID string, qty float64) ReportOption {
	return func(r *domain.ProgressReport) {
		r.LinkedBOQID = &boqID
		r.WorkDoneQty = &qty
	}
}

func WithReportDate(d time.Time) ReportOption {
	return func(r *domain.ProgressReport) {
		r.Date = d
	}
}

func NewReport(activity string, opts ...ReportOption) domain.ProgressReport {
	r := domain.ProgressReport{
		ID:         uuid.New().String(),
		Date:       time.Now().UTC(),
		Activity:   activity,
		Location:   "Block A",
		LaborCount: 12,
	}
	for _, opt := range opts {
		opt(&r)
	}
	return r
}

func NewBill(kind domain.BillKind, counterparty string, amount float64, status domain.PaymentStatus) domain.Bill {
	return domain.Bill{
		ID:           uuid.New().String(),
		Kind:         kind,
		Counterparty: counterparty,
		Amount:       amount,
		Date:         time.Now().UTC(),
		Status:       status,
	}
}

func NewLiability(kind domain.LiabilityKind, description string, amount float64) domain.Liability {
	return domain.Liability{
		ID:          uuid.New().String(),
		Description: description,
		Kind:        kind,
		Amount:      amount,
		DueDate:     time.Now().UTC().AddDate(0, 1, 0),
	}
}

func NewDocument(name, fileType string, module domain.ModuleTag) domain.DocumentRecord {
	return domain.DocumentRecord{
		ID:         uuid.New().String(),
		Name:       name,
		FileType:   fileType,
		Category:   domain.DocOther,
		Module:     module,
		UploadDate: time.Now().UTC(),
		SizeLabel:  "1.0 MB",
	}
}
