package domain

import (
	"fmt"
	"time"
)

// Project is the root aggregate: the contract baseline plus every ledger
// collection recorded against it. A project exclusively owns its collections;
// no child record is shared across projects.
type Project struct {
	ID            string
	Name          string
	Status        ProjectStatus
	ContractValue float64
	StartDate     time.Time
	EndDate       time.Time

	BOQ         []BOQLine
	Reports     []ProgressReport
	Bills       []Bill
	Liabilities []Liability
	Documents   []DocumentRecord
}

// Validate checks creation input. The contract value is immutable after
// creation, so a bad value can only be rejected here.
func (p *Project) Validate() error {
	if p.Name == "" {
		return fmt.Errorf("project name is required")
	}
	if p.ContractValue <= 0 {
		return fmt.Errorf("contract value must be positive, got %v", p.ContractValue)
	}
	return nil
}

// FindBOQLine returns a pointer into the project's BOQ slice for the line
// with the given ID, or nil if no line matches.
func (p *Project) FindBOQLine(id string) *BOQLine {
	for i := range p.BOQ {
		if p.BOQ[i].ID == id {
			return &p.BOQ[i]
		}
	}
	return nil
}

// Clone returns a deep copy of the project. The store hands out clones so
// readers never alias the stored collections.
func (p *Project) Clone() *Project {
	c := *p
	c.BOQ = make([]BOQLine, len(p.BOQ))
	for i, l := range p.BOQ {
		c.BOQ[i] = l.clone()
	}
	c.Reports = make([]ProgressReport, len(p.Reports))
	for i, r := range p.Reports {
		c.Reports[i] = r.clone()
	}
	c.Bills = append([]Bill(nil), p.Bills...)
	c.Liabilities = append([]Liability(nil), p.Liabilities...)
	c.Documents = append([]DocumentRecord(nil), p.Documents...)
	return &c
}

// DisplayID returns a short identifier for display, truncating UUIDs.
func (p *Project) DisplayID() string {
	if len(p.ID) >= 8 {
		return p.ID[:8]
	}
	return p.ID
}
