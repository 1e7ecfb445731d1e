// Package ledger provides the mutating operations on a project: creating the
// project and appending to its five record collections. Appending a daily
// report that is linked to a BOQ line also advances that line's executed
// quantity; the pair is applied atomically through the store.
package ledger

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/zakarianasim073/construction-project-monitoring/internal/domain"
	"github.com/zakarianasim073/construction-project-monitoring/internal/store"
)

// Ledger is the write surface for project records. Reads go straight to the
// store; derived figures come from the metrics package.
type Ledger interface {
	CreateProject(ctx context.Context, name string, contractValue float64, start, end time.Time, initialBOQ []domain.BOQLine) (*domain.Project, error)
	AppendProgressReport(ctx context.Context, projectID string, report domain.ProgressReport) (*domain.Project, error)
	AppendBill(ctx context.Context, projectID string, bill domain.Bill) (*domain.Project, error)
	AppendLiability(ctx context.Context, projectID string, liability domain.Liability) (*domain.Project, error)
	AppendDocument(ctx context.Context, projectID string, doc domain.DocumentRecord) (*domain.Project, error)
}

type projectLedger struct {
	projects store.ProjectStore
}

func New(projects store.ProjectStore) Ledger {
	return &projectLedger{projects: projects}
}

func (l *projectLedger) CreateProject(ctx context.Context, name string, contractValue float64, start, end time.Time, initialBOQ []domain.BOQLine) (*domain.Project, error) {
	p := &domain.Project{
		ID:            uuid.New().String(),
		Name:          name,
		Status:        domain.ProjectActive,
		ContractValue: contractValue,
		StartDate:     start,
		EndDate:       end,
		BOQ:           append([]domain.BOQLine(nil), initialBOQ...),
	}
	if err := p.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrValidation, err)
	}
	if err := l.projects.Put(ctx, p); err != nil {
		return nil, fmt.Errorf("storing project: %w", err)
	}
	return p, nil
}

// AppendProgressReport records a daily report, and when the report is linked
// to a BOQ line, adds its work-done quantity to that line's executed
// quantity. Both writes land in the same store update: a dangling link
// rejects the whole append with ErrBOQLineNotFound and no observable change.
func (l *projectLedger) AppendProgressReport(ctx context.Context, projectID string, report domain.ProgressReport) (*domain.Project, error) {
	if report.ID == "" {
		report.ID = uuid.New().String()
	}
	return l.projects.Update(ctx, projectID, func(p *domain.Project) error {
		if report.Linked() {
			line := p.FindBOQLine(*report.LinkedBOQID)
			if line == nil {
				return fmt.Errorf("%w: %s", ErrBOQLineNotFound, *report.LinkedBOQID)
			}
			line.ExecutedQty += report.QuantityDone()
		}
		p.Reports = append([]domain.ProgressReport{report}, p.Reports...)
		return nil
	})
}

func (l *projectLedger) AppendBill(ctx context.Context, projectID string, bill domain.Bill) (*domain.Project, error) {
	if bill.ID == "" {
		bill.ID = uuid.New().String()
	}
	return l.projects.Update(ctx, projectID, func(p *domain.Project) error {
		p.Bills = append([]domain.Bill{bill}, p.Bills...)
		return nil
	})
}

func (l *projectLedger) AppendLiability(ctx context.Context, projectID string, liability domain.Liability) (*domain.Project, error) {
	if liability.ID == "" {
		liability.ID = uuid.New().String()
	}
	return l.projects.Update(ctx, projectID, func(p *domain.Project) error {
		p.Liabilities = append([]domain.Liability{liability}, p.Liabilities...)
		return nil
	})
}

func (l *projectLedger) AppendDocument(ctx context.Context, projectID string, doc domain.DocumentRecord) (*domain.Project, error) {
	if doc.ID == "" {
		doc.ID = uuid.New().String()
	}
	return l.projects.Update(ctx, projectID, func(p *domain.Project) error {
		p.Documents = append([]domain.DocumentRecord{doc}, p.Documents...)
		return nil
	})
}
