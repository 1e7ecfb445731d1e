// Package store holds project state for the session. There is no persistence
// layer: the store is memory-resident and seeded at startup.
package store

import (
	"context"
	"errors"

	"github.com/zakarianasim073/construction-project-monitoring/internal/domain"
)

// ErrProjectNotFound indicates the requested project ID is not in the store.
var ErrProjectNotFound = errors.New("project not found")

// ProjectStore is the owned home for project state. Get and List return deep
// copies, so callers can never alias stored collections. Update applies a
// mutation transactionally: the closure receives a clone, and the clone
// replaces the stored value only when the closure returns nil. A reader can
// therefore never observe a partially-applied mutation, and a failed
// mutation leaves the stored project byte-for-byte unchanged.
type ProjectStore interface {
	Put(ctx context.Context, p *domain.Project) error
	Get(ctx context.Context, id string) (*domain.Project, error)
	List(ctx context.Context) ([]*domain.Project, error)
	Update(ctx context.Context, id string, fn func(p *domain.Project) error) (*domain.Project, error)
}
