package store

import (
	"context"
	"fmt"
	"sync"

	"github.com/zakarianasim073/construction-project-monitoring/internal/domain"
)

type memoryStore struct {
	mu       sync.RWMutex
	projects map[string]*domain.Project
	order    []string // insertion order, newest first
}

// NewMemoryStore creates an in-memory ProjectStore, optionally pre-loaded
// with seed projects. Seed order is preserved for listing.
func NewMemoryStore(seed ...*domain.Project) ProjectStore {
	s := &memoryStore{projects: make(map[string]*domain.Project)}
	for _, p := range seed {
		s.projects[p.ID] = p.Clone()
		s.order = append(s.order, p.ID)
	}
	return s
}

func (s *memoryStore) Put(ctx context.Context, p *domain.Project) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.projects[p.ID]; exists {
		return fmt.Errorf("project %s already exists", p.ID)
	}
	s.projects[p.ID] = p.Clone()
	// New projects go to the front, matching the dashboard's newest-first list.
	s.order = append([]string{p.ID}, s.order...)
	return nil
}

func (s *memoryStore) Get(ctx context.Context, id string) (*domain.Project, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	p, ok := s.projects[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrProjectNotFound, id)
	}
	return p.Clone(), nil
}

func (s *memoryStore) List(ctx context.Context) ([]*domain.Project, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*domain.Project, 0, len(s.order))
	for _, id := range s.order {
		out = append(out, s.projects[id].Clone())
	}
	return out, nil
}

func (s *memoryStore) Update(ctx context.Context, id string, fn func(p *domain.Project) error) (*domain.Project, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	current, ok := s.projects[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrProjectNotFound, id)
	}

	// Mutate a clone; commit only on success. The write lock keeps the
	// read-modify-write of a linked report from interleaving with any
	// other writer.
	next := current.Clone()
	if err := fn(next); err != nil {
		return nil, err
	}
	s.projects[id] = next
	return next.Clone(), nil
}
