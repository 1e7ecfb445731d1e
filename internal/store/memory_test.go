package store

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zakarianasim073/construction-project-monitoring/internal/domain"
)

func seedProject() *domain.Project {
	return &domain.Project{
		ID:            "P001",
		Name:          "Munshirhat",
		Status:        domain.ProjectActive,
		ContractValue: 181592188,
		BOQ:           []domain.BOQLine{{ID: "40-920", Rate: 123.59, PlannedQty: 27977, ExecutedQty: 20}},
	}
}

func TestMemoryStore_GetReturnsCopy(t *testing.T) {
	s := NewMemoryStore(seedProject())
	ctx := context.Background()

	p, err := s.Get(ctx, "P001")
	require.NoError(t, err)
	p.BOQ[0].ExecutedQty = 9999

	again, err := s.Get(ctx, "P001")
	require.NoError(t, err)
	assert.Equal(t, 20.0, again.BOQ[0].ExecutedQty, "mutating a returned copy must not touch the store")
}

func TestMemoryStore_GetMissing(t *testing.T) {
	s := NewMemoryStore()
	_, err := s.Get(context.Background(), "nope")
	assert.ErrorIs(t, err, ErrProjectNotFound)
}

func TestMemoryStore_PutDuplicate(t *testing.T) {
	s := NewMemoryStore(seedProject())
	err := s.Put(context.Background(), seedProject())
	assert.Error(t, err)
}

func TestMemoryStore_ListNewestFirst(t *testing.T) {
	s := NewMemoryStore(seedProject())
	ctx := context.Background()
	require.NoError(t, s.Put(ctx, &domain.Project{ID: "P002", Name: "Kurigram"}))

	list, err := s.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "P002", list[0].ID)
	assert.Equal(t, "P001", list[1].ID)
}

func TestMemoryStore_UpdateCommitsOnSuccess(t *testing.T) {
	s := NewMemoryStore(seedProject())
	ctx := context.Background()

	updated, err := s.Update(ctx, "P001", func(p *domain.Project) error {
		p.BOQ[0].ExecutedQty += 5
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, 25.0, updated.BOQ[0].ExecutedQty)

	stored, err := s.Get(ctx, "P001")
	require.NoError(t, err)
	assert.Equal(t, 25.0, stored.BOQ[0].ExecutedQty)
}

func TestMemoryStore_UpdateRollsBackOnError(t *testing.T) {
	s := NewMemoryStore(seedProject())
	ctx := context.Background()
	boom := errors.New("boom")

	// Mutate the clone first, then fail: nothing may stick.
	_, err := s.Update(ctx, "P001", func(p *domain.Project) error {
		p.BOQ[0].ExecutedQty += 5
		p.Reports = append(p.Reports, domain.ProgressReport{ID: "R1"})
		return boom
	})
	require.ErrorIs(t, err, boom)

	stored, err := s.Get(ctx, "P001")
	require.NoError(t, err)
	assert.Equal(t, 20.0, stored.BOQ[0].ExecutedQty)
	assert.Empty(t, stored.Reports)
}

func TestMemoryStore_ConcurrentUpdates(t *testing.T) {
	s := NewMemoryStore(seedProject())
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := s.Update(ctx, "P001", func(p *domain.Project) error {
				p.BOQ[0].ExecutedQty += 1
				return nil
			})
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	stored, err := s.Get(ctx, "P001")
	require.NoError(t, err)
	assert.Equal(t, 70.0, stored.BOQ[0].ExecutedQty)
}
