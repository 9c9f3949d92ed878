// Package memory keeps records in process memory. It backs the
// "memory" storage mode and the handler tests.
package memory

import (
	"context"
	"fmt"
	"sync"

	"clinic/internal/common/commonerr"
	"clinic/internal/entities"

	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// Table stores records of one entity type and assigns sequential ids
// starting at 1.
type Table[T entities.Record[T]] struct {
	name string

	mu   sync.RWMutex
	seq  int64
	rows map[int64]T
}

func NewTable[T entities.Record[T]](name string) *Table[T] {
	return &Table[T]{
		name: name,
		rows: make(map[int64]T),
	}
}

func (t *Table[T]) Create(_ context.Context, rec T) (T, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.seq++
	rec = rec.WithID(t.seq)
	t.rows[t.seq] = rec

	return rec, nil
}

// List returns every record ordered by id.
func (t *Table[T]) List(_ context.Context) ([]T, error) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	ids := maps.Keys(t.rows)
	slices.Sort(ids)

	out := make([]T, 0, len(ids))
	for _, id := range ids {
		out = append(out, t.rows[id])
	}

	return out, nil
}

func (t *Table[T]) Get(_ context.Context, id int64) (T, error) {
	op := "memory.Get()"

	t.mu.RLock()
	defer t.mu.RUnlock()

	rec, ok := t.rows[id]
	if !ok {
		return rec, fmt.Errorf("%s: %s %d: %w", op, t.name, id, commonerr.ErrNotFound)
	}

	return rec, nil
}

// Update replaces the stored record with the same id. Last write wins.
func (t *Table[T]) Update(_ context.Context, rec T) (T, error) {
	op := "memory.Update()"

	t.mu.Lock()
	defer t.mu.Unlock()

	id := rec.GetID()
	if _, ok := t.rows[id]; !ok {
		return rec, fmt.Errorf("%s: %s %d: %w", op, t.name, id, commonerr.ErrNotFound)
	}
	t.rows[id] = rec

	return rec, nil
}

// Delete is a no-op for unknown ids.
func (t *Table[T]) Delete(_ context.Context, id int64) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	delete(t.rows, id)
	return nil
}
