package store

import (
	"context"
	"sync"

	"github.com/hrms-dev/hrms_service/internal/entity"
)

// memoryCollection keeps records in a map plus an insertion-order slice.
// The lock only guards the containers; last write still wins on concurrent
// updates to the same record.
type memoryCollection[T any] struct {
	mu    sync.RWMutex
	recs  map[string]T
	order []string
}

func newMemoryCollection[T any]() *memoryCollection[T] {
	return &memoryCollection[T]{recs: make(map[string]T)}
}

func (c *memoryCollection[T]) List(_ context.Context) ([]T, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make([]T, 0, len(c.order))
	for _, id := range c.order {
		out = append(out, c.recs[id])
	}

	return out, nil
}

func (c *memoryCollection[T]) Get(_ context.Context, id string) (T, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	rec, ok := c.recs[id]
	if !ok {
		var zero T
		return zero, ErrNotFound
	}

	return rec, nil
}

func (c *memoryCollection[T]) Put(_ context.Context, id string, rec T) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, ok := c.recs[id]; !ok {
		c.order = append(c.order, id)
	}
	c.recs[id] = rec

	return nil
}

func (c *memoryCollection[T]) Delete(_ context.Context, id string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, ok := c.recs[id]; !ok {
		return ErrNotFound
	}
	delete(c.recs, id)

	for i, oid := range c.order {
		if oid == id {
			c.order = append(c.order[:i], c.order[i+1:]...)
			break
		}
	}

	return nil
}

// NewMemoryStore returns the in-process store, the default backend.
func NewMemoryStore() *Store {
	return &Store{
		Users:         newMemoryCollection[entity.User](),
		Attendance:    newMemoryCollection[entity.AttendanceRecord](),
		Leaves:        newMemoryCollection[entity.LeaveRequest](),
		Payroll:       newMemoryCollection[entity.PayrollRecord](),
		Files:         newMemoryCollection[entity.UploadedFile](),
		Announcements: newMemoryCollection[entity.Announcement](),
	}
}
