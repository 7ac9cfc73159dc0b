package notifications

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
)

// MemoryRepository keeps the feed in process memory, capped to the most
// recent entries.
type MemoryRepository struct {
	mu      sync.RWMutex
	entries []Notification
	cap     int
}

// NewMemoryRepository builds a feed that retains at most cap entries.
func NewMemoryRepository(cap int) *MemoryRepository {
	if cap <= 0 {
		cap = 200
	}
	return &MemoryRepository{cap: cap}
}

func (r *MemoryRepository) Insert(ctx context.Context, notification Notification) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.entries = append(r.entries, notification)
	if len(r.entries) > r.cap {
		r.entries = r.entries[len(r.entries)-r.cap:]
	}
	return nil
}

// List returns entries newest first.
func (r *MemoryRepository) List(ctx context.Context, unreadOnly bool, limit int) ([]Notification, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Notification, 0, limit)
	for i := len(r.entries) - 1; i >= 0 && len(out) < limit; i-- {
		entry := r.entries[i]
		if unreadOnly && entry.ReadAt != nil {
			continue
		}
		out = append(out, entry)
	}
	return out, nil
}

func (r *MemoryRepository) MarkRead(ctx context.Context, id uuid.UUID, at time.Time) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.entries {
		if r.entries[i].ID != id {
			continue
		}
		if r.entries[i].ReadAt == nil {
			stamp := at
			r.entries[i].ReadAt = &stamp
		}
		return true, nil
	}
	return false, nil
}

func (r *MemoryRepository) MarkAllRead(ctx context.Context, at time.Time) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var count int64
	for i := range r.entries {
		if r.entries[i].ReadAt != nil {
			continue
		}
		stamp := at
		r.entries[i].ReadAt = &stamp
		count++
	}
	return count, nil
}
