// Package memory provides an in-memory inbox repository used by tests
// and the example programs.
package memory

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/redlitmus-in/MeterSquare-sub012/pkg/domain"
	"github.com/redlitmus-in/MeterSquare-sub012/pkg/interfaces/store"
)

// InboxRepository keeps inbox notifications in process memory.
type InboxRepository struct {
	mu      sync.RWMutex
	records map[uuid.UUID]domain.InboxNotification
}

// NewInboxRepository returns an empty in-memory inbox store.
func NewInboxRepository() *InboxRepository {
	return &InboxRepository{records: make(map[uuid.UUID]domain.InboxNotification)}
}

var _ store.InboxNotificationRepository = (*InboxRepository)(nil)

func (r *InboxRepository) Create(ctx context.Context, record *domain.InboxNotification) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	record.EnsureID()
	now := time.Now().UTC()
	if record.CreatedAt.IsZero() {
		record.CreatedAt = now
	}
	record.UpdatedAt = now
	r.records[record.ID] = *record
	return nil
}

func (r *InboxRepository) Update(ctx context.Context, record *domain.InboxNotification) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if record.ID == uuid.Nil {
		return store.ErrNotFound
	}
	if _, ok := r.records[record.ID]; !ok {
		return store.ErrNotFound
	}
	record.UpdatedAt = time.Now().UTC()
	r.records[record.ID] = *record
	return nil
}

func (r *InboxRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.InboxNotification, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	record, ok := r.records[id]
	if !ok || !record.DeletedAt.IsZero() {
		return nil, store.ErrNotFound
	}
	copied := record
	return &copied, nil
}

// matches applies every query filter except pagination.
func matches(record domain.InboxNotification, userID string, q store.InboxQuery) bool {
	if record.UserID != userID {
		return false
	}
	if !q.IncludeSoftDeleted && !record.DeletedAt.IsZero() {
		return false
	}
	if !q.IncludeDismissed && !record.DismissedAt.IsZero() {
		return false
	}
	if q.UnreadOnly && !record.Unread {
		return false
	}
	if q.Category != "" && !strings.EqualFold(record.Category, q.Category) {
		return false
	}
	if !q.Since.IsZero() && record.CreatedAt.Before(q.Since) {
		return false
	}
	if !q.Until.IsZero() && record.CreatedAt.After(q.Until) {
		return false
	}
	if !q.Before.IsZero() && !record.CreatedAt.Before(q.Before) {
		return false
	}
	return true
}

// ListByUser returns one page of the user's notifications, newest first.
// Total counts every match, not just the returned page.
func (r *InboxRepository) ListByUser(ctx context.Context, userID string, q store.InboxQuery) (store.InboxPage, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var filtered []domain.InboxNotification
	for _, record := range r.records {
		if matches(record, userID, q) {
			filtered = append(filtered, record)
		}
	}

	sort.Slice(filtered, func(i, j int) bool {
		return filtered[i].CreatedAt.After(filtered[j].CreatedAt)
	})

	total := len(filtered)
	start := q.Offset
	if start > total {
		start = total
	}
	end := total
	if q.Limit > 0 && start+q.Limit < end {
		end = start + q.Limit
	}

	return store.InboxPage{Items: filtered[start:end], Total: total}, nil
}

// MarkRead toggles the unread flag and stamps ReadAt accordingly.
func (r *InboxRepository) MarkRead(ctx context.Context, id uuid.UUID, read bool) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	record, ok := r.records[id]
	if !ok || !record.DeletedAt.IsZero() {
		return store.ErrNotFound
	}
	record.Unread = !read
	if read {
		record.ReadAt = time.Now().UTC()
	} else {
		record.ReadAt = time.Time{}
	}
	record.UpdatedAt = time.Now().UTC()
	r.records[id] = record
	return nil
}

// Dismiss hides the notification from listings without deleting it.
func (r *InboxRepository) Dismiss(ctx context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	record, ok := r.records[id]
	if !ok || !record.DeletedAt.IsZero() {
		return store.ErrNotFound
	}
	now := time.Now().UTC()
	record.DismissedAt = now
	record.Unread = false
	record.UpdatedAt = now
	r.records[id] = record
	return nil
}

// CountUnread reports the badge count for a user.
func (r *InboxRepository) CountUnread(ctx context.Context, userID string) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	count := 0
	for _, record := range r.records {
		if record.UserID != userID {
			continue
		}
		if !record.DeletedAt.IsZero() || !record.DismissedAt.IsZero() {
			continue
		}
		if record.Unread {
			count++
		}
	}
	return count, nil
}

func (r *InboxRepository) SoftDelete(ctx context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	record, ok := r.records[id]
	if !ok {
		return store.ErrNotFound
	}
	if record.DeletedAt.IsZero() {
		record.DeletedAt = time.Now().UTC()
		record.UpdatedAt = record.DeletedAt
	}
	r.records[id] = record
	return nil
}
