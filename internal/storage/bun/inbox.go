// Package bunrepo persists the notification inbox through bun.
package bunrepo

import (
	"context"
	"database/sql"
	"time"

	repository "github.com/goliatone/go-repository-bun"
	"github.com/google/uuid"
	"github.com/uptrace/bun"

	"github.com/redlitmus-in/MeterSquare-sub012/pkg/domain"
	"github.com/redlitmus-in/MeterSquare-sub012/pkg/interfaces/store"
)

// InboxRepository stores inbox notifications in the notification_inbox table.
type InboxRepository struct {
	repo repository.Repository[*domain.InboxNotification]
	db   *bun.DB
}

// NewInboxRepository wires the notification_inbox table.
func NewInboxRepository(db *bun.DB) *InboxRepository {
	handlers := repository.ModelHandlers[*domain.InboxNotification]{
		NewRecord:          func() *domain.InboxNotification { return &domain.InboxNotification{} },
		GetID:              func(n *domain.InboxNotification) uuid.UUID { return n.ID },
		SetID:              func(n *domain.InboxNotification, id uuid.UUID) { n.ID = id },
		GetIdentifier:      func() string { return "id" },
		GetIdentifierValue: func(n *domain.InboxNotification) string { return n.ID.String() },
	}
	return &InboxRepository{
		repo: repository.MustNewRepository[*domain.InboxNotification](db, handlers),
		db:   db,
	}
}

var _ store.InboxNotificationRepository = (*InboxRepository)(nil)

func (r *InboxRepository) Create(ctx context.Context, record *domain.InboxNotification) error {
	record.EnsureID()
	now := time.Now().UTC()
	if record.CreatedAt.IsZero() {
		record.CreatedAt = now
	}
	record.UpdatedAt = now
	_, err := r.repo.Create(ctx, record)
	return mapError(err)
}

func (r *InboxRepository) Update(ctx context.Context, record *domain.InboxNotification) error {
	record.UpdatedAt = time.Now().UTC()
	_, err := r.repo.Update(ctx, record)
	return mapError(err)
}

func (r *InboxRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.InboxNotification, error) {
	record, err := r.repo.Get(ctx, withID(id), withoutDeleted())
	if err != nil {
		return nil, mapError(err)
	}
	return record, nil
}

// ListByUser returns one page of the user's notifications, newest first.
// Filters run in the query, so the total counts every match rather than
// the returned page.
func (r *InboxRepository) ListByUser(ctx context.Context, userID string, q store.InboxQuery) (store.InboxPage, error) {
	criteria := []repository.SelectCriteria{
		withUser(userID),
		withInboxQuery(q),
		orderNewestFirst(),
	}
	records, total, err := r.repo.List(ctx, criteria...)
	if err != nil {
		return store.InboxPage{}, mapError(err)
	}
	items := make([]domain.InboxNotification, len(records))
	for i, rec := range records {
		items[i] = *rec
	}
	return store.InboxPage{Items: items, Total: total}, nil
}

// MarkRead toggles the unread flag and stamps ReadAt accordingly.
func (r *InboxRepository) MarkRead(ctx context.Context, id uuid.UUID, read bool) error {
	record, err := r.GetByID(ctx, id)
	if err != nil {
		return err
	}
	record.Unread = !read
	if read {
		record.ReadAt = time.Now().UTC()
	} else {
		record.ReadAt = time.Time{}
	}
	return r.Update(ctx, record)
}

// Dismiss hides the notification from listings and badge counts without
// deleting it.
func (r *InboxRepository) Dismiss(ctx context.Context, id uuid.UUID) error {
	now := time.Now().UTC()
	res, err := r.db.
		NewUpdate().
		Model((*domain.InboxNotification)(nil)).
		Set("dismissed_at = ?", now).
		Set("unread = ?", false).
		Where("id = ?", id).
		Exec(ctx)
	if err != nil {
		return mapError(err)
	}
	return requireRows(res)
}

// CountUnread reports the badge count for a user.
func (r *InboxRepository) CountUnread(ctx context.Context, userID string) (int, error) {
	count, err := r.db.
		NewSelect().
		Model((*domain.InboxNotification)(nil)).
		Where("user_id = ?", userID).
		Where("unread = TRUE").
		Where("dismissed_at IS NULL").
		Count(ctx)
	return count, mapError(err)
}

func (r *InboxRepository) SoftDelete(ctx context.Context, id uuid.UUID) error {
	record, err := r.repo.Get(ctx, withID(id))
	if err != nil {
		return mapError(err)
	}
	record.DeletedAt = time.Now().UTC()
	_, err = r.repo.Update(ctx, record)
	return mapError(err)
}

func mapError(err error) error {
	if err == nil {
		return nil
	}
	if repository.IsRecordNotFound(err) {
		return store.ErrNotFound
	}
	return err
}

func requireRows(res sql.Result) error {
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return store.ErrNotFound
	}
	return nil
}
