package store

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/redlitmus-in/MeterSquare-sub012/pkg/domain"
)

// ErrNotFound is returned when a record cannot be located.
var ErrNotFound = errors.New("store: not found")

// InboxQuery narrows a user's inbox listing. Filters apply before
// pagination, so Total always reports the overall match count.
type InboxQuery struct {
	Limit              int
	Offset             int
	Since              time.Time
	Until              time.Time
	Before             time.Time
	Category           string
	UnreadOnly         bool
	IncludeDismissed   bool
	IncludeSoftDeleted bool
}

// InboxPage is one page of a user's inbox plus the overall match count.
type InboxPage struct {
	Items []domain.InboxNotification
	Total int
}

// InboxNotificationRepository persists received notifications per user.
type InboxNotificationRepository interface {
	Create(ctx context.Context, record *domain.InboxNotification) error
	Update(ctx context.Context, record *domain.InboxNotification) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.InboxNotification, error)
	ListByUser(ctx context.Context, userID string, q InboxQuery) (InboxPage, error)
	MarkRead(ctx context.Context, id uuid.UUID, read bool) error
	Dismiss(ctx context.Context, id uuid.UUID) error
	CountUnread(ctx context.Context, userID string) (int, error)
	SoftDelete(ctx context.Context, id uuid.UUID) error
}
