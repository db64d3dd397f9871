package inbox

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/redlitmus-in/MeterSquare-sub012/pkg/domain"
	"github.com/redlitmus-in/MeterSquare-sub012/pkg/interfaces/broadcaster"
	"github.com/redlitmus-in/MeterSquare-sub012/pkg/interfaces/logger"
	"github.com/redlitmus-in/MeterSquare-sub012/pkg/interfaces/store"
	"github.com/redlitmus-in/MeterSquare-sub012/pkg/redirect"
	"github.com/redlitmus-in/MeterSquare-sub012/pkg/routes"
)

// DeliverInput captures a notification addressed to one recipient.
type DeliverInput struct {
	UserID       string
	Role         any
	Notification domain.Notification
}

// ListFilters narrow mailbox queries. Pagination travels with the filters so
// the repository can apply both in one query.
type ListFilters struct {
	Limit            int
	Offset           int
	UnreadOnly       bool
	IncludeDismissed bool
	Category         string
	Since            time.Time
	Until            time.Time
	Before           time.Time
}

// Dependencies wires storage, the redirect engine and realtime hooks.
type Dependencies struct {
	Repository  store.InboxNotificationRepository
	Engine      *redirect.Engine
	Broadcaster broadcaster.Broadcaster
	Logger      logger.Logger
}

// Service persists notifications with their resolved destinations and fans
// out realtime events.
type Service struct {
	repo        store.InboxNotificationRepository
	engine      *redirect.Engine
	broadcaster broadcaster.Broadcaster
	logger      logger.Logger
}

var errRepositoryRequired = errors.New("inbox: repository is required")

// NewService constructs the inbox service. The repository is required; the
// engine, broadcaster and logger fall back to working defaults.
func NewService(deps Dependencies) (*Service, error) {
	if deps.Repository == nil {
		return nil, errRepositoryRequired
	}
	if deps.Engine == nil {
		deps.Engine = redirect.New()
	}
	if deps.Broadcaster == nil {
		deps.Broadcaster = &broadcaster.Nop{}
	}
	if deps.Logger == nil {
		deps.Logger = &logger.Nop{}
	}
	return &Service{
		repo:        deps.Repository,
		engine:      deps.Engine,
		broadcaster: deps.Broadcaster,
		logger:      deps.Logger,
	}, nil
}

// Deliver resolves the notification's destination for the recipient's role
// and stores it as an unread inbox entry.
func (s *Service) Deliver(ctx context.Context, input DeliverInput) (*domain.InboxNotification, error) {
	if err := validateDeliverInput(input); err != nil {
		return nil, err
	}

	record := &domain.InboxNotification{
		UserID:   strings.TrimSpace(input.UserID),
		Role:     string(s.engine.NormalizeRole(input.Role)),
		Title:    input.Notification.Title,
		Message:  input.Notification.Message,
		Category: input.Notification.Category,
		Type:     input.Notification.Type,
		Unread:   true,
		Metadata: domain.JSONMap(input.Notification.Metadata.ToMap()),
	}
	if cfg := s.engine.Resolve(input.Notification, input.Role); cfg != nil {
		record.ActionURL = routes.BuildURL(*cfg)
	}

	if err := s.repo.Create(ctx, record); err != nil {
		return nil, err
	}
	s.emit(ctx, "inbox.created", record)
	s.logger.Info("inbox delivery created",
		logger.Field{Key: "user_id", Value: record.UserID},
		logger.Field{Key: "action_url", Value: record.ActionURL},
	)
	return record, nil
}

// List returns one page of the user's inbox. Filters reach the repository
// together with the pagination, so Total reports the overall match count.
func (s *Service) List(ctx context.Context, userID string, filters ListFilters) (store.InboxPage, error) {
	return s.repo.ListByUser(ctx, strings.TrimSpace(userID), store.InboxQuery{
		Limit:            filters.Limit,
		Offset:           filters.Offset,
		UnreadOnly:       filters.UnreadOnly,
		IncludeDismissed: filters.IncludeDismissed,
		Category:         filters.Category,
		Since:            filters.Since,
		Until:            filters.Until,
		Before:           filters.Before,
	})
}

// MarkRead toggles the unread flag for the provided entries. IDs that do not
// belong to the user are skipped to avoid leaking existence checks.
func (s *Service) MarkRead(ctx context.Context, userID string, ids []uuid.UUID, read bool) error {
	userID = strings.TrimSpace(userID)
	for _, id := range ids {
		record, err := s.repo.GetByID(ctx, id)
		if err != nil {
			return err
		}
		if record.UserID != userID {
			continue
		}
		if err := s.repo.MarkRead(ctx, id, read); err != nil {
			return err
		}
		record.Unread = !read
		s.emit(ctx, "inbox.updated", record)
	}
	return nil
}

// Dismiss hides an entry from listings and clears its unread flag.
func (s *Service) Dismiss(ctx context.Context, userID string, id uuid.UUID) error {
	record, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if record.UserID != strings.TrimSpace(userID) {
		return nil
	}
	if err := s.repo.Dismiss(ctx, id); err != nil {
		return err
	}
	record.DismissedAt = time.Now().UTC()
	record.Unread = false
	s.emit(ctx, "inbox.updated", record)
	return nil
}

// BadgeCount returns the unread count for the given user.
func (s *Service) BadgeCount(ctx context.Context, userID string) (int, error) {
	return s.repo.CountUnread(ctx, strings.TrimSpace(userID))
}

func (s *Service) emit(ctx context.Context, topic string, record *domain.InboxNotification) {
	if record == nil {
		return
	}
	event := broadcaster.Event{
		Topic: topic,
		Payload: map[string]any{
			"id":         record.ID.String(),
			"user_id":    record.UserID,
			"title":      record.Title,
			"action_url": record.ActionURL,
			"unread":     record.Unread,
			"dismissed":  !record.DismissedAt.IsZero(),
		},
	}
	if err := s.broadcaster.Broadcast(ctx, event); err != nil {
		s.logger.Warn("broadcast inbox event failed", logger.Field{Key: "error", Value: err})
	}
}

func validateDeliverInput(input DeliverInput) error {
	if strings.TrimSpace(input.UserID) == "" {
		return errors.New("inbox: user_id is required")
	}
	if strings.TrimSpace(input.Notification.Title) == "" {
		return errors.New("inbox: title is required")
	}
	return nil
}
