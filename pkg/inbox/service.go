// Package inbox exposes the persisted notification inbox to consumers
// without leaking the internal service.
package inbox

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/redlitmus-in/MeterSquare-sub012/internal/inbox"
	"github.com/redlitmus-in/MeterSquare-sub012/pkg/domain"
	"github.com/redlitmus-in/MeterSquare-sub012/pkg/interfaces/broadcaster"
	"github.com/redlitmus-in/MeterSquare-sub012/pkg/interfaces/logger"
	"github.com/redlitmus-in/MeterSquare-sub012/pkg/interfaces/store"
	"github.com/redlitmus-in/MeterSquare-sub012/pkg/redirect"
)

// Re-export commonly used types so callers don't depend on the internal package.
type (
	DeliverInput = inbox.DeliverInput
	ListFilters  = inbox.ListFilters
)

// Dependencies wires storage, the redirect engine and realtime hooks.
type Dependencies struct {
	Repository  store.InboxNotificationRepository
	Engine      *redirect.Engine
	Broadcaster broadcaster.Broadcaster
	Logger      logger.Logger
}

// Service exposes inbox management helpers to consumers.
type Service struct {
	internal *inbox.Service
}

var errServiceNotInitialised = errors.New("inbox: service not initialised")

// New constructs the facade.
func New(deps Dependencies) (*Service, error) {
	internalSvc, err := inbox.NewService(inbox.Dependencies{
		Repository:  deps.Repository,
		Engine:      deps.Engine,
		Broadcaster: deps.Broadcaster,
		Logger:      deps.Logger,
	})
	if err != nil {
		return nil, err
	}
	return &Service{internal: internalSvc}, nil
}

// Deliver stores a notification for a recipient with its resolved destination.
func (s *Service) Deliver(ctx context.Context, input DeliverInput) (*domain.InboxNotification, error) {
	if s == nil || s.internal == nil {
		return nil, errServiceNotInitialised
	}
	return s.internal.Deliver(ctx, input)
}

// List returns one page of a user's inbox with the overall match count.
func (s *Service) List(ctx context.Context, userID string, filters ListFilters) (store.InboxPage, error) {
	if s == nil || s.internal == nil {
		return store.InboxPage{}, errServiceNotInitialised
	}
	return s.internal.List(ctx, userID, filters)
}

// MarkRead toggles unread flags for the provided IDs.
func (s *Service) MarkRead(ctx context.Context, userID string, ids []string, read bool) error {
	if s == nil || s.internal == nil {
		return errServiceNotInitialised
	}
	uuids, err := parseUUIDs(ids)
	if err != nil {
		return err
	}
	return s.internal.MarkRead(ctx, userID, uuids, read)
}

// Dismiss hides an inbox entry from listings and badge counts.
func (s *Service) Dismiss(ctx context.Context, userID, id string) error {
	if s == nil || s.internal == nil {
		return errServiceNotInitialised
	}
	recordID, err := uuid.Parse(id)
	if err != nil {
		return err
	}
	return s.internal.Dismiss(ctx, userID, recordID)
}

// BadgeCount returns unread counts.
func (s *Service) BadgeCount(ctx context.Context, userID string) (int, error) {
	if s == nil || s.internal == nil {
		return 0, errServiceNotInitialised
	}
	return s.internal.BadgeCount(ctx, userID)
}

func parseUUIDs(ids []string) ([]uuid.UUID, error) {
	results := make([]uuid.UUID, 0, len(ids))
	for _, raw := range ids {
		if raw == "" {
			continue
		}
		id, err := uuid.Parse(raw)
		if err != nil {
			return nil, err
		}
		results = append(results, id)
	}
	return results, nil
}
