// Package commands exposes go-command handlers backed by the module services.
package commands

import (
	command "github.com/goliatone/go-command"

	internalcommands "github.com/redlitmus-in/MeterSquare-sub012/internal/commands"
	"github.com/redlitmus-in/MeterSquare-sub012/pkg/inbox"
	"github.com/redlitmus-in/MeterSquare-sub012/pkg/interfaces/logger"
)

// Re-export request types so consumers need not import internal packages.
type (
	DeliverNotification = internalcommands.DeliverNotification
	InboxMarkRead       = internalcommands.InboxMarkRead
	InboxDismiss        = internalcommands.InboxDismiss
)

// Registry exposes go-command compatible handlers backed by the module services.
type Registry struct {
	Catalog             *internalcommands.Catalog
	DeliverNotification command.Commander[DeliverNotification]
	InboxMarkRead       command.Commander[InboxMarkRead]
	InboxDismiss        command.Commander[InboxDismiss]
}

// Dependencies mirror the internal command dependencies but keep them public.
type Dependencies struct {
	Inbox  *inbox.Service
	Logger logger.Logger
}

// New builds the registry using the provided dependencies.
func New(deps Dependencies) (*Registry, error) {
	catalog, err := internalcommands.NewCatalog(internalcommands.Dependencies{
		Inbox:  deps.Inbox,
		Logger: deps.Logger,
	})
	if err != nil {
		return nil, err
	}
	return &Registry{
		Catalog:             catalog,
		DeliverNotification: catalog.DeliverNotification,
		InboxMarkRead:       catalog.InboxMarkRead,
		InboxDismiss:        catalog.InboxDismiss,
	}, nil
}

// Commanders returns every handler so callers can register them with
// go-command registries.
func (r *Registry) Commanders() []any {
	if r == nil {
		return nil
	}
	return []any{
		r.DeliverNotification,
		r.InboxMarkRead,
		r.InboxDismiss,
	}
}
