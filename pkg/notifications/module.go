// Package notifications assembles the redirect engine, inbox service and
// command registry behind a single entry point.
package notifications

import (
	"github.com/uptrace/bun"

	"github.com/redlitmus-in/MeterSquare-sub012/internal/di"
	"github.com/redlitmus-in/MeterSquare-sub012/pkg/commands"
	"github.com/redlitmus-in/MeterSquare-sub012/pkg/config"
	"github.com/redlitmus-in/MeterSquare-sub012/pkg/domain"
	"github.com/redlitmus-in/MeterSquare-sub012/pkg/inbox"
	"github.com/redlitmus-in/MeterSquare-sub012/pkg/interfaces/broadcaster"
	"github.com/redlitmus-in/MeterSquare-sub012/pkg/interfaces/logger"
	"github.com/redlitmus-in/MeterSquare-sub012/pkg/interfaces/store"
	"github.com/redlitmus-in/MeterSquare-sub012/pkg/redirect"
)

// ModuleOptions configure the module facade. Everything is optional: a zero
// value yields an in-memory module with the default rule table. Supplying DB
// switches persistence to the bun-backed repositories.
type ModuleOptions struct {
	Config      config.Config
	Repository  store.InboxNotificationRepository
	DB          *bun.DB
	Logger      logger.Logger
	Broadcaster broadcaster.Broadcaster
	Rules       []redirect.Rule
}

// Module bundles the container and exposes high-level accessors.
type Module struct {
	container *di.Container
}

// NewModule assembles the engine, inbox service and command registry.
func NewModule(opts ModuleOptions) (*Module, error) {
	container, err := di.New(di.Options{
		Config:      opts.Config,
		Repository:  opts.Repository,
		DB:          opts.DB,
		Logger:      opts.Logger,
		Broadcaster: opts.Broadcaster,
		Rules:       opts.Rules,
	})
	if err != nil {
		return nil, err
	}
	return &Module{container: container}, nil
}

// Engine returns the redirect engine.
func (m *Module) Engine() *redirect.Engine {
	if m == nil || m.container == nil {
		return nil
	}
	return m.container.Engine
}

// Inbox exposes the inbox service. Nil when the inbox is disabled.
func (m *Module) Inbox() *inbox.Service {
	if m == nil || m.container == nil {
		return nil
	}
	return m.container.Inbox
}

// Commands returns the go-command registry. Nil when the inbox is disabled.
func (m *Module) Commands() *commands.Registry {
	if m == nil || m.container == nil {
		return nil
	}
	return m.container.Commands
}

// Resolve computes the destination for a notification and role pair.
func (m *Module) Resolve(n domain.Notification, role any) *domain.RedirectConfig {
	return m.Engine().Resolve(n, role)
}
