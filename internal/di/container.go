package di

import (
	"reflect"

	"github.com/uptrace/bun"

	"github.com/redlitmus-in/MeterSquare-sub012/pkg/commands"
	"github.com/redlitmus-in/MeterSquare-sub012/pkg/config"
	"github.com/redlitmus-in/MeterSquare-sub012/pkg/inbox"
	"github.com/redlitmus-in/MeterSquare-sub012/pkg/interfaces/broadcaster"
	"github.com/redlitmus-in/MeterSquare-sub012/pkg/interfaces/logger"
	"github.com/redlitmus-in/MeterSquare-sub012/pkg/interfaces/store"
	"github.com/redlitmus-in/MeterSquare-sub012/pkg/redirect"
	"github.com/redlitmus-in/MeterSquare-sub012/pkg/storage"
)

// Options configure the DI container. When no Repository is given the
// container builds one from DB, falling back to the in-memory store.
type Options struct {
	Config      config.Config
	Repository  store.InboxNotificationRepository
	DB          *bun.DB
	Logger      logger.Logger
	Broadcaster broadcaster.Broadcaster
	Rules       []redirect.Rule
}

// Container wires the engine, inbox service and command registry.
type Container struct {
	Config   config.Config
	Engine   *redirect.Engine
	Inbox    *inbox.Service
	Commands *commands.Registry
}

func isZeroConfig(cfg config.Config) bool {
	return reflect.ValueOf(cfg).IsZero()
}

// New constructs the container using the supplied options.
func New(opts Options) (*Container, error) {
	cfg := opts.Config
	if isZeroConfig(cfg) {
		cfg = config.Defaults()
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	lgr := opts.Logger
	if lgr == nil {
		lgr = &logger.Nop{}
	}

	engineOpts := []redirect.Option{
		redirect.WithNormalizer(cfg.Normalizer()),
		redirect.WithPathBuilder(cfg.PathBuilder()),
		redirect.WithLogger(lgr),
	}
	if len(opts.Rules) > 0 {
		engineOpts = append(engineOpts, redirect.WithRules(opts.Rules))
	}
	engine := redirect.New(engineOpts...)

	c := &Container{Config: cfg, Engine: engine}
	if cfg.Inbox.Disabled {
		return c, nil
	}

	repo := opts.Repository
	if repo == nil {
		if opts.DB != nil {
			repo = storage.NewBunProviders(opts.DB).Inbox
		} else {
			repo = storage.NewMemoryProviders().Inbox
		}
	}

	b := opts.Broadcaster
	if b == nil || cfg.Realtime.Disabled {
		b = &broadcaster.Nop{}
	}

	inboxSvc, err := inbox.New(inbox.Dependencies{
		Repository:  repo,
		Engine:      engine,
		Broadcaster: b,
		Logger:      lgr,
	})
	if err != nil {
		return nil, err
	}
	c.Inbox = inboxSvc

	cmdRegistry, err := commands.New(commands.Dependencies{
		Inbox:  inboxSvc,
		Logger: lgr,
	})
	if err != nil {
		return nil, err
	}
	c.Commands = cmdRegistry

	return c, nil
}
