package redirect

import (
	"github.com/redlitmus-in/MeterSquare-sub012/pkg/domain"
	"github.com/redlitmus-in/MeterSquare-sub012/pkg/interfaces/logger"
	"github.com/redlitmus-in/MeterSquare-sub012/pkg/roles"
	"github.com/redlitmus-in/MeterSquare-sub012/pkg/routes"
)

// Engine resolves notifications to in-application destinations. It is a pure
// computation: no side effects, no shared mutable state, safe for concurrent
// use once constructed.
type Engine struct {
	rules  []Rule
	roles  *roles.Normalizer
	paths  *routes.Builder
	logger logger.Logger
}

// Option configures the engine.
type Option func(*Engine)

// WithRules replaces the routing table. Order is preserved as given.
func WithRules(rules []Rule) Option {
	return func(e *Engine) {
		if len(rules) > 0 {
			e.rules = rules
		}
	}
}

// WithNormalizer overrides the role normalizer.
func WithNormalizer(n *roles.Normalizer) Option {
	return func(e *Engine) {
		if n != nil {
			e.roles = n
		}
	}
}

// WithPathBuilder overrides the path builder.
func WithPathBuilder(b *routes.Builder) Option {
	return func(e *Engine) {
		if b != nil {
			e.paths = b
		}
	}
}

// WithLogger attaches a logger for match diagnostics.
func WithLogger(l logger.Logger) Option {
	return func(e *Engine) {
		if l != nil {
			e.logger = l
		}
	}
}

// New builds an engine with the default rule table, normalizer and paths.
func New(opts ...Option) *Engine {
	e := &Engine{
		rules:  DefaultRules(),
		roles:  roles.New(),
		paths:  routes.NewBuilder(),
		logger: &logger.Nop{},
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Resolve computes the destination for a notification received by a user with
// the given role. The role may be a numeric id, a numeric string, a backend
// name or a display label. A nil result means "no deep link": the caller
// should fall back to its default landing page, not treat it as an error.
func (e *Engine) Resolve(n domain.Notification, role any) *domain.RedirectConfig {
	if e == nil {
		return New().Resolve(n, role)
	}
	slug := e.roles.Normalize(role)
	ctx := NewMatchContext(n, slug)

	for i := range e.rules {
		rule := &e.rules[i]
		if rule.Match == nil || rule.Resolve == nil {
			continue
		}
		if !rule.Match(ctx) {
			continue
		}
		cfg := rule.Resolve(ctx)
		cfg.Path = e.paths.BuildPath(slug, cfg.Path)
		e.logger.Debug("redirect rule matched",
			logger.Field{Key: "rule", Value: rule.ID},
			logger.Field{Key: "role", Value: slug},
			logger.Field{Key: "path", Value: cfg.Path},
		)
		return sanitize(cfg)
	}

	if cfg := e.resolveLink(ctx.Meta.Link, slug); cfg != nil {
		e.logger.Debug("redirect resolved from link",
			logger.Field{Key: "role", Value: slug},
			logger.Field{Key: "path", Value: cfg.Path},
		)
		return sanitize(*cfg)
	}
	return nil
}

// NormalizeRole maps a raw role value through the engine's normalizer.
func (e *Engine) NormalizeRole(role any) domain.RoleSlug {
	if e == nil {
		return roles.Normalize(role)
	}
	return e.roles.Normalize(role)
}

// ResolveURL resolves and serializes in one step. ok is false when no deep
// link was found.
func (e *Engine) ResolveURL(n domain.Notification, role any) (string, bool) {
	cfg := e.Resolve(n, role)
	if cfg == nil {
		return "", false
	}
	return routes.BuildURL(*cfg), true
}

// sanitize strips query params holding absent values so serialized URLs never
// carry key=undefined artifacts; an emptied map becomes nil.
func sanitize(cfg domain.RedirectConfig) *domain.RedirectConfig {
	for key, value := range cfg.QueryParams {
		if value == "" || value == "undefined" || value == "null" {
			delete(cfg.QueryParams, key)
		}
	}
	if len(cfg.QueryParams) == 0 {
		cfg.QueryParams = nil
	}
	return &cfg
}
