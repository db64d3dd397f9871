package config

import (
	"encoding/json"
	"fmt"
	"reflect"
	"strconv"

	"github.com/goliatone/go-config/cfgx"

	"github.com/redlitmus-in/MeterSquare-sub012/pkg/domain"
	"github.com/redlitmus-in/MeterSquare-sub012/pkg/roles"
	"github.com/redlitmus-in/MeterSquare-sub012/pkg/routes"
)

// Config captures module-level configuration knobs. Feature packages (the
// redirect engine, inbox, realtime hooks) pull from these nested structs.
type Config struct {
	Roles    RolesConfig    `mapstructure:"roles" json:"roles"`
	Routes   RoutesConfig   `mapstructure:"routes" json:"routes"`
	Inbox    InboxConfig    `mapstructure:"inbox" json:"inbox"`
	Realtime RealtimeConfig `mapstructure:"realtime" json:"realtime"`
}

// RolesConfig carries the legacy numeric role id table. Keys are decimal id
// strings so the table can come straight from JSON/YAML sources.
type RolesConfig struct {
	NumericIDs map[string]string `mapstructure:"numeric_ids" json:"numeric_ids"`
}

// RoutesConfig lists role-specific route segment overrides.
type RoutesConfig struct {
	SegmentOverrides []SegmentOverride `mapstructure:"segment_overrides" json:"segment_overrides"`
}

// SegmentOverride mirrors routes.SegmentOverride in config form.
type SegmentOverride struct {
	Role      string `mapstructure:"role" json:"role"`
	Canonical string `mapstructure:"canonical" json:"canonical"`
	Segment   string `mapstructure:"segment" json:"segment"`
}

// InboxConfig controls the in-app notification center. The zero value keeps
// it enabled.
type InboxConfig struct {
	Disabled bool `mapstructure:"disabled" json:"disabled"`
}

// RealtimeConfig controls optional broadcaster integration. The zero value
// keeps it enabled.
type RealtimeConfig struct {
	Disabled bool `mapstructure:"disabled" json:"disabled"`
}

// Defaults returns the baseline configuration.
func Defaults() Config {
	numericIDs := make(map[string]string)
	for id, slug := range roles.DefaultNumericIDs() {
		numericIDs[strconv.Itoa(id)] = string(slug)
	}
	overrides := make([]SegmentOverride, 0)
	for _, override := range routes.DefaultSegmentOverrides() {
		overrides = append(overrides, SegmentOverride{
			Role:      string(override.Role),
			Canonical: override.Canonical,
			Segment:   override.Segment,
		})
	}
	return Config{
		Roles:  RolesConfig{NumericIDs: numericIDs},
		Routes: RoutesConfig{SegmentOverrides: overrides},
	}
}

// Validate ensures required fields are present and sane.
func (c *Config) Validate() error {
	for id, slug := range c.Roles.NumericIDs {
		if _, err := strconv.Atoi(id); err != nil {
			return fmt.Errorf("roles.numeric_ids: key %q is not numeric", id)
		}
		if !domain.RoleSlug(slug).IsKnown() {
			return fmt.Errorf("roles.numeric_ids: unknown slug %q for id %s", slug, id)
		}
	}
	for _, override := range c.Routes.SegmentOverrides {
		if !domain.RoleSlug(override.Role).IsKnown() {
			return fmt.Errorf("routes.segment_overrides: unknown role %q", override.Role)
		}
		if override.Canonical == "" || override.Canonical[0] != '/' {
			return fmt.Errorf("routes.segment_overrides: canonical %q must be absolute", override.Canonical)
		}
		if override.Segment == "" || override.Segment[0] != '/' {
			return fmt.Errorf("routes.segment_overrides: segment %q must be absolute", override.Segment)
		}
	}
	return nil
}

// NumericIDTable converts the configured id table into the normalizer's form.
func (c Config) NumericIDTable() map[int]domain.RoleSlug {
	table := make(map[int]domain.RoleSlug, len(c.Roles.NumericIDs))
	for id, slug := range c.Roles.NumericIDs {
		numeric, err := strconv.Atoi(id)
		if err != nil {
			continue
		}
		table[numeric] = domain.RoleSlug(slug)
	}
	return table
}

// Normalizer builds a role normalizer from the configured id table.
func (c Config) Normalizer() *roles.Normalizer {
	return roles.New(roles.WithNumericIDs(c.NumericIDTable()))
}

// PathBuilder builds a path builder from the configured overrides.
func (c Config) PathBuilder() *routes.Builder {
	overrides := make([]routes.SegmentOverride, 0, len(c.Routes.SegmentOverrides))
	for _, override := range c.Routes.SegmentOverrides {
		overrides = append(overrides, routes.SegmentOverride{
			Role:      domain.RoleSlug(override.Role),
			Canonical: override.Canonical,
			Segment:   override.Segment,
		})
	}
	return routes.NewBuilder(routes.WithSegmentOverrides(overrides))
}

// Load decodes arbitrary input (struct, map, cfg struct) using cfgx helpers.
// While cfgx.Build still returns zero values, we fallback to a lightweight
// decoder to keep smoke tests meaningful. Once cfgx is fully implemented we
// can drop the fallback.
func Load(input any, opts ...LoadOption) (Config, error) {
	settings := loadOptions{}
	for _, opt := range opts {
		opt(&settings)
	}

	cfg, err := cfgx.Build(input, settings.buildOpts...)
	if err != nil {
		return Config{}, err
	}

	if isZero(cfg) {
		if err := decodeFallback(input, &cfg); err != nil {
			return Config{}, err
		}
	}

	cfg = cfg.withDefaults()

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// LoadOption lets callers amend cfgx build options.
type LoadOption func(*loadOptions)

type loadOptions struct {
	buildOpts []cfgx.Option[Config]
}

// WithBuildOptions forwards cfgx options (duration hooks, preprocessors, etc.).
func WithBuildOptions(opts ...cfgx.Option[Config]) LoadOption {
	return func(lo *loadOptions) {
		lo.buildOpts = append(lo.buildOpts, opts...)
	}
}

func (c Config) withDefaults() Config {
	defaults := Defaults()

	if len(c.Roles.NumericIDs) == 0 {
		c.Roles.NumericIDs = defaults.Roles.NumericIDs
	}
	if c.Routes.SegmentOverrides == nil {
		c.Routes.SegmentOverrides = defaults.Routes.SegmentOverrides
	}
	return c
}

func isZero(cfg Config) bool {
	return reflect.DeepEqual(cfg, Config{})
}

func decodeFallback(input any, cfg *Config) error {
	switch v := input.(type) {
	case nil:
		return nil
	case Config:
		*cfg = v
		return nil
	case *Config:
		if v != nil {
			*cfg = *v
		}
		return nil
	case map[string]any:
		return decodeMap(v, cfg)
	default:
		return fmt.Errorf("unsupported config input type: %T", input)
	}
}

func decodeMap(input map[string]any, cfg *Config) error {
	if input == nil {
		return nil
	}
	payload, err := json.Marshal(input)
	if err != nil {
		return err
	}
	return json.Unmarshal(payload, cfg)
}
