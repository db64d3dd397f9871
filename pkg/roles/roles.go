// Package roles maps the role vocabularies used across the backend (numeric
// ids, snake_case names, display labels) onto canonical slugs.
package roles

import (
	"strconv"
	"strings"

	"github.com/redlitmus-in/MeterSquare-sub012/pkg/domain"
)

// DefaultNumericIDs maps legacy database role ids to slugs. The ids predate
// the slug vocabulary and still appear in notification payloads; they are
// kept as data so a backend renumbering is a configuration change.
func DefaultNumericIDs() map[int]domain.RoleSlug {
	return map[int]domain.RoleSlug{
		1:  domain.RoleAdmin,
		2:  domain.RoleMD,
		3:  domain.RoleTechnicalDirector,
		4:  domain.RoleEstimator,
		5:  domain.RoleProjectManager,
		6:  domain.RoleSiteEngineer,
		7:  domain.RoleBuyer,
		8:  domain.RoleProductionManager,
		9:  domain.RoleOperationsManager,
		10: domain.RoleAccountsManager,
		11: domain.RoleFactorySupervisor,
	}
}

// Normalizer resolves heterogeneous role identifiers to canonical slugs.
type Normalizer struct {
	numericIDs map[int]domain.RoleSlug
}

// Option configures the normalizer.
type Option func(*Normalizer)

// WithNumericIDs replaces the legacy id table.
func WithNumericIDs(ids map[int]domain.RoleSlug) Option {
	return func(n *Normalizer) {
		if len(ids) > 0 {
			n.numericIDs = ids
		}
	}
}

// New builds a normalizer with the default legacy id table.
func New(opts ...Option) *Normalizer {
	n := &Normalizer{numericIDs: DefaultNumericIDs()}
	for _, opt := range opts {
		opt(n)
	}
	return n
}

// Normalize maps a role identifier to its canonical slug. It accepts numeric
// ids, numeric strings, snake_case backend names and display labels, and is
// total: unrecognized input yields domain.RoleUnknown, never an error.
func (n *Normalizer) Normalize(role any) domain.RoleSlug {
	if n == nil {
		return New().Normalize(role)
	}
	switch v := role.(type) {
	case nil:
		return domain.RoleUnknown
	case domain.RoleSlug:
		return n.normalizeString(string(v))
	case string:
		return n.normalizeString(v)
	case int:
		return n.fromNumeric(v)
	case int32:
		return n.fromNumeric(int(v))
	case int64:
		return n.fromNumeric(int(v))
	case float32:
		return n.fromNumeric(int(v))
	case float64:
		return n.fromNumeric(int(v))
	default:
		return domain.RoleUnknown
	}
}

func (n *Normalizer) fromNumeric(id int) domain.RoleSlug {
	if slug, ok := n.numericIDs[id]; ok {
		return slug
	}
	return domain.RoleUnknown
}

func (n *Normalizer) normalizeString(raw string) domain.RoleSlug {
	name := strings.ToLower(strings.TrimSpace(raw))
	if name == "" {
		return domain.RoleUnknown
	}
	if id, err := strconv.Atoi(name); err == nil {
		return n.fromNumeric(id)
	}

	// Collapse separators so "Technical Director", "technical_director" and
	// "technical-director" compare equal.
	name = strings.NewReplacer("_", " ", "-", " ").Replace(name)
	fields := strings.Fields(name)
	name = strings.Join(fields, " ")

	if slug, ok := exactNames[name]; ok {
		return slug
	}

	has := func(subs ...string) bool {
		for _, sub := range subs {
			if !strings.Contains(name, sub) {
				return false
			}
		}
		return true
	}

	switch {
	case has("technical", "director"):
		return domain.RoleTechnicalDirector
	case has("managing", "director"):
		return domain.RoleMD
	case has("project", "manager"):
		return domain.RoleProjectManager
	case has("site", "engineer"), has("site", "supervisor"):
		return domain.RoleSiteEngineer
	case has("estimat"):
		return domain.RoleEstimator
	case has("buyer"), has("procurement"):
		return domain.RoleBuyer
	case has("production"):
		return domain.RoleProductionManager
	case has("factory"):
		return domain.RoleFactorySupervisor
	case has("operation"):
		return domain.RoleOperationsManager
	case has("account"):
		return domain.RoleAccountsManager
	case has("admin"):
		return domain.RoleAdmin
	default:
		return domain.RoleUnknown
	}
}

// exactNames resolves short aliases that substring checks would miss or
// misclassify.
var exactNames = map[string]domain.RoleSlug{
	"td":                 domain.RoleTechnicalDirector,
	"pm":                 domain.RoleProjectManager,
	"se":                 domain.RoleSiteEngineer,
	"md":                 domain.RoleMD,
	"technical director": domain.RoleTechnicalDirector,
	"project manager":    domain.RoleProjectManager,
	"site engineer":      domain.RoleSiteEngineer,
	"site supervisor":    domain.RoleSiteEngineer,
	"estimator":          domain.RoleEstimator,
	"buyer":              domain.RoleBuyer,
	"production manager": domain.RoleProductionManager,
	"admin":              domain.RoleAdmin,
	"operations manager": domain.RoleOperationsManager,
	"accounts manager":   domain.RoleAccountsManager,
	"factory supervisor": domain.RoleFactorySupervisor,
}

var defaultNormalizer = New()

// Normalize resolves role using the package-level normalizer.
func Normalize(role any) domain.RoleSlug {
	return defaultNormalizer.Normalize(role)
}
