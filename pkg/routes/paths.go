// Package routes turns canonical, role-agnostic application routes into the
// role-prefixed paths actually mounted in the router, and serializes redirect
// configs into destination strings.
package routes

import (
	"strings"

	"github.com/redlitmus-in/MeterSquare-sub012/pkg/domain"
)

// SegmentOverride swaps a canonical route segment for one role. The router
// mounts a handful of screens under role-specific names; keeping the mapping
// table-driven means a renamed mount is data, not code.
type SegmentOverride struct {
	Role      domain.RoleSlug
	Canonical string
	Segment   string
}

// DefaultSegmentOverrides returns the known role-specific mounts. The
// project-manager dashboard labels the projects screen "my-projects".
func DefaultSegmentOverrides() []SegmentOverride {
	return []SegmentOverride{
		{Role: domain.RoleProjectManager, Canonical: "/projects", Segment: "/my-projects"},
	}
}

// Builder prefixes canonical routes with the recipient's mounted root.
type Builder struct {
	overrides []SegmentOverride
}

// Option configures the path builder.
type Option func(*Builder)

// WithSegmentOverrides replaces the role-specific segment table.
func WithSegmentOverrides(overrides []SegmentOverride) Option {
	return func(b *Builder) {
		b.overrides = overrides
	}
}

// NewBuilder constructs a path builder with the default override table.
func NewBuilder(opts ...Option) *Builder {
	b := &Builder{overrides: DefaultSegmentOverrides()}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// BuildPath prefixes canonical with the role's mounted root segment. The
// operation is idempotent: a path that already carries a known role prefix is
// returned unchanged. Unknown roles leave the canonical path as-is so
// downstream navigation still lands somewhere sensible.
func (b *Builder) BuildPath(role domain.RoleSlug, canonical string) string {
	if b == nil {
		return NewBuilder().BuildPath(role, canonical)
	}
	canonical = strings.TrimSpace(canonical)
	if canonical == "" {
		canonical = "/"
	}
	if !strings.HasPrefix(canonical, "/") {
		canonical = "/" + canonical
	}
	if prefixed(canonical) {
		return canonical
	}
	if !role.IsKnown() {
		return canonical
	}
	for _, override := range b.overrides {
		if override.Role != role {
			continue
		}
		if canonical == override.Canonical || strings.HasPrefix(canonical, override.Canonical+"/") {
			canonical = override.Segment + strings.TrimPrefix(canonical, override.Canonical)
			break
		}
	}
	return "/" + string(role) + canonical
}

// prefixed reports whether path already begins with a known role segment.
func prefixed(path string) bool {
	for _, slug := range domain.Slugs() {
		root := "/" + string(slug)
		if path == root || strings.HasPrefix(path, root+"/") {
			return true
		}
	}
	return false
}

var defaultBuilder = NewBuilder()

// BuildPath prefixes canonical using the package-level builder.
func BuildPath(role domain.RoleSlug, canonical string) string {
	return defaultBuilder.BuildPath(role, canonical)
}
