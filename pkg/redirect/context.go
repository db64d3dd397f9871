// Package redirect computes the in-application destination for a
// notification: the rule table, the resolution engine and the link fallback.
package redirect

import (
	"strings"

	"github.com/redlitmus-in/MeterSquare-sub012/pkg/domain"
)

// MatchContext is the normalized view rules evaluate against. Built once per
// resolution call; title and message are lowercased up front so predicates
// stay cheap.
type MatchContext struct {
	Title        string
	Message      string
	TitleLower   string
	MessageLower string
	Category     string
	Type         string
	Meta         domain.Metadata
	Role         domain.RoleSlug
}

// NewMatchContext derives a match context from the notification and the
// already-normalized role.
func NewMatchContext(n domain.Notification, role domain.RoleSlug) *MatchContext {
	return &MatchContext{
		Title:        n.Title,
		Message:      n.Message,
		TitleLower:   strings.ToLower(n.Title),
		MessageLower: strings.ToLower(n.Message),
		Category:     strings.ToLower(strings.TrimSpace(n.Category)),
		Type:         strings.ToLower(strings.TrimSpace(n.Type)),
		Meta:         n.Metadata,
		Role:         role,
	}
}

// TitleHas reports whether the lowercased title contains every substring.
func (c *MatchContext) TitleHas(subs ...string) bool {
	return containsAll(c.TitleLower, subs)
}

// MessageHas reports whether the lowercased message contains every substring.
func (c *MatchContext) MessageHas(subs ...string) bool {
	return containsAll(c.MessageLower, subs)
}

// TextHas reports whether title or message contains every substring. Backend
// event sources tag inconsistently, so most predicates look at both.
func (c *MatchContext) TextHas(subs ...string) bool {
	return c.TitleHas(subs...) || c.MessageHas(subs...)
}

// CategoryIs reports whether the notification category matches any candidate.
func (c *MatchContext) CategoryIs(categories ...string) bool {
	for _, category := range categories {
		if c.Category == category {
			return true
		}
	}
	return false
}

// RoleIs reports whether the recipient holds any of the given roles.
func (c *MatchContext) RoleIs(slugs ...domain.RoleSlug) bool {
	for _, slug := range slugs {
		if c.Role == slug {
			return true
		}
	}
	return false
}

func containsAll(haystack string, subs []string) bool {
	if haystack == "" {
		return false
	}
	for _, sub := range subs {
		if !strings.Contains(haystack, sub) {
			return false
		}
	}
	return true
}
