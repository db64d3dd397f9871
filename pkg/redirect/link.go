package redirect

import (
	"net/url"
	"strings"

	"github.com/redlitmus-in/MeterSquare-sub012/pkg/domain"
)

// resolveLink is the fallback for notifications no structured rule claims:
// it interprets the free-form metadata link. Attempts, in order: the /boq/
// deep-link convention, a regular URL parse, and finally bare-path treatment.
// It never fails; a malformed link degrades to the bare path.
func (e *Engine) resolveLink(link string, role domain.RoleSlug) *domain.RedirectConfig {
	link = strings.TrimSpace(link)
	if link == "" {
		return nil
	}

	if idx := strings.Index(link, "/boq/"); idx >= 0 {
		id := link[idx+len("/boq/"):]
		if q := strings.Index(id, "?"); q >= 0 {
			id = id[:q]
		}
		path := pathProjects
		if role == domain.RoleTechnicalDirector {
			path = pathPendingApprovals
		}
		cfg := destination(path, withTab("pending"), withParam("boq_id", id))
		cfg.Path = e.paths.BuildPath(role, cfg.Path)
		return &cfg
	}

	if parsed, err := url.Parse(link); err == nil {
		path := parsed.Path
		if path == "" {
			path = "/"
		}
		if !strings.HasPrefix(path, "/") {
			path = "/" + path
		}
		cfg := domain.RedirectConfig{Path: path}
		if query := parsed.Query(); len(query) > 0 {
			cfg.QueryParams = make(map[string]string, len(query))
			for key, values := range query {
				if len(values) > 0 {
					cfg.QueryParams[key] = values[0]
				}
			}
		}
		if parsed.Fragment != "" {
			cfg.Hash = "#" + parsed.Fragment
		}
		return &cfg
	}

	if !strings.HasPrefix(link, "/") {
		link = "/" + link
	}
	return &domain.RedirectConfig{Path: link}
}
