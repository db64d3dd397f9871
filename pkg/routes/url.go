package routes

import (
	"net/url"
	"strings"

	"github.com/redlitmus-in/MeterSquare-sub012/pkg/domain"
)

// BuildURL serializes a redirect config into a single destination string:
// path, then URL-encoded query parameters, then the hash verbatim. Pure and
// total; an empty config yields "/".
func BuildURL(cfg domain.RedirectConfig) string {
	var sb strings.Builder
	path := cfg.Path
	if path == "" {
		path = "/"
	}
	sb.WriteString(path)

	if len(cfg.QueryParams) > 0 {
		values := url.Values{}
		for key, value := range cfg.QueryParams {
			if key == "" || value == "" {
				continue
			}
			values.Set(key, value)
		}
		// Encode sorts keys, keeping output deterministic.
		if encoded := values.Encode(); encoded != "" {
			sb.WriteString("?")
			sb.WriteString(encoded)
		}
	}

	if cfg.Hash != "" {
		if !strings.HasPrefix(cfg.Hash, "#") {
			sb.WriteString("#")
		}
		sb.WriteString(cfg.Hash)
	}
	return sb.String()
}
