package routes

import (
	"testing"

	"github.com/redlitmus-in/MeterSquare-sub012/pkg/domain"
)

func TestBuildURL(t *testing.T) {
	cases := []struct {
		name string
		cfg  domain.RedirectConfig
		want string
	}{
		{
			"path only",
			domain.RedirectConfig{Path: "/estimator/projects"},
			"/estimator/projects",
		},
		{
			"sorted query params",
			domain.RedirectConfig{
				Path:        "/estimator/projects",
				QueryParams: map[string]string{"tab": "client_response", "boq_id": "726"},
			},
			"/estimator/projects?boq_id=726&tab=client_response",
		},
		{
			"encoded values",
			domain.RedirectConfig{
				Path:        "/buyer/vendor-selection",
				QueryParams: map[string]string{"q": "steel rods"},
			},
			"/buyer/vendor-selection?q=steel+rods",
		},
		{
			"hash verbatim",
			domain.RedirectConfig{Path: "/site-engineer/tasks", Hash: "#comments"},
			"/site-engineer/tasks#comments",
		},
		{
			"hash gains prefix when missing",
			domain.RedirectConfig{Path: "/site-engineer/tasks", Hash: "comments"},
			"/site-engineer/tasks#comments",
		},
		{
			"empty values dropped",
			domain.RedirectConfig{
				Path:        "/admin/projects",
				QueryParams: map[string]string{"tab": "pending", "boq_id": ""},
			},
			"/admin/projects?tab=pending",
		},
		{
			"empty config",
			domain.RedirectConfig{},
			"/",
		},
	}
	for _, tc := range cases {
		if got := BuildURL(tc.cfg); got != tc.want {
			t.Fatalf("%s: BuildURL = %q, want %q", tc.name, got, tc.want)
		}
	}
}
