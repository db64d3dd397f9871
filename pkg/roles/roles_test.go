package roles

import (
	"testing"

	"github.com/redlitmus-in/MeterSquare-sub012/pkg/domain"
)

func TestNormalizeVocabularies(t *testing.T) {
	cases := []struct {
		name string
		in   any
		want domain.RoleSlug
	}{
		{"slug", "technical-director", domain.RoleTechnicalDirector},
		{"snake case", "technical_director", domain.RoleTechnicalDirector},
		{"display label", "Technical Director", domain.RoleTechnicalDirector},
		{"extra spacing", "  Project   Manager ", domain.RoleProjectManager},
		{"alias", "TD", domain.RoleTechnicalDirector},
		{"site supervisor synonym", "Site Supervisor", domain.RoleSiteEngineer},
		{"numeric id", 3, domain.RoleTechnicalDirector},
		{"numeric string", "5", domain.RoleProjectManager},
		{"json number", float64(6), domain.RoleSiteEngineer},
		{"estimation stem", "Estimation Engineer", domain.RoleEstimator},
		{"procurement synonym", "procurement_officer", domain.RoleBuyer},
		{"managing director", "Managing Director", domain.RoleMD},
		{"production", "production_manager", domain.RoleProductionManager},
		{"factory", "Factory Supervisor", domain.RoleFactorySupervisor},
	}

	n := New()
	for _, tc := range cases {
		if got := n.Normalize(tc.in); got != tc.want {
			t.Fatalf("%s: Normalize(%v) = %q, want %q", tc.name, tc.in, got, tc.want)
		}
	}
}

func TestNormalizeUnknownInputs(t *testing.T) {
	n := New()
	for _, in := range []any{nil, "", "   ", "astronaut", 999, "42", struct{}{}} {
		if got := n.Normalize(in); got != domain.RoleUnknown {
			t.Fatalf("Normalize(%v) = %q, want unknown sentinel", in, got)
		}
	}
}

func TestNormalizeDeterministic(t *testing.T) {
	n := New()
	for range 3 {
		if got := n.Normalize("Site Engineer"); got != domain.RoleSiteEngineer {
			t.Fatalf("unexpected slug %q", got)
		}
	}
}

func TestWithNumericIDsOverride(t *testing.T) {
	n := New(WithNumericIDs(map[int]domain.RoleSlug{42: domain.RoleBuyer}))
	if got := n.Normalize(42); got != domain.RoleBuyer {
		t.Fatalf("expected override to win, got %q", got)
	}
	if got := n.Normalize(3); got != domain.RoleUnknown {
		t.Fatalf("expected default table replaced, got %q", got)
	}
}
