package redirect

import (
	"testing"

	"github.com/redlitmus-in/MeterSquare-sub012/pkg/domain"
)

// firstMatch scans the default table the way the engine does and returns the
// winning rule id.
func firstMatch(t *testing.T, n domain.Notification, role domain.RoleSlug) string {
	t.Helper()
	ctx := NewMatchContext(n, role)
	for _, rule := range DefaultRules() {
		if rule.Match(ctx) {
			return rule.ID
		}
	}
	return ""
}

func TestRuleIDsUnique(t *testing.T) {
	seen := make(map[string]int)
	for i, rule := range DefaultRules() {
		if rule.ID == "" {
			t.Fatalf("rule %d has empty id", i)
		}
		if rule.Match == nil || rule.Resolve == nil {
			t.Fatalf("rule %s is incomplete", rule.ID)
		}
		if prev, ok := seen[rule.ID]; ok {
			t.Fatalf("rule id %s declared at %d and %d", rule.ID, prev, i)
		}
		seen[rule.ID] = i
	}
}

// Each topic group declares specific outcomes before its catch-all. These
// fixtures intentionally satisfy both predicates and pin which one wins.
func TestSpecificRulesPrecedeGeneric(t *testing.T) {
	cases := []struct {
		name string
		n    domain.Notification
		role domain.RoleSlug
		want string
	}{
		{
			"asset requisition approved beats catch-all",
			domain.Notification{Title: "Asset Requisition Approved", Category: "assets"},
			domain.RoleSiteEngineer,
			"asset-requisition-approved",
		},
		{
			"returnable overdue beats catch-all",
			domain.Notification{Title: "Returnable asset overdue", Message: "returnable asset pending"},
			domain.RoleSiteEngineer,
			"returnable-asset-overdue",
		},
		{
			"support resolved beats catch-all",
			domain.Notification{Title: "Support ticket resolved", Category: "support"},
			domain.RoleAdmin,
			"support-ticket-resolved",
		},
		{
			"day extension approved beats catch-all",
			domain.Notification{Title: "Day extension request approved"},
			domain.RoleProjectManager,
			"day-extension-approved",
		},
		{
			"grn received beats grn catch-all",
			domain.Notification{Title: "GRN received at site"},
			domain.RoleSiteEngineer,
			"grn-received",
		},
		{
			"delivery note received beats catch-all",
			domain.Notification{Title: "Delivery note received"},
			domain.RoleSiteEngineer,
			"delivery-note-received",
		},
		{
			"cr approved beats pending keywords",
			domain.Notification{
				Title:   "Change Request Approved",
				Message: "Your pending change request raised last week was approved",
			},
			domain.RoleSiteEngineer,
			"change-request-approved",
		},
		{
			"vendor approved beats vendor catch-all",
			domain.Notification{Title: "Vendor Selection Approved", Message: "vendor chosen"},
			domain.RoleBuyer,
			"vendor-selection-approved",
		},
		{
			"po dispatched beats po approved",
			domain.Notification{Title: "Purchase Order Approved and Dispatched"},
			domain.RoleBuyer,
			"purchase-order-dispatched",
		},
		{
			"returnable due reminder only after overdue",
			domain.Notification{Title: "Returnable asset due tomorrow"},
			domain.RoleSiteEngineer,
			"returnable-asset-due",
		},
		{
			"delivery discrepancy beats received",
			domain.Notification{Title: "Delivery note received with discrepancies"},
			domain.RoleSiteEngineer,
			"delivery-note-discrepancy",
		},
		{
			"replenishment beats low stock alert",
			domain.Notification{Title: "Low stock replenished"},
			domain.RoleSiteEngineer,
			"stock-replenished",
		},
		{
			"boq resubmission beats submitted keyword",
			domain.Notification{Title: "BOQ resubmitted for approval"},
			domain.RoleEstimator,
			"boq-resubmitted",
		},
		{
			"project unassignment beats assignment keyword",
			domain.Notification{Title: "Unassigned from project Riverside"},
			domain.RoleSiteEngineer,
			"project-unassigned",
		},
		{
			"boq client approval beats internal approval",
			domain.Notification{Title: "BOQ Approved by Client"},
			domain.RoleEstimator,
			"boq-client-approved",
		},
		{
			"boq approved beats submitted keywords",
			domain.Notification{Title: "BOQ Approved", Message: "submitted boq was approved"},
			domain.RoleEstimator,
			"boq-approved",
		},
		{
			"material request approved beats catch-all",
			domain.Notification{Title: "Material Request Approved"},
			domain.RoleSiteEngineer,
			"material-request-approved",
		},
		{
			"labour allocation beats approval",
			domain.Notification{Title: "Labour requisition approved and allocated"},
			domain.RoleProjectManager,
			"labour-requisition-allocated",
		},
		{
			"task completion beats assignment",
			domain.Notification{Title: "Assigned task completed", Category: "task"},
			domain.RoleProjectManager,
			"task-completed",
		},
	}
	for _, tc := range cases {
		if got := firstMatch(t, tc.n, tc.role); got != tc.want {
			t.Fatalf("%s: matched %q, want %q", tc.name, got, tc.want)
		}
	}
}

// Category-qualified topics must win over the later keyword catch-alls that
// would otherwise swallow them.
func TestTopicPrecedence(t *testing.T) {
	cases := []struct {
		name string
		n    domain.Notification
		want string
	}{
		{
			"asset requisition wins over generic task keyword",
			domain.Notification{
				Title:    "Asset requisition task update",
				Category: "asset_requisition",
			},
			"asset-requisition",
		},
		{
			"vendor notification never routes through change requests",
			domain.Notification{
				Title:   "Vendor selected",
				Message: "vendor selected for your change request",
			},
			"vendor-selection",
		},
		{
			"low stock wins over change request fallback destination",
			domain.Notification{Title: "Low Stock Alert"},
			"low-stock-alert",
		},
	}
	for _, tc := range cases {
		if got := firstMatch(t, tc.n, domain.RoleSiteEngineer); got != tc.want {
			t.Fatalf("%s: matched %q, want %q", tc.name, got, tc.want)
		}
	}
}

// Outcome-specific phrasings map onto their own tabs rather than the topic
// catch-alls.
func TestOutcomeVariants(t *testing.T) {
	cases := []struct {
		name string
		n    domain.Notification
		role domain.RoleSlug
		want string
	}{
		{
			"support escalation",
			domain.Notification{Title: "Support ticket escalated", Category: "support"},
			domain.RoleAdmin,
			"support-ticket-escalated",
		},
		{
			"support reopened",
			domain.Notification{Title: "Support ticket reopened", Category: "support"},
			domain.RoleAdmin,
			"support-ticket-reopened",
		},
		{
			"day extension submitted",
			domain.Notification{Title: "Day extension requested for Skyline Tower"},
			domain.RoleProjectManager,
			"day-extension-requested",
		},
		{
			"disposal approval",
			domain.Notification{Title: "Disposal approved"},
			domain.RoleProductionManager,
			"disposal-approved",
		},
		{
			"damaged return processed",
			domain.Notification{Title: "Damaged return replacement processed"},
			domain.RoleProductionManager,
			"damaged-return-processed",
		},
		{
			"purchase order delivered",
			domain.Notification{Title: "Purchase Order Delivered"},
			domain.RoleBuyer,
			"purchase-order-delivered",
		},
		{
			"purchase order amended",
			domain.Notification{Title: "Purchase Order Amended"},
			domain.RoleBuyer,
			"purchase-order-amended",
		},
		{
			"vendor selection revision",
			domain.Notification{Title: "Vendor selection revision requested"},
			domain.RoleBuyer,
			"vendor-selection-revision",
		},
		{
			"boq revision",
			domain.Notification{Title: "BOQ revision requested"},
			domain.RoleEstimator,
			"boq-revision-requested",
		},
		{
			"material request fulfilled",
			domain.Notification{Title: "Material Request Fulfilled"},
			domain.RoleSiteEngineer,
			"material-request-fulfilled",
		},
		{
			"task overdue",
			domain.Notification{Title: "Task overdue", Category: "task"},
			domain.RoleProjectManager,
			"task-overdue",
		},
	}
	for _, tc := range cases {
		if got := firstMatch(t, tc.n, tc.role); got != tc.want {
			t.Fatalf("%s: matched %q, want %q", tc.name, got, tc.want)
		}
	}
}

func TestPurchaseOrderDeliveredRoutesSiteToGRN(t *testing.T) {
	engine := New()
	n := domain.Notification{
		Title:    "Purchase Order Delivered",
		Metadata: domain.Metadata{POID: "31"},
	}

	buyer := engine.Resolve(n, "buyer")
	if buyer == nil || buyer.Path != "/buyer/purchase-orders" {
		t.Fatalf("buyer: %+v", buyer)
	}
	if buyer.QueryParams["tab"] != "delivered" {
		t.Fatalf("buyer params: %v", buyer.QueryParams)
	}

	se := engine.Resolve(n, "site-engineer")
	if se == nil || se.Path != "/site-engineer/m2-store/grn" {
		t.Fatalf("site engineer: %+v", se)
	}
	if se.QueryParams["tab"] != "received" || se.QueryParams["po_id"] != "31" {
		t.Fatalf("site engineer params: %v", se.QueryParams)
	}
}

func TestDayExtensionRequestRoutesTDToApprovals(t *testing.T) {
	engine := New()
	n := domain.Notification{
		Title:    "Day extension requested",
		Metadata: domain.Metadata{ProjectID: 8},
	}

	td := engine.Resolve(n, "technical-director")
	if td == nil || td.Path != "/technical-director/pending-approvals" {
		t.Fatalf("technical director: %+v", td)
	}
	if td.QueryParams["tab"] != "day_extensions" {
		t.Fatalf("technical director params: %v", td.QueryParams)
	}

	pm := engine.Resolve(n, "project-manager")
	if pm == nil || pm.Path != "/project-manager/day-extensions" {
		t.Fatalf("project manager: %+v", pm)
	}
	if pm.QueryParams["tab"] != "pending" {
		t.Fatalf("project manager params: %v", pm.QueryParams)
	}
}

func TestChangeRequestPendingRoutesTDToApprovals(t *testing.T) {
	engine := New()
	n := domain.Notification{
		Title:    "New Change Request awaiting approval",
		Metadata: domain.Metadata{CRID: 12},
	}

	td := engine.Resolve(n, "technical-director")
	if td == nil || td.Path != "/technical-director/pending-approvals" {
		t.Fatalf("technical director: %+v", td)
	}
	if td.QueryParams["tab"] != "change_requests" {
		t.Fatalf("technical director params: %v", td.QueryParams)
	}

	se := engine.Resolve(n, "site-engineer")
	if se == nil || se.Path != "/site-engineer/change-requests" {
		t.Fatalf("site engineer: %+v", se)
	}
	if se.QueryParams["tab"] != "pending" {
		t.Fatalf("site engineer params: %v", se.QueryParams)
	}
}

func TestPurchaseOrderDispatchRoutesSiteToGRN(t *testing.T) {
	engine := New()
	n := domain.Notification{
		Title:    "Purchase Order Dispatched",
		Metadata: domain.Metadata{POID: "31"},
	}

	buyer := engine.Resolve(n, "buyer")
	if buyer == nil || buyer.Path != "/buyer/purchase-orders" {
		t.Fatalf("buyer: %+v", buyer)
	}
	se := engine.Resolve(n, "site-engineer")
	if se == nil || se.Path != "/site-engineer/m2-store/grn" {
		t.Fatalf("site engineer: %+v", se)
	}
	if se.QueryParams["po_id"] != "31" {
		t.Fatalf("site engineer params: %v", se.QueryParams)
	}
}

func TestProjectManagerProjectsMount(t *testing.T) {
	engine := New()
	cfg := engine.Resolve(domain.Notification{
		Title:    "You were assigned to project Riverside",
		Metadata: domain.Metadata{ProjectID: 8},
	}, "project-manager")
	if cfg == nil || cfg.Path != "/project-manager/my-projects" {
		t.Fatalf("project manager: %+v", cfg)
	}
	if cfg.QueryParams["tab"] != "assigned" || cfg.QueryParams["project_id"] != "8" {
		t.Fatalf("params: %v", cfg.QueryParams)
	}
}

func TestMetadataAttachedOnlyWhenPresent(t *testing.T) {
	engine := New()
	with := engine.Resolve(domain.Notification{
		Title:    "Labour requisition approved",
		Metadata: domain.Metadata{RequisitionID: 77},
	}, "project-manager")
	if with == nil || with.QueryParams["requisition_id"] != "77" {
		t.Fatalf("with id: %+v", with)
	}

	without := engine.Resolve(domain.Notification{
		Title: "Labour requisition approved",
	}, "project-manager")
	if without == nil {
		t.Fatal("expected a redirect")
	}
	if _, ok := without.QueryParams["requisition_id"]; ok {
		t.Fatalf("absent id must be omitted: %v", without.QueryParams)
	}
}
