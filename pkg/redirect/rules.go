package redirect

import (
	"github.com/redlitmus-in/MeterSquare-sub012/pkg/domain"
)

// Rule pairs a predicate over the match context with a resolver producing the
// destination. Match must be pure; rules are evaluated in declaration order
// and the first match wins, so the order of the table is part of the
// contract: within each topic the specific outcomes (approved, rejected,
// dispatched) are declared before the topic catch-all that would shadow them.
type Rule struct {
	ID      string
	Match   func(ctx *MatchContext) bool
	Resolve func(ctx *MatchContext) domain.RedirectConfig
}

// Canonical application routes referenced by resolvers. Role prefixes are
// applied by the engine after resolution.
const (
	pathProjects           = "/projects"
	pathPendingApprovals   = "/pending-approvals"
	pathChangeRequests     = "/change-requests"
	pathPurchaseOrders     = "/purchase-orders"
	pathVendorSelection    = "/vendor-selection"
	pathMaterialsCatalog   = "/m2-store/materials-catalog"
	pathGRN                = "/m2-store/grn"
	pathStoreDispatch      = "/m2-store/dispatch"
	pathDamagedReturns     = "/m2-store/damaged-returns"
	pathDisposal           = "/m2-store/disposal"
	pathBackupInventory    = "/m2-store/backup-inventory"
	pathAssetRequisitions  = "/asset-requisitions"
	pathReturnableAssets   = "/returnable-assets"
	pathSupportTickets     = "/support-tickets"
	pathDayExtensions      = "/day-extensions"
	pathDeliveryNotes      = "/delivery-notes"
	pathLabourRequisitions = "/labour-requisitions"
	pathMaterialRequests   = "/material-requests"
	pathTasks              = "/tasks"
)

type param func(*domain.RedirectConfig)

// destination assembles a redirect config from a canonical path and params.
func destination(path string, params ...param) domain.RedirectConfig {
	cfg := domain.RedirectConfig{Path: path}
	for _, apply := range params {
		apply(&cfg)
	}
	return cfg
}

// withParam attaches key=value, skipping absent or junk identifiers.
func withParam(key string, value any) param {
	return func(cfg *domain.RedirectConfig) {
		rendered := domain.IDString(value)
		if key == "" || rendered == "" {
			return
		}
		if cfg.QueryParams == nil {
			cfg.QueryParams = make(map[string]string)
		}
		cfg.QueryParams[key] = rendered
	}
}

func withTab(name string) param {
	return withParam("tab", name)
}

// hasPurchaseOrders reports whether the recipient's dashboard mounts the
// purchase-orders screen. Site/production/estimation roles track procurement
// outcomes through the change-requests screen instead.
func hasPurchaseOrders(ctx *MatchContext) bool {
	return ctx.RoleIs(
		domain.RoleBuyer,
		domain.RoleAdmin,
		domain.RoleMD,
		domain.RoleTechnicalDirector,
		domain.RoleOperationsManager,
		domain.RoleAccountsManager,
	)
}

// storeKeeper reports whether the recipient manages the m2-store screens.
func storeKeeper(ctx *MatchContext) bool {
	return ctx.RoleIs(domain.RoleProductionManager, domain.RoleFactorySupervisor)
}

// DefaultRules returns the routing table, ordered by topic. The keyword sets
// mirror the phrasing the backend event producers actually emit; matching is
// heuristic on purpose since many sources omit category tags.
func DefaultRules() []Rule {
	rules := assetRequisitionRules()
	rules = append(rules, returnableAssetRules()...)
	rules = append(rules, supportTicketRules()...)
	rules = append(rules, dayExtensionRules()...)
	rules = append(rules, inventoryRules()...)
	rules = append(rules, deliveryRules()...)
	rules = append(rules, lowStockRules()...)
	rules = append(rules, changeRequestRules()...)
	rules = append(rules, vendorSelectionRules()...)
	rules = append(rules, purchaseOrderRules()...)
	rules = append(rules, boqRules()...)
	rules = append(rules, projectAssignmentRules()...)
	rules = append(rules, materialRequestRules()...)
	rules = append(rules, labourRules()...)
	rules = append(rules, taskRules()...)
	return rules
}

func assetRequisitionRules() []Rule {
	topic := func(ctx *MatchContext) bool {
		return ctx.CategoryIs("assets", "asset_requisition") || ctx.TextHas("asset requisition")
	}
	return []Rule{
		{
			ID: "asset-requisition-approved",
			Match: func(ctx *MatchContext) bool {
				return topic(ctx) && ctx.TextHas("approved")
			},
			Resolve: func(ctx *MatchContext) domain.RedirectConfig {
				return destination(pathAssetRequisitions, withTab("approved"),
					withParam("requisition_id", ctx.Meta.RequisitionID))
			},
		},
		{
			ID: "asset-requisition-rejected",
			Match: func(ctx *MatchContext) bool {
				return topic(ctx) && ctx.TextHas("reject")
			},
			Resolve: func(ctx *MatchContext) domain.RedirectConfig {
				return destination(pathAssetRequisitions, withTab("rejected"),
					withParam("requisition_id", ctx.Meta.RequisitionID))
			},
		},
		{
			ID: "asset-requisition-dispatched",
			Match: func(ctx *MatchContext) bool {
				return topic(ctx) && ctx.TextHas("dispatch")
			},
			Resolve: func(ctx *MatchContext) domain.RedirectConfig {
				return destination(pathAssetRequisitions, withTab("dispatched"),
					withParam("requisition_id", ctx.Meta.RequisitionID),
					withParam("dispatch_id", ctx.Meta.DispatchID))
			},
		},
		{
			ID:    "asset-requisition",
			Match: topic,
			Resolve: func(ctx *MatchContext) domain.RedirectConfig {
				return destination(pathAssetRequisitions, withTab("pending"),
					withParam("requisition_id", ctx.Meta.RequisitionID))
			},
		},
	}
}

func returnableAssetRules() []Rule {
	topic := func(ctx *MatchContext) bool {
		return ctx.TextHas("returnable")
	}
	return []Rule{
		{
			ID: "returnable-asset-overdue",
			Match: func(ctx *MatchContext) bool {
				return topic(ctx) && ctx.TextHas("overdue")
			},
			Resolve: func(ctx *MatchContext) domain.RedirectConfig {
				return destination(pathReturnableAssets, withTab("overdue"),
					withParam("return_id", ctx.Meta.ReturnID))
			},
		},
		{
			// Placed after the overdue rule on purpose: "overdue" contains
			// "due", so reminders only land here while the asset is on time.
			ID: "returnable-asset-due",
			Match: func(ctx *MatchContext) bool {
				return topic(ctx) && ctx.TextHas("due")
			},
			Resolve: func(ctx *MatchContext) domain.RedirectConfig {
				return destination(pathReturnableAssets, withTab("due"),
					withParam("return_id", ctx.Meta.ReturnID))
			},
		},
		{
			ID: "returnable-asset-returned",
			Match: func(ctx *MatchContext) bool {
				return topic(ctx) && ctx.TextHas("returned")
			},
			Resolve: func(ctx *MatchContext) domain.RedirectConfig {
				return destination(pathReturnableAssets, withTab("returned"),
					withParam("return_id", ctx.Meta.ReturnID))
			},
		},
		{
			ID:    "returnable-asset",
			Match: topic,
			Resolve: func(ctx *MatchContext) domain.RedirectConfig {
				return destination(pathReturnableAssets,
					withParam("return_id", ctx.Meta.ReturnID))
			},
		},
	}
}

func supportTicketRules() []Rule {
	topic := func(ctx *MatchContext) bool {
		return ctx.CategoryIs("support") || ctx.TextHas("support ticket")
	}
	ticketID := func(ctx *MatchContext) any {
		if ctx.Meta.Extra == nil {
			return nil
		}
		return ctx.Meta.Extra["ticket_id"]
	}
	return []Rule{
		{
			ID: "support-ticket-escalated",
			Match: func(ctx *MatchContext) bool {
				return topic(ctx) && ctx.TextHas("escalat")
			},
			Resolve: func(ctx *MatchContext) domain.RedirectConfig {
				return destination(pathSupportTickets, withTab("escalated"),
					withParam("ticket_id", ticketID(ctx)))
			},
		},
		{
			ID: "support-ticket-resolved",
			Match: func(ctx *MatchContext) bool {
				return topic(ctx) && (ctx.TextHas("resolved") || ctx.TextHas("closed"))
			},
			Resolve: func(ctx *MatchContext) domain.RedirectConfig {
				return destination(pathSupportTickets, withTab("resolved"),
					withParam("ticket_id", ticketID(ctx)))
			},
		},
		{
			ID: "support-ticket-assigned",
			Match: func(ctx *MatchContext) bool {
				return topic(ctx) && ctx.TextHas("assign")
			},
			Resolve: func(ctx *MatchContext) domain.RedirectConfig {
				return destination(pathSupportTickets, withTab("assigned"),
					withParam("ticket_id", ticketID(ctx)))
			},
		},
		{
			ID: "support-ticket-reopened",
			Match: func(ctx *MatchContext) bool {
				return topic(ctx) && ctx.TextHas("reopen")
			},
			Resolve: func(ctx *MatchContext) domain.RedirectConfig {
				return destination(pathSupportTickets, withTab("open"),
					withParam("ticket_id", ticketID(ctx)))
			},
		},
		{
			ID:    "support-ticket",
			Match: topic,
			Resolve: func(ctx *MatchContext) domain.RedirectConfig {
				return destination(pathSupportTickets, withTab("open"),
					withParam("ticket_id", ticketID(ctx)))
			},
		},
	}
}

func dayExtensionRules() []Rule {
	topic := func(ctx *MatchContext) bool {
		return ctx.TextHas("day extension")
	}
	return []Rule{
		{
			ID: "day-extension-approved",
			Match: func(ctx *MatchContext) bool {
				return topic(ctx) && ctx.TextHas("approved")
			},
			Resolve: func(ctx *MatchContext) domain.RedirectConfig {
				return destination(pathDayExtensions, withTab("approved"),
					withParam("project_id", ctx.Meta.ProjectID))
			},
		},
		{
			ID: "day-extension-rejected",
			Match: func(ctx *MatchContext) bool {
				return topic(ctx) && ctx.TextHas("reject")
			},
			Resolve: func(ctx *MatchContext) domain.RedirectConfig {
				return destination(pathDayExtensions, withTab("rejected"),
					withParam("project_id", ctx.Meta.ProjectID))
			},
		},
		{
			// After approved/rejected: "request approved" must keep landing
			// on the outcome tabs.
			ID: "day-extension-requested",
			Match: func(ctx *MatchContext) bool {
				return topic(ctx) && (ctx.TextHas("request") || ctx.TextHas("submitted"))
			},
			Resolve: func(ctx *MatchContext) domain.RedirectConfig {
				if ctx.RoleIs(domain.RoleTechnicalDirector) {
					return destination(pathPendingApprovals, withTab("day_extensions"),
						withParam("project_id", ctx.Meta.ProjectID))
				}
				return destination(pathDayExtensions, withTab("pending"),
					withParam("project_id", ctx.Meta.ProjectID))
			},
		},
		{
			ID:    "day-extension",
			Match: topic,
			Resolve: func(ctx *MatchContext) domain.RedirectConfig {
				if ctx.RoleIs(domain.RoleTechnicalDirector) {
					return destination(pathPendingApprovals, withTab("day_extensions"),
						withParam("project_id", ctx.Meta.ProjectID))
				}
				return destination(pathDayExtensions, withTab("pending"),
					withParam("project_id", ctx.Meta.ProjectID))
			},
		},
	}
}

func inventoryRules() []Rule {
	return []Rule{
		{
			ID: "inventory-backup",
			Match: func(ctx *MatchContext) bool {
				return ctx.TextHas("backup", "inventory") || ctx.TextHas("backup", "stock")
			},
			Resolve: func(ctx *MatchContext) domain.RedirectConfig {
				return destination(pathBackupInventory,
					withParam("material_id", ctx.Meta.MaterialID))
			},
		},
		{
			ID: "disposal-approved",
			Match: func(ctx *MatchContext) bool {
				return (ctx.TextHas("disposal") || ctx.TextHas("disposed")) && ctx.TextHas("approved")
			},
			Resolve: func(ctx *MatchContext) domain.RedirectConfig {
				return destination(pathDisposal, withTab("approved"),
					withParam("material_id", ctx.Meta.MaterialID))
			},
		},
		{
			ID: "inventory-disposal",
			Match: func(ctx *MatchContext) bool {
				return ctx.TextHas("disposal") || ctx.TextHas("disposed")
			},
			Resolve: func(ctx *MatchContext) domain.RedirectConfig {
				return destination(pathDisposal,
					withParam("material_id", ctx.Meta.MaterialID))
			},
		},
		{
			ID: "damaged-return-processed",
			Match: func(ctx *MatchContext) bool {
				return ctx.TextHas("damaged", "return") &&
					(ctx.TextHas("process") || ctx.TextHas("replac"))
			},
			Resolve: func(ctx *MatchContext) domain.RedirectConfig {
				return destination(pathDamagedReturns, withTab("processed"),
					withParam("return_id", ctx.Meta.ReturnID),
					withParam("material_id", ctx.Meta.MaterialID))
			},
		},
		{
			ID: "damaged-return",
			Match: func(ctx *MatchContext) bool {
				return ctx.TextHas("damaged", "return")
			},
			Resolve: func(ctx *MatchContext) domain.RedirectConfig {
				return destination(pathDamagedReturns,
					withParam("return_id", ctx.Meta.ReturnID),
					withParam("material_id", ctx.Meta.MaterialID))
			},
		},
		{
			ID: "grn-received",
			Match: func(ctx *MatchContext) bool {
				return (ctx.TextHas("grn") || ctx.TextHas("goods received")) && ctx.TextHas("receiv")
			},
			Resolve: func(ctx *MatchContext) domain.RedirectConfig {
				return destination(pathGRN, withTab("received"),
					withParam("grn_id", ctx.Meta.GRNID),
					withParam("po_id", ctx.Meta.POID))
			},
		},
		{
			ID: "grn",
			Match: func(ctx *MatchContext) bool {
				return ctx.TextHas("grn") || ctx.TextHas("goods received")
			},
			Resolve: func(ctx *MatchContext) domain.RedirectConfig {
				return destination(pathGRN,
					withParam("grn_id", ctx.Meta.GRNID),
					withParam("po_id", ctx.Meta.POID))
			},
		},
	}
}

func deliveryRules() []Rule {
	topic := func(ctx *MatchContext) bool {
		return ctx.TextHas("delivery note")
	}
	return []Rule{
		{
			// Ahead of the received rule: a note received with shortages
			// needs the discrepancy screen, not the happy path.
			ID: "delivery-note-discrepancy",
			Match: func(ctx *MatchContext) bool {
				return topic(ctx) && (ctx.TextHas("discrepanc") || ctx.TextHas("mismatch") ||
					ctx.TextHas("shortage"))
			},
			Resolve: func(ctx *MatchContext) domain.RedirectConfig {
				return destination(pathDeliveryNotes, withTab("discrepancies"),
					withParam("dispatch_id", ctx.Meta.DispatchID))
			},
		},
		{
			ID: "delivery-note-received",
			Match: func(ctx *MatchContext) bool {
				return topic(ctx) && (ctx.TextHas("delivered") || ctx.TextHas("received"))
			},
			Resolve: func(ctx *MatchContext) domain.RedirectConfig {
				return destination(pathDeliveryNotes, withTab("received"),
					withParam("dispatch_id", ctx.Meta.DispatchID))
			},
		},
		{
			ID:    "delivery-note",
			Match: topic,
			Resolve: func(ctx *MatchContext) domain.RedirectConfig {
				return destination(pathDeliveryNotes,
					withParam("dispatch_id", ctx.Meta.DispatchID))
			},
		},
		{
			ID: "material-dispatched",
			Match: func(ctx *MatchContext) bool {
				return ctx.TextHas("material", "dispatch")
			},
			Resolve: func(ctx *MatchContext) domain.RedirectConfig {
				if storeKeeper(ctx) {
					return destination(pathStoreDispatch,
						withParam("dispatch_id", ctx.Meta.DispatchID))
				}
				return destination(pathDeliveryNotes,
					withParam("dispatch_id", ctx.Meta.DispatchID))
			},
		},
	}
}

func lowStockRules() []Rule {
	return []Rule{
		{
			ID: "stock-replenished",
			Match: func(ctx *MatchContext) bool {
				return ctx.TextHas("replenish") || ctx.TextHas("restock")
			},
			Resolve: func(ctx *MatchContext) domain.RedirectConfig {
				if storeKeeper(ctx) {
					return destination(pathBackupInventory,
						withParam("material_id", ctx.Meta.MaterialID))
				}
				return destination(pathChangeRequests, withTab("approved"),
					withParam("cr_id", ctx.Meta.CRID))
			},
		},
		{
			ID: "low-stock-alert",
			Match: func(ctx *MatchContext) bool {
				return ctx.TextHas("low stock") || ctx.TextHas("stock low") || ctx.TextHas("out of stock")
			},
			Resolve: func(ctx *MatchContext) domain.RedirectConfig {
				if storeKeeper(ctx) {
					return destination(pathMaterialsCatalog,
						withParam("material_id", ctx.Meta.MaterialID))
				}
				// Roles without store screens raise a change request to
				// replenish instead.
				return destination(pathChangeRequests)
			},
		},
	}
}

func changeRequestRules() []Rule {
	topic := func(ctx *MatchContext) bool {
		if ctx.TextHas("vendor") {
			return false
		}
		return ctx.CategoryIs("change_request") ||
			ctx.TextHas("change request") ||
			ctx.TextHas("materials purchase")
	}
	return []Rule{
		{
			ID: "change-request-approved",
			Match: func(ctx *MatchContext) bool {
				return topic(ctx) && ctx.TextHas("approved")
			},
			Resolve: func(ctx *MatchContext) domain.RedirectConfig {
				return destination(pathChangeRequests, withTab("approved"),
					withParam("cr_id", ctx.Meta.CRID))
			},
		},
		{
			ID: "change-request-rejected",
			Match: func(ctx *MatchContext) bool {
				return topic(ctx) && ctx.TextHas("reject")
			},
			Resolve: func(ctx *MatchContext) domain.RedirectConfig {
				return destination(pathChangeRequests, withTab("rejected"),
					withParam("cr_id", ctx.Meta.CRID))
			},
		},
		{
			ID: "change-request-pending",
			Match: func(ctx *MatchContext) bool {
				return topic(ctx) && (ctx.TextHas("awaiting") || ctx.TextHas("pending") ||
					ctx.TextHas("submitted") || ctx.TextHas("raised"))
			},
			Resolve: func(ctx *MatchContext) domain.RedirectConfig {
				if ctx.RoleIs(domain.RoleTechnicalDirector) {
					return destination(pathPendingApprovals, withTab("change_requests"),
						withParam("cr_id", ctx.Meta.CRID))
				}
				return destination(pathChangeRequests, withTab("pending"),
					withParam("cr_id", ctx.Meta.CRID))
			},
		},
		{
			ID:    "change-request",
			Match: topic,
			Resolve: func(ctx *MatchContext) domain.RedirectConfig {
				return destination(pathChangeRequests,
					withParam("cr_id", ctx.Meta.CRID))
			},
		},
	}
}

func vendorSelectionRules() []Rule {
	topic := func(ctx *MatchContext) bool {
		return ctx.TextHas("vendor")
	}
	return []Rule{
		{
			ID: "vendor-selection-approved",
			Match: func(ctx *MatchContext) bool {
				return topic(ctx) && ctx.TextHas("approved")
			},
			Resolve: func(ctx *MatchContext) domain.RedirectConfig {
				if hasPurchaseOrders(ctx) {
					return destination(pathPurchaseOrders, withTab("approved"),
						withParam("po_id", ctx.Meta.POID),
						withParam("cr_id", ctx.Meta.CRID))
				}
				return destination(pathChangeRequests, withTab("approved"),
					withParam("cr_id", ctx.Meta.CRID))
			},
		},
		{
			ID: "vendor-selection-rejected",
			Match: func(ctx *MatchContext) bool {
				return topic(ctx) && ctx.TextHas("reject")
			},
			Resolve: func(ctx *MatchContext) domain.RedirectConfig {
				if ctx.RoleIs(domain.RoleBuyer) {
					return destination(pathVendorSelection, withTab("rejected"),
						withParam("cr_id", ctx.Meta.CRID))
				}
				return destination(pathChangeRequests, withTab("rejected"),
					withParam("cr_id", ctx.Meta.CRID))
			},
		},
		{
			ID: "vendor-selection-revision",
			Match: func(ctx *MatchContext) bool {
				return topic(ctx) && (ctx.TextHas("revis") || ctx.TextHas("resubmit"))
			},
			Resolve: func(ctx *MatchContext) domain.RedirectConfig {
				switch {
				case ctx.RoleIs(domain.RoleTechnicalDirector):
					return destination(pathPendingApprovals, withTab("vendor_selection"),
						withParam("cr_id", ctx.Meta.CRID))
				case ctx.RoleIs(domain.RoleBuyer):
					return destination(pathVendorSelection, withTab("revision"),
						withParam("cr_id", ctx.Meta.CRID))
				default:
					return destination(pathChangeRequests, withTab("pending"),
						withParam("cr_id", ctx.Meta.CRID))
				}
			},
		},
		{
			ID: "vendor-selection-pending",
			Match: func(ctx *MatchContext) bool {
				return topic(ctx) && (ctx.TextHas("awaiting") || ctx.TextHas("pending") ||
					ctx.TextHas("selection required"))
			},
			Resolve: func(ctx *MatchContext) domain.RedirectConfig {
				switch {
				case ctx.RoleIs(domain.RoleTechnicalDirector):
					return destination(pathPendingApprovals, withTab("vendor_selection"),
						withParam("cr_id", ctx.Meta.CRID))
				case ctx.RoleIs(domain.RoleBuyer):
					return destination(pathVendorSelection,
						withParam("cr_id", ctx.Meta.CRID))
				default:
					return destination(pathChangeRequests, withTab("pending"),
						withParam("cr_id", ctx.Meta.CRID))
				}
			},
		},
		{
			ID:    "vendor-selection",
			Match: topic,
			Resolve: func(ctx *MatchContext) domain.RedirectConfig {
				if ctx.RoleIs(domain.RoleBuyer) {
					return destination(pathVendorSelection,
						withParam("vendor_id", ctx.Meta.VendorID),
						withParam("cr_id", ctx.Meta.CRID))
				}
				return destination(pathChangeRequests,
					withParam("cr_id", ctx.Meta.CRID))
			},
		},
	}
}

func purchaseOrderRules() []Rule {
	topic := func(ctx *MatchContext) bool {
		return ctx.TextHas("purchase order")
	}
	return []Rule{
		{
			ID: "purchase-order-dispatched",
			Match: func(ctx *MatchContext) bool {
				return topic(ctx) && ctx.TextHas("dispatch")
			},
			Resolve: func(ctx *MatchContext) domain.RedirectConfig {
				if hasPurchaseOrders(ctx) {
					return destination(pathPurchaseOrders, withTab("dispatched"),
						withParam("po_id", ctx.Meta.POID))
				}
				// Site-side roles receive the goods, so land on the GRN screen.
				return destination(pathGRN,
					withParam("po_id", ctx.Meta.POID))
			},
		},
		{
			ID: "purchase-order-delivered",
			Match: func(ctx *MatchContext) bool {
				return topic(ctx) && ctx.TextHas("deliver")
			},
			Resolve: func(ctx *MatchContext) domain.RedirectConfig {
				if hasPurchaseOrders(ctx) {
					return destination(pathPurchaseOrders, withTab("delivered"),
						withParam("po_id", ctx.Meta.POID))
				}
				return destination(pathGRN, withTab("received"),
					withParam("po_id", ctx.Meta.POID))
			},
		},
		{
			ID: "purchase-order-approved",
			Match: func(ctx *MatchContext) bool {
				return topic(ctx) && ctx.TextHas("approved")
			},
			Resolve: func(ctx *MatchContext) domain.RedirectConfig {
				if hasPurchaseOrders(ctx) {
					return destination(pathPurchaseOrders, withTab("approved"),
						withParam("po_id", ctx.Meta.POID))
				}
				return destination(pathChangeRequests, withTab("approved"),
					withParam("cr_id", ctx.Meta.CRID))
			},
		},
		{
			ID: "purchase-order-rejected",
			Match: func(ctx *MatchContext) bool {
				return topic(ctx) && ctx.TextHas("reject")
			},
			Resolve: func(ctx *MatchContext) domain.RedirectConfig {
				if hasPurchaseOrders(ctx) {
					return destination(pathPurchaseOrders, withTab("rejected"),
						withParam("po_id", ctx.Meta.POID))
				}
				return destination(pathChangeRequests, withTab("rejected"),
					withParam("cr_id", ctx.Meta.CRID))
			},
		},
		{
			ID: "purchase-order-amended",
			Match: func(ctx *MatchContext) bool {
				return topic(ctx) && ctx.TextHas("amend")
			},
			Resolve: func(ctx *MatchContext) domain.RedirectConfig {
				if hasPurchaseOrders(ctx) {
					return destination(pathPurchaseOrders, withTab("amended"),
						withParam("po_id", ctx.Meta.POID))
				}
				return destination(pathChangeRequests,
					withParam("cr_id", ctx.Meta.CRID))
			},
		},
		{
			ID:    "purchase-order",
			Match: topic,
			Resolve: func(ctx *MatchContext) domain.RedirectConfig {
				if hasPurchaseOrders(ctx) {
					return destination(pathPurchaseOrders, withTab("pending"),
						withParam("po_id", ctx.Meta.POID))
				}
				return destination(pathChangeRequests,
					withParam("cr_id", ctx.Meta.CRID))
			},
		},
	}
}

func boqRules() []Rule {
	topic := func(ctx *MatchContext) bool {
		return ctx.TextHas("boq")
	}
	boqHome := func(ctx *MatchContext, tab string) domain.RedirectConfig {
		if ctx.RoleIs(domain.RoleTechnicalDirector) {
			return destination(pathPendingApprovals, withTab(tab),
				withParam("boq_id", ctx.Meta.BOQID))
		}
		return destination(pathProjects, withTab(tab),
			withParam("boq_id", ctx.Meta.BOQID))
	}
	return []Rule{
		{
			ID: "boq-client-approved",
			Match: func(ctx *MatchContext) bool {
				return topic(ctx) && ctx.TextHas("client") &&
					(ctx.TextHas("approved") || ctx.TextHas("accepted"))
			},
			Resolve: func(ctx *MatchContext) domain.RedirectConfig {
				return boqHome(ctx, "client_response")
			},
		},
		{
			ID: "boq-client-rejected",
			Match: func(ctx *MatchContext) bool {
				return topic(ctx) && ctx.TextHas("client") &&
					(ctx.TextHas("reject") || ctx.TextHas("declined"))
			},
			Resolve: func(ctx *MatchContext) domain.RedirectConfig {
				return boqHome(ctx, "client_response")
			},
		},
		{
			ID: "boq-sent-to-client",
			Match: func(ctx *MatchContext) bool {
				return topic(ctx) && (ctx.TextHas("sent to client") || ctx.TextHas("shared with client"))
			},
			Resolve: func(ctx *MatchContext) domain.RedirectConfig {
				return destination(pathProjects, withTab("sent"),
					withParam("boq_id", ctx.Meta.BOQID))
			},
		},
		{
			ID: "boq-approved",
			Match: func(ctx *MatchContext) bool {
				return topic(ctx) && ctx.TextHas("approved")
			},
			Resolve: func(ctx *MatchContext) domain.RedirectConfig {
				return boqHome(ctx, "approved")
			},
		},
		{
			ID: "boq-rejected",
			Match: func(ctx *MatchContext) bool {
				return topic(ctx) && ctx.TextHas("reject")
			},
			Resolve: func(ctx *MatchContext) domain.RedirectConfig {
				return boqHome(ctx, "rejected")
			},
		},
		{
			// Before the submitted rule: "resubmitted" contains "submitted"
			// and must keep its own tab.
			ID: "boq-resubmitted",
			Match: func(ctx *MatchContext) bool {
				return topic(ctx) && ctx.TextHas("resubmit")
			},
			Resolve: func(ctx *MatchContext) domain.RedirectConfig {
				return boqHome(ctx, "resubmitted")
			},
		},
		{
			ID: "boq-revision-requested",
			Match: func(ctx *MatchContext) bool {
				return topic(ctx) && (ctx.TextHas("revis") || ctx.TextHas("rework"))
			},
			Resolve: func(ctx *MatchContext) domain.RedirectConfig {
				return destination(pathProjects, withTab("revision"),
					withParam("boq_id", ctx.Meta.BOQID))
			},
		},
		{
			ID: "boq-submitted",
			Match: func(ctx *MatchContext) bool {
				return topic(ctx) && (ctx.TextHas("submitted") || ctx.TextHas("awaiting") ||
					ctx.TextHas("pending"))
			},
			Resolve: func(ctx *MatchContext) domain.RedirectConfig {
				return boqHome(ctx, "pending")
			},
		},
		{
			ID: "boq",
			Match: func(ctx *MatchContext) bool {
				if topic(ctx) {
					return true
				}
				return ctx.CategoryIs("approval") && domain.IDString(ctx.Meta.BOQID) != ""
			},
			Resolve: func(ctx *MatchContext) domain.RedirectConfig {
				return destination(pathProjects,
					withParam("boq_id", ctx.Meta.BOQID))
			},
		},
	}
}

func projectAssignmentRules() []Rule {
	return []Rule{
		{
			// Before the assigned rule: "unassigned" contains "assign".
			ID: "project-unassigned",
			Match: func(ctx *MatchContext) bool {
				return ctx.TextHas("project") &&
					(ctx.TextHas("unassign") || ctx.TextHas("removed"))
			},
			Resolve: func(ctx *MatchContext) domain.RedirectConfig {
				return destination(pathProjects,
					withParam("project_id", ctx.Meta.ProjectID))
			},
		},
		{
			ID: "project-assigned",
			Match: func(ctx *MatchContext) bool {
				return ctx.TextHas("project", "assign") ||
					(ctx.CategoryIs("project") && ctx.TextHas("assign"))
			},
			Resolve: func(ctx *MatchContext) domain.RedirectConfig {
				return destination(pathProjects, withTab("assigned"),
					withParam("project_id", ctx.Meta.ProjectID))
			},
		},
	}
}

func materialRequestRules() []Rule {
	topic := func(ctx *MatchContext) bool {
		return ctx.TextHas("material request")
	}
	return []Rule{
		{
			ID: "material-request-approved",
			Match: func(ctx *MatchContext) bool {
				return topic(ctx) && ctx.TextHas("approved")
			},
			Resolve: func(ctx *MatchContext) domain.RedirectConfig {
				return destination(pathMaterialRequests, withTab("approved"),
					withParam("material_id", ctx.Meta.MaterialID),
					withParam("project_id", ctx.Meta.ProjectID))
			},
		},
		{
			ID: "material-request-rejected",
			Match: func(ctx *MatchContext) bool {
				return topic(ctx) && ctx.TextHas("reject")
			},
			Resolve: func(ctx *MatchContext) domain.RedirectConfig {
				return destination(pathMaterialRequests, withTab("rejected"),
					withParam("material_id", ctx.Meta.MaterialID),
					withParam("project_id", ctx.Meta.ProjectID))
			},
		},
		{
			ID: "material-request-fulfilled",
			Match: func(ctx *MatchContext) bool {
				return topic(ctx) && (ctx.TextHas("fulfill") || ctx.TextHas("issued"))
			},
			Resolve: func(ctx *MatchContext) domain.RedirectConfig {
				return destination(pathMaterialRequests, withTab("fulfilled"),
					withParam("material_id", ctx.Meta.MaterialID),
					withParam("dispatch_id", ctx.Meta.DispatchID),
					withParam("project_id", ctx.Meta.ProjectID))
			},
		},
		{
			ID:    "material-request",
			Match: topic,
			Resolve: func(ctx *MatchContext) domain.RedirectConfig {
				return destination(pathMaterialRequests, withTab("pending"),
					withParam("material_id", ctx.Meta.MaterialID),
					withParam("project_id", ctx.Meta.ProjectID))
			},
		},
	}
}

func labourRules() []Rule {
	topic := func(ctx *MatchContext) bool {
		return ctx.CategoryIs("labour") || ctx.TextHas("labour") || ctx.TextHas("labor")
	}
	return []Rule{
		{
			ID: "labour-requisition-allocated",
			Match: func(ctx *MatchContext) bool {
				return topic(ctx) && ctx.TextHas("allocat")
			},
			Resolve: func(ctx *MatchContext) domain.RedirectConfig {
				return destination(pathLabourRequisitions, withTab("allocated"),
					withParam("requisition_id", ctx.Meta.RequisitionID))
			},
		},
		{
			ID: "labour-requisition-approved",
			Match: func(ctx *MatchContext) bool {
				return topic(ctx) && ctx.TextHas("approved")
			},
			Resolve: func(ctx *MatchContext) domain.RedirectConfig {
				return destination(pathLabourRequisitions, withTab("approved"),
					withParam("requisition_id", ctx.Meta.RequisitionID))
			},
		},
		{
			ID: "labour-requisition-rejected",
			Match: func(ctx *MatchContext) bool {
				return topic(ctx) && ctx.TextHas("reject")
			},
			Resolve: func(ctx *MatchContext) domain.RedirectConfig {
				return destination(pathLabourRequisitions, withTab("rejected"),
					withParam("requisition_id", ctx.Meta.RequisitionID))
			},
		},
		{
			ID:    "labour-requisition",
			Match: topic,
			Resolve: func(ctx *MatchContext) domain.RedirectConfig {
				return destination(pathLabourRequisitions, withTab("pending"),
					withParam("requisition_id", ctx.Meta.RequisitionID))
			},
		},
	}
}

func taskRules() []Rule {
	topic := func(ctx *MatchContext) bool {
		return ctx.CategoryIs("task") || ctx.TextHas("task")
	}
	return []Rule{
		{
			ID: "task-overdue",
			Match: func(ctx *MatchContext) bool {
				return topic(ctx) && ctx.TextHas("overdue")
			},
			Resolve: func(ctx *MatchContext) domain.RedirectConfig {
				return destination(pathTasks, withTab("overdue"),
					withParam("task_id", ctx.Meta.TaskID))
			},
		},
		{
			ID: "task-completed",
			Match: func(ctx *MatchContext) bool {
				return topic(ctx) && (ctx.TextHas("completed") || ctx.TextHas("done"))
			},
			Resolve: func(ctx *MatchContext) domain.RedirectConfig {
				return destination(pathTasks, withTab("completed"),
					withParam("task_id", ctx.Meta.TaskID))
			},
		},
		{
			ID: "task-assigned",
			Match: func(ctx *MatchContext) bool {
				return topic(ctx) && ctx.TextHas("assign")
			},
			Resolve: func(ctx *MatchContext) domain.RedirectConfig {
				return destination(pathTasks, withTab("assigned"),
					withParam("task_id", ctx.Meta.TaskID))
			},
		},
		{
			ID:    "task",
			Match: topic,
			Resolve: func(ctx *MatchContext) domain.RedirectConfig {
				return destination(pathTasks,
					withParam("task_id", ctx.Meta.TaskID))
			},
		},
	}
}
