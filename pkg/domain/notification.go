package domain

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// RoleSlug is the canonical role identifier used throughout routing.
type RoleSlug string

// Canonical role slugs. The set is closed; RoleUnknown is the sentinel for
// identifiers the normalizer cannot place.
const (
	RoleTechnicalDirector RoleSlug = "technical-director"
	RoleProjectManager    RoleSlug = "project-manager"
	RoleSiteEngineer      RoleSlug = "site-engineer"
	RoleEstimator         RoleSlug = "estimator"
	RoleBuyer             RoleSlug = "buyer"
	RoleProductionManager RoleSlug = "production-manager"
	RoleAdmin             RoleSlug = "admin"
	RoleMD                RoleSlug = "md"
	RoleOperationsManager RoleSlug = "operations-manager"
	RoleAccountsManager   RoleSlug = "accounts-manager"
	RoleFactorySupervisor RoleSlug = "factory-supervisor"
	RoleUnknown           RoleSlug = ""
)

// Slugs lists every known role slug.
func Slugs() []RoleSlug {
	return []RoleSlug{
		RoleTechnicalDirector,
		RoleProjectManager,
		RoleSiteEngineer,
		RoleEstimator,
		RoleBuyer,
		RoleProductionManager,
		RoleAdmin,
		RoleMD,
		RoleOperationsManager,
		RoleAccountsManager,
		RoleFactorySupervisor,
	}
}

// IsKnown reports whether the slug belongs to the canonical set.
func (s RoleSlug) IsKnown() bool {
	for _, slug := range Slugs() {
		if s == slug {
			return true
		}
	}
	return false
}

// Notification is the inbound record the redirect engine classifies. It is
// owned by the delivery subsystem and never mutated here.
type Notification struct {
	Title    string   `json:"title"`
	Message  string   `json:"message"`
	Category string   `json:"category,omitempty"`
	Type     string   `json:"type,omitempty"`
	Metadata Metadata `json:"metadata,omitempty"`
}

// Metadata carries the identifiers backend event producers attach to
// notifications. Every field is optional; producers tag inconsistently, so
// resolvers treat absence as "omit", never as an error. Keys the engine does
// not know about are preserved in Extra.
type Metadata struct {
	BOQID         any     `json:"boq_id,omitempty"`
	CRID          any     `json:"cr_id,omitempty"`
	VendorID      any     `json:"vendor_id,omitempty"`
	POID          any     `json:"po_id,omitempty"`
	MaterialID    any     `json:"material_id,omitempty"`
	ProjectID     any     `json:"project_id,omitempty"`
	TaskID        any     `json:"task_id,omitempty"`
	RequisitionID any     `json:"requisition_id,omitempty"`
	ReturnID      any     `json:"return_id,omitempty"`
	DispatchID    any     `json:"dispatch_id,omitempty"`
	GRNID         any     `json:"grn_id,omitempty"`
	Link          string  `json:"link,omitempty"`
	Extra         JSONMap `json:"extra,omitempty"`
}

// MetadataFromMap lifts a loose metadata bag into the structured form,
// keeping unrecognized keys in Extra.
func MetadataFromMap(raw map[string]any) Metadata {
	meta := Metadata{}
	for key, value := range raw {
		switch key {
		case "boq_id":
			meta.BOQID = value
		case "cr_id":
			meta.CRID = value
		case "vendor_id":
			meta.VendorID = value
		case "po_id":
			meta.POID = value
		case "material_id":
			meta.MaterialID = value
		case "project_id":
			meta.ProjectID = value
		case "task_id":
			meta.TaskID = value
		case "requisition_id":
			meta.RequisitionID = value
		case "return_id":
			meta.ReturnID = value
		case "dispatch_id":
			meta.DispatchID = value
		case "grn_id":
			meta.GRNID = value
		case "link":
			meta.Link = IDString(value)
		default:
			if meta.Extra == nil {
				meta.Extra = make(JSONMap)
			}
			meta.Extra[key] = value
		}
	}
	return meta
}

// ToMap flattens the structured metadata back into the wire shape.
func (m Metadata) ToMap() map[string]any {
	out := make(map[string]any)
	put := func(key string, value any) {
		if value != nil {
			out[key] = value
		}
	}
	put("boq_id", m.BOQID)
	put("cr_id", m.CRID)
	put("vendor_id", m.VendorID)
	put("po_id", m.POID)
	put("material_id", m.MaterialID)
	put("project_id", m.ProjectID)
	put("task_id", m.TaskID)
	put("requisition_id", m.RequisitionID)
	put("return_id", m.ReturnID)
	put("dispatch_id", m.DispatchID)
	put("grn_id", m.GRNID)
	if m.Link != "" {
		out["link"] = m.Link
	}
	for key, value := range m.Extra {
		out[key] = value
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

// RedirectConfig is the destination computed for a notification: an absolute,
// role-prefixed application path plus optional query parameters and hash.
type RedirectConfig struct {
	Path        string            `json:"path"`
	QueryParams map[string]string `json:"query_params,omitempty"`
	Hash        string            `json:"hash,omitempty"`
}

// IDString renders a loosely typed identifier as a query-parameter value.
// Empty strings and the JS artifacts "undefined"/"null" collapse to "".
func IDString(value any) string {
	switch v := value.(type) {
	case nil:
		return ""
	case string:
		s := strings.TrimSpace(v)
		if s == "undefined" || s == "null" {
			return ""
		}
		return s
	case int:
		return strconv.Itoa(v)
	case int32:
		return strconv.FormatInt(int64(v), 10)
	case int64:
		return strconv.FormatInt(v, 10)
	case uint64:
		return strconv.FormatUint(v, 10)
	case float32:
		return IDString(float64(v))
	case float64:
		// JSON decoding yields float64 for numeric identifiers.
		if v == math.Trunc(v) && math.Abs(v) < 1e15 {
			return strconv.FormatInt(int64(v), 10)
		}
		return strconv.FormatFloat(v, 'f', -1, 64)
	case fmt.Stringer:
		return strings.TrimSpace(v.String())
	default:
		return strings.TrimSpace(fmt.Sprint(v))
	}
}
