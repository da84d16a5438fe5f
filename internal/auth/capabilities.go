package auth

import "stellar-cargo/internal/models"

// Capability is a named permission checked with Can.
type Capability string

const (
	CapViewDashboard   Capability = "view-dashboard"
	CapManageInventory Capability = "manage-inventory"
	CapViewReports     Capability = "view-reports"
	CapViewActivity    Capability = "view-activity"
	CapViewAdmin       Capability = "view-admin"
	CapManageSettings  Capability = "manage-settings"
)

var crewCapabilities = []Capability{
	CapViewDashboard, CapManageInventory, CapViewReports, CapViewActivity, CapManageSettings,
}

var rolePolicy = map[models.Role]map[Capability]struct{}{
	models.RoleAdmin:     capabilitySet(append([]Capability{CapViewAdmin}, crewCapabilities...)...),
	models.RoleAstronaut: capabilitySet(crewCapabilities...),
	models.RoleStaff:     capabilitySet(crewCapabilities...),
}

func capabilitySet(caps ...Capability) map[Capability]struct{} {
	set := make(map[Capability]struct{}, len(caps))
	for _, c := range caps {
		set[c] = struct{}{}
	}
	return set
}

// Can reports whether role holds capability. Unknown roles hold nothing.
func Can(role models.Role, capability Capability) bool {
	_, ok := rolePolicy[role][capability]
	return ok
}

// NavItem is one sidebar entry.
type NavItem struct {
	Title      string     `json:"title"`
	Href       string     `json:"href"`
	Capability Capability `json:"capability"`
}

var navItems = []NavItem{
	{Title: "Dashboard", Href: "/", Capability: CapViewDashboard},
	{Title: "Cargo", Href: "/cargo", Capability: CapManageInventory},
	{Title: "Astronauts", Href: "/astronauts", Capability: CapManageInventory},
	{Title: "Modules", Href: "/modules", Capability: CapManageInventory},
	{Title: "Missions", Href: "/missions", Capability: CapManageInventory},
	{Title: "Reports", Href: "/reports", Capability: CapViewReports},
	{Title: "Activity", Href: "/activity", Capability: CapViewActivity},
	{Title: "Admin", Href: "/admin", Capability: CapViewAdmin},
	{Title: "Settings", Href: "/settings", Capability: CapManageSettings},
}

// NavItems returns the navigation entries role may open, in menu order.
func NavItems(role models.Role) []NavItem {
	out := make([]NavItem, 0, len(navItems))
	for _, item := range navItems {
		if Can(role, item.Capability) {
			out = append(out, item)
		}
	}
	return out
}
