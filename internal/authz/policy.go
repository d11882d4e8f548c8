// Package authz implements the role and capability model gating account
// mutations.
package authz

// Role is one of the closed set of account roles.
type Role string

const (
	RoleSuperAdmin Role = "super_admin"
	RoleAdmin      Role = "admin"
	RoleModerator  Role = "moderator"
	RolePlayer     Role = "player"
)

// ParseRole maps a wire value onto the closed role set.
func ParseRole(value string) (Role, bool) {
	switch Role(value) {
	case RoleSuperAdmin, RoleAdmin, RoleModerator, RolePlayer:
		return Role(value), true
	}
	return "", false
}

// Capability names one class of guarded operation.
type Capability string

const (
	CapEditOwnAccount    Capability = "accounts.edit_own"
	CapEditOtherAccounts Capability = "accounts.edit_other"
	CapSuspendAccounts   Capability = "accounts.suspend"
	CapEditRoles         Capability = "accounts.edit_roles"
	CapApproveMaps       Capability = "maps.approve"
	CapEditMaps          Capability = "maps.edit"
	CapAdminDashboard    Capability = "admin.dashboard"
)

// AllCapabilities lists every capability the policy can grant.
func AllCapabilities() []Capability {
	return []Capability{
		CapEditOwnAccount,
		CapEditOtherAccounts,
		CapSuspendAccounts,
		CapEditRoles,
		CapApproveMaps,
		CapEditMaps,
		CapAdminDashboard,
	}
}

// CapabilitySet is an immutable set of capabilities granted to a role.
type CapabilitySet map[Capability]struct{}

func grants(caps ...Capability) CapabilitySet {
	set := make(CapabilitySet, len(caps))
	for _, c := range caps {
		set[c] = struct{}{}
	}
	return set
}

// Policy maps roles to their capability sets. It is built once at startup
// and never mutated afterwards, so concurrent reads need no locking.
type Policy map[Role]CapabilitySet

// DefaultPolicy returns the static role policy table.
func DefaultPolicy() Policy {
	return Policy{
		RoleSuperAdmin: grants(
			CapEditOwnAccount,
			CapEditOtherAccounts,
			CapSuspendAccounts,
			CapEditRoles,
			CapApproveMaps,
			CapEditMaps,
			CapAdminDashboard,
		),
		RoleAdmin: grants(
			CapEditOwnAccount,
			CapEditOtherAccounts,
			CapSuspendAccounts,
			CapEditRoles,
			CapApproveMaps,
			CapEditMaps,
		),
		RoleModerator: grants(
			CapEditOwnAccount,
			CapSuspendAccounts,
			CapApproveMaps,
			CapEditMaps,
		),
		RolePlayer: grants(
			CapEditOwnAccount,
		),
	}
}

// Allows reports whether role holds capability. Unknown roles hold nothing.
func (p Policy) Allows(role Role, capability Capability) bool {
	caps, ok := p[role]
	if !ok {
		return false
	}
	_, ok = caps[capability]
	return ok
}
