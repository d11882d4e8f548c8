package authz_test

import (
	"testing"

	"github.com/jdgames/account-service/internal/authz"
)

func TestPolicyMatrix(t *testing.T) {
	policy := authz.DefaultPolicy()

	granted := map[authz.Role][]authz.Capability{
		authz.RoleSuperAdmin: {
			authz.CapEditOwnAccount,
			authz.CapEditOtherAccounts,
			authz.CapSuspendAccounts,
			authz.CapEditRoles,
			authz.CapApproveMaps,
			authz.CapEditMaps,
			authz.CapAdminDashboard,
		},
		authz.RoleAdmin: {
			authz.CapEditOwnAccount,
			authz.CapEditOtherAccounts,
			authz.CapSuspendAccounts,
			authz.CapEditRoles,
			authz.CapApproveMaps,
			authz.CapEditMaps,
		},
		authz.RoleModerator: {
			authz.CapEditOwnAccount,
			authz.CapSuspendAccounts,
			authz.CapApproveMaps,
			authz.CapEditMaps,
		},
		authz.RolePlayer: {
			authz.CapEditOwnAccount,
		},
	}

	for role, caps := range granted {
		want := make(map[authz.Capability]bool, len(caps))
		for _, c := range caps {
			want[c] = true
		}
		for _, capability := range authz.AllCapabilities() {
			if got := policy.Allows(role, capability); got != want[capability] {
				t.Errorf("Allows(%s, %s) = %v, want %v", role, capability, got, want[capability])
			}
		}
	}
}

func TestUnknownRoleDeniesEverything(t *testing.T) {
	policy := authz.DefaultPolicy()
	for _, capability := range authz.AllCapabilities() {
		if policy.Allows(authz.Role("jd_overlord"), capability) {
			t.Errorf("unknown role granted %s", capability)
		}
	}
}

func TestParseRole(t *testing.T) {
	for _, valid := range []string{"super_admin", "admin", "moderator", "player"} {
		role, ok := authz.ParseRole(valid)
		if !ok || string(role) != valid {
			t.Errorf("ParseRole(%q) = (%q, %v)", valid, role, ok)
		}
	}
	for _, invalid := range []string{"", "root", "Player", "superadmin"} {
		if _, ok := authz.ParseRole(invalid); ok {
			t.Errorf("ParseRole(%q) accepted", invalid)
		}
	}
}
