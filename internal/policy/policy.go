// Package policy defines the capability set per household role. It replaces
// inline role string comparisons with one explicit check point.
package policy

import "github.com/kasa-dev/kasa/internal/model"

// Capability names a single permitted action.
type Capability string

const (
	// CapRecordOwnSpending allows recording transactions against oneself.
	CapRecordOwnSpending Capability = "record_own_spending"
	// CapAssignOwner allows recording a transaction on behalf of another
	// household member.
	CapAssignOwner Capability = "assign_owner"
	// CapManageHousehold allows adding accounts, cards, loans and
	// subscriptions.
	CapManageHousehold Capability = "manage_household"
)

var roleCapabilities = map[model.Role]map[Capability]bool{
	model.RoleAdmin: {
		CapRecordOwnSpending: true,
		CapAssignOwner:       true,
		CapManageHousehold:   true,
	},
	model.RoleMember: {
		CapRecordOwnSpending: true,
		CapManageHousehold:   true,
	},
	model.RoleKid: {
		CapRecordOwnSpending: true,
	},
}

// Can reports whether a role holds a capability. Unknown roles hold none.
func Can(role model.Role, c Capability) bool {
	return roleCapabilities[role][c]
}
