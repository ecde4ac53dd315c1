package policy

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/kasa-dev/kasa/internal/model"
)

func TestCan(t *testing.T) {
	tests := []struct {
		role model.Role
		cap  Capability
		want bool
	}{
		{model.RoleAdmin, CapAssignOwner, true},
		{model.RoleAdmin, CapManageHousehold, true},
		{model.RoleAdmin, CapRecordOwnSpending, true},
		{model.RoleMember, CapAssignOwner, false},
		{model.RoleMember, CapManageHousehold, true},
		{model.RoleMember, CapRecordOwnSpending, true},
		{model.RoleKid, CapAssignOwner, false},
		{model.RoleKid, CapManageHousehold, false},
		{model.RoleKid, CapRecordOwnSpending, true},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Can(tt.role, tt.cap), "%s / %s", tt.role, tt.cap)
	}
}

func TestUnknownRoleHasNoCapabilities(t *testing.T) {
	assert.False(t, Can(model.Role("guest"), CapRecordOwnSpending))
	assert.False(t, Can(model.Role(""), CapAssignOwner))
}
