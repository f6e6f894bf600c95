package policy

import (
	"testing"

	"sparestock/internal/domain/entity"

	"github.com/stretchr/testify/assert"
)

func TestAllows_ProductViewingIsOpenToAllRoles(t *testing.T) {
	for _, role := range []entity.Role{entity.RoleAdmin, entity.RoleManager, entity.RoleStaff, entity.RoleBuyer} {
		assert.True(t, Allows(role, ActionViewProducts), "role %s should view products", role)
		assert.True(t, Allows(role, ActionViewOwnOrders), "role %s should view own orders", role)
		assert.True(t, Allows(role, ActionPlaceOrder), "role %s should place orders", role)
	}
}

func TestAllows_ProductMutationRequiresAdminOrManager(t *testing.T) {
	assert.True(t, Allows(entity.RoleAdmin, ActionManageProducts))
	assert.True(t, Allows(entity.RoleManager, ActionManageProducts))
	assert.False(t, Allows(entity.RoleStaff, ActionManageProducts))
	assert.False(t, Allows(entity.RoleBuyer, ActionManageProducts))
}

func TestAllows_OrderOversightDeniedToBuyer(t *testing.T) {
	assert.True(t, Allows(entity.RoleAdmin, ActionViewAllOrders))
	assert.True(t, Allows(entity.RoleManager, ActionViewAllOrders))
	assert.True(t, Allows(entity.RoleStaff, ActionViewAllOrders))
	assert.False(t, Allows(entity.RoleBuyer, ActionViewAllOrders))
}

func TestAllows_UnknownRoleOrActionIsDenied(t *testing.T) {
	assert.False(t, Allows(entity.Role("intruder"), ActionViewProducts))
	assert.False(t, Allows(entity.RoleAdmin, Action("products:explode")))
}
