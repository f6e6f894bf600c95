// Package policy maps authenticated roles to the operations they may perform.
// It is a pure function of (role, action); authentication itself is handled by
// the delivery layer before any policy check runs.
package policy

import "sparestock/internal/domain/entity"

// Action identifies a gated operation.
type Action string

const (
	// ActionViewProducts covers listing the inventory.
	ActionViewProducts Action = "products:view"
	// ActionManageProducts covers creating and deleting products.
	ActionManageProducts Action = "products:manage"
	// ActionPlaceOrder covers placing and cancelling orders.
	ActionPlaceOrder Action = "orders:place"
	// ActionViewOwnOrders covers the caller's own order history.
	ActionViewOwnOrders Action = "orders:view-own"
	// ActionViewAllOrders covers the full order ledger and aggregate stats.
	ActionViewAllOrders Action = "orders:view-all"
)

// Allows reports whether a role may perform an action. Unknown roles and
// unknown actions are always denied.
func Allows(role entity.Role, action Action) bool {
	if !role.IsValid() {
		return false
	}

	switch action {
	case ActionViewProducts, ActionPlaceOrder, ActionViewOwnOrders:
		return true
	case ActionManageProducts:
		return role == entity.RoleAdmin || role == entity.RoleManager
	case ActionViewAllOrders:
		return role != entity.RoleBuyer
	default:
		return false
	}
}
