// Package entity contains the core business objects of the project.
package entity

// Role represents the type of role a user can have in the system.
type Role string

const (
	// RoleAdmin has full control over inventory and order oversight.
	RoleAdmin Role = "admin"
	// RoleManager manages inventory and sees order oversight, like admin.
	RoleManager Role = "manager"
	// RoleStaff is the default role: read access plus order oversight.
	RoleStaff Role = "staff"
	// RoleBuyer places orders against the inventory.
	RoleBuyer Role = "buyer"
)

// String returns the string representation of the Role.
func (r Role) String() string {
	return string(r)
}

// IsValid checks if the Role is a valid value.
func (r Role) IsValid() bool {
	switch r {
	case RoleAdmin, RoleManager, RoleStaff, RoleBuyer:
		return true
	default:
		return false
	}
}

// IsPrivileged reports whether the role requires the operator enrollment
// secret at registration time.
func (r Role) IsPrivileged() bool {
	return r == RoleAdmin || r == RoleManager
}
