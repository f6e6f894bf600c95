// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// User represents a single account in the wholesale system. Every user carries
// exactly one role, assigned at registration and never mutated afterwards.
type User struct {
	ID           uuid.UUID `json:"id"`       // The unique identifier for the user.
	Username     string    `json:"username"` // The display name shown in the UI and in order listings.
	Email        string    `json:"email"`    // The login identifier. Unique across all users.
	PasswordHash string    `json:"-"`        // The bcrypt hash of the user's password. Never leaves the server.
	Role         Role      `json:"role"`     // The role that gates what this user may do.
	CreatedAt    time.Time `json:"createdAt"`
}
