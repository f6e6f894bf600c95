package service

import (
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"sparestock/internal/domain/entity"
)

// Claims is the identity payload embedded in a session token.
type Claims struct {
	UserID uuid.UUID
	Role   entity.Role
	jwt.RegisteredClaims
}

// TokenService defines the interface for minting and validating session tokens.
// This abstracts the details of token creation from the use cases.
type TokenService interface {
	// GenerateToken creates a signed bearer token carrying the user's
	// identity and role.
	GenerateToken(userID uuid.UUID, role entity.Role) (string, error)

	// ValidateToken checks the validity of a token string and returns its
	// claims. Malformed, expired and badly signed tokens all fail.
	ValidateToken(tokenString string) (*Claims, error)
}
