package service

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Claims defines the custom claims for the JWT tokens.
type Claims struct {
	UserID uuid.UUID
	Roles  []string
	Type   string
	jwt.RegisteredClaims
}

// TokenService defines the interface for generating and validating JWTs.
type TokenService interface {
	// GenerateToken issues an access token for the subject and roles valid for ttl.
	GenerateToken(userID uuid.UUID, roles []string, ttl time.Duration) (string, error)

	// ValidateToken checks signature and expiry of an access token.
	ValidateToken(tokenString string) (*Claims, error)
}
