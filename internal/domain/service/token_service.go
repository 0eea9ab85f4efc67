package service

import (
	"travelfit/internal/domain/entity"

	"github.com/golang-jwt/jwt/v5"
)

// Claims defines the custom claims carried by access tokens issued by the account service.
type Claims struct {
	Role  string `json:"role"`
	GymID string `json:"gym_id,omitempty"`
	jwt.RegisteredClaims
}

// TokenService validates bearer tokens and resolves the caller's identity.
// Token issuance lives in the account service.
type TokenService interface {
	// ValidateToken checks the validity of a token string and returns the caller identity.
	ValidateToken(tokenString string) (*entity.Identity, error)
}
