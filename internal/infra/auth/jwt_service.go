// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"errors"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"travelfit/config"
	"travelfit/internal/domain/entity"
	"travelfit/internal/domain/service"
)

// jwtService is a concrete implementation of the TokenService interface using the JWT standard.
type jwtService struct {
	accessSecret []byte // Secret key the account service signs access tokens with.
	parser       *jwt.Parser
}

// NewJWTService is the constructor for jwtService.
func NewJWTService(cfg *config.Config) (service.TokenService, error) {
	if cfg.SecretKey.Access == "" {
		return nil, errors.New("jwt access secret must be provided")
	}

	return &jwtService{
		accessSecret: []byte(cfg.SecretKey.Access),
		parser: jwt.NewParser(
			jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
			jwt.WithExpirationRequired(),
		),
	}, nil
}

// ValidateToken verifies the token signature and expiry and maps its claims to a caller identity.
func (s *jwtService) ValidateToken(tokenString string) (*entity.Identity, error) {
	claims := &service.Claims{}
	token, err := s.parser.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		return s.accessSecret, nil
	})
	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, jwt.ErrTokenInvalidClaims
	}

	userID, err := uuid.Parse(claims.Subject)
	if err != nil {
		return nil, errors.New("token subject is not a valid user id")
	}

	role := entity.Role(claims.Role)
	if !role.IsValid() {
		return nil, errors.New("token carries an unknown role")
	}

	identity := &entity.Identity{
		UserID: userID,
		Role:   role,
	}

	// Gym staff tokens must name the gym they are bound to.
	if role == entity.RoleGym {
		gymID, err := uuid.Parse(claims.GymID)
		if err != nil || gymID == uuid.Nil {
			return nil, errors.New("gym token is not bound to a gym")
		}
		identity.GymID = gymID
	}

	return identity, nil
}
