package auth

import (
	"testing"
	"time"

	"travelfit/config"
	"travelfit/internal/domain/entity"
	"travelfit/internal/domain/service"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test_access_secret_key_very_long_for_testing"

func newTestConfig(secret string) *config.Config {
	cfg := &config.Config{}
	cfg.SecretKey.Access = secret

	return cfg
}

func signToken(t *testing.T, method jwt.SigningMethod, key any, claims *service.Claims) string {
	t.Helper()

	token, err := jwt.NewWithClaims(method, claims).SignedString(key)
	require.NoError(t, err)

	return token
}

func claimsFor(userID uuid.UUID, role string, gymID string, ttl time.Duration) *service.Claims {
	return &service.Claims{
		Role:  role,
		GymID: gymID,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID.String(),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(ttl)),
		},
	}
}

func TestNewJWTService_RequiresSecret(t *testing.T) {
	_, err := NewJWTService(newTestConfig(""))
	assert.Error(t, err)
}

func TestJWTService_ValidateToken(t *testing.T) {
	jwtService, err := NewJWTService(newTestConfig(testSecret))
	require.NoError(t, err)

	userID := uuid.New()
	gymID := uuid.New()

	tests := []struct {
		name     string
		token    string
		expected *entity.Identity
	}{
		{
			name:     "user token",
			token:    signToken(t, jwt.SigningMethodHS256, []byte(testSecret), claimsFor(userID, "user", "", time.Minute)),
			expected: &entity.Identity{UserID: userID, Role: entity.RoleUser},
		},
		{
			name:     "admin token",
			token:    signToken(t, jwt.SigningMethodHS256, []byte(testSecret), claimsFor(userID, "admin", "", time.Minute)),
			expected: &entity.Identity{UserID: userID, Role: entity.RoleAdmin},
		},
		{
			name:     "gym token",
			token:    signToken(t, jwt.SigningMethodHS256, []byte(testSecret), claimsFor(userID, "gym", gymID.String(), time.Minute)),
			expected: &entity.Identity{UserID: userID, Role: entity.RoleGym, GymID: gymID},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			identity, err := jwtService.ValidateToken(tt.token)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, identity)
		})
	}
}

func TestJWTService_InvalidToken(t *testing.T) {
	jwtService, err := NewJWTService(newTestConfig(testSecret))
	require.NoError(t, err)

	userID := uuid.New()

	noExpiry := claimsFor(userID, "user", "", time.Minute)
	noExpiry.ExpiresAt = nil

	badSubject := claimsFor(userID, "user", "", time.Minute)
	badSubject.Subject = "not-a-uuid"

	tests := []struct {
		name  string
		token string
	}{
		{"garbage", "invalid.token.string"},
		{"wrong secret", signToken(t, jwt.SigningMethodHS256, []byte("another_secret"), claimsFor(userID, "user", "", time.Minute))},
		{"expired", signToken(t, jwt.SigningMethodHS256, []byte(testSecret), claimsFor(userID, "user", "", -time.Minute))},
		{"missing expiry", signToken(t, jwt.SigningMethodHS256, []byte(testSecret), noExpiry)},
		{"unexpected algorithm", signToken(t, jwt.SigningMethodHS512, []byte(testSecret), claimsFor(userID, "user", "", time.Minute))},
		{"bad subject", signToken(t, jwt.SigningMethodHS256, []byte(testSecret), badSubject)},
		{"unknown role", signToken(t, jwt.SigningMethodHS256, []byte(testSecret), claimsFor(userID, "merchant", "", time.Minute))},
		{"gym token without gym", signToken(t, jwt.SigningMethodHS256, []byte(testSecret), claimsFor(userID, "gym", "", time.Minute))},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			identity, err := jwtService.ValidateToken(tt.token)
			assert.Error(t, err)
			assert.Nil(t, identity)
		})
	}
}
