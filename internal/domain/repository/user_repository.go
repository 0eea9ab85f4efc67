package repository

import (
	"context"

	"travelfit/internal/domain/entity"
	"travelfit/internal/errors"

	"github.com/google/uuid"
)

// Domain-specific errors for user lookups.
var (
	// ErrUserNotFound is returned when a user is not found.
	ErrUserNotFound = errors.New("user not found")
)

// UserRepository reads account records owned by the account service.
type UserRepository interface {
	// FindUserByID retrieves a user by its unique ID.
	FindUserByID(ctx context.Context, id uuid.UUID) (*entity.User, error)
}
