package entity

import (
	"slices"

	"github.com/google/uuid"
)

// Role represents the type of account a caller authenticated as.
type Role string

const (
	// RoleAdmin indicates a platform administrator.
	RoleAdmin Role = "admin"
	// RoleGym indicates a gym staff account bound to exactly one gym.
	RoleGym Role = "gym"
	// RoleUser indicates a regular end user who buys passes.
	RoleUser Role = "user"
)

// String returns the string representation of the Role.
func (r Role) String() string {
	return string(r)
}

// IsValid checks if the Role is a valid value.
func (r Role) IsValid() bool {
	switch r {
	case RoleAdmin, RoleGym, RoleUser:
		return true
	default:
		return false
	}
}

// Roles is a slice of Role for convenience.
type Roles []Role

// Contains checks if the roles slice contains a specific role.
func (rs Roles) Contains(role Role) bool {
	return slices.Contains(rs, role)
}

// ToStrings converts Roles to []string for logging and error details.
func (rs Roles) ToStrings() []string {
	result := make([]string, len(rs))
	for i, r := range rs {
		result[i] = r.String()
	}

	return result
}

// Identity is the authenticated caller as supplied by the identity context.
type Identity struct {
	UserID uuid.UUID
	Role   Role
	GymID  uuid.UUID // Only set for RoleGym; uuid.Nil otherwise.
}

// ManagesGym reports whether a gym-role identity is bound to gymID.
func (i *Identity) ManagesGym(gymID uuid.UUID) bool {
	return i.Role == RoleGym && i.GymID != uuid.Nil && i.GymID == gymID
}
