package entity

import (
	"strings"

	"github.com/google/uuid"
)

// User is the subset of an account record this service reads.
// Accounts themselves are managed elsewhere.
type User struct {
	ID        uuid.UUID
	FirstName string
	LastName  string
	Email     string
}

// DisplayName returns the name used when greeting the user at the front desk.
func (u *User) DisplayName() string {
	if name := strings.TrimSpace(u.FirstName); name != "" {
		return name
	}

	return strings.TrimSpace(u.LastName)
}
