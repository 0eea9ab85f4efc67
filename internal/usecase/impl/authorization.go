// Package impl contains the application-specific business rules implementations.
package impl

import (
	"fmt"

	"travelfit/internal/domain/entity"
	domainerrors "travelfit/internal/domain/errors"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// Policy is the authorization predicate of one operation: which roles may call it, and
// whether a gym-role caller must be bound to the gym the operation targets.
type Policy struct {
	Roles     entity.Roles
	GymScoped bool
}

var (
	// policyPlatformAdmin guards gym creation and deletion.
	policyPlatformAdmin = Policy{Roles: entity.Roles{entity.RoleAdmin}}
	// policyGymManagement guards gym edits, photos, offerings, revocation and door scans.
	policyGymManagement = Policy{Roles: entity.Roles{entity.RoleAdmin, entity.RoleGym}, GymScoped: true}
	// policyPassHolder guards purchasing and viewing one's own passes.
	policyPassHolder = Policy{Roles: entity.Roles{entity.RoleUser}}
	// policyAuthenticated guards per-account data such as favorites.
	policyAuthenticated = Policy{Roles: entity.Roles{entity.RoleAdmin, entity.RoleGym, entity.RoleUser}}
)

// authorizeRole checks the caller's role only. Use it when the target gym is not known yet.
func authorizeRole(actor *entity.Identity, policy Policy) error {
	if actor == nil || actor.UserID == uuid.Nil {
		return errors.Wrap(domainerrors.ErrUnauthorized, "missing caller identity")
	}

	if !policy.Roles.Contains(actor.Role) {
		return domainerrors.ErrForbidden.WithDetails(
			fmt.Sprintf("role %q is not one of %v", actor.Role, policy.Roles.ToStrings()),
		)
	}

	return nil
}

// authorize evaluates the full policy against the gym the operation targets.
func authorize(actor *entity.Identity, policy Policy, gymID uuid.UUID) error {
	if err := authorizeRole(actor, policy); err != nil {
		return err
	}

	if !inScope(actor, policy, gymID) {
		return domainerrors.ErrForbidden.WithDetails("account is not bound to this gym")
	}

	return nil
}

// inScope reports whether a caller who already passed the role check may act on gymID.
func inScope(actor *entity.Identity, policy Policy, gymID uuid.UUID) bool {
	if !policy.GymScoped || actor.Role != entity.RoleGym {
		return true
	}

	return actor.ManagesGym(gymID)
}
