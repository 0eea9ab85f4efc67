package impl

import (
	"testing"

	"travelfit/internal/domain/entity"
	domainerrors "travelfit/internal/domain/errors"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func TestAuthorize(t *testing.T) {
	gymID := uuid.New()
	otherGymID := uuid.New()

	tests := []struct {
		name    string
		actor   *entity.Identity
		policy  Policy
		gymID   uuid.UUID
		wantErr error
	}{
		{name: "missing identity", actor: nil, policy: policyAuthenticated, gymID: gymID, wantErr: domainerrors.ErrUnauthorized},
		{name: "nil user id", actor: &entity.Identity{Role: entity.RoleAdmin}, policy: policyPlatformAdmin, gymID: gymID, wantErr: domainerrors.ErrUnauthorized},
		{name: "admin on admin policy", actor: adminIdentity(), policy: policyPlatformAdmin, gymID: gymID},
		{name: "gym on admin policy", actor: gymIdentity(gymID), policy: policyPlatformAdmin, gymID: gymID, wantErr: domainerrors.ErrForbidden},
		{name: "admin on gym-scoped policy", actor: adminIdentity(), policy: policyGymManagement, gymID: otherGymID},
		{name: "gym staff of the target gym", actor: gymIdentity(gymID), policy: policyGymManagement, gymID: gymID},
		{name: "gym staff of another gym", actor: gymIdentity(otherGymID), policy: policyGymManagement, gymID: gymID, wantErr: domainerrors.ErrForbidden},
		{name: "gym staff without bound gym", actor: gymIdentity(uuid.Nil), policy: policyGymManagement, gymID: gymID, wantErr: domainerrors.ErrForbidden},
		{name: "user on gym-scoped policy", actor: userIdentity(), policy: policyGymManagement, gymID: gymID, wantErr: domainerrors.ErrForbidden},
		{name: "user on pass holder policy", actor: userIdentity(), policy: policyPassHolder, gymID: gymID},
		{name: "admin on pass holder policy", actor: adminIdentity(), policy: policyPassHolder, gymID: gymID, wantErr: domainerrors.ErrForbidden},
		{name: "any role on authenticated policy", actor: gymIdentity(gymID), policy: policyAuthenticated, gymID: otherGymID},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := authorize(tt.actor, tt.policy, tt.gymID)
			if tt.wantErr == nil {
				assert.NoError(t, err)

				return
			}

			assert.True(t, errors.Is(err, tt.wantErr), "got %v, want %v", err, tt.wantErr)
		})
	}
}

func TestInScope_IgnoresGymForUnscopedPolicies(t *testing.T) {
	actor := gymIdentity(uuid.New())

	assert.True(t, inScope(actor, policyAuthenticated, uuid.New()))
	assert.False(t, inScope(actor, policyGymManagement, uuid.New()))
	assert.True(t, inScope(actor, policyGymManagement, actor.GymID))
}
