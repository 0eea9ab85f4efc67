package impl

import (
	"context"
	"io"
	"log/slog"
	"time"

	"travelfit/config"
	"travelfit/internal/domain/entity"
	"travelfit/internal/domain/repository"

	"github.com/google/uuid"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestConfig() *config.Config {
	return &config.Config{
		GeoSearch: &config.GeoSearchConfig{
			DefaultRadius: 2000,
			MaxRadius:     50000,
			DefaultLimit:  0,
			MaxLimit:      100,
		},
		Blob: &config.BlobConfig{
			TokenPrefix: "qrcodes",
			PhotoPrefix: "gym-photos",
		},
	}
}

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

func adminIdentity() *entity.Identity {
	return &entity.Identity{UserID: uuid.New(), Role: entity.RoleAdmin}
}

func gymIdentity(gymID uuid.UUID) *entity.Identity {
	return &entity.Identity{UserID: uuid.New(), Role: entity.RoleGym, GymID: gymID}
}

func userIdentity() *entity.Identity {
	return &entity.Identity{UserID: uuid.New(), Role: entity.RoleUser}
}

// stubTxManager runs the callback against a fixed factory, then reports commitErr as the commit outcome.
type stubTxManager struct {
	factory   repository.RepositoryFactory
	commitErr error
	calls     int
}

func (m *stubTxManager) Execute(_ context.Context, fn func(repository.RepositoryFactory) error) error {
	m.calls++
	if err := fn(m.factory); err != nil {
		return err
	}

	return m.commitErr
}
