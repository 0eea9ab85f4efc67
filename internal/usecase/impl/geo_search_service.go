package impl

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"time"

	"travelfit/config"
	deliverycontext "travelfit/internal/delivery/context"
	"travelfit/internal/domain/entity"
	domainerrors "travelfit/internal/domain/errors"
	"travelfit/internal/domain/repository"
	"travelfit/internal/domain/service"
	"travelfit/internal/usecase"

	"github.com/paulmach/orb"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type geoSearchService struct {
	gymRepo repository.GymRepository
	metrics service.MetricsRecorder
	config  *config.GeoSearchConfig
	logger  *slog.Logger
}

// GeoSearchServiceParams holds dependencies for GeoSearchService, injected by Fx.
type GeoSearchServiceParams struct {
	fx.In

	GymRepo repository.GymRepository
	Metrics service.MetricsRecorder
	Config  *config.Config
	Logger  *slog.Logger
}

// NewGeoSearchService creates a new geo search service instance
func NewGeoSearchService(params GeoSearchServiceParams) usecase.GeoSearchUsecase {
	return &geoSearchService{
		gymRepo: params.GymRepo,
		metrics: params.Metrics,
		config:  params.Config.GeoSearch,
		logger:  params.Logger,
	}
}

// FindNearby returns gyms within the query radius, nearest first
func (s *geoSearchService) FindNearby(ctx context.Context, query *usecase.NearbyQuery) ([]*entity.NearbyGym, error) {
	if query == nil {
		return nil, domainerrors.ErrValidationFailed.WithDetails("missing search query")
	}

	if !validCoordinate(query.Latitude, query.Longitude) {
		return nil, domainerrors.ErrInvalidCoordinate
	}

	radius, err := s.resolveRadius(query.RadiusMeters)
	if err != nil {
		return nil, err
	}

	limit, err := s.resolveLimit(query.Limit)
	if err != nil {
		return nil, err
	}

	logger := deliverycontext.GetLoggerOrDefault(ctx, s.logger)
	point := orb.Point{query.Longitude, query.Latitude}

	start := time.Now()
	gyms, err := s.gymRepo.FindGymsNearby(ctx, point, radius, limit)
	if err != nil {
		logger.Error("Nearby gym search failed",
			slog.Float64("latitude", query.Latitude),
			slog.Float64("longitude", query.Longitude),
			slog.Float64("radius", radius),
			slog.Any("error", err),
		)

		return nil, errors.Wrapf(domainerrors.ErrQueryFailed, "find gyms nearby: %v", err)
	}
	s.metrics.NearbySearchCompleted(time.Since(start), len(gyms))

	logger.Debug("Nearby gym search completed",
		slog.Float64("radius", radius),
		slog.Int("limit", limit),
		slog.Int("count", len(gyms)),
	)

	if gyms == nil {
		gyms = []*entity.NearbyGym{}
	}

	return gyms, nil
}

// resolveRadius applies the default radius and rejects non-positive or oversized values.
func (s *geoSearchService) resolveRadius(radius float64) (float64, error) {
	if radius == 0 {
		radius = s.config.DefaultRadius
	}

	if math.IsNaN(radius) || math.IsInf(radius, 0) || radius <= 0 {
		return 0, domainerrors.ErrInvalidRadius
	}

	if s.config.MaxRadius > 0 && radius > s.config.MaxRadius {
		return 0, domainerrors.ErrInvalidRadius.WithDetails(
			fmt.Sprintf("radius must not exceed %.0f meters", s.config.MaxRadius),
		)
	}

	return radius, nil
}

// resolveLimit applies the default result cap and clamps it to the configured maximum.
func (s *geoSearchService) resolveLimit(limit int) (int, error) {
	if limit < 0 {
		return 0, domainerrors.ErrValidationFailed.WithDetails("limit must not be negative")
	}

	if limit == 0 {
		limit = s.config.DefaultLimit
	}

	if s.config.MaxLimit > 0 && (limit == 0 || limit > s.config.MaxLimit) {
		limit = s.config.MaxLimit
	}

	return limit, nil
}

func validCoordinate(lat, lng float64) bool {
	if math.IsNaN(lat) || math.IsNaN(lng) {
		return false
	}

	return lat >= -90 && lat <= 90 && lng >= -180 && lng <= 180
}
