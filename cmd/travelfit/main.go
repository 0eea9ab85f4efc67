package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"

	"travelfit/config"
	"travelfit/internal/delivery"
	"travelfit/internal/delivery/api"
	apimiddleware "travelfit/internal/delivery/api/middleware"
	"travelfit/internal/delivery/api/router/handler"
	"travelfit/internal/delivery/middleware"
	"travelfit/internal/domain/service"
	"travelfit/internal/infra/auth"
	"travelfit/internal/infra/blob"
	"travelfit/internal/infra/geocode"
	logs "travelfit/internal/infra/log"
	"travelfit/internal/infra/metrics"
	"travelfit/internal/infra/persistence/postgres"
	"travelfit/internal/infra/pubsub"
	"travelfit/internal/infra/qrcode"
	"travelfit/internal/usecase/impl"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		injectDelivery(),
		injectMiddleware(),
		injectHandler(),
		fx.Invoke(
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Options(
		fx.Provide(
			config.New,
			logs.New,
			context.Background,
			postgres.New,
			blob.New,
			geocode.NewGeocoder,
			metrics.NewRecorder,
			fx.Annotate(
				newMetricsHandler,
				fx.ResultTags(`name:"metricsHandler"`),
			),
		),
		pubsub.Module,
		fx.Provide(
			func(recorder *metrics.Recorder) service.MetricsRecorder { return recorder },
			func(recorder *metrics.Recorder) middleware.HTTPRecorder { return recorder },
		),
	)
}

// newMetricsHandler exposes the recorder's registry for scraping
func newMetricsHandler(recorder *metrics.Recorder) http.Handler {
	return recorder.Handler()
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewUserRepository,
			postgres.NewGymRepository,
			postgres.NewPassOfferingRepository,
			postgres.NewPassPurchaseRepository,
			postgres.NewPhotoRepository,
			postgres.NewFavoriteRepository,
			postgres.NewTransactionManager,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewJWTService,
			newQRCodeService,
		),
	)
}

// newQRCodeService creates a QR code service with dependency injection
func newQRCodeService(cfg *config.Config) service.QRCodeService {
	if cfg.QRCode == nil {
		// Use default values if not configured
		return qrcode.NewQRCodeService(256, "M")
	}

	return qrcode.NewQRCodeService(cfg.QRCode.Size, cfg.QRCode.ErrorCorrectionLevel)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewGymService,
			impl.NewGeoSearchService,
			impl.NewPassCatalogService,
			impl.NewPassLedgerService,
			impl.NewRedemptionService,
			impl.NewPhotoService,
			impl.NewFavoriteService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			apimiddleware.NewAuthMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewGymHandler,
			handler.NewPassOptionHandler,
			handler.NewPassHandler,
			handler.NewVerifyHandler,
			handler.NewPhotoHandler,
			handler.NewFavoriteHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				api.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))
				os.Exit(1)
			}
		}()
	}
}
