package main

import (
	"context"
	"log/slog"
	"os"

	"agroalerta/config"
	"agroalerta/internal/delivery"
	"agroalerta/internal/delivery/http"
	"agroalerta/internal/delivery/http/middleware"
	"agroalerta/internal/delivery/http/router/handler"
	"agroalerta/internal/domain/repository"
	"agroalerta/internal/domain/service"
	"agroalerta/internal/infra/alertfeed"
	"agroalerta/internal/infra/auth"
	"agroalerta/internal/infra/clock"
	"agroalerta/internal/infra/kvstore"
	logs "agroalerta/internal/infra/log"
	"agroalerta/internal/infra/persistence/local"
	"agroalerta/internal/infra/report"
	"agroalerta/internal/infra/weather"
	"agroalerta/internal/usecase/impl"

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
			seedData,
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
		clock.NewSystemClock,
		clock.NewSystemRand,
		kvstore.NewSQLite,
		weather.NewProvider,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			local.NewFormDraftRepository,
			local.NewUserProfileRepository,
			local.NewSessionRepository,
			local.NewCropRepository,
			local.NewRecommendationRepository,
			local.NewPreferenceRepository,
			alertfeed.NewStaticFeed,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewJWTService,
			report.NewExcelExporter,
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewFormService,
			impl.NewAuthService,
			impl.NewCropService,
			impl.NewAlertService,
			impl.NewRecommendationService,
			impl.NewWeatherService,
			impl.NewReportService,
			impl.NewPreferenceService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewAuthMiddleware,
			middleware.NewErrorMiddleware,
			middleware.NewRequestIDMiddleware,
			middleware.NewLoggerMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewAuthHandler,
			handler.NewFormHandler,
			handler.NewCropHandler,
			handler.NewAlertHandler,
			handler.NewRecommendationHandler,
			handler.NewWeatherHandler,
			handler.NewReportHandler,
			handler.NewPreferenceHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				http.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

type seedDataParams struct {
	fx.In

	Config      *config.Config
	Clock       service.Clock
	Logger      *slog.Logger
	ProfileRepo repository.UserProfileRepository
	CropRepo    repository.CropRepository
}

// seedData installs the demo credentials and sample crops on first run.
func seedData(ctx context.Context, params seedDataParams) error {
	return local.Seed(ctx, local.SeedParams{
		Config:      params.Config,
		Clock:       params.Clock,
		Logger:      params.Logger,
		ProfileRepo: params.ProfileRepo,
		CropRepo:    params.CropRepo,
	})
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		delivery := delivery
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))
				os.Exit(1)
			}
		}()
	}
}
