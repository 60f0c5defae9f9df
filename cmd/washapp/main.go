package main

import (
	"context"
	"log/slog"
	"os"

	"washapp/config"
	"washapp/internal/delivery"
	"washapp/internal/delivery/api"
	apimiddleware "washapp/internal/delivery/api/middleware"
	"washapp/internal/delivery/api/router/handler"
	"washapp/internal/infra/auth"
	"washapp/internal/infra/blob"
	"washapp/internal/infra/cache"
	logs "washapp/internal/infra/log"
	"washapp/internal/infra/metrics"
	"washapp/internal/infra/persistence/postgres"
	"washapp/internal/infra/qrcode"
	"washapp/internal/usecase"
	"washapp/internal/usecase/impl"

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
			ensureAdmin,
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
		postgres.New,
		blob.New,
		cache.NewIdempotencyStore,
		metrics.New,
		metrics.NewBookingMetrics,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewUserRepository,
			postgres.NewAuthRepository,
			postgres.NewCatalogRepository,
			postgres.NewProviderRepository,
			postgres.NewBookingRepository,
			postgres.NewReviewRepository,
			postgres.NewPaymentRepository,
			postgres.NewCartRepository,
			postgres.NewTransactionManager,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewBcryptHasher,
			auth.NewJWTService,
			qrcode.NewQRCodeService,
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewUserService,
			impl.NewProfileService,
			impl.NewCatalogService,
			impl.NewProviderService,
			impl.NewBookingService,
			impl.NewReviewService,
			impl.NewPaymentService,
			impl.NewDashboardService,
			impl.NewCartService,
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
			handler.NewAuthHandler,
			handler.NewProfileHandler,
			handler.NewCatalogHandler,
			handler.NewProviderHandler,
			handler.NewBookingHandler,
			handler.NewDashboardHandler,
			handler.NewCartHandler,
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

// ensureAdmin creates the configured administrator once the schema is in place.
func ensureAdmin(lc fx.Lifecycle, cfg *config.Config, userUC usecase.UserUsecase) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			if cfg.Admin == nil {
				return userUC.EnsureAdmin(ctx, nil)
			}

			return userUC.EnsureAdmin(ctx, &usecase.EnsureAdminInput{
				Username: cfg.Admin.Username,
				Email:    cfg.Admin.Email,
				Password: cfg.Admin.Password,
			})
		},
	})
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
