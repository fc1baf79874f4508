// Command zembil serves the marketplace REST API.
package main

import (
	"context"
	"log/slog"
	"os"

	"zembil/config"
	"zembil/internal/delivery"
	"zembil/internal/delivery/api"
	"zembil/internal/delivery/api/middleware"
	"zembil/internal/delivery/api/router/handler"
	"zembil/internal/infra/auth"
	"zembil/internal/infra/geo"
	logs "zembil/internal/infra/log"
	"zembil/internal/infra/mail"
	"zembil/internal/infra/persistence/postgres"
	"zembil/internal/infra/pubsub"
	"zembil/internal/infra/qrcode"
	"zembil/internal/infra/storage"
	"zembil/internal/usecase/impl"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle
	fx.Shutdowner

	Logger     *slog.Logger
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
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
		postgres.New,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewUserRepository,
			postgres.NewRevokedTokenRepository,
			postgres.NewCategoryRepository,
			postgres.NewLocationRepository,
			postgres.NewShopRepository,
			postgres.NewFollowerRepository,
			postgres.NewProductRepository,
			postgres.NewReviewRepository,
			postgres.NewWishListRepository,
			postgres.NewAdvertisementRepository,
			postgres.NewNotificationRepository,
			postgres.NewDeviceRepository,
			postgres.NewTransactionManager,
			postgres.NewNotificationSink,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewBcryptHasher,
			auth.NewJWTService,
			storage.NewBlobStorage,
			mail.NewMailer,
			geo.NewProximityCalculator,
			qrcode.NewQRCodeService,
			pubsub.NewEventPublisher,
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewAuthService,
			impl.NewUserService,
			impl.NewCategoryService,
			impl.NewLocationService,
			impl.NewShopService,
			impl.NewFollowerService,
			impl.NewProductService,
			impl.NewReviewService,
			impl.NewWishListService,
			impl.NewAdvertisementService,
			impl.NewNotificationService,
			impl.NewDeviceService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewAuthMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewAuthHandler,
			handler.NewUserHandler,
			handler.NewCategoryHandler,
			handler.NewLocationHandler,
			handler.NewShopHandler,
			handler.NewProductHandler,
			handler.NewReviewHandler,
			handler.NewWishListHandler,
			handler.NewAdvertisementHandler,
			handler.NewNotificationHandler,
			handler.NewDeviceHandler,
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
				params.Logger.Error("API server stopped", slog.Any("error", err))

				if shutdownErr := params.Shutdown(fx.ExitCode(1)); shutdownErr != nil {
					params.Logger.Error("Failed to shut down", slog.Any("error", shutdownErr))
					os.Exit(1)
				}
			}
		}()
	}
}
