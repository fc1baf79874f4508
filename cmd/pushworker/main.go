// Command pushworker receives product events from Pub/Sub push subscriptions and
// fans them out to the followers' devices.
package main

import (
	"context"
	"log/slog"
	"os"

	"zembil/config"
	"zembil/internal/delivery"
	"zembil/internal/delivery/worker"
	"zembil/internal/delivery/worker/handler"
	logs "zembil/internal/infra/log"
	"zembil/internal/infra/notification"
	"zembil/internal/infra/persistence/postgres"
	"zembil/internal/usecase/impl"

	"go.uber.org/fx"
)

func main() {
	fx.New(
		fx.Provide(
			config.New,
			logs.New,
			context.Background,
		),
		fx.Module("persistence",
			fx.Provide(postgres.New, postgres.NewDeviceRepository),
		),
		fx.Module("push",
			fx.Provide(
				notification.NewPushService,
				impl.NewPushService,
				handler.NewPushHandler,
			),
		),
		fx.Provide(
			fx.Annotate(worker.NewServer, fx.ResultTags(`group:"deliveries"`)),
		),
		fx.Invoke(serve),
	).Run()
}

type serveParams struct {
	fx.In
	fx.Shutdowner

	Logger     *slog.Logger
	Deliveries []delivery.Delivery `group:"deliveries"`
}

func serve(ctx context.Context, params serveParams) {
	for _, d := range params.Deliveries {
		go func() {
			err := d.Serve(ctx)
			if err == nil {
				return
			}

			params.Logger.Error("Push worker stopped", slog.Any("error", err))
			if err := params.Shutdown(fx.ExitCode(1)); err != nil {
				params.Logger.Error("Failed to shut down", slog.Any("error", err))
				os.Exit(1)
			}
		}()
	}
}
