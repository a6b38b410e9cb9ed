package main

import (
	"context"
	"log/slog"
	"os"

	"catalog/config"
	"catalog/internal/delivery"
	"catalog/internal/delivery/worker"
	"catalog/internal/delivery/worker/handler"
	logs "catalog/internal/infra/log"
	"catalog/internal/infra/persistence/postgres"
	"catalog/internal/usecase/impl"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		fx.Provide(
			config.New,
			logs.New,
			context.Background,
			postgres.New,
			postgres.NewCourseRepository,
			impl.NewCourseEventService,
			handler.NewPushHandler,
			fx.Annotate(
				worker.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
		fx.Invoke(startServer),
	).Run()
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start worker", slog.Any("error", err))
				os.Exit(1)
			}
		}()
	}
}
