package main

import (
	"context"
	"errors"
	"log/slog"
	"os"

	"storefront/config"
	"storefront/internal/delivery"
	"storefront/internal/delivery/http"
	"storefront/internal/delivery/http/middleware"
	"storefront/internal/delivery/http/router/handler"
	"storefront/internal/delivery/worker"
	workerhandler "storefront/internal/delivery/worker/handler"
	"storefront/internal/domain/service"
	logs "storefront/internal/infra/log"
	"storefront/internal/infra/media"
	"storefront/internal/infra/persistence/postgres"
	"storefront/internal/infra/pixel"
	"storefront/internal/infra/pubsub"
	"storefront/internal/infra/realtime"
	"storefront/internal/infra/session"
	"storefront/internal/usecase"
	"storefront/internal/usecase/impl"

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
		injectUsecase(),
		injectDelivery(),
		injectMiddleware(),
		injectHandler(),
		fx.Invoke(
			startChangeFeed,
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
		postgres.NewStoreCapabilities,
		realtime.NewHub,
		newChangeStream,
		pubsub.NewEventPublisher,
		media.New,
		pixel.New,
		session.New,
	)
}

// newChangeStream exposes the hub under its domain-facing interface.
func newChangeStream(hub *realtime.Hub) service.ChangeStream {
	return hub
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewProductRepository,
			postgres.NewOrderRepository,
			postgres.NewActivityRepository,
			postgres.NewSettingsRepository,
			postgres.NewTransactionManager,
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewCatalogService,
			impl.NewProductService,
			impl.NewOrderService,
			impl.NewFulfillmentService,
			impl.NewActivityService,
			impl.NewSettingsService,
			impl.NewStatsService,
			impl.NewChangeFeedService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewErrorMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewCatalogHandler,
			handler.NewProductHandler,
			handler.NewOrderHandler,
			handler.NewActivityHandler,
			handler.NewSettingsHandler,
			handler.NewDashboardHandler,
			workerhandler.NewPushHandler,
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
			fx.Annotate(
				worker.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

// startChangeFeed keeps the operator change feed consuming for the life of
// the application.
func startChangeFeed(lc fx.Lifecycle, logger *slog.Logger, feed usecase.ChangeFeedUsecase) {
	feedCtx, cancel := context.WithCancel(context.Background())

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				if err := feed.Run(feedCtx); err != nil && !errors.Is(err, context.Canceled) {
					logger.Error("Change feed stopped", slog.Any("error", err))
				}
			}()

			return nil
		},
		OnStop: func(ctx context.Context) error {
			cancel()

			return nil
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
