package main

import (
	"context"
	"log/slog"
	"os"

	"leadhub/config"
	"leadhub/internal/delivery"
	"leadhub/internal/delivery/api"
	"leadhub/internal/delivery/api/middleware"
	"leadhub/internal/delivery/api/router/handler"
	"leadhub/internal/infra/auth"
	logs "leadhub/internal/infra/log"
	"leadhub/internal/infra/metrics"
	"leadhub/internal/infra/persistence/postgres"
	"leadhub/internal/infra/pubsub"
	"leadhub/internal/infra/storage"
	"leadhub/internal/usecase/impl"

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
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
		postgres.New,
		metrics.New,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewUserRepository,
			postgres.NewAddressRepository,
			postgres.NewVendorRepository,
			postgres.NewSubscriptionRepository,
			postgres.NewLeadRepository,
			postgres.NewProductRepository,
			postgres.NewMessageRepository,
			postgres.NewTransactionManager,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewBcryptHasher,
			auth.NewJWTService,
			pubsub.NewEventPublisher,
			storage.New,
			metrics.NewRecorder,
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewDefaultAddressManager,
			impl.NewAddressService,
			impl.NewLedgerService,
			impl.NewLeadService,
			impl.NewMessageService,
			impl.NewImportService,
			impl.NewProductService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewAuthMiddleware,
			middleware.NewErrorMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewAddressHandler,
			handler.NewVendorHandler,
			handler.NewLeadHandler,
			handler.NewMessageHandler,
			handler.NewImportHandler,
			handler.NewProductHandler,
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
