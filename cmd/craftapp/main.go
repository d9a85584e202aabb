package main

import (
	"context"
	"log/slog"
	"os"

	"go.uber.org/fx"

	"craftapp/config"
	"craftapp/internal/delivery"
	"craftapp/internal/delivery/http"
	"craftapp/internal/delivery/http/middleware"
	"craftapp/internal/delivery/http/router/handler"
	"craftapp/internal/domain/storage"
	"craftapp/internal/infra/auth"
	"craftapp/internal/infra/codegen"
	logs "craftapp/internal/infra/log"
	"craftapp/internal/infra/mail"
	"craftapp/internal/infra/objectstore"
	"craftapp/internal/infra/persistence/postgres"
	"craftapp/internal/usecase/impl"
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
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewUserRepository,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewBcryptHasher,
			auth.NewJWTService,
			codegen.NewCodeGenerator,
			mail.NewSMTPSender,
			newObjectStore,
		),
	)
}

// newObjectStore exposes the MinIO-backed store through its domain interface.
func newObjectStore(cfg *config.Config) (storage.ObjectStore, error) {
	return objectstore.New(cfg)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewAccountService,
			impl.NewAssetService,
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
			handler.NewAccountHandler,
			handler.NewAssetHandler,
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
