package main

import (
	"context"
	"log/slog"
	"os"

	"suq/config"
	"suq/internal/delivery"
	"suq/internal/delivery/http"
	"suq/internal/delivery/http/middleware"
	"suq/internal/delivery/http/router/handler"
	"suq/internal/domain/service"
	"suq/internal/infra/auth"
	"suq/internal/infra/kvstore"
	logs "suq/internal/infra/log"
	"suq/internal/infra/notification"
	"suq/internal/infra/persistence/blobstore"
	"suq/internal/usecase/impl"

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
		newBlobStore,
	)
}

// newBlobStore opens the on-disk store and ties its lifetime to the app.
func newBlobStore(lc fx.Lifecycle, cfg *config.Config) (*kvstore.Store, error) {
	store, err := kvstore.NewFileStore(cfg.Storage.Path)
	if err != nil {
		return nil, err
	}

	lc.Append(fx.Hook{
		OnStop: func(context.Context) error {
			return store.Close()
		},
	})

	return store, nil
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			blobstore.NewProductRepository,
			blobstore.NewOrderRepository,
			blobstore.NewUserRepository,
			blobstore.NewSessionRepository,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			newPasswordHasher,
			auth.NewJWTService,
			notification.NewTelegramNotifier,
		),
	)
}

// newPasswordHasher creates the bcrypt hasher, honoring cost and minimum
// length overrides from config.
func newPasswordHasher(cfg *config.Config) service.PasswordHasher {
	if cfg.Auth == nil {
		return auth.NewBcryptHasher()
	}

	return auth.NewBcryptHasherWithCost(cfg.Auth.BcryptCost, cfg.Auth.MinPasswordLength)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewCatalogService,
			impl.NewOrderService,
			impl.NewAccountService,
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
			handler.NewCatalogHandler,
			handler.NewAccountHandler,
			handler.NewOrderHandler,
			handler.NewAdminHandler,
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
