package main

import (
	"context"
	"log/slog"
	"os"

	"hwehweme/config"
	"hwehweme/internal/delivery"
	"hwehweme/internal/delivery/http"
	"hwehweme/internal/delivery/http/middleware"
	"hwehweme/internal/delivery/http/router/handler"
	"hwehweme/internal/domain/access"
	"hwehweme/internal/domain/repository"
	"hwehweme/internal/domain/service"
	"hwehweme/internal/infra/auth"
	logs "hwehweme/internal/infra/log"
	"hwehweme/internal/infra/persistence/postgres"
	"hwehweme/internal/usecase/impl"

	"github.com/joho/godotenv"
	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	// A missing .env is fine; configuration falls back to config.yaml and
	// real environment variables.
	_ = godotenv.Load()

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
			postgres.NewRefreshTokenRepository,
			postgres.NewDeviceRepository,
			postgres.NewLocationRepository,
			postgres.NewGroupRepository,
			postgres.NewShareRepository,
			postgres.NewAlertRepository,
			postgres.NewTransactionManager,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			newPasswordHasher,
			auth.NewJWTService,
			newAccessChecker,
		),
	)
}

// newPasswordHasher creates the bcrypt hasher with the configured cost.
func newPasswordHasher(cfg *config.Config) service.PasswordHasher {
	return auth.NewBcryptHasher(cfg.Auth.BcryptCost)
}

// newAccessChecker wires the authorization checker onto the wall clock.
func newAccessChecker(
	devices repository.DeviceRepository,
	shares repository.ShareRepository,
	groups repository.GroupRepository,
) *access.Checker {
	return access.NewChecker(devices, shares, groups, nil)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewUserService,
			impl.NewDeviceService,
			impl.NewLocationService,
			impl.NewGroupService,
			impl.NewShareService,
			impl.NewAlertService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewAuthMiddleware,
			middleware.NewErrorMiddleware,
			middleware.NewRequestIDMiddleware,
			middleware.NewRateLimitMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewUserHandler,
			handler.NewDeviceHandler,
			handler.NewLocationHandler,
			handler.NewGroupHandler,
			handler.NewShareHandler,
			handler.NewAlertHandler,
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
