package main

import (
	"context"
	"log/slog"

	"salondesk/config"
	"salondesk/internal/domain/service"
	"salondesk/internal/infra/auth"
	logs "salondesk/internal/infra/log"
	"salondesk/internal/infra/persistence/sqlite"
	"salondesk/internal/usecase"
	"salondesk/internal/usecase/impl"

	"go.uber.org/fx"
)

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		fx.Invoke(
			bootstrap,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
		sqlite.New,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			sqlite.NewCustomerRepository,
			sqlite.NewStaffRepository,
			sqlite.NewTransactionManager,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			newPasswordHasher,
			auth.NewJWTService,
		),
	)
}

// newPasswordHasher creates the bcrypt hasher, honoring a configured cost.
func newPasswordHasher(cfg *config.Config) service.PasswordHasher {
	if cfg.Auth == nil || cfg.Auth.BcryptCost == 0 {
		return auth.NewBcryptHasher()
	}

	return auth.NewBcryptHasherWithCost(cfg.Auth.BcryptCost)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewSessionService,
			impl.NewCustomerService,
			impl.NewStaffService,
		),
	)
}

// bootstrap runs the one-time startup work, currently just the seed admin.
// The process stays up afterwards so an embedding frontend can drive the
// use cases over the fx container.
func bootstrap(lc fx.Lifecycle, staffUsecase usecase.StaffUsecase, logger *slog.Logger) {
	lc.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			if err := staffUsecase.EnsureSeedAdmin(startCtx); err != nil {
				return err
			}

			logger.Info("Record store ready")

			return nil
		},
	})
}
