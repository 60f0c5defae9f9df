// Command migrate brings the database schema up to date and exits.
package main

import (
	"context"
	"log/slog"

	"washapp/config"
	logs "washapp/internal/infra/log"
	"washapp/internal/infra/persistence/model"
	"washapp/internal/infra/persistence/postgres"

	"github.com/pkg/errors"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

type migrateParams struct {
	fx.In
	fx.Lifecycle

	DB         *gorm.DB
	Logger     *slog.Logger
	Shutdowner fx.Shutdowner
}

func main() {
	fx.New(
		fx.NopLogger,
		fx.Provide(
			config.New,
			logs.New,
			postgres.New,
		),
		fx.Invoke(migrate),
	).Run()
}

func migrate(params migrateParams) {
	params.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			if err := model.AutoMigrate(params.DB.WithContext(ctx)); err != nil {
				return errors.Wrap(err, "failed to migrate schema")
			}
			params.Logger.InfoContext(ctx, "Schema is up to date")

			return params.Shutdowner.Shutdown()
		},
	})
}
