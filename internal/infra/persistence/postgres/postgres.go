package postgres

import (
	"context"
	"database/sql"
	"log/slog"
	"time"

	"washapp/config"
	"washapp/internal/domain/lifecycle"
	"washapp/internal/errors"
	"washapp/internal/infra/persistence/model"

	pgLib "github.com/slighter12/go-lib/database/postgres"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

const (
	poolSampleInterval = 5 * time.Second
	poolSlowWait       = 50 * time.Millisecond
)

type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// New opens the booking database. Writes and locking reads go to the primary, listings
// and dashboards to replicas when configured (see resolver.go).
//
// Driver errors are translated to gorm sentinels so repositories can tell a double
// booking of a unique row from a dangling reference. Multi-step writes such as
// booking creation and review submission run through txManager.Execute, so GORM's
// implicit per-statement transaction is off.
func New(params Params) (*gorm.DB, error) {
	if params.Config.Postgres == nil {
		return nil, errors.New("postgres configuration is missing")
	}

	db, err := pgLib.New(params.Config.Postgres)
	if err != nil {
		return nil, errors.Wrap(err, "failed to open booking database")
	}
	db.TranslateError = true
	db = db.Session(&gorm.Session{
		SkipDefaultTransaction: true,
		Logger:                 newGormSlogLogger(params.Logger, params.Config),
	})

	sqlDB, err := db.DB()
	if err != nil {
		return nil, errors.Wrap(err, "failed to get booking database pool")
	}

	stopSampling := func() {}
	params.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
			defer cancel()

			if err := sqlDB.PingContext(ctx); err != nil {
				return errors.Wrap(err, "booking database unreachable")
			}

			if params.Config.Database != nil && params.Config.Database.AutoMigrate {
				if err := model.AutoMigrate(db.WithContext(ctx)); err != nil {
					return errors.Wrap(err, "failed to migrate schema")
				}
				params.Logger.InfoContext(ctx, "Database schema migrated", slog.Int("tables", len(model.Tables())))
			}

			var sampleCtx context.Context
			sampleCtx, stopSampling = context.WithCancel(context.Background())
			go samplePool(sampleCtx, params.Logger, sqlDB, poolSampleInterval)

			return nil
		},
		OnStop: func(_ context.Context) error {
			stopSampling()

			return sqlDB.Close()
		},
	})

	return db, nil
}

// samplePool logs whenever requests queued for a connection since the last tick.
func samplePool(ctx context.Context, logger *slog.Logger, sqlDB *sql.DB, interval time.Duration) {
	if logger == nil || sqlDB == nil {
		return
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	prev := sqlDB.Stats()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			cur := sqlDB.Stats()
			if level, attrs, waited := poolWait(prev, cur); waited {
				logger.LogAttrs(ctx, level, "Booking database pool wait", attrs...)
			}
			prev = cur
		}
	}
}

// poolWait compares two pool snapshots. It reports false when nobody waited in between.
func poolWait(prev, cur sql.DBStats) (slog.Level, []slog.Attr, bool) {
	waits := cur.WaitCount - prev.WaitCount
	if waits <= 0 {
		return slog.LevelDebug, nil, false
	}
	waited := cur.WaitDuration - prev.WaitDuration

	level := slog.LevelDebug
	if waited >= poolSlowWait {
		level = slog.LevelWarn
	}

	return level, []slog.Attr{
		slog.Int64("waits", waits),
		slog.Duration("waited", waited),
		slog.Duration("avgWait", waited/time.Duration(waits)),
		slog.Int("open", cur.OpenConnections),
		slog.Int("inUse", cur.InUse),
		slog.Int("idle", cur.Idle),
		slog.Int("maxOpen", cur.MaxOpenConnections),
	}, true
}
