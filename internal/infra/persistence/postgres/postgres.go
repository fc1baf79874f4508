// Package postgres implements the repositories on GORM and PostgreSQL.
package postgres

import (
	"context"
	"database/sql"
	"log/slog"
	"time"

	"zembil/config"
	"zembil/internal/domain/lifecycle"
	"zembil/internal/infra/persistence/model"

	"github.com/pkg/errors"
	pgLib "github.com/slighter12/go-lib/database/postgres"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

const (
	dbPoolMonitorInterval       = 5 * time.Second
	dbPoolWarnDurationThreshold = 50 * time.Millisecond
)

// Params are the dependencies of the PostgreSQL client.
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// New opens the primary connection (and any replicas) and ties pool checks,
// optional auto-migration and shutdown to the fx lifecycle.
func New(params Params) (*gorm.DB, error) {
	db, err := pgLib.New(params.Config.Postgres)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create PostgreSQL client")
	}
	db = db.Session(&gorm.Session{
		// multi-step writes go through TransactionManager.Execute
		SkipDefaultTransaction: true,
		Logger:                 newQueryLogger(params.Logger, params.Config),
	})

	sqlDB, err := db.DB()
	if err != nil {
		return nil, errors.Wrap(err, "failed to get PostgreSQL sql.DB")
	}

	monitorCtx, cancelMonitor := context.WithCancel(context.Background())

	params.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
			defer cancel()

			if err := sqlDB.PingContext(ctx); err != nil {
				return errors.Wrap(err, "failed to ping PostgreSQL")
			}

			if params.Config.Env.AutoMigrate {
				if err := Migrate(ctx, db); err != nil {
					return err
				}
				params.Logger.InfoContext(ctx, "Postgres schema migrated")
			}

			go watchPool(monitorCtx, params.Logger, sqlDB, dbPoolMonitorInterval)

			return nil
		},
		OnStop: func(_ context.Context) error {
			cancelMonitor()

			return sqlDB.Close()
		},
	})

	return db, nil
}

// Migrate creates or updates the tables of every persistence model.
func Migrate(ctx context.Context, db *gorm.DB) error {
	if err := db.WithContext(ctx).AutoMigrate(model.All()...); err != nil {
		return errors.Wrap(err, "failed to migrate PostgreSQL schema")
	}

	return nil
}

// poolWatcher reports connection pool contention between two samples.
type poolWatcher struct {
	logger *slog.Logger
	last   sql.DBStats
}

func watchPool(ctx context.Context, logger *slog.Logger, db *sql.DB, interval time.Duration) {
	if logger == nil || db == nil {
		return
	}

	watcher := &poolWatcher{logger: logger, last: db.Stats()}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			watcher.observe(ctx, db.Stats())
		}
	}
}

func (w *poolWatcher) observe(ctx context.Context, stats sql.DBStats) {
	waits := stats.WaitCount - w.last.WaitCount
	waited := stats.WaitDuration - w.last.WaitDuration
	w.last = stats

	if waits <= 0 {
		return
	}

	level := slog.LevelDebug
	if waited >= dbPoolWarnDurationThreshold {
		level = slog.LevelWarn
	}

	w.logger.LogAttrs(ctx, level, "Postgres connections waited",
		slog.Int64("waits", waits),
		slog.Duration("waited", waited),
		slog.Duration("avgWait", waited/time.Duration(waits)),
		slog.Int("open", stats.OpenConnections),
		slog.Int("inUse", stats.InUse),
		slog.Int("idle", stats.Idle),
		slog.Int("maxOpen", stats.MaxOpenConnections),
	)
}
