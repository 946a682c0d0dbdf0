// Package store implements the domain repositories with GORM. The same code
// runs against PostgreSQL in production and SQLite in development and tests.
package store

import (
	"context"
	"database/sql"
	"log/slog"
	"time"

	"agrifarma/config"
	"agrifarma/internal/domain/lifecycle"
	"agrifarma/internal/errors"
	"agrifarma/internal/infra/persistence/model"
	"agrifarma/internal/infra/persistence/postgres"
	"agrifarma/internal/infra/persistence/sqlite"

	"go.uber.org/fx"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const (
	dbPoolMonitorInterval       = 5 * time.Second
	dbPoolWarnDurationThreshold = 50 * time.Millisecond
)

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// New opens the configured database and ties its lifetime to the fx app.
func New(params Params) (*gorm.DB, error) {
	db, err := Open(params.Config, params.Logger)
	if err != nil {
		return nil, err
	}

	if params.Config.Database.AutoMigrate {
		if err := Migrate(db); err != nil {
			return nil, err
		}
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, errors.Wrap(err, "failed to get sql.DB")
	}

	monitorCtx, cancelMonitor := context.WithCancel(context.Background())

	params.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
			defer cancel()

			if err := sqlDB.PingContext(ctx); err != nil {
				return errors.Wrap(err, "failed to ping database")
			}

			go monitorDBPool(monitorCtx, params.Logger, sqlDB, dbPoolMonitorInterval)

			return nil
		},
		OnStop: func(_ context.Context) error {
			cancelMonitor()

			return sqlDB.Close()
		},
	})

	return db, nil
}

// Open connects to the driver named in cfg without registering lifecycle hooks.
func Open(cfg *config.Config, baseLogger *slog.Logger) (*gorm.DB, error) {
	gormLogger := newGormSlogLogger(baseLogger, cfg)

	var (
		db  *gorm.DB
		err error
	)
	switch cfg.Database.Driver {
	case config.DriverPostgres:
		db, err = postgres.Open(cfg.Postgres)
	case config.DriverSQLite:
		db, err = sqlite.Open(cfg.SQLite.Path, &gorm.Config{Logger: gormLogger})
	default:
		err = errors.Errorf("unsupported database driver: %s", cfg.Database.Driver)
	}
	if err != nil {
		return nil, err
	}

	return Configure(db, gormLogger), nil
}

// Configure applies the session settings every repository relies on.
func Configure(db *gorm.DB, gormLogger logger.Interface) *gorm.DB {
	// Driver errors are mapped onto gorm.ErrDuplicatedKey and friends.
	db.Config.TranslateError = true

	return db.Session(&gorm.Session{
		// Explicit transactions go through TransactionManager.Execute.
		SkipDefaultTransaction: true,
		Logger:                 gormLogger,
	})
}

// Migrate creates or updates every table, index and foreign key.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(model.All()...); err != nil {
		return errors.Wrap(err, "failed to migrate schema")
	}

	return nil
}

func monitorDBPool(ctx context.Context, poolLogger *slog.Logger, sqlDB *sql.DB, interval time.Duration) {
	if poolLogger == nil || sqlDB == nil {
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
			waitDelta := cur.WaitCount - prev.WaitCount
			waitDurationDelta := cur.WaitDuration - prev.WaitDuration

			if waitDelta > 0 {
				attrs := []slog.Attr{
					slog.Int64("waitCountDelta", waitDelta),
					slog.Duration("waitDurationDelta", waitDurationDelta),
					slog.Duration("avgWait", waitDurationDelta/time.Duration(waitDelta)),
					slog.Int("maxOpenConns", cur.MaxOpenConnections),
					slog.Int("openConns", cur.OpenConnections),
					slog.Int("inUseConns", cur.InUse),
					slog.Int("idleConns", cur.Idle),
				}
				if waitDurationDelta >= dbPoolWarnDurationThreshold {
					poolLogger.LogAttrs(ctx, slog.LevelWarn, "Database pool wait detected", attrs...)
				} else {
					poolLogger.LogAttrs(ctx, slog.LevelDebug, "Database pool wait observed", attrs...)
				}
			}

			prev = cur
		}
	}
}
