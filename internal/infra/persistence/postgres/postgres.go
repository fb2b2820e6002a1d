package postgres

import (
	"context"
	"database/sql"
	"log/slog"
	"time"

	"beacon/config"
	"beacon/internal/domain/lifecycle"
	"beacon/internal/errors"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	pgLib "github.com/slighter12/go-lib/database/postgres"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

const (
	poolSampleInterval = 5 * time.Second
	poolWaitWarnAfter  = 50 * time.Millisecond
)

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
	// Registry is absent for the CLI, which exports no metrics.
	Registry *prometheus.Registry `optional:"true"`
}

// New opens the primary and replica pools, migrates on start when configured
// and samples pool contention until stop.
func New(params Params) (*gorm.DB, error) {
	db, err := pgLib.New(params.Config.Postgres)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create PostgreSQL client")
	}
	db = db.Session(&gorm.Session{
		SkipDefaultTransaction: true,
		Logger:                 newGormSlogLogger(params.Logger, params.Config),
	})

	sqlDB, err := db.DB()
	if err != nil {
		return nil, errors.Wrap(err, "failed to get PostgreSQL sql.DB")
	}

	if params.Registry != nil {
		if err := params.Registry.Register(collectors.NewDBStatsCollector(sqlDB, "primary")); err != nil {
			return nil, errors.Wrap(err, "failed to register pool metrics")
		}
	}

	sampleCtx, stopSampling := context.WithCancel(context.Background())

	params.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
			defer cancel()

			if err := sqlDB.PingContext(ctx); err != nil {
				return errors.Wrap(err, "failed to ping PostgreSQL")
			}

			if params.Config.Database != nil && params.Config.Database.AutoMigrate {
				if err := Migrate(ctx, db); err != nil {
					return err
				}
				params.Logger.InfoContext(ctx, "Notification tables migrated")
			}

			go samplePoolWaits(sampleCtx, params.Logger, sqlDB)

			return nil
		},
		OnStop: func(_ context.Context) error {
			stopSampling()

			return sqlDB.Close()
		},
	})

	return db, nil
}

// poolWait is the growth of the pool's wait counters between two samples.
type poolWait struct {
	count    int64
	duration time.Duration
}

func waitBetween(prev, cur sql.DBStats) poolWait {
	return poolWait{
		count:    cur.WaitCount - prev.WaitCount,
		duration: cur.WaitDuration - prev.WaitDuration,
	}
}

// samplePoolWaits logs whenever claims or history writes had to queue for a
// connection. Long waits usually mean queue.workers exceeds the pool size.
func samplePoolWaits(ctx context.Context, logger *slog.Logger, sqlDB *sql.DB) {
	ticker := time.NewTicker(poolSampleInterval)
	defer ticker.Stop()

	prev := sqlDB.Stats()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}

		cur := sqlDB.Stats()
		wait := waitBetween(prev, cur)
		prev = cur
		if wait.count <= 0 {
			continue
		}

		level := slog.LevelDebug
		if wait.duration >= poolWaitWarnAfter {
			level = slog.LevelWarn
		}
		logger.LogAttrs(ctx, level, "Connection pool wait",
			slog.Int64("waits", wait.count),
			slog.Duration("waited", wait.duration),
			slog.Duration("avg_wait", wait.duration/time.Duration(wait.count)),
			slog.Int("in_use", cur.InUse),
			slog.Int("idle", cur.Idle),
			slog.Int("max_open", cur.MaxOpenConnections),
		)
	}
}
