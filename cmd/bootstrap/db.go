package bootstrap

import (
	"context"
	"log/slog"
	"time"

	"auction-scheduler/cmd/bootstrap/components"
	"auction-scheduler/internal/infra/db"
	"auction-scheduler/internal/infra/sqlite"
	"auction-scheduler/internal/pkg/config"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

const sqliteOpenTimeout = 10 * time.Second

var DBModule = fx.Module("db",
	fx.Provide(
		NewPersistence,
	),
)

// NewPersistence opens the backend selected by DB_DRIVER and exposes it through the storage ports.
func NewPersistence(lc fx.Lifecycle, cfg config.Config, logger *slog.Logger) (components.Persistence, error) {
	if cfg.DB.Driver == config.DriverSQLite {
		store, err := NewSQLiteStore(lc, cfg, logger)
		if err != nil {
			return components.Persistence{}, err
		}
		return components.NewSQLitePersistence(store), nil
	}

	pool, err := NewDB(lc, cfg)
	if err != nil {
		return components.Persistence{}, err
	}
	return components.NewPostgresPersistence(pool), nil
}

func NewDB(lc fx.Lifecycle, cfg config.Config) (*pgxpool.Pool, error) {
	if err := cfg.DB.Validate(); err != nil {
		return nil, err
	}
	if cfg.DB.AutoMigrate {
		ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
		defer cancel()
		if err := db.Migrate(ctx, cfg.DB); err != nil {
			return nil, err
		}
	}

	pool, cleanup, err := db.Connect(cfg.DB)
	if err != nil {
		return nil, err
	}

	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			if cleanup != nil {
				cleanup()
			}
			return nil
		},
	})

	return pool, nil
}

func NewSQLiteStore(lc fx.Lifecycle, cfg config.Config, logger *slog.Logger) (*sqlite.Store, error) {
	if err := cfg.DB.Validate(); err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(context.Background(), sqliteOpenTimeout)
	defer cancel()

	store, err := sqlite.Open(ctx, cfg.DB.SQLiteDSN())
	if err != nil {
		return nil, err
	}
	logger.Info("sqlite store opened", "path", cfg.DB.SQLitePath)

	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return store.Close()
		},
	})

	return store, nil
}
