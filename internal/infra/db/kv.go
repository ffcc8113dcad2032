package db

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/NastyaGoryachaya/coin-tracker/internal/config"
	"github.com/NastyaGoryachaya/coin-tracker/internal/repository"
	"github.com/NastyaGoryachaya/coin-tracker/internal/repository/memory"
	"github.com/NastyaGoryachaya/coin-tracker/internal/repository/postgres"
	"github.com/NastyaGoryachaya/coin-tracker/internal/repository/sqlite"
)

// OpenKV выбирает хранилище по cfg.Storage.Driver и при необходимости накатывает миграции.
func OpenKV(ctx context.Context, cfg *config.Config, log *slog.Logger) (repository.KV, error) {
	driver := cfg.Storage.Driver
	if driver == "" {
		driver = "sqlite"
	}
	switch driver {
	case "memory":
		log.Info("storage: using in-memory backend")
		return memory.New(), nil

	case "sqlite":
		log.Info("storage: using sqlite", slog.String("path", cfg.SQLite.Path))
		st, err := sqlite.Open(cfg.SQLite.Path)
		if err != nil {
			return nil, err
		}
		if cfg.Storage.AutoMigrate {
			if err := Migrate(ctx, "sqlite", st.DB()); err != nil {
				st.Close()
				return nil, fmt.Errorf("storage migrate: %w", err)
			}
		}
		return st, nil

	case "postgres":
		log.Info("storage: using postgres", slog.String("host", cfg.Postgres.Host), slog.String("db", cfg.Postgres.DBName))
		pool, err := NewPool(&cfg.Postgres)
		if err != nil {
			return nil, err
		}
		if cfg.Storage.AutoMigrate {
			if err := MigratePool(ctx, pool); err != nil {
				pool.Close()
				return nil, fmt.Errorf("storage migrate: %w", err)
			}
		}
		return postgres.NewKVRepo(pool), nil

	default:
		return nil, fmt.Errorf("unsupported storage driver %q", driver)
	}
}
