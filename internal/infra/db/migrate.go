package db

import (
	"context"
	"database/sql"
	"embed"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
)

//go:embed migrations
var embedMigrations embed.FS

const migrationsTable = "schema_migrations"

func migrationDir(driver string) (dir, dialect string, err error) {
	switch driver {
	case "postgres":
		return "migrations/postgres", "postgres", nil
	case "sqlite":
		return "migrations/sqlite", "sqlite3", nil
	}
	return "", "", fmt.Errorf("unsupported driver for migrations: %s", driver)
}

// Migrate накатывает встроенные миграции для driver (postgres|sqlite) на открытую базу.
func Migrate(ctx context.Context, driver string, sqlDB *sql.DB) error {
	dir, dialect, err := migrationDir(driver)
	if err != nil {
		return err
	}
	goose.SetBaseFS(embedMigrations)
	goose.SetTableName(migrationsTable)
	if err := goose.SetDialect(dialect); err != nil {
		return err
	}
	if err := goose.UpContext(ctx, sqlDB, dir); err != nil {
		return fmt.Errorf("goose up (%s): %w", driver, err)
	}
	return nil
}

// MigratePool - то же для pgx-пула: goose работает через database/sql.
func MigratePool(ctx context.Context, pool *pgxpool.Pool) error {
	// sql.DB не закрываем: соединениями владеет пул
	sqlDB := stdlib.OpenDBFromPool(pool)
	return Migrate(ctx, "postgres", sqlDB)
}
