package storage

import (
	"context"
	"embed"
	"fmt"
	"log/slog"

	"github.com/employee-manager/internal/config"
	"github.com/pressly/goose/v3"
)

//go:embed migrations/sqlite/*.sql migrations/postgres/*.sql
var embedMigrations embed.FS

// Migrate применяет встроенные миграции для драйвера хранилища
func Migrate(ctx context.Context, s *Store) error {
	sqlDB, err := s.DB.DB()
	if err != nil {
		return fmt.Errorf("failed to get sql.DB: %w", err)
	}

	dialect, dir := "sqlite3", "migrations/sqlite"
	if s.driver == config.DriverPostgres {
		dialect, dir = "postgres", "migrations/postgres"
	}

	goose.SetBaseFS(embedMigrations)
	goose.SetLogger(slog.NewLogLogger(slog.Default().Handler(), slog.LevelDebug))

	if err := goose.SetDialect(dialect); err != nil {
		return fmt.Errorf("failed to set dialect: %w", err)
	}

	if err := goose.UpContext(ctx, sqlDB, dir); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	return nil
}
