package db

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"autoflow/internal/pkg/config"
	"autoflow/migrations"

	_ "github.com/jackc/pgx/v5/stdlib" // database/sql driver for goose
	"github.com/pressly/goose/v3"
)

// Migrate applies the embedded SQL migrations.
func Migrate(ctx context.Context, cfg config.DBConfig) error {
	sqlDB, err := sql.Open("pgx", cfg.BuildDSN())
	if err != nil {
		return fmt.Errorf("failed to open migration connection: %w", err)
	}
	defer func() {
		if cerr := sqlDB.Close(); cerr != nil {
			slog.Warn("failed to close migration connection", "error", cerr.Error())
		}
	}()

	provider, err := goose.NewProvider(goose.DialectPostgres, sqlDB, migrations.FS)
	if err != nil {
		return fmt.Errorf("failed to create migration provider: %w", err)
	}

	results, err := provider.Up(ctx)
	if err != nil {
		return fmt.Errorf("failed to apply migrations: %w", err)
	}
	for _, r := range results {
		slog.Info("migration applied", "version", r.Source.Version, "duration", r.Duration.String())
	}
	return nil
}
