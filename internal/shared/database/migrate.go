package database

import (
	"database/sql"
	"fmt"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
	"github.com/rs/zerolog"

	"github.com/andrasnagy-data/campsite/internal/shared/config"
	"github.com/andrasnagy-data/campsite/internal/shared/database/migrations"
)

// RunMigrations applies the embedded goose migrations against the configured
// database. Goose works over database/sql, so a short-lived stdlib connection
// is opened next to the pgx pool.
func RunMigrations(cfg *config.Config, logger zerolog.Logger) error {
	db, err := sql.Open("pgx", cfg.DatabaseURL)
	if err != nil {
		return fmt.Errorf("db open error: %w", err)
	}
	defer db.Close()

	goose.SetBaseFS(migrations.Migrations)

	if err := goose.SetDialect("postgres"); err != nil {
		return err
	}

	if err := goose.Up(db, "."); err != nil {
		logger.Error().Err(err).Msg("Database migration failed")
		return err
	}

	logger.Debug().Msg("Database migrations applied")
	return nil
}
