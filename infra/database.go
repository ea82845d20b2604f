// Package infra wires concrete infrastructure: the database connection and
// external providers.
package infra

import (
	"fmt"
	"log/slog"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/veneS-Sudo/MiniBank/infra/repository"
	"github.com/veneS-Sudo/MiniBank/pkg/config"
)

// OpenDatabase connects to Postgres and migrates the schema.
func OpenDatabase(cfg config.DB, logger *slog.Logger) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(cfg.Url), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	if err := repository.Migrate(db); err != nil {
		return nil, fmt.Errorf("migrate database: %w", err)
	}
	logger.Info("database connected and migrated")
	return db, nil
}
