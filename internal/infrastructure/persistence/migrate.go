package persistence

import (
	"fmt"

	"github.com/skillswap/backend/internal/infrastructure/persistence/models"
)

// AutoMigrate creates or updates the schema for all persistence models.
func (d *Database) AutoMigrate() error {
	if err := d.DB.AutoMigrate(models.AllModels()...); err != nil {
		return fmt.Errorf("auto-migrating schema: %w", err)
	}
	return nil
}
