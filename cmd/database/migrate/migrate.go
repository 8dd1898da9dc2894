package migration

import (
	"Digital-Menu-Builder/entities"
	"fmt"

	"github.com/gofiber/fiber/v2/log"
	"gorm.io/gorm"
)

func Migrate(db *gorm.DB) error {
	if err := db.Exec("CREATE EXTENSION IF NOT EXISTS \"uuid-ossp\";").Error; err != nil {
		return fmt.Errorf("create uuid-ossp extension: %w", err)
	}

	if err := db.AutoMigrate(&entities.MenuSnapshot{}); err != nil {
		return fmt.Errorf("migrate menu snapshots: %w", err)
	}

	log.Info("Database migration complete")
	return nil
}
