package database

import (
	"fmt"

	"github.com/wandererhq/wanderer-core/internal/config"
	"github.com/wandererhq/wanderer-core/internal/models"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Connect opens a MySQL connection and optionally runs auto-migration.
func Connect(cfg *config.AppConfig, autoMigrate bool) (*gorm.DB, error) {
	logLevel := logger.Warn
	if cfg.IsDev() {
		logLevel = logger.Info
	}

	db, err := gorm.Open(mysql.Open(cfg.Database.DSNValue()), &gorm.Config{
		Logger: logger.Default.LogMode(logLevel),
	})
	if err != nil {
		return nil, fmt.Errorf("open mysql: %w", err)
	}

	if autoMigrate {
		if err := migrate(db); err != nil {
			return nil, fmt.Errorf("migration failed: %w", err)
		}
	}
	return db, nil
}

func migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.UserModel{},
		&models.RoleModel{},
		&models.UserSession{},
		&models.CategoryModel{},
		&models.SubcategoryModel{},
		&models.SpotModel{},
		&models.AccommodationModel{},
		&models.RestaurantModel{},
		&models.EventModel{},
		&models.ItineraryModel{},
		&models.ReviewModel{},
		&models.FavoriteModel{},
	)
}
