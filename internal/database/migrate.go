package database

import (
	"gorm.io/gorm"

	"github.com/BIUSYZ/mycooook/internal/models"
)

// Migrate brings the schema up to date.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.Recipe{},
		&models.RecipeIngredient{},
		&models.CookingStep{},
		&models.RecipeTag{},
		&models.IngredientOption{},
		&models.MealRecord{},
	)
}
