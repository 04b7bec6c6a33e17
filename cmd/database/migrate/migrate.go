package migration

import (
	"fmt"

	"gorm.io/gorm"

	"inventory-brew/entities"
)

func Migrate(db *gorm.DB) error {
	db.Exec("CREATE EXTENSION IF NOT EXISTS \"uuid-ossp\";")

	if err := db.AutoMigrate(&entities.Ingredient{}); err != nil {
		return fmt.Errorf("migrating ingredients: %w", err)
	}
	if err := db.AutoMigrate(&entities.Recipe{}); err != nil {
		return fmt.Errorf("migrating recipes: %w", err)
	}
	if err := db.AutoMigrate(&entities.RecipeIngredient{}); err != nil {
		return fmt.Errorf("migrating recipe ingredients: %w", err)
	}
	if err := db.AutoMigrate(&entities.InventoryTransaction{}); err != nil {
		return fmt.Errorf("migrating inventory transactions: %w", err)
	}

	fmt.Println("Database migration complete")
	return nil
}
