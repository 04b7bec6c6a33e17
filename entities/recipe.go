package entities

import (
	"github.com/google/uuid"
)

type Recipe struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	Name         string    `gorm:"not null" json:"name"`
	Description  string    `json:"description"`
	SellingPrice float64   `gorm:"not null;default:0" json:"sellingPrice"`
	IsActive     bool      `gorm:"default:true;index" json:"isActive"`

	Ingredients []RecipeIngredient `gorm:"foreignKey:RecipeID;constraint:OnDelete:CASCADE" json:"ingredients"`
	Timestamp
}

// RecipeIngredient is one weighted line of a recipe. Quantity is per serving.
// Lines for the same ingredient and unit are merged when the recipe is saved.
type RecipeIngredient struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"-"`
	RecipeID     uuid.UUID `gorm:"type:uuid;index;not null" json:"-"`
	IngredientID uuid.UUID `gorm:"type:uuid;not null" json:"ingredientId"`
	Quantity     float64   `gorm:"not null" json:"quantity"`
	Unit         string    `gorm:"not null" json:"unit"`
	Position     int       `gorm:"not null;default:0" json:"-"`
}
