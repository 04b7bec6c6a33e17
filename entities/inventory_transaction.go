package entities

import (
	"time"

	"github.com/google/uuid"
)

const (
	TransactionTypeIn     = "IN"
	TransactionTypeOut    = "OUT"
	TransactionTypeAdjust = "ADJUST"
)

const (
	ReferenceTypeRecipe   = "recipe"
	ReferenceTypeManual   = "manual"
	ReferenceTypePurchase = "purchase"
	ReferenceTypeSystem   = "system"
)

// InventoryTransaction is an append-only ledger entry. Rows are never updated
// or deleted; replaying previous->new deltas from zero must reproduce the
// ingredient's current stock.
type InventoryTransaction struct {
	ID            uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	IngredientID  uuid.UUID  `gorm:"type:uuid;index;not null" json:"ingredientId"`
	Type          string     `gorm:"not null;index" json:"type"` // IN, OUT, ADJUST
	Quantity      float64    `gorm:"not null" json:"quantity"`   // absolute magnitude moved
	PreviousStock float64    `gorm:"not null" json:"previousStock"`
	NewStock      float64    `gorm:"not null" json:"newStock"`
	Reason        string     `json:"reason"`
	UnitCost      *float64   `json:"unitCost,omitempty"` // cost basis at time of movement
	ReferenceType string     `gorm:"index" json:"referenceType,omitempty"`
	ReferenceID   *uuid.UUID `gorm:"type:uuid" json:"referenceId,omitempty"`
	CreatedAt     time.Time  `gorm:"type:timestamp;index" json:"createdAt"`
}
