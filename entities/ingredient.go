package entities

import (
	"github.com/google/uuid"
)

// Ingredient stock is never written directly by CRUD updates. It only moves
// through the adjust-stock operation or the cook executor, both of which emit
// a matching InventoryTransaction entry.
type Ingredient struct {
	ID            uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	Name          string    `gorm:"not null" json:"name"`
	Manufacturer  string    `json:"manufacturer,omitempty"`
	Category      string    `json:"category,omitempty"`
	Unit          string    `gorm:"not null" json:"unit"` // pcs, g, kg, ml, l
	StockQuantity float64   `gorm:"not null;default:0" json:"stockQuantity"`
	CostPerUnit   float64   `gorm:"not null;default:0" json:"costPerUnit"`
	ReorderLevel  float64   `gorm:"default:0" json:"reorderLevel"` // 0 disables low-stock alerts
	IsActive      bool      `gorm:"default:true;index" json:"isActive"`

	Timestamp
}
