package domain

import (
	"inventory-brew/entities"
)

var (
	MessageSuccessArchiveIngredient  = "Ingredient archived"
	MessageSuccessRestoreIngredient  = "Ingredient restored"
	MessageSuccessAdjustStock        = "Stock adjusted"
	MessageFailedGetIngredients      = "Failed to fetch ingredients"
	MessageFailedGetIngredient       = "Failed to fetch ingredient"
	MessageFailedCreateIngredient    = "Failed to create ingredient"
	MessageFailedUpdateIngredient    = "Failed to update ingredient"
	MessageFailedArchiveIngredient   = "Failed to archive ingredient"
	MessageFailedRestoreIngredient   = "Failed to restore ingredient"
	MessageFailedAdjustStock         = "Failed to adjust stock"
	MessageInvalidIngredientPayload  = "Invalid ingredient payload"
	MessageInvalidIngredientID       = "Invalid ingredient id"
	MessageIngredientNotFound        = "Ingredient not found"
	MessageIngredientAlreadyActive   = "Ingredient is already active"
	MessageIngredientAlreadyInactive = "Ingredient already inactive"
)

type (
	CreateIngredientRequest struct {
		Name          string   `json:"name" validate:"required"`
		Manufacturer  string   `json:"manufacturer" validate:"omitempty"`
		Category      string   `json:"category" validate:"omitempty"`
		Unit          string   `json:"unit" validate:"required,oneof=pcs g kg ml l"`
		StockQuantity *float64 `json:"stockQuantity" validate:"omitempty,min=0"`
		CostPerUnit   *float64 `json:"costPerUnit" validate:"omitempty,min=0"`
		ReorderLevel  *float64 `json:"reorderLevel" validate:"omitempty,min=0"`
		IsActive      *bool    `json:"isActive" validate:"omitempty"`
	}

	UpdateIngredientRequest struct {
		Name         *string  `json:"name" validate:"omitempty,min=1"`
		Manufacturer *string  `json:"manufacturer" validate:"omitempty"`
		Category     *string  `json:"category" validate:"omitempty"`
		Unit         *string  `json:"unit" validate:"omitempty,oneof=pcs g kg ml l"`
		CostPerUnit  *float64 `json:"costPerUnit" validate:"omitempty,min=0"`
		ReorderLevel *float64 `json:"reorderLevel" validate:"omitempty,min=0"`
	}

	// AdjustStockRequest moves stock by Quantity for IN and OUT, or sets the
	// absolute stock level to Quantity for ADJUST.
	AdjustStockRequest struct {
		Type     string   `json:"type" validate:"required,oneof=IN OUT ADJUST"`
		Quantity float64  `json:"quantity" validate:"required,min=0"`
		Reason   string   `json:"reason" validate:"omitempty"`
		UnitCost *float64 `json:"unitCost" validate:"omitempty,min=0"`
	}

	IngredientQuery struct {
		Page             int
		Limit            int
		Search           string
		Category         string
		IncludeInactive  bool
		OnlyInactive     bool
		LowStockOnly     bool
		HealthyStockOnly bool
		SortBy           string
		SortOrder        string
	}

	IngredientListResponse struct {
		Items      []*entities.Ingredient `json:"items"`
		Pagination Pagination             `json:"pagination"`
	}

	AdjustStockResponse struct {
		Message     string                         `json:"message"`
		Ingredient  *entities.Ingredient           `json:"ingredient"`
		Transaction *entities.InventoryTransaction `json:"transaction"`
	}
)
