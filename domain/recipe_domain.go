package domain

import (
	"github.com/google/uuid"

	"inventory-brew/entities"
)

var (
	MessageSuccessCookRecipe    = "Recipe cooked successfully"
	MessageSuccessArchiveRecipe = "Recipe archived"
	MessageSuccessRestoreRecipe = "Recipe restored"
	MessageRecipeAlreadyActive  = "Recipe is already active"
	MessageRecipeAlreadyArchive = "Recipe already inactive"
	MessageFailedGetRecipes     = "Failed to fetch recipes"
	MessageFailedGetRecipe      = "Failed to fetch recipe"
	MessageFailedCreateRecipe   = "Failed to create recipe"
	MessageFailedUpdateRecipe   = "Failed to update recipe"
	MessageFailedArchiveRecipe  = "Failed to archive recipe"
	MessageFailedRestoreRecipe  = "Failed to restore recipe"
	MessageFailedCookRecipe     = "Failed to cook recipe"
	MessageInvalidRecipePayload = "Invalid recipe payload"
	MessageInvalidRecipeID      = "Invalid recipe id"
	MessageRecipeNotFound       = "Recipe not found"
	MessageInvalidCookPayload   = "Invalid cook payload"
)

type (
	RecipeIngredientLine struct {
		IngredientID string  `json:"ingredientId" validate:"required,uuid"`
		Quantity     float64 `json:"quantity" validate:"required,gt=0"`
		Unit         string  `json:"unit" validate:"required,oneof=pcs g kg ml l"`
	}

	CreateRecipeRequest struct {
		Name         string                 `json:"name" validate:"required"`
		Description  string                 `json:"description" validate:"omitempty"`
		SellingPrice *float64               `json:"sellingPrice" validate:"omitempty,min=0"`
		Ingredients  []RecipeIngredientLine `json:"ingredients" validate:"required,min=1,dive"`
		IsActive     *bool                  `json:"isActive" validate:"omitempty"`
	}

	UpdateRecipeRequest struct {
		Name         *string                `json:"name" validate:"omitempty,min=1"`
		Description  *string                `json:"description" validate:"omitempty"`
		SellingPrice *float64               `json:"sellingPrice" validate:"omitempty,min=0"`
		Ingredients  []RecipeIngredientLine `json:"ingredients" validate:"omitempty,min=1,dive"`
	}

	RecipeQuery struct {
		Page            int
		Limit           int
		Search          string
		IncludeInactive bool
		OnlyInactive    bool
		IncludeComputed bool
		SortBy          string
		SortOrder       string
	}

	// RecipeMetrics is derived from current ingredient costs; it is a view,
	// never stored.
	RecipeMetrics struct {
		CostPerServing float64 `json:"costPerServing"`
		Margin         float64 `json:"margin"`
		MarginPercent  float64 `json:"marginPercent"`
	}

	RecipeListItem struct {
		*entities.Recipe
		Computed *RecipeMetrics `json:"computed,omitempty"`
	}

	RecipeListResponse struct {
		Items      []RecipeListItem `json:"items"`
		Pagination Pagination       `json:"pagination"`
	}

	RecipeIngredientDetail struct {
		IngredientID       uuid.UUID `json:"ingredientId"`
		IngredientName     string    `json:"ingredientName"`
		IngredientUnit     string    `json:"ingredientUnit,omitempty"`
		IngredientIsActive bool      `json:"ingredientIsActive"`
		Quantity           float64   `json:"quantity"`
		Unit               string    `json:"unit"`
		CostPerUnit        float64   `json:"costPerUnit"`
		CostContribution   float64   `json:"costContribution"`
	}

	RecipeDetailResponse struct {
		Recipe            *entities.Recipe         `json:"recipe"`
		IngredientDetails []RecipeIngredientDetail `json:"ingredientDetails"`
		Computed          *RecipeMetrics           `json:"computed,omitempty"`
	}

	CookRequest struct {
		Servings int `json:"servings" validate:"required,min=1"`
	}

	RecipeRef struct {
		ID   uuid.UUID `json:"id"`
		Name string    `json:"name"`
	}

	ConsumptionEntry struct {
		IngredientID     uuid.UUID `json:"ingredientId"`
		IngredientName   string    `json:"ingredientName"`
		Unit             string    `json:"unit"`
		RequiredQuantity float64   `json:"requiredQuantity"`
		PreviousStock    float64   `json:"previousStock"`
		NewStock         float64   `json:"newStock"`
		CostPerUnit      float64   `json:"costPerUnit"`
	}

	// CookResult reports what a cook invocation consumed and which execution
	// path applied it. Callers must not rely on ExecutionMode always being
	// "transaction".
	CookResult struct {
		Recipe              RecipeRef          `json:"recipe"`
		Servings            int                `json:"servings"`
		Consumption         []ConsumptionEntry `json:"consumption"`
		TransactionsCreated int                `json:"transactionsCreated"`
		ExecutionMode       string             `json:"executionMode"` // "transaction" or "fallback"
	}

	CookResponse struct {
		Message             string             `json:"message"`
		ExecutionMode       string             `json:"executionMode"`
		Recipe              RecipeRef          `json:"recipe"`
		Servings            int                `json:"servings"`
		Consumption         []ConsumptionEntry `json:"consumption"`
		TransactionsCreated int                `json:"transactionsCreated"`
	}
)
