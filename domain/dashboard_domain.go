package domain

import (
	"time"

	"github.com/google/uuid"
)

var MessageFailedGetDashboard = "Failed to fetch dashboard summary"

type (
	DashboardQuery struct {
		LowStockLimit           int
		RecentTransactionsLimit int
		IncludeInactive         bool
		IncludeRelated          bool
	}

	DashboardSummary struct {
		IngredientCount int64   `json:"ingredientCount"`
		RecipeCount     int64   `json:"recipeCount"`
		LowStockCount   int64   `json:"lowStockCount"`
		TotalStockValue float64 `json:"totalStockValue"`
	}

	LowStockItem struct {
		ID            uuid.UUID `json:"id"`
		Name          string    `json:"name"`
		Unit          string    `json:"unit"`
		StockQuantity float64   `json:"stockQuantity"`
		ReorderLevel  float64   `json:"reorderLevel"`
		Shortfall     float64   `json:"shortfall"`
		StockValue    float64   `json:"stockValue"`
		IsActive      bool      `json:"isActive"`
	}

	DashboardMeta struct {
		IncludeInactive         bool      `json:"includeInactive"`
		LowStockLimit           int       `json:"lowStockLimit"`
		RecentTransactionsLimit int       `json:"recentTransactionsLimit"`
		GeneratedAt             time.Time `json:"generatedAt"`
	}

	DashboardSummaryResponse struct {
		Summary            DashboardSummary      `json:"summary"`
		LowStockItems      []LowStockItem        `json:"lowStockItems"`
		RecentTransactions []TransactionListItem `json:"recentTransactions"`
		Meta               DashboardMeta         `json:"meta"`
	}
)
