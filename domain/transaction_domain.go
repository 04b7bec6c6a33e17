package domain

import (
	"time"

	"github.com/google/uuid"

	"inventory-brew/entities"
)

var (
	MessageFailedGetTransactions   = "Failed to fetch transactions"
	MessageInvalidTransactionQuery = "Invalid transaction query"
)

type (
	TransactionQuery struct {
		Page           int
		Limit          int
		IngredientID   string
		Type           string
		ReferenceType  string
		ReferenceID    string
		Reason         string
		DateFrom       *time.Time
		DateTo         *time.Time
		IncludeRelated bool
		SortBy         string
		SortOrder      string
	}

	TransactionIngredientRef struct {
		ID       uuid.UUID `json:"id"`
		Name     string    `json:"name"`
		Unit     string    `json:"unit"`
		IsActive bool      `json:"isActive"`
	}

	TransactionReference struct {
		Type     string     `json:"type"`
		ID       *uuid.UUID `json:"id"`
		Name     *string    `json:"name"`
		IsActive *bool      `json:"isActive"`
	}

	TransactionListItem struct {
		*entities.InventoryTransaction
		Ingredient *TransactionIngredientRef `json:"ingredient,omitempty"`
		Reference  *TransactionReference     `json:"reference,omitempty"`
	}

	TransactionListResponse struct {
		Items      []TransactionListItem `json:"items"`
		Pagination Pagination            `json:"pagination"`
	}
)
