package transaction

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"inventory-brew/entities"
)

var transactionSortFields = map[string]string{
	"createdAt":     "created_at",
	"type":          "type",
	"quantity":      "quantity",
	"previousStock": "previous_stock",
	"newStock":      "new_stock",
	"unitCost":      "unit_cost",
}

// Filter is the storage-level shape of a ledger query: ids already parsed,
// dates already validated.
type Filter struct {
	IngredientID  *uuid.UUID
	Type          string
	ReferenceType string
	ReferenceID   *uuid.UUID
	Reason        string
	DateFrom      *time.Time
	DateTo        *time.Time
	Page          int
	Limit         int
	SortBy        string
	SortOrder     string
}

type (
	TransactionRepository interface {
		FindAll(ctx context.Context, filter Filter) ([]*entities.InventoryTransaction, int64, error)
		FindRecent(ctx context.Context, limit int) ([]*entities.InventoryTransaction, error)
		FindIngredientsByIDs(ctx context.Context, ids []uuid.UUID) ([]*entities.Ingredient, error)
		FindRecipesByIDs(ctx context.Context, ids []uuid.UUID) ([]*entities.Recipe, error)
	}

	transactionRepository struct {
		db *gorm.DB
	}
)

func NewTransactionRepository(db *gorm.DB) TransactionRepository {
	return &transactionRepository{db: db}
}

func (r *transactionRepository) FindAll(ctx context.Context, filter Filter) ([]*entities.InventoryTransaction, int64, error) {
	var transactions []*entities.InventoryTransaction
	var count int64

	tx := r.db.WithContext(ctx).Model(&entities.InventoryTransaction{})

	if filter.IngredientID != nil {
		tx = tx.Where("ingredient_id = ?", *filter.IngredientID)
	}
	if filter.Type != "" {
		tx = tx.Where("type = ?", filter.Type)
	}
	if filter.ReferenceType != "" {
		tx = tx.Where("reference_type = ?", filter.ReferenceType)
	}
	if filter.ReferenceID != nil {
		tx = tx.Where("reference_id = ?", *filter.ReferenceID)
	}
	if filter.Reason != "" {
		tx = tx.Where("reason ILIKE ?", "%"+strings.TrimSpace(filter.Reason)+"%")
	}
	if filter.DateFrom != nil {
		tx = tx.Where("created_at >= ?", *filter.DateFrom)
	}
	if filter.DateTo != nil {
		tx = tx.Where("created_at <= ?", *filter.DateTo)
	}

	if err := tx.Count(&count).Error; err != nil {
		return nil, 0, err
	}

	column, ok := transactionSortFields[filter.SortBy]
	if !ok {
		column = "created_at"
	}
	direction := "desc"
	if strings.EqualFold(filter.SortOrder, "asc") {
		direction = "asc"
	}

	offset := (filter.Page - 1) * filter.Limit
	if err := tx.Order(column + " " + direction).
		Offset(offset).
		Limit(filter.Limit).
		Find(&transactions).Error; err != nil {
		return nil, 0, err
	}

	return transactions, count, nil
}

func (r *transactionRepository) FindRecent(ctx context.Context, limit int) ([]*entities.InventoryTransaction, error) {
	var transactions []*entities.InventoryTransaction
	if err := r.db.WithContext(ctx).
		Order("created_at desc").
		Limit(limit).
		Find(&transactions).Error; err != nil {
		return nil, err
	}
	return transactions, nil
}

func (r *transactionRepository) FindIngredientsByIDs(ctx context.Context, ids []uuid.UUID) ([]*entities.Ingredient, error) {
	var ingredients []*entities.Ingredient
	if len(ids) == 0 {
		return ingredients, nil
	}
	if err := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&ingredients).Error; err != nil {
		return nil, err
	}
	return ingredients, nil
}

func (r *transactionRepository) FindRecipesByIDs(ctx context.Context, ids []uuid.UUID) ([]*entities.Recipe, error) {
	var recipes []*entities.Recipe
	if len(ids) == 0 {
		return recipes, nil
	}
	if err := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&recipes).Error; err != nil {
		return nil, err
	}
	return recipes, nil
}
