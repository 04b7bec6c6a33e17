package ingredient

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"inventory-brew/domain"
	"inventory-brew/entities"
)

var ingredientSortFields = map[string]string{
	"name":          "name",
	"stockQuantity": "stock_quantity",
	"costPerUnit":   "cost_per_unit",
	"reorderLevel":  "reorder_level",
	"createdAt":     "created_at",
	"updatedAt":     "updated_at",
}

type (
	IngredientRepository interface {
		InTransaction(ctx context.Context, fn func(repo IngredientRepository) error) error
		FindAll(ctx context.Context, query domain.IngredientQuery) ([]*entities.Ingredient, int64, error)
		FindByID(ctx context.Context, id uuid.UUID) (*entities.Ingredient, error)
		// FindByIDForUpdate takes the row lock with the read. Stock writes
		// computed from the returned row must use this inside a transaction,
		// otherwise two concurrent read-compute-write sequences can both read
		// the same stock and one overwrites the other.
		FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*entities.Ingredient, error)
		Create(ctx context.Context, ingredient *entities.Ingredient) error
		Save(ctx context.Context, ingredient *entities.Ingredient) error
		CreateTransaction(ctx context.Context, entry *entities.InventoryTransaction) error
	}

	ingredientRepository struct {
		db *gorm.DB
	}
)

func NewIngredientRepository(db *gorm.DB) IngredientRepository {
	return &ingredientRepository{db: db}
}

func (r *ingredientRepository) InTransaction(ctx context.Context, fn func(repo IngredientRepository) error) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&ingredientRepository{db: tx})
	})
}

func (r *ingredientRepository) FindAll(ctx context.Context, query domain.IngredientQuery) ([]*entities.Ingredient, int64, error) {
	var ingredients []*entities.Ingredient
	var count int64

	tx := r.db.WithContext(ctx).Model(&entities.Ingredient{})

	if query.OnlyInactive {
		tx = tx.Where("is_active = ?", false)
	} else if !query.IncludeInactive {
		tx = tx.Where("is_active = ?", true)
	}

	if query.Search != "" {
		pattern := "%" + strings.TrimSpace(query.Search) + "%"
		tx = tx.Where("name ILIKE ? OR manufacturer ILIKE ? OR category ILIKE ?", pattern, pattern, pattern)
	}

	if query.Category != "" {
		tx = tx.Where("category = ?", query.Category)
	}

	if query.LowStockOnly {
		tx = tx.Where("reorder_level > 0 AND stock_quantity < reorder_level")
	}
	if query.HealthyStockOnly {
		tx = tx.Where("reorder_level <= 0 OR stock_quantity >= reorder_level")
	}

	if err := tx.Count(&count).Error; err != nil {
		return nil, 0, err
	}

	column, ok := ingredientSortFields[query.SortBy]
	if !ok {
		column = "name"
	}
	direction := "asc"
	if strings.EqualFold(query.SortOrder, "desc") {
		direction = "desc"
	}

	offset := (query.Page - 1) * query.Limit
	if err := tx.Order(column + " " + direction).
		Offset(offset).
		Limit(query.Limit).
		Find(&ingredients).Error; err != nil {
		return nil, 0, err
	}

	return ingredients, count, nil
}

func (r *ingredientRepository) FindByID(ctx context.Context, id uuid.UUID) (*entities.Ingredient, error) {
	var ingredient entities.Ingredient
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&ingredient).Error; err != nil {
		return nil, err
	}
	return &ingredient, nil
}

func (r *ingredientRepository) FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*entities.Ingredient, error) {
	var ingredient entities.Ingredient
	if err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("id = ?", id).
		First(&ingredient).Error; err != nil {
		return nil, err
	}
	return &ingredient, nil
}

func (r *ingredientRepository) Create(ctx context.Context, ingredient *entities.Ingredient) error {
	return r.db.WithContext(ctx).Create(ingredient).Error
}

func (r *ingredientRepository) Save(ctx context.Context, ingredient *entities.Ingredient) error {
	return r.db.WithContext(ctx).Save(ingredient).Error
}

func (r *ingredientRepository) CreateTransaction(ctx context.Context, entry *entities.InventoryTransaction) error {
	return r.db.WithContext(ctx).Create(entry).Error
}
