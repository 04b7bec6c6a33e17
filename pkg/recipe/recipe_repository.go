package recipe

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"inventory-brew/domain"
	"inventory-brew/entities"
)

var recipeSortFields = map[string]string{
	"name":         "name",
	"sellingPrice": "selling_price",
	"createdAt":    "created_at",
	"updatedAt":    "updated_at",
}

type (
	RecipeRepository interface {
		InTransaction(ctx context.Context, fn func(repo RecipeRepository) error) error
		FindAll(ctx context.Context, query domain.RecipeQuery) ([]*entities.Recipe, int64, error)
		FindByID(ctx context.Context, id uuid.UUID) (*entities.Recipe, error)
		FindIngredientsByIDs(ctx context.Context, ids []uuid.UUID) ([]*entities.Ingredient, error)
		Create(ctx context.Context, recipe *entities.Recipe) error
		Save(ctx context.Context, recipe *entities.Recipe) error
		ReplaceLines(ctx context.Context, recipeID uuid.UUID, lines []entities.RecipeIngredient) error
	}

	recipeRepository struct {
		db *gorm.DB
	}
)

func NewRecipeRepository(db *gorm.DB) RecipeRepository {
	return &recipeRepository{db: db}
}

func (r *recipeRepository) InTransaction(ctx context.Context, fn func(repo RecipeRepository) error) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&recipeRepository{db: tx})
	})
}

func preloadLines(db *gorm.DB) *gorm.DB {
	return db.Order("recipe_ingredients.position asc")
}

func (r *recipeRepository) FindAll(ctx context.Context, query domain.RecipeQuery) ([]*entities.Recipe, int64, error) {
	var recipes []*entities.Recipe
	var count int64

	tx := r.db.WithContext(ctx).Model(&entities.Recipe{})

	if query.OnlyInactive {
		tx = tx.Where("is_active = ?", false)
	} else if !query.IncludeInactive {
		tx = tx.Where("is_active = ?", true)
	}

	if query.Search != "" {
		pattern := "%" + strings.TrimSpace(query.Search) + "%"
		tx = tx.Where("name ILIKE ? OR description ILIKE ?", pattern, pattern)
	}

	if err := tx.Count(&count).Error; err != nil {
		return nil, 0, err
	}

	column, ok := recipeSortFields[query.SortBy]
	if !ok {
		column = "name"
	}
	direction := "asc"
	if strings.EqualFold(query.SortOrder, "desc") {
		direction = "desc"
	}

	offset := (query.Page - 1) * query.Limit
	if err := tx.Preload("Ingredients", preloadLines).
		Order(column + " " + direction).
		Offset(offset).
		Limit(query.Limit).
		Find(&recipes).Error; err != nil {
		return nil, 0, err
	}

	return recipes, count, nil
}

func (r *recipeRepository) FindByID(ctx context.Context, id uuid.UUID) (*entities.Recipe, error) {
	var recipe entities.Recipe
	if err := r.db.WithContext(ctx).
		Preload("Ingredients", preloadLines).
		Where("id = ?", id).
		First(&recipe).Error; err != nil {
		return nil, err
	}
	return &recipe, nil
}

func (r *recipeRepository) FindIngredientsByIDs(ctx context.Context, ids []uuid.UUID) ([]*entities.Ingredient, error) {
	var ingredients []*entities.Ingredient
	if len(ids) == 0 {
		return ingredients, nil
	}
	if err := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&ingredients).Error; err != nil {
		return nil, err
	}
	return ingredients, nil
}

func (r *recipeRepository) Create(ctx context.Context, recipe *entities.Recipe) error {
	return r.db.WithContext(ctx).Create(recipe).Error
}

func (r *recipeRepository) Save(ctx context.Context, recipe *entities.Recipe) error {
	return r.db.WithContext(ctx).Omit("Ingredients").Save(recipe).Error
}

// ReplaceLines swaps the recipe's ingredient lines wholesale. Callers run it
// inside InTransaction together with the Save of the parent row.
func (r *recipeRepository) ReplaceLines(ctx context.Context, recipeID uuid.UUID, lines []entities.RecipeIngredient) error {
	if err := r.db.WithContext(ctx).
		Where("recipe_id = ?", recipeID).
		Delete(&entities.RecipeIngredient{}).Error; err != nil {
		return err
	}
	if len(lines) == 0 {
		return nil
	}
	for i := range lines {
		lines[i].RecipeID = recipeID
		lines[i].Position = i
	}
	return r.db.WithContext(ctx).Create(&lines).Error
}
