package dashboard

import (
	"context"

	"gorm.io/gorm"

	"inventory-brew/entities"
)

type (
	DashboardRepository interface {
		CountIngredients(ctx context.Context, includeInactive bool) (int64, error)
		CountRecipes(ctx context.Context, includeInactive bool) (int64, error)
		CountLowStock(ctx context.Context, includeInactive bool) (int64, error)
		SumStockValue(ctx context.Context, includeInactive bool) (float64, error)
		FindLowStock(ctx context.Context, includeInactive bool, limit int) ([]*entities.Ingredient, error)
	}

	dashboardRepository struct {
		db *gorm.DB
	}
)

func NewDashboardRepository(db *gorm.DB) DashboardRepository {
	return &dashboardRepository{db: db}
}

func activeScope(tx *gorm.DB, includeInactive bool) *gorm.DB {
	if includeInactive {
		return tx
	}
	return tx.Where("is_active = ?", true)
}

func (r *dashboardRepository) CountIngredients(ctx context.Context, includeInactive bool) (int64, error) {
	var count int64
	tx := activeScope(r.db.WithContext(ctx).Model(&entities.Ingredient{}), includeInactive)
	return count, tx.Count(&count).Error
}

func (r *dashboardRepository) CountRecipes(ctx context.Context, includeInactive bool) (int64, error) {
	var count int64
	tx := activeScope(r.db.WithContext(ctx).Model(&entities.Recipe{}), includeInactive)
	return count, tx.Count(&count).Error
}

// A reorder level of zero disables low-stock tracking for the ingredient.
func (r *dashboardRepository) CountLowStock(ctx context.Context, includeInactive bool) (int64, error) {
	var count int64
	tx := activeScope(r.db.WithContext(ctx).Model(&entities.Ingredient{}), includeInactive).
		Where("reorder_level > 0 AND stock_quantity < reorder_level")
	return count, tx.Count(&count).Error
}

func (r *dashboardRepository) SumStockValue(ctx context.Context, includeInactive bool) (float64, error) {
	var value float64
	tx := activeScope(r.db.WithContext(ctx).Model(&entities.Ingredient{}), includeInactive).
		Select("COALESCE(SUM(stock_quantity * cost_per_unit), 0)")
	return value, tx.Scan(&value).Error
}

func (r *dashboardRepository) FindLowStock(ctx context.Context, includeInactive bool, limit int) ([]*entities.Ingredient, error) {
	var ingredients []*entities.Ingredient
	tx := activeScope(r.db.WithContext(ctx).Model(&entities.Ingredient{}), includeInactive).
		Where("reorder_level > 0 AND stock_quantity < reorder_level").
		Order("(reorder_level - stock_quantity) desc").
		Limit(limit)
	if err := tx.Find(&ingredients).Error; err != nil {
		return nil, err
	}
	return ingredients, nil
}
