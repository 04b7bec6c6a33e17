package dashboard

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"inventory-brew/domain"
	"inventory-brew/entities"
	"inventory-brew/pkg/transaction"
)

type fakeDashboardRepo struct {
	ingredients []*entities.Ingredient
	recipes     []*entities.Recipe
}

func (f *fakeDashboardRepo) visible(includeInactive bool) []*entities.Ingredient {
	if includeInactive {
		return f.ingredients
	}
	out := make([]*entities.Ingredient, 0, len(f.ingredients))
	for _, ingredient := range f.ingredients {
		if ingredient.IsActive {
			out = append(out, ingredient)
		}
	}
	return out
}

func (f *fakeDashboardRepo) CountIngredients(ctx context.Context, includeInactive bool) (int64, error) {
	return int64(len(f.visible(includeInactive))), nil
}

func (f *fakeDashboardRepo) CountRecipes(ctx context.Context, includeInactive bool) (int64, error) {
	count := int64(0)
	for _, recipe := range f.recipes {
		if includeInactive || recipe.IsActive {
			count++
		}
	}
	return count, nil
}

func (f *fakeDashboardRepo) CountLowStock(ctx context.Context, includeInactive bool) (int64, error) {
	count := int64(0)
	for _, ingredient := range f.visible(includeInactive) {
		if ingredient.ReorderLevel > 0 && ingredient.StockQuantity < ingredient.ReorderLevel {
			count++
		}
	}
	return count, nil
}

func (f *fakeDashboardRepo) SumStockValue(ctx context.Context, includeInactive bool) (float64, error) {
	value := 0.0
	for _, ingredient := range f.visible(includeInactive) {
		value += ingredient.StockQuantity * ingredient.CostPerUnit
	}
	return value, nil
}

func (f *fakeDashboardRepo) FindLowStock(ctx context.Context, includeInactive bool, limit int) ([]*entities.Ingredient, error) {
	out := make([]*entities.Ingredient, 0)
	for _, ingredient := range f.visible(includeInactive) {
		if ingredient.ReorderLevel > 0 && ingredient.StockQuantity < ingredient.ReorderLevel {
			out = append(out, ingredient)
		}
		if len(out) == limit {
			break
		}
	}
	return out, nil
}

type fakeTxRepo struct {
	entries     []*entities.InventoryTransaction
	ingredients map[uuid.UUID]*entities.Ingredient
	recipes     map[uuid.UUID]*entities.Recipe
}

func newFakeTxRepo() *fakeTxRepo {
	return &fakeTxRepo{
		ingredients: make(map[uuid.UUID]*entities.Ingredient),
		recipes:     make(map[uuid.UUID]*entities.Recipe),
	}
}

func (f *fakeTxRepo) FindAll(ctx context.Context, filter transaction.Filter) ([]*entities.InventoryTransaction, int64, error) {
	return f.entries, int64(len(f.entries)), nil
}

func (f *fakeTxRepo) FindRecent(ctx context.Context, limit int) ([]*entities.InventoryTransaction, error) {
	if limit > len(f.entries) {
		limit = len(f.entries)
	}
	return f.entries[:limit], nil
}

func (f *fakeTxRepo) FindIngredientsByIDs(ctx context.Context, ids []uuid.UUID) ([]*entities.Ingredient, error) {
	found := make([]*entities.Ingredient, 0, len(ids))
	for _, id := range ids {
		if ingredient, ok := f.ingredients[id]; ok {
			found = append(found, ingredient)
		}
	}
	return found, nil
}

func (f *fakeTxRepo) FindRecipesByIDs(ctx context.Context, ids []uuid.UUID) ([]*entities.Recipe, error) {
	found := make([]*entities.Recipe, 0, len(ids))
	for _, id := range ids {
		if recipe, ok := f.recipes[id]; ok {
			found = append(found, recipe)
		}
	}
	return found, nil
}

func TestGetSummary(t *testing.T) {
	low := &entities.Ingredient{
		ID: uuid.New(), Name: "Flour", Unit: "g",
		StockQuantity: 20, ReorderLevel: 100, CostPerUnit: 0.05, IsActive: true,
	}
	healthy := &entities.Ingredient{
		ID: uuid.New(), Name: "Sugar", Unit: "g",
		StockQuantity: 500, ReorderLevel: 100, CostPerUnit: 0.01, IsActive: true,
	}
	inactive := &entities.Ingredient{
		ID: uuid.New(), Name: "Old Spice", Unit: "g",
		StockQuantity: 5, ReorderLevel: 10, CostPerUnit: 1, IsActive: false,
	}

	dashRepo := &fakeDashboardRepo{
		ingredients: []*entities.Ingredient{low, healthy, inactive},
		recipes:     []*entities.Recipe{{ID: uuid.New(), Name: "Bread", IsActive: true}},
	}
	ledgerRepo := newFakeTxRepo()
	ledgerRepo.ingredients[low.ID] = low
	ledgerRepo.entries = []*entities.InventoryTransaction{
		{ID: uuid.New(), IngredientID: low.ID, Type: entities.TransactionTypeOut, Quantity: 10},
	}

	service := NewDashboardService(dashRepo, ledgerRepo)
	res, err := service.GetSummary(context.Background(), domain.DashboardQuery{
		LowStockLimit:           10,
		RecentTransactionsLimit: 10,
		IncludeRelated:          true,
	})

	require.NoError(t, err)
	assert.Equal(t, int64(2), res.Summary.IngredientCount)
	assert.Equal(t, int64(1), res.Summary.RecipeCount)
	assert.Equal(t, int64(1), res.Summary.LowStockCount)
	// 20*0.05 + 500*0.01 = 6
	assert.Equal(t, 6.0, res.Summary.TotalStockValue)

	require.Len(t, res.LowStockItems, 1)
	item := res.LowStockItems[0]
	assert.Equal(t, "Flour", item.Name)
	assert.Equal(t, 80.0, item.Shortfall)
	assert.Equal(t, 1.0, item.StockValue)

	require.Len(t, res.RecentTransactions, 1)
	require.NotNil(t, res.RecentTransactions[0].Ingredient)
	assert.Equal(t, "Flour", res.RecentTransactions[0].Ingredient.Name)

	assert.False(t, res.Meta.GeneratedAt.IsZero())
	assert.Equal(t, 10, res.Meta.LowStockLimit)
}
