package transaction

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"inventory-brew/domain"
	"inventory-brew/entities"
)

type fakeTransactionRepo struct {
	entries     []*entities.InventoryTransaction
	ingredients map[uuid.UUID]*entities.Ingredient
	recipes     map[uuid.UUID]*entities.Recipe

	lastFilter Filter
}

func newFakeTransactionRepo() *fakeTransactionRepo {
	return &fakeTransactionRepo{
		ingredients: make(map[uuid.UUID]*entities.Ingredient),
		recipes:     make(map[uuid.UUID]*entities.Recipe),
	}
}

func (f *fakeTransactionRepo) FindAll(ctx context.Context, filter Filter) ([]*entities.InventoryTransaction, int64, error) {
	f.lastFilter = filter
	return f.entries, int64(len(f.entries)), nil
}

func (f *fakeTransactionRepo) FindRecent(ctx context.Context, limit int) ([]*entities.InventoryTransaction, error) {
	if limit > len(f.entries) {
		limit = len(f.entries)
	}
	return f.entries[:limit], nil
}

func (f *fakeTransactionRepo) FindIngredientsByIDs(ctx context.Context, ids []uuid.UUID) ([]*entities.Ingredient, error) {
	found := make([]*entities.Ingredient, 0, len(ids))
	for _, id := range ids {
		if ingredient, ok := f.ingredients[id]; ok {
			found = append(found, ingredient)
		}
	}
	return found, nil
}

func (f *fakeTransactionRepo) FindRecipesByIDs(ctx context.Context, ids []uuid.UUID) ([]*entities.Recipe, error) {
	found := make([]*entities.Recipe, 0, len(ids))
	for _, id := range ids {
		if recipe, ok := f.recipes[id]; ok {
			found = append(found, recipe)
		}
	}
	return found, nil
}

func TestGetTransactionsRejectsInvalidQuery(t *testing.T) {
	service := NewTransactionService(newFakeTransactionRepo())

	from := time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	_, err := service.GetTransactions(context.Background(), domain.TransactionQuery{
		Page:          1,
		Limit:         20,
		Type:          "SIDEWAYS",
		ReferenceType: "order",
		IngredientID:  "not-a-uuid",
		DateFrom:      &from,
		DateTo:        &to,
	})

	require.Error(t, err)
	var appErr *domain.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, domain.CodeValidationError, appErr.Code)
	assert.Len(t, appErr.Details, 4)
}

func TestGetTransactionsPassesParsedFilter(t *testing.T) {
	repo := newFakeTransactionRepo()
	service := NewTransactionService(repo)

	ingredientID := uuid.New()
	_, err := service.GetTransactions(context.Background(), domain.TransactionQuery{
		Page:         2,
		Limit:        10,
		IngredientID: ingredientID.String(),
		Type:         entities.TransactionTypeOut,
		SortBy:       "quantity",
		SortOrder:    "asc",
	})

	require.NoError(t, err)
	require.NotNil(t, repo.lastFilter.IngredientID)
	assert.Equal(t, ingredientID, *repo.lastFilter.IngredientID)
	assert.Equal(t, entities.TransactionTypeOut, repo.lastFilter.Type)
	assert.Equal(t, 2, repo.lastFilter.Page)
	assert.Equal(t, "quantity", repo.lastFilter.SortBy)
}

func TestGetTransactionsEnrichesRelatedResources(t *testing.T) {
	repo := newFakeTransactionRepo()
	flour := &entities.Ingredient{ID: uuid.New(), Name: "Flour", Unit: "g", IsActive: true}
	bread := &entities.Recipe{ID: uuid.New(), Name: "Bread", IsActive: true}
	repo.ingredients[flour.ID] = flour
	repo.recipes[bread.ID] = bread

	recipeRef := bread.ID
	repo.entries = []*entities.InventoryTransaction{
		{
			ID:            uuid.New(),
			IngredientID:  flour.ID,
			Type:          entities.TransactionTypeOut,
			Quantity:      6,
			ReferenceType: entities.ReferenceTypeRecipe,
			ReferenceID:   &recipeRef,
		},
	}

	service := NewTransactionService(repo)
	res, err := service.GetTransactions(context.Background(), domain.TransactionQuery{
		Page: 1, Limit: 20, IncludeRelated: true,
	})

	require.NoError(t, err)
	require.Len(t, res.Items, 1)
	item := res.Items[0]
	require.NotNil(t, item.Ingredient)
	assert.Equal(t, "Flour", item.Ingredient.Name)
	require.NotNil(t, item.Reference)
	assert.Equal(t, entities.ReferenceTypeRecipe, item.Reference.Type)
	require.NotNil(t, item.Reference.Name)
	assert.Equal(t, "Bread", *item.Reference.Name)
}

// A ledger row may point at a recipe that has since been deleted; the
// reference block still renders with a nil name.
func TestGetTransactionsDanglingRecipeReference(t *testing.T) {
	repo := newFakeTransactionRepo()
	flour := &entities.Ingredient{ID: uuid.New(), Name: "Flour", Unit: "g", IsActive: true}
	repo.ingredients[flour.ID] = flour

	gone := uuid.New()
	repo.entries = []*entities.InventoryTransaction{
		{
			ID:            uuid.New(),
			IngredientID:  flour.ID,
			Type:          entities.TransactionTypeOut,
			Quantity:      6,
			ReferenceType: entities.ReferenceTypeRecipe,
			ReferenceID:   &gone,
		},
	}

	service := NewTransactionService(repo)
	res, err := service.GetTransactions(context.Background(), domain.TransactionQuery{
		Page: 1, Limit: 20, IncludeRelated: true,
	})

	require.NoError(t, err)
	require.Len(t, res.Items, 1)
	require.NotNil(t, res.Items[0].Reference)
	assert.Nil(t, res.Items[0].Reference.Name)
}

func TestGetTransactionsWithoutEnrichment(t *testing.T) {
	repo := newFakeTransactionRepo()
	repo.entries = []*entities.InventoryTransaction{
		{ID: uuid.New(), IngredientID: uuid.New(), Type: entities.TransactionTypeIn, Quantity: 5},
	}

	service := NewTransactionService(repo)
	res, err := service.GetTransactions(context.Background(), domain.TransactionQuery{Page: 1, Limit: 20})

	require.NoError(t, err)
	require.Len(t, res.Items, 1)
	assert.Nil(t, res.Items[0].Ingredient)
	assert.Nil(t, res.Items[0].Reference)
}
