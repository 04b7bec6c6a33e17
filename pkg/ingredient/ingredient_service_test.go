package ingredient

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"inventory-brew/domain"
	"inventory-brew/entities"
)

type fakeIngredientRepo struct {
	ingredients map[uuid.UUID]*entities.Ingredient
	ledger      []*entities.InventoryTransaction
	lockedReads int
}

func newFakeIngredientRepo() *fakeIngredientRepo {
	return &fakeIngredientRepo{ingredients: make(map[uuid.UUID]*entities.Ingredient)}
}

func (f *fakeIngredientRepo) InTransaction(ctx context.Context, fn func(repo IngredientRepository) error) error {
	stocks := make(map[uuid.UUID]entities.Ingredient, len(f.ingredients))
	for id, ingredient := range f.ingredients {
		stocks[id] = *ingredient
	}
	ledgerLen := len(f.ledger)

	if err := fn(f); err != nil {
		next := make(map[uuid.UUID]*entities.Ingredient, len(stocks))
		for id, ingredient := range stocks {
			copied := ingredient
			next[id] = &copied
		}
		f.ingredients = next
		f.ledger = f.ledger[:ledgerLen]
		return err
	}
	return nil
}

func (f *fakeIngredientRepo) FindAll(ctx context.Context, query domain.IngredientQuery) ([]*entities.Ingredient, int64, error) {
	items := make([]*entities.Ingredient, 0, len(f.ingredients))
	for _, ingredient := range f.ingredients {
		items = append(items, ingredient)
	}
	return items, int64(len(items)), nil
}

func (f *fakeIngredientRepo) FindByID(ctx context.Context, id uuid.UUID) (*entities.Ingredient, error) {
	ingredient, ok := f.ingredients[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	copied := *ingredient
	return &copied, nil
}

func (f *fakeIngredientRepo) FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*entities.Ingredient, error) {
	f.lockedReads++
	return f.FindByID(ctx, id)
}

func (f *fakeIngredientRepo) Create(ctx context.Context, ingredient *entities.Ingredient) error {
	ingredient.ID = uuid.New()
	copied := *ingredient
	f.ingredients[ingredient.ID] = &copied
	return nil
}

func (f *fakeIngredientRepo) Save(ctx context.Context, ingredient *entities.Ingredient) error {
	copied := *ingredient
	f.ingredients[ingredient.ID] = &copied
	return nil
}

func (f *fakeIngredientRepo) CreateTransaction(ctx context.Context, entry *entities.InventoryTransaction) error {
	entry.ID = uuid.New()
	f.ledger = append(f.ledger, entry)
	return nil
}

func floatPtr(v float64) *float64 { return &v }

func TestCreateIngredientWithInitialStockEmitsLedgerEntry(t *testing.T) {
	repo := newFakeIngredientRepo()
	service := NewIngredientService(repo)

	created, err := service.CreateIngredient(context.Background(), domain.CreateIngredientRequest{
		Name:          "Flour",
		Unit:          "g",
		StockQuantity: floatPtr(500),
		CostPerUnit:   floatPtr(0.05),
	})

	require.NoError(t, err)
	assert.True(t, created.IsActive)
	assert.Equal(t, 500.0, created.StockQuantity)

	require.Len(t, repo.ledger, 1)
	entry := repo.ledger[0]
	assert.Equal(t, entities.TransactionTypeIn, entry.Type)
	assert.Equal(t, 500.0, entry.Quantity)
	assert.Equal(t, 0.0, entry.PreviousStock)
	assert.Equal(t, 500.0, entry.NewStock)
	assert.Equal(t, "Initial stock", entry.Reason)
	assert.Equal(t, entities.ReferenceTypeSystem, entry.ReferenceType)
}

func TestCreateIngredientWithoutStockSkipsLedger(t *testing.T) {
	repo := newFakeIngredientRepo()
	service := NewIngredientService(repo)

	_, err := service.CreateIngredient(context.Background(), domain.CreateIngredientRequest{
		Name: "Salt",
		Unit: "g",
	})

	require.NoError(t, err)
	assert.Empty(t, repo.ledger)
}

func TestGetIngredientsRejectsContradictoryFilters(t *testing.T) {
	service := NewIngredientService(newFakeIngredientRepo())

	_, err := service.GetIngredients(context.Background(), domain.IngredientQuery{
		LowStockOnly:     true,
		HealthyStockOnly: true,
	})

	require.Error(t, err)
	var appErr *domain.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, domain.CodeValidationError, appErr.Code)
}

func TestAdjustStockIn(t *testing.T) {
	repo := newFakeIngredientRepo()
	flour := &entities.Ingredient{ID: uuid.New(), Name: "Flour", Unit: "g", StockQuantity: 100, IsActive: true}
	repo.ingredients[flour.ID] = flour
	service := NewIngredientService(repo)

	res, err := service.AdjustStock(context.Background(), flour.ID, domain.AdjustStockRequest{
		Type:     entities.TransactionTypeIn,
		Quantity: 50,
		Reason:   "Restock",
	})

	require.NoError(t, err)
	assert.Equal(t, 150.0, res.Ingredient.StockQuantity)
	assert.Equal(t, 150.0, repo.ingredients[flour.ID].StockQuantity)
	assert.Equal(t, 1, repo.lockedReads)
	require.NotNil(t, res.Transaction)
	assert.Equal(t, 100.0, res.Transaction.PreviousStock)
	assert.Equal(t, 150.0, res.Transaction.NewStock)
	assert.Equal(t, entities.ReferenceTypeManual, res.Transaction.ReferenceType)
}

func TestAdjustStockOutInsufficient(t *testing.T) {
	repo := newFakeIngredientRepo()
	flour := &entities.Ingredient{ID: uuid.New(), Name: "Flour", Unit: "g", StockQuantity: 10, IsActive: true}
	repo.ingredients[flour.ID] = flour
	service := NewIngredientService(repo)

	_, err := service.AdjustStock(context.Background(), flour.ID, domain.AdjustStockRequest{
		Type:     entities.TransactionTypeOut,
		Quantity: 25,
	})

	require.Error(t, err)
	var appErr *domain.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, domain.CodeInsufficientStock, appErr.Code)
	assert.Equal(t, 10.0, repo.ingredients[flour.ID].StockQuantity)
	assert.Empty(t, repo.ledger)
}

func TestAdjustStockAdjustSetsAbsoluteLevel(t *testing.T) {
	repo := newFakeIngredientRepo()
	flour := &entities.Ingredient{ID: uuid.New(), Name: "Flour", Unit: "g", StockQuantity: 80, IsActive: true}
	repo.ingredients[flour.ID] = flour
	service := NewIngredientService(repo)

	res, err := service.AdjustStock(context.Background(), flour.ID, domain.AdjustStockRequest{
		Type:     entities.TransactionTypeAdjust,
		Quantity: 60,
		Reason:   "Stocktake correction",
	})

	require.NoError(t, err)
	assert.Equal(t, 60.0, res.Ingredient.StockQuantity)
	assert.Equal(t, 20.0, res.Transaction.Quantity)
	assert.Equal(t, 80.0, res.Transaction.PreviousStock)
	assert.Equal(t, 60.0, res.Transaction.NewStock)
}

func TestAdjustStockInactiveIngredient(t *testing.T) {
	repo := newFakeIngredientRepo()
	flour := &entities.Ingredient{ID: uuid.New(), Name: "Flour", Unit: "g", StockQuantity: 10, IsActive: false}
	repo.ingredients[flour.ID] = flour
	service := NewIngredientService(repo)

	_, err := service.AdjustStock(context.Background(), flour.ID, domain.AdjustStockRequest{
		Type:     entities.TransactionTypeIn,
		Quantity: 5,
	})

	require.Error(t, err)
	var appErr *domain.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, domain.CodeInactiveResource, appErr.Code)
}

func TestAdjustStockNotFound(t *testing.T) {
	service := NewIngredientService(newFakeIngredientRepo())

	_, err := service.AdjustStock(context.Background(), uuid.New(), domain.AdjustStockRequest{
		Type:     entities.TransactionTypeIn,
		Quantity: 5,
	})

	require.Error(t, err)
	var appErr *domain.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, domain.CodeNotFound, appErr.Code)
}

func TestArchiveAndRestoreIngredient(t *testing.T) {
	repo := newFakeIngredientRepo()
	flour := &entities.Ingredient{ID: uuid.New(), Name: "Flour", Unit: "g", IsActive: true}
	repo.ingredients[flour.ID] = flour
	service := NewIngredientService(repo)

	archived, changed, err := service.ArchiveIngredient(context.Background(), flour.ID)
	require.NoError(t, err)
	assert.True(t, changed)
	assert.False(t, archived.IsActive)

	_, changed, err = service.ArchiveIngredient(context.Background(), flour.ID)
	require.NoError(t, err)
	assert.False(t, changed)

	restored, changed, err := service.RestoreIngredient(context.Background(), flour.ID)
	require.NoError(t, err)
	assert.True(t, changed)
	assert.True(t, restored.IsActive)
}

// Replaying previous->new deltas from the ledger must land on the current
// stock level.
func TestLedgerReplayMatchesStock(t *testing.T) {
	repo := newFakeIngredientRepo()
	service := NewIngredientService(repo)

	created, err := service.CreateIngredient(context.Background(), domain.CreateIngredientRequest{
		Name:          "Milk",
		Unit:          "ml",
		StockQuantity: floatPtr(1000),
	})
	require.NoError(t, err)

	_, err = service.AdjustStock(context.Background(), created.ID, domain.AdjustStockRequest{
		Type: entities.TransactionTypeOut, Quantity: 250.5,
	})
	require.NoError(t, err)
	_, err = service.AdjustStock(context.Background(), created.ID, domain.AdjustStockRequest{
		Type: entities.TransactionTypeIn, Quantity: 100.25,
	})
	require.NoError(t, err)
	_, err = service.AdjustStock(context.Background(), created.ID, domain.AdjustStockRequest{
		Type: entities.TransactionTypeAdjust, Quantity: 900,
	})
	require.NoError(t, err)

	replayed := 0.0
	for _, entry := range repo.ledger {
		assert.Equal(t, replayed, entry.PreviousStock)
		replayed = entry.NewStock
	}
	assert.Equal(t, repo.ingredients[created.ID].StockQuantity, replayed)
}
