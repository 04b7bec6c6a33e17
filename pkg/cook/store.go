package cook

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"inventory-brew/entities"
)

type (
	// CookStore is the storage surface the executor needs: recipe and
	// ingredient snapshots plus the guarded single-statement stock
	// primitives every strategy writes through.
	CookStore interface {
		// InTransaction runs fn against a store whose writes commit or roll
		// back as one unit. Backends without multi-record transactions fail
		// with a recognizable error (see IsTransactionUnsupported).
		InTransaction(ctx context.Context, fn func(store CookStore) error) error
		FindRecipeByID(ctx context.Context, id uuid.UUID) (*entities.Recipe, error)
		FindIngredientsByIDs(ctx context.Context, ids []uuid.UUID) ([]*entities.Ingredient, error)
		// DecrementStockGuarded subtracts amount only if the ingredient is
		// still active, still has the expected unit, and still holds at least
		// amount. Returns the post-decrement row, or nil when the guard lost
		// the race. Both execution strategies write stock through this: the
		// guard re-evaluates against the row's committed state after acquiring
		// its lock, so a concurrent writer can never be silently overwritten
		// with a stale literal.
		DecrementStockGuarded(ctx context.Context, id uuid.UUID, amount float64, unit string) (*entities.Ingredient, error)
		// IncrementStock is the compensation primitive: it restores stock
		// unconditionally.
		IncrementStock(ctx context.Context, id uuid.UUID, amount float64) error
		CreateTransactions(ctx context.Context, entries []*entities.InventoryTransaction) error
	}

	cookStore struct {
		db *gorm.DB
	}
)

func NewCookStore(db *gorm.DB) CookStore {
	return &cookStore{db: db}
}

func (s *cookStore) InTransaction(ctx context.Context, fn func(store CookStore) error) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&cookStore{db: tx})
	})
}

func (s *cookStore) FindRecipeByID(ctx context.Context, id uuid.UUID) (*entities.Recipe, error) {
	var recipe entities.Recipe
	if err := s.db.WithContext(ctx).
		Preload("Ingredients", func(db *gorm.DB) *gorm.DB { return db.Order("position asc") }).
		Where("id = ?", id).
		First(&recipe).Error; err != nil {
		return nil, err
	}
	return &recipe, nil
}

func (s *cookStore) FindIngredientsByIDs(ctx context.Context, ids []uuid.UUID) ([]*entities.Ingredient, error) {
	var ingredients []*entities.Ingredient
	if err := s.db.WithContext(ctx).
		Where("id IN ?", ids).
		Find(&ingredients).Error; err != nil {
		return nil, err
	}
	return ingredients, nil
}

func (s *cookStore) DecrementStockGuarded(ctx context.Context, id uuid.UUID, amount float64, unit string) (*entities.Ingredient, error) {
	var ingredient entities.Ingredient
	result := s.db.WithContext(ctx).
		Model(&ingredient).
		Clauses(clause.Returning{}).
		Where("id = ? AND is_active = ? AND unit = ? AND stock_quantity >= ?", id, true, unit, amount).
		Update("stock_quantity", gorm.Expr("stock_quantity - ?", amount))
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, nil
	}
	return &ingredient, nil
}

func (s *cookStore) IncrementStock(ctx context.Context, id uuid.UUID, amount float64) error {
	return s.db.WithContext(ctx).
		Model(&entities.Ingredient{}).
		Where("id = ?", id).
		Update("stock_quantity", gorm.Expr("stock_quantity + ?", amount)).Error
}

func (s *cookStore) CreateTransactions(ctx context.Context, entries []*entities.InventoryTransaction) error {
	return s.db.WithContext(ctx).Create(&entries).Error
}

var transactionUnsupportedFragments = []string{
	"does not support transactions",
	"transactions are not supported",
	"transaction support is not available",
}

// IsTransactionUnsupported recognizes the failure signature of a backend that
// cannot open a multi-record atomic unit. Checked once per cook call, never
// cached: backend topology can change between calls.
func IsTransactionUnsupported(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, gorm.ErrInvalidTransaction) {
		return true
	}
	message := strings.ToLower(err.Error())
	for _, fragment := range transactionUnsupportedFragments {
		if strings.Contains(message, fragment) {
			return true
		}
	}
	return false
}
