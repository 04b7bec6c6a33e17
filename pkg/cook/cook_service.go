package cook

import (
	"context"
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"inventory-brew/domain"
	"inventory-brew/entities"
)

const (
	ExecutionModeTransaction = "transaction"
	ExecutionModeFallback    = "fallback"
)

type (
	CookService interface {
		// Cook consumes ingredient stock for servings of the recipe and
		// appends one OUT ledger entry per consumed ingredient. It prefers a
		// single atomic unit and falls back to guarded per-record updates
		// with compensation when the backend cannot open one.
		Cook(ctx context.Context, recipeID uuid.UUID, servings int) (domain.CookResult, error)
	}

	cookService struct {
		store CookStore
	}
)

func NewCookService(store CookStore) CookService {
	return &cookService{store: store}
}

func (s *cookService) Cook(ctx context.Context, recipeID uuid.UUID, servings int) (domain.CookResult, error) {
	result, err := s.cookWithTransaction(ctx, recipeID, servings)
	if err != nil {
		if IsTransactionUnsupported(err) {
			return s.cookWithFallback(ctx, recipeID, servings)
		}
		return domain.CookResult{}, err
	}
	return result, nil
}

// loadAndPlan re-reads the recipe and its ingredients through the given store
// and validates them. Both strategies run it against their own snapshot: the
// transactional path inside the unit (an earlier snapshot may be stale under
// concurrent writers), the fallback path right before its guarded writes.
func loadAndPlan(ctx context.Context, store CookStore, recipeID uuid.UUID, servings int) (*entities.Recipe, Plan, error) {
	recipe, err := store.FindRecipeByID(ctx, recipeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, Plan{}, domain.NewNotFoundError(domain.MessageRecipeNotFound)
		}
		return nil, Plan{}, err
	}

	if !recipe.IsActive {
		return nil, Plan{}, domain.NewAppError(fiber.StatusConflict, domain.CodeInactiveResource,
			"Cannot cook an inactive recipe")
	}

	if len(recipe.Ingredients) == 0 {
		return nil, Plan{}, domain.NewAppError(fiber.StatusConflict, domain.CodeInvalidRecipeConfiguration,
			"Recipe has no ingredient lines to cook")
	}

	ids := make([]uuid.UUID, 0, len(recipe.Ingredients))
	seen := make(map[uuid.UUID]bool, len(recipe.Ingredients))
	for _, line := range recipe.Ingredients {
		if !seen[line.IngredientID] {
			seen[line.IngredientID] = true
			ids = append(ids, line.IngredientID)
		}
	}

	ingredients, err := store.FindIngredientsByIDs(ctx, ids)
	if err != nil {
		return nil, Plan{}, err
	}

	plan := BuildPlan(recipe, ingredients, servings)
	if len(plan.ConfigurationErrors) > 0 {
		return nil, Plan{}, domain.NewAppError(fiber.StatusConflict, domain.CodeInvalidRecipeConfiguration,
			"Recipe cannot be cooked due to ingredient configuration issues", plan.ConfigurationErrors...)
	}
	if len(plan.InsufficientErrors) > 0 {
		return nil, Plan{}, domain.NewAppError(fiber.StatusBadRequest, domain.CodeInsufficientStock,
			"Insufficient stock to cook the requested servings", plan.InsufficientErrors...)
	}

	return recipe, plan, nil
}

func cookReason(recipeName string, servings int) string {
	return fmt.Sprintf("Cook: %s x %d", recipeName, servings)
}

func ledgerEntries(recipe *entities.Recipe, servings int, consumption []domain.ConsumptionEntry) []*entities.InventoryTransaction {
	reason := cookReason(recipe.Name, servings)
	entries := make([]*entities.InventoryTransaction, 0, len(consumption))
	for _, entry := range consumption {
		unitCost := entry.CostPerUnit
		referenceID := recipe.ID
		entries = append(entries, &entities.InventoryTransaction{
			IngredientID:  entry.IngredientID,
			Type:          entities.TransactionTypeOut,
			Quantity:      entry.RequiredQuantity,
			PreviousStock: entry.PreviousStock,
			NewStock:      entry.NewStock,
			Reason:        reason,
			UnitCost:      &unitCost,
			ReferenceType: entities.ReferenceTypeRecipe,
			ReferenceID:   &referenceID,
		})
	}
	return entries
}

// applyRequirements writes every stock decrement through the guarded
// single-statement primitive and builds the consumption detail from the rows
// it returns. The guard re-checks stock after acquiring each row's lock, so a
// plan computed from a snapshot that a concurrent writer has since invalidated
// can never overwrite that writer's commit; ledger previous/new values come
// from the post-decrement row, not the snapshot. Returns the entries applied
// so far alongside any error so the caller can compensate or abort.
func applyRequirements(ctx context.Context, store CookStore, requirements []Requirement) ([]domain.ConsumptionEntry, error) {
	applied := make([]domain.ConsumptionEntry, 0, len(requirements))
	for _, requirement := range requirements {
		updated, err := store.DecrementStockGuarded(ctx, requirement.IngredientID, requirement.RequiredQuantity, requirement.Unit)
		if err != nil {
			return applied, err
		}
		if updated == nil {
			return applied, domain.NewAppError(fiber.StatusBadRequest, domain.CodeInsufficientStock,
				"Stock changed while cooking. Please try again.",
				fmt.Sprintf("%s: unable to reserve required quantity", requirement.IngredientName))
		}

		newStock := updated.StockQuantity
		applied = append(applied, domain.ConsumptionEntry{
			IngredientID:     updated.ID,
			IngredientName:   updated.Name,
			Unit:             requirement.Unit,
			RequiredQuantity: requirement.RequiredQuantity,
			PreviousStock:    domain.Round(newStock + requirement.RequiredQuantity),
			NewStock:         domain.Round(newStock),
			CostPerUnit:      updated.CostPerUnit,
		})
	}
	return applied, nil
}

// Strategy A: one atomic unit around re-validation, every stock write, and the
// ledger batch. Any error aborts the unit; no partial write survives.
func (s *cookService) cookWithTransaction(ctx context.Context, recipeID uuid.UUID, servings int) (domain.CookResult, error) {
	var result domain.CookResult

	err := s.store.InTransaction(ctx, func(tx CookStore) error {
		recipe, plan, err := loadAndPlan(ctx, tx, recipeID, servings)
		if err != nil {
			return err
		}

		consumption, err := applyRequirements(ctx, tx, plan.Requirements)
		if err != nil {
			return err
		}

		entries := ledgerEntries(recipe, servings, consumption)
		if err := tx.CreateTransactions(ctx, entries); err != nil {
			return err
		}

		result = domain.CookResult{
			Recipe:              domain.RecipeRef{ID: recipe.ID, Name: recipe.Name},
			Servings:            servings,
			Consumption:         consumption,
			TransactionsCreated: len(entries),
			ExecutionMode:       ExecutionModeTransaction,
		}
		return nil
	})
	if err != nil {
		return domain.CookResult{}, err
	}

	return result, nil
}

// Strategy B: guarded per-record decrements with manual compensation. Not
// linearizable across the whole operation, only per ingredient; the ledger is
// written after every decrement is confirmed, so a reader never sees a ledger
// entry without its stock change.
func (s *cookService) cookWithFallback(ctx context.Context, recipeID uuid.UUID, servings int) (domain.CookResult, error) {
	recipe, plan, err := loadAndPlan(ctx, s.store, recipeID, servings)
	if err != nil {
		return domain.CookResult{}, err
	}

	applied, applyErr := applyRequirements(ctx, s.store, plan.Requirements)
	if applyErr != nil {
		s.compensate(ctx, applied)
		return domain.CookResult{}, applyErr
	}

	entries := ledgerEntries(recipe, servings, applied)
	if err := s.store.CreateTransactions(ctx, entries); err != nil {
		s.compensate(ctx, applied)
		return domain.CookResult{}, err
	}

	return domain.CookResult{
		Recipe:              domain.RecipeRef{ID: recipe.ID, Name: recipe.Name},
		Servings:            servings,
		Consumption:         applied,
		TransactionsCreated: len(entries),
		ExecutionMode:       ExecutionModeFallback,
	}, nil
}

// compensate reverses every decrement already applied in this invocation.
// Best effort: a failed reversal leaves a true inconsistency, the known gap of
// the fallback path; remaining reversals are still attempted.
func (s *cookService) compensate(ctx context.Context, applied []domain.ConsumptionEntry) {
	for _, entry := range applied {
		_ = s.store.IncrementStock(ctx, entry.IngredientID, entry.RequiredQuantity)
	}
}
