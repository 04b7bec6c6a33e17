package ingredient

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

type (
	IngredientService interface {
		GetIngredients(ctx context.Context, query domain.IngredientQuery) (domain.IngredientListResponse, error)
		GetIngredientByID(ctx context.Context, id uuid.UUID) (*entities.Ingredient, error)
		CreateIngredient(ctx context.Context, req domain.CreateIngredientRequest) (*entities.Ingredient, error)
		UpdateIngredient(ctx context.Context, id uuid.UUID, req domain.UpdateIngredientRequest) (*entities.Ingredient, error)
		ArchiveIngredient(ctx context.Context, id uuid.UUID) (*entities.Ingredient, bool, error)
		RestoreIngredient(ctx context.Context, id uuid.UUID) (*entities.Ingredient, bool, error)
		AdjustStock(ctx context.Context, id uuid.UUID, req domain.AdjustStockRequest) (domain.AdjustStockResponse, error)
	}

	ingredientService struct {
		ingredientRepository IngredientRepository
	}
)

func NewIngredientService(ingredientRepository IngredientRepository) IngredientService {
	return &ingredientService{ingredientRepository: ingredientRepository}
}

func (s *ingredientService) GetIngredients(ctx context.Context, query domain.IngredientQuery) (domain.IngredientListResponse, error) {
	if query.LowStockOnly && query.HealthyStockOnly {
		return domain.IngredientListResponse{}, domain.NewValidationError(
			"Invalid ingredient query", "lowStockOnly and healthyStockOnly cannot both be set")
	}

	items, count, err := s.ingredientRepository.FindAll(ctx, query)
	if err != nil {
		return domain.IngredientListResponse{}, err
	}

	return domain.IngredientListResponse{
		Items:      items,
		Pagination: domain.NewPagination(query.Page, query.Limit, count),
	}, nil
}

func (s *ingredientService) GetIngredientByID(ctx context.Context, id uuid.UUID) (*entities.Ingredient, error) {
	ingredient, err := s.ingredientRepository.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.NewNotFoundError(domain.MessageIngredientNotFound)
		}
		return nil, err
	}
	return ingredient, nil
}

// CreateIngredient writes the ingredient and, when it starts with stock, the
// initial IN ledger entry in one unit, so the replay invariant holds from the
// first row.
func (s *ingredientService) CreateIngredient(ctx context.Context, req domain.CreateIngredientRequest) (*entities.Ingredient, error) {
	ingredient := &entities.Ingredient{
		Name:         req.Name,
		Manufacturer: req.Manufacturer,
		Category:     req.Category,
		Unit:         req.Unit,
		IsActive:     true,
	}
	if req.StockQuantity != nil {
		ingredient.StockQuantity = domain.Round(*req.StockQuantity)
	}
	if req.CostPerUnit != nil {
		ingredient.CostPerUnit = *req.CostPerUnit
	}
	if req.ReorderLevel != nil {
		ingredient.ReorderLevel = *req.ReorderLevel
	}
	if req.IsActive != nil {
		ingredient.IsActive = *req.IsActive
	}

	err := s.ingredientRepository.InTransaction(ctx, func(repo IngredientRepository) error {
		if err := repo.Create(ctx, ingredient); err != nil {
			return err
		}

		if ingredient.StockQuantity > 0 {
			unitCost := ingredient.CostPerUnit
			return repo.CreateTransaction(ctx, &entities.InventoryTransaction{
				IngredientID:  ingredient.ID,
				Type:          entities.TransactionTypeIn,
				Quantity:      ingredient.StockQuantity,
				PreviousStock: 0,
				NewStock:      ingredient.StockQuantity,
				Reason:        "Initial stock",
				UnitCost:      &unitCost,
				ReferenceType: entities.ReferenceTypeSystem,
			})
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return ingredient, nil
}

func (s *ingredientService) UpdateIngredient(ctx context.Context, id uuid.UUID, req domain.UpdateIngredientRequest) (*entities.Ingredient, error) {
	ingredient, err := s.GetIngredientByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		ingredient.Name = *req.Name
	}
	if req.Manufacturer != nil {
		ingredient.Manufacturer = *req.Manufacturer
	}
	if req.Category != nil {
		ingredient.Category = *req.Category
	}
	if req.Unit != nil {
		ingredient.Unit = *req.Unit
	}
	if req.CostPerUnit != nil {
		ingredient.CostPerUnit = *req.CostPerUnit
	}
	if req.ReorderLevel != nil {
		ingredient.ReorderLevel = *req.ReorderLevel
	}

	if err := s.ingredientRepository.Save(ctx, ingredient); err != nil {
		return nil, err
	}
	return ingredient, nil
}

func (s *ingredientService) ArchiveIngredient(ctx context.Context, id uuid.UUID) (*entities.Ingredient, bool, error) {
	ingredient, err := s.GetIngredientByID(ctx, id)
	if err != nil {
		return nil, false, err
	}

	if !ingredient.IsActive {
		return ingredient, false, nil
	}

	ingredient.IsActive = false
	if err := s.ingredientRepository.Save(ctx, ingredient); err != nil {
		return nil, false, err
	}
	return ingredient, true, nil
}

func (s *ingredientService) RestoreIngredient(ctx context.Context, id uuid.UUID) (*entities.Ingredient, bool, error) {
	ingredient, err := s.GetIngredientByID(ctx, id)
	if err != nil {
		return nil, false, err
	}

	if ingredient.IsActive {
		return ingredient, false, nil
	}

	ingredient.IsActive = true
	if err := s.ingredientRepository.Save(ctx, ingredient); err != nil {
		return nil, false, err
	}
	return ingredient, true, nil
}

// AdjustStock is the only direct stock write besides cooking. The stock change
// and its ledger entry commit in one unit, and the row is read with its lock
// held so concurrent adjustments serialize instead of overwriting each other.
func (s *ingredientService) AdjustStock(ctx context.Context, id uuid.UUID, req domain.AdjustStockRequest) (domain.AdjustStockResponse, error) {
	var response domain.AdjustStockResponse

	err := s.ingredientRepository.InTransaction(ctx, func(repo IngredientRepository) error {
		ingredient, err := repo.FindByIDForUpdate(ctx, id)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domain.NewNotFoundError(domain.MessageIngredientNotFound)
			}
			return err
		}

		if !ingredient.IsActive {
			return domain.NewAppError(fiber.StatusConflict, domain.CodeInactiveResource,
				"Cannot adjust stock of an inactive ingredient")
		}

		previousStock := ingredient.StockQuantity
		var newStock, magnitude float64

		switch req.Type {
		case entities.TransactionTypeIn:
			magnitude = domain.Round(req.Quantity)
			newStock = domain.Round(previousStock + magnitude)
		case entities.TransactionTypeOut:
			magnitude = domain.Round(req.Quantity)
			newStock = domain.Round(previousStock - magnitude)
			if newStock < 0 {
				return domain.NewAppError(fiber.StatusBadRequest, domain.CodeInsufficientStock,
					"Insufficient stock for this adjustment",
					fmt.Sprintf("%s: needed %g %s, available %g %s",
						ingredient.Name, magnitude, ingredient.Unit, previousStock, ingredient.Unit))
			}
		case entities.TransactionTypeAdjust:
			newStock = domain.Round(req.Quantity)
			magnitude = domain.Round(newStock - previousStock)
			if magnitude < 0 {
				magnitude = -magnitude
			}
		default:
			return domain.NewValidationError("Invalid adjustment payload",
				"type must be one of: IN, OUT, ADJUST")
		}

		ingredient.StockQuantity = newStock
		if err := repo.Save(ctx, ingredient); err != nil {
			return err
		}

		entry := &entities.InventoryTransaction{
			IngredientID:  ingredient.ID,
			Type:          req.Type,
			Quantity:      magnitude,
			PreviousStock: previousStock,
			NewStock:      newStock,
			Reason:        req.Reason,
			UnitCost:      req.UnitCost,
			ReferenceType: entities.ReferenceTypeManual,
		}
		if err := repo.CreateTransaction(ctx, entry); err != nil {
			return err
		}

		response = domain.AdjustStockResponse{
			Message:     domain.MessageSuccessAdjustStock,
			Ingredient:  ingredient,
			Transaction: entry,
		}
		return nil
	})
	if err != nil {
		return domain.AdjustStockResponse{}, err
	}

	return response, nil
}
