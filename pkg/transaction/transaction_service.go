package transaction

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"inventory-brew/domain"
	"inventory-brew/entities"
)

var allowedTypes = map[string]bool{
	entities.TransactionTypeIn:     true,
	entities.TransactionTypeOut:    true,
	entities.TransactionTypeAdjust: true,
}

var allowedReferenceTypes = map[string]bool{
	entities.ReferenceTypeRecipe:   true,
	entities.ReferenceTypeManual:   true,
	entities.ReferenceTypePurchase: true,
	entities.ReferenceTypeSystem:   true,
}

type (
	TransactionService interface {
		GetTransactions(ctx context.Context, query domain.TransactionQuery) (domain.TransactionListResponse, error)
	}

	transactionService struct {
		transactionRepository TransactionRepository
	}
)

func NewTransactionService(transactionRepository TransactionRepository) TransactionService {
	return &transactionService{transactionRepository: transactionRepository}
}

// buildFilter validates the raw query in one pass and reports every problem,
// so a caller with three bad parameters fixes them in one round trip.
func buildFilter(query domain.TransactionQuery) (Filter, error) {
	filter := Filter{
		Type:          query.Type,
		ReferenceType: query.ReferenceType,
		Reason:        query.Reason,
		DateFrom:      query.DateFrom,
		DateTo:        query.DateTo,
		Page:          query.Page,
		Limit:         query.Limit,
		SortBy:        query.SortBy,
		SortOrder:     query.SortOrder,
	}

	var details []string

	if query.Type != "" && !allowedTypes[query.Type] {
		details = append(details, fmt.Sprintf("type must be one of: IN, OUT, ADJUST (got %q)", query.Type))
	}
	if query.ReferenceType != "" && !allowedReferenceTypes[query.ReferenceType] {
		details = append(details, fmt.Sprintf("referenceType must be one of: recipe, manual, purchase, system (got %q)", query.ReferenceType))
	}

	if query.IngredientID != "" {
		id, err := uuid.Parse(query.IngredientID)
		if err != nil {
			details = append(details, "ingredientId is not a valid id")
		} else {
			filter.IngredientID = &id
		}
	}
	if query.ReferenceID != "" {
		id, err := uuid.Parse(query.ReferenceID)
		if err != nil {
			details = append(details, "referenceId is not a valid id")
		} else {
			filter.ReferenceID = &id
		}
	}

	if query.DateFrom != nil && query.DateTo != nil && query.DateFrom.After(*query.DateTo) {
		details = append(details, "dateFrom must not be after dateTo")
	}

	if len(details) > 0 {
		return Filter{}, domain.NewValidationError(domain.MessageInvalidTransactionQuery, details...)
	}
	return filter, nil
}

func (s *transactionService) GetTransactions(ctx context.Context, query domain.TransactionQuery) (domain.TransactionListResponse, error) {
	filter, err := buildFilter(query)
	if err != nil {
		return domain.TransactionListResponse{}, err
	}

	transactions, count, err := s.transactionRepository.FindAll(ctx, filter)
	if err != nil {
		return domain.TransactionListResponse{}, err
	}

	items := make([]domain.TransactionListItem, 0, len(transactions))
	for _, entry := range transactions {
		items = append(items, domain.TransactionListItem{InventoryTransaction: entry})
	}

	if query.IncludeRelated {
		if err := EnrichRelated(ctx, s.transactionRepository, items); err != nil {
			return domain.TransactionListResponse{}, err
		}
	}

	return domain.TransactionListResponse{
		Items:      items,
		Pagination: domain.NewPagination(query.Page, query.Limit, count),
	}, nil
}

// EnrichRelated attaches ingredient and recipe summaries to each entry.
// Ledger rows outlive the resources they reference; a dangling reference
// yields a Reference with nil Name rather than an error.
func EnrichRelated(ctx context.Context, repo TransactionRepository, items []domain.TransactionListItem) error {
	ingredientIDs := make([]uuid.UUID, 0, len(items))
	recipeIDs := make([]uuid.UUID, 0)
	seenIngredients := make(map[uuid.UUID]bool)
	seenRecipes := make(map[uuid.UUID]bool)

	for _, item := range items {
		if !seenIngredients[item.IngredientID] {
			seenIngredients[item.IngredientID] = true
			ingredientIDs = append(ingredientIDs, item.IngredientID)
		}
		if item.ReferenceType == entities.ReferenceTypeRecipe && item.ReferenceID != nil && !seenRecipes[*item.ReferenceID] {
			seenRecipes[*item.ReferenceID] = true
			recipeIDs = append(recipeIDs, *item.ReferenceID)
		}
	}

	ingredients, err := repo.FindIngredientsByIDs(ctx, ingredientIDs)
	if err != nil {
		return err
	}
	ingredientMap := make(map[uuid.UUID]*entities.Ingredient, len(ingredients))
	for _, ingredient := range ingredients {
		ingredientMap[ingredient.ID] = ingredient
	}

	recipes, err := repo.FindRecipesByIDs(ctx, recipeIDs)
	if err != nil {
		return err
	}
	recipeMap := make(map[uuid.UUID]*entities.Recipe, len(recipes))
	for _, recipe := range recipes {
		recipeMap[recipe.ID] = recipe
	}

	for i := range items {
		if ingredient, ok := ingredientMap[items[i].IngredientID]; ok {
			items[i].Ingredient = &domain.TransactionIngredientRef{
				ID:       ingredient.ID,
				Name:     ingredient.Name,
				Unit:     ingredient.Unit,
				IsActive: ingredient.IsActive,
			}
		}

		if items[i].ReferenceType == "" {
			continue
		}
		reference := &domain.TransactionReference{
			Type: items[i].ReferenceType,
			ID:   items[i].ReferenceID,
		}
		if items[i].ReferenceType == entities.ReferenceTypeRecipe && items[i].ReferenceID != nil {
			if recipe, ok := recipeMap[*items[i].ReferenceID]; ok {
				reference.Name = &recipe.Name
				reference.IsActive = &recipe.IsActive
			}
		}
		items[i].Reference = reference
	}

	return nil
}
