package recipe

import (
	"context"
	"errors"
	"fmt"
	"math"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"inventory-brew/domain"
	"inventory-brew/entities"
)

type (
	RecipeService interface {
		GetRecipes(ctx context.Context, query domain.RecipeQuery) (domain.RecipeListResponse, error)
		GetRecipeByID(ctx context.Context, id uuid.UUID) (domain.RecipeDetailResponse, error)
		CreateRecipe(ctx context.Context, req domain.CreateRecipeRequest) (domain.RecipeDetailResponse, error)
		UpdateRecipe(ctx context.Context, id uuid.UUID, req domain.UpdateRecipeRequest) (domain.RecipeDetailResponse, error)
		ArchiveRecipe(ctx context.Context, id uuid.UUID) (*entities.Recipe, bool, error)
		RestoreRecipe(ctx context.Context, id uuid.UUID) (*entities.Recipe, bool, error)
	}

	recipeService struct {
		recipeRepository RecipeRepository
	}
)

func NewRecipeService(recipeRepository RecipeRepository) RecipeService {
	return &recipeService{recipeRepository: recipeRepository}
}

// normalizeLines merges request lines that repeat the same ingredient with the
// same unit, keeping first-seen order. Repeating an ingredient under two
// different units is rejected: stored recipes always carry one line per
// ingredient so the cook planner never has to arbitrate.
func normalizeLines(lines []domain.RecipeIngredientLine) ([]entities.RecipeIngredient, error) {
	normalized := make([]entities.RecipeIngredient, 0, len(lines))
	index := make(map[uuid.UUID]int, len(lines))
	var details []string

	for i, line := range lines {
		ingredientID, err := uuid.Parse(line.IngredientID)
		if err != nil {
			details = append(details, fmt.Sprintf("ingredients[%d].ingredientId is not a valid id", i))
			continue
		}

		if at, ok := index[ingredientID]; ok {
			if normalized[at].Unit != line.Unit {
				details = append(details, fmt.Sprintf(
					"ingredients[%d]: ingredient %s already listed with unit %s", i, ingredientID, normalized[at].Unit))
				continue
			}
			normalized[at].Quantity = domain.Round(normalized[at].Quantity + line.Quantity)
			continue
		}

		index[ingredientID] = len(normalized)
		normalized = append(normalized, entities.RecipeIngredient{
			IngredientID: ingredientID,
			Quantity:     domain.Round(line.Quantity),
			Unit:         line.Unit,
		})
	}

	if len(details) > 0 {
		return nil, domain.NewValidationError(domain.MessageInvalidRecipePayload, details...)
	}
	return normalized, nil
}

// validateReferences checks every line against the current ingredient catalog.
// All problems are collected so the caller can fix the payload in one pass.
func (s *recipeService) validateReferences(ctx context.Context, repo RecipeRepository, lines []entities.RecipeIngredient) (map[uuid.UUID]*entities.Ingredient, error) {
	ids := make([]uuid.UUID, 0, len(lines))
	for _, line := range lines {
		ids = append(ids, line.IngredientID)
	}

	ingredients, err := repo.FindIngredientsByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}

	catalog := make(map[uuid.UUID]*entities.Ingredient, len(ingredients))
	for _, ingredient := range ingredients {
		catalog[ingredient.ID] = ingredient
	}

	var details []string
	for _, line := range lines {
		ingredient, ok := catalog[line.IngredientID]
		if !ok {
			details = append(details, fmt.Sprintf("Ingredient %s does not exist", line.IngredientID))
			continue
		}
		if !ingredient.IsActive {
			details = append(details, fmt.Sprintf("Ingredient %q is inactive", ingredient.Name))
			continue
		}
		if ingredient.Unit != line.Unit {
			details = append(details, fmt.Sprintf("Ingredient %q is measured in %s, not %s",
				ingredient.Name, ingredient.Unit, line.Unit))
		}
	}
	if len(details) > 0 {
		return nil, domain.NewValidationError(domain.MessageInvalidRecipePayload, details...)
	}

	return catalog, nil
}

// computeMetrics derives per-serving cost from current ingredient costs. Lines
// whose ingredient is missing from the catalog contribute zero; the recipe
// detail view surfaces that separately.
func computeMetrics(recipe *entities.Recipe, catalog map[uuid.UUID]*entities.Ingredient) domain.RecipeMetrics {
	var cost float64
	for _, line := range recipe.Ingredients {
		if ingredient, ok := catalog[line.IngredientID]; ok {
			cost += line.Quantity * ingredient.CostPerUnit
		}
	}
	cost = domain.Round(cost)

	margin := domain.Round(recipe.SellingPrice - cost)
	var marginPercent float64
	if recipe.SellingPrice > 0 {
		marginPercent = math.Round(margin/recipe.SellingPrice*100*100) / 100
	}

	return domain.RecipeMetrics{
		CostPerServing: cost,
		Margin:         margin,
		MarginPercent:  marginPercent,
	}
}

func (s *recipeService) GetRecipes(ctx context.Context, query domain.RecipeQuery) (domain.RecipeListResponse, error) {
	recipes, count, err := s.recipeRepository.FindAll(ctx, query)
	if err != nil {
		return domain.RecipeListResponse{}, err
	}

	items := make([]domain.RecipeListItem, 0, len(recipes))

	if !query.IncludeComputed {
		for _, recipe := range recipes {
			items = append(items, domain.RecipeListItem{Recipe: recipe})
		}
		return domain.RecipeListResponse{
			Items:      items,
			Pagination: domain.NewPagination(query.Page, query.Limit, count),
		}, nil
	}

	seen := make(map[uuid.UUID]bool)
	ids := make([]uuid.UUID, 0)
	for _, recipe := range recipes {
		for _, line := range recipe.Ingredients {
			if !seen[line.IngredientID] {
				seen[line.IngredientID] = true
				ids = append(ids, line.IngredientID)
			}
		}
	}

	ingredients, err := s.recipeRepository.FindIngredientsByIDs(ctx, ids)
	if err != nil {
		return domain.RecipeListResponse{}, err
	}
	catalog := make(map[uuid.UUID]*entities.Ingredient, len(ingredients))
	for _, ingredient := range ingredients {
		catalog[ingredient.ID] = ingredient
	}

	for _, recipe := range recipes {
		metrics := computeMetrics(recipe, catalog)
		items = append(items, domain.RecipeListItem{Recipe: recipe, Computed: &metrics})
	}

	return domain.RecipeListResponse{
		Items:      items,
		Pagination: domain.NewPagination(query.Page, query.Limit, count),
	}, nil
}

func (s *recipeService) GetRecipeByID(ctx context.Context, id uuid.UUID) (domain.RecipeDetailResponse, error) {
	recipe, err := s.findRecipe(ctx, id)
	if err != nil {
		return domain.RecipeDetailResponse{}, err
	}
	return s.buildDetail(ctx, s.recipeRepository, recipe)
}

func (s *recipeService) buildDetail(ctx context.Context, repo RecipeRepository, recipe *entities.Recipe) (domain.RecipeDetailResponse, error) {
	ids := make([]uuid.UUID, 0, len(recipe.Ingredients))
	for _, line := range recipe.Ingredients {
		ids = append(ids, line.IngredientID)
	}

	ingredients, err := repo.FindIngredientsByIDs(ctx, ids)
	if err != nil {
		return domain.RecipeDetailResponse{}, err
	}
	catalog := make(map[uuid.UUID]*entities.Ingredient, len(ingredients))
	for _, ingredient := range ingredients {
		catalog[ingredient.ID] = ingredient
	}

	details := make([]domain.RecipeIngredientDetail, 0, len(recipe.Ingredients))
	for _, line := range recipe.Ingredients {
		detail := domain.RecipeIngredientDetail{
			IngredientID: line.IngredientID,
			Quantity:     line.Quantity,
			Unit:         line.Unit,
		}
		if ingredient, ok := catalog[line.IngredientID]; ok {
			detail.IngredientName = ingredient.Name
			detail.IngredientUnit = ingredient.Unit
			detail.IngredientIsActive = ingredient.IsActive
			detail.CostPerUnit = ingredient.CostPerUnit
			detail.CostContribution = domain.Round(line.Quantity * ingredient.CostPerUnit)
		}
		details = append(details, detail)
	}

	metrics := computeMetrics(recipe, catalog)
	return domain.RecipeDetailResponse{
		Recipe:            recipe,
		IngredientDetails: details,
		Computed:          &metrics,
	}, nil
}

func (s *recipeService) CreateRecipe(ctx context.Context, req domain.CreateRecipeRequest) (domain.RecipeDetailResponse, error) {
	lines, err := normalizeLines(req.Ingredients)
	if err != nil {
		return domain.RecipeDetailResponse{}, err
	}

	recipe := &entities.Recipe{
		Name:        req.Name,
		Description: req.Description,
		IsActive:    true,
	}
	if req.SellingPrice != nil {
		recipe.SellingPrice = *req.SellingPrice
	}
	if req.IsActive != nil {
		recipe.IsActive = *req.IsActive
	}

	err = s.recipeRepository.InTransaction(ctx, func(repo RecipeRepository) error {
		if _, err := s.validateReferences(ctx, repo, lines); err != nil {
			return err
		}
		for i := range lines {
			lines[i].Position = i
		}
		recipe.Ingredients = lines
		return repo.Create(ctx, recipe)
	})
	if err != nil {
		return domain.RecipeDetailResponse{}, err
	}

	return s.buildDetail(ctx, s.recipeRepository, recipe)
}

func (s *recipeService) UpdateRecipe(ctx context.Context, id uuid.UUID, req domain.UpdateRecipeRequest) (domain.RecipeDetailResponse, error) {
	var lines []entities.RecipeIngredient
	if req.Ingredients != nil {
		normalized, err := normalizeLines(req.Ingredients)
		if err != nil {
			return domain.RecipeDetailResponse{}, err
		}
		lines = normalized
	}

	var updated *entities.Recipe
	err := s.recipeRepository.InTransaction(ctx, func(repo RecipeRepository) error {
		recipe, err := repo.FindByID(ctx, id)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domain.NewNotFoundError(domain.MessageRecipeNotFound)
			}
			return err
		}

		if req.Name != nil {
			recipe.Name = *req.Name
		}
		if req.Description != nil {
			recipe.Description = *req.Description
		}
		if req.SellingPrice != nil {
			recipe.SellingPrice = *req.SellingPrice
		}

		if err := repo.Save(ctx, recipe); err != nil {
			return err
		}

		if req.Ingredients != nil {
			if _, err := s.validateReferences(ctx, repo, lines); err != nil {
				return err
			}
			if err := repo.ReplaceLines(ctx, recipe.ID, lines); err != nil {
				return err
			}
			recipe.Ingredients = lines
		}

		updated = recipe
		return nil
	})
	if err != nil {
		return domain.RecipeDetailResponse{}, err
	}

	return s.buildDetail(ctx, s.recipeRepository, updated)
}

func (s *recipeService) findRecipe(ctx context.Context, id uuid.UUID) (*entities.Recipe, error) {
	recipe, err := s.recipeRepository.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.NewNotFoundError(domain.MessageRecipeNotFound)
		}
		return nil, err
	}
	return recipe, nil
}

func (s *recipeService) ArchiveRecipe(ctx context.Context, id uuid.UUID) (*entities.Recipe, bool, error) {
	recipe, err := s.findRecipe(ctx, id)
	if err != nil {
		return nil, false, err
	}

	if !recipe.IsActive {
		return recipe, false, nil
	}

	recipe.IsActive = false
	if err := s.recipeRepository.Save(ctx, recipe); err != nil {
		return nil, false, err
	}
	return recipe, true, nil
}

func (s *recipeService) RestoreRecipe(ctx context.Context, id uuid.UUID) (*entities.Recipe, bool, error) {
	recipe, err := s.findRecipe(ctx, id)
	if err != nil {
		return nil, false, err
	}

	if recipe.IsActive {
		return recipe, false, nil
	}

	recipe.IsActive = true
	if err := s.recipeRepository.Save(ctx, recipe); err != nil {
		return nil, false, err
	}
	return recipe, true, nil
}
