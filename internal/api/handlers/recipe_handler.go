package handlers

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"inventory-brew/domain"
	"inventory-brew/internal/api/presenters"
	"inventory-brew/pkg/cook"
	"inventory-brew/pkg/recipe"
)

type (
	RecipeHandler interface {
		GetRecipes(c *fiber.Ctx) error
		GetRecipeDetails(c *fiber.Ctx) error
		CreateRecipe(c *fiber.Ctx) error
		UpdateRecipe(c *fiber.Ctx) error
		ArchiveRecipe(c *fiber.Ctx) error
		RestoreRecipe(c *fiber.Ctx) error
		CookRecipe(c *fiber.Ctx) error
	}

	recipeHandler struct {
		recipeService recipe.RecipeService
		cookService   cook.CookService
		validator     *validator.Validate
	}
)

func NewRecipeHandler(recipeService recipe.RecipeService, cookService cook.CookService, validator *validator.Validate) RecipeHandler {
	return &recipeHandler{
		recipeService: recipeService,
		cookService:   cookService,
		validator:     validator,
	}
}

func (h *recipeHandler) GetRecipes(c *fiber.Ctx) error {
	query := domain.RecipeQuery{
		Page:            pageQuery(c),
		Limit:           limitQuery(c, 20),
		Search:          c.Query("search"),
		IncludeInactive: c.QueryBool("includeInactive", false),
		OnlyInactive:    c.QueryBool("onlyInactive", false),
		IncludeComputed: c.QueryBool("includeComputed", false),
		SortBy:          c.Query("sortBy", "name"),
		SortOrder:       c.Query("sortOrder", "asc"),
	}

	res, err := h.recipeService.GetRecipes(c.Context(), query)
	if err != nil {
		return presenters.ErrorResponse(c, domain.MessageFailedGetRecipes, err)
	}

	return presenters.SuccessResponse(c, fiber.StatusOK, res)
}

func (h *recipeHandler) GetRecipeDetails(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return presenters.InvalidIDResponse(c, domain.MessageInvalidRecipeID)
	}

	res, err := h.recipeService.GetRecipeByID(c.Context(), id)
	if err != nil {
		return presenters.ErrorResponse(c, domain.MessageFailedGetRecipe, err)
	}

	return presenters.SuccessResponse(c, fiber.StatusOK, res)
}

func (h *recipeHandler) CreateRecipe(c *fiber.Ctx) error {
	req := new(domain.CreateRecipeRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, domain.MessageFailedBodyRequest,
			domain.NewValidationError(domain.MessageInvalidRecipePayload, err.Error()))
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, domain.MessageInvalidRecipePayload, err)
	}

	res, err := h.recipeService.CreateRecipe(c.Context(), *req)
	if err != nil {
		return presenters.ErrorResponse(c, domain.MessageFailedCreateRecipe, err)
	}

	return presenters.SuccessResponse(c, fiber.StatusCreated, res)
}

func (h *recipeHandler) UpdateRecipe(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return presenters.InvalidIDResponse(c, domain.MessageInvalidRecipeID)
	}

	req := new(domain.UpdateRecipeRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, domain.MessageFailedBodyRequest,
			domain.NewValidationError(domain.MessageInvalidRecipePayload, err.Error()))
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, domain.MessageInvalidRecipePayload, err)
	}

	res, err := h.recipeService.UpdateRecipe(c.Context(), id, *req)
	if err != nil {
		return presenters.ErrorResponse(c, domain.MessageFailedUpdateRecipe, err)
	}

	return presenters.SuccessResponse(c, fiber.StatusOK, res)
}

func (h *recipeHandler) ArchiveRecipe(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return presenters.InvalidIDResponse(c, domain.MessageInvalidRecipeID)
	}

	res, changed, err := h.recipeService.ArchiveRecipe(c.Context(), id)
	if err != nil {
		return presenters.ErrorResponse(c, domain.MessageFailedArchiveRecipe, err)
	}

	message := domain.MessageSuccessArchiveRecipe
	if !changed {
		message = domain.MessageRecipeAlreadyArchive
	}
	return presenters.SuccessResponse(c, fiber.StatusOK, fiber.Map{
		"message": message,
		"recipe":  res,
	})
}

func (h *recipeHandler) RestoreRecipe(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return presenters.InvalidIDResponse(c, domain.MessageInvalidRecipeID)
	}

	res, changed, err := h.recipeService.RestoreRecipe(c.Context(), id)
	if err != nil {
		return presenters.ErrorResponse(c, domain.MessageFailedRestoreRecipe, err)
	}

	message := domain.MessageSuccessRestoreRecipe
	if !changed {
		message = domain.MessageRecipeAlreadyActive
	}
	return presenters.SuccessResponse(c, fiber.StatusOK, fiber.Map{
		"message": message,
		"recipe":  res,
	})
}

func (h *recipeHandler) CookRecipe(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return presenters.InvalidIDResponse(c, domain.MessageInvalidRecipeID)
	}

	req := new(domain.CookRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, domain.MessageFailedBodyRequest,
			domain.NewValidationError(domain.MessageInvalidCookPayload, err.Error()))
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, domain.MessageInvalidCookPayload, err)
	}

	result, err := h.cookService.Cook(c.Context(), id, req.Servings)
	if err != nil {
		return presenters.ErrorResponse(c, domain.MessageFailedCookRecipe, err)
	}

	return presenters.SuccessResponse(c, fiber.StatusOK, domain.CookResponse{
		Message:             domain.MessageSuccessCookRecipe,
		ExecutionMode:       result.ExecutionMode,
		Recipe:              result.Recipe,
		Servings:            result.Servings,
		Consumption:         result.Consumption,
		TransactionsCreated: result.TransactionsCreated,
	})
}
