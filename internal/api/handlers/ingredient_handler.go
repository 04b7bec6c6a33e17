package handlers

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"inventory-brew/domain"
	"inventory-brew/internal/api/presenters"
	"inventory-brew/pkg/ingredient"
)

type (
	IngredientHandler interface {
		GetIngredients(c *fiber.Ctx) error
		GetIngredientDetails(c *fiber.Ctx) error
		CreateIngredient(c *fiber.Ctx) error
		UpdateIngredient(c *fiber.Ctx) error
		ArchiveIngredient(c *fiber.Ctx) error
		RestoreIngredient(c *fiber.Ctx) error
		AdjustStock(c *fiber.Ctx) error
	}

	ingredientHandler struct {
		ingredientService ingredient.IngredientService
		validator         *validator.Validate
	}
)

func NewIngredientHandler(ingredientService ingredient.IngredientService, validator *validator.Validate) IngredientHandler {
	return &ingredientHandler{
		ingredientService: ingredientService,
		validator:         validator,
	}
}

func (h *ingredientHandler) GetIngredients(c *fiber.Ctx) error {
	query := domain.IngredientQuery{
		Page:             pageQuery(c),
		Limit:            limitQuery(c, 20),
		Search:           c.Query("search"),
		Category:         c.Query("category"),
		IncludeInactive:  c.QueryBool("includeInactive", false),
		OnlyInactive:     c.QueryBool("onlyInactive", false),
		LowStockOnly:     c.QueryBool("lowStock", false),
		HealthyStockOnly: c.QueryBool("healthyStock", false),
		SortBy:           c.Query("sortBy", "name"),
		SortOrder:        c.Query("sortOrder", "asc"),
	}

	res, err := h.ingredientService.GetIngredients(c.Context(), query)
	if err != nil {
		return presenters.ErrorResponse(c, domain.MessageFailedGetIngredients, err)
	}

	return presenters.SuccessResponse(c, fiber.StatusOK, res)
}

func (h *ingredientHandler) GetIngredientDetails(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return presenters.InvalidIDResponse(c, domain.MessageInvalidIngredientID)
	}

	res, err := h.ingredientService.GetIngredientByID(c.Context(), id)
	if err != nil {
		return presenters.ErrorResponse(c, domain.MessageFailedGetIngredient, err)
	}

	return presenters.SuccessResponse(c, fiber.StatusOK, res)
}

func (h *ingredientHandler) CreateIngredient(c *fiber.Ctx) error {
	req := new(domain.CreateIngredientRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, domain.MessageFailedBodyRequest,
			domain.NewValidationError(domain.MessageInvalidIngredientPayload, err.Error()))
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, domain.MessageInvalidIngredientPayload, err)
	}

	res, err := h.ingredientService.CreateIngredient(c.Context(), *req)
	if err != nil {
		return presenters.ErrorResponse(c, domain.MessageFailedCreateIngredient, err)
	}

	return presenters.SuccessResponse(c, fiber.StatusCreated, res)
}

func (h *ingredientHandler) UpdateIngredient(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return presenters.InvalidIDResponse(c, domain.MessageInvalidIngredientID)
	}

	req := new(domain.UpdateIngredientRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, domain.MessageFailedBodyRequest,
			domain.NewValidationError(domain.MessageInvalidIngredientPayload, err.Error()))
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, domain.MessageInvalidIngredientPayload, err)
	}

	res, err := h.ingredientService.UpdateIngredient(c.Context(), id, *req)
	if err != nil {
		return presenters.ErrorResponse(c, domain.MessageFailedUpdateIngredient, err)
	}

	return presenters.SuccessResponse(c, fiber.StatusOK, res)
}

func (h *ingredientHandler) ArchiveIngredient(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return presenters.InvalidIDResponse(c, domain.MessageInvalidIngredientID)
	}

	res, changed, err := h.ingredientService.ArchiveIngredient(c.Context(), id)
	if err != nil {
		return presenters.ErrorResponse(c, domain.MessageFailedArchiveIngredient, err)
	}

	message := domain.MessageSuccessArchiveIngredient
	if !changed {
		message = domain.MessageIngredientAlreadyInactive
	}
	return presenters.SuccessResponse(c, fiber.StatusOK, fiber.Map{
		"message":    message,
		"ingredient": res,
	})
}

func (h *ingredientHandler) RestoreIngredient(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return presenters.InvalidIDResponse(c, domain.MessageInvalidIngredientID)
	}

	res, changed, err := h.ingredientService.RestoreIngredient(c.Context(), id)
	if err != nil {
		return presenters.ErrorResponse(c, domain.MessageFailedRestoreIngredient, err)
	}

	message := domain.MessageSuccessRestoreIngredient
	if !changed {
		message = domain.MessageIngredientAlreadyActive
	}
	return presenters.SuccessResponse(c, fiber.StatusOK, fiber.Map{
		"message":    message,
		"ingredient": res,
	})
}

func (h *ingredientHandler) AdjustStock(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return presenters.InvalidIDResponse(c, domain.MessageInvalidIngredientID)
	}

	req := new(domain.AdjustStockRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, domain.MessageFailedBodyRequest,
			domain.NewValidationError(domain.MessageInvalidIngredientPayload, err.Error()))
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, domain.MessageInvalidIngredientPayload, err)
	}

	res, err := h.ingredientService.AdjustStock(c.Context(), id, *req)
	if err != nil {
		return presenters.ErrorResponse(c, domain.MessageFailedAdjustStock, err)
	}

	return presenters.SuccessResponse(c, fiber.StatusOK, res)
}
