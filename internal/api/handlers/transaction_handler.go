package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"inventory-brew/domain"
	"inventory-brew/internal/api/presenters"
	"inventory-brew/pkg/transaction"
)

type (
	TransactionHandler interface {
		GetTransactions(c *fiber.Ctx) error
	}

	transactionHandler struct {
		transactionService transaction.TransactionService
	}
)

func NewTransactionHandler(transactionService transaction.TransactionService) TransactionHandler {
	return &transactionHandler{transactionService: transactionService}
}

func (h *transactionHandler) GetTransactions(c *fiber.Ctx) error {
	query := domain.TransactionQuery{
		Page:           pageQuery(c),
		Limit:          limitQuery(c, 20),
		IngredientID:   c.Query("ingredientId"),
		Type:           c.Query("type"),
		ReferenceType:  c.Query("referenceType"),
		ReferenceID:    c.Query("referenceId"),
		Reason:         c.Query("reason"),
		IncludeRelated: c.QueryBool("includeRelated", false),
		SortBy:         c.Query("sortBy", "createdAt"),
		SortOrder:      c.Query("sortOrder", "desc"),
	}

	if raw := c.Query("dateFrom"); raw != "" {
		parsed, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			return presenters.ErrorResponse(c, domain.MessageFailedGetTransactions,
				domain.NewValidationError(domain.MessageInvalidTransactionQuery, "dateFrom must be an RFC 3339 timestamp"))
		}
		query.DateFrom = &parsed
	}
	if raw := c.Query("dateTo"); raw != "" {
		parsed, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			return presenters.ErrorResponse(c, domain.MessageFailedGetTransactions,
				domain.NewValidationError(domain.MessageInvalidTransactionQuery, "dateTo must be an RFC 3339 timestamp"))
		}
		query.DateTo = &parsed
	}

	res, err := h.transactionService.GetTransactions(c.Context(), query)
	if err != nil {
		return presenters.ErrorResponse(c, domain.MessageFailedGetTransactions, err)
	}

	return presenters.SuccessResponse(c, fiber.StatusOK, res)
}
