package domain

import (
	"math"
	"strings"

	"github.com/gofiber/fiber/v2"
)

const (
	CodeValidationError            = "VALIDATION_ERROR"
	CodeInvalidID                  = "INVALID_ID"
	CodeNotFound                   = "NOT_FOUND"
	CodeInactiveResource           = "INACTIVE_RESOURCE"
	CodeInvalidRecipeConfiguration = "INVALID_RECIPE_CONFIGURATION"
	CodeInsufficientStock          = "INSUFFICIENT_STOCK"
	CodeInternalServerError        = "INTERNAL_SERVER_ERROR"
)

var MessageFailedBodyRequest = "Failed to parse request body"

// AppError carries the HTTP status, a machine-readable code, and a
// human-readable detail list across service boundaries. Handlers never
// inspect raw storage errors; services translate them into AppError values.
type AppError struct {
	Status  int      `json:"-"`
	Code    string   `json:"code"`
	Message string   `json:"message"`
	Details []string `json:"details,omitempty"`
}

func (e *AppError) Error() string {
	if len(e.Details) == 0 {
		return e.Message
	}
	return e.Message + ": " + strings.Join(e.Details, "; ")
}

func NewAppError(status int, code, message string, details ...string) *AppError {
	return &AppError{Status: status, Code: code, Message: message, Details: details}
}

func NewValidationError(message string, details ...string) *AppError {
	return NewAppError(fiber.StatusBadRequest, CodeValidationError, message, details...)
}

func NewNotFoundError(message string) *AppError {
	return NewAppError(fiber.StatusNotFound, CodeNotFound, message)
}

type Pagination struct {
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	Total      int64 `json:"total"`
	TotalPages int64 `json:"totalPages"`
}

func NewPagination(page, limit int, total int64) Pagination {
	totalPages := (total + int64(limit) - 1) / int64(limit)
	if totalPages < 1 {
		totalPages = 1
	}
	return Pagination{Page: page, Limit: limit, Total: total, TotalPages: totalPages}
}

// Round truncates floating-point drift to 4 fractional digits. Every stock
// arithmetic step goes through it so that ledger replay stays exact across
// repeated movements.
func Round(v float64) float64 {
	return math.Round(v*10000) / 10000
}
