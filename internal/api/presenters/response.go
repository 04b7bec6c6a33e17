package presenters

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"inventory-brew/domain"
)

func SuccessResponse(c *fiber.Ctx, status int, data interface{}) error {
	return c.Status(status).JSON(data)
}

// ErrorResponse renders any error as the error envelope. AppError values carry
// their own status and code; validator errors become a 400 with one detail per
// failing field; everything else is an opaque 500 so storage errors never leak
// to clients.
func ErrorResponse(c *fiber.Ctx, message string, err error) error {
	var appErr *domain.AppError
	if errors.As(err, &appErr) {
		return c.Status(appErr.Status).JSON(fiber.Map{"error": appErr})
	}

	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		details := make([]string, 0, len(validationErrs))
		for _, fieldErr := range validationErrs {
			details = append(details, fieldDetail(fieldErr))
		}
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": domain.AppError{
				Code:    domain.CodeValidationError,
				Message: message,
				Details: details,
			},
		})
	}

	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
		"error": domain.AppError{
			Code:    domain.CodeInternalServerError,
			Message: message,
		},
	})
}

// InvalidIDResponse is the shared answer for path parameters that do not
// parse as ids.
func InvalidIDResponse(c *fiber.Ctx, message string) error {
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
		"error": domain.AppError{
			Code:    domain.CodeInvalidID,
			Message: message,
		},
	})
}

func fieldDetail(fieldErr validator.FieldError) string {
	switch fieldErr.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", fieldErr.Field())
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", fieldErr.Field(), fieldErr.Param())
	case "min":
		return fmt.Sprintf("%s must be at least %s", fieldErr.Field(), fieldErr.Param())
	case "gt":
		return fmt.Sprintf("%s must be greater than %s", fieldErr.Field(), fieldErr.Param())
	case "uuid":
		return fmt.Sprintf("%s must be a valid id", fieldErr.Field())
	default:
		return fmt.Sprintf("%s failed on the %s rule", fieldErr.Field(), fieldErr.Tag())
	}
}
