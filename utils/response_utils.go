package utils

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/felipe-jimenez-ai/mentoria/models"
)

// RespondWithError sends a JSON error response.
func RespondWithError(c *fiber.Ctx, statusCode int, message string) error {
	return c.Status(statusCode).JSON(fiber.Map{
		"status":  "error",
		"message": message,
	})
}

// RespondWithJSON sends a JSON success response.
func RespondWithJSON(c *fiber.Ctx, statusCode int, data interface{}) error {
	return c.Status(statusCode).JSON(fiber.Map{
		"status": "success",
		"data":   data,
	})
}

// StatusFor maps a pipeline error to the HTTP status returned to the UI.
func StatusFor(err error) int {
	switch {
	case errors.Is(err, models.ErrInvalidReference),
		errors.Is(err, models.ErrEmptyTranscript),
		errors.Is(err, models.ErrInvalidKind):
		return fiber.StatusBadRequest
	case errors.Is(err, models.ErrTranscriptUnavailable):
		return fiber.StatusNotFound
	case errors.Is(err, models.ErrNotSet):
		return fiber.StatusConflict
	case errors.Is(err, models.ErrRateLimited):
		return fiber.StatusTooManyRequests
	case errors.Is(err, models.ErrAuthentication):
		return fiber.StatusInternalServerError
	case errors.Is(err, models.ErrNetwork),
		errors.Is(err, models.ErrEmptyResponse):
		return fiber.StatusBadGateway
	default:
		return fiber.StatusInternalServerError
	}
}

// FormatValidationErrors formats validation errors from validator/v10.
func FormatValidationErrors(err error) []string {
	var messages []string
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		for _, ve := range verrs {
			element := fmt.Sprintf("Field '%s' failed on the '%s' tag", ve.Field(), ve.Tag())
			if ve.Param() != "" {
				element = fmt.Sprintf("%s (value: %s)", element, ve.Param())
			}
			messages = append(messages, element)
		}
	}
	return messages
}
