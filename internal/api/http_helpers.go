package api

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/terraincognita07/moodlog/internal/services"
)

func apiError(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(fiber.Map{"error": message})
}

func isJSONRequest(c *fiber.Ctx) bool {
	contentType := strings.ToLower(strings.TrimSpace(c.Get(fiber.HeaderContentType)))
	return strings.HasPrefix(contentType, fiber.MIMEApplicationJSON)
}

// respondServiceError maps service sentinels to statuses. Unknown errors become 500
// with the fallback message so internals never leak to clients.
func respondServiceError(c *fiber.Ctx, err error, fallback string) error {
	switch {
	case errors.Is(err, services.ErrAuthCredentialsInvalid):
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	case errors.Is(err, services.ErrAuthUsernameInvalid):
		return apiError(c, fiber.StatusBadRequest, "invalid username")
	case errors.Is(err, services.ErrWeakPassword):
		return apiError(c, fiber.StatusBadRequest, "weak password")
	case errors.Is(err, services.ErrPasswordTooLong):
		return apiError(c, fiber.StatusBadRequest, "password too long")
	case errors.Is(err, services.ErrAuthEmailExists):
		return apiError(c, fiber.StatusConflict, "email already exists")
	case errors.Is(err, services.ErrAuthInvalidLogin):
		return apiError(c, fiber.StatusUnauthorized, "invalid credentials")
	case errors.Is(err, services.ErrInvalidCalendarDate):
		return apiError(c, fiber.StatusBadRequest, "invalid date")
	case errors.Is(err, services.ErrCalendarEntryNotFound):
		return apiError(c, fiber.StatusNotFound, "entry not found")
	case errors.Is(err, services.ErrAccountPasswordChangeInvalidInput),
		errors.Is(err, services.ErrAccountPasswordMissing):
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	case errors.Is(err, services.ErrAccountPasswordMismatch):
		return apiError(c, fiber.StatusBadRequest, "password mismatch")
	case errors.Is(err, services.ErrAccountInvalidCurrentPassword):
		return apiError(c, fiber.StatusUnauthorized, "invalid current password")
	case errors.Is(err, services.ErrAccountNewPasswordMustDiffer):
		return apiError(c, fiber.StatusBadRequest, "new password must differ")
	default:
		return apiError(c, fiber.StatusInternalServerError, fallback)
	}
}
