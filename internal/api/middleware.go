package api

import (
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/terraincognita07/moodlog/internal/models"
)

const contextUserKey = "current_user"

func currentUser(c *fiber.Ctx) (*models.User, bool) {
	user, ok := c.Locals(contextUserKey).(*models.User)
	return user, ok
}

func (handler *Handler) AuthRequired(c *fiber.Ctx) error {
	user, err := handler.authenticateRequest(c)
	if err != nil {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}
	c.Locals(contextUserKey, user)
	return c.Next()
}

// SameUserOnly rejects requests whose path or query userId is not the caller's own id.
func (handler *Handler) SameUserOnly(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	raw := strings.TrimSpace(c.Params("userId"))
	if raw == "" {
		raw = strings.TrimSpace(c.Query("userId"))
	}
	requestedID, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || requestedID == 0 {
		return apiError(c, fiber.StatusBadRequest, "invalid user id")
	}
	if uint(requestedID) != user.ID {
		return apiError(c, fiber.StatusForbidden, "forbidden")
	}
	return c.Next()
}
