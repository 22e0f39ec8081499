package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/terraincognita07/moodlog/internal/services"
)

func (handler *Handler) GetProfile(c *fiber.Ctx) error {
	user, _ := currentUser(c)
	return c.JSON(newUserResponse(user))
}

func (handler *Handler) UpdateProfile(c *fiber.Ctx) error {
	user, _ := currentUser(c)

	input := profileInput{}
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}

	updated, err := handler.accountService.UpdateUsername(user.ID, input.Username)
	if err != nil {
		return respondServiceError(c, err, "failed to update profile")
	}
	return c.JSON(newUserResponse(&updated))
}

func (handler *Handler) ChangePassword(c *fiber.Ctx) error {
	user, _ := currentUser(c)

	input := changePasswordInput{}
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}

	if err := handler.accountService.ChangePassword(user.ID, services.PasswordChangeInput{
		CurrentPassword: input.CurrentPassword,
		NewPassword:     input.NewPassword,
		ConfirmPassword: input.ConfirmPassword,
	}); err != nil {
		return respondServiceError(c, err, "failed to change password")
	}
	return c.JSON(fiber.Map{"ok": true})
}

func (handler *Handler) DeleteAccount(c *fiber.Ctx) error {
	user, _ := currentUser(c)

	input := deleteAccountInput{}
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}

	if err := handler.accountService.DeleteAccount(user.ID, input.Password); err != nil {
		return respondServiceError(c, err, "failed to delete account")
	}
	return c.SendStatus(fiber.StatusNoContent)
}
