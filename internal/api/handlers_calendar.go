package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/terraincognita07/moodlog/internal/services"
)

func (handler *Handler) GetCalendar(c *fiber.Ctx) error {
	user, _ := currentUser(c)

	entries, err := handler.calendarService.ListEntries(user.ID)
	if err != nil {
		return respondServiceError(c, err, "failed to load calendar")
	}
	return c.JSON(newCalendarEntryResponses(entries))
}

func (handler *Handler) SaveCalendarEntry(c *fiber.Ctx) error {
	user, _ := currentUser(c)

	input := calendarEntryInput{}
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}

	entry, err := handler.calendarService.SaveEntry(user.ID, services.CalendarEntryInput{
		Date:    input.Date,
		Comment: input.Comment,
		Emoji:   input.Emoji,
	})
	if err != nil {
		return respondServiceError(c, err, "failed to save entry")
	}
	return c.JSON(newCalendarEntryResponse(entry))
}

func (handler *Handler) DeleteCalendarEntry(c *fiber.Ctx) error {
	user, _ := currentUser(c)

	if err := handler.calendarService.DeleteEntry(user.ID, c.Params("date")); err != nil {
		return respondServiceError(c, err, "failed to delete entry")
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// PatchCalendarComment takes the new comment as the raw request body. A JSON body
// of the form {"comment": "..."} is accepted too.
func (handler *Handler) PatchCalendarComment(c *fiber.Ctx) error {
	user, _ := currentUser(c)

	comment := string(c.Body())
	if isJSONRequest(c) {
		input := calendarEntryInput{}
		if err := c.BodyParser(&input); err != nil {
			return apiError(c, fiber.StatusBadRequest, "invalid input")
		}
		comment = input.Comment
	}

	entry, err := handler.calendarService.UpdateComment(user.ID, c.Params("date"), comment)
	if err != nil {
		return respondServiceError(c, err, "failed to update comment")
	}
	return c.JSON(newCalendarEntryResponse(entry))
}
