package api

import "github.com/gofiber/fiber/v2"

func (handler *Handler) GetEmotionStats(c *fiber.Ctx) error {
	user, _ := currentUser(c)

	stats, err := handler.calendarService.EmotionStats(user.ID)
	if err != nil {
		return respondServiceError(c, err, "failed to load stats")
	}
	return c.JSON(newEmotionStatsResponse(stats))
}
