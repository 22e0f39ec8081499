package api

import "github.com/gofiber/fiber/v2"

func RegisterRoutes(app *fiber.App, handler *Handler) {
	app.Get("/healthz", handler.Health)

	ownData := []fiber.Handler{handler.AuthRequired, handler.SameUserOnly}
	own := func(final fiber.Handler) []fiber.Handler {
		return append(append([]fiber.Handler{}, ownData...), final)
	}

	app.Get("/emotion-stats", own(handler.GetEmotionStats)...)

	api := app.Group("/api")

	auth := api.Group("/auth")
	auth.Post("/register", handler.Register)
	auth.Post("/login", handler.Login)

	api.Get("/calendar/:userId", own(handler.GetCalendar)...)
	api.Post("/calendar/:userId", own(handler.SaveCalendarEntry)...)
	api.Delete("/calendar/:userId/:date", own(handler.DeleteCalendarEntry)...)
	api.Patch("/calendar/:userId/:date/comment", own(handler.PatchCalendarComment)...)

	api.Get("/emotion-stats/:userId", own(handler.GetEmotionStats)...)

	api.Get("/users/:userId", own(handler.GetProfile)...)
	api.Put("/users/:userId", own(handler.UpdateProfile)...)
	api.Put("/users/:userId/password", own(handler.ChangePassword)...)
	api.Delete("/users/:userId", own(handler.DeleteAccount)...)
}
