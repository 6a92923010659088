package api

import "github.com/gofiber/fiber/v2"

func RegisterRoutes(app *fiber.App, handler *Handler) {
	app.Get("/healthz", handler.Health)

	api := app.Group("/api")

	auth := api.Group("/auth")
	auth.Post("/register", handler.Register)
	auth.Post("/login", handler.Login)
	auth.Post("/logout", handler.AuthRequired, handler.Logout)

	menstrual := api.Group("/menstrual", handler.AuthRequired)
	menstrual.Get("", handler.GetCycleSummary)
	menstrual.Post("", handler.CreatePeriodRecord)
	menstrual.Delete("/:id", handler.DeletePeriodRecord)

	sleep := api.Group("/sleep", handler.AuthRequired)
	sleep.Get("", handler.GetSleepRecords)
	sleep.Post("", handler.CreateSleepRecord)
	sleep.Delete("/:id", handler.DeleteSleepRecord)

	weight := api.Group("/weight", handler.AuthRequired)
	weight.Get("", handler.GetWeightRecords)
	weight.Post("", handler.UpsertWeightRecord)

	meal := api.Group("/meal", handler.AuthRequired)
	meal.Get("/plan", handler.GetMealPlan)

	music := api.Group("/music", handler.AuthRequired)
	music.Post("/keywords", handler.GetMusicKeywords)
}
