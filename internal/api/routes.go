package api

import "github.com/gofiber/fiber/v2"

func RegisterRoutes(app *fiber.App, handler *Handler) {
	app.Get("/healthz", handler.Health)

	api := app.Group("/api")

	auth := api.Group("/auth")
	auth.Post("/login", handler.Login)
	auth.Post("/logout", handler.AuthRequired, handler.Logout)
	auth.Get("/session", handler.AuthRequired, handler.Session)

	meals := api.Group("/meals", handler.AuthRequired)
	meals.Get("", handler.ListMeals)
	meals.Get("/daily-kcal", handler.DailyCalories)
	meals.Post("/analyze", handler.AnalyzeMeal)
	meals.Post("/confirm", handler.ConfirmMeal)
	meals.Delete("/pending/:token", handler.CancelPendingMeal)

	imports := api.Group("/import", handler.AuthRequired)
	imports.Post("/preview", handler.PreviewImport)
	imports.Post("/commit", handler.CommitImport)
	imports.Delete("/:token", handler.CancelImport)

	dashboard := api.Group("/dashboard", handler.AuthRequired)
	dashboard.Get("/overview", handler.DashboardOverview)

	workouts := api.Group("/workouts", handler.AuthRequired)
	workouts.Get("", handler.ListWorkouts)
	workouts.Post("", handler.CreateWorkout)

	export := api.Group("/export", handler.AuthRequired)
	export.Get("/metrics.csv", handler.ExportMetricsCSV)
	export.Get("/meals.csv", handler.ExportMealsCSV)
}
