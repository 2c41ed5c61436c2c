package handler

import (
	"github.com/gofiber/fiber/v2"

	"formdemo/internal/service"
	"formdemo/internal/view"
)

// RegisterRoutes attaches HTTP routes to the provided Fiber app.
func RegisterRoutes(app *fiber.App, svc service.FormService, views *view.Renderer) {
	app.Get("/health", HealthCheck())
	app.Get("/healthz", LivenessProbe())

	// Form pages
	app.Get("/", Page(views, view.Home))
	app.Get("/froyo", Page(views, view.FroyoForm))
	app.Get("/favorites", Page(views, view.FavoritesForm))
	app.Get("/secret_message", Page(views, view.MessageForm))
	app.Get("/calculator", Page(views, view.CalculatorForm))
	app.Get("/horoscope", Page(views, view.HoroscopeForm))

	// Result pages
	app.Get("/froyo_results", FroyoResults(svc, views))
	app.Get("/favorites_results", FavoritesResults(svc, views))
	app.Post("/message_results", MessageResults(svc, views))
	app.Get("/calculator_results", CalculatorResults(svc, views))
	app.Get("/horoscope_results", HoroscopeResults(svc, views))

	api := app.Group("/api/v1")
	api.Get("/froyo", APIFroyo(svc))
	api.Get("/favorites", APIFavorites(svc))
	api.Post("/message", APIMessage(svc))
	api.Get("/calculator", APICalculator(svc))
	api.Get("/horoscope", APIHoroscope(svc))
	api.Get("/signs", APISigns(svc))
}
