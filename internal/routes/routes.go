package routes

import (
	"film-recommendations/internal/handlers"

	"github.com/gofiber/fiber/v2"
)

func Setup(app *fiber.App, recommendationHandler *handlers.RecommendationHandler, filmHandler *handlers.FilmHandler, catalogHandler *handlers.CatalogHandler) {
	// API versioning
	api := app.Group("/api")
	v1 := api.Group("/v1")

	// Film routes - catalog reads and recommendations
	films := v1.Group("/films")
	{
		films.Get("/:id", filmHandler.GetFilmByID)
		films.Get("/:id/recommendations", recommendationHandler.GetRecommendations)
	}

	v1.Get("/genres", filmHandler.GetGenres)

	// Catalog routes - snapshot import from object storage
	catalog := v1.Group("/catalog")
	{
		catalog.Post("/import", catalogHandler.ImportCatalog)
		catalog.Get("/last-import", catalogHandler.GetLastImportLog)
	}
}
