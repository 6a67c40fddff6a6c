package handlers

import (
	"film-recommendations/internal/middleware"
	"film-recommendations/internal/services"
	"film-recommendations/internal/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type FilmHandler struct {
	service services.CatalogService
	logger  *logrus.Logger
}

func NewFilmHandler(service services.CatalogService, logger *logrus.Logger) *FilmHandler {
	return &FilmHandler{
		service: service,
		logger:  logger,
	}
}

// GetFilmByID godoc
// @Summary Get film by ID
// @Description Get a single catalog film with its genre
// @Tags films
// @Accept json
// @Produce json
// @Param id path int true "Film ID"
// @Success 200 {object} utils.StandardResponse{data=FilmResponse} "Film details"
// @Failure 400 {object} utils.StandardResponse "Invalid film ID"
// @Failure 404 {object} utils.StandardResponse "Film not found"
// @Failure 502 {object} utils.StandardResponse "Catalog unavailable"
// @Router /films/{id} [get]
func (h *FilmHandler) GetFilmByID(c *fiber.Ctx) error {
	id, err := parseFilmID(c)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid film ID")
	}

	film, err := h.service.GetFilm(c.UserContext(), id)
	if err != nil {
		status := statusFor(err)
		h.logger.WithError(err).WithFields(logrus.Fields{
			"film_id":    id,
			"request_id": middleware.GetRequestID(c),
		}).Warn("Failed to get film")
		if status == fiber.StatusNotFound {
			return utils.ErrorResponse(c, status, "Film not found")
		}
		return utils.ErrorResponse(c, status, "Failed to retrieve film")
	}

	return utils.SuccessResponse(c, fiber.StatusOK, "Film retrieved successfully", toFilmResponse(film))
}

// GetGenres godoc
// @Summary List genres
// @Description List every catalog genre ordered by id
// @Tags films
// @Produce json
// @Success 200 {object} utils.StandardResponse{data=[]GenreResponse} "Genres"
// @Failure 502 {object} utils.StandardResponse "Catalog unavailable"
// @Router /genres [get]
func (h *FilmHandler) GetGenres(c *fiber.Ctx) error {
	genres, err := h.service.ListGenres(c.UserContext())
	if err != nil {
		h.logger.WithError(err).WithField("request_id", middleware.GetRequestID(c)).Error("Failed to list genres")
		return utils.ErrorResponse(c, statusFor(err), "Failed to retrieve genres")
	}

	return utils.SuccessResponse(c, fiber.StatusOK, "Genres retrieved successfully", toGenreResponses(genres))
}
