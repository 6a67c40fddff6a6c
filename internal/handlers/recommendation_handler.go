package handlers

import (
	"film-recommendations/internal/middleware"
	"film-recommendations/internal/services"
	"film-recommendations/internal/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type RecommendationHandler struct {
	service services.RecommendationService
	logger  *logrus.Logger
}

func NewRecommendationHandler(service services.RecommendationService, logger *logrus.Logger) *RecommendationHandler {
	return &RecommendationHandler{
		service: service,
		logger:  logger,
	}
}

// GetRecommendations godoc
// @Summary Get film recommendations
// @Description Films of the same genre released within fifteen years of the given film, rated above 4.0 by the review service, ordered by id
// @Tags recommendations
// @Accept json
// @Produce json
// @Param id path int true "Film ID"
// @Param limit query int false "Maximum number of candidates considered" minimum(0)
// @Param offset query int false "Number of leading results to drop" minimum(0)
// @Success 200 {object} models.RecommendationResponse "Recommendations"
// @Failure 400 {object} utils.StandardResponse "Invalid film ID or pagination"
// @Failure 404 {object} utils.StandardResponse "Film not found"
// @Failure 502 {object} utils.StandardResponse "Catalog or review service unavailable"
// @Router /films/{id}/recommendations [get]
func (h *RecommendationHandler) GetRecommendations(c *fiber.Ctx) error {
	filmID, err := parseFilmID(c)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid film ID")
	}

	var query RecommendationQuery
	if query.Limit, err = parseOptionalInt(c, "limit"); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, err.Error())
	}
	if query.Offset, err = parseOptionalInt(c, "offset"); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, err.Error())
	}
	if verr := utils.ValidateStruct(&query); verr != nil {
		return utils.ErrorWithDataResponse(c, fiber.StatusBadRequest, verr.Error(), verr.Fields)
	}

	resp, err := h.service.GetRecommendations(c.UserContext(), services.RecommendationRequest{
		FilmID: filmID,
		Limit:  query.Limit,
		Offset: query.Offset,
	})
	if err != nil {
		status := statusFor(err)
		entry := h.logger.WithError(err).WithFields(logrus.Fields{
			"film_id":    filmID,
			"status":     status,
			"request_id": middleware.GetRequestID(c),
		})
		if status >= fiber.StatusInternalServerError {
			entry.Error("Failed to get recommendations")
		} else {
			entry.Info("Recommendations request rejected")
		}
		return utils.ErrorResponse(c, status, recommendationMessage(status))
	}

	return c.Status(fiber.StatusOK).JSON(resp)
}

func recommendationMessage(status int) string {
	switch status {
	case fiber.StatusBadRequest:
		return "Invalid pagination parameters"
	case fiber.StatusNotFound:
		return "Film not found"
	case fiber.StatusBadGateway:
		return "Recommendation dependencies are unavailable"
	default:
		return "Failed to compute recommendations"
	}
}
