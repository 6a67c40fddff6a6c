package handlers

import (
	"film-recommendations/internal/middleware"
	"film-recommendations/internal/services"
	"film-recommendations/internal/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type CatalogHandler struct {
	service services.CatalogService
	logger  *logrus.Logger
}

func NewCatalogHandler(service services.CatalogService, logger *logrus.Logger) *CatalogHandler {
	return &CatalogHandler{
		service: service,
		logger:  logger,
	}
}

// ImportCatalog godoc
// @Summary Import catalog snapshot
// @Description Load genres and films from the catalog snapshot in object storage and upsert them
// @Tags catalog
// @Produce json
// @Success 200 {object} utils.StandardResponse{data=models.ImportLog} "Import completed"
// @Failure 502 {object} utils.StandardResponse{data=models.ImportLog} "Snapshot unavailable or malformed"
// @Router /catalog/import [post]
func (h *CatalogHandler) ImportCatalog(c *fiber.Ctx) error {
	importLog, err := h.service.ImportCatalog(c.UserContext())
	if err != nil {
		h.logger.WithError(err).WithField("request_id", middleware.GetRequestID(c)).Error("Catalog import failed")
		return utils.ErrorWithDataResponse(c, statusFor(err), "Catalog import failed", importLog)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, "Catalog imported successfully", importLog)
}

// GetLastImportLog godoc
// @Summary Get last import log
// @Description Get the most recent catalog import attempt
// @Tags catalog
// @Produce json
// @Success 200 {object} utils.StandardResponse{data=models.ImportLog} "Last import log"
// @Failure 404 {object} utils.StandardResponse "No import has run yet"
// @Failure 500 {object} utils.StandardResponse "Internal server error"
// @Router /catalog/last-import [get]
func (h *CatalogHandler) GetLastImportLog(c *fiber.Ctx) error {
	importLog, err := h.service.GetLastImportLog(c.UserContext())
	if err != nil {
		h.logger.WithError(err).Error("Failed to get last import log")
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to retrieve import log")
	}
	if importLog == nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, "No catalog import found")
	}

	return utils.SuccessResponse(c, fiber.StatusOK, "Import log retrieved successfully", importLog)
}
