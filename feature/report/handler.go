package report

import (
	"errors"

	"country-atlas/core/apperror"
	"country-atlas/core/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for the summary report.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the report routes. They must be registered before
// the /countries/:name route.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	app.Get("/countries/image", h.HandleImage)
	app.Get("/countries/summary", h.HandleSummary)
}

// HandleImage serves the cached summary image.
// @Summary Summary Image
// @Description Returns the PNG generated by the last refresh.
// @Tags report
// @Produce png
// @Success 200 {file} binary "Summary Image"
// @Failure 404 {object} map[string]string "Not Found"
// @Router /countries/image [get]
func (h *Handler) HandleImage(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	data, err := h.service.GetReport(c.UserContext())
	if err != nil {
		if errors.Is(err, apperror.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Summary image not found"})
		}
		l.Error("Failed to load summary image", zap.Error(err))
		return c.Status(apperror.HTTPStatus(err)).JSON(fiber.Map{"error": "Internal server error"})
	}

	c.Set(fiber.HeaderContentType, "image/png")
	c.Set(fiber.HeaderCacheControl, "no-cache")
	return c.Send(data)
}

// HandleSummary returns the report data as JSON.
// @Summary Summary Data
// @Description Returns the total count and the top countries by estimated GDP.
// @Tags report
// @Produce json
// @Success 200 {object} render.Snapshot "Summary"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /countries/summary [get]
func (h *Handler) HandleSummary(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	snapshot, err := h.service.Summary(c.UserContext())
	if err != nil {
		l.Error("Failed to build summary", zap.Error(err))
		return c.Status(apperror.HTTPStatus(err)).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(snapshot)
}
