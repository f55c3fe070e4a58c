package countries

import (
	"context"
	"errors"
	"net/url"

	"country-atlas/core/apperror"
	"country-atlas/core/logger"
	"country-atlas/feature/countries/models"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for countries.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the country routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	app.Get("/status", h.HandleStatus)

	group := app.Group("/countries")
	group.Post("/refresh", h.HandleRefresh)
	group.Get("/", h.HandleList)
	group.Get("/:name", h.HandleGet)
	group.Delete("/:name", h.HandleDelete)
}

// HandleRefresh runs a full ingestion.
// @Summary Refresh Countries
// @Description Fetches every country from the source, reconciles the store and regenerates the summary image.
// @Tags countries
// @Produce json
// @Success 200 {object} reconcile.Summary "Run Summary"
// @Failure 409 {object} map[string]string "Run In Progress"
// @Failure 502 {object} map[string]string "Source Error"
// @Failure 503 {object} map[string]string "Source Unavailable"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /countries/refresh [post]
func (h *Handler) HandleRefresh(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)
	l.Info("Refresh requested")

	// The run outlives a disconnected client.
	ctx := context.WithoutCancel(c.UserContext())

	summary, err := h.service.RunIngestion(ctx)
	if err != nil {
		return h.fail(c, l, "Refresh failed", err)
	}
	return c.JSON(summary)
}

// HandleList lists countries.
// @Summary List Countries
// @Description Lists countries, optionally filtered by region and currency and sorted by estimated GDP.
// @Tags countries
// @Produce json
// @Param region query string false "Region (case-insensitive)"
// @Param currency query string false "Currency code"
// @Param sort query string false "gdp_asc or gdp_desc"
// @Success 200 {array} models.Country "Countries"
// @Failure 400 {object} map[string]string "Invalid Request"
// @Failure 404 {object} map[string]string "Not Found"
// @Router /countries [get]
func (h *Handler) HandleList(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	filter := models.Filter{
		Region:   c.Query("region"),
		Currency: c.Query("currency"),
		Sort:     c.Query("sort"),
	}

	countries, err := h.service.ListCountries(c.UserContext(), filter)
	if err != nil {
		return h.fail(c, l, "List countries failed", err)
	}
	return c.JSON(countries)
}

// HandleGet returns a single country.
// @Summary Get Country
// @Tags countries
// @Produce json
// @Param name path string true "Country name (case-insensitive)"
// @Success 200 {object} models.Country "Country"
// @Failure 404 {object} map[string]string "Not Found"
// @Router /countries/{name} [get]
func (h *Handler) HandleGet(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	country, err := h.service.GetCountry(c.UserContext(), h.nameParam(c))
	if err != nil {
		return h.fail(c, l, "Get country failed", err)
	}
	return c.JSON(country)
}

// HandleDelete deletes a country.
// @Summary Delete Country
// @Tags countries
// @Produce json
// @Param name path string true "Country name (case-insensitive)"
// @Success 200 {object} map[string]string "Deleted"
// @Failure 404 {object} map[string]string "Not Found"
// @Router /countries/{name} [delete]
func (h *Handler) HandleDelete(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	if err := h.service.DeleteCountry(c.UserContext(), h.nameParam(c)); err != nil {
		return h.fail(c, l, "Delete country failed", err)
	}
	return c.JSON(fiber.Map{"message": "Country deleted successfully"})
}

// HandleStatus reports the record count and last refresh time.
// @Summary Status
// @Tags countries
// @Produce json
// @Success 200 {object} models.Status "Status"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /status [get]
func (h *Handler) HandleStatus(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	status, err := h.service.GetStatus(c.UserContext())
	if err != nil {
		return h.fail(c, l, "Status failed", err)
	}
	return c.JSON(status)
}

// nameParam returns the decoded :name param. Fiber keeps params escaped ("United%20States").
func (h *Handler) nameParam(c *fiber.Ctx) string {
	raw := c.Params("name")
	if name, err := url.PathUnescape(raw); err == nil {
		return name
	}
	return raw
}

func (h *Handler) fail(c *fiber.Ctx, l *zap.Logger, msg string, err error) error {
	status := apperror.HTTPStatus(err)
	if status >= fiber.StatusInternalServerError {
		l.Error(msg, zap.Error(err))
	} else {
		l.Info(msg, zap.Error(err))
	}
	return c.Status(status).JSON(fiber.Map{
		"error":   errorTitle(err),
		"details": err.Error(),
	})
}

func errorTitle(err error) string {
	switch {
	case errors.Is(err, apperror.ErrNotFound):
		return "Country not found"
	case errors.Is(err, apperror.ErrInvalidRequest):
		return "Validation failed"
	case errors.Is(err, apperror.ErrSourceUnavailable):
		return "External data source unavailable"
	case errors.Is(err, apperror.ErrSourceError):
		return "External data source error"
	case errors.Is(err, apperror.ErrRunInProgress):
		return "Refresh already in progress"
	default:
		return "Internal server error"
	}
}
