package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"fleetrent/internal/errors"
	"fleetrent/internal/service"
)

// AnalyticsHandler handles the aggregate counts endpoint.
type AnalyticsHandler struct {
	analyticsService service.AnalyticsService
}

// NewAnalyticsHandler creates a new analytics handler.
func NewAnalyticsHandler(analyticsService service.AnalyticsService) *AnalyticsHandler {
	return &AnalyticsHandler{analyticsService: analyticsService}
}

// GetCounts godoc
// @Summary Fleet-wide aggregate counts
// @Tags analytics
// @Produce json
// @Success 200 {object} service.Counts
// @Failure 500 {object} errors.ErrorResponse
// @Router /analytics [get]
func (h *AnalyticsHandler) GetCounts(c echo.Context) error {
	counts, err := h.analyticsService.GetCounts(c.Request().Context())
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, counts)
}
