package http

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/skumar/cabtrack/internal/pkg/logger"
	"github.com/skumar/cabtrack/internal/utils"
	"github.com/skumar/cabtrack/services/tracking"
)

const defaultRecentLimit = 10

// QueryHandler serves the stored-location query endpoints.
type QueryHandler struct {
	trackingUC tracking.TrackingUC
}

// NewQueryHandler creates a new query handler.
func NewQueryHandler(trackingUC tracking.TrackingUC) *QueryHandler {
	return &QueryHandler{trackingUC: trackingUC}
}

// GetDriverLocations handles GET /api/driver/:driverId/locations. The
// optional limit query parameter caps the result, newest first.
func (h *QueryHandler) GetDriverLocations(c echo.Context) error {
	driverID, err := strconv.ParseInt(c.Param("driverId"), 10, 64)
	if err != nil || driverID <= 0 {
		return utils.BadRequestResponse(c, "driverId must be a positive integer")
	}

	limit := defaultRecentLimit
	if raw := c.QueryParam("limit"); raw != "" {
		limit, err = strconv.Atoi(raw)
		if err != nil {
			return utils.BadRequestResponse(c, "limit must be an integer")
		}
	}

	locations, err := h.trackingUC.GetRecentLocations(c.Request().Context(), driverID, limit)
	if err != nil {
		logger.Error("Failed to query driver locations",
			logger.Int64("driver_id", driverID),
			logger.Err(err))
		return utils.InternalServerErrorResponse(c, "failed to query driver locations")
	}
	return c.JSON(http.StatusOK, locations)
}

// GetLatestLocations handles GET /api/drivers/locations, returning the most
// recent update per driver.
func (h *QueryHandler) GetLatestLocations(c echo.Context) error {
	locations, err := h.trackingUC.GetLatestLocations(c.Request().Context())
	if err != nil {
		logger.Error("Failed to query latest driver locations", logger.Err(err))
		return utils.InternalServerErrorResponse(c, "failed to query latest driver locations")
	}
	return c.JSON(http.StatusOK, locations)
}

// GetLatestLocationsFiltered handles GET /api/drivers/locations/filter with
// optional city and status query parameters.
func (h *QueryHandler) GetLatestLocationsFiltered(c echo.Context) error {
	city := c.QueryParam("city")
	status := c.QueryParam("status")

	locations, err := h.trackingUC.GetLatestLocationsFiltered(c.Request().Context(), city, status)
	if err != nil {
		logger.Error("Failed to query filtered driver locations",
			logger.String("city", city),
			logger.String("status", status),
			logger.Err(err))
		return utils.InternalServerErrorResponse(c, "failed to query filtered driver locations")
	}
	return c.JSON(http.StatusOK, locations)
}
