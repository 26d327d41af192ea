package http

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/skumar/cabtrack/internal/pkg/models"
	"github.com/skumar/cabtrack/internal/utils"
	"github.com/skumar/cabtrack/services/driver"
)

// LocationHandler handles the location ingest endpoint.
type LocationHandler struct {
	locationUC driver.LocationUC
}

// NewLocationHandler creates a new location handler.
func NewLocationHandler(locationUC driver.LocationUC) *LocationHandler {
	return &LocationHandler{locationUC: locationUC}
}

// UpdateLocation handles POST /api/location/update. The handler answers 200
// only after the bus acknowledged the publish, so a driver is never left
// uncertain about whether the update was accepted.
func (h *LocationHandler) UpdateLocation(c echo.Context) error {
	var update models.LocationUpdate
	if err := c.Bind(&update); err != nil {
		return utils.BadRequestResponse(c, "invalid request body")
	}

	if err := h.locationUC.SubmitLocationUpdate(c.Request().Context(), &update); err != nil {
		if errors.Is(err, driver.ErrInvalidLocation) {
			return utils.BadRequestResponse(c, err.Error())
		}
		return utils.BadGatewayResponse(c, "failed to publish location update")
	}

	return c.String(http.StatusOK, "Location update accepted")
}
