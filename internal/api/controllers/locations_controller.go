package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"peakparty/internal/services"
	"peakparty/pkg/utils"
)

type LocationsController struct {
	locationService services.LocationServiceInterface
	routeService    services.RouteServiceInterface
}

func NewLocationsController(
	locationService services.LocationServiceInterface,
	routeService services.RouteServiceInterface,
) *LocationsController {
	return &LocationsController{
		locationService: locationService,
		routeService:    routeService,
	}
}

// GetAllLocations godoc
// @Summary List touring locations
// @Description Fetch every location with its difficulty category and color
// @Tags Locations
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Router /locations [get]
func (l *LocationsController) GetAllLocations(c *gin.Context) {
	locations, err := l.locationService.GetAllLocations(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, locations, "Locations fetched successfully")
}

// GetRouteOverlay godoc
// @Summary Route overlay for a location
// @Description GPX track as line geometry with fit bounds; empty when the location has no usable route file
// @Tags Locations
// @Produce json
// @Param id path int true "Location ID"
// @Success 200 {object} utils.APIResponse
// @Router /locations/{id}/route [get]
func (l *LocationsController) GetRouteOverlay(c *gin.Context) {
	locationID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid location ID")
		return
	}

	overlay, err := l.routeService.GetOverlay(c.Request.Context(), locationID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, overlay, "Route overlay fetched successfully")
}
