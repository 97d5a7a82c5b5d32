package http

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/zonewatch/geofence/internal/pkg/models"
	"github.com/zonewatch/geofence/internal/utils"
	"github.com/zonewatch/geofence/services/geofence"
	"github.com/zonewatch/geofence/services/geofence/usecase"
)

const defaultNearbyRadiusKm = 5.0

// GeofenceHandler handles HTTP requests for the geofence service
type GeofenceHandler struct {
	geofenceUC geofence.GeofenceUC
}

// NewGeofenceHandler creates a new geofence HTTP handler
func NewGeofenceHandler(geofenceUC geofence.GeofenceUC) *GeofenceHandler {
	return &GeofenceHandler{
		geofenceUC: geofenceUC,
	}
}

// zoneResponse pairs a zone with the index containment results refer to
type zoneResponse struct {
	Index int                 `json:"index"`
	Label string              `json:"label"`
	Ring  []models.Coordinate `json:"ring"`
}

// GetZones returns the zone collection in evaluation order
func (h *GeofenceHandler) GetZones(c echo.Context) error {
	zones, err := h.geofenceUC.Zones(c.Request().Context())
	if err != nil {
		return utils.InternalServerErrorResponse(c, "Failed to load zones")
	}

	resp := make([]zoneResponse, 0, len(zones))
	for i, zone := range zones {
		resp = append(resp, zoneResponse{Index: i, Label: zone.Label, Ring: zone.Ring})
	}

	return utils.SuccessResponse(c, http.StatusOK, "Zones retrieved successfully", resp)
}

// CreateSession creates a new tracking session
func (h *GeofenceHandler) CreateSession(c echo.Context) error {
	snapshot, err := h.geofenceUC.CreateSession(c.Request().Context())
	if err != nil {
		return utils.InternalServerErrorResponse(c, "Failed to create session")
	}

	return utils.SuccessResponse(c, http.StatusCreated, "Session created successfully", snapshot)
}

// GetSession returns the current state of a tracking session
func (h *GeofenceHandler) GetSession(c echo.Context) error {
	sessionID := c.Param("id")

	snapshot, err := h.geofenceUC.GetSnapshot(c.Request().Context(), sessionID)
	if err != nil {
		if errors.Is(err, usecase.ErrSessionNotFound) {
			return utils.NotFoundResponse(c, "Session not found")
		}
		return utils.InternalServerErrorResponse(c, "Failed to get session")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Session retrieved successfully", snapshot)
}

// GetHistory returns the recent raw fixes of a tracking session, newest first
func (h *GeofenceHandler) GetHistory(c echo.Context) error {
	sessionID := c.Param("id")

	history, err := h.geofenceUC.GetHistory(c.Request().Context(), sessionID)
	if err != nil {
		if errors.Is(err, usecase.ErrSessionNotFound) {
			return utils.NotFoundResponse(c, "Session not found")
		}
		return utils.InternalServerErrorResponse(c, "Failed to get session history")
	}

	return utils.SuccessResponse(c, http.StatusOK, "History retrieved successfully", history)
}

// GetLastPosition returns the last stored filtered position of a session.
// The position cache outlives the in-memory session, so this also serves
// sessions lost to a restart, until the cache TTL expires.
func (h *GeofenceHandler) GetLastPosition(c echo.Context) error {
	sessionID := c.Param("id")

	update, err := h.geofenceUC.LastKnownPosition(c.Request().Context(), sessionID)
	if err != nil {
		return utils.InternalServerErrorResponse(c, "Failed to get last position")
	}
	if update == nil {
		return utils.NotFoundResponse(c, "No position recorded for session")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Position retrieved successfully", update)
}

// GetNearbySessions returns sessions last seen within a radius of a query
// point. The origin is a latitude/longitude pair or a geohash.
func (h *GeofenceHandler) GetNearbySessions(c echo.Context) error {
	var latitude, longitude float64
	if hash := c.QueryParam("geohash"); hash != "" {
		latitude, longitude = utils.DecodeGeohash(hash)
	} else {
		var err error
		latitude, err = strconv.ParseFloat(c.QueryParam("latitude"), 64)
		if err != nil {
			return utils.BadRequestResponse(c, "Invalid latitude")
		}
		longitude, err = strconv.ParseFloat(c.QueryParam("longitude"), 64)
		if err != nil {
			return utils.BadRequestResponse(c, "Invalid longitude")
		}
	}

	radiusKm := defaultNearbyRadiusKm
	if raw := c.QueryParam("radius_km"); raw != "" {
		var err error
		radiusKm, err = strconv.ParseFloat(raw, 64)
		if err != nil {
			return utils.BadRequestResponse(c, "Invalid radius_km")
		}
	}

	sessions, err := h.geofenceUC.NearbySessions(c.Request().Context(), latitude, longitude, radiusKm)
	if err != nil {
		if errors.Is(err, usecase.ErrInvalidQuery) {
			return utils.BadRequestResponse(c, err.Error())
		}
		return utils.InternalServerErrorResponse(c, "Failed to query nearby sessions")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Nearby sessions retrieved successfully", sessions)
}

// EndSession stops and removes a tracking session
func (h *GeofenceHandler) EndSession(c echo.Context) error {
	sessionID := c.Param("id")

	if err := h.geofenceUC.EndSession(c.Request().Context(), sessionID); err != nil {
		if errors.Is(err, usecase.ErrSessionNotFound) {
			return utils.NotFoundResponse(c, "Session not found")
		}
		return utils.InternalServerErrorResponse(c, "Failed to end session")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Session ended successfully", nil)
}
