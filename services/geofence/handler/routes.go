package handler

import (
	"time"

	"github.com/labstack/echo/v4"

	"github.com/zonewatch/geofence/internal/pkg/database"
	"github.com/zonewatch/geofence/internal/pkg/health"
	"github.com/zonewatch/geofence/internal/pkg/middleware"
	"github.com/zonewatch/geofence/services/geofence"
	httpHandler "github.com/zonewatch/geofence/services/geofence/handler/http"
)

// Handler combines the HTTP and WebSocket handlers for the geofence service
type Handler struct {
	geofenceHTTP *httpHandler.GeofenceHandler
	geofenceWS   *WebSocketHandler
	redisClient  *database.RedisClient
}

// NewHandler creates the combined handler for the geofence service
func NewHandler(geofenceUC geofence.GeofenceUC, redisClient *database.RedisClient) *Handler {
	return &Handler{
		geofenceHTTP: httpHandler.NewGeofenceHandler(geofenceUC),
		geofenceWS:   NewWebSocketHandler(geofenceUC),
		redisClient:  redisClient,
	}
}

// RegisterRoutes registers all HTTP and WebSocket routes
func (h *Handler) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", health.NewPingHandler("geofence-service"))

	api := e.Group("/api")
	if h.redisClient != nil {
		api.Use(middleware.RateLimiterMiddleware(middleware.RateLimiterConfig{
			RedisClient: h.redisClient.GetClient(),
			Key:         "rate:limit",
			Limit:       120,
			Period:      time.Minute,
		}))
	}

	api.GET("/zones", h.geofenceHTTP.GetZones)
	api.POST("/sessions", h.geofenceHTTP.CreateSession)
	api.GET("/sessions/nearby", h.geofenceHTTP.GetNearbySessions)
	api.GET("/sessions/:id", h.geofenceHTTP.GetSession)
	api.GET("/sessions/:id/position", h.geofenceHTTP.GetLastPosition)
	api.GET("/sessions/:id/history", h.geofenceHTTP.GetHistory)
	api.DELETE("/sessions/:id", h.geofenceHTTP.EndSession)

	e.GET("/ws/:session_id", h.geofenceWS.HandleWebSocket)
}
