package handler

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/zonewatch/geofence/internal/pkg/constants"
	"github.com/zonewatch/geofence/internal/pkg/logger"
	"github.com/zonewatch/geofence/internal/pkg/models"
	wspkg "github.com/zonewatch/geofence/internal/pkg/websocket"
	"github.com/zonewatch/geofence/services/geofence"
	"github.com/zonewatch/geofence/services/geofence/usecase"
)

// locationUpdatePayload is the wire format browsers push for one raw fix
type locationUpdatePayload struct {
	Latitude       float64 `json:"latitude"`
	Longitude      float64 `json:"longitude"`
	AccuracyMeters float64 `json:"accuracy_meters"`
	TimestampMs    int64   `json:"timestamp_ms"`
}

// locationErrorPayload reports a geolocation failure from the browser
type locationErrorPayload struct {
	Kind string `json:"kind"`
}

// transitionEvent is a zone transition decorated with its notification
// severity for toast styling on the client
type transitionEvent struct {
	models.ZoneTransition
	Severity string `json:"severity"`
}

// WebSocketHandler bridges connected tracking clients and the geofence
// engine. It is the engine's notifier: filtered positions, transitions and
// state changes flow back to the owning session's connection.
type WebSocketHandler struct {
	geofenceUC geofence.GeofenceUC
	manager    *wspkg.Manager
}

// NewWebSocketHandler creates a new WebSocket handler and registers it as
// the engine's notifier
func NewWebSocketHandler(geofenceUC geofence.GeofenceUC) *WebSocketHandler {
	h := &WebSocketHandler{
		geofenceUC: geofenceUC,
		manager:    wspkg.NewManager(),
	}
	geofenceUC.RegisterNotifier(h)
	return h
}

// HandleWebSocket upgrades the connection for an existing session and runs
// the message loop until the client disconnects
func (h *WebSocketHandler) HandleWebSocket(c echo.Context) error {
	sessionID := c.Param("session_id")

	if _, err := h.geofenceUC.GetSnapshot(c.Request().Context(), sessionID); err != nil {
		if errors.Is(err, usecase.ErrSessionNotFound) {
			return echo.NewHTTPError(404, "session not found")
		}
		return err
	}

	return h.manager.HandleConnection(c, sessionID, h.handleClient)
}

func (h *WebSocketHandler) handleClient(client *models.WebSocketClient) error {
	for {
		_, raw, err := client.Conn.ReadMessage()
		if err != nil {
			// Client disconnected; tracking continues until the session is
			// stopped or ended explicitly
			return nil
		}

		var msg models.WSMessage
		if err := json.Unmarshal(raw, &msg); err != nil {
			h.manager.SendError(client.SessionID, constants.ErrorInvalidFormat, "invalid message format")
			continue
		}

		h.dispatch(client, msg)
	}
}

func (h *WebSocketHandler) dispatch(client *models.WebSocketClient, msg models.WSMessage) {
	ctx := context.Background()
	sessionID := client.SessionID

	switch msg.Event {
	case constants.EventStartTracking:
		if err := h.geofenceUC.StartTracking(ctx, sessionID); err != nil {
			h.sendDispatchError(sessionID, err)
		}

	case constants.EventStopTracking:
		if err := h.geofenceUC.StopTracking(ctx, sessionID); err != nil {
			h.sendDispatchError(sessionID, err)
		}

	case constants.EventLocationUpdate:
		var payload locationUpdatePayload
		if err := json.Unmarshal(msg.Data, &payload); err != nil {
			h.manager.SendError(sessionID, constants.ErrorInvalidFormat, "invalid location payload")
			return
		}
		fix := models.RawFix{
			Latitude:       payload.Latitude,
			Longitude:      payload.Longitude,
			AccuracyMeters: payload.AccuracyMeters,
			Timestamp:      time.UnixMilli(payload.TimestampMs),
		}
		if err := h.geofenceUC.PushFix(ctx, sessionID, fix); err != nil {
			if errors.Is(err, usecase.ErrSessionNotFound) {
				h.manager.SendError(sessionID, constants.ErrorSessionNotFound, "session not found")
				return
			}
			h.manager.SendError(sessionID, constants.ErrorInvalidLocation, err.Error())
		}

	case constants.EventLocationError:
		var payload locationErrorPayload
		if err := json.Unmarshal(msg.Data, &payload); err != nil {
			h.manager.SendError(sessionID, constants.ErrorInvalidFormat, "invalid error payload")
			return
		}
		if err := h.geofenceUC.PushSourceError(ctx, sessionID, models.SourceErrorKind(payload.Kind)); err != nil {
			h.sendDispatchError(sessionID, err)
		}

	case constants.EventPing:
		if err := h.manager.SendEvent(sessionID, constants.EventPong, nil); err != nil {
			logger.Warn("Failed to send pong", logger.String("session_id", sessionID), logger.Err(err))
		}

	default:
		h.manager.SendError(sessionID, constants.ErrorInvalidFormat, "unknown event: "+msg.Event)
	}
}

func (h *WebSocketHandler) sendDispatchError(sessionID string, err error) {
	if errors.Is(err, usecase.ErrSessionNotFound) {
		h.manager.SendError(sessionID, constants.ErrorSessionNotFound, "session not found")
		return
	}
	h.manager.SendError(sessionID, constants.ErrorInternalError, err.Error())
}

// NotifyPosition pushes a filtered position update to the session's client
func (h *WebSocketHandler) NotifyPosition(sessionID string, update models.PositionUpdate) {
	if err := h.manager.SendEvent(sessionID, constants.EventPositionUpdate, update); err != nil {
		logger.Warn("Failed to push position update",
			logger.String("session_id", sessionID),
			logger.Err(err))
	}
}

// NotifyTransition pushes a zone transition to the session's client
func (h *WebSocketHandler) NotifyTransition(sessionID string, transition models.ZoneTransition) {
	event := transitionEvent{
		ZoneTransition: transition,
		Severity:       transition.Severity(),
	}
	if err := h.manager.SendEvent(sessionID, constants.EventZoneTransition, event); err != nil {
		logger.Warn("Failed to push zone transition",
			logger.String("session_id", sessionID),
			logger.Err(err))
	}
}

// NotifyState pushes a tracking state snapshot to the session's client
func (h *WebSocketHandler) NotifyState(sessionID string, snapshot models.TrackingSnapshot) {
	if err := h.manager.SendEvent(sessionID, constants.EventTrackingState, snapshot); err != nil {
		logger.Warn("Failed to push tracking state",
			logger.String("session_id", sessionID),
			logger.Err(err))
	}
}
