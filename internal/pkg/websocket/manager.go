package websocket

import (
	"encoding/json"
	"net/http"
	"sync"

	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"
	"github.com/zonewatch/geofence/internal/pkg/constants"
	"github.com/zonewatch/geofence/internal/pkg/logger"
	"github.com/zonewatch/geofence/internal/pkg/models"
)

// Manager manages WebSocket connections and client state
type Manager struct {
	sync.RWMutex
	clients  map[string]*models.WebSocketClient
	upgrader websocket.Upgrader
}

// NewManager creates a new WebSocket manager
func NewManager() *Manager {
	return &Manager{
		clients: make(map[string]*models.WebSocketClient),
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool { return true },
		},
	}
}

// HandleConnection upgrades an HTTP request and runs the client loop.
// A second connection for the same session replaces the first.
func (m *Manager) HandleConnection(c echo.Context, sessionID string, handleClient func(*models.WebSocketClient) error) error {
	conn, err := m.upgrader.Upgrade(c.Response(), c.Request(), nil)
	if err != nil {
		return err
	}

	client := &models.WebSocketClient{
		SessionID: sessionID,
		Conn:      conn,
	}

	m.addClient(client)
	defer m.removeClient(client)

	logger.Info("WebSocket client connected", logger.String("session_id", sessionID))
	return handleClient(client)
}

// GetClient returns the connected client for a session, if any
func (m *Manager) GetClient(sessionID string) (*models.WebSocketClient, bool) {
	m.RLock()
	defer m.RUnlock()
	client, ok := m.clients[sessionID]
	return client, ok
}

// SendEvent sends an event with a JSON payload to a connected session.
// Sending to a disconnected session is not an error; the event is dropped.
func (m *Manager) SendEvent(sessionID string, event string, data interface{}) error {
	client, ok := m.GetClient(sessionID)
	if !ok {
		return nil
	}

	payload, err := json.Marshal(data)
	if err != nil {
		return err
	}

	return client.WriteJSON(models.WSMessage{Event: event, Data: payload})
}

// SendError sends a structured error event to a connected session
func (m *Manager) SendError(sessionID string, code string, message string) {
	if err := m.SendEvent(sessionID, constants.EventError, models.WSErrorMessage{
		Code:    code,
		Message: message,
	}); err != nil {
		logger.Warn("Failed to send WebSocket error event",
			logger.String("session_id", sessionID),
			logger.Err(err))
	}
}

func (m *Manager) addClient(client *models.WebSocketClient) {
	m.Lock()
	defer m.Unlock()

	if existing, ok := m.clients[client.SessionID]; ok {
		existing.Conn.Close()
	}
	m.clients[client.SessionID] = client
}

func (m *Manager) removeClient(client *models.WebSocketClient) {
	m.Lock()
	defer m.Unlock()

	// Only remove if this connection is still the registered one
	if current, ok := m.clients[client.SessionID]; ok && current == client {
		delete(m.clients, client.SessionID)
	}
	client.Conn.Close()
	logger.Info("WebSocket client disconnected", logger.String("session_id", client.SessionID))
}
