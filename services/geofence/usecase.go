package geofence

import (
	"context"

	"github.com/zonewatch/geofence/internal/pkg/models"
)

// GeofenceUC defines the interface for geofence business logic
type GeofenceUC interface {
	// Zone collection operations
	Zones(ctx context.Context) ([]models.Zone, error)

	// Session lifecycle operations
	CreateSession(ctx context.Context) (*models.TrackingSnapshot, error)
	EndSession(ctx context.Context, sessionID string) error
	StartTracking(ctx context.Context, sessionID string) error
	StopTracking(ctx context.Context, sessionID string) error

	// Position source input
	PushFix(ctx context.Context, sessionID string, fix models.RawFix) error
	PushSourceError(ctx context.Context, sessionID string, kind models.SourceErrorKind) error

	// Read operations
	GetSnapshot(ctx context.Context, sessionID string) (*models.TrackingSnapshot, error)
	GetHistory(ctx context.Context, sessionID string) ([]models.RawFix, error)

	// Operational queries against the position cache; these outlive the
	// in-memory session
	LastKnownPosition(ctx context.Context, sessionID string) (*models.PositionUpdate, error)
	NearbySessions(ctx context.Context, latitude, longitude, radiusKm float64) ([]models.NearbySession, error)

	// RegisterNotifier wires the transport that pushes engine output back to
	// connected clients
	RegisterNotifier(n Notifier)

	// Shutdown stops every active session
	Shutdown(ctx context.Context) error
}

// Notifier pushes engine output to a connected client
type Notifier interface {
	NotifyPosition(sessionID string, update models.PositionUpdate)
	NotifyTransition(sessionID string, transition models.ZoneTransition)
	NotifyState(sessionID string, snapshot models.TrackingSnapshot)
}
