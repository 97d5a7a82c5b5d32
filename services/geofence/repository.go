package geofence

import (
	"context"

	"github.com/zonewatch/geofence/internal/pkg/models"
)

// ZoneRepo defines the interface for zone data access
type ZoneRepo interface {
	// GetZones returns the zone collection in stable order
	GetZones(ctx context.Context) ([]models.Zone, error)
}

// TrackingRepo defines the interface for per-session tracking state storage
type TrackingRepo interface {
	StoreLastPosition(ctx context.Context, update models.PositionUpdate) error
	// GetLastPosition returns nil when no position is stored for the session
	GetLastPosition(ctx context.Context, sessionID string) (*models.PositionUpdate, error)
	GetNearbySessions(ctx context.Context, latitude, longitude, radiusKm float64) ([]models.NearbySession, error)
	PushFixHistory(ctx context.Context, sessionID string, fix models.RawFix) error
	GetFixHistory(ctx context.Context, sessionID string) ([]models.RawFix, error)
	ClearSession(ctx context.Context, sessionID string) error
}
