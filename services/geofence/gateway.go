package geofence

import (
	"context"

	"github.com/zonewatch/geofence/internal/pkg/models"
)

// GeofenceGW defines the interface for publishing geofence events to the
// message bus
type GeofenceGW interface {
	PublishZoneTransition(ctx context.Context, transition models.ZoneTransition) error
	PublishPositionUpdate(ctx context.Context, update models.PositionUpdate) error
}
