package gateway

import (
	"context"
	"fmt"
	"time"

	"github.com/zonewatch/geofence/internal/pkg/constants"
	"github.com/zonewatch/geofence/internal/pkg/logger"
	"github.com/zonewatch/geofence/internal/pkg/models"
	"github.com/zonewatch/geofence/internal/pkg/retry"
	"github.com/zonewatch/geofence/services/geofence"
)

// Publisher publishes a message to a topic on the message bus
type Publisher interface {
	Publish(topic string, message interface{}) error
}

type geofenceGW struct {
	producer Publisher
	retrier  *retry.Retrier
}

// NewGeofenceGW creates a new geofence gateway
func NewGeofenceGW(producer Publisher, appLogger *logger.AppLogger) geofence.GeofenceGW {
	retrier := retry.New(retry.Config{
		MaxRetries: 3,
		BaseDelay:  50 * time.Millisecond,
		MaxDelay:   2 * time.Second,
		Multiplier: 2.0,
		Jitter:     true,
		RetryableFunc: func(err error) bool {
			return true
		},
	}, appLogger)

	return &geofenceGW{
		producer: producer,
		retrier:  retrier,
	}
}

// PublishZoneTransition publishes a zone transition event
func (g *geofenceGW) PublishZoneTransition(ctx context.Context, transition models.ZoneTransition) error {
	err := g.retrier.Execute(ctx, func(ctx context.Context) error {
		return g.producer.Publish(constants.TopicZoneTransition, transition)
	})
	if err != nil {
		return fmt.Errorf("failed to publish zone transition: %w", err)
	}

	logger.Debug("Published zone transition",
		logger.String("session_id", transition.SessionID),
		logger.String("type", string(transition.Type)))
	return nil
}

// PublishPositionUpdate publishes a filtered position update event
func (g *geofenceGW) PublishPositionUpdate(ctx context.Context, update models.PositionUpdate) error {
	err := g.retrier.Execute(ctx, func(ctx context.Context) error {
		return g.producer.Publish(constants.TopicPositionUpdate, update)
	})
	if err != nil {
		return fmt.Errorf("failed to publish position update: %w", err)
	}

	return nil
}
