package usecase

import (
	"context"

	"github.com/zonewatch/geofence/internal/pkg/logger"
	"github.com/zonewatch/geofence/internal/pkg/models"
)

// PositionSource delivers raw fixes and source errors for one tracking
// client. Implementations are expected to be push-based; the session owns
// the subscription lifecycle.
type PositionSource interface {
	// Current blocks until the next fix arrives or the context expires
	Current(ctx context.Context) (models.RawFix, error)
	// Watch returns channels that stream fixes and source errors until the
	// context is cancelled
	Watch(ctx context.Context) (<-chan models.RawFix, <-chan models.SourceErrorKind, error)
}

// PushSource adapts externally pushed fixes (a WebSocket client reporting
// browser geolocation results) to the PositionSource interface.
type PushSource struct {
	fixes chan models.RawFix
	errs  chan models.SourceErrorKind
}

// NewPushSource creates a push-based position source
func NewPushSource() *PushSource {
	return &PushSource{
		fixes: make(chan models.RawFix, 16),
		errs:  make(chan models.SourceErrorKind, 4),
	}
}

// Push delivers a fix to the subscriber. When the buffer is full the oldest
// pending fix is dropped so the stream stays current.
func (s *PushSource) Push(fix models.RawFix) {
	for {
		select {
		case s.fixes <- fix:
			return
		default:
			select {
			case dropped := <-s.fixes:
				logger.Debug("Dropping stale buffered fix",
					logger.Float64("latitude", dropped.Latitude),
					logger.Float64("longitude", dropped.Longitude))
			default:
			}
		}
	}
}

// Fail delivers a source error to the subscriber. Errors are dropped when
// the buffer is full; the newest state of the source is what matters.
func (s *PushSource) Fail(kind models.SourceErrorKind) {
	select {
	case s.errs <- kind:
	default:
	}
}

// Current blocks until the next fix arrives or the context expires
func (s *PushSource) Current(ctx context.Context) (models.RawFix, error) {
	select {
	case fix := <-s.fixes:
		return fix, nil
	case <-ctx.Done():
		return models.RawFix{}, ctx.Err()
	}
}

// Watch returns the fix and error streams
func (s *PushSource) Watch(ctx context.Context) (<-chan models.RawFix, <-chan models.SourceErrorKind, error) {
	return s.fixes, s.errs, nil
}
