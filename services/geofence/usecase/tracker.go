package usecase

import "github.com/zonewatch/geofence/internal/pkg/models"

// ZoneTracker remembers the previous containment result for one session and
// classifies each new result as a semantic transition. Owned by a single
// tracking session; not safe for concurrent use.
type ZoneTracker struct {
	previous int
}

// NewZoneTracker creates a tracker that starts outside every zone
func NewZoneTracker() *ZoneTracker {
	return &ZoneTracker{previous: models.ZoneIndexNone}
}

// Previous returns the containment result of the last Update call
func (t *ZoneTracker) Previous() int {
	return t.previous
}

// Update compares the current containment result with the previous one and
// returns the resulting transition. Staying outside every zone is reported
// as no change, so consumers never see duplicate "outside" notifications.
func (t *ZoneTracker) Update(current int) models.ZoneTransition {
	previous := t.previous
	t.previous = current

	transition := models.ZoneTransition{
		FromIndex: previous,
		ToIndex:   current,
	}

	switch {
	case current == previous:
		transition.Type = models.TransitionNoChange
	case current == models.ZoneIndexNone:
		transition.Type = models.TransitionExited
	case previous == models.ZoneIndexNone:
		transition.Type = models.TransitionEntered
	default:
		transition.Type = models.TransitionMovedBetween
	}

	return transition
}
