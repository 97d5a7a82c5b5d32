package models

import "time"

// TransitionType enumerates the semantic zone membership transitions
type TransitionType string

const (
	TransitionEntered      TransitionType = "entered"
	TransitionExited       TransitionType = "exited"
	TransitionMovedBetween TransitionType = "moved_between"
	TransitionNoChange     TransitionType = "no_change"
)

// ZoneTransition represents one transition decision for a session. FromIndex
// and ToIndex are ZoneIndexNone when the corresponding side is outside every
// zone; labels are informational and empty for ZoneIndexNone.
type ZoneTransition struct {
	SessionID string         `json:"session_id"`
	Type      TransitionType `json:"type"`
	FromIndex int            `json:"from_index"`
	ToIndex   int            `json:"to_index"`
	FromLabel string         `json:"from_label,omitempty"`
	ToLabel   string         `json:"to_label,omitempty"`
	CreatedAt time.Time      `json:"created_at"`
}

// Severity maps a transition to the notification category consumers use
// for toast styling
func (t ZoneTransition) Severity() string {
	switch t.Type {
	case TransitionEntered:
		return "success"
	case TransitionExited:
		return "warning"
	case TransitionMovedBetween:
		return "info"
	default:
		return ""
	}
}
