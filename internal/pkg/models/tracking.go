package models

import "time"

// SourceErrorKind enumerates the error kinds a position source can report
type SourceErrorKind string

const (
	SourcePermissionDenied    SourceErrorKind = "permission_denied"
	SourcePositionUnavailable SourceErrorKind = "position_unavailable"
	SourceTimeout             SourceErrorKind = "timeout"
)

// PermissionStatus tracks the geolocation permission state of a client
type PermissionStatus string

const (
	PermissionUnknown PermissionStatus = "unknown"
	PermissionGranted PermissionStatus = "granted"
	PermissionDenied  PermissionStatus = "denied"
)

// TrackingSnapshot is the externally visible state of one tracking session
type TrackingSnapshot struct {
	SessionID      string            `json:"session_id"`
	Tracking       bool              `json:"tracking"`
	Loading        bool              `json:"loading"`
	Position       *FilteredPosition `json:"position,omitempty"`
	Quality        AccuracyQuality   `json:"quality"`
	ZoneIndex      int               `json:"zone_index"`
	ZoneLabel      string            `json:"zone_label,omitempty"`
	LastTransition *ZoneTransition   `json:"last_transition,omitempty"`
	Permission     PermissionStatus  `json:"permission"`
	LastError      string            `json:"last_error,omitempty"`
	ZonesError     string            `json:"zones_error,omitempty"`
	UpdatedAt      time.Time         `json:"updated_at"`
}
