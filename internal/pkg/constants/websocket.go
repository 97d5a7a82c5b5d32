package constants

// WebSocket event types
const (
	// Common events
	EventError = "error"
	EventPing  = "ping"
	EventPong  = "pong"

	// Client -> server events
	EventStartTracking  = "start_tracking"
	EventStopTracking   = "stop_tracking"
	EventLocationUpdate = "location_update"
	EventLocationError  = "location_error"

	// Server -> client events
	EventPositionUpdate = "position_update"
	EventZoneTransition = "zone_transition"
	EventTrackingState  = "tracking_state"
)

// WebSocket error codes
const (
	ErrorInvalidFormat   = "invalid_format"
	ErrorInvalidLocation = "invalid_location"
	ErrorSessionNotFound = "session_not_found"
	ErrorInternalError   = "internal_error"
)
