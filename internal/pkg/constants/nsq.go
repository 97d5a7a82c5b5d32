package constants

// NSQ topics published by the geofence service
const (
	TopicZoneTransition = "geofence.zone.transition"
	TopicPositionUpdate = "geofence.position.update"
)
