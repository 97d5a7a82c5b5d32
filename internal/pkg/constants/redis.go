package constants

// Redis key formats
const (
	KeySessionPosition = "geofence:position:%s"  // Format: geofence:position:{session_id}
	KeySessionHistory  = "geofence:history:%s"   // Format: geofence:history:{session_id}
	KeySessionsGeo     = "geofence:sessions:geo" // Geo set of the latest filtered position per session

	// Rate Limiting
	KeyRateLimit = "rate:limit:%s:%s" // Format: rate:limit:{resource}:{ip}
)

// Redis hash fields
const (
	FieldLatitude  = "lat"
	FieldLongitude = "lng"
	FieldAccuracy  = "accuracy"
	FieldQuality   = "quality"
	FieldGeohash   = "geohash"
	FieldZoneIndex = "zone_index"
	FieldTimestamp = "ts"
)
