package models

import "time"

// RawFix represents one raw geolocation sample pushed by a position source
type RawFix struct {
	Latitude       float64   `json:"latitude"`
	Longitude      float64   `json:"longitude"`
	AccuracyMeters float64   `json:"accuracy_meters"`
	Timestamp      time.Time `json:"timestamp"`
}

// FilteredPosition represents the smoothed position estimate derived from
// the recent raw fixes of a session
type FilteredPosition struct {
	Latitude       float64   `json:"latitude"`
	Longitude      float64   `json:"longitude"`
	AccuracyMeters float64   `json:"accuracy_meters"`
	Geohash        string    `json:"geohash,omitempty"`
	Timestamp      time.Time `json:"timestamp"`
}

// AccuracyQuality classifies the uncertainty of a filtered position
type AccuracyQuality string

const (
	QualityUnknown   AccuracyQuality = "unknown"
	QualityExcellent AccuracyQuality = "excellent"
	QualityGood      AccuracyQuality = "good"
	QualityFair      AccuracyQuality = "fair"
	QualityPoor      AccuracyQuality = "poor"
)

// NearbySession locates another session's last position relative to a
// query point
type NearbySession struct {
	SessionID  string  `json:"session_id"`
	Latitude   float64 `json:"latitude"`
	Longitude  float64 `json:"longitude"`
	DistanceKm float64 `json:"distance_km"`
}

// PositionUpdate represents a filtered position event published for consumers
type PositionUpdate struct {
	SessionID string           `json:"session_id"`
	Position  FilteredPosition `json:"position"`
	Quality   AccuracyQuality  `json:"quality"`
	ZoneIndex int              `json:"zone_index"` // -1 when outside every zone
	CreatedAt time.Time        `json:"created_at"`
}
