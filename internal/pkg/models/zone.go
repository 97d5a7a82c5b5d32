package models

// ZoneIndexNone marks a point that lies outside every loaded zone
const ZoneIndexNone = -1

// Coordinate is a single polygon vertex in GeoJSON order (longitude first)
type Coordinate struct {
	Lng float64 `json:"lng"`
	Lat float64 `json:"lat"`
}

// Zone represents a named polygon region of interest. Ring is a closed ring:
// the first and last vertex are equal, giving at least 4 vertices for a
// valid triangle.
type Zone struct {
	Label string       `json:"label"`
	Ring  []Coordinate `json:"ring"`
}

// Valid reports whether the ring describes a usable closed polygon
func (z Zone) Valid() bool {
	if len(z.Ring) < 4 {
		return false
	}
	first, last := z.Ring[0], z.Ring[len(z.Ring)-1]
	return first.Lng == last.Lng && first.Lat == last.Lat
}
