package usecase

import (
	"math"

	"github.com/zonewatch/geofence/internal/pkg/logger"
	"github.com/zonewatch/geofence/internal/pkg/models"
)

// ContainingZone returns the index of the first zone whose ring contains the
// point, in collection order, or models.ZoneIndexNone when the point lies
// outside every zone. Malformed zones are skipped and evaluation continues
// with the next entry.
//
// Points exactly on a ring edge resolve to whichever side the crossing test
// picks; the answer is a pure function of the inputs, so repeated calls with
// the same point and zones always agree.
func ContainingZone(lat, lng float64, zones []models.Zone) int {
	if !isFinite(lat) || !isFinite(lng) {
		return models.ZoneIndexNone
	}

	for i, zone := range zones {
		if !zone.Valid() {
			logger.Warn("Skipping malformed zone geometry",
				logger.String("label", zone.Label),
				logger.Int("index", i),
				logger.Int("vertices", len(zone.Ring)))
			continue
		}
		if pointInRing(lat, lng, zone.Ring) {
			return i
		}
	}

	return models.ZoneIndexNone
}

// pointInRing implements planar ray casting against a closed ring
func pointInRing(lat, lng float64, ring []models.Coordinate) bool {
	inside := false
	j := len(ring) - 1

	for i := 0; i < len(ring); i++ {
		if ((ring[i].Lat > lat) != (ring[j].Lat > lat)) &&
			(lng < (ring[j].Lng-ring[i].Lng)*(lat-ring[i].Lat)/(ring[j].Lat-ring[i].Lat)+ring[i].Lng) {
			inside = !inside
		}
		j = i
	}

	return inside
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
