package usecase

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/zonewatch/geofence/internal/pkg/models"
)

func squareZone(label string, minLat, minLng, maxLat, maxLng float64) models.Zone {
	return models.Zone{
		Label: label,
		Ring: []models.Coordinate{
			{Lng: minLng, Lat: minLat},
			{Lng: maxLng, Lat: minLat},
			{Lng: maxLng, Lat: maxLat},
			{Lng: minLng, Lat: maxLat},
			{Lng: minLng, Lat: minLat},
		},
	}
}

func TestContainingZone(t *testing.T) {
	zones := []models.Zone{
		squareZone("alpha", 0, 0, 10, 10),
		squareZone("beta", 20, 20, 30, 30),
	}

	tests := []struct {
		name     string
		lat, lng float64
		expected int
	}{
		{"inside first zone", 5, 5, 0},
		{"inside second zone", 25, 25, 1},
		{"outside every zone", 15, 15, models.ZoneIndexNone},
		{"far outside", -40, 160, models.ZoneIndexNone},
		{"interior near edge", 9.999, 9.999, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ContainingZone(tt.lat, tt.lng, zones))
		})
	}
}

func TestContainingZone_FirstMatchWinsOnOverlap(t *testing.T) {
	zones := []models.Zone{
		squareZone("outer", 0, 0, 10, 10),
		squareZone("inner", 2, 2, 8, 8),
	}

	// Point sits inside both rings; collection order decides
	assert.Equal(t, 0, ContainingZone(5, 5, zones))
}

func TestContainingZone_SkipsMalformedZones(t *testing.T) {
	zones := []models.Zone{
		{Label: "degenerate", Ring: []models.Coordinate{{Lng: 0, Lat: 0}, {Lng: 1, Lat: 1}}},
		{Label: "unclosed", Ring: []models.Coordinate{
			{Lng: 0, Lat: 0}, {Lng: 10, Lat: 0}, {Lng: 10, Lat: 10}, {Lng: 0, Lat: 10},
		}},
		squareZone("valid", 0, 0, 10, 10),
	}

	assert.Equal(t, 2, ContainingZone(5, 5, zones))
}

func TestContainingZone_EmptyCollection(t *testing.T) {
	assert.Equal(t, models.ZoneIndexNone, ContainingZone(5, 5, nil))
}

func TestContainingZone_NonFiniteCoordinates(t *testing.T) {
	zones := []models.Zone{squareZone("alpha", 0, 0, 10, 10)}

	assert.Equal(t, models.ZoneIndexNone, ContainingZone(math.NaN(), 5, zones))
	assert.Equal(t, models.ZoneIndexNone, ContainingZone(5, math.Inf(1), zones))
}

func TestContainingZone_Deterministic(t *testing.T) {
	zones := []models.Zone{squareZone("alpha", 0, 0, 10, 10)}

	// Edge and vertex points resolve consistently across repeated calls
	points := []struct{ lat, lng float64 }{
		{0, 5}, {10, 5}, {5, 0}, {5, 10}, {0, 0}, {10, 10},
	}

	for _, p := range points {
		first := ContainingZone(p.lat, p.lng, zones)
		for i := 0; i < 10; i++ {
			assert.Equal(t, first, ContainingZone(p.lat, p.lng, zones))
		}
	}
}

func TestContainingZone_ConcaveRing(t *testing.T) {
	// L-shaped ring: the notch in the upper right is outside
	zone := models.Zone{
		Label: "lshape",
		Ring: []models.Coordinate{
			{Lng: 0, Lat: 0},
			{Lng: 10, Lat: 0},
			{Lng: 10, Lat: 5},
			{Lng: 5, Lat: 5},
			{Lng: 5, Lat: 10},
			{Lng: 0, Lat: 10},
			{Lng: 0, Lat: 0},
		},
	}
	zones := []models.Zone{zone}

	assert.Equal(t, 0, ContainingZone(2, 2, zones))
	assert.Equal(t, 0, ContainingZone(8, 2, zones))
	assert.Equal(t, 0, ContainingZone(2, 8, zones))
	assert.Equal(t, models.ZoneIndexNone, ContainingZone(8, 8, zones))
}
