package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/zonewatch/geofence/internal/pkg/logger"
	"github.com/zonewatch/geofence/internal/pkg/models"
	"github.com/zonewatch/geofence/services/geofence"
)

// PostgresZoneRepo implements the ZoneRepo interface
type PostgresZoneRepo struct {
	db *sqlx.DB
}

// NewZoneRepository creates a new zone repository
func NewZoneRepository(db *sqlx.DB) geofence.ZoneRepo {
	return &PostgresZoneRepo{
		db: db,
	}
}

type zoneRow struct {
	ID    int64  `db:"id"`
	Label string `db:"label"`
	Ring  []byte `db:"ring"`
}

// GetZones returns the zone collection ordered by id. The row order defines
// the zone indices every other component reports, so it must be stable.
// Rows with unparseable ring geometry are skipped rather than failing the
// whole collection.
func (r *PostgresZoneRepo) GetZones(ctx context.Context) ([]models.Zone, error) {
	var rows []zoneRow
	err := r.db.SelectContext(ctx, &rows, `
		SELECT id, label, ring
		FROM zones
		ORDER BY id
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query zones: %w", err)
	}

	zones := make([]models.Zone, 0, len(rows))
	for _, row := range rows {
		ring, err := parseRing(row.Ring)
		if err != nil {
			logger.Warn("Skipping zone with invalid ring geometry",
				logger.Int("zone_id", int(row.ID)),
				logger.String("label", row.Label),
				logger.Err(err))
			continue
		}
		zones = append(zones, models.Zone{
			Label: row.Label,
			Ring:  ring,
		})
	}

	return zones, nil
}

// parseRing decodes the stored ring JSON, a GeoJSON-style array of
// [longitude, latitude] pairs
func parseRing(data []byte) ([]models.Coordinate, error) {
	var pairs [][]float64
	if err := json.Unmarshal(data, &pairs); err != nil {
		return nil, fmt.Errorf("failed to decode ring: %w", err)
	}

	ring := make([]models.Coordinate, 0, len(pairs))
	for i, pair := range pairs {
		if len(pair) != 2 {
			return nil, fmt.Errorf("vertex %d has %d components, want 2", i, len(pair))
		}
		ring = append(ring, models.Coordinate{Lng: pair[0], Lat: pair[1]})
	}

	return ring, nil
}
