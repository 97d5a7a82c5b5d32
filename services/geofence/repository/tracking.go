package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/zonewatch/geofence/internal/pkg/constants"
	"github.com/zonewatch/geofence/internal/pkg/database"
	"github.com/zonewatch/geofence/internal/pkg/logger"
	"github.com/zonewatch/geofence/internal/pkg/models"
	"github.com/zonewatch/geofence/services/geofence"
)

const (
	defaultSessionTTL  = 24 * time.Hour
	defaultHistorySize = 20
)

type trackingRepo struct {
	redisClient *database.RedisClient
	sessionTTL  time.Duration
	historySize int64
}

// NewTrackingRepository creates a new tracking state repository
func NewTrackingRepository(cfg models.GeofenceConfig, redisClient *database.RedisClient) geofence.TrackingRepo {
	r := &trackingRepo{
		redisClient: redisClient,
		sessionTTL:  time.Duration(cfg.SessionTTLMinutes) * time.Minute,
		historySize: int64(cfg.HistorySize),
	}
	if r.sessionTTL <= 0 {
		r.sessionTTL = defaultSessionTTL
	}
	if r.historySize <= 0 {
		r.historySize = defaultHistorySize
	}
	return r
}

// StoreLastPosition stores the latest filtered position of a session in its
// position hash and keeps the shared geo set current
func (r *trackingRepo) StoreLastPosition(ctx context.Context, update models.PositionUpdate) error {
	positionKey := fmt.Sprintf(constants.KeySessionPosition, update.SessionID)
	positionData := map[string]interface{}{
		constants.FieldLatitude:  strconv.FormatFloat(update.Position.Latitude, 'f', -1, 64),
		constants.FieldLongitude: strconv.FormatFloat(update.Position.Longitude, 'f', -1, 64),
		constants.FieldAccuracy:  strconv.FormatFloat(update.Position.AccuracyMeters, 'f', -1, 64),
		constants.FieldQuality:   string(update.Quality),
		constants.FieldGeohash:   update.Position.Geohash,
		constants.FieldZoneIndex: strconv.Itoa(update.ZoneIndex),
		constants.FieldTimestamp: strconv.FormatInt(update.CreatedAt.Unix(), 10),
	}

	if err := r.redisClient.HMSet(ctx, positionKey, positionData); err != nil {
		return fmt.Errorf("failed to store position: %w", err)
	}
	if err := r.redisClient.Expire(ctx, positionKey, r.sessionTTL); err != nil {
		return fmt.Errorf("failed to set position TTL: %w", err)
	}

	if err := r.redisClient.GeoAdd(ctx, constants.KeySessionsGeo,
		update.Position.Longitude, update.Position.Latitude, update.SessionID); err != nil {
		return fmt.Errorf("failed to update session geo index: %w", err)
	}

	return nil
}

// GetLastPosition gets the last stored filtered position for a session.
// A session with no stored position yields nil without an error.
func (r *trackingRepo) GetLastPosition(ctx context.Context, sessionID string) (*models.PositionUpdate, error) {
	positionKey := fmt.Sprintf(constants.KeySessionPosition, sessionID)

	fields := []string{
		constants.FieldLatitude,
		constants.FieldLongitude,
		constants.FieldAccuracy,
		constants.FieldQuality,
		constants.FieldGeohash,
		constants.FieldZoneIndex,
		constants.FieldTimestamp,
	}

	values, err := r.redisClient.HMGet(ctx, positionKey, fields...)
	if err != nil {
		return nil, fmt.Errorf("failed to get position data: %w", err)
	}

	hasValue := false
	for _, v := range values {
		if v != "" {
			hasValue = true
			break
		}
	}
	if !hasValue || len(values) != len(fields) {
		return nil, nil
	}

	lat, err := strconv.ParseFloat(values[0], 64)
	if err != nil {
		return nil, fmt.Errorf("invalid latitude: %w", err)
	}
	lng, err := strconv.ParseFloat(values[1], 64)
	if err != nil {
		return nil, fmt.Errorf("invalid longitude: %w", err)
	}
	accuracy, err := strconv.ParseFloat(values[2], 64)
	if err != nil {
		return nil, fmt.Errorf("invalid accuracy: %w", err)
	}
	zoneIndex, err := strconv.Atoi(values[5])
	if err != nil {
		return nil, fmt.Errorf("invalid zone index: %w", err)
	}
	ts, err := strconv.ParseInt(values[6], 10, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid timestamp: %w", err)
	}

	return &models.PositionUpdate{
		SessionID: sessionID,
		Position: models.FilteredPosition{
			Latitude:       lat,
			Longitude:      lng,
			AccuracyMeters: accuracy,
			Geohash:        values[4],
			Timestamp:      time.Unix(ts, 0),
		},
		Quality:   models.AccuracyQuality(values[3]),
		ZoneIndex: zoneIndex,
		CreatedAt: time.Unix(ts, 0),
	}, nil
}

// GetNearbySessions returns the sessions whose last filtered position lies
// within radiusKm of the query point
func (r *trackingRepo) GetNearbySessions(ctx context.Context, latitude, longitude, radiusKm float64) ([]models.NearbySession, error) {
	locations, err := r.redisClient.GeoRadius(ctx, constants.KeySessionsGeo, longitude, latitude, radiusKm, "km")
	if err != nil {
		return nil, fmt.Errorf("failed to query session geo index: %w", err)
	}

	sessions := make([]models.NearbySession, 0, len(locations))
	for _, loc := range locations {
		sessions = append(sessions, models.NearbySession{
			SessionID: loc.Name,
			Latitude:  loc.Latitude,
			Longitude: loc.Longitude,
		})
	}
	return sessions, nil
}

// PushFixHistory prepends a raw fix to the session's bounded history list
func (r *trackingRepo) PushFixHistory(ctx context.Context, sessionID string, fix models.RawFix) error {
	historyKey := fmt.Sprintf(constants.KeySessionHistory, sessionID)

	data, err := json.Marshal(fix)
	if err != nil {
		return fmt.Errorf("failed to marshal fix: %w", err)
	}

	if err := r.redisClient.LPush(ctx, historyKey, data); err != nil {
		return fmt.Errorf("failed to push fix history: %w", err)
	}
	if err := r.redisClient.LTrim(ctx, historyKey, 0, r.historySize-1); err != nil {
		return fmt.Errorf("failed to trim fix history: %w", err)
	}
	if err := r.redisClient.Expire(ctx, historyKey, r.sessionTTL); err != nil {
		return fmt.Errorf("failed to set history TTL: %w", err)
	}

	return nil
}

// GetFixHistory returns the session's recent raw fixes, newest first.
// Entries that fail to decode are skipped.
func (r *trackingRepo) GetFixHistory(ctx context.Context, sessionID string) ([]models.RawFix, error) {
	historyKey := fmt.Sprintf(constants.KeySessionHistory, sessionID)

	entries, err := r.redisClient.LRange(ctx, historyKey, 0, r.historySize-1)
	if err != nil {
		return nil, fmt.Errorf("failed to get fix history: %w", err)
	}

	fixes := make([]models.RawFix, 0, len(entries))
	for _, entry := range entries {
		var fix models.RawFix
		if err := json.Unmarshal([]byte(entry), &fix); err != nil {
			logger.Warn("Skipping undecodable history entry",
				logger.String("session_id", sessionID),
				logger.Err(err))
			continue
		}
		fixes = append(fixes, fix)
	}

	return fixes, nil
}

// ClearSession removes every stored artifact of a session
func (r *trackingRepo) ClearSession(ctx context.Context, sessionID string) error {
	positionKey := fmt.Sprintf(constants.KeySessionPosition, sessionID)
	historyKey := fmt.Sprintf(constants.KeySessionHistory, sessionID)

	if err := r.redisClient.Delete(ctx, positionKey); err != nil {
		return fmt.Errorf("failed to delete position data: %w", err)
	}
	if err := r.redisClient.Delete(ctx, historyKey); err != nil {
		return fmt.Errorf("failed to delete fix history: %w", err)
	}
	if err := r.redisClient.ZRem(ctx, constants.KeySessionsGeo, sessionID); err != nil {
		return fmt.Errorf("failed to remove session from geo index: %w", err)
	}

	return nil
}
