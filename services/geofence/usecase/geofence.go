package usecase

import (
	"context"
	"errors"
	"fmt"
	"math"
	"sort"
	"sync"

	"github.com/google/uuid"
	"github.com/zonewatch/geofence/internal/pkg/logger"
	"github.com/zonewatch/geofence/internal/pkg/models"
	"github.com/zonewatch/geofence/internal/utils"
	"github.com/zonewatch/geofence/services/geofence"
)

// ErrSessionNotFound is returned for operations against an unknown session
var ErrSessionNotFound = errors.New("session not found")

// ErrInvalidQuery is returned when a read query carries out-of-range values
var ErrInvalidQuery = errors.New("invalid query")

type trackedSession struct {
	session *TrackingSession
	source  *PushSource
}

// GeofenceUC implements the geofence.GeofenceUC interface
type GeofenceUC struct {
	cfg          models.GeofenceConfig
	zoneRepo     geofence.ZoneRepo
	trackingRepo geofence.TrackingRepo
	gw           geofence.GeofenceGW

	zonesOnce sync.Once
	zones     []models.Zone
	zonesErr  error

	notifierMu sync.RWMutex
	notifier   geofence.Notifier

	sessionsMu sync.Mutex
	sessions   map[string]*trackedSession
}

// NewGeofenceUC creates a new geofence use case
func NewGeofenceUC(
	cfg models.GeofenceConfig,
	zoneRepo geofence.ZoneRepo,
	trackingRepo geofence.TrackingRepo,
	gw geofence.GeofenceGW,
) *GeofenceUC {
	return &GeofenceUC{
		cfg:          cfg,
		zoneRepo:     zoneRepo,
		trackingRepo: trackingRepo,
		gw:           gw,
		sessions:     make(map[string]*trackedSession),
	}
}

// RegisterNotifier wires the transport that pushes engine output back to
// connected clients
func (uc *GeofenceUC) RegisterNotifier(n geofence.Notifier) {
	uc.notifierMu.Lock()
	defer uc.notifierMu.Unlock()
	uc.notifier = n
}

func (uc *GeofenceUC) currentNotifier() geofence.Notifier {
	uc.notifierMu.RLock()
	defer uc.notifierMu.RUnlock()
	return uc.notifier
}

// Zones returns the loaded zone collection. The collection is loaded once
// per process; a load failure yields an empty collection plus the error.
func (uc *GeofenceUC) Zones(ctx context.Context) ([]models.Zone, error) {
	zones, err := uc.ensureZones(ctx)
	return zones, err
}

// ensureZones loads the zone collection exactly once. Tracking that begins
// after a failed load simply evaluates containment against zero zones.
func (uc *GeofenceUC) ensureZones(ctx context.Context) ([]models.Zone, error) {
	uc.zonesOnce.Do(func() {
		zones, err := uc.zoneRepo.GetZones(ctx)
		if err != nil {
			uc.zonesErr = fmt.Errorf("failed to load zones: %w", err)
			logger.Error("Zone load failed", logger.Err(err))
			return
		}
		uc.zones = zones
		logger.Info("Zones loaded", logger.Int("count", len(zones)))
	})
	return uc.zones, uc.zonesErr
}

// CreateSession creates a new tracking session and returns its initial state
func (uc *GeofenceUC) CreateSession(ctx context.Context) (*models.TrackingSnapshot, error) {
	id := uuid.New().String()
	source := NewPushSource()
	session := NewTrackingSession(id, source, uc.cfg, uc.trackingRepo, uc.gw, uc.currentNotifier)

	uc.sessionsMu.Lock()
	uc.sessions[id] = &trackedSession{session: session, source: source}
	uc.sessionsMu.Unlock()

	logger.Info("Session created", logger.String("session_id", id))
	snapshot := session.Snapshot()
	return &snapshot, nil
}

// EndSession stops a session, removes it and clears its stored state
func (uc *GeofenceUC) EndSession(ctx context.Context, sessionID string) error {
	uc.sessionsMu.Lock()
	tracked, ok := uc.sessions[sessionID]
	if ok {
		delete(uc.sessions, sessionID)
	}
	uc.sessionsMu.Unlock()

	if !ok {
		return ErrSessionNotFound
	}

	tracked.session.Stop()
	if err := uc.trackingRepo.ClearSession(ctx, sessionID); err != nil {
		logger.Warn("Failed to clear session state",
			logger.String("session_id", sessionID),
			logger.Err(err))
	}

	logger.Info("Session ended", logger.String("session_id", sessionID))
	return nil
}

// StartTracking begins watching the session's position source. Zones are
// loaded first; tracking never starts ahead of the zone collection.
func (uc *GeofenceUC) StartTracking(ctx context.Context, sessionID string) error {
	tracked, err := uc.findSession(sessionID)
	if err != nil {
		return err
	}

	zones, zonesErr := uc.ensureZones(ctx)
	tracked.session.SetZones(zones, zonesErr)
	tracked.session.Start()
	return nil
}

// StopTracking cancels the session's subscription; safe when not started
func (uc *GeofenceUC) StopTracking(ctx context.Context, sessionID string) error {
	tracked, err := uc.findSession(sessionID)
	if err != nil {
		return err
	}
	tracked.session.Stop()
	return nil
}

// PushFix delivers one raw fix from the client's position source
func (uc *GeofenceUC) PushFix(ctx context.Context, sessionID string, fix models.RawFix) error {
	if err := validateFix(fix); err != nil {
		return err
	}

	tracked, err := uc.findSession(sessionID)
	if err != nil {
		return err
	}

	tracked.source.Push(fix)
	return nil
}

// PushSourceError delivers a source error kind reported by the client
func (uc *GeofenceUC) PushSourceError(ctx context.Context, sessionID string, kind models.SourceErrorKind) error {
	switch kind {
	case models.SourcePermissionDenied, models.SourcePositionUnavailable, models.SourceTimeout:
	default:
		return fmt.Errorf("unknown source error kind: %s", kind)
	}

	tracked, err := uc.findSession(sessionID)
	if err != nil {
		return err
	}

	tracked.source.Fail(kind)
	return nil
}

// GetSnapshot returns the externally visible state of a session
func (uc *GeofenceUC) GetSnapshot(ctx context.Context, sessionID string) (*models.TrackingSnapshot, error) {
	tracked, err := uc.findSession(sessionID)
	if err != nil {
		return nil, err
	}

	snapshot := tracked.session.Snapshot()
	return &snapshot, nil
}

// GetHistory returns the bounded recent raw-fix history of a session
func (uc *GeofenceUC) GetHistory(ctx context.Context, sessionID string) ([]models.RawFix, error) {
	if _, err := uc.findSession(sessionID); err != nil {
		return nil, err
	}
	return uc.trackingRepo.GetFixHistory(ctx, sessionID)
}

// LastKnownPosition returns the last stored filtered position of a session,
// or nil when nothing is stored. The position cache outlives the in-memory
// session, so ended sessions remain addressable until their TTL expires.
func (uc *GeofenceUC) LastKnownPosition(ctx context.Context, sessionID string) (*models.PositionUpdate, error) {
	update, err := uc.trackingRepo.GetLastPosition(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("failed to get last position: %w", err)
	}
	return update, nil
}

// NearbySessions returns sessions last seen within radiusKm of the query
// point, nearest first
func (uc *GeofenceUC) NearbySessions(ctx context.Context, latitude, longitude, radiusKm float64) ([]models.NearbySession, error) {
	if math.IsNaN(latitude) || latitude < -90 || latitude > 90 {
		return nil, fmt.Errorf("%w: latitude must be between -90 and 90", ErrInvalidQuery)
	}
	if math.IsNaN(longitude) || longitude < -180 || longitude > 180 {
		return nil, fmt.Errorf("%w: longitude must be between -180 and 180", ErrInvalidQuery)
	}
	if math.IsNaN(radiusKm) || radiusKm <= 0 {
		return nil, fmt.Errorf("%w: radius must be positive", ErrInvalidQuery)
	}

	sessions, err := uc.trackingRepo.GetNearbySessions(ctx, latitude, longitude, radiusKm)
	if err != nil {
		return nil, fmt.Errorf("failed to query nearby sessions: %w", err)
	}

	origin := utils.GeoPoint{Latitude: latitude, Longitude: longitude}
	for i := range sessions {
		sessions[i].DistanceKm = utils.CalculateDistance(origin, utils.GeoPoint{
			Latitude:  sessions[i].Latitude,
			Longitude: sessions[i].Longitude,
		})
	}
	sort.Slice(sessions, func(i, j int) bool {
		return sessions[i].DistanceKm < sessions[j].DistanceKm
	})

	return sessions, nil
}

// Shutdown stops every active session
func (uc *GeofenceUC) Shutdown(ctx context.Context) error {
	uc.sessionsMu.Lock()
	sessions := make([]*trackedSession, 0, len(uc.sessions))
	for _, tracked := range uc.sessions {
		sessions = append(sessions, tracked)
	}
	uc.sessions = make(map[string]*trackedSession)
	uc.sessionsMu.Unlock()

	for _, tracked := range sessions {
		tracked.session.Stop()
	}

	logger.Info("All sessions stopped", logger.Int("count", len(sessions)))
	return nil
}

func (uc *GeofenceUC) findSession(sessionID string) (*trackedSession, error) {
	uc.sessionsMu.Lock()
	defer uc.sessionsMu.Unlock()

	tracked, ok := uc.sessions[sessionID]
	if !ok {
		return nil, ErrSessionNotFound
	}
	return tracked, nil
}

func validateFix(fix models.RawFix) error {
	if math.IsNaN(fix.Latitude) || fix.Latitude < -90 || fix.Latitude > 90 {
		return errors.New("latitude must be between -90 and 90")
	}
	if math.IsNaN(fix.Longitude) || fix.Longitude < -180 || fix.Longitude > 180 {
		return errors.New("longitude must be between -180 and 180")
	}
	if math.IsNaN(fix.AccuracyMeters) || fix.AccuracyMeters < 0 {
		return errors.New("accuracy must be zero or positive")
	}
	return nil
}
