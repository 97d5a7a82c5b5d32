package usecase

import (
	"context"
	"sync"
	"time"

	"github.com/zonewatch/geofence/internal/pkg/logger"
	"github.com/zonewatch/geofence/internal/pkg/models"
	"github.com/zonewatch/geofence/internal/utils"
	"github.com/zonewatch/geofence/services/geofence"
)

const (
	defaultRetryDelay       = 2000 * time.Millisecond
	defaultOneShotTimeout   = 10 * time.Second
	defaultGeohashPrecision = 9
)

// TrackingSession owns the position source subscription for one client and
// runs every raw fix through the filter, the containment evaluator and the
// transition tracker. All mutable state is guarded by mu; fixes are
// processed strictly in arrival order by the single watch goroutine.
type TrackingSession struct {
	id     string
	source PositionSource
	repo   geofence.TrackingRepo
	gw     geofence.GeofenceGW
	notify func() geofence.Notifier

	retryDelay       time.Duration
	oneShotTimeout   time.Duration
	geohashPrecision uint
	now              func() time.Time

	// emitMu serializes the storage, publish and notify effects of fix
	// processing with Stop; Stop waits on it so no event lands after it
	// returns
	emitMu sync.Mutex

	mu             sync.Mutex
	filter         *ReadingFilter
	tracker        *ZoneTracker
	zones          []models.Zone
	zonesErr       error
	watchCancel    context.CancelFunc
	retryTimer     *time.Timer
	tracking       bool
	loading        bool
	permission     models.PermissionStatus
	lastError      string
	position       *models.FilteredPosition
	quality        models.AccuracyQuality
	zoneIndex      int
	lastTransition *models.ZoneTransition
	updatedAt      time.Time
}

// NewTrackingSession creates a tracking session for one client
func NewTrackingSession(
	id string,
	source PositionSource,
	cfg models.GeofenceConfig,
	repo geofence.TrackingRepo,
	gw geofence.GeofenceGW,
	notify func() geofence.Notifier,
) *TrackingSession {
	s := &TrackingSession{
		id:               id,
		source:           source,
		repo:             repo,
		gw:               gw,
		notify:           notify,
		retryDelay:       time.Duration(cfg.RetryDelayMs) * time.Millisecond,
		oneShotTimeout:   time.Duration(cfg.OneShotTimeoutMs) * time.Millisecond,
		geohashPrecision: cfg.GeohashPrecision,
		now:              time.Now,
		filter:           NewReadingFilter(cfg),
		tracker:          NewZoneTracker(),
		permission:       models.PermissionUnknown,
		quality:          models.QualityUnknown,
		zoneIndex:        models.ZoneIndexNone,
	}
	if s.retryDelay <= 0 {
		s.retryDelay = defaultRetryDelay
	}
	if s.oneShotTimeout <= 0 {
		s.oneShotTimeout = defaultOneShotTimeout
	}
	if s.geohashPrecision == 0 {
		s.geohashPrecision = defaultGeohashPrecision
	}
	return s
}

// ID returns the session identifier
func (s *TrackingSession) ID() string {
	return s.id
}

// SetZones installs the zone collection the session evaluates containment
// against. A zone load failure leaves the collection empty; containment is
// then always none and the error is surfaced in snapshots.
func (s *TrackingSession) SetZones(zones []models.Zone, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.zones = zones
	s.zonesErr = err
}

// Start begins (or restarts) watching the position source: one immediate
// fix, then the continuous stream. A prior subscription and any pending
// retry are cancelled first, so repeated calls never leave duplicate
// subscriptions behind.
func (s *TrackingSession) Start() {
	s.mu.Lock()
	s.cancelRetryLocked()
	s.stopWatchLocked()

	ctx, cancel := context.WithCancel(context.Background())
	s.watchCancel = cancel
	s.tracking = true
	s.loading = true
	s.lastError = ""
	s.updatedAt = s.now()
	s.mu.Unlock()

	logger.Info("Tracking started", logger.String("session_id", s.id))
	go s.run(ctx)
}

// Stop cancels the active subscription and any pending retry; idempotent
// and safe to call when not started
func (s *TrackingSession) Stop() {
	s.mu.Lock()
	s.cancelRetryLocked()
	s.stopWatchLocked()
	s.tracking = false
	s.loading = false
	s.updatedAt = s.now()
	s.mu.Unlock()

	// Wait out any in-flight emit; a fix that raced the cancellation either
	// finishes before this returns or is dropped
	s.emitMu.Lock()
	s.emitMu.Unlock()
}

// Snapshot returns the externally visible state of the session
func (s *TrackingSession) Snapshot() models.TrackingSnapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshotLocked()
}

func (s *TrackingSession) run(ctx context.Context) {
	// Immediate one-shot fix first, mirroring a getCurrentPosition call
	// before the continuous watch
	oneShot, cancel := context.WithTimeout(ctx, s.oneShotTimeout)
	fix, err := s.source.Current(oneShot)
	cancel()

	if ctx.Err() != nil {
		return
	}
	if err != nil {
		s.processSourceError(models.SourceTimeout)
	} else {
		s.processFix(fix)
	}

	fixes, errs, err := s.source.Watch(ctx)
	if err != nil {
		s.processSourceError(models.SourcePositionUnavailable)
		return
	}

	for {
		select {
		case <-ctx.Done():
			return
		case fix := <-fixes:
			// A buffered fix can win the select race against cancellation;
			// anything received after Stop is dropped
			if ctx.Err() != nil {
				return
			}
			s.processFix(fix)
		case kind := <-errs:
			if ctx.Err() != nil {
				return
			}
			s.processSourceError(kind)
		}
	}
}

func (s *TrackingSession) processFix(fix models.RawFix) {
	s.mu.Lock()
	if !s.tracking {
		s.mu.Unlock()
		return
	}
	now := s.now()
	s.loading = false
	s.permission = models.PermissionGranted
	s.lastError = ""

	s.filter.AddReading(fix)

	var update *models.PositionUpdate
	var transition *models.ZoneTransition
	if pos := s.filter.FilteredPosition(); pos != nil {
		pos.Geohash = utils.EncodePosition(pos.Latitude, pos.Longitude, s.geohashPrecision)
		s.position = pos
		s.quality = QualityForAccuracy(pos.AccuracyMeters)
		s.zoneIndex = ContainingZone(pos.Latitude, pos.Longitude, s.zones)

		ev := s.tracker.Update(s.zoneIndex)
		ev.SessionID = s.id
		ev.CreatedAt = now
		ev.FromLabel = s.zoneLabelLocked(ev.FromIndex)
		ev.ToLabel = s.zoneLabelLocked(ev.ToIndex)
		s.lastTransition = &ev
		transition = &ev

		update = &models.PositionUpdate{
			SessionID: s.id,
			Position:  *pos,
			Quality:   s.quality,
			ZoneIndex: s.zoneIndex,
			CreatedAt: now,
		}
	}
	s.updatedAt = now
	notifier := s.notify()
	s.mu.Unlock()

	// A Stop between the unlock above and this point must win: once it has
	// set tracking to false, nothing more leaves the session
	s.emitMu.Lock()
	defer s.emitMu.Unlock()
	if !s.isTracking() {
		return
	}

	// Storage and bus publishing are best-effort; the pipeline never fails
	// because Redis or NSQ is down
	ctx := context.Background()
	if err := s.repo.PushFixHistory(ctx, s.id, fix); err != nil {
		logger.Warn("Failed to store fix history",
			logger.String("session_id", s.id),
			logger.Err(err))
	}

	if update == nil {
		return
	}

	if err := s.repo.StoreLastPosition(ctx, *update); err != nil {
		logger.Warn("Failed to store last position",
			logger.String("session_id", s.id),
			logger.Err(err))
	}
	if err := s.gw.PublishPositionUpdate(ctx, *update); err != nil {
		logger.Warn("Failed to publish position update",
			logger.String("session_id", s.id),
			logger.Err(err))
	}
	if notifier != nil {
		notifier.NotifyPosition(s.id, *update)
	}

	if transition.Type != models.TransitionNoChange {
		logger.Info("Zone transition",
			logger.String("session_id", s.id),
			logger.String("type", string(transition.Type)),
			logger.Int("from", transition.FromIndex),
			logger.Int("to", transition.ToIndex))

		if err := s.gw.PublishZoneTransition(ctx, *transition); err != nil {
			logger.Warn("Failed to publish zone transition",
				logger.String("session_id", s.id),
				logger.Err(err))
		}
		if notifier != nil {
			notifier.NotifyTransition(s.id, *transition)
		}
	}
}

func (s *TrackingSession) processSourceError(kind models.SourceErrorKind) {
	s.mu.Lock()
	if !s.tracking {
		s.mu.Unlock()
		return
	}
	s.loading = false

	switch kind {
	case models.SourcePermissionDenied:
		// Terminal until the user re-grants and tracking is started again
		s.permission = models.PermissionDenied
		s.lastError = "location permission denied"
		s.cancelRetryLocked()
		s.stopWatchLocked()
		s.tracking = false
	case models.SourcePositionUnavailable:
		s.lastError = "position unavailable"
	case models.SourceTimeout:
		s.lastError = "location request timed out"
		s.scheduleRetryLocked()
	default:
		s.lastError = string(kind)
	}

	s.updatedAt = s.now()
	snapshot := s.snapshotLocked()
	notifier := s.notify()
	s.mu.Unlock()

	logger.Warn("Position source error",
		logger.String("session_id", s.id),
		logger.String("kind", string(kind)))

	s.emitMu.Lock()
	defer s.emitMu.Unlock()
	// A permission denial ends tracking itself and is still delivered; any
	// other error state is dropped when Stop got there first
	if snapshot.Tracking && !s.isTracking() {
		return
	}
	if notifier != nil {
		notifier.NotifyState(s.id, snapshot)
	}
}

// scheduleRetryLocked arms the single automatic restart after a source
// timeout. A pending retry is left in place so retries never stack.
func (s *TrackingSession) scheduleRetryLocked() {
	if s.retryTimer != nil || !s.tracking {
		return
	}
	s.retryTimer = time.AfterFunc(s.retryDelay, func() {
		s.mu.Lock()
		s.retryTimer = nil
		tracking := s.tracking
		s.mu.Unlock()

		if tracking {
			logger.Info("Retrying tracking after timeout", logger.String("session_id", s.id))
			s.Start()
		}
	})
}

func (s *TrackingSession) isTracking() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.tracking
}

func (s *TrackingSession) cancelRetryLocked() {
	if s.retryTimer != nil {
		s.retryTimer.Stop()
		s.retryTimer = nil
	}
}

func (s *TrackingSession) stopWatchLocked() {
	if s.watchCancel != nil {
		s.watchCancel()
		s.watchCancel = nil
	}
}

func (s *TrackingSession) snapshotLocked() models.TrackingSnapshot {
	snapshot := models.TrackingSnapshot{
		SessionID:      s.id,
		Tracking:       s.tracking,
		Loading:        s.loading,
		Position:       s.position,
		Quality:        s.quality,
		ZoneIndex:      s.zoneIndex,
		ZoneLabel:      s.zoneLabelLocked(s.zoneIndex),
		LastTransition: s.lastTransition,
		Permission:     s.permission,
		LastError:      s.lastError,
		UpdatedAt:      s.updatedAt,
	}
	if s.zonesErr != nil {
		snapshot.ZonesError = s.zonesErr.Error()
	}
	return snapshot
}

func (s *TrackingSession) zoneLabelLocked(index int) string {
	if index < 0 || index >= len(s.zones) {
		return ""
	}
	return s.zones[index].Label
}
