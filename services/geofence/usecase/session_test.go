package usecase

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zonewatch/geofence/internal/pkg/models"
	"github.com/zonewatch/geofence/services/geofence"
)

type fakeTrackingRepo struct {
	mu        sync.Mutex
	positions []models.PositionUpdate
	history   []models.RawFix
}

func (r *fakeTrackingRepo) StoreLastPosition(ctx context.Context, update models.PositionUpdate) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.positions = append(r.positions, update)
	return nil
}

func (r *fakeTrackingRepo) GetLastPosition(ctx context.Context, sessionID string) (*models.PositionUpdate, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.positions) == 0 {
		return nil, nil
	}
	last := r.positions[len(r.positions)-1]
	return &last, nil
}

func (r *fakeTrackingRepo) GetNearbySessions(ctx context.Context, latitude, longitude, radiusKm float64) ([]models.NearbySession, error) {
	return nil, nil
}

func (r *fakeTrackingRepo) PushFixHistory(ctx context.Context, sessionID string, fix models.RawFix) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.history = append(r.history, fix)
	return nil
}

func (r *fakeTrackingRepo) GetFixHistory(ctx context.Context, sessionID string) ([]models.RawFix, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]models.RawFix(nil), r.history...), nil
}

func (r *fakeTrackingRepo) ClearSession(ctx context.Context, sessionID string) error {
	return nil
}

type fakeGateway struct {
	mu          sync.Mutex
	transitions []models.ZoneTransition
	updates     []models.PositionUpdate
}

func (g *fakeGateway) PublishZoneTransition(ctx context.Context, transition models.ZoneTransition) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.transitions = append(g.transitions, transition)
	return nil
}

func (g *fakeGateway) PublishPositionUpdate(ctx context.Context, update models.PositionUpdate) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.updates = append(g.updates, update)
	return nil
}

func (g *fakeGateway) transitionCount() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return len(g.transitions)
}

type fakeNotifier struct {
	mu          sync.Mutex
	positions   []models.PositionUpdate
	transitions []models.ZoneTransition
	states      []models.TrackingSnapshot
}

func (n *fakeNotifier) NotifyPosition(sessionID string, update models.PositionUpdate) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.positions = append(n.positions, update)
}

func (n *fakeNotifier) NotifyTransition(sessionID string, transition models.ZoneTransition) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.transitions = append(n.transitions, transition)
}

func (n *fakeNotifier) NotifyState(sessionID string, snapshot models.TrackingSnapshot) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.states = append(n.states, snapshot)
}

func (n *fakeNotifier) positionCount() int {
	n.mu.Lock()
	defer n.mu.Unlock()
	return len(n.positions)
}

func (n *fakeNotifier) transitionCount() int {
	n.mu.Lock()
	defer n.mu.Unlock()
	return len(n.transitions)
}

// countingSource counts subscription attempts so tests can observe restarts.
// Every run of the session asks for one immediate fix before watching, so
// currentCalls increments once per start or retry.
type countingSource struct {
	*PushSource
	currentCalls int32
	watchCalls   int32
}

func (s *countingSource) Current(ctx context.Context) (models.RawFix, error) {
	atomic.AddInt32(&s.currentCalls, 1)
	return s.PushSource.Current(ctx)
}

func (s *countingSource) Watch(ctx context.Context) (<-chan models.RawFix, <-chan models.SourceErrorKind, error) {
	atomic.AddInt32(&s.watchCalls, 1)
	return s.PushSource.Watch(ctx)
}

func (s *countingSource) currentCount() int32 {
	return atomic.LoadInt32(&s.currentCalls)
}

func (s *countingSource) watchCount() int32 {
	return atomic.LoadInt32(&s.watchCalls)
}

type sessionFixture struct {
	session  *TrackingSession
	source   *countingSource
	repo     *fakeTrackingRepo
	gw       *fakeGateway
	notifier *fakeNotifier
}

func newSessionFixture(t *testing.T, retryDelay time.Duration) *sessionFixture {
	t.Helper()

	source := &countingSource{PushSource: NewPushSource()}
	repo := &fakeTrackingRepo{}
	gw := &fakeGateway{}
	notifier := &fakeNotifier{}

	session := NewTrackingSession(
		"session-1",
		source,
		models.GeofenceConfig{
			WindowSize:       5,
			MaxReadingAgeMs:  30000,
			AccuracyLimitM:   100,
			OneShotTimeoutMs: 1000,
			GeohashPrecision: 9,
		},
		repo,
		gw,
		func() geofence.Notifier { return notifier },
	)
	session.retryDelay = retryDelay
	session.SetZones([]models.Zone{squareZone("alpha", 0, 0, 10, 10)}, nil)

	t.Cleanup(session.Stop)

	return &sessionFixture{
		session:  session,
		source:   source,
		repo:     repo,
		gw:       gw,
		notifier: notifier,
	}
}

func TestTrackingSession_FixProducesEnteredThenNoChange(t *testing.T) {
	fx := newSessionFixture(t, time.Second)

	fx.session.Start()
	fx.source.Push(models.RawFix{Latitude: 5, Longitude: 5, AccuracyMeters: 10, Timestamp: time.Now()})

	require.Eventually(t, func() bool {
		return fx.notifier.positionCount() == 1
	}, time.Second, 5*time.Millisecond)

	assert.Equal(t, 1, fx.notifier.transitionCount())
	assert.Equal(t, 1, fx.gw.transitionCount())

	fx.notifier.mu.Lock()
	entered := fx.notifier.transitions[0]
	fx.notifier.mu.Unlock()
	assert.Equal(t, models.TransitionEntered, entered.Type)
	assert.Equal(t, models.ZoneIndexNone, entered.FromIndex)
	assert.Equal(t, 0, entered.ToIndex)
	assert.Equal(t, "alpha", entered.ToLabel)
	assert.Equal(t, "session-1", entered.SessionID)

	// A second fix in the same zone is a position update but no transition
	fx.source.Push(models.RawFix{Latitude: 5.0001, Longitude: 5.0001, AccuracyMeters: 10, Timestamp: time.Now()})

	require.Eventually(t, func() bool {
		return fx.notifier.positionCount() == 2
	}, time.Second, 5*time.Millisecond)

	assert.Equal(t, 1, fx.notifier.transitionCount())
	assert.Equal(t, 1, fx.gw.transitionCount())

	snapshot := fx.session.Snapshot()
	assert.True(t, snapshot.Tracking)
	assert.False(t, snapshot.Loading)
	assert.Equal(t, models.PermissionGranted, snapshot.Permission)
	assert.Equal(t, 0, snapshot.ZoneIndex)
	assert.Equal(t, "alpha", snapshot.ZoneLabel)
	assert.Equal(t, models.QualityExcellent, snapshot.Quality)
	require.NotNil(t, snapshot.Position)
	assert.NotEmpty(t, snapshot.Position.Geohash)
}

func TestTrackingSession_TimeoutSchedulesSingleRetry(t *testing.T) {
	fx := newSessionFixture(t, 40*time.Millisecond)

	fx.session.Start()
	fx.source.Push(models.RawFix{Latitude: 5, Longitude: 5, AccuracyMeters: 10, Timestamp: time.Now()})

	require.Eventually(t, func() bool {
		return fx.notifier.positionCount() == 1
	}, time.Second, 5*time.Millisecond)
	require.Equal(t, int32(1), fx.source.currentCount())

	// Two timeouts back to back still arm only one retry
	fx.source.Fail(models.SourceTimeout)
	fx.source.Fail(models.SourceTimeout)

	require.Eventually(t, func() bool {
		return fx.source.currentCount() == 2
	}, time.Second, 5*time.Millisecond)

	// Resolve the restarted one-shot so no further timeout is reported
	fx.source.Push(models.RawFix{Latitude: 5, Longitude: 5, AccuracyMeters: 10, Timestamp: time.Now()})
	require.Eventually(t, func() bool {
		return fx.notifier.positionCount() == 2
	}, time.Second, 5*time.Millisecond)

	time.Sleep(120 * time.Millisecond)
	assert.Equal(t, int32(2), fx.source.currentCount())

	snapshot := fx.session.Snapshot()
	assert.True(t, snapshot.Tracking)
}

func TestTrackingSession_StopBeforeRetryPreventsRestart(t *testing.T) {
	fx := newSessionFixture(t, 50*time.Millisecond)

	fx.session.Start()
	fx.source.Push(models.RawFix{Latitude: 5, Longitude: 5, AccuracyMeters: 10, Timestamp: time.Now()})

	require.Eventually(t, func() bool {
		return fx.notifier.positionCount() == 1
	}, time.Second, 5*time.Millisecond)

	fx.source.Fail(models.SourceTimeout)
	require.Eventually(t, func() bool {
		return fx.session.Snapshot().LastError != ""
	}, time.Second, 5*time.Millisecond)

	fx.session.Stop()

	time.Sleep(150 * time.Millisecond)
	assert.Equal(t, int32(1), fx.source.currentCount())
	assert.Equal(t, int32(1), fx.source.watchCount())
	assert.False(t, fx.session.Snapshot().Tracking)
}

func TestTrackingSession_StopHaltsFixProcessing(t *testing.T) {
	fx := newSessionFixture(t, time.Second)

	// A fix buffered right before Stop can win the receive race against the
	// cancellation; it must never surface once Stop has returned
	for i := 0; i < 25; i++ {
		fx.session.Start()
		fx.source.Push(models.RawFix{Latitude: 5, Longitude: 5, AccuracyMeters: 10, Timestamp: time.Now()})
		fx.session.Stop()

		positions := fx.notifier.positionCount()
		transitions := fx.notifier.transitionCount()
		published := fx.gw.transitionCount()

		time.Sleep(10 * time.Millisecond)

		assert.Equal(t, positions, fx.notifier.positionCount(),
			"iteration %d: fix processed after Stop returned", i)
		assert.Equal(t, transitions, fx.notifier.transitionCount(),
			"iteration %d: transition notified after Stop returned", i)
		assert.Equal(t, published, fx.gw.transitionCount(),
			"iteration %d: transition published after Stop returned", i)
		assert.False(t, fx.session.Snapshot().Tracking)
	}
}

func TestTrackingSession_PermissionDeniedIsTerminal(t *testing.T) {
	fx := newSessionFixture(t, 30*time.Millisecond)

	fx.session.Start()
	fx.source.Push(models.RawFix{Latitude: 5, Longitude: 5, AccuracyMeters: 10, Timestamp: time.Now()})

	require.Eventually(t, func() bool {
		return fx.notifier.positionCount() == 1
	}, time.Second, 5*time.Millisecond)

	fx.source.Fail(models.SourcePermissionDenied)

	require.Eventually(t, func() bool {
		snapshot := fx.session.Snapshot()
		return !snapshot.Tracking && snapshot.Permission == models.PermissionDenied
	}, time.Second, 5*time.Millisecond)

	// No automatic restart after a denial
	time.Sleep(100 * time.Millisecond)
	assert.Equal(t, int32(1), fx.source.watchCount())
}

func TestTrackingSession_RestartReplacesSubscription(t *testing.T) {
	fx := newSessionFixture(t, time.Second)

	fx.session.Start()
	fx.source.Push(models.RawFix{Latitude: 5, Longitude: 5, AccuracyMeters: 10, Timestamp: time.Now()})

	require.Eventually(t, func() bool {
		return fx.notifier.positionCount() == 1
	}, time.Second, 5*time.Millisecond)

	fx.session.Start()

	require.Eventually(t, func() bool {
		return fx.source.currentCount() == 2
	}, time.Second, 5*time.Millisecond)

	// The replaced subscription no longer consumes fixes; the new one does
	fx.source.Push(models.RawFix{Latitude: 6, Longitude: 6, AccuracyMeters: 10, Timestamp: time.Now()})

	require.Eventually(t, func() bool {
		return fx.notifier.positionCount() == 2
	}, time.Second, 5*time.Millisecond)

	snapshot := fx.session.Snapshot()
	assert.True(t, snapshot.Tracking)
}

func TestTrackingSession_StopIsIdempotent(t *testing.T) {
	fx := newSessionFixture(t, time.Second)

	fx.session.Stop()
	fx.session.Stop()

	fx.session.Start()
	fx.session.Stop()
	fx.session.Stop()

	snapshot := fx.session.Snapshot()
	assert.False(t, snapshot.Tracking)
	assert.False(t, snapshot.Loading)
}

func TestTrackingSession_PositionUnavailableKeepsTracking(t *testing.T) {
	fx := newSessionFixture(t, time.Second)

	fx.session.Start()
	fx.source.Push(models.RawFix{Latitude: 5, Longitude: 5, AccuracyMeters: 10, Timestamp: time.Now()})

	require.Eventually(t, func() bool {
		return fx.notifier.positionCount() == 1
	}, time.Second, 5*time.Millisecond)

	fx.source.Fail(models.SourcePositionUnavailable)

	require.Eventually(t, func() bool {
		return fx.session.Snapshot().LastError != ""
	}, time.Second, 5*time.Millisecond)

	snapshot := fx.session.Snapshot()
	assert.True(t, snapshot.Tracking)
	assert.Equal(t, int32(1), fx.source.watchCount())

	// The stream keeps flowing after a transient failure
	fx.source.Push(models.RawFix{Latitude: 5.001, Longitude: 5.001, AccuracyMeters: 10, Timestamp: time.Now()})
	require.Eventually(t, func() bool {
		return fx.notifier.positionCount() == 2
	}, time.Second, 5*time.Millisecond)
}
