package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zonewatch/geofence/internal/pkg/models"
	"github.com/zonewatch/geofence/services/geofence/mocks"
)

func testGeofenceConfig() models.GeofenceConfig {
	return models.GeofenceConfig{
		WindowSize:       5,
		MaxReadingAgeMs:  30000,
		AccuracyLimitM:   100,
		RetryDelayMs:     2000,
		HistorySize:      20,
		OneShotTimeoutMs: 10000,
		GeohashPrecision: 9,
	}
}

func TestGeofenceUC_CreateSession(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc := NewGeofenceUC(
		testGeofenceConfig(),
		mocks.NewMockZoneRepo(ctrl),
		mocks.NewMockTrackingRepo(ctrl),
		mocks.NewMockGeofenceGW(ctrl),
	)

	snapshot, err := uc.CreateSession(context.Background())
	require.NoError(t, err)
	require.NotNil(t, snapshot)
	assert.NotEmpty(t, snapshot.SessionID)
	assert.False(t, snapshot.Tracking)
	assert.Equal(t, models.PermissionUnknown, snapshot.Permission)
	assert.Equal(t, models.ZoneIndexNone, snapshot.ZoneIndex)
	assert.Equal(t, models.QualityUnknown, snapshot.Quality)

	// Each session gets its own identifier
	second, err := uc.CreateSession(context.Background())
	require.NoError(t, err)
	assert.NotEqual(t, snapshot.SessionID, second.SessionID)
}

func TestGeofenceUC_ZonesLoadedOnce(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	zones := []models.Zone{squareZone("alpha", 0, 0, 10, 10)}
	zoneRepo := mocks.NewMockZoneRepo(ctrl)
	zoneRepo.EXPECT().GetZones(gomock.Any()).Return(zones, nil).Times(1)

	uc := NewGeofenceUC(
		testGeofenceConfig(),
		zoneRepo,
		mocks.NewMockTrackingRepo(ctrl),
		mocks.NewMockGeofenceGW(ctrl),
	)

	for i := 0; i < 3; i++ {
		got, err := uc.Zones(context.Background())
		require.NoError(t, err)
		assert.Len(t, got, 1)
	}
}

func TestGeofenceUC_ZonesLoadFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	zoneRepo := mocks.NewMockZoneRepo(ctrl)
	zoneRepo.EXPECT().GetZones(gomock.Any()).Return(nil, errors.New("connection refused")).Times(1)

	uc := NewGeofenceUC(
		testGeofenceConfig(),
		zoneRepo,
		mocks.NewMockTrackingRepo(ctrl),
		mocks.NewMockGeofenceGW(ctrl),
	)

	zones, err := uc.Zones(context.Background())
	require.Error(t, err)
	assert.Empty(t, zones)

	// The failure is sticky; no reload is attempted
	_, err = uc.Zones(context.Background())
	assert.Error(t, err)
}

func TestGeofenceUC_StartTrackingSurfacesZoneError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	zoneRepo := mocks.NewMockZoneRepo(ctrl)
	zoneRepo.EXPECT().GetZones(gomock.Any()).Return(nil, errors.New("connection refused")).Times(1)

	uc := NewGeofenceUC(
		testGeofenceConfig(),
		zoneRepo,
		mocks.NewMockTrackingRepo(ctrl),
		mocks.NewMockGeofenceGW(ctrl),
	)

	snapshot, err := uc.CreateSession(context.Background())
	require.NoError(t, err)

	// Tracking still starts; containment just evaluates against zero zones
	require.NoError(t, uc.StartTracking(context.Background(), snapshot.SessionID))
	defer uc.Shutdown(context.Background())

	got, err := uc.GetSnapshot(context.Background(), snapshot.SessionID)
	require.NoError(t, err)
	assert.True(t, got.Tracking)
	assert.Contains(t, got.ZonesError, "connection refused")
}

func TestGeofenceUC_UnknownSession(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc := NewGeofenceUC(
		testGeofenceConfig(),
		mocks.NewMockZoneRepo(ctrl),
		mocks.NewMockTrackingRepo(ctrl),
		mocks.NewMockGeofenceGW(ctrl),
	)

	ctx := context.Background()
	fix := models.RawFix{Latitude: 1, Longitude: 1, AccuracyMeters: 10}

	assert.ErrorIs(t, uc.EndSession(ctx, "missing"), ErrSessionNotFound)
	assert.ErrorIs(t, uc.StopTracking(ctx, "missing"), ErrSessionNotFound)
	assert.ErrorIs(t, uc.PushFix(ctx, "missing", fix), ErrSessionNotFound)
	assert.ErrorIs(t, uc.PushSourceError(ctx, "missing", models.SourceTimeout), ErrSessionNotFound)

	_, err := uc.GetSnapshot(ctx, "missing")
	assert.ErrorIs(t, err, ErrSessionNotFound)
	_, err = uc.GetHistory(ctx, "missing")
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestGeofenceUC_PushFixValidation(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc := NewGeofenceUC(
		testGeofenceConfig(),
		mocks.NewMockZoneRepo(ctrl),
		mocks.NewMockTrackingRepo(ctrl),
		mocks.NewMockGeofenceGW(ctrl),
	)

	snapshot, err := uc.CreateSession(context.Background())
	require.NoError(t, err)
	ctx := context.Background()

	tests := []struct {
		name string
		fix  models.RawFix
	}{
		{"latitude too high", models.RawFix{Latitude: 91, Longitude: 0, AccuracyMeters: 10}},
		{"latitude too low", models.RawFix{Latitude: -91, Longitude: 0, AccuracyMeters: 10}},
		{"longitude too high", models.RawFix{Latitude: 0, Longitude: 181, AccuracyMeters: 10}},
		{"longitude too low", models.RawFix{Latitude: 0, Longitude: -181, AccuracyMeters: 10}},
		{"negative accuracy", models.RawFix{Latitude: 0, Longitude: 0, AccuracyMeters: -1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Error(t, uc.PushFix(ctx, snapshot.SessionID, tt.fix))
		})
	}

	// Boundary values are accepted
	assert.NoError(t, uc.PushFix(ctx, snapshot.SessionID,
		models.RawFix{Latitude: 90, Longitude: -180, AccuracyMeters: 0}))
}

func TestGeofenceUC_PushSourceErrorValidation(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc := NewGeofenceUC(
		testGeofenceConfig(),
		mocks.NewMockZoneRepo(ctrl),
		mocks.NewMockTrackingRepo(ctrl),
		mocks.NewMockGeofenceGW(ctrl),
	)

	snapshot, err := uc.CreateSession(context.Background())
	require.NoError(t, err)

	assert.Error(t, uc.PushSourceError(context.Background(), snapshot.SessionID, "bogus"))
	assert.NoError(t, uc.PushSourceError(context.Background(), snapshot.SessionID, models.SourcePermissionDenied))
}

func TestGeofenceUC_EndSessionClearsState(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	trackingRepo := mocks.NewMockTrackingRepo(ctrl)

	uc := NewGeofenceUC(
		testGeofenceConfig(),
		mocks.NewMockZoneRepo(ctrl),
		trackingRepo,
		mocks.NewMockGeofenceGW(ctrl),
	)

	snapshot, err := uc.CreateSession(context.Background())
	require.NoError(t, err)

	trackingRepo.EXPECT().ClearSession(gomock.Any(), snapshot.SessionID).Return(nil)

	require.NoError(t, uc.EndSession(context.Background(), snapshot.SessionID))

	// The session is gone afterwards
	_, err = uc.GetSnapshot(context.Background(), snapshot.SessionID)
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestGeofenceUC_EndSessionToleratesClearFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	trackingRepo := mocks.NewMockTrackingRepo(ctrl)

	uc := NewGeofenceUC(
		testGeofenceConfig(),
		mocks.NewMockZoneRepo(ctrl),
		trackingRepo,
		mocks.NewMockGeofenceGW(ctrl),
	)

	snapshot, err := uc.CreateSession(context.Background())
	require.NoError(t, err)

	trackingRepo.EXPECT().ClearSession(gomock.Any(), snapshot.SessionID).
		Return(errors.New("redis down"))

	assert.NoError(t, uc.EndSession(context.Background(), snapshot.SessionID))
}

func TestGeofenceUC_GetHistoryDelegates(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	trackingRepo := mocks.NewMockTrackingRepo(ctrl)

	uc := NewGeofenceUC(
		testGeofenceConfig(),
		mocks.NewMockZoneRepo(ctrl),
		trackingRepo,
		mocks.NewMockGeofenceGW(ctrl),
	)

	snapshot, err := uc.CreateSession(context.Background())
	require.NoError(t, err)

	expected := []models.RawFix{{Latitude: 1, Longitude: 2, AccuracyMeters: 5}}
	trackingRepo.EXPECT().GetFixHistory(gomock.Any(), snapshot.SessionID).Return(expected, nil)

	history, err := uc.GetHistory(context.Background(), snapshot.SessionID)
	require.NoError(t, err)
	assert.Equal(t, expected, history)
}

func TestGeofenceUC_LastKnownPosition(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	trackingRepo := mocks.NewMockTrackingRepo(ctrl)

	uc := NewGeofenceUC(
		testGeofenceConfig(),
		mocks.NewMockZoneRepo(ctrl),
		trackingRepo,
		mocks.NewMockGeofenceGW(ctrl),
	)

	stored := &models.PositionUpdate{
		SessionID: "session-1",
		Position:  models.FilteredPosition{Latitude: 1, Longitude: 2, AccuracyMeters: 10},
		Quality:   models.QualityExcellent,
		ZoneIndex: 0,
	}
	trackingRepo.EXPECT().GetLastPosition(gomock.Any(), "session-1").Return(stored, nil)

	got, err := uc.LastKnownPosition(context.Background(), "session-1")
	require.NoError(t, err)
	assert.Equal(t, stored, got)

	// The cache answers for sessions no longer held in memory; absence is
	// nil, not an error
	trackingRepo.EXPECT().GetLastPosition(gomock.Any(), "gone").Return(nil, nil)

	got, err = uc.LastKnownPosition(context.Background(), "gone")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestGeofenceUC_NearbySessions(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	trackingRepo := mocks.NewMockTrackingRepo(ctrl)

	uc := NewGeofenceUC(
		testGeofenceConfig(),
		mocks.NewMockZoneRepo(ctrl),
		trackingRepo,
		mocks.NewMockGeofenceGW(ctrl),
	)

	// The geo index returns coordinates in arbitrary order
	trackingRepo.EXPECT().GetNearbySessions(gomock.Any(), -6.2088, 106.8456, 50.0).
		Return([]models.NearbySession{
			{SessionID: "far", Latitude: -6.2997, Longitude: 106.8456},
			{SessionID: "close", Latitude: -6.2097, Longitude: 106.8456},
		}, nil)

	sessions, err := uc.NearbySessions(context.Background(), -6.2088, 106.8456, 50)
	require.NoError(t, err)
	require.Len(t, sessions, 2)

	// Nearest first, with haversine distances filled in
	assert.Equal(t, "close", sessions[0].SessionID)
	assert.Equal(t, "far", sessions[1].SessionID)
	assert.InDelta(t, 0.1, sessions[0].DistanceKm, 0.01)
	assert.InDelta(t, 10.1, sessions[1].DistanceKm, 0.2)
}

func TestGeofenceUC_NearbySessionsValidation(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc := NewGeofenceUC(
		testGeofenceConfig(),
		mocks.NewMockZoneRepo(ctrl),
		mocks.NewMockTrackingRepo(ctrl),
		mocks.NewMockGeofenceGW(ctrl),
	)

	ctx := context.Background()

	tests := []struct {
		name      string
		latitude  float64
		longitude float64
		radiusKm  float64
	}{
		{"latitude too high", 91, 0, 5},
		{"longitude too low", 0, -181, 5},
		{"zero radius", 0, 0, 0},
		{"negative radius", 0, 0, -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := uc.NearbySessions(ctx, tt.latitude, tt.longitude, tt.radiusKm)
			assert.ErrorIs(t, err, ErrInvalidQuery)
		})
	}
}

func TestGeofenceUC_ShutdownStopsAllSessions(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	zoneRepo := mocks.NewMockZoneRepo(ctrl)
	zoneRepo.EXPECT().GetZones(gomock.Any()).Return(nil, nil).Times(1)

	uc := NewGeofenceUC(
		testGeofenceConfig(),
		zoneRepo,
		mocks.NewMockTrackingRepo(ctrl),
		mocks.NewMockGeofenceGW(ctrl),
	)

	first, err := uc.CreateSession(context.Background())
	require.NoError(t, err)
	second, err := uc.CreateSession(context.Background())
	require.NoError(t, err)

	require.NoError(t, uc.StartTracking(context.Background(), first.SessionID))
	require.NoError(t, uc.StartTracking(context.Background(), second.SessionID))

	require.NoError(t, uc.Shutdown(context.Background()))

	// The registry is emptied; sessions are no longer addressable
	_, err = uc.GetSnapshot(context.Background(), first.SessionID)
	assert.ErrorIs(t, err, ErrSessionNotFound)
}
