package usecase

import (
	"time"

	"github.com/zonewatch/geofence/internal/pkg/models"
)

// Engine defaults, used when the corresponding config value is zero
const (
	defaultWindowSize     = 5
	defaultMaxReadingAge  = 30 * time.Second
	defaultAccuracyLimitM = 100.0
)

// Quality classification thresholds in meters, half-open and evaluated in
// ascending order
const (
	excellentAccuracyM = 20.0
	goodAccuracyM      = 50.0
	fairAccuracyM      = 100.0
)

type windowEntry struct {
	fix models.RawFix
	// seenAt is the processing time of AddReading, not the fix's own
	// timestamp; pruning on it keeps results deterministic in call order
	// even when the source reports skewed timestamps
	seenAt time.Time
}

// ReadingFilter maintains a bounded, time-windowed buffer of recent raw
// fixes and derives one smoothed position estimate plus a coarse accuracy
// quality from it. It is owned by a single tracking session and is not safe
// for concurrent use.
type ReadingFilter struct {
	capacity      int
	maxAge        time.Duration
	accuracyLimit float64
	window        []windowEntry
	now           func() time.Time
}

// NewReadingFilter creates a reading filter from engine configuration
func NewReadingFilter(cfg models.GeofenceConfig) *ReadingFilter {
	f := &ReadingFilter{
		capacity:      cfg.WindowSize,
		maxAge:        time.Duration(cfg.MaxReadingAgeMs) * time.Millisecond,
		accuracyLimit: cfg.AccuracyLimitM,
		now:           time.Now,
	}
	if f.capacity <= 0 {
		f.capacity = defaultWindowSize
	}
	if f.maxAge <= 0 {
		f.maxAge = defaultMaxReadingAge
	}
	if f.accuracyLimit <= 0 {
		f.accuracyLimit = defaultAccuracyLimitM
	}
	return f
}

// AddReading appends a raw fix to the window, then enforces the capacity
// bound (oldest dropped first) and the age cutoff relative to this call
func (f *ReadingFilter) AddReading(fix models.RawFix) {
	now := f.now()
	f.window = append(f.window, windowEntry{fix: fix, seenAt: now})

	if len(f.window) > f.capacity {
		f.window = f.window[len(f.window)-f.capacity:]
	}

	kept := f.window[:0]
	for _, entry := range f.window {
		if now.Sub(entry.seenAt) <= f.maxAge {
			kept = append(kept, entry)
		}
	}
	f.window = kept
}

// Len returns the number of readings currently in the window
func (f *ReadingFilter) Len() int {
	return len(f.window)
}

// FilteredPosition derives the smoothed position estimate from the window.
// It returns nil when the window is empty.
//
// Readings with accuracy within the acceptance limit are averaged with
// weight 1/(accuracy+1); the reported accuracy is the best one among them
// rather than a blend. When every reading is worse than the limit, the
// single best reading is returned verbatim so a meaningless average of bad
// fixes is never shown.
func (f *ReadingFilter) FilteredPosition() *models.FilteredPosition {
	if len(f.window) == 0 {
		return nil
	}

	var good []models.RawFix
	for _, entry := range f.window {
		if entry.fix.AccuracyMeters <= f.accuracyLimit {
			good = append(good, entry.fix)
		}
	}

	now := f.now()

	if len(good) == 0 {
		best := f.window[0].fix
		for _, entry := range f.window[1:] {
			if entry.fix.AccuracyMeters < best.AccuracyMeters {
				best = entry.fix
			}
		}
		return &models.FilteredPosition{
			Latitude:       best.Latitude,
			Longitude:      best.Longitude,
			AccuracyMeters: best.AccuracyMeters,
			Timestamp:      now,
		}
	}

	var sumLat, sumLng, sumWeight float64
	bestAccuracy := good[0].AccuracyMeters
	for _, fix := range good {
		weight := 1.0 / (fix.AccuracyMeters + 1.0)
		sumLat += fix.Latitude * weight
		sumLng += fix.Longitude * weight
		sumWeight += weight
		if fix.AccuracyMeters < bestAccuracy {
			bestAccuracy = fix.AccuracyMeters
		}
	}

	return &models.FilteredPosition{
		Latitude:       sumLat / sumWeight,
		Longitude:      sumLng / sumWeight,
		AccuracyMeters: bestAccuracy,
		Timestamp:      now,
	}
}

// AccuracyQuality classifies the current filtered position
func (f *ReadingFilter) AccuracyQuality() models.AccuracyQuality {
	pos := f.FilteredPosition()
	if pos == nil {
		return models.QualityUnknown
	}
	return QualityForAccuracy(pos.AccuracyMeters)
}

// QualityForAccuracy maps an accuracy radius in meters to a quality label
func QualityForAccuracy(accuracyMeters float64) models.AccuracyQuality {
	switch {
	case accuracyMeters < excellentAccuracyM:
		return models.QualityExcellent
	case accuracyMeters < goodAccuracyM:
		return models.QualityGood
	case accuracyMeters < fairAccuracyM:
		return models.QualityFair
	default:
		return models.QualityPoor
	}
}
