// Package cursor maps calibrated gaze samples to screen coordinates with
// distance-adaptive smoothing.
package cursor

import (
	"math"

	"github.com/teslashibe/go-gaze/pkg/calibration"
	"github.com/teslashibe/go-gaze/pkg/gaze"
)

// Config holds the mapping and smoothing parameters.
type Config struct {
	// NormLow/NormHigh bound the normalized gaze position. Slightly
	// outside [0,1] so the cursor can reach the screen edges without
	// perfect calibration coverage.
	NormLow  float64
	NormHigh float64

	// ReferenceDistance scales displacement into a smoothing gain, in
	// pixels. A frame-to-frame jump of this size would get MaxAlpha.
	ReferenceDistance float64

	// MinAlpha/MaxAlpha bound the exponential filter gain.
	MinAlpha float64
	MaxAlpha float64

	// RangeEpsilon guards against a degenerate calibration axis.
	RangeEpsilon float64
}

// DefaultConfig returns the recommended mapping parameters.
func DefaultConfig() Config {
	return Config{
		NormLow:           -0.1,
		NormHigh:          1.1,
		ReferenceDistance: 300,
		MinAlpha:          0.05,
		MaxAlpha:          0.6,
		RangeEpsilon:      1e-3,
	}
}

// Position is a cursor position in screen pixels.
type Position struct {
	X float64
	Y float64
}

// Tracker owns the smoothed cursor position. The position persists across
// frames and changes only through Update; Reset clears it.
//
// Smoothing is a single-pole exponential filter whose gain depends on the
// instantaneous displacement: small jittery deltas are heavily damped for
// fine pointing stability, large intentional movements track with low lag.
type Tracker struct {
	// Tunable at runtime.
	NormLow           float64
	NormHigh          float64
	ReferenceDistance float64
	MinAlpha          float64
	MaxAlpha          float64
	RangeEpsilon      float64

	pos         Position
	initialized bool
}

// New creates a tracker from config.
func New(cfg Config) *Tracker {
	return &Tracker{
		NormLow:           cfg.NormLow,
		NormHigh:          cfg.NormHigh,
		ReferenceDistance: cfg.ReferenceDistance,
		MinAlpha:          cfg.MinAlpha,
		MaxAlpha:          cfg.MaxAlpha,
		RangeEpsilon:      cfg.RangeEpsilon,
	}
}

// Position returns the current cursor position.
func (t *Tracker) Position() Position {
	return t.pos
}

// Update maps the gaze sample through the calibration rect into screen
// pixels and folds it into the smoothed position. X is mirrored: with a
// frontal camera, gazing left moves the cursor left. Output is always
// finite.
func (t *Tracker) Update(s gaze.Sample, rect calibration.Rect, viewportW, viewportH float64) Position {
	maxX := rect.MaxX
	if maxX <= rect.MinX {
		maxX = rect.MinX + t.RangeEpsilon
	}
	maxY := rect.MaxY
	if maxY <= rect.MinY {
		maxY = rect.MinY + t.RangeEpsilon
	}

	normX := clamp((s.X-rect.MinX)/(maxX-rect.MinX), t.NormLow, t.NormHigh)
	normY := clamp((s.Y-rect.MinY)/(maxY-rect.MinY), t.NormLow, t.NormHigh)

	target := Position{
		X: (1 - normX) * viewportW,
		Y: normY * viewportH,
	}

	// First frame after calibration: snap rather than crawl in from the
	// zero value.
	if !t.initialized {
		t.pos = target
		t.initialized = true
		return t.pos
	}

	distance := math.Hypot(target.X-t.pos.X, target.Y-t.pos.Y)
	alpha := clamp(distance/t.ReferenceDistance, t.MinAlpha, t.MaxAlpha)

	t.pos.X += (target.X - t.pos.X) * alpha
	t.pos.Y += (target.Y - t.pos.Y) * alpha
	return t.pos
}

// Reset clears the cursor position.
func (t *Tracker) Reset() {
	t.pos = Position{}
	t.initialized = false
}

// clamp limits a value to a range
func clamp(value, min, max float64) float64 {
	if value < min {
		return min
	}
	if value > max {
		return max
	}
	return value
}
