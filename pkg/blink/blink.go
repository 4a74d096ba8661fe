// Package blink detects sustained eye closure and turns it into a
// dwell-style click signal.
package blink

import "time"

// Config holds the blink detection thresholds.
type Config struct {
	// Threshold is the blendshape score above which the eyes count as
	// closed. No hysteresis: the same threshold opens and closes.
	Threshold float64

	// HoldDuration is how long the eyes must stay closed before the
	// click activates.
	HoldDuration time.Duration
}

// DefaultConfig returns the recommended blink thresholds.
func DefaultConfig() Config {
	return Config{
		Threshold:    0.55,
		HoldDuration: 800 * time.Millisecond,
	}
}

// Detector tracks eye closure across frames. Two states per blink episode:
// open, and holding with a timer running. The click flag latches while the
// hold exceeds HoldDuration and clears the instant the eyes reopen.
type Detector struct {
	// Tunable at runtime.
	Threshold    float64
	HoldDuration time.Duration

	blinking    bool
	blinkStart  time.Time
	clickActive bool
}

// New creates a detector from config.
func New(cfg Config) *Detector {
	return &Detector{
		Threshold:    cfg.Threshold,
		HoldDuration: cfg.HoldDuration,
	}
}

// Update advances the detector with this frame's blink score.
// Releasing the eyes cancels both flags the same frame; the click is an
// instantaneous hold, not a sticky toggle.
func (d *Detector) Update(score float64, now time.Time) {
	if score > d.Threshold {
		if !d.blinking {
			d.blinking = true
			d.blinkStart = now
			return
		}
		if now.Sub(d.blinkStart) > d.HoldDuration {
			d.clickActive = true
		}
		return
	}

	d.blinking = false
	d.clickActive = false
}

// Blinking reports whether the eyes are currently closed.
func (d *Detector) Blinking() bool {
	return d.blinking
}

// ClickActive reports whether the hold has lasted past HoldDuration.
func (d *Detector) ClickActive() bool {
	return d.clickActive
}

// HoldProgress returns how far the current hold is toward activating the
// click, in [0,1]. Zero when the eyes are open. Renderers use this for a
// dwell progress indicator.
func (d *Detector) HoldProgress(now time.Time) float64 {
	if !d.blinking || d.HoldDuration <= 0 {
		return 0
	}
	progress := float64(now.Sub(d.blinkStart)) / float64(d.HoldDuration)
	if progress < 0 {
		return 0
	}
	if progress > 1 {
		return 1
	}
	return progress
}

// Reset returns the detector to the open state.
func (d *Detector) Reset() {
	d.blinking = false
	d.clickActive = false
	d.blinkStart = time.Time{}
}
