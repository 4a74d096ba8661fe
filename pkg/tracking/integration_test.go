package tracking

import (
	"math"
	"testing"
	"time"
)

// TestPipeline_CalibrateTrackClick runs a full synthetic session:
// five-point calibration, cursor tracking across the calibrated range,
// and a blink-hold click.
func TestPipeline_CalibrateTrackClick(t *testing.T) {
	p := New(DefaultConfig())
	clock := newFakeClock()
	p.SetClock(clock)

	calibrate(p, clock)
	if p.Calibrating() {
		t.Fatalf("calibration not finished, stage = %v", p.Snapshot().Stage)
	}

	// Track: center of the calibrated range maps to the viewport center
	var snap Snapshot
	for i := 0; i < 100; i++ {
		clock.Advance(33 * time.Millisecond)
		snap = p.Process(meshFrame(0.5, 0.40), nil, 800, 600)
	}
	if snap.Calibrating {
		t.Fatal("still calibrating during tracking phase")
	}
	if math.Abs(snap.X-400) > 5 || math.Abs(snap.Y-300) > 5 {
		t.Errorf("cursor = (%v, %v), want near (400, 300)", snap.X, snap.Y)
	}

	// Gaze toward the high end of the X range: mirrored to screen-left
	for i := 0; i < 200; i++ {
		clock.Advance(33 * time.Millisecond)
		snap = p.Process(meshFrame(0.8, 0.40), nil, 800, 600)
	}
	if snap.X > 50 {
		t.Errorf("cursor X = %v, want near the left edge", snap.X)
	}

	// Blink-hold click
	hold := DefaultConfig().Blink.HoldDuration
	snap = p.Process(meshFrame(0.8, 0.40), blinkShapes(1.0), 800, 600)
	if snap.ClickActive {
		t.Error("click active on the first closed frame")
	}

	clock.Advance(hold / 2)
	snap = p.Process(meshFrame(0.8, 0.40), blinkShapes(1.0), 800, 600)
	if snap.ClickActive {
		t.Error("click active before the hold duration")
	}
	if snap.BlinkProgress < 0.4 || snap.BlinkProgress > 0.6 {
		t.Errorf("BlinkProgress = %v, want ~0.5", snap.BlinkProgress)
	}

	clock.Advance(hold/2 + time.Millisecond)
	snap = p.Process(meshFrame(0.8, 0.40), blinkShapes(1.0), 800, 600)
	if !snap.ClickActive {
		t.Error("click not active after the hold duration")
	}
	if snap.BlinkProgress != 1 {
		t.Errorf("BlinkProgress = %v, want 1", snap.BlinkProgress)
	}

	// Opening the eyes cancels the click on the very next frame
	clock.Advance(33 * time.Millisecond)
	snap = p.Process(meshFrame(0.8, 0.40), blinkShapes(0.0), 800, 600)
	if snap.ClickActive {
		t.Error("click still active after eyes opened")
	}
	if snap.BlinkProgress != 0 {
		t.Errorf("BlinkProgress = %v, want 0", snap.BlinkProgress)
	}
}

// TestPipeline_BlinkDuringCalibration checks that blink state is tracked
// during calibration too, so the UI can show hold progress at any time.
func TestPipeline_BlinkDuringCalibration(t *testing.T) {
	p := New(DefaultConfig())
	clock := newFakeClock()
	p.SetClock(clock)

	hold := DefaultConfig().Blink.HoldDuration
	p.Process(meshFrame(0.5, 0.40), blinkShapes(1.0), 800, 600)
	clock.Advance(hold + time.Millisecond)
	snap := p.Process(meshFrame(0.5, 0.40), blinkShapes(1.0), 800, 600)

	if !snap.Calibrating {
		t.Fatal("expected still calibrating")
	}
	if !snap.ClickActive {
		t.Error("click should activate during calibration as well")
	}
}
