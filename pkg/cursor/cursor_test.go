package cursor

import (
	"math"
	"testing"

	"github.com/teslashibe/go-gaze/pkg/calibration"
	"github.com/teslashibe/go-gaze/pkg/gaze"
)

var testRect = calibration.Rect{MinX: 0.2, MaxX: 0.8, MinY: 0.3, MaxY: 0.7}

func TestTracker_CenterMapping(t *testing.T) {
	tr := New(DefaultConfig())

	// Gaze at the center of the calibrated range, 800x600 viewport:
	// normX = normY = 0.5, X mirrored to (1-0.5)*800
	pos := tr.Update(gaze.Sample{X: 0.5, Y: 0.5}, testRect, 800, 600)
	if math.Abs(pos.X-400) > 1e-9 {
		t.Errorf("X = %v, want 400", pos.X)
	}
	if math.Abs(pos.Y-300) > 1e-9 {
		t.Errorf("Y = %v, want 300", pos.Y)
	}
}

func TestTracker_MirroredX(t *testing.T) {
	tr := New(DefaultConfig())
	tr.Update(gaze.Sample{X: 0.5, Y: 0.5}, testRect, 800, 600)

	// Gaze signal at the high end of the range maps to the left edge
	for i := 0; i < 200; i++ {
		tr.Update(gaze.Sample{X: 0.8, Y: 0.5}, testRect, 800, 600)
	}
	if pos := tr.Position(); pos.X > 10 {
		t.Errorf("X = %v, want near 0 (mirrored)", pos.X)
	}
}

func TestTracker_NormBounds(t *testing.T) {
	tr := New(DefaultConfig())

	// Gaze far outside the calibrated range clamps to NormHigh, not to
	// an arbitrary off-screen position
	pos := tr.Update(gaze.Sample{X: 100, Y: 100}, testRect, 800, 600)

	wantX := (1 - tr.NormHigh) * 800
	wantY := tr.NormHigh * 600
	if math.Abs(pos.X-wantX) > 1e-9 {
		t.Errorf("X = %v, want %v", pos.X, wantX)
	}
	if math.Abs(pos.Y-wantY) > 1e-9 {
		t.Errorf("Y = %v, want %v", pos.Y, wantY)
	}
}

func TestTracker_Convergence(t *testing.T) {
	tr := New(DefaultConfig())

	// Establish a position, then feed a new fixed sample repeatedly:
	// the cursor must converge monotonically toward the target
	tr.Update(gaze.Sample{X: 0.2, Y: 0.3}, testRect, 800, 600)

	target := gaze.Sample{X: 0.5, Y: 0.5}
	lastDist := math.Inf(1)
	for i := 0; i < 100; i++ {
		pos := tr.Update(target, testRect, 800, 600)
		dist := math.Hypot(pos.X-400, pos.Y-300)
		if dist > lastDist+1e-9 {
			t.Fatalf("distance increased at step %d: %v -> %v", i, lastDist, dist)
		}
		lastDist = dist
	}

	if lastDist > 1 {
		t.Errorf("cursor did not converge: still %v px away", lastDist)
	}
}

func TestTracker_AdaptiveAlphaBounds(t *testing.T) {
	tr := New(DefaultConfig())
	tr.Update(gaze.Sample{X: 0.5, Y: 0.5}, testRect, 800, 600)
	start := tr.Position()

	// Tiny displacement: the step must be damped by MinAlpha
	tr.Update(gaze.Sample{X: 0.502, Y: 0.5}, testRect, 800, 600)
	smallStep := math.Abs(tr.Position().X - start.X)

	tr2 := New(DefaultConfig())
	tr2.Update(gaze.Sample{X: 0.5, Y: 0.5}, testRect, 800, 600)

	// Large displacement: the step is bounded by MaxAlpha
	tr2.Update(gaze.Sample{X: 0.8, Y: 0.7}, testRect, 800, 600)
	largeStep := math.Hypot(tr2.Position().X-start.X, tr2.Position().Y-start.Y)

	smallTarget := math.Abs(0.002/0.6) * 800
	if smallStep > smallTarget*tr.MinAlpha+1e-6 {
		t.Errorf("small step %v exceeds MinAlpha damping", smallStep)
	}

	// Sample (0.8, 0.7) normalizes to (1, 1): target (0, 600)
	largeTarget := math.Hypot(400, 300)
	if largeStep > largeTarget*tr2.MaxAlpha+1e-6 {
		t.Errorf("large step %v exceeds MaxAlpha bound", largeStep)
	}
	if largeStep < largeTarget*tr2.MinAlpha {
		t.Errorf("large step %v below MinAlpha bound", largeStep)
	}
}

func TestTracker_DegenerateRect(t *testing.T) {
	tr := New(DefaultConfig())

	// Zero-width calibration axes must not produce NaN/Inf
	rect := calibration.Rect{MinX: 0.5, MaxX: 0.5, MinY: 0.4, MaxY: 0.4}
	for i := 0; i < 5; i++ {
		pos := tr.Update(gaze.Sample{X: 0.5, Y: 0.4}, rect, 800, 600)
		if math.IsNaN(pos.X) || math.IsInf(pos.X, 0) || math.IsNaN(pos.Y) || math.IsInf(pos.Y, 0) {
			t.Fatalf("non-finite position: %+v", pos)
		}
	}
}

func TestTracker_Reset(t *testing.T) {
	tr := New(DefaultConfig())
	tr.Update(gaze.Sample{X: 0.5, Y: 0.5}, testRect, 800, 600)
	tr.Reset()

	if tr.Position() != (Position{}) {
		t.Errorf("position after reset = %+v, want zero", tr.Position())
	}

	// Next update snaps again instead of smoothing from the zero value
	pos := tr.Update(gaze.Sample{X: 0.5, Y: 0.5}, testRect, 800, 600)
	if math.Abs(pos.X-400) > 1e-9 || math.Abs(pos.Y-300) > 1e-9 {
		t.Errorf("first update after reset = %+v, want (400, 300)", pos)
	}
}
