// Package gaze derives a per-frame gaze signal from face landmarks.
//
// The signal is in arbitrary units, not pixels: calibration later maps the
// observed signal range onto the screen. Two extraction strategies are
// provided. CornerRatio projects the iris onto the eye-corner axis, which
// is robust to head rotation and translation. RawIris uses the raw iris
// coordinates and is kept for comparison and tuning.
package gaze

import (
	"math"

	"github.com/teslashibe/go-gaze/pkg/landmark"
)

// Sample is one frame's derived gaze signal.
type Sample struct {
	X float64
	Y float64
}

// Extractor converts a landmark frame into a gaze sample.
// Implementations are pure: no state is retained across frames.
type Extractor interface {
	// Extract returns the gaze sample and whether the frame carried the
	// landmarks needed to compute one.
	Extract(frame *landmark.Frame) (Sample, bool)
}

// minCornerSpan keeps the ratio denominator away from zero when detection
// collapses both corners onto the same x coordinate.
const minCornerSpan = 1e-6

// CornerRatio extracts gaze as the iris position relative to the eye
// corners, averaged across both eyes. X is the corner-relative projection;
// Y is the raw iris vertical coordinate, deliberately not corner-relative
// because eyelid motion during blinks destabilizes a ratio-based Y.
type CornerRatio struct{}

// Extract implements Extractor.
func (CornerRatio) Extract(frame *landmark.Frame) (Sample, bool) {
	rx, ry, ok := eyeRatio(frame, landmark.RightEye)
	if !ok {
		return Sample{}, false
	}
	lx, ly, ok := eyeRatio(frame, landmark.LeftEye)
	if !ok {
		return Sample{}, false
	}
	return Sample{X: (rx + lx) / 2, Y: (ry + ly) / 2}, true
}

// eyeRatio computes one eye's corner-relative horizontal ratio and raw
// vertical coordinate.
func eyeRatio(frame *landmark.Frame, eye landmark.EyeIndices) (x, y float64, ok bool) {
	c0, ok0 := frame.At(eye.CornerLeft)
	c1, ok1 := frame.At(eye.CornerRight)
	iris, ok2 := frame.At(eye.Iris)
	if !ok0 || !ok1 || !ok2 {
		return 0, 0, false
	}

	span := c1.X - c0.X
	if math.Abs(span) < minCornerSpan {
		// Degenerate corner geometry from a bad detection. Clamp the
		// denominator so the result stays finite; calibration absorbs
		// the distortion.
		if span < 0 {
			span = -minCornerSpan
		} else {
			span = minCornerSpan
		}
	}

	return (iris.X - c0.X) / span, iris.Y, true
}

// RawIris extracts gaze as the raw averaged iris position. Simpler than
// CornerRatio but sensitive to head movement.
type RawIris struct{}

// Extract implements Extractor.
func (RawIris) Extract(frame *landmark.Frame) (Sample, bool) {
	r, okR := frame.At(landmark.RightIrisCenter)
	l, okL := frame.At(landmark.LeftIrisCenter)
	if !okR || !okL {
		return Sample{}, false
	}
	return Sample{X: (r.X + l.X) / 2, Y: (r.Y + l.Y) / 2}, true
}
