// Package calibration drives the five-point fixation protocol that bounds
// the usable gaze-signal range for a user.
//
// The user fixates the screen center and then the four corners. During each
// fixation the controller records the min/max of the gaze signal on both
// axes; the resulting rectangle is what cursor mapping normalizes against.
// Five points bound the per-user signal range, compensating for anatomical
// variation in eye shape and camera angle without a parametric eye model.
package calibration

import (
	"time"

	"github.com/teslashibe/go-gaze/pkg/gaze"
)

// Stage identifies the current calibration fixation target.
type Stage int

// Calibration stages in protocol order. StageFinished is terminal.
const (
	StageCenter Stage = iota
	StageTopLeft
	StageTopRight
	StageBottomRight
	StageBottomLeft
	StageFinished
)

// String returns the wire/display name of the stage.
func (s Stage) String() string {
	switch s {
	case StageCenter:
		return "center"
	case StageTopLeft:
		return "top_left"
	case StageTopRight:
		return "top_right"
	case StageBottomRight:
		return "bottom_right"
	case StageBottomLeft:
		return "bottom_left"
	case StageFinished:
		return "finished"
	}
	return "unknown"
}

// next returns the following stage. StageFinished has no transitions out.
func (s Stage) next() Stage {
	if s >= StageFinished {
		return StageFinished
	}
	return s + 1
}

// Rect is the bounding box of observed gaze signal, in signal units.
type Rect struct {
	MinX float64
	MaxX float64
	MinY float64
	MaxY float64
}

// Config holds the calibration protocol parameters.
type Config struct {
	// StageDuration is how long each fixation target is shown.
	StageDuration time.Duration

	// SettleFraction is the portion of the stage spent waiting for the
	// eye to settle on the target before samples are recorded. 0.5 means
	// only the second half of each stage is sampled.
	SettleFraction float64

	// TargetPadding insets the corner targets from the viewport edges,
	// in pixels. Render hint only.
	TargetPadding float64

	// RangeEpsilon widens a degenerate (zero-width) axis of the final
	// rect so downstream normalization never divides by zero.
	RangeEpsilon float64
}

// DefaultConfig returns the recommended calibration parameters.
func DefaultConfig() Config {
	return Config{
		StageDuration:  2500 * time.Millisecond,
		SettleFraction: 0.5,
		TargetPadding:  60,
		RangeEpsilon:   1e-3,
	}
}

// Controller runs the calibration state machine. It owns the stage and the
// rect exclusively; both change only inside Tick.
type Controller struct {
	// Tunable at runtime, before calibration finishes.
	StageDuration  time.Duration
	SettleFraction float64
	TargetPadding  float64
	RangeEpsilon   float64

	stage      Stage
	stageStart time.Time
	started    bool

	rect      Rect
	hasSample bool
}

// New creates a controller at StageCenter.
func New(cfg Config) *Controller {
	return &Controller{
		StageDuration:  cfg.StageDuration,
		SettleFraction: cfg.SettleFraction,
		TargetPadding:  cfg.TargetPadding,
		RangeEpsilon:   cfg.RangeEpsilon,
	}
}

// Stage returns the current stage.
func (c *Controller) Stage() Stage {
	return c.stage
}

// Finished reports whether calibration is complete and the rect is frozen.
func (c *Controller) Finished() bool {
	return c.stage == StageFinished
}

// Rect returns the calibration rectangle. Only meaningful once Finished;
// the returned rect is epsilon-corrected, so MaxX > MinX and MaxY > MinY.
func (c *Controller) Rect() Rect {
	return c.rect
}

// Tick advances the protocol with this frame's gaze sample.
//
// The first tick of a stage latches the stage timer. Samples are folded
// into the running min/max only once the settle window has passed, so the
// rect reflects fixation rather than the saccade toward the target. When
// the stage duration elapses the controller moves to the next stage; the
// transition frame's sample is not recorded.
func (c *Controller) Tick(s gaze.Sample, now time.Time) {
	if c.stage == StageFinished {
		return
	}

	if !c.started {
		c.stageStart = now
		c.started = true
	}

	elapsed := now.Sub(c.stageStart)
	if elapsed > c.StageDuration {
		c.stage = c.stage.next()
		c.started = false
		if c.stage == StageFinished {
			c.rect = c.corrected()
		}
		return
	}

	settleDelay := time.Duration(float64(c.StageDuration) * c.SettleFraction)
	if elapsed >= settleDelay {
		c.fold(s)
	}
}

// fold widens the rect to include the sample. The first sample initializes
// min and max on both axes so the recorded range is never biased by stale
// sentinel values.
func (c *Controller) fold(s gaze.Sample) {
	if !c.hasSample {
		c.rect = Rect{MinX: s.X, MaxX: s.X, MinY: s.Y, MaxY: s.Y}
		c.hasSample = true
		return
	}
	if s.X < c.rect.MinX {
		c.rect.MinX = s.X
	}
	if s.X > c.rect.MaxX {
		c.rect.MaxX = s.X
	}
	if s.Y < c.rect.MinY {
		c.rect.MinY = s.Y
	}
	if s.Y > c.rect.MaxY {
		c.rect.MaxY = s.Y
	}
}

// corrected returns the rect with degenerate axes widened by RangeEpsilon.
func (c *Controller) corrected() Rect {
	r := c.rect
	if r.MaxX <= r.MinX {
		r.MaxX = r.MinX + c.RangeEpsilon
	}
	if r.MaxY <= r.MinY {
		r.MaxY = r.MinY + c.RangeEpsilon
	}
	return r
}

// Reset returns the controller to StageCenter with an empty rect.
// Safe to call only between frames.
func (c *Controller) Reset() {
	c.stage = StageCenter
	c.started = false
	c.stageStart = time.Time{}
	c.rect = Rect{}
	c.hasSample = false
}
