// Package tracking orchestrates the per-frame gaze pipeline: landmark
// geometry, blink detection, calibration, and cursor mapping.
//
// The Processor is frame-synchronous. Each detection result is processed
// to completion before the next; all pipeline state is mutated only inside
// Process, which callers must invoke from a single goroutine (hand frames
// off through a single-consumer channel if the producer runs elsewhere).
package tracking

import (
	"sync"

	"github.com/teslashibe/go-gaze/pkg/blink"
	"github.com/teslashibe/go-gaze/pkg/calibration"
	"github.com/teslashibe/go-gaze/pkg/cursor"
	"github.com/teslashibe/go-gaze/pkg/gaze"
	"github.com/teslashibe/go-gaze/pkg/landmark"
)

// Snapshot is the render-ready pipeline state emitted once per frame.
// During calibration X/Y carry the fixation target; afterwards the cursor.
type Snapshot struct {
	Stage         string  `json:"stage"`
	Calibrating   bool    `json:"calibrating"`
	X             float64 `json:"x"`
	Y             float64 `json:"y"`
	Instruction   string  `json:"instruction,omitempty"`
	ClickActive   bool    `json:"click_active"`
	BlinkProgress float64 `json:"blink_progress"`
}

// Processor runs the gaze pipeline over a frame stream.
type Processor struct {
	clock     Clock
	extractor gaze.Extractor
	resolver  *landmark.BlinkResolver

	blink       *blink.Detector
	calibration *calibration.Controller
	cursor      *cursor.Tracker

	mu   sync.RWMutex
	last Snapshot
}

// New creates a processor with the corner-ratio extractor and the system
// clock.
func New(cfg Config) *Processor {
	p := &Processor{
		clock:       SystemClock(),
		extractor:   gaze.CornerRatio{},
		resolver:    landmark.NewBlinkResolver(),
		blink:       blink.New(cfg.Blink),
		calibration: calibration.New(cfg.Calibration),
		cursor:      cursor.New(cfg.Cursor),
	}
	p.last = Snapshot{
		Stage:       p.calibration.Stage().String(),
		Calibrating: true,
		Instruction: p.calibration.Instruction(),
	}
	return p
}

// SetClock replaces the timestamp source. Call before processing frames.
func (p *Processor) SetClock(c Clock) {
	p.clock = c
}

// SetExtractor swaps the gaze extraction strategy. Call before processing
// frames; mixing strategies mid-calibration corrupts the recorded range.
func (p *Processor) SetExtractor(e gaze.Extractor) {
	p.extractor = e
}

// Process runs one frame through the pipeline and returns the snapshot.
//
// An empty frame, or one missing the eye landmarks, changes nothing: the
// previous snapshot persists and no pipeline state moves. Dropped or noisy
// frames are best-effort signal, never errors.
func (p *Processor) Process(frame *landmark.Frame, shapes landmark.Blendshapes, viewportW, viewportH float64) Snapshot {
	p.mu.Lock()
	defer p.mu.Unlock()

	if frame.Empty() {
		return p.last
	}
	sample, ok := p.extractor.Extract(frame)
	if !ok {
		return p.last
	}

	now := p.clock.Now()
	p.blink.Update(p.resolver.BlinkScore(shapes), now)

	var snap Snapshot
	if !p.calibration.Finished() {
		p.calibration.Tick(sample, now)
		x, y := p.calibration.Target(viewportW, viewportH)
		snap = Snapshot{
			Stage:       p.calibration.Stage().String(),
			Calibrating: !p.calibration.Finished(),
			X:           x,
			Y:           y,
			Instruction: p.calibration.Instruction(),
		}
	} else {
		pos := p.cursor.Update(sample, p.calibration.Rect(), viewportW, viewportH)
		snap = Snapshot{
			Stage: p.calibration.Stage().String(),
			X:     pos.X,
			Y:     pos.Y,
		}
	}

	snap.ClickActive = p.blink.ClickActive()
	snap.BlinkProgress = p.blink.HoldProgress(now)

	p.last = snap
	return snap
}

// Snapshot returns the last emitted snapshot.
func (p *Processor) Snapshot() Snapshot {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.last
}

// Calibrating reports whether the calibration protocol is still running.
func (p *Processor) Calibrating() bool {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return !p.calibration.Finished()
}

// Clear resets calibration, cursor, and blink state to initial values.
// Safe to call only between frames.
func (p *Processor) Clear() {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.calibration.Reset()
	p.cursor.Reset()
	p.blink.Reset()
	p.last = Snapshot{
		Stage:       p.calibration.Stage().String(),
		Calibrating: true,
		Instruction: p.calibration.Instruction(),
	}
}
