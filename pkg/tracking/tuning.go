package tracking

import "time"

// TuningParams holds the real-time adjustable pipeline parameters.
// These can be modified via the tuning API without restarting the daemon.
type TuningParams struct {
	// Blink
	BlinkThreshold float64 `json:"blink_threshold"`
	HoldDurationMs int64   `json:"hold_duration_ms"`

	// Cursor smoothing
	MinAlpha          float64 `json:"min_alpha"`
	MaxAlpha          float64 `json:"max_alpha"`
	ReferenceDistance float64 `json:"reference_distance"`

	// Calibration
	StageDurationMs int64   `json:"stage_duration_ms"`
	TargetPadding   float64 `json:"target_padding"`
}

// GetTuningParams returns current tuning parameters from the processor.
func (p *Processor) GetTuningParams() TuningParams {
	p.mu.RLock()
	defer p.mu.RUnlock()

	return TuningParams{
		BlinkThreshold:    p.blink.Threshold,
		HoldDurationMs:    p.blink.HoldDuration.Milliseconds(),
		MinAlpha:          p.cursor.MinAlpha,
		MaxAlpha:          p.cursor.MaxAlpha,
		ReferenceDistance: p.cursor.ReferenceDistance,
		StageDurationMs:   p.calibration.StageDuration.Milliseconds(),
		TargetPadding:     p.calibration.TargetPadding,
	}
}

// SetTuningParams updates tuning parameters at runtime.
// Only positive values are applied.
func (p *Processor) SetTuningParams(params TuningParams) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if params.BlinkThreshold > 0 {
		p.blink.Threshold = clampParam(params.BlinkThreshold, 0, 1)
	}
	if params.HoldDurationMs > 0 {
		p.blink.HoldDuration = time.Duration(params.HoldDurationMs) * time.Millisecond
	}
	if params.MinAlpha > 0 {
		p.cursor.MinAlpha = clampParam(params.MinAlpha, 0, 1)
	}
	if params.MaxAlpha > 0 {
		p.cursor.MaxAlpha = clampParam(params.MaxAlpha, p.cursor.MinAlpha, 1)
	}
	if params.ReferenceDistance > 0 {
		p.cursor.ReferenceDistance = params.ReferenceDistance
	}
	if params.StageDurationMs > 0 {
		p.calibration.StageDuration = time.Duration(params.StageDurationMs) * time.Millisecond
	}
	if params.TargetPadding > 0 {
		p.calibration.TargetPadding = params.TargetPadding
	}
}

// clampParam limits a value to a range
func clampParam(value, min, max float64) float64 {
	if value < min {
		return min
	}
	if value > max {
		return max
	}
	return value
}
