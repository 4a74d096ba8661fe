package blink

import (
	"testing"
	"time"
)

func TestDetector_ClickAfterHold(t *testing.T) {
	d := New(DefaultConfig())
	t0 := time.Unix(1000, 0)

	// Eyes close
	d.Update(1.0, t0)
	if !d.Blinking() {
		t.Error("expected blinking after score above threshold")
	}
	if d.ClickActive() {
		t.Error("click must not activate before the hold duration")
	}

	// Still held, just past the hold duration
	d.Update(1.0, t0.Add(d.HoldDuration+time.Millisecond))
	if !d.ClickActive() {
		t.Error("expected click after hold duration + 1ms")
	}

	// Single open frame cancels immediately
	d.Update(0.0, t0.Add(d.HoldDuration+2*time.Millisecond))
	if d.Blinking() || d.ClickActive() {
		t.Error("release must clear blinking and click the same frame")
	}
}

func TestDetector_ReleaseBeforeHold(t *testing.T) {
	d := New(DefaultConfig())
	t0 := time.Unix(1000, 0)

	d.Update(1.0, t0)
	d.Update(1.0, t0.Add(d.HoldDuration/2))
	if d.ClickActive() {
		t.Error("click activated before hold duration")
	}

	d.Update(0.2, t0.Add(d.HoldDuration/2+time.Millisecond))
	if d.Blinking() {
		t.Error("expected open after score below threshold")
	}

	// A new blink restarts the timer from scratch
	d.Update(1.0, t0.Add(time.Second))
	d.Update(1.0, t0.Add(time.Second+d.HoldDuration/2))
	if d.ClickActive() {
		t.Error("new blink must not inherit the previous hold time")
	}
}

func TestDetector_ThresholdIsExclusive(t *testing.T) {
	d := New(DefaultConfig())
	d.Update(d.Threshold, time.Unix(1000, 0))
	if d.Blinking() {
		t.Error("score equal to threshold should count as open")
	}
}

func TestDetector_HoldProgress(t *testing.T) {
	d := New(DefaultConfig())
	t0 := time.Unix(1000, 0)

	if got := d.HoldProgress(t0); got != 0 {
		t.Errorf("progress while open = %v, want 0", got)
	}

	d.Update(1.0, t0)
	tests := []struct {
		name string
		at   time.Duration
		want float64
	}{
		{name: "at start", at: 0, want: 0},
		{name: "halfway", at: d.HoldDuration / 2, want: 0.5},
		{name: "complete", at: d.HoldDuration, want: 1},
		{name: "past complete clamps", at: 3 * d.HoldDuration, want: 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := d.HoldProgress(t0.Add(tt.at))
			if got < tt.want-0.01 || got > tt.want+0.01 {
				t.Errorf("HoldProgress() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestDetector_Reset(t *testing.T) {
	d := New(DefaultConfig())
	t0 := time.Unix(1000, 0)

	d.Update(1.0, t0)
	d.Update(1.0, t0.Add(d.HoldDuration+time.Millisecond))
	d.Reset()

	if d.Blinking() || d.ClickActive() {
		t.Error("Reset() must clear all state")
	}
	if got := d.HoldProgress(t0.Add(2 * d.HoldDuration)); got != 0 {
		t.Errorf("progress after reset = %v, want 0", got)
	}
}
