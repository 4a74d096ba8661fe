package tracking

import (
	"time"

	"github.com/teslashibe/go-gaze/pkg/blink"
	"github.com/teslashibe/go-gaze/pkg/calibration"
	"github.com/teslashibe/go-gaze/pkg/cursor"
)

// Config holds all tunable parameters for the gaze pipeline.
type Config struct {
	Blink       blink.Config
	Calibration calibration.Config
	Cursor      cursor.Config
}

// DefaultConfig returns the recommended configuration for general use.
func DefaultConfig() Config {
	return Config{
		Blink:       blink.DefaultConfig(),
		Calibration: calibration.DefaultConfig(),
		Cursor:      cursor.DefaultConfig(),
	}
}

// SmoothConfig returns a configuration favoring cursor stability over
// responsiveness. Longer fixations, heavier damping, a longer click hold.
func SmoothConfig() Config {
	cfg := DefaultConfig()
	cfg.Calibration.StageDuration = 3 * time.Second
	cfg.Cursor.MaxAlpha = 0.35
	cfg.Blink.HoldDuration = time.Second
	return cfg
}

// ResponsiveConfig returns a configuration for fast tracking. More lag
// tolerance for jitter, quicker calibration and click.
func ResponsiveConfig() Config {
	cfg := DefaultConfig()
	cfg.Calibration.StageDuration = 2 * time.Second
	cfg.Cursor.MinAlpha = 0.1
	cfg.Cursor.MaxAlpha = 0.8
	cfg.Blink.HoldDuration = 600 * time.Millisecond
	return cfg
}

// Profile returns the named config: "smooth", "responsive", or the default
// for anything else.
func Profile(name string) Config {
	switch name {
	case "smooth":
		return SmoothConfig()
	case "responsive":
		return ResponsiveConfig()
	default:
		return DefaultConfig()
	}
}
