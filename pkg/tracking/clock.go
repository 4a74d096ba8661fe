package tracking

import "time"

// Clock abstracts the frame timestamp source so calibration and blink
// timing are testable without real-time delays.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

// SystemClock returns a Clock backed by time.Now.
func SystemClock() Clock { return systemClock{} }
