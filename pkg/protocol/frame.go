package protocol

import "github.com/teslashibe/go-gaze/pkg/landmark"

// FrameData is one detection result from the landmark producer. An empty
// Landmarks list means detection failed this frame; Blendshapes may be
// absent independently.
type FrameData struct {
	Landmarks   []landmark.Point     `json:"landmarks"`
	Blendshapes landmark.Blendshapes `json:"blendshapes,omitempty"`

	// Render surface size at capture time, in pixels.
	ViewportWidth  float64 `json:"viewport_width"`
	ViewportHeight float64 `json:"viewport_height"`

	FrameID uint64 `json:"frame_id,omitempty"`
}

// Frame converts the payload into a landmark frame for the engine.
func (f *FrameData) Frame() *landmark.Frame {
	return &landmark.Frame{Points: f.Landmarks}
}

// ClearData requests a pipeline reset. Empty for now; a payload slot keeps
// the message forward-compatible.
type ClearData struct{}
