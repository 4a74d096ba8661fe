package protocol

import "github.com/teslashibe/go-gaze/pkg/landmark"

// NewFrameMessage creates a frame message from a detection result
func NewFrameMessage(points []landmark.Point, shapes landmark.Blendshapes, viewportW, viewportH float64, frameID uint64) (*Message, error) {
	return NewMessage(TypeFrame, FrameData{
		Landmarks:      points,
		Blendshapes:    shapes,
		ViewportWidth:  viewportW,
		ViewportHeight: viewportH,
		FrameID:        frameID,
	})
}

// NewClearMessage creates a pipeline reset request
func NewClearMessage() (*Message, error) {
	return NewMessage(TypeClear, ClearData{})
}

// NewPingMessage creates a ping message
func NewPingMessage() (*Message, error) {
	return NewMessage(TypePing, nil)
}

// NewPongMessage creates a pong response message
func NewPongMessage() (*Message, error) {
	return NewMessage(TypePong, nil)
}

// GetFrameData extracts frame data from a message
func (m *Message) GetFrameData() (*FrameData, error) {
	var data FrameData
	if err := m.ParseData(&data); err != nil {
		return nil, err
	}
	return &data, nil
}
