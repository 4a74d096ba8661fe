// Package landmark defines the face-landmark input contract for the gaze engine.
// Coordinates follow the MediaPipe FaceMesh convention: normalized [0,1],
// image-relative, origin at the top-left corner.
package landmark

// FaceMesh landmark indices for the eye region. Left/right are anatomical
// (the subject's left eye appears on the right side of a frontal image).
const (
	RightEyeOuterCorner = 33
	RightEyeInnerCorner = 133
	LeftEyeInnerCorner  = 362
	LeftEyeOuterCorner  = 263
	RightIrisCenter     = 468
	LeftIrisCenter      = 473

	// MeshSize is the landmark count of the FaceMesh model with iris refinement.
	MeshSize = 478
)

// Point is a single landmark in normalized image coordinates.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
}

// Frame holds one detection result's landmarks. It is owned by the caller,
// read-only to the engine, and valid for a single frame only.
type Frame struct {
	Points []Point
}

// Empty reports whether the frame carries no detections.
func (f *Frame) Empty() bool {
	return f == nil || len(f.Points) == 0
}

// At returns the landmark at index i and whether it exists.
func (f *Frame) At(i int) (Point, bool) {
	if f == nil || i < 0 || i >= len(f.Points) {
		return Point{}, false
	}
	return f.Points[i], true
}

// EyeIndices groups the landmark indices for one eye. CornerLeft and
// CornerRight are ordered by image x rather than by anatomy, so the
// corner-relative iris ratio grows in the same screen direction for both
// eyes and the two ratios do not cancel when averaged.
type EyeIndices struct {
	CornerLeft  int
	CornerRight int
	Iris        int
}

// Eye index sets for the two eyes.
var (
	RightEye = EyeIndices{CornerLeft: RightEyeOuterCorner, CornerRight: RightEyeInnerCorner, Iris: RightIrisCenter}
	LeftEye  = EyeIndices{CornerLeft: LeftEyeInnerCorner, CornerRight: LeftEyeOuterCorner, Iris: LeftIrisCenter}
)
