package landmark

// Blendshape is a single face-expression category score in [0,1].
type Blendshape struct {
	Name  string  `json:"name,omitempty"`
	Score float64 `json:"score"`
}

// Blendshapes is the per-frame expression score list. Nil or short lists
// mean detection failed this frame; scores are then treated as zero.
type Blendshapes []Blendshape

// Positional fallback indices for the eye-blink categories, matching the
// default FaceLandmarker blendshape ordering.
const (
	eyeBlinkLeftIndex  = 9
	eyeBlinkRightIndex = 10
)

// Blendshape category names for eye closure.
const (
	EyeBlinkLeft  = "eyeBlinkLeft"
	EyeBlinkRight = "eyeBlinkRight"
)

// BlinkResolver locates the two eye-blink categories in a blendshape list.
// Resolution by name happens once, on the first categorized list seen, and
// falls back to the documented positional indices when names are absent.
type BlinkResolver struct {
	left     int
	right    int
	resolved bool
}

// NewBlinkResolver creates a resolver with unresolved indices.
func NewBlinkResolver() *BlinkResolver {
	return &BlinkResolver{left: eyeBlinkLeftIndex, right: eyeBlinkRightIndex}
}

// BlinkScore returns the averaged left/right eye-blink score for the frame.
// A nil or short list yields 0 (eyes open).
func (r *BlinkResolver) BlinkScore(shapes Blendshapes) float64 {
	if len(shapes) == 0 {
		return 0
	}
	if !r.resolved {
		r.resolve(shapes)
	}
	return (scoreAt(shapes, r.left) + scoreAt(shapes, r.right)) / 2
}

// resolve scans the list for named blink categories. Unnamed lists keep the
// positional fallback but still mark resolution done, so the scan runs once
// per model load rather than every frame.
func (r *BlinkResolver) resolve(shapes Blendshapes) {
	for i, s := range shapes {
		switch s.Name {
		case EyeBlinkLeft:
			r.left = i
		case EyeBlinkRight:
			r.right = i
		}
	}
	r.resolved = true
}

func scoreAt(shapes Blendshapes, i int) float64 {
	if i < 0 || i >= len(shapes) {
		return 0
	}
	return shapes[i].Score
}
