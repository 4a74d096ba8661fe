package landmark

import (
	"math"
	"testing"
)

func TestBlinkResolver_NamedCategories(t *testing.T) {
	// Blink categories deliberately placed away from the positional
	// fallback indices
	shapes := make(Blendshapes, 15)
	shapes[3] = Blendshape{Name: EyeBlinkLeft, Score: 0.8}
	shapes[12] = Blendshape{Name: EyeBlinkRight, Score: 0.4}

	r := NewBlinkResolver()
	got := r.BlinkScore(shapes)
	want := 0.6
	if math.Abs(got-want) > 1e-9 {
		t.Errorf("BlinkScore() = %v, want %v", got, want)
	}

	// Resolution is cached: moving the names afterwards must not matter
	shapes[3].Score = 1.0
	shapes[12].Score = 1.0
	got = r.BlinkScore(shapes)
	if math.Abs(got-1.0) > 1e-9 {
		t.Errorf("BlinkScore() after cache = %v, want 1.0", got)
	}
}

func TestBlinkResolver_PositionalFallback(t *testing.T) {
	// Unnamed list: indices 9 and 10 are the blink scores
	shapes := make(Blendshapes, 12)
	shapes[9] = Blendshape{Score: 1.0}
	shapes[10] = Blendshape{Score: 0.5}

	r := NewBlinkResolver()
	got := r.BlinkScore(shapes)
	want := 0.75
	if math.Abs(got-want) > 1e-9 {
		t.Errorf("BlinkScore() = %v, want %v", got, want)
	}
}

func TestBlinkResolver_MissingScores(t *testing.T) {
	tests := []struct {
		name   string
		shapes Blendshapes
	}{
		{name: "nil list", shapes: nil},
		{name: "empty list", shapes: Blendshapes{}},
		{name: "short list", shapes: make(Blendshapes, 5)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := NewBlinkResolver()
			if got := r.BlinkScore(tt.shapes); got != 0 {
				t.Errorf("BlinkScore() = %v, want 0 (eyes open)", got)
			}
		})
	}
}

func TestFrame_At(t *testing.T) {
	f := &Frame{Points: []Point{{X: 0.1}, {X: 0.2}}}

	if _, ok := f.At(2); ok {
		t.Error("At() out of range should report not ok")
	}
	if _, ok := f.At(-1); ok {
		t.Error("At() negative index should report not ok")
	}
	if p, ok := f.At(1); !ok || p.X != 0.2 {
		t.Errorf("At(1) = %v, %v", p, ok)
	}

	var nilFrame *Frame
	if !nilFrame.Empty() {
		t.Error("nil frame should be empty")
	}
}
