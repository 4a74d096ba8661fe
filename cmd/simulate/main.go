// simulate - synthetic landmark driver for pipeline tuning
//
// Generates a scripted gaze session: five calibration fixations, a
// sinusoidal sweep, and a blink-hold click. Runs the pipeline locally and
// prints snapshots, or streams the frames to a running gazed instance.
package main

import (
	"flag"
	"fmt"
	"math"
	"os"
	"time"

	"github.com/gorilla/websocket"

	"github.com/teslashibe/go-gaze/pkg/landmark"
	"github.com/teslashibe/go-gaze/pkg/protocol"
	"github.com/teslashibe/go-gaze/pkg/tracking"
)

const (
	viewportW = 1280.0
	viewportH = 800.0
)

// Synthetic eye geometry: fixed corners, iris interpolated by ratio.
const (
	rightCorner0X = 0.30
	rightCorner1X = 0.40
	leftCorner0X  = 0.60
	leftCorner1X  = 0.70
	cornerY       = 0.40
)

func main() {
	url := flag.String("url", "", "gazed ingest URL (empty: run the pipeline locally)")
	fps := flag.Int("fps", 30, "Frame rate")
	profile := flag.String("profile", "default", "Tracking profile for local runs")
	flag.Parse()

	frames := script(*fps)
	fmt.Printf("🎬 Simulating %d frames at %d fps\n", len(frames), *fps)

	if *url != "" {
		if err := stream(*url, frames, *fps); err != nil {
			fmt.Printf("❌ Stream failed: %v\n", err)
			os.Exit(1)
		}
		return
	}

	runLocal(frames, *fps, *profile)
}

// frame is one scripted detection: gaze ratio, vertical position, blink.
type frame struct {
	ratio float64
	y     float64
	blink float64
}

// script produces the full session: calibration fixations (center, four
// corners), a horizontal sweep, then a held blink.
func script(fps int) []frame {
	var frames []frame

	hold := func(ratio, y float64, seconds float64) {
		n := int(seconds * float64(fps))
		for i := 0; i < n; i++ {
			frames = append(frames, frame{ratio: ratio, y: y})
		}
	}

	// Calibration fixations. Screen X is mirrored, so the left targets
	// sit at the high end of the ratio range.
	hold(0.5, 0.40, 3.0) // center
	hold(0.8, 0.30, 3.0) // top-left
	hold(0.2, 0.30, 3.0) // top-right
	hold(0.2, 0.50, 3.0) // bottom-right
	hold(0.8, 0.50, 3.0) // bottom-left

	// Sweep across the calibrated range.
	n := 4 * fps
	for i := 0; i < n; i++ {
		phase := 2 * math.Pi * float64(i) / float64(n)
		frames = append(frames, frame{
			ratio: 0.5 + 0.3*math.Sin(phase),
			y:     0.40 + 0.1*math.Sin(2*phase),
		})
	}

	// Dwell, then hold a blink past the click threshold.
	hold(0.5, 0.40, 1.0)
	blinkFrames := int(1.5 * float64(fps))
	for i := 0; i < blinkFrames; i++ {
		frames = append(frames, frame{ratio: 0.5, y: 0.40, blink: 1.0})
	}
	hold(0.5, 0.40, 0.5)

	return frames
}

// buildFrame expands a scripted frame into mesh landmarks + blendshapes.
func buildFrame(f frame) ([]landmark.Point, landmark.Blendshapes) {
	points := make([]landmark.Point, landmark.MeshSize)

	points[landmark.RightEyeOuterCorner] = landmark.Point{X: rightCorner0X, Y: cornerY}
	points[landmark.RightEyeInnerCorner] = landmark.Point{X: rightCorner1X, Y: cornerY}
	points[landmark.LeftEyeInnerCorner] = landmark.Point{X: leftCorner0X, Y: cornerY}
	points[landmark.LeftEyeOuterCorner] = landmark.Point{X: leftCorner1X, Y: cornerY}

	points[landmark.RightIrisCenter] = landmark.Point{
		X: rightCorner0X + f.ratio*(rightCorner1X-rightCorner0X),
		Y: f.y,
	}
	points[landmark.LeftIrisCenter] = landmark.Point{
		X: leftCorner0X + f.ratio*(leftCorner1X-leftCorner0X),
		Y: f.y,
	}

	shapes := make(landmark.Blendshapes, 12)
	shapes[9] = landmark.Blendshape{Name: landmark.EyeBlinkLeft, Score: f.blink}
	shapes[10] = landmark.Blendshape{Name: landmark.EyeBlinkRight, Score: f.blink}

	return points, shapes
}

// runLocal drives a local processor and prints snapshot transitions.
func runLocal(frames []frame, fps int, profile string) {
	processor := tracking.New(tracking.Profile(profile))
	ticker := time.NewTicker(time.Second / time.Duration(fps))
	defer ticker.Stop()

	lastStage := ""
	lastClick := false
	for i, f := range frames {
		<-ticker.C

		points, shapes := buildFrame(f)
		snap := processor.Process(&landmark.Frame{Points: points}, shapes, viewportW, viewportH)

		if snap.Stage != lastStage {
			fmt.Printf("📍 [%4d] stage=%s %s\n", i, snap.Stage, snap.Instruction)
			lastStage = snap.Stage
		}
		if snap.ClickActive != lastClick {
			fmt.Printf("🖱️  [%4d] click=%v cursor=(%.0f, %.0f)\n", i, snap.ClickActive, snap.X, snap.Y)
			lastClick = snap.ClickActive
		}
	}

	final := processor.Snapshot()
	fmt.Printf("✅ Done: stage=%s cursor=(%.0f, %.0f)\n", final.Stage, final.X, final.Y)
}

// stream sends the scripted frames to a gazed ingest endpoint.
func stream(url string, frames []frame, fps int) error {
	dialer := websocket.Dialer{HandshakeTimeout: 10 * time.Second}
	conn, _, err := dialer.Dial(url, nil)
	if err != nil {
		return fmt.Errorf("failed to connect to %s: %w", url, err)
	}
	defer conn.Close()

	fmt.Printf("🔗 Connected to %s\n", url)

	ticker := time.NewTicker(time.Second / time.Duration(fps))
	defer ticker.Stop()

	for i, f := range frames {
		<-ticker.C

		points, shapes := buildFrame(f)
		msg, err := protocol.NewFrameMessage(points, shapes, viewportW, viewportH, uint64(i))
		if err != nil {
			return err
		}
		data, err := msg.Bytes()
		if err != nil {
			return err
		}
		if err := conn.WriteMessage(websocket.TextMessage, data); err != nil {
			return fmt.Errorf("write failed at frame %d: %w", i, err)
		}
	}

	fmt.Printf("✅ Streamed %d frames\n", len(frames))
	return nil
}
