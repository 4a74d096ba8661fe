// Package web exposes the gaze engine over HTTP and WebSocket: a frame
// ingest endpoint for landmark producers, a snapshot stream for renderer
// clients, and a small REST API for status and tuning.
package web

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/websocket/v2"

	"github.com/teslashibe/go-gaze/internal/log"
	"github.com/teslashibe/go-gaze/pkg/hub"
	"github.com/teslashibe/go-gaze/pkg/protocol"
	"github.com/teslashibe/go-gaze/pkg/tracking"
)

// Server wires frame producers to the pipeline and fans snapshots out to
// renderers.
//
// All frames and clear requests funnel through channels consumed by a
// single goroutine, so pipeline state is only ever touched frame-
// synchronously no matter how many producers connect.
type Server struct {
	app  *fiber.App
	port string

	processor *tracking.Processor

	// Snapshot fan-out to renderer clients (thread-safe!)
	snapshotHub *hub.Hub

	// Single-consumer pipeline input
	frames chan *protocol.FrameData
	clears chan struct{}
}

// NewServer creates a new engine server around the processor.
func NewServer(port string, processor *tracking.Processor) *Server {
	s := &Server{
		port:        port,
		processor:   processor,
		snapshotHub: hub.New("snapshots"),
		frames:      make(chan *protocol.FrameData, 8),
		clears:      make(chan struct{}, 1),
	}

	app := fiber.New(fiber.Config{
		AppName:               "go-gaze",
		DisableStartupMessage: true,
	})

	// CORS for local development
	app.Use(cors.New())

	// API routes
	api := app.Group("/api")
	api.Get("/status", s.handleStatus)
	api.Get("/tuning", s.handleGetTuning)
	api.Post("/tuning", s.handleSetTuning)
	api.Post("/calibration/restart", s.handleRestartCalibration)

	// WebSocket upgrade middleware
	app.Use("/ws", func(c *fiber.Ctx) error {
		if websocket.IsWebSocketUpgrade(c) {
			return c.Next()
		}
		return fiber.ErrUpgradeRequired
	})

	// WebSocket routes
	app.Get("/ws/frames", websocket.New(s.handleFramesWS))
	app.Get("/ws/snapshots", websocket.New(s.handleSnapshotsWS))

	s.app = app
	return s
}

// Start runs the pipeline consumer and serves until the listener fails.
func (s *Server) Start() error {
	log.Info("gaze engine listening", "port", s.port)

	go s.snapshotHub.Run()
	go s.consume()

	return s.app.Listen(":" + s.port)
}

// Shutdown gracefully stops the HTTP server.
func (s *Server) Shutdown() error {
	return s.app.Shutdown()
}

// SubmitFrame hands a frame to the pipeline from an in-process producer
// (e.g. a pkg/source feed client). Frames are dropped when the pipeline
// is behind: stale landmark data is worthless.
func (s *Server) SubmitFrame(frame *protocol.FrameData) {
	select {
	case s.frames <- frame:
	default:
		log.Debug("pipeline busy, dropping frame", "frame_id", frame.FrameID)
	}
}

// RequestClear schedules a pipeline reset between frames.
func (s *Server) RequestClear() {
	select {
	case s.clears <- struct{}{}:
	default:
		// A clear is already pending
	}
}

// consume is the single goroutine that touches the processor.
func (s *Server) consume() {
	for {
		select {
		case frame := <-s.frames:
			snap := s.processor.Process(frame.Frame(), frame.Blendshapes, frame.ViewportWidth, frame.ViewportHeight)
			s.snapshotHub.BroadcastJSON(snap)

		case <-s.clears:
			s.processor.Clear()
			s.snapshotHub.BroadcastJSON(s.processor.Snapshot())
		}
	}
}
