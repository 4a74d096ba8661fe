package web

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/websocket/v2"
	"github.com/google/uuid"

	"github.com/teslashibe/go-gaze/internal/log"
	"github.com/teslashibe/go-gaze/pkg/hub"
	"github.com/teslashibe/go-gaze/pkg/protocol"
	"github.com/teslashibe/go-gaze/pkg/tracking"
)

// StatusResponse is the /api/status payload
type StatusResponse struct {
	Calibrating bool              `json:"calibrating"`
	Snapshot    tracking.Snapshot `json:"snapshot"`
	Renderers   int               `json:"renderers"`
}

// handleStatus returns the engine's current state
func (s *Server) handleStatus(c *fiber.Ctx) error {
	return c.JSON(StatusResponse{
		Calibrating: s.processor.Calibrating(),
		Snapshot:    s.processor.Snapshot(),
		Renderers:   s.snapshotHub.ClientCount(),
	})
}

// handleGetTuning returns current tuning parameters
func (s *Server) handleGetTuning(c *fiber.Ctx) error {
	return c.JSON(s.processor.GetTuningParams())
}

// handleSetTuning applies a tuning update. Only positive fields apply.
func (s *Server) handleSetTuning(c *fiber.Ctx) error {
	var params tracking.TuningParams
	if err := c.BodyParser(&params); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	s.processor.SetTuningParams(params)
	log.Info("tuning updated", "params", params)

	return c.JSON(s.processor.GetTuningParams())
}

// handleRestartCalibration schedules a pipeline reset. The reset applies
// between frames, never mid-frame.
func (s *Server) handleRestartCalibration(c *fiber.Ctx) error {
	s.RequestClear()
	return c.JSON(fiber.Map{"status": "scheduled"})
}

// handleFramesWS ingests landmark frames from a producer connection.
func (s *Server) handleFramesWS(c *websocket.Conn) {
	session := uuid.New().String()[:8]
	log.Info("producer connected", "session", session)
	defer log.Info("producer disconnected", "session", session)

	for {
		_, data, err := c.ReadMessage()
		if err != nil {
			return
		}

		msg, err := protocol.ParseMessage(data)
		if err != nil {
			log.Warn("bad producer message", "session", session, "error", err)
			continue
		}

		switch msg.Type {
		case protocol.TypeFrame:
			frame, err := msg.GetFrameData()
			if err != nil {
				log.Warn("bad frame payload", "session", session, "error", err)
				continue
			}
			s.SubmitFrame(frame)

		case protocol.TypeClear:
			s.RequestClear()

		case protocol.TypePing:
			if pong, err := protocol.NewPongMessage(); err == nil {
				if data, err := pong.Bytes(); err == nil {
					c.WriteMessage(websocket.TextMessage, data)
				}
			}
		}
	}
}

// handleSnapshotsWS streams pipeline snapshots to a renderer client.
func (s *Server) handleSnapshotsWS(c *websocket.Conn) {
	client := hub.NewClient(s.snapshotHub, c)
	client.Run() // Blocks until disconnect
}
