// Package source provides a client for an upstream landmark feed: a
// WebSocket endpoint that pushes per-frame face-landmark detections in the
// go-gaze wire protocol.
package source

import (
	"context"
	"fmt"
	"time"

	"github.com/gorilla/websocket"

	"github.com/teslashibe/go-gaze/internal/log"
	"github.com/teslashibe/go-gaze/pkg/protocol"
)

// Config holds feed client settings.
type Config struct {
	// URL of the landmark feed, e.g. ws://localhost:9000/landmarks
	URL string

	// HandshakeTimeout bounds the dial.
	HandshakeTimeout time.Duration

	// ReconnectDelay is the wait between reconnect attempts.
	ReconnectDelay time.Duration
}

// DefaultConfig returns sensible feed client defaults.
func DefaultConfig() Config {
	return Config{
		HandshakeTimeout: 10 * time.Second,
		ReconnectDelay:   2 * time.Second,
	}
}

// Client consumes a landmark feed and delivers decoded frames to a
// callback. It reconnects until the context is cancelled.
type Client struct {
	cfg Config

	// OnFrame receives every decoded frame, in arrival order, on the
	// client's read goroutine.
	OnFrame func(*protocol.FrameData)
}

// New creates a feed client.
func New(cfg Config) *Client {
	return &Client{cfg: cfg}
}

// Run connects to the feed and dispatches frames until ctx is cancelled.
// Connection failures trigger a delayed reconnect rather than an error;
// the only terminal condition is cancellation.
func (c *Client) Run(ctx context.Context) error {
	if c.cfg.URL == "" {
		return fmt.Errorf("feed URL is required")
	}

	for {
		if err := c.readLoop(ctx); err != nil {
			log.Warn("feed connection lost", "url", c.cfg.URL, "error", err)
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(c.cfg.ReconnectDelay):
		}
	}
}

// readLoop dials once and reads until the connection drops.
func (c *Client) readLoop(ctx context.Context) error {
	dialer := websocket.Dialer{
		HandshakeTimeout: c.cfg.HandshakeTimeout,
	}

	conn, _, err := dialer.DialContext(ctx, c.cfg.URL, nil)
	if err != nil {
		return fmt.Errorf("failed to connect to feed: %w", err)
	}
	defer conn.Close()

	log.Info("connected to landmark feed", "url", c.cfg.URL)

	// Unblock ReadMessage on cancellation
	done := make(chan struct{})
	defer close(done)
	go func() {
		select {
		case <-ctx.Done():
			conn.Close()
		case <-done:
		}
	}()

	for {
		_, data, err := conn.ReadMessage()
		if err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			return err
		}

		msg, err := protocol.ParseMessage(data)
		if err != nil {
			log.Warn("bad feed message", "error", err)
			continue
		}

		switch msg.Type {
		case protocol.TypeFrame:
			frame, err := msg.GetFrameData()
			if err != nil {
				log.Warn("bad feed frame", "error", err)
				continue
			}
			if c.OnFrame != nil {
				c.OnFrame(frame)
			}

		case protocol.TypePing:
			if pong, err := protocol.NewPongMessage(); err == nil {
				if data, err := pong.Bytes(); err == nil {
					conn.WriteMessage(websocket.TextMessage, data)
				}
			}
		}
	}
}
