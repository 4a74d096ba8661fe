// gazed - eye-gaze pointer engine daemon
//
// Consumes per-frame face-landmark detections (pushed to /ws/frames or
// pulled from an upstream feed), runs calibration, cursor tracking, and
// blink-click detection, and streams render-ready snapshots on
// /ws/snapshots.
package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"

	"github.com/teslashibe/go-gaze/internal/config"
	"github.com/teslashibe/go-gaze/internal/log"
	"github.com/teslashibe/go-gaze/pkg/source"
	"github.com/teslashibe/go-gaze/pkg/tracking"
	"github.com/teslashibe/go-gaze/pkg/web"
)

func main() {
	port := flag.String("port", config.Port(), "HTTP/WebSocket listen port")
	feedURL := flag.String("feed", config.FeedURL(), "Upstream landmark feed URL (empty: push ingest only)")
	profile := flag.String("profile", "default", "Tracking profile: default, smooth, responsive")
	debug := flag.Bool("debug", false, "Enable verbose debug logging")
	flag.Parse()

	level := config.LogLevel()
	if *debug {
		level = "debug"
	}
	log.Init(level)

	processor := tracking.New(tracking.Profile(*profile))
	server := web.NewServer(*port, processor)

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if *feedURL != "" {
		cfg := source.DefaultConfig()
		cfg.URL = *feedURL
		feed := source.New(cfg)
		feed.OnFrame = server.SubmitFrame
		go func() {
			if err := feed.Run(ctx); err != nil && ctx.Err() == nil {
				log.Error("feed client stopped", "error", err)
			}
		}()
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- server.Start()
	}()

	select {
	case <-ctx.Done():
		log.Info("shutting down")
		if err := server.Shutdown(); err != nil {
			log.Error("shutdown error", "error", err)
		}
	case err := <-errCh:
		if err != nil {
			log.Error("server error", "error", err)
			os.Exit(1)
		}
	}
}
