// Package config provides configuration helpers for go-gaze commands.
package config

import "os"

// Default service configuration.
const (
	DefaultPort = "8090"
)

// Port returns the HTTP port from GAZE_PORT env var.
// Falls back to DefaultPort if not set.
func Port() string {
	if port := os.Getenv("GAZE_PORT"); port != "" {
		return port
	}
	return DefaultPort
}

// FeedURL returns the upstream landmark feed URL from GAZE_FEED_URL env var.
// Empty means the daemon waits for frames pushed to its own ingest endpoint.
func FeedURL() string {
	return os.Getenv("GAZE_FEED_URL")
}

// LogLevel returns the log level from GAZE_LOG_LEVEL env var or "info".
func LogLevel() string {
	if lvl := os.Getenv("GAZE_LOG_LEVEL"); lvl != "" {
		return lvl
	}
	return "info"
}
