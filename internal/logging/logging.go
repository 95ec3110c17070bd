// Package logging builds the structured logger shared by the city and CLI.
package logging

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/conn-castle/smart-city/internal/messages"
)

// Log formats.
const (
	FormatText = "text"
	FormatJSON = "json"
)

// DefaultLevel keeps routine decisions out of interactive output.
const DefaultLevel = "warn"

// ParseLevel maps debug, info, warn or error (case-insensitive) to a slog level.
// An empty string selects DefaultLevel.
func ParseLevel(level string) (slog.Level, error) {
	normalized := strings.ToLower(strings.TrimSpace(level))
	if normalized == "" {
		normalized = DefaultLevel
	}
	switch normalized {
	case "debug":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return 0, fmt.Errorf(messages.LogLevelInvalidFmt, level)
	}
}

// New returns a logger writing to w in the given format at the given level.
func New(w io.Writer, level string, format string) (*slog.Logger, error) {
	lvl, err := ParseLevel(level)
	if err != nil {
		return nil, err
	}
	opts := &slog.HandlerOptions{Level: lvl}
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "", FormatText:
		return slog.New(slog.NewTextHandler(w, opts)), nil
	case FormatJSON:
		return slog.New(slog.NewJSONHandler(w, opts)), nil
	default:
		return nil, fmt.Errorf(messages.LogFormatInvalidFmt, format)
	}
}

// Discard returns a logger that drops every record.
func Discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
