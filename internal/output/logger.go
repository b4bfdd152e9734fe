/*
PURPOSE:
  Provides a structured logger for Solver Radar.
  Wraps slog for consistent output.

REQUIREMENTS:
  User-specified:
  - "Sane" CLI output. Not spammy.
  - Parse failures are written as diagnostics, never surfaced as crashes.

  Implementation-discovered:
  - Needs to support Debug/Info/Warn/Error levels.
  - `serve` benefits from JSON lines; interactive commands from text.

ARCHITECTURE INTEGRATION:
  - Used everywhere.

ERROR HANDLING:
  - Unknown levels/formats fall back to info/text.

IMPLEMENTATION RULES:
  - Use `log/slog` (Go 1.21+).
  - Logs go to stderr so stdout stays clean for command output.

USAGE:
  output.Logger.Info("message", "key", "value")

SELF-HEALING INSTRUCTIONS:
  - Ensure Go 1.21+ is used.

RELATED FILES:
  - All.
*/

package output

import (
	"io"
	"log/slog"
	"os"
	"strings"
)

var Logger *slog.Logger

func init() {
	Logger = slog.New(slog.NewTextHandler(os.Stderr, nil))
}

// SetLogger allows overriding the default logger (e.g. for testing or config changes)
func SetLogger(l *slog.Logger) {
	Logger = l
}

// ConfigureLogger replaces Logger with a handler built from the log_level
// and log_format settings.
func ConfigureLogger(level, format string, w io.Writer) {
	opts := &slog.HandlerOptions{Level: ParseLevel(level)}
	if strings.EqualFold(format, "json") {
		SetLogger(slog.New(slog.NewJSONHandler(w, opts)))
		return
	}
	SetLogger(slog.New(slog.NewTextHandler(w, opts)))
}

// ParseLevel maps a level name to slog.Level, defaulting to Info.
func ParseLevel(level string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
