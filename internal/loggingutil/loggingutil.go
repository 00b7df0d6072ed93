// Package loggingutil builds the zerolog.Logger shared by the daemon and
// CLI, per the console-in-dev/JSON-in-production convention (spec §10.1).
package loggingutil

import (
	"io"
	"os"

	"github.com/rs/zerolog"
)

// New returns a configured logger. level is one of debug|info|warn|error;
// format is console|json. Unrecognized values fall back to info/console.
func New(level, format string) zerolog.Logger {
	var writer io.Writer = os.Stderr
	if format != "json" {
		writer = zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: "15:04:05"}
	}

	logger := zerolog.New(writer).With().Timestamp().Logger()

	switch level {
	case "debug":
		logger = logger.Level(zerolog.DebugLevel)
	case "warn":
		logger = logger.Level(zerolog.WarnLevel)
	case "error":
		logger = logger.Level(zerolog.ErrorLevel)
	default:
		logger = logger.Level(zerolog.InfoLevel)
	}
	return logger
}
