package main

import (
	"io"
	"os"

	"github.com/rs/zerolog"
)

// setupLogger opens logPath for append and returns a zerolog.Logger
// that writes structured events there. Falls back to stderr if the
// file cannot be opened, the same degrade-gracefully behavior as the
// teacher's plain log.Logger setup.
func setupLogger(logPath string) (zerolog.Logger, func() error) {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix

	f, err := os.OpenFile(logPath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		logger := zerolog.New(os.Stderr).With().Timestamp().Logger()
		logger.Warn().Err(err).Str("path", logPath).Msg("failed to open log file, logging to stderr")
		return logger, func() error { return nil }
	}

	var out io.Writer = f
	logger := zerolog.New(out).With().Timestamp().Logger()
	return logger, f.Close
}
