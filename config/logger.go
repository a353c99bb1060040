package config

import (
	"io"
	"time"

	"github.com/rs/zerolog"
)

// NewLogger builds the diagnostics logger. Diagnostics go to w (normally
// stderr) so they never mix with the story on stdout.
func NewLogger(cfg LogConfig, w io.Writer) zerolog.Logger {
	if cfg.Pretty {
		w = zerolog.ConsoleWriter{Out: w, TimeFormat: time.Kitchen}
	}
	level, err := zerolog.ParseLevel(cfg.Level)
	if err != nil || level == zerolog.NoLevel {
		level = zerolog.WarnLevel
	}
	return zerolog.New(w).Level(level).With().Timestamp().Logger()
}
