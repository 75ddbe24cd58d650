package logging

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
)

const (
	StageProd = "prod"
	StageDev  = "dev"
)

// New builds the service logger. Dev gets a human readable console writer,
// every other stage gets JSON lines. An unknown level falls back to info.
func New(level, stage string) zerolog.Logger {
	return NewWithWriter(os.Stderr, level, stage)
}

func NewWithWriter(w io.Writer, level, stage string) zerolog.Logger {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil || level == "" {
		lvl = zerolog.InfoLevel
	}

	out := w
	if stage == StageDev {
		out = zerolog.ConsoleWriter{Out: w, TimeFormat: time.TimeOnly, NoColor: true}
	}

	return zerolog.New(out).Level(lvl).With().Timestamp().Logger()
}
