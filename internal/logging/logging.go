// Package logging constructs the process logger.
package logging

import (
	"io"

	"github.com/rs/zerolog"
)

// New returns a console logger writing to out at the given level.
// Unknown level names fall back to info.
func New(out io.Writer, level string) zerolog.Logger {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil || lvl == zerolog.NoLevel {
		lvl = zerolog.InfoLevel
	}

	return zerolog.New(zerolog.ConsoleWriter{Out: out}).Level(lvl).With().Timestamp().Logger()
}
