// Package logging builds the zerolog logger shared by snip components.
//
// Logs go to stderr: stdout carries the launcher protocol and must stay
// clean JSON.
package logging

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// DefaultLevel is used when no level is configured.
const DefaultLevel = zerolog.WarnLevel

// New returns a console logger writing to w at the given level.
func New(w io.Writer, level zerolog.Level) zerolog.Logger {
	out := zerolog.ConsoleWriter{
		Out:        w,
		TimeFormat: time.RFC3339,
		NoColor:    true,
	}
	return zerolog.New(out).
		With().Timestamp().Logger().
		Level(level)
}

// NewStderr returns a logger on stderr at the named level.
func NewStderr(levelName string) zerolog.Logger {
	return New(os.Stderr, ParseLevel(levelName))
}

// ParseLevel maps a level name (debug, info, warn, error, disabled) to a
// zerolog level. Unknown or empty names yield DefaultLevel.
func ParseLevel(name string) zerolog.Level {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		return DefaultLevel
	}
	level, err := zerolog.ParseLevel(name)
	if err != nil {
		return DefaultLevel
	}
	return level
}
