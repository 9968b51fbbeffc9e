// Package logging holds the process-wide zerolog logger. It discards
// everything until Configure is called.
package logging

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

var logger = zerolog.Nop()

// SetGlobalLogger replaces the logger behind the package-level event helpers.
func SetGlobalLogger(l zerolog.Logger) {
	logger = l
}

// Configure installs a global logger writing to out, or to stderr when out
// is nil. Level is any zerolog level name in any case. Format is "console"
// (the default) for human-readable lines or "json" for one object per line.
// Invalid input leaves the current logger in place.
func Configure(level, format string, out io.Writer) error {
	lvl, err := zerolog.ParseLevel(strings.ToLower(level))
	if err != nil {
		return fmt.Errorf("invalid log level %q: %w", level, err)
	}
	if out == nil {
		out = os.Stderr
	}
	switch format {
	case "", "console":
		out = zerolog.ConsoleWriter{Out: out, TimeFormat: time.Kitchen}
	case "json":
	default:
		return fmt.Errorf("invalid log format %q", format)
	}
	SetGlobalLogger(zerolog.New(out).Level(lvl).With().Timestamp().Logger())
	return nil
}

func Debug() *zerolog.Event { return logger.Debug() }

func Info() *zerolog.Event { return logger.Info() }

func Warn() *zerolog.Event { return logger.Warn() }

// Fatal logs and exits the process once the event is sent.
func Fatal() *zerolog.Event { return logger.Fatal() }
