// Package util holds small helpers shared by the treebench commands.
package util

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
)

// NewLogger builds a zerolog logger for a benchmark run. logType selects
// "console" (human-readable) or "json" (one object per line, for result
// collection); logFile redirects output away from stderr. The returned
// closer is a no-op unless a file was opened.
func NewLogger(logType, logFile string) (zerolog.Logger, func() error, error) {
	closer := func() error { return nil }

	var out io.Writer = os.Stderr
	if logFile != "" {
		f, err := os.Create(logFile)
		if err != nil {
			return zerolog.Logger{}, nil, fmt.Errorf("error creating log file: %w", err)
		}
		out = f
		closer = f.Close
	}

	switch logType {
	case "console", "":
		out = zerolog.ConsoleWriter{Out: out, TimeFormat: time.Kitchen}
	case "json":
		// raw zerolog output
	default:
		closer()
		return zerolog.Logger{}, nil, fmt.Errorf("unknown log type %q", logType)
	}

	return zerolog.New(out).With().Timestamp().Logger(), closer, nil
}
