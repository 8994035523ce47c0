// Package logger wires the process-wide zerolog logger.
package logger

import (
	"io"
	"os"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

// Options configure the process logger at startup.
type Options struct {
	// Level is a zerolog level name ("debug", "info", "warn", ...).
	// Unknown or empty names fall back to info.
	Level string
	// Pretty switches from JSON lines to the colourised console writer.
	Pretty bool
	// Service is stamped on every record. Defaults to "fitness-api".
	Service string
	// Output defaults to os.Stdout.
	Output io.Writer
}

var (
	once     sync.Once
	instance zerolog.Logger
)

// Init builds the process logger. The first call wins; later calls return the
// logger built by the first.
func Init(opts Options) zerolog.Logger {
	once.Do(func() {
		zerolog.TimeFieldFormat = time.RFC3339Nano

		out := opts.Output
		if out == nil {
			out = os.Stdout
		}
		if opts.Pretty {
			out = zerolog.ConsoleWriter{Out: out, TimeFormat: time.RFC3339}
		}

		level, err := zerolog.ParseLevel(opts.Level)
		if err != nil || level == zerolog.NoLevel {
			level = zerolog.InfoLevel
		}
		zerolog.SetGlobalLevel(level)

		service := opts.Service
		if service == "" {
			service = "fitness-api"
		}

		instance = zerolog.New(out).
			Level(level).
			With().
			Timestamp().
			Str("service", service).
			Logger()
	})
	return instance
}
