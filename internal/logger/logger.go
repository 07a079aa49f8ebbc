// Package logger configures the toolkit debug log. Logging is off by
// default so the library stays silent inside applications; it is
// enabled with Setup, or by setting FELT_DEBUG to a zerolog level
// name such as "debug" or "trace".
package logger

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// Options describes logger configuration supplied by the application.
type Options struct {
	Level         string
	HumanReadable bool
	Writer        io.Writer
}

var global = zerolog.Nop()

// Setup installs the process-wide toolkit logger. Call it before
// starting goroutines that log, such as a posted inspection server.
func Setup(opts Options) error {
	writer := opts.Writer
	if writer == nil {
		writer = os.Stderr
	}

	level := zerolog.InfoLevel
	if opts.Level != "" {
		parsed, err := zerolog.ParseLevel(strings.ToLower(opts.Level))
		if err != nil {
			return err
		}
		level = parsed
	}

	var output io.Writer = writer
	if opts.HumanReadable {
		console := zerolog.NewConsoleWriter()
		console.Out = writer
		console.TimeFormat = time.RFC3339
		output = console
	}

	global = zerolog.New(output).Level(level).With().Timestamp().Logger()
	return nil
}

func init() {
	if lvl := os.Getenv("FELT_DEBUG"); lvl != "" {
		if err := Setup(Options{Level: lvl, HumanReadable: true}); err != nil {
			_ = Setup(Options{Level: "debug", HumanReadable: true})
		}
	}
}

// Log returns the toolkit logger, a no-op logger unless enabled.
func Log() *zerolog.Logger {
	return &global
}
