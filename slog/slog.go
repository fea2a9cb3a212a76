// Package slog configures log/slog from command line options declared as a
// cargu template.
package slog

import (
	"io"
	"log/slog"
	"os"

	"github.com/0x53A/cargu"
)

// LogOptions can be embedded in a cargu template to accept --log-level and
// --log-json.
type LogOptions struct {
	LogLevel slog.Level `cargu:"unique,help='minimum level to log (debug, info, warn, error)'"`
	LogJSON  cargu.Flag `cargu:"token=--log-json,help=log as JSON lines"`
}

// Load reads the options from a parse result of a template embedding
// LogOptions. Absent options keep their current values.
func (opts *LogOptions) Load(r *cargu.Result) {
	if level, ok := cargu.TryFirst[slog.Level](r, "LogLevel"); ok {
		opts.LogLevel = level
	}
	if r.Contains("LogJSON") {
		opts.LogJSON = true
	}
}

// Handler returns a text or JSON handler writing to w.
func (opts *LogOptions) Handler(w io.Writer, handlerOpts *slog.HandlerOptions) slog.Handler {
	if handlerOpts == nil {
		handlerOpts = &slog.HandlerOptions{}
	}
	handlerOpts.Level = opts.LogLevel

	if opts.LogJSON {
		return slog.NewJSONHandler(w, handlerOpts)
	}
	return slog.NewTextHandler(w, handlerOpts)
}

func (opts *LogOptions) ConfigureWithHandlerOptions(w io.Writer, handlerOpts *slog.HandlerOptions) *slog.Logger {
	logger := slog.New(opts.Handler(w, handlerOpts))
	slog.SetDefault(logger)
	return logger
}

// Configure installs a default logger writing to stderr and returns it.
func (opts *LogOptions) Configure() *slog.Logger {
	return opts.ConfigureWithHandlerOptions(os.Stderr, nil)
}
