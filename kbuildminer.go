// Package kbuildminer converts the output of the KbuildMiner build-system
// analysis into a build model mapping source files to presence conditions.
//
// KbuildMiner emits one line per source file:
//
//	drivers/usb/core/usb.c: USB && (USB_SUPPORT || USB_MODULE)
//
// Convert parses each condition into a logic.Formula, removes _MODULE
// variables that do not belong to tristate-typed configuration variables,
// and collects the per-file conditions into a buildmodel.BuildModel.
// Lines the miner marked with InvalidExpression(), and lines that fail to
// parse, keep the unconditionally-absent condition logic.False and are
// reported as diagnostics on the model.
package kbuildminer

import (
	"context"
	"errors"
	"log/slog"

	"github.com/KernelHaven/KbuildMinerExtractor/buildmodel"
	"github.com/KernelHaven/KbuildMinerExtractor/varmodel"
)

// ErrNoSource is returned when Convert is called without a source.
var ErrNoSource = errors.New("no KbuildMiner output source provided")

// LevelTrace is a custom log level more verbose than Debug.
// Use for per-line and per-token logging.
// Enable with: &slog.HandlerOptions{Level: slog.Level(-8)}
const LevelTrace = slog.Level(-8)

// Option configures Convert.
type Option func(*convertConfig)

type convertConfig struct {
	logger    *slog.Logger
	diagLimit int
}

// WithLogger sets the logger for debug/trace output.
// If not set, no logging occurs (zero overhead).
func WithLogger(logger *slog.Logger) Option {
	return func(c *convertConfig) { c.logger = logger }
}

// WithDiagnosticLimit caps the number of diagnostics collected on the
// returned model. Conversion continues past the limit; further
// diagnostics are dropped. n <= 0 means unlimited.
func WithDiagnosticLimit(n int) Option {
	return func(c *convertConfig) { c.diagLimit = n }
}

// Convert reads KbuildMiner output from source and returns the build
// model. The variability model vars supplies the declared type of each
// configuration variable; pass nil to treat every variable as undeclared
// (every _MODULE variable is then kept).
//
// Per-line problems are recovered and recorded as diagnostics on the
// returned model; only a failure to read the input at all, or context
// cancellation, returns an error.
//
// Example:
//
//	model, err := kbuildminer.Convert(ctx,
//	    kbuildminer.File("pcs.txt"),
//	    vars,
//	    kbuildminer.WithLogger(slog.Default()),
//	)
func Convert(ctx context.Context, source Source, vars *varmodel.Model, opts ...Option) (*buildmodel.BuildModel, error) {
	var cfg convertConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	if source == nil {
		return nil, ErrNoSource
	}
	if vars == nil {
		vars = varmodel.New()
	}

	r, name, err := source.Open()
	if err != nil {
		return nil, err
	}
	defer r.Close()

	return convertLines(ctx, r, name, vars, cfg)
}

func componentLogger(logger *slog.Logger, component string) *slog.Logger {
	if logger == nil {
		return nil
	}
	return logger.With(slog.String("component", component))
}
