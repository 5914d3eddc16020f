// Package logx is the thin structured-logging seam every solver in this
// module logs through. Discard gives every package's DefaultOptions a
// non-nil logger to start from, so solvers never need a "logger == nil"
// check of their own.
package logx

import (
	"io"
	"os"

	"github.com/charmbracelet/log"
)

// New builds a logger writing to os.Stderr at level, reporting timestamps in
// 15:04:05.000 format; it can be passed to the parametric and cycleratio
// solvers' WithLogger for per-update diagnostics.
func New(level log.Level) *log.Logger {
	return NewWithWriter(os.Stderr, level)
}

// NewWithWriter is New with an explicit destination, for tests that want to
// capture log output instead of writing to stderr.
func NewWithWriter(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.000",
		Level:           level,
	})
}

// Discard is a logger that drops every message; it is the default every
// package's Options carries so solvers can log unconditionally without a
// caller having opted into verbosity.
var Discard = log.NewWithOptions(io.Discard, log.Options{})
