package parametric

import (
	"github.com/charmbracelet/log"

	"github.com/luk036/digraphx-go/internal/logx"
)

// Options configures Solver.Run and MaxParametric.
//
// MaxIters – caps the number of parameter updates (not relaxation passes);
//
//	0 means unlimited. Default is 0.
//
// Logger – receives one debug-level message per accepted parameter update.
//
//	Default is a discarding logger, so callers that never set one pay
//	no logging cost.
type Options struct {
	MaxIters int
	Logger   *log.Logger
}

// Option is a functional option for Options, following the same
// construct-then-apply convention the dijkstra and flow packages use.
type Option func(*Options)

// WithMaxIters caps the number of accepted parameter updates before Run
// gives up and returns ErrIterationLimitExceeded alongside the best result
// found so far. max must be > 0; max == 0 (the default) means unlimited.
func WithMaxIters(max int) Option {
	return func(o *Options) {
		if max <= 0 {
			panic(ErrBadMaxIters.Error())
		}
		o.MaxIters = max
	}
}

// WithLogger attaches a logger for per-update diagnostics. A nil logger
// panics rather than silently disabling logging; pass nothing to keep the
// default discarding logger.
func WithLogger(logger *log.Logger) Option {
	return func(o *Options) {
		if logger == nil {
			panic(ErrNilLogger.Error())
		}
		o.Logger = logger
	}
}

// DefaultOptions returns the zero-configuration Options: no iteration cap,
// logging discarded.
func DefaultOptions() Options {
	return Options{
		MaxIters: 0,
		Logger:   logx.Discard,
	}
}
