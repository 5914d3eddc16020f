package cycleratio

import (
	"errors"

	"github.com/charmbracelet/log"

	"github.com/luk036/digraphx-go/internal/logx"
)

// ErrBadMaxIters is the panic message WithMaxIters raises for a non-positive
// iteration cap.
var ErrBadMaxIters = errors.New("cycleratio: MaxIters must be > 0")

// ErrNilLogger is the panic message WithLogger raises for a nil logger.
var ErrNilLogger = errors.New("cycleratio: logger must not be nil")

// ErrIterationLimitExceeded is returned by ParametricQSolver.Run and
// MinParametricQ when Options caps the number of parameter updates and the
// solver has not converged within that many.
var ErrIterationLimitExceeded = errors.New("cycleratio: iteration limit exceeded before convergence")

// Options configures ParametricQSolver.Run and MinParametricQ.
//
// PickOneOnly – stop scanning a pass's cycles as soon as one improves r_max,
//
//	instead of taking the best of the whole pass. Default false.
//
// MaxIters – caps the number of accepted parameter updates; 0 means
//
//	unlimited. Default 0.
//
// Logger – receives one debug-level message per accepted update, carrying
//
//	the new ratio and the next search direction. Default discards.
type Options struct {
	PickOneOnly bool
	MaxIters    int
	Logger      *log.Logger
}

// Option is a functional option for Options.
type Option func(*Options)

// WithPickOneOnly makes Run accept the first improving cycle of each pass
// instead of scanning the whole pass for the best one, trading solution
// quality for fewer zero_cancel evaluations per pass.
func WithPickOneOnly() Option {
	return func(o *Options) {
		o.PickOneOnly = true
	}
}

// WithMaxIters caps the number of accepted parameter updates before Run
// gives up and returns ErrIterationLimitExceeded. max must be > 0.
func WithMaxIters(max int) Option {
	return func(o *Options) {
		if max <= 0 {
			panic(ErrBadMaxIters.Error())
		}
		o.MaxIters = max
	}
}

// WithLogger attaches a logger for per-update diagnostics.
func WithLogger(logger *log.Logger) Option {
	return func(o *Options) {
		if logger == nil {
			panic(ErrNilLogger.Error())
		}
		o.Logger = logger
	}
}

// DefaultOptions returns the zero-configuration Options.
func DefaultOptions() Options {
	return Options{
		PickOneOnly: false,
		MaxIters:    0,
		Logger:      logx.Discard,
	}
}
