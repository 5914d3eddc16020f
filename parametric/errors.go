package parametric

import "errors"

// ErrIterationLimitExceeded is returned by Run/MaxParametric when Options
// caps the number of parameter updates via WithMaxIters and the solver has
// not converged within that many updates. The solver's best (r, cycle) found
// so far is still returned alongside the error.
var ErrIterationLimitExceeded = errors.New("parametric: iteration limit exceeded before convergence")

// ErrBadMaxIters is the panic message WithMaxIters raises for a non-positive
// iteration cap.
var ErrBadMaxIters = errors.New("parametric: MaxIters must be > 0")

// ErrNilLogger is the panic message WithLogger raises for a nil logger.
var ErrNilLogger = errors.New("parametric: logger must not be nil")
