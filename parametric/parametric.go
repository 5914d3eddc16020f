package parametric

import (
	"github.com/luk036/digraphx-go/negcycle"
)

// ParametricAPI describes one maximum-parametric problem instance: how an
// edge's distance depends on the current parameter value, and how to
// compute the parameter value at which a given cycle's total weight would
// be exactly zero.
type ParametricAPI[Edge any, D negcycle.Domain, R negcycle.Domain] interface {
	// Distance computes the weight of edge under parameter r.
	Distance(r R, e Edge) D
	// ZeroCancel computes the value of r at which c's total weight under
	// Distance(r, ·) would be exactly zero.
	ZeroCancel(c negcycle.Cycle[Edge]) R
}

// Solver repeatedly runs negcycle.Finder against a fixed GraphView as the
// parameter r is driven toward its tightest feasible value. Construct once
// and reuse across multiple Run calls; each Run resets the underlying
// Finder's policy.
type Solver[Node comparable, Edge any, D negcycle.Domain, R negcycle.Domain] struct {
	finder *negcycle.Finder[Node, Edge, D]
	omega  ParametricAPI[Edge, D, R]
	opts   Options
}

// NewSolver constructs a Solver over g, configured by opts (DefaultOptions
// if none are given).
func NewSolver[Node comparable, Edge any, D negcycle.Domain, R negcycle.Domain](
	g negcycle.GraphView[Node, Edge], omega ParametricAPI[Edge, D, R], opts ...Option,
) *Solver[Node, Edge, D, R] {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &Solver[Node, Edge, D, R]{
		finder: negcycle.NewFinder[Node, Edge, D](g),
		omega:  omega,
		opts:   o,
	}
}

// Run finds the maximum r <= rOpt such that dist[v]-dist[u] <= Distance(r,e)
// holds for every edge, starting from rOpt and the caller-provided dist.
// dist is mutated in place, mirroring negcycle.Finder.Howard. It returns the
// final r and the cycle that pinned it (nil if rOpt was already feasible).
//
// If Options.MaxIters is set and exceeded before convergence, Run returns
// the best (r, cycle) found so far alongside ErrIterationLimitExceeded.
func (s *Solver[Node, Edge, D, R]) Run(rOpt R, dist negcycle.DistanceMap[Node, D]) (R, negcycle.Cycle[Edge], error) {
	var cOpt negcycle.Cycle[Edge]
	iters := 0
	for {
		rMin := rOpt
		var cMin negcycle.Cycle[Edge]
		getWeight := func(e Edge) D { return s.omega.Distance(rOpt, e) }
		for ci := range s.finder.Howard(dist, getWeight) {
			ri := s.omega.ZeroCancel(ci)
			if rMin > ri {
				rMin = ri
				cMin = ci
			}
		}
		if rMin >= rOpt {
			return rOpt, cOpt, nil
		}

		cOpt = cMin
		rOpt = rMin
		s.opts.Logger.Debug("parametric: accepted update", "r", rOpt)

		iters++
		if s.opts.MaxIters > 0 && iters >= s.opts.MaxIters {
			return rOpt, cOpt, ErrIterationLimitExceeded
		}
	}
}

// MaxParametric is the free-function counterpart to Solver, for callers who
// would rather pass distance/zeroCancel as plain functions than implement
// ParametricAPI.
func MaxParametric[Node comparable, Edge any, D negcycle.Domain, R negcycle.Domain](
	g negcycle.GraphView[Node, Edge],
	rOpt R,
	distance func(r R, e Edge) D,
	zeroCancel func(c negcycle.Cycle[Edge]) R,
	dist negcycle.DistanceMap[Node, D],
	opts ...Option,
) (R, negcycle.Cycle[Edge], error) {
	s := NewSolver[Node, Edge, D, R](g, funcAPI[Edge, D, R]{distance: distance, zeroCancel: zeroCancel}, opts...)
	return s.Run(rOpt, dist)
}

// funcAPI adapts a pair of plain functions to ParametricAPI.
type funcAPI[Edge any, D negcycle.Domain, R negcycle.Domain] struct {
	distance   func(r R, e Edge) D
	zeroCancel func(c negcycle.Cycle[Edge]) R
}

func (f funcAPI[Edge, D, R]) Distance(r R, e Edge) D {
	return f.distance(r, e)
}

func (f funcAPI[Edge, D, R]) ZeroCancel(c negcycle.Cycle[Edge]) R {
	return f.zeroCancel(c)
}
