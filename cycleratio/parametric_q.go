package cycleratio

import (
	"github.com/luk036/digraphx-go/negcycle"
	"github.com/luk036/digraphx-go/parametric"
)

// ParametricQSolver solves the constrained minimum parametric problem
//
//	min  r
//	s.t. dist[v] - dist[u] <= Distance(r, e)
//	     for every edge e(u, v)
//	     subject to UpdateOk(old, new)
//
// by alternating negcycle.ConstrainedFinder's successor and predecessor
// passes, ascending r from a caller-supplied starting value. Reuses
// parametric.ParametricAPI's two-method shape (Distance, ZeroCancel) since
// the per-edge computation is identical; only the search direction and the
// ascend-vs-descend convergence test differ from parametric.Solver.
type ParametricQSolver[Node comparable, Edge any, D negcycle.Domain, R negcycle.Domain] struct {
	cf    *negcycle.ConstrainedFinder[Node, Edge, D]
	omega parametric.ParametricAPI[Edge, D, R]
	opts  Options
}

// NewParametricQSolver constructs a ParametricQSolver over g.
func NewParametricQSolver[Node comparable, Edge any, D negcycle.Domain, R negcycle.Domain](
	g negcycle.GraphView[Node, Edge], omega parametric.ParametricAPI[Edge, D, R], opts ...Option,
) *ParametricQSolver[Node, Edge, D, R] {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &ParametricQSolver[Node, Edge, D, R]{
		cf:    negcycle.NewConstrainedFinder[Node, Edge, D](g),
		omega: omega,
		opts:  o,
	}
}

// Run raises ratio, starting from the caller-provided dist and ratio, until
// a pass under updateOk finds no cycle whose ZeroCancel exceeds it — the
// smallest value reached that way. It alternates HowardSucc and
// HowardPred passes every time ratio improves, since a fixed direction can
// miss cycles a restrictive updateOk hides from it but not from the other
// direction.
func (s *ParametricQSolver[Node, Edge, D, R]) Run(
	dist negcycle.DistanceMap[Node, D], ratio R, updateOk negcycle.UpdateOk[D],
) (R, negcycle.Cycle[Edge], error) {
	rMax := ratio
	var cMax, cycle negcycle.Cycle[Edge]
	reverse := true
	iters := 0

	for {
		getWeight := func(e Edge) D { return s.omega.Distance(ratio, e) }

		consider := func(ci negcycle.Cycle[Edge]) bool {
			ri := s.omega.ZeroCancel(ci)
			if rMax < ri {
				rMax = ri
				cMax = ci
				return s.opts.PickOneOnly
			}
			return false
		}

		if reverse {
			for ci := range s.cf.HowardSucc(dist, getWeight, updateOk) {
				if consider(ci) {
					break
				}
			}
		} else {
			for ci := range s.cf.HowardPred(dist, getWeight, updateOk) {
				if consider(ci) {
					break
				}
			}
		}

		if rMax <= ratio {
			return ratio, cycle, nil
		}

		cycle = cMax
		ratio = rMax
		reverse = !reverse
		s.opts.Logger.Debug("cycleratio: accepted update", "ratio", ratio, "reverse", reverse)

		iters++
		if s.opts.MaxIters > 0 && iters >= s.opts.MaxIters {
			return ratio, cycle, ErrIterationLimitExceeded
		}
	}
}

// MinParametricQ is the free-function counterpart to ParametricQSolver.
func MinParametricQ[Node comparable, Edge any, D negcycle.Domain, R negcycle.Domain](
	g negcycle.GraphView[Node, Edge],
	ratio R,
	distance func(r R, e Edge) D,
	zeroCancel func(c negcycle.Cycle[Edge]) R,
	dist negcycle.DistanceMap[Node, D],
	updateOk negcycle.UpdateOk[D],
	opts ...Option,
) (R, negcycle.Cycle[Edge], error) {
	s := NewParametricQSolver[Node, Edge, D, R](g, funcAPI[Edge, D, R]{distance: distance, zeroCancel: zeroCancel}, opts...)
	return s.Run(dist, ratio, updateOk)
}

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
