// Package parametric solves the maximum parametric network problem: find
// the largest scalar r for which
//
//	dist[v] - dist[u] <= distance(r, e)
//
// holds for every edge e(u, v) of a graph, where distance is monotone
// decreasing in r. The solver drives r downward from a caller-supplied
// starting value by repeatedly running negcycle.Finder against the current
// r and, for every negative cycle found, computing the r at which that
// cycle's total weight would hit zero (zero_cancel); the smallest such value
// across all cycles found in one pass becomes the next r, until a pass finds
// no cycle that would lower r further.
//
// What:
//
//   - Solver / ParametricAPI: the stateful, graph-bound entry point. Solver
//     wraps a negcycle.Finder that Run calls repeatedly; ParametricAPI is the
//     two-method interface (Distance, ZeroCancel) callers implement to
//     describe their problem.
//   - MaxParametric: a free-function entry point for callers who would
//     rather pass distance/zeroCancel as plain funcs than implement
//     ParametricAPI — mirroring the class-based/functional pair the teacher
//     library offers for e.g. dijkstra.Dijkstra vs a hypothetical struct form.
//
// Why:
//
//   - This is the shared engine behind minimum cost-to-time cycle ratio
//     (see the sibling cycleratio package) and any other problem reducible
//     to "find the tightest feasible value of a parameter under a system of
//     difference constraints."
//
// Errors:
//
//   - ErrIterationLimitExceeded — returned by Run/MaxParametric when Options
//     caps the number of parameter updates and the solver has not converged
//     within that many; Run/MaxParametric still return the best (r, cycle)
//     found so far alongside the error.
package parametric
