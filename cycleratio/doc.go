// Package cycleratio solves minimum cost-to-time cycle-ratio problems: find
// the cycle in a weighted directed graph minimizing Σcost(e) / Σtime(e), by
// specializing parametric.MaxParametric with
//
//	distance(r, e) = cost(e) - r*time(e)
//	zero_cancel(C)  = Σcost(e) / Σtime(e), e in C
//
// and its constrained counterpart, MinParametricQ, which alternates
// negcycle.ConstrainedFinder's predecessor and successor searches under a
// caller-supplied UpdateOk the way min_parametric_q.hpp's MinParametricSolver
// does, ascending r_max instead of descending r_opt.
//
// What:
//
//   - MinCycleRatio: the free-function entry point; wraps a CostTimeEdge
//     accessor pair into a parametric.ParametricAPI and runs
//     parametric.MaxParametric.
//   - MinParametricQ: the constrained, alternating-direction counterpart,
//     used when a caller's update rule (e.g. a budget, a rate limit) makes
//     single-direction relaxation unable to see every violating cycle.
//
// Why:
//
//   - Minimum cycle ratio is the core subroutine behind maximum throughput
//     computation for marked graphs / timed Petri nets and minimum-cost-
//     to-time cycles in discrete event systems: this package gives both the
//     textbook unconstrained form and the update-constrained form the
//     original digraphx library ships for that domain.
package cycleratio
