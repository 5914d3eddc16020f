// Package negcycle detects negative-weight cycles in a weighted directed
// multigraph using Howard's policy-iteration method, and a constrained
// variant that supports both predecessor (forward) and successor (reverse)
// relaxation under a caller-supplied update filter.
//
// What:
//
//   - Finder: repeatedly relaxes all edges and, after each relaxation pass
//     that changed some distance, searches the resulting predecessor policy
//     for cycles; it stops once a pass makes no further progress or a search
//     has found a cycle. Any cycle found this way is negative under the current weight
//     functor — this is the core fact Howard's method exploits to avoid the
//     repeated source-rooted restarts Bellman-Ford would otherwise need.
//   - ConstrainedFinder: the same policy-iteration core, but each relaxation step
//     is additionally gated by an UpdateOk predicate, and a dual
//     successor-policy variant (HowardSucc) is available for callers whose
//     UpdateOk is too restrictive for forward relaxation alone to expose
//     every cycle.
//   - GraphView / DistanceMap: the two borrowed, caller-owned collaborators
//     every algorithm here reads and mutates. Two GraphView implementations
//     are provided: MapGraphView (arbitrary comparable node keys) and
//     SliceGraphView (dense integer node IDs).
//
// Why:
//
//   - Negative-cycle detection underlies minimum cycle-ratio problems
//     (see the sibling cycleratio package), feasibility checking for
//     difference-constraint systems, and timing analysis of discrete event
//     systems — anywhere "is there a cycle whose accumulated cost is
//     negative under this weight function" needs an answer without paying
//     for a full Bellman-Ford restart per candidate source.
//
// Complexity:
//
//   - Howard / HowardPred / HowardSucc: O(V·E) relaxation passes in the
//     worst case, each pass O(E); cycle search is O(V) per pass since the
//     policy graph has out-degree at most one per node.
//   - Memory: O(V) for the policy map, on top of whatever DistanceMap and
//     GraphView the caller provides.
//
// Errors:
//
//   - ErrNotNegative — returned by VerifyNegative (not by Howard/HowardPred
//     themselves, which never fail) when an assumed-negative cycle in fact
//     is not, indicating a caller-supplied WeightFunc is not pure/consistent
//     across calls within one Howard invocation.
//   - ErrNodeNotFound — returned by MapGraphView.Validate (an opt-in check,
//     not called automatically) when an edge target is absent from the
//     view's own node set; outside Validate, a dangling edge target is a
//     contract violation that is not reported at all: neither MapGraphView
//     nor SliceGraphView panics on one, and the target's own outgoing edges
//     are simply never relaxed.
//
// See also:
//
//   - parametric.Solver: drives a scalar parameter using cycles from Finder.
//   - cycleratio.MinCycleRatio: cost/time ratio specialization of parametric.Solver.
package negcycle
