package negcycle

import "iter"

// Domain is the numeric type a distance value lives in. It is satisfied by
// int, int32, int64, float32 and float64 (or a named type derived from one;
// int8 and int16 are not included), so that arithmetic on distances uses native
// operators rather than an Add/Sub/Cmp interface no algorithm in this module
// actually needs. Rational or big-integer types are out of reach of this
// constraint because Go generics cannot express operator overloading for
// method-based numeric types — see DESIGN.md for the tradeoff this accepts.
type Domain interface {
	~int | ~int32 | ~int64 | ~float32 | ~float64
}

// WeightFunc maps an edge payload to a distance value. It is called once per
// edge per relaxation pass; implementations may memoize internally if pure,
// but Finder itself performs no caching across passes.
type WeightFunc[Edge any, D Domain] func(e Edge) D

// UpdateOk reports whether a relaxation step that would move dist from old
// to next should be allowed to proceed. AlwaysUpdate is the identity filter
// used by unconstrained callers.
type UpdateOk[D Domain] func(old, next D) bool

// AlwaysUpdate never rejects an update; it is the filter ConstrainedFinder
// callers pass when they have no constraint of their own, matching the
// original digraphx implementation's default `update_ok` for its
// free-function entry points.
func AlwaysUpdate[D Domain](_, _ D) bool { return true }

// GraphView is a read-only, repeatably-iterable view over a finite directed
// multigraph. Nodes yields every node exactly once; Edges(n) yields every
// outgoing edge of n as a (target, payload) pair. Both must be stable within
// a single Howard*/MaxParametric/MinCycleRatio call, but no ordering across
// calls is guaranteed.
//
// A Finder or ConstrainedFinder keeps a reference to the GraphView it was
// constructed around and reads it during every call; it never modifies it.
type GraphView[Node comparable, Edge any] interface {
	// Nodes enumerates every node in the graph, once, in a stable order
	// for the lifetime of one algorithm invocation.
	Nodes() iter.Seq[Node]

	// Edges enumerates the outgoing edges of n as (target, payload) pairs.
	Edges(n Node) iter.Seq2[Node, Edge]
}

// DistanceMap is the mutable, caller-owned node→distance mapping every
// algorithm in this module reads and updates in place. A node not
// previously written returns whatever initializing value the caller placed
// there.
type DistanceMap[Node comparable, D Domain] interface {
	Get(n Node) D
	Set(n Node, v D)
}

// Cycle is an ordered, nonempty sequence of edge payloads reconstructed from
// a policy map, starting and ending at the same (implicit) node. Orientation
// follows the policy it was built from: a predecessor-policy cycle is
// traversed against edge direction, a successor-policy cycle along it.
type Cycle[Edge any] []Edge

// Weight sums weightOf over every edge in c. This is a convenience for
// callers and tests; neither Finder nor VerifyNegative sums a whole cycle.
// Go methods cannot introduce their own type
// parameters, so this is a free function rather than a Cycle method.
func Weight[Edge any, D Domain](c Cycle[Edge], weightOf WeightFunc[Edge, D]) D {
	var total D
	for _, e := range c {
		total += weightOf(e)
	}
	return total
}
