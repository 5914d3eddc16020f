package negcycle

import "iter"

// Finder detects negative cycles in a weighted directed multigraph using
// Howard's policy-iteration method. Construct once around a GraphView and
// reuse across multiple Howard calls; each call resets the finder's private
// predecessor policy.
//
// A Finder must not be used from more than one goroutine at a time, and a
// caller must not advance two range-over-func iterations of the same
// Howard() call concurrently.
type Finder[Node comparable, Edge any, D Domain] struct {
	g    GraphView[Node, Edge]
	pred Policy[Node, Edge]
}

// NewFinder constructs a Finder around g. g is borrowed for the lifetime of
// every Howard call made on the returned Finder; it must support repeated,
// stable-order iteration within one such call.
func NewFinder[Node comparable, Edge any, D Domain](g GraphView[Node, Edge]) *Finder[Node, Edge, D] {
	return &Finder[Node, Edge, D]{g: g}
}

// Policy exposes the predecessor policy built by the most recent Howard
// call, for diagnostics and tests.
func (f *Finder[Node, Edge, D]) Policy() Policy[Node, Edge] { return f.pred }

// Howard returns a lazy sequence of negative cycles found by repeatedly
// relaxing every edge and, after each pass that changed some distance,
// searching the resulting predecessor policy for cycles. The sequence ends
// after the first pass whose search found a cycle, or at the first pass
// that changes nothing. It is empty if the graph has no negative cycle
// under weightOf, or if the graph is empty.
//
// dist is mutated in place across the whole call: every relaxation pass
// tightens it further, and yielded cycles reflect the policy as of the pass
// that discovered them, not a snapshot taken at call time.
//
// Per spec, Howard never fails: weightOf panicking propagates directly to
// the caller. A malformed GraphView (an edge target absent from Nodes()) is
// a contract violation that Howard neither detects nor reports: the target's
// distance is still written, but its own outgoing edges are never relaxed
// and no cycle search starts from it.
func (f *Finder[Node, Edge, D]) Howard(dist DistanceMap[Node, D], weightOf WeightFunc[Edge, D]) iter.Seq[Cycle[Edge]] {
	return func(yield func(Cycle[Edge]) bool) {
		f.pred = make(Policy[Node, Edge])
		for f.relax(dist, weightOf) {
			found := false
			for handle := range findCycles(f.g, f.pred) {
				if !yield(cycleList(handle, f.pred)) {
					return
				}
				found = true
			}
			if found {
				return
			}
		}
	}
}

// relax performs one relaxation pass over every edge of the graph,
// tightening dist[v] and recording v's predecessor whenever a strictly
// shorter path u->v is found. It reports whether any distance changed.
func (f *Finder[Node, Edge, D]) relax(dist DistanceMap[Node, D], weightOf WeightFunc[Edge, D]) bool {
	changed := false
	for u := range f.g.Nodes() {
		du := dist.Get(u)
		for v, e := range f.g.Edges(u) {
			d := du + weightOf(e)
			if dist.Get(v) > d {
				dist.Set(v, d)
				f.pred[v] = PolicyEntry[Node, Edge]{Via: u, Edge: e}
				changed = true
			}
		}
	}
	return changed
}
