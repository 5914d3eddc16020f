package negcycle

import (
	"fmt"
	"iter"
)

// NeighborEdge pairs an edge payload with the node it leads to. It is the
// storage unit MapGraphView and SliceGraphView keep per adjacency-list
// entry.
type NeighborEdge[Node comparable, Edge any] struct {
	To   Node
	Edge Edge
}

// MapGraphView is a GraphView backed by a plain Go map of adjacency lists.
// It is the default, general-purpose implementation for arbitrary
// comparable node identifiers — the direct analogue of the original
// digraphx library's "mapping → (mapping → edge)" representation.
//
// MapGraphView does not copy its backing map; mutating adj after
// construction while an algorithm is mid-call violates the read-only
// contract GraphView documents.
type MapGraphView[Node comparable, Edge any] struct {
	order []Node
	adj   map[Node][]NeighborEdge[Node, Edge]
}

// NewMapGraphView builds a MapGraphView from an adjacency list. order fixes
// the node-iteration order Nodes() reports (and therefore the order
// relaxation and cycle search visit nodes in); nodes referenced only as edge
// targets must still appear in order, or their own outgoing edges are never
// relaxed. Nothing panics or reports an error on such a dangling edge
// target; Validate checks for one.
func NewMapGraphView[Node comparable, Edge any](order []Node, adj map[Node][]NeighborEdge[Node, Edge]) *MapGraphView[Node, Edge] {
	return &MapGraphView[Node, Edge]{order: order, adj: adj}
}

// Nodes implements GraphView.
func (g *MapGraphView[Node, Edge]) Nodes() iter.Seq[Node] {
	return func(yield func(Node) bool) {
		for _, n := range g.order {
			if !yield(n) {
				return
			}
		}
	}
}

// Edges implements GraphView.
func (g *MapGraphView[Node, Edge]) Edges(n Node) iter.Seq2[Node, Edge] {
	return func(yield func(Node, Edge) bool) {
		for _, ne := range g.adj[n] {
			if !yield(ne.To, ne.Edge) {
				return
			}
		}
	}
}

// AddEdge appends a single outgoing edge from 'from' to 'to', creating the
// adjacency-list entry for 'from' if it does not exist yet. It does not
// register either endpoint with order; callers building a view edge-by-edge
// should track node order themselves and pass it to NewMapGraphView, or use
// NewMapGraphViewFromEdges below.
func (g *MapGraphView[Node, Edge]) AddEdge(from, to Node, edge Edge) {
	if g.adj == nil {
		g.adj = make(map[Node][]NeighborEdge[Node, Edge])
	}
	g.adj[from] = append(g.adj[from], NeighborEdge[Node, Edge]{To: to, Edge: edge})
}

// EdgeTuple is a flat (from, to, payload) triple, the literal-friendly
// input shape NewMapGraphViewFromEdges accepts.
type EdgeTuple[Node comparable, Edge any] struct {
	From, To Node
	Edge     Edge
}

// NewMapGraphViewFromEdges builds a MapGraphView from a flat edge list,
// deriving node order from first appearance (source before target) the way
// the original digraphx Python/C++ tests construct adjacency dictionaries
// from edge tuples.
func NewMapGraphViewFromEdges[Node comparable, Edge any](edges []EdgeTuple[Node, Edge]) *MapGraphView[Node, Edge] {
	g := &MapGraphView[Node, Edge]{adj: make(map[Node][]NeighborEdge[Node, Edge])}
	seen := make(map[Node]bool)
	add := func(n Node) {
		if !seen[n] {
			seen[n] = true
			g.order = append(g.order, n)
		}
	}
	for _, e := range edges {
		add(e.From)
		add(e.To)
		g.adj[e.From] = append(g.adj[e.From], NeighborEdge[Node, Edge]{To: e.To, Edge: e.Edge})
	}
	return g
}

// Validate checks that every edge target appears in g's own node order,
// returning ErrNodeNotFound wrapped with the dangling target otherwise. It
// is not called by Finder or ConstrainedFinder (a malformed GraphView is a
// contract violation per spec, not a recoverable error); callers may invoke
// it themselves during development to catch the mistake early instead of
// letting relaxation quietly skip the dangling target's own outgoing edges.
func (g *MapGraphView[Node, Edge]) Validate() error {
	known := make(map[Node]bool, len(g.order))
	for _, n := range g.order {
		known[n] = true
	}
	for _, n := range g.order {
		for _, ne := range g.adj[n] {
			if !known[ne.To] {
				return fmt.Errorf("%w: %v", ErrNodeNotFound, ne.To)
			}
		}
	}
	return nil
}

// SliceGraphView is a GraphView over dense, zero-based integer node IDs
// backed by a slice of adjacency rows — for callers who already have an
// array-style adjacency representation and do not want to build a map.
// This is deliberately not the generic integer-indexed-sequence-as-mapping
// shim spec.md places out of scope: it is a direct GraphView
// implementation, not an adapter that wraps an arbitrary keyed-mapping
// interface around a slice.
type SliceGraphView[Edge any] struct {
	rows [][]NeighborEdge[int, Edge]
}

// NewSliceGraphView builds a SliceGraphView over len(rows) nodes 0..n-1,
// where rows[u] lists u's outgoing edges.
func NewSliceGraphView[Edge any](rows [][]NeighborEdge[int, Edge]) *SliceGraphView[Edge] {
	return &SliceGraphView[Edge]{rows: rows}
}

// Nodes implements GraphView, yielding 0..len(rows)-1 in order.
func (g *SliceGraphView[Edge]) Nodes() iter.Seq[int] {
	return func(yield func(int) bool) {
		for i := range g.rows {
			if !yield(i) {
				return
			}
		}
	}
}

// Edges implements GraphView.
func (g *SliceGraphView[Edge]) Edges(n int) iter.Seq2[int, Edge] {
	return func(yield func(int, Edge) bool) {
		if n < 0 || n >= len(g.rows) {
			return
		}
		for _, ne := range g.rows[n] {
			if !yield(ne.To, ne.Edge) {
				return
			}
		}
	}
}
