package negcycle

import "iter"

// PolicyEntry records one node's best incoming (predecessor policy) or
// outgoing (successor policy) edge under the current relaxation.
type PolicyEntry[Node comparable, Edge any] struct {
	// Via is the predecessor (pred policy) or successor (succ policy)
	// node this entry points to.
	Via Node
	// Edge is the payload of the edge connecting the node to Via.
	Edge Edge
}

// Policy is a partial node->PolicyEntry mapping. It is private to each
// finder and cleared at the start of every Howard*/HowardPred/HowardSucc
// call; a node is absent until relaxation first reaches it.
type Policy[Node comparable, Edge any] map[Node]PolicyEntry[Node, Edge]

// findCycles walks policy from every node of g in g's iteration order and
// yields each node that is the entry point of a cycle in policy. A node
// already classified by a previous seed's walk is skipped; the seed node
// itself counts as visited at step zero.
//
// Because policy has out-degree at most one per node, every walk traces a
// "rho" shape — a tail leading into at most one cycle — so this classifies
// every node exactly once across all seeds.
func findCycles[Node comparable, Edge any](g GraphView[Node, Edge], policy Policy[Node, Edge]) iter.Seq[Node] {
	return func(yield func(Node) bool) {
		visited := make(map[Node]Node)
		for v := range g.Nodes() {
			if _, ok := visited[v]; ok {
				continue
			}
			u := v
			for {
				visited[u] = v
				entry, ok := policy[u]
				if !ok {
					break // dead end: u was never reached by relaxation.
				}
				u = entry.Via
				if seed, ok := visited[u]; ok {
					if seed == v {
						if !yield(u) {
							return
						}
					}
					break
				}
			}
		}
	}
}

// cycleList walks policy from handle until it returns to handle, collecting
// edge payloads in traversal order.
func cycleList[Node comparable, Edge any](handle Node, policy Policy[Node, Edge]) Cycle[Edge] {
	var cycle Cycle[Edge]
	v := handle
	for {
		entry := policy[v]
		cycle = append(cycle, entry.Edge)
		v = entry.Via
		if v == handle {
			break
		}
	}
	return cycle
}

// VerifyNegative reports whether the cycle rooted at handle in policy sums
// to a strictly negative weight: whether at least one edge on the cycle
// still strictly improves on the distances relaxation has already
// committed to dist. It returns nil when the cycle is confirmed negative,
// and ErrNotNegative otherwise. Howard/HowardPred never need to call this
// themselves (the cycles they yield are negative by construction); it is
// exported for tests, and for callers who want to double-check a HowardSucc
// result, which — per spec — carries no such guarantee.
func VerifyNegative[Node comparable, Edge any, D Domain](handle Node, policy Policy[Node, Edge], dist DistanceMap[Node, D], weightOf WeightFunc[Edge, D]) error {
	v := handle
	for {
		entry, ok := policy[v]
		if !ok {
			return ErrNotNegative
		}
		if dist.Get(v) > dist.Get(entry.Via)+weightOf(entry.Edge) {
			return nil
		}
		v = entry.Via
		if v == handle {
			return ErrNotNegative
		}
	}
}
