// Package digraphx is a small library of graph-algorithmic primitives for
// weighted directed graphs, centered on Howard's policy-iteration method for
// negative-cycle detection and the parametric network problems built on top
// of it.
//
// Subpackages:
//
//	negcycle/   — Howard policy-iteration negative-cycle detection, unconstrained and constrained
//	parametric/ — maximum parametric network solver (drives a scalar parameter to feasibility)
//	cycleratio/ — minimum cost-to-time cycle ratio, built on parametric
//
// negcycle, parametric and cycleratio operate on a caller-supplied
// negcycle.GraphView rather than any particular graph storage type;
// negcycle.MapGraphView covers arbitrary comparable node keys, and
// negcycle.SliceGraphView covers dense integer node IDs. Any other type
// satisfying GraphView's two-method shape works too.
//
// Quick example: detecting a negative cycle in a MapGraphView.
//
//	g := negcycle.NewMapGraphViewFromEdges([]negcycle.EdgeTuple[string, int64]{
//		{From: "A", To: "B", Edge: 1},
//		{From: "B", To: "C", Edge: 1},
//		{From: "C", To: "A", Edge: -5},
//	})
//	dist := negcycle.NewMapDistance[string, int64]([]string{"A", "B", "C"}, 0)
//	finder := negcycle.NewFinder[string, int64, int64](g)
//	for cycle := range finder.Howard(dist, func(e int64) int64 { return e }) {
//		// cycle is a []int64 whose total weight is strictly negative.
//		_ = cycle
//	}
package digraphx
