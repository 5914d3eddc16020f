package cycleratio

import (
	"github.com/luk036/digraphx-go/negcycle"
	"github.com/luk036/digraphx-go/parametric"
)

// CostTimeEdge is satisfied by any edge payload that knows its own cost and
// time, letting MinCycleRatioEdge skip the separate accessor-function pair
// MinCycleRatio requires.
type CostTimeEdge[D negcycle.Domain] interface {
	Cost() D
	Time() D
}

// ratioAPI adapts a getCost/getTime accessor pair to parametric.ParametricAPI
// via the reduction distance(r,e) = cost(e) - r*time(e),
// zero_cancel(C) = Σcost(e)/Σtime(e).
type ratioAPI[Edge any, D negcycle.Domain] struct {
	getCost func(Edge) D
	getTime func(Edge) D
}

func (a ratioAPI[Edge, D]) Distance(r D, e Edge) D {
	return a.getCost(e) - r*a.getTime(e)
}

func (a ratioAPI[Edge, D]) ZeroCancel(c negcycle.Cycle[Edge]) D {
	var totalCost, totalTime D
	for _, e := range c {
		totalCost += a.getCost(e)
		totalTime += a.getTime(e)
	}
	return totalCost / totalTime
}

// MinCycleRatio finds the cycle minimizing Σcost(e)/Σtime(e) over every
// cycle in g, by running parametric.MaxParametric with
// distance(r,e) = cost(e) - r*time(e). r0 is both the ratio upper bound to
// search from and, on return, the minimum ratio found; dist is mutated in
// place the way parametric.Solver.Run mutates its distance map.
//
// time(e) must be strictly positive for every edge on every cycle, or
// ZeroCancel divides by a non-positive total and the result is meaningless.
func MinCycleRatio[Node comparable, Edge any, D negcycle.Domain](
	g negcycle.GraphView[Node, Edge],
	r0 D,
	getCost func(Edge) D,
	getTime func(Edge) D,
	dist negcycle.DistanceMap[Node, D],
	opts ...parametric.Option,
) (D, negcycle.Cycle[Edge], error) {
	api := ratioAPI[Edge, D]{getCost: getCost, getTime: getTime}
	solver := parametric.NewSolver[Node, Edge, D, D](g, api, opts...)
	return solver.Run(r0, dist)
}

// MinCycleRatioEdge is MinCycleRatio for edge payloads that implement
// CostTimeEdge directly, so callers do not need to write their own
// getCost/getTime closures when the edge type already carries that data.
func MinCycleRatioEdge[Node comparable, Edge CostTimeEdge[D], D negcycle.Domain](
	g negcycle.GraphView[Node, Edge],
	r0 D,
	dist negcycle.DistanceMap[Node, D],
	opts ...parametric.Option,
) (D, negcycle.Cycle[Edge], error) {
	return MinCycleRatio[Node, Edge, D](
		g, r0,
		func(e Edge) D { return e.Cost() },
		func(e Edge) D { return e.Time() },
		dist, opts...,
	)
}
