package cycleratio_test

import (
	"testing"

	"github.com/luk036/digraphx-go/cycleratio"
	"github.com/luk036/digraphx-go/negcycle"
)

// sumAPI is a toy parametric.ParametricAPI: distance ignores r entirely and
// returns the edge's own weight, and zeroCancel is the plain sum of a
// cycle's edge weights. This isolates ParametricQSolver's ascending
// bookkeeping and direction-alternation from the cost/time ratio reduction
// already covered by ratio_test.go.
type sumAPI struct{}

func (sumAPI) Distance(_ int, e int) int { return e }

func (sumAPI) ZeroCancel(c negcycle.Cycle[int]) int {
	total := 0
	for _, w := range c {
		total += w
	}
	return total
}

func identityWeight(e int) int { return e }

func TestParametricQSolver_UnconstrainedConvergence(t *testing.T) {
	g := negcycle.NewMapGraphViewFromEdges([]negcycle.EdgeTuple[string, int]{
		{From: "A", To: "B", Edge: -3},
		{From: "B", To: "A", Edge: 1},
	})
	dist := negcycle.NewMapDistance[string, int]([]string{"A", "B"}, 0)

	solver := cycleratio.NewParametricQSolver[string, int, int, int](g, sumAPI{})
	ratio, cycle, err := solver.Run(dist, -100, negcycle.AlwaysUpdate[int])
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ratio != -2 {
		t.Fatalf("expected ratio -2 (-3 + 1), got %v", ratio)
	}
	if len(cycle) != 2 {
		t.Fatalf("expected a 2-edge cycle, got %d edges", len(cycle))
	}
}

func TestParametricQSolver_PickOneOnlyShortCircuitsOnFirstCycle(t *testing.T) {
	// Two disjoint 2-cycles discovered in the same pass: A<->B sums to -2,
	// C<->D sums to -1. Without PickOneOnly the solver examines both and
	// keeps the higher-ratio cycle (-1); with PickOneOnly it accepts
	// whichever cycle the search yields first (-2) and stops looking.
	newGraph := func() *negcycle.MapGraphView[string, int] {
		return negcycle.NewMapGraphViewFromEdges([]negcycle.EdgeTuple[string, int]{
			{From: "A", To: "B", Edge: -3},
			{From: "B", To: "A", Edge: 1},
			{From: "C", To: "D", Edge: -3},
			{From: "D", To: "C", Edge: 2},
		})
	}

	dist := negcycle.NewMapDistance[string, int]([]string{"A", "B", "C", "D"}, 0)
	solver := cycleratio.NewParametricQSolver[string, int, int, int](
		newGraph(), sumAPI{}, cycleratio.WithMaxIters(1),
	)
	ratio, _, err := solver.Run(dist, -100, negcycle.AlwaysUpdate[int])
	if err != cycleratio.ErrIterationLimitExceeded {
		t.Fatalf("expected ErrIterationLimitExceeded, got %v", err)
	}
	if ratio != -1 {
		t.Fatalf("expected the higher-ratio cycle (-1) without PickOneOnly, got %v", ratio)
	}

	dist = negcycle.NewMapDistance[string, int]([]string{"A", "B", "C", "D"}, 0)
	solver = cycleratio.NewParametricQSolver[string, int, int, int](
		newGraph(), sumAPI{}, cycleratio.WithMaxIters(1), cycleratio.WithPickOneOnly(),
	)
	ratio, _, err = solver.Run(dist, -100, negcycle.AlwaysUpdate[int])
	if err != cycleratio.ErrIterationLimitExceeded {
		t.Fatalf("expected ErrIterationLimitExceeded, got %v", err)
	}
	if ratio != -2 {
		t.Fatalf("expected PickOneOnly to stop at the first cycle found (-2), got %v", ratio)
	}
}

func TestParametricQSolver_SuccessorPassRescuesRestrictiveUpdateOk(t *testing.T) {
	// Mirrors negcycle's TestHowardSuccFindsCycleForwardMisses: updateOk
	// blocks HowardPred entirely when started from a fresh distance map,
	// but ParametricQSolver.Run always tries the successor direction
	// first, so it still converges to the cycle a predecessor-only driver
	// would have missed.
	g := negcycle.NewMapGraphViewFromEdges([]negcycle.EdgeTuple[string, int]{
		{From: "A", To: "B", Edge: 2},
		{From: "B", To: "A", Edge: -5},
	})
	updateOk := func(_, next int) bool { return next >= -1 }

	predDist := negcycle.NewMapDistance[string, int]([]string{"A", "B"}, 0)
	predCf := negcycle.NewConstrainedFinder[string, int, int](g)
	predFound := false
	for range predCf.HowardPred(predDist, identityWeight, updateOk) {
		predFound = true
	}
	if predFound {
		t.Fatal("expected HowardPred alone, from a fresh distance map, to be blocked by updateOk")
	}

	dist := negcycle.NewMapDistance[string, int]([]string{"A", "B"}, 0)
	solver := cycleratio.NewParametricQSolver[string, int, int, int](g, sumAPI{})
	ratio, cycle, err := solver.Run(dist, -100, updateOk)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ratio != -3 {
		t.Fatalf("expected ratio -3 (2 + -5), got %v", ratio)
	}
	if len(cycle) != 2 {
		t.Fatalf("expected a 2-edge cycle, got %d edges", len(cycle))
	}
}
