package cycleratio_test

import (
	"testing"

	"github.com/luk036/digraphx-go/cycleratio"
	"github.com/luk036/digraphx-go/negcycle"
)

type ctEdge struct {
	cost, time float64
}

func (e ctEdge) Cost() float64 { return e.cost }
func (e ctEdge) Time() float64 { return e.time }

func TestMinCycleRatio_SimpleTriangle(t *testing.T) {
	g := negcycle.NewMapGraphViewFromEdges([]negcycle.EdgeTuple[string, ctEdge]{
		{From: "A", To: "B", Edge: ctEdge{cost: 3, time: 1}},
		{From: "B", To: "C", Edge: ctEdge{cost: 2, time: 1}},
		{From: "C", To: "A", Edge: ctEdge{cost: 1, time: 1}},
	})
	dist := negcycle.NewMapDistance[string, float64]([]string{"A", "B", "C"}, 0)

	ratio, cycle, err := cycleratio.MinCycleRatio[string, ctEdge, float64](
		g, 1e9,
		func(e ctEdge) float64 { return e.cost },
		func(e ctEdge) float64 { return e.time },
		dist,
	)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ratio != 2.0 {
		t.Fatalf("expected ratio 2.0 (cost 6 / time 3), got %v", ratio)
	}
	if len(cycle) != 3 {
		t.Fatalf("expected a 3-edge cycle, got %d edges", len(cycle))
	}
}

func TestMinCycleRatioEdge_UsesCostTimeEdge(t *testing.T) {
	g := negcycle.NewMapGraphViewFromEdges([]negcycle.EdgeTuple[string, ctEdge]{
		{From: "A", To: "B", Edge: ctEdge{cost: 1, time: 1}},
		{From: "B", To: "A", Edge: ctEdge{cost: 1, time: 1}},
	})
	dist := negcycle.NewMapDistance[string, float64]([]string{"A", "B"}, 0)

	ratio, _, err := cycleratio.MinCycleRatioEdge[string, ctEdge, float64](g, 1e9, dist)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ratio != 1.0 {
		t.Fatalf("expected ratio 1.0, got %v", ratio)
	}
}

func TestMinCycleRatio_TwoCyclesPicksLower(t *testing.T) {
	g := negcycle.NewMapGraphViewFromEdges([]negcycle.EdgeTuple[string, ctEdge]{
		{From: "A", To: "B", Edge: ctEdge{cost: 4, time: 1}},
		{From: "B", To: "A", Edge: ctEdge{cost: 4, time: 1}}, // ratio 4.0
		{From: "C", To: "D", Edge: ctEdge{cost: 1, time: 1}},
		{From: "D", To: "C", Edge: ctEdge{cost: 1, time: 1}}, // ratio 1.0
	})
	dist := negcycle.NewMapDistance[string, float64]([]string{"A", "B", "C", "D"}, 0)

	ratio, _, err := cycleratio.MinCycleRatio[string, ctEdge, float64](
		g, 1e9,
		func(e ctEdge) float64 { return e.cost },
		func(e ctEdge) float64 { return e.time },
		dist,
	)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ratio != 1.0 {
		t.Fatalf("expected the lower-ratio cycle (1.0) to win, got %v", ratio)
	}
}
