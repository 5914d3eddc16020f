package negcycle_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/luk036/digraphx-go/negcycle"
)

// ConstrainedSuite exercises ConstrainedFinder's predecessor and successor
// policy-iteration passes under various UpdateOk filters.
type ConstrainedSuite struct {
	suite.Suite
}

func TestConstrainedSuite(t *testing.T) {
	suite.Run(t, new(ConstrainedSuite))
}

func (s *ConstrainedSuite) TestHowardPredUnconstrainedMatchesFinder() {
	g := negcycle.NewMapGraphViewFromEdges(edges(
		et("A", "B", 1),
		et("B", "C", 1),
		et("C", "A", -5),
	))
	dist := negcycle.NewMapDistance[string, int]([]string{"A", "B", "C"}, 0)

	cf := negcycle.NewConstrainedFinder[string, int, int](g)
	found := false
	for range cf.HowardPred(dist, identity, negcycle.AlwaysUpdate[int]) {
		found = true
	}
	require.True(s.T(), found, "AlwaysUpdate must behave like the unconstrained Finder")
}

func (s *ConstrainedSuite) TestHowardPredRejectsUpdatesUpdateOkForbids() {
	g := negcycle.NewMapGraphViewFromEdges(edges(
		et("A", "B", 1),
		et("B", "A", -5),
	))
	dist := negcycle.NewMapDistance[string, int]([]string{"A", "B"}, 0)

	never := func(old, next int) bool { return false }
	cf := negcycle.NewConstrainedFinder[string, int, int](g)
	found := false
	for range cf.HowardPred(dist, identity, never) {
		found = true
	}
	require.False(s.T(), found, "a filter that forbids every update must prevent relaxation entirely")
}

func (s *ConstrainedSuite) TestHowardSuccFindsCycleForwardMisses() {
	// A successor pass relaxes u toward dist[v]-w(e); construct a case where
	// the predecessor direction is blocked by UpdateOk but the successor
	// direction is not, so HowardSucc must still expose the cycle.
	g := negcycle.NewMapGraphViewFromEdges(edges(
		et("A", "B", 2),
		et("B", "A", -5),
	))
	dist := negcycle.NewMapDistance[string, int]([]string{"A", "B"}, 0)

	// Forbid any predecessor relaxation that would move past -1.
	predOk := func(old, next int) bool { return next >= -1 }
	cf := negcycle.NewConstrainedFinder[string, int, int](g)
	predFound := false
	for range cf.HowardPred(dist, identity, predOk) {
		predFound = true
	}
	require.False(s.T(), predFound)

	dist = negcycle.NewMapDistance[string, int]([]string{"A", "B"}, 0)
	succFound := false
	for range cf.HowardSucc(dist, identity, negcycle.AlwaysUpdate[int]) {
		succFound = true
	}
	require.True(s.T(), succFound, "successor relaxation should expose the cycle the predecessor pass could not")
}

func (s *ConstrainedSuite) TestPredPolicyAndSuccPolicyAreIndependent() {
	g := negcycle.NewMapGraphViewFromEdges(edges(
		et("A", "B", -1),
		et("B", "A", -1),
	))
	dist := negcycle.NewMapDistance[string, int]([]string{"A", "B"}, 0)
	cf := negcycle.NewConstrainedFinder[string, int, int](g)
	for range cf.HowardPred(dist, identity, negcycle.AlwaysUpdate[int]) {
		break
	}
	require.NotEmpty(s.T(), cf.PredPolicy())
	require.Empty(s.T(), cf.SuccPolicy(), "SuccPolicy must stay empty until HowardSucc is called")
}
