package negcycle

import "errors"

// Sentinel errors returned by this package. Howard and HowardPred/HowardSucc
// themselves never fail (per spec: an empty graph or one with no negative
// cycle simply yields an empty sequence); these are returned only by the
// verification and adapter helpers.
var (
	// ErrNotNegative is returned by VerifyNegative when the cycle rooted
	// at the given handle does not in fact satisfy Σweight(e) < 0 under
	// the supplied WeightFunc — a sign that weightOf was not held
	// constant across the relaxation passes that built the policy map.
	ErrNotNegative = errors.New("negcycle: cycle is not negative")

	// ErrNodeNotFound is returned (wrapped with the node) by
	// MapGraphView.Validate when a node referenced by an edge is absent
	// from the declared node set.
	ErrNodeNotFound = errors.New("negcycle: node not found in graph view")
)
