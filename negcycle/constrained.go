package negcycle

import "iter"

// ConstrainedFinder extends Finder with a caller-supplied UpdateOk filter on
// every relaxation step, and exposes both a predecessor-policy search
// (HowardPred, the same direction as Finder.Howard) and a successor-policy
// search (HowardSucc, relaxing in reverse). Callers run the two alternately
// (see cycleratio.MinParametricQ) so a restrictive UpdateOk in one direction
// does not hide cycles the other direction would have exposed.
//
// Unlike Finder, HowardSucc does not assert — or otherwise guarantee — that
// the cycles it yields are negative; see VerifyNegative and the package
// doc's Errors section.
type ConstrainedFinder[Node comparable, Edge any, D Domain] struct {
	g    GraphView[Node, Edge]
	pred Policy[Node, Edge]
	succ Policy[Node, Edge]
}

// NewConstrainedFinder constructs a ConstrainedFinder around g.
func NewConstrainedFinder[Node comparable, Edge any, D Domain](g GraphView[Node, Edge]) *ConstrainedFinder[Node, Edge, D] {
	return &ConstrainedFinder[Node, Edge, D]{g: g}
}

// PredPolicy exposes the predecessor policy built by the most recent
// HowardPred call.
func (f *ConstrainedFinder[Node, Edge, D]) PredPolicy() Policy[Node, Edge] { return f.pred }

// SuccPolicy exposes the successor policy built by the most recent
// HowardSucc call.
func (f *ConstrainedFinder[Node, Edge, D]) SuccPolicy() Policy[Node, Edge] { return f.succ }

// HowardPred is Finder.Howard's algorithm with the relaxation condition
// additionally gated by updateOk(dist[v], candidate).
func (f *ConstrainedFinder[Node, Edge, D]) HowardPred(dist DistanceMap[Node, D], weightOf WeightFunc[Edge, D], updateOk UpdateOk[D]) iter.Seq[Cycle[Edge]] {
	return func(yield func(Cycle[Edge]) bool) {
		f.pred = make(Policy[Node, Edge])
		for f.relaxPred(dist, weightOf, updateOk) {
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

// HowardSucc mirrors HowardPred but relaxes edges in reverse: for each edge
// (u -> v), it tightens dist[u] toward dist[v] - weightOf(e), recording u's
// best successor. Cycle search and reconstruction run on the successor
// policy instead of the predecessor one.
func (f *ConstrainedFinder[Node, Edge, D]) HowardSucc(dist DistanceMap[Node, D], weightOf WeightFunc[Edge, D], updateOk UpdateOk[D]) iter.Seq[Cycle[Edge]] {
	return func(yield func(Cycle[Edge]) bool) {
		f.succ = make(Policy[Node, Edge])
		for f.relaxSucc(dist, weightOf, updateOk) {
			found := false
			for handle := range findCycles(f.g, f.succ) {
				if !yield(cycleList(handle, f.succ)) {
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

func (f *ConstrainedFinder[Node, Edge, D]) relaxPred(dist DistanceMap[Node, D], weightOf WeightFunc[Edge, D], updateOk UpdateOk[D]) bool {
	changed := false
	for u := range f.g.Nodes() {
		du := dist.Get(u)
		for v, e := range f.g.Edges(u) {
			d := du + weightOf(e)
			if dv := dist.Get(v); dv > d && updateOk(dv, d) {
				dist.Set(v, d)
				f.pred[v] = PolicyEntry[Node, Edge]{Via: u, Edge: e}
				changed = true
			}
		}
	}
	return changed
}

func (f *ConstrainedFinder[Node, Edge, D]) relaxSucc(dist DistanceMap[Node, D], weightOf WeightFunc[Edge, D], updateOk UpdateOk[D]) bool {
	changed := false
	for u := range f.g.Nodes() {
		for v, e := range f.g.Edges(u) {
			d := dist.Get(v) - weightOf(e)
			if du := dist.Get(u); du < d && updateOk(du, d) {
				dist.Set(u, d)
				f.succ[u] = PolicyEntry[Node, Edge]{Via: v, Edge: e}
				changed = true
			}
		}
	}
	return changed
}
