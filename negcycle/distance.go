package negcycle

// MapDistance is the default DistanceMap implementation, backed by a plain
// Go map. The caller pre-populates it (typically with zero or +Inf,
// depending on the problem) before the first Howard*/MaxParametric call.
type MapDistance[Node comparable, D Domain] map[Node]D

// Get implements DistanceMap. A node absent from the map reads as the zero
// value of D, matching spec.md's "a node not previously written returns the
// initializing value the caller placed there" when the caller relied on
// Go's map zero-value semantics instead of writing every node explicitly.
func (m MapDistance[Node, D]) Get(n Node) D { return m[n] }

// Set implements DistanceMap.
func (m MapDistance[Node, D]) Set(n Node, v D) { m[n] = v }

// NewMapDistance builds a MapDistance with every node in nodes initialized
// to init.
func NewMapDistance[Node comparable, D Domain](nodes []Node, init D) MapDistance[Node, D] {
	m := make(MapDistance[Node, D], len(nodes))
	for _, n := range nodes {
		m[n] = init
	}
	return m
}
