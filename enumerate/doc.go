// Package enumerate implements the ENUMERATE model (spec.md §4.6): two
// passes of the topological traversal driver that fill a connection's
// source- and sink-side bucket arrays by convolution, scale the result
// to represent the configured length/pin probabilities, and record the
// resulting demand onto every node the connection's legal paths touch.
//
// Grounded on package traversal for the driver itself; the bucket fold
// is new domain logic with no direct teacher analogue (lvlath has no
// notion of a weight-indexed path-count distribution), built in the
// style of dijkstra's relax-on-edge callback.
package enumerate

// Mode selects which quantity a node's own weight contributes when
// folding a parent's buckets into a child (spec.md §4.6 step 3):
// BY_PATH_WEIGHT adds the child's node weight, BY_PATH_HOPS always adds
// 1 (used by the reliability-polynomial model's hop-indexed buckets).
type Mode int

const (
	ByPathWeight Mode = iota
	ByPathHops
)

func (m Mode) increment(nodeWeight int) int {
	if m == ByPathHops {
		return 1
	}
	return nodeWeight
}
