// Package distpass implements the bidirectional bounded-weight distance
// pass and the unweighted hops pass (spec.md §4.3, §4.4) that together
// prune an RRG down to the nodes that could participate in a legal path
// between one (source, sink) pair.
//
// The shape is adapted from lvlath/dijkstra's lazy-decrease-key loop
// (push duplicate entries, skip stale pops on extraction) and
// lvlath/bfs's level-by-level queue walk, but reworked for this domain:
// the "edge weight" here is the destination NODE's own weight (an RRG
// switch itself costs nothing; the wire/pin it lands on does), the
// priority queue is the bounded bucket queue (package boundedpq) rather
// than a container/heap, and a geometric lower bound prunes the forward
// search before it ever reaches unreachable regions of the chip.
package distpass

import "errors"

// ErrDistanceMismatch indicates the forward-computed source->sink
// distance disagreed with the backward-computed sink->source distance
// (spec.md §4.3, §8 invariant). This should not happen on a correctly
// constructed RRG; surfacing it as a hard error matches spec.md §7's
// "Graph invariant violation" category.
var ErrDistanceMismatch = errors.New("distpass: forward and backward source<->sink distances disagree")

// DefaultTighteningFactor is the 1.3 factor spec.md §4.3 applies when
// tightening W to W' = min(W, ceil(min_dist * factor)). It is only the
// default: Distances takes the factor as an argument, and callers pass
// the configured config.UserOptions.TighteningFactor.
const DefaultTighteningFactor = 1.3
