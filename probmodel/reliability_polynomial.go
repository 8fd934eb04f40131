package probmodel

import (
	"math"

	"github.com/shikc/wotan-core/arena"
	"github.com/shikc/wotan-core/enumerate"
	"github.com/shikc/wotan-core/rrg"
)

// ReliabilityPolynomial implements RELIABILITY_POLYNOMIAL (spec.md
// §4.7). It requires useRoutingNodeDemand (User_Options's value in
// [0,1], already resolved by the caller — spec.md §6's "sentinel or
// value" is the caller's concern, not this package's) and fails with
// ErrRoutingNodeDemandRequired if it was never enabled.
//
// It runs ENUMERATE in BY_PATH_HOPS mode to fill source_buckets at sink
// (reusing package enumerate's backward/forward fold, just counting hops
// instead of weight), then evaluates the reliability polynomial
// Σ_h source_buckets[sink][h] × p^h × (1-p)^(N-h), where p =
// 1 - useRoutingNodeDemand and N is the number of CHANX/CHANY ("routing")
// nodes the traversal touched.
func ReliabilityPolynomial(g *rrg.RRG, a *arena.Arena, source, sink, w int, useRoutingNodeDemand float64, enabled bool) (float64, error) {
	if !enabled {
		return 0, ErrRoutingNodeDemandRequired
	}

	if err := enumerate.BackwardFillSinkBuckets(g, a, sink, w, enumerate.ByPathHops); err != nil {
		return 0, err
	}
	// PROBABILITY-phase model: fold buckets only, never Node.Demand
	// (spec.md §5 "Isolation" — ENUMERATE owns demand writes).
	if err := enumerate.ForwardFillBuckets(g, a, source, w, enumerate.ByPathHops, 1); err != nil {
		return 0, err
	}

	n := countRoutingNodes(g, a)
	p := clamp01(1 - useRoutingNodeDemand)

	var total float64
	for h, v := range a.SourceRow(sink) {
		if v == 0 {
			continue
		}
		total += float64(v) * math.Pow(p, float64(h)) * math.Pow(1-p, float64(n-h))
	}

	return validateProbability(total)
}

func countRoutingNodes(g *rrg.RRG, a *arena.Arena) int {
	count := 0
	for _, id := range a.NodesVisited() {
		n, err := g.Node(id)
		if err != nil {
			continue
		}
		if n.Type.IsChannel() {
			count++
		}
	}
	return count
}
