// Package probmodel implements the five interchangeable routability
// estimators of spec.md §4.7: PROPAGATE, CUTLINE, CUTLINE_SIMPLE,
// CUTLINE_RECURSIVE, and RELIABILITY_POLYNOMIAL. Every model is handed
// the same pre-computed distance/hops state and drives the same
// traversal.DoTopologicalTraversal; only the callbacks and the final
// reduction differ, matching spec.md §9's "tagged variant dispatched
// once at entry" note (package connection holds the switch on
// config.ProbabilityModel).
//
// None of these models has a direct teacher analogue — lvlath has no
// notion of a probability-weighted bucket distribution — so each is
// built fresh from its spec.md §4.7 description, reusing package
// traversal and package arena for the mechanical parts (level tracking,
// bucket folding) the way dijkstra/bfs reuse their own queue/visited
// idioms.
package probmodel

import "errors"

// ErrProbabilityOutOfRange is returned when a model's final estimate
// falls outside [0, 1] by more than eps (spec.md §4.7 "Validation", §7
// "Numerical invariant violation").
var ErrProbabilityOutOfRange = errors.New("probmodel: estimated probability outside [0,1]")

// ErrRoutingNodeDemandRequired is returned by ReliabilityPolynomial when
// the caller has not enabled use_routing_node_demand (spec.md §4.7).
var ErrRoutingNodeDemandRequired = errors.New("probmodel: reliability polynomial requires use_routing_node_demand")

const eps = 1e-9

// AdjustedDemand is supplied by the caller (package connection), which
// owns the pin-class bookkeeping the demand history adjustment needs
// (spec.md §4.11); probmodel only ever asks "what is this node's
// probability of being free" and never touches path_count_history
// itself.
type AdjustedDemand func(nodeID int) float64

func clamp01(p float64) float64 {
	if p < 0 {
		return 0
	}
	if p > 1 {
		return 1
	}
	return p
}

func validateProbability(p float64) (float64, error) {
	if p < -eps || p > 1+eps {
		return 0, ErrProbabilityOutOfRange
	}
	return clamp01(p), nil
}
