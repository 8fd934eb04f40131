package probmodel

import (
	"github.com/shikc/wotan-core/arena"
	"github.com/shikc/wotan-core/distpass"
	"github.com/shikc/wotan-core/rrg"
	"github.com/shikc/wotan-core/traversal"
)

// CutlineSimple implements CUTLINE_SIMPLE (spec.md §4.7): the same
// reliability-via-cutset idea as Cutline, but node IDs are recorded into
// one pre-sized layer per hop (sized from the already-computed
// source->sink hop count) during the traversal, and the per-layer
// products are only computed once traversal_done fires, rather than
// incrementally in on_popped.
func CutlineSimple(g *rrg.RRG, a *arena.Arena, source, sink int, w int, demand AdjustedDemand) (float64, error) {
	a.SetLevel(source, 0)

	hops := a.SourceHops(sink)
	numLayers := hops - 1
	if numLayers < 0 {
		numLayers = 0
	}
	layers := make([][]int, numLayers)

	cb := traversal.Callbacks{
		OnPopped: func(id int) error {
			lvl := a.Level(id)
			idx := lvl - 1
			if idx >= 0 && idx < len(layers) {
				layers[idx] = append(layers[idx], id)
			}
			return nil
		},
		OnChild: func(parent, child int) error {
			candidate := a.Level(parent) + 1
			if candidate > a.Level(child) {
				a.SetLevel(child, candidate)
			}
			return nil
		},
	}

	if err := traversal.DoTopologicalTraversal(g, a, source, distpass.Forward, w, cb); err != nil {
		return 0, err
	}

	return reliabilityFromLayers(layers, demand)
}

// reliabilityFromLayers computes min over non-empty layers of
// 1 - Π(1 - P(v free)) for CutlineSimple. CutlineRecursive's "narrow"
// base case does not use it; it takes one combined product over its
// whole layer range (directReliability).
func reliabilityFromLayers(layers [][]int, demand AdjustedDemand) (float64, error) {
	best := 1.0
	any := false
	for _, layer := range layers {
		if len(layer) == 0 {
			continue
		}
		any = true
		prod := 1.0
		for _, id := range layer {
			free := clamp01(1 - demand(id))
			prod *= 1 - free
		}
		estimate := 1 - prod
		if estimate < best {
			best = estimate
		}
	}
	if !any {
		return validateProbability(0)
	}
	return validateProbability(best)
}
