package probmodel

import (
	"github.com/shikc/wotan-core/arena"
	"github.com/shikc/wotan-core/distpass"
	"github.com/shikc/wotan-core/rrg"
	"github.com/shikc/wotan-core/traversal"
)

// RecursiveContext carries the extra per-connection bookkeeping
// CUTLINE_RECURSIVE needs beyond what Cutline/CutlineSimple use
// (spec.md §4.7: "records bound_source_hops, source_ind, sink_ind,
// fill_type in its context").
type RecursiveContext struct {
	BoundSourceHops int // source->sink hop count; bounds the recursion's layer range
	SourceInd       int
	SinkInd         int
	FillType        int

	// NarrowThreshold is how many consecutive hop layers the recursion
	// treats as one combined cut before splitting further. A cut of 1-2
	// layers is usually already "narrow" for realistic FPGA channel
	// widths; exposed so callers can tune it per architecture.
	NarrowThreshold int
}

// NewRecursiveContext derives a RecursiveContext from the graph and the
// connection's already-computed hop count.
func NewRecursiveContext(g *rrg.RRG, source, sink, sourceToSinkHops int) RecursiveContext {
	return RecursiveContext{
		BoundSourceHops: sourceToSinkHops,
		SourceInd:       source,
		SinkInd:         sink,
		FillType:        g.FillType,
		NarrowThreshold: 2,
	}
}

// CutlineRecursive implements CUTLINE_RECURSIVE (spec.md §4.7): it
// records the same per-hop node layers as CutlineSimple, then
// recursively subdivides the layer range — a range no wider than
// ctx.NarrowThreshold is resolved directly (its layers combined into one
// cut), otherwise the range is split in half and the weaker half's
// estimate wins.
func CutlineRecursive(g *rrg.RRG, a *arena.Arena, ctx RecursiveContext, w int, demand AdjustedDemand) (float64, error) {
	a.SetLevel(ctx.SourceInd, 0)

	numLayers := ctx.BoundSourceHops - 1
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

	if err := traversal.DoTopologicalTraversal(g, a, ctx.SourceInd, distpass.Forward, w, cb); err != nil {
		return 0, err
	}

	if len(layers) == 0 {
		return validateProbability(0)
	}

	threshold := ctx.NarrowThreshold
	if threshold < 1 {
		threshold = 1
	}
	best := recurse(layers, 0, len(layers)-1, threshold, demand)
	return validateProbability(best)
}

func recurse(layers [][]int, lo, hi, threshold int, demand AdjustedDemand) float64 {
	if hi-lo < threshold {
		return directReliability(layers, lo, hi, demand)
	}

	mid := (lo + hi) / 2
	left := recurse(layers, lo, mid, threshold, demand)
	right := recurse(layers, mid+1, hi, threshold, demand)
	if left < right {
		return left
	}
	return right
}

// directReliability treats layers[lo:hi+1] as a single combined cut.
func directReliability(layers [][]int, lo, hi int, demand AdjustedDemand) float64 {
	prod := 1.0
	any := false
	for l := lo; l <= hi; l++ {
		for _, id := range layers[l] {
			any = true
			free := clamp01(1 - demand(id))
			prod *= 1 - free
		}
	}
	if !any {
		return 1
	}
	return 1 - prod
}
