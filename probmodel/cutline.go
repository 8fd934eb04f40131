package probmodel

import (
	"github.com/shikc/wotan-core/arena"
	"github.com/shikc/wotan-core/distpass"
	"github.com/shikc/wotan-core/rrg"
	"github.com/shikc/wotan-core/traversal"
)

// Cutline implements CUTLINE (spec.md §4.7): a forward level-layered
// traversal that tracks, per hop level, the product of (1 - P(v free))
// over the nodes popped at that level, and returns the minimum across
// levels of one minus that product — the level that is the weakest cut
// bounds the overall estimate.
func Cutline(g *rrg.RRG, a *arena.Arena, source, sink int, w int, demand AdjustedDemand) (float64, error) {
	a.SetLevel(source, 0)

	levelProduct := map[int]float64{}
	levelSeen := map[int]bool{}

	cb := traversal.Callbacks{
		OnPopped: func(id int) error {
			if id == source {
				return nil // the source's own level is not a cut
			}
			lvl := a.Level(id)
			free := clamp01(1 - demand(id))
			if !levelSeen[lvl] {
				levelSeen[lvl] = true
				levelProduct[lvl] = 1
			}
			levelProduct[lvl] *= 1 - free
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

	if len(levelProduct) == 0 {
		return validateProbability(0)
	}

	best := 1.0
	for _, prod := range levelProduct {
		estimate := 1 - prod
		if estimate < best {
			best = estimate
		}
	}
	return validateProbability(best)
}
