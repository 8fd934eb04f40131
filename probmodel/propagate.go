package probmodel

import (
	"github.com/shikc/wotan-core/arena"
	"github.com/shikc/wotan-core/distpass"
	"github.com/shikc/wotan-core/rrg"
	"github.com/shikc/wotan-core/traversal"
)

// Propagate implements PROPAGATE (spec.md §4.7): a forward traversal
// that folds parent_prob × P(child_free) into each child's weight
// bucket, same offset-by-node-weight convention as package enumerate, so
// that the sink's total mass across buckets [0, w] is the estimate.
func Propagate(g *rrg.RRG, a *arena.Arena, source, sink, w int, demand AdjustedDemand) (float64, error) {
	a.SetSourceBucket(source, 0, 1)

	cb := traversal.Callbacks{
		OnChild: func(parent, child int) error {
			cn, err := g.Node(child)
			if err != nil {
				return err
			}
			free := clamp01(1 - demand(child))
			parentRow := a.SourceRow(parent)
			for k, v := range parentRow {
				if v == 0 {
					continue
				}
				dst := k + cn.Weight
				if dst > w {
					continue
				}
				a.AddSourceBucket(child, dst, v*free)
			}
			return nil
		},
	}

	if err := traversal.DoTopologicalTraversal(g, a, source, distpass.Forward, w, cb); err != nil {
		return 0, err
	}

	var sum float64
	for _, v := range a.SourceRow(sink) {
		sum += float64(v)
	}
	return validateProbability(sum)
}
