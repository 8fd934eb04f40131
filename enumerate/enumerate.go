package enumerate

import (
	"gonum.org/v1/gonum/floats"

	"github.com/shikc/wotan-core/arena"
	"github.com/shikc/wotan-core/distpass"
	"github.com/shikc/wotan-core/rrg"
	"github.com/shikc/wotan-core/traversal"
)

// BackwardFillSinkBuckets runs the traversal driver backward from sink,
// seeding sink_buckets[sink][0] = 1 and folding each finalized node's
// sink-bucket row into its not-yet-finalized predecessor at an offset
// advanced by the predecessor's own weight (or 1 hop, under mode) —
// spec.md §4.6 step 1.
func BackwardFillSinkBuckets(g *rrg.RRG, a *arena.Arena, sink, w int, mode Mode) error {
	a.SetSinkBucket(sink, 0, 1)

	cb := traversal.Callbacks{
		OnChild: func(parent, child int) error {
			cn, err := g.Node(child)
			if err != nil {
				return err
			}
			inc := mode.increment(cn.Weight)
			parentRow := a.SinkRow(parent)
			for k, v := range parentRow {
				if v == 0 {
					continue
				}
				dst := k + inc
				if dst > w {
					continue
				}
				a.AddSinkBucket(child, dst, v)
			}
			return nil
		},
	}

	return traversal.DoTopologicalTraversal(g, a, sink, distpass.Backward, w, cb)
}

// ComputeScaling implements spec.md §4.6 step 2: the number of paths
// enumerated from source is the backward-filled sink_buckets row read at
// source, restricted to offsets the source's own weight still allows,
// and scaledStart rescales source_buckets[source][0] so the forward pass
// represents the configured length/pin probabilities rather than a raw
// path count.
func ComputeScaling(a *arena.Arena, source, sourceWeight, w int, lengthProb, sumPinProbs float64, numSinks, numConnsAtLen int) (numPaths, scaledStart float64) {
	row := a.SinkRow(source)
	limit := w - sourceWeight
	if limit > len(row)-1 {
		limit = len(row) - 1
	}
	if limit >= 0 {
		numPaths = floats.Sum(row[:limit+1])
	}

	if numPaths <= 0 || numConnsAtLen <= 0 {
		return numPaths, 0
	}

	scaledStart = (lengthProb * float64(numSinks) * sumPinProbs) / (float64(numConnsAtLen) * numPaths)
	return numPaths, scaledStart
}

// ForwardFillAndDemand runs the traversal driver forward from source,
// seeding source_buckets[source][0] = scaledStart, folding each
// finalized node's source-bucket row into its children, and — at every
// finalized node — adding the convolution of its source and sink bucket
// rows to its demand (spec.md §4.6 step 3). The connection's two
// endpoints (source and sink) are both recorded as path_count_history
// keys if keepHistory is set. Returns the total demand added across all
// touched nodes.
//
// This is the ENUMERATE-phase entry point: it writes Node.Demand, so
// callers outside ENUMERATE (PROBABILITY-phase models that only need the
// bucket rows themselves) must use ForwardFillBuckets instead, or they
// corrupt demand-derived state for every connection analyzed afterward
// in the same run (spec.md §5 "Isolation").
func ForwardFillAndDemand(g *rrg.RRG, a *arena.Arena, source, sink, w int, mode Mode, scaledStart float64, keepHistory bool) (float64, error) {
	var total float64
	onPopped := func(id int) error {
		n, err := g.Node(id)
		if err != nil {
			return err
		}
		contribution := pathsThrough(a, id, n.Weight, w)
		if contribution == 0 {
			return nil
		}
		total += contribution
		n.AddDemand(contribution)
		if keepHistory {
			n.AddHistory(source, contribution)
			n.AddHistory(sink, contribution)
		}
		return nil
	}

	if err := forwardFill(g, a, source, w, mode, scaledStart, onPopped); err != nil {
		return 0, err
	}
	return total, nil
}

// ForwardFillBuckets runs the same forward bucket-convolution fold as
// ForwardFillAndDemand but never touches Node.Demand or path_count_history
// — for PROBABILITY-phase models (ReliabilityPolynomial) that only need
// the filled source-bucket rows and must not mutate the shared demand
// state ENUMERATE owns.
func ForwardFillBuckets(g *rrg.RRG, a *arena.Arena, source, w int, mode Mode, scaledStart float64) error {
	return forwardFill(g, a, source, w, mode, scaledStart, nil)
}

// forwardFill is the shared driver behind ForwardFillAndDemand and
// ForwardFillBuckets: it always folds source buckets into children, and
// additionally invokes onPopped (when non-nil) at every finalized node.
func forwardFill(g *rrg.RRG, a *arena.Arena, source, w int, mode Mode, scaledStart float64, onPopped func(int) error) error {
	a.SetSourceBucket(source, 0, scaledStart)

	cb := traversal.Callbacks{
		OnChild: func(parent, child int) error {
			cn, err := g.Node(child)
			if err != nil {
				return err
			}
			inc := mode.increment(cn.Weight)
			parentRow := a.SourceRow(parent)
			for k, v := range parentRow {
				if v == 0 {
					continue
				}
				dst := k + inc
				if dst > w {
					continue
				}
				a.AddSourceBucket(child, dst, v)
			}
			return nil
		},
	}
	if onPopped != nil {
		cb.OnPopped = onPopped
	}

	return traversal.DoTopologicalTraversal(g, a, source, distpass.Forward, w, cb)
}

// pathsThrough computes the convolution law of spec.md §8: the count of
// (scaled) paths through node n whose total weight is within w, given
// that source_buckets[n][k] and sink_buckets[n][k'] are each inclusive
// of n's own weight, so a full path's total weight is k + k' -
// nodeWeight.
func pathsThrough(a *arena.Arena, n, nodeWeight, w int) float64 {
	srcRow := a.SourceRow(n)
	sinkRow := a.SinkRow(n)

	var total float64
	for k, sv := range srcRow {
		if sv == 0 {
			continue
		}
		// valid kp range: 0 <= k+kp-nodeWeight <= w
		lo := nodeWeight - k
		if lo < 0 {
			lo = 0
		}
		hi := w - k + nodeWeight
		if hi > len(sinkRow)-1 {
			hi = len(sinkRow) - 1
		}
		if lo > hi {
			continue
		}
		total += sv * floats.Sum(sinkRow[lo:hi+1])
	}
	return total
}
