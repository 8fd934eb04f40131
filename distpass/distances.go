package distpass

import (
	"math"

	"github.com/shikc/wotan-core/arena"
	"github.com/shikc/wotan-core/boundedpq"
	"github.com/shikc/wotan-core/rrg"
)

// Result reports the outcome of the bidirectional distance pass for one
// (source, sink) pair.
type Result struct {
	// Reachable is false when the sink cannot be reached from the
	// source (and symmetrically) within W; callers should treat this as
	// "zero legal paths", not an error (spec.md §4.6 step 2: "else 0").
	Reachable bool

	// MinDist is the agreed source->sink distance, valid only if
	// Reachable.
	MinDist int

	// EffectiveW is W' = min(W, ceil(MinDist*factor)), valid only if
	// Reachable.
	EffectiveW int
}

// Distances runs the forward pass from source, the backward pass from
// sink, and tightens W accordingly (spec.md §4.3). factor is the
// tightening multiplier (DefaultTighteningFactor unless the caller's
// configuration overrides it).
func Distances(g *rrg.RRG, a *arena.Arena, source, sink, w int, factor float64) (Result, error) {
	sinkNode, err := g.Node(sink)
	if err != nil {
		return Result{}, err
	}
	forwardPass(g, a, source, sinkNode.XLow, sinkNode.YLow, w)
	backwardPass(g, a, sink, w)

	if !a.FromSource(sink) || !a.FromSink(source) {
		return Result{Reachable: false}, nil
	}

	fwd := a.SourceDistance(sink)
	bwd := a.SinkDistance(source)
	if fwd != bwd {
		return Result{}, ErrDistanceMismatch
	}

	effW := int(math.Ceil(float64(fwd) * factor))
	if effW > w {
		effW = w
	}

	return Result{Reachable: true, MinDist: fwd, EffectiveW: effW}, nil
}

// forwardPass runs bounded Dijkstra from source over out-edges, pruning
// children that cannot geometrically reach (destX, destY) within w
// (spec.md §4.3).
func forwardPass(g *rrg.RRG, a *arena.Arena, source, destX, destY, w int) {
	pq := boundedpq.New[int](w)
	a.SetSourceDistance(source, 0)
	_ = pq.Push(source, 0)

	for !pq.Empty() {
		d := pq.TopWeight()
		u := pq.Pop()
		if d != a.SourceDistance(u) {
			continue // stale lazy-decrease-key entry
		}
		un, _ := g.Node(u)
		for _, ei := range un.OutEdges {
			e := g.Edges[ei]
			v := e.To
			vn, _ := g.Node(v)
			newDist := d + vn.Weight
			if newDist > w {
				continue
			}
			if geometricPrune(vn, destX, destY, newDist, w) {
				continue
			}
			if !a.FromSource(v) || newDist < a.SourceDistance(v) {
				a.SetSourceDistance(v, newDist)
				_ = pq.Push(v, newDist)
			}
		}
	}
}

// backwardPass runs bounded Dijkstra from sink over in-edges. A child is
// relaxed and recorded, then un-marked if it fails is_legal against the
// already-computed forward distances (spec.md §4.3: "pruned after
// relaxation ... re-verifying forward-visited state"). The node is still
// pushed for further expansion: pruning only excludes it from the final
// legal set, it does not stop the backward walk from using it as a
// relay toward its own predecessors.
func backwardPass(g *rrg.RRG, a *arena.Arena, sink, w int) {
	pq := boundedpq.New[int](w)
	a.SetSinkDistance(sink, 0)
	_ = pq.Push(sink, 0)

	for !pq.Empty() {
		d := pq.TopWeight()
		u := pq.Pop()
		if d != a.SinkDistance(u) {
			continue
		}
		un, _ := g.Node(u)
		for _, ei := range un.InEdges {
			e := g.Edges[ei]
			v := e.From
			vn, _ := g.Node(v)
			newDist := d + vn.Weight
			if newDist > w {
				continue
			}
			if !a.FromSink(v) || newDist < a.SinkDistance(v) {
				a.SetSinkDistance(v, newDist)
				if !a.IsLegal(v, vn.Weight, w) {
					a.ClearFromSink(v)
				}
				_ = pq.Push(v, newDist)
			}
		}
	}
}

// geometricPrune reports whether vn cannot possibly lie on a path to
// (destX, destY) within the remaining budget w - pathWeightSoFar
// (spec.md §4.3). The asymmetry between CHANX and CHANY below (which
// axis contributes the -1 "overlap" discount) is preserved exactly as
// spec.md §9 requires, even though it flags the asymmetry as possibly a
// bug in the system this was distilled from.
func geometricPrune(vn *rrg.Node, destX, destY, pathWeightSoFar, w int) bool {
	xDiff := intervalDist(vn.XLow, vn.XHigh, destX)
	yDiff := intervalDist(vn.YLow, vn.YHigh, destY)

	delta := 0
	switch vn.Type {
	case rrg.CHANX:
		if vn.YLow <= destY && destY <= vn.YHigh {
			delta = 1
		}
	case rrg.CHANY:
		if vn.XLow <= destX && destX <= vn.XHigh {
			delta = 1
		}
	default:
		if vn.XLow == destX || vn.YLow == destY {
			delta = 1
		}
	}

	remainder := xDiff + yDiff - delta
	if remainder < 0 {
		remainder = 0
	}

	return pathWeightSoFar+remainder > w
}

// intervalDist returns the distance from point p to the closed interval
// [lo, hi], 0 if p lies within it.
func intervalDist(lo, hi, p int) int {
	if p < lo {
		return lo - p
	}
	if p > hi {
		return p - hi
	}

	return 0
}
