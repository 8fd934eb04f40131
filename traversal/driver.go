package traversal

import (
	"github.com/shikc/wotan-core/arena"
	"github.com/shikc/wotan-core/boundedpq"
	"github.com/shikc/wotan-core/distpass"
	"github.com/shikc/wotan-core/rrg"
)

// DoTopologicalTraversal walks the legal subgraph of g (as already
// established in a by a prior distpass.Distances call for this
// connection) starting at origin, in direction dir, finalizing nodes in
// non-decreasing order of their precomputed distance-from-origin, and
// invoking cb at each step (spec.md §4.5).
//
// The destination node of the connection is not a parameter here: which
// nodes are legal is already baked into a's source/sink distance state,
// so the traversal only ever needs to ask a.IsLegal.
//
// Guarantees: every legal node reachable from origin is popped (OnPopped
// fires) exactly once; every legal edge out of a popped node is walked
// (OnChild fires) exactly once; OnDone fires exactly once, last.
func DoTopologicalTraversal(g *rrg.RRG, a *arena.Arena, origin int, dir distpass.Direction, w int, cb Callbacks) error {
	pq := boundedpq.New[int](w)
	waiting := newWaitingSet()

	a.SetDiscovered(origin)
	a.SetParentsRemaining(origin, 0)
	a.SetQueued(origin)
	if err := pq.Push(origin, originKey(a, dir, origin)); err != nil {
		return err
	}

	for !pq.Empty() || !waiting.Empty() {
		var u int
		if !pq.Empty() {
			u = pq.Pop()
		} else {
			u = waiting.Pop()
			if a.WasVisited(u) || a.Queued(u) {
				continue // became ready (or was finalized) through the normal path already
			}
			a.SetQueued(u)
		}
		if a.WasVisited(u) {
			continue
		}
		a.SetWasVisited(u, true)

		if err := cb.popped(u); err != nil {
			return err
		}

		un, err := g.Node(u)
		if err != nil {
			return err
		}
		outEdges := un.OutEdges
		if dir == distpass.Backward {
			outEdges = un.InEdges
		}

		for _, ei := range outEdges {
			if ei < 0 || ei >= len(g.Edges) {
				return ErrEdgeMissingNode
			}
			e := g.Edges[ei]
			v := e.To
			if dir == distpass.Backward {
				v = e.From
			}
			vn, err := g.Node(v)
			if err != nil {
				return err
			}
			if !a.IsLegal(v, vn.Weight, w) {
				continue
			}

			if err := cb.child(u, v); err != nil {
				return err
			}

			if !a.Discovered(v) {
				a.SetDiscovered(v)
				remaining := legalInDegree(g, a, v, w, dir) - 1 // u itself already finalized
				if remaining < 0 {
					remaining = 0
				}
				a.SetParentsRemaining(v, remaining)
				if remaining == 0 {
					a.SetQueued(v)
					if err := pq.Push(v, originKey(a, dir, v)); err != nil {
						return err
					}
				} else {
					waiting.Push(v, originKey(a, dir, v))
				}
			} else if !a.Queued(v) {
				if a.DecParentsRemaining(v) == 0 {
					a.SetQueued(v)
					if err := pq.Push(v, originKey(a, dir, v)); err != nil {
						return err
					}
				}
			}
		}
	}

	return cb.done()
}

// originKey returns the key the driver orders nodes by: the
// already-computed distance from this traversal's origin (source
// distance when walking forward, sink distance when walking backward).
func originKey(a *arena.Arena, dir distpass.Direction, id int) int {
	if dir == distpass.Forward {
		return a.SourceDistance(id)
	}
	return a.SinkDistance(id)
}

// legalInDegree counts v's predecessors, in the direction-appropriate
// sense, that are themselves legal for this connection. Computed lazily
// on first discovery of v so the driver never pre-scans the whole graph.
func legalInDegree(g *rrg.RRG, a *arena.Arena, v, w int, dir distpass.Direction) int {
	vn, err := g.Node(v)
	if err != nil {
		return 0
	}
	predEdges := vn.InEdges
	if dir == distpass.Backward {
		predEdges = vn.OutEdges
	}

	count := 0
	for _, ei := range predEdges {
		e := g.Edges[ei]
		p := e.From
		if dir == distpass.Backward {
			p = e.To
		}
		pn, err := g.Node(p)
		if err != nil {
			continue
		}
		if a.IsLegal(p, pn.Weight, w) {
			count++
		}
	}
	return count
}
