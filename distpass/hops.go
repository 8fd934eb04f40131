package distpass

import (
	"github.com/shikc/wotan-core/arena"
	"github.com/shikc/wotan-core/rrg"
)

// Direction selects which edge list a pass walks.
type Direction int

const (
	// Forward walks out-edges, from a source toward sinks.
	Forward Direction = iota
	// Backward walks in-edges, from a sink toward sources.
	Backward
)

// SourceHopsPass runs an unweighted BFS from source over the legal
// subgraph (is_legal under the tightened effectiveW), recording each
// reached node's hop count in SourceHops (spec.md §4.4). Must run after
// Distances has populated the distance-pass state for this connection.
func SourceHopsPass(g *rrg.RRG, a *arena.Arena, source, effectiveW int) {
	hopsPass(g, a, source, effectiveW, Forward)
}

// SinkHopsPass mirrors SourceHopsPass for the backward direction.
func SinkHopsPass(g *rrg.RRG, a *arena.Arena, sink, effectiveW int) {
	hopsPass(g, a, sink, effectiveW, Backward)
}

func hopsPass(g *rrg.RRG, a *arena.Arena, origin, effectiveW int, dir Direction) {
	queue := make([]int, 0, 64)
	queue = append(queue, origin)
	if dir == Forward {
		a.SetSourceHops(origin, 0)
	} else {
		a.SetSinkHops(origin, 0)
	}

	for i := 0; i < len(queue); i++ {
		u := queue[i]
		un, err := g.Node(u)
		if err != nil {
			continue
		}
		var hop int
		if dir == Forward {
			hop = a.SourceHops(u)
		} else {
			hop = a.SinkHops(u)
		}

		edges := un.OutEdges
		if dir == Backward {
			edges = un.InEdges
		}
		for _, ei := range edges {
			e := g.Edges[ei]
			v := e.To
			if dir == Backward {
				v = e.From
			}
			vn, err := g.Node(v)
			if err != nil {
				continue
			}
			if !a.IsLegal(v, vn.Weight, effectiveW) {
				continue
			}
			if dir == Forward {
				if a.FromSourceHops(v) {
					continue
				}
				a.SetSourceHops(v, hop+1)
			} else {
				if a.FromSinkHops(v) {
					continue
				}
				a.SetSinkHops(v, hop+1)
			}
			queue = append(queue, v)
		}
	}
}
