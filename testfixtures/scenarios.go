package testfixtures

import "github.com/shikc/wotan-core/rrg"

// SingleEdge builds spec.md §8 scenario 1: A(SOURCE,w=0) -> B(CHANX,w=1)
// -> C(SINK,w=0), all at tile (0,0). Returns the graph and the three
// node ids in A, B, C order.
func SingleEdge() (*rrg.RRG, [3]int) {
	b := NewBuilder()
	a := b.AddNode(rrg.SOURCE, 0, 0, 0, 0)
	mid := b.AddChannelNode(rrg.CHANX, 0, 0, 0, 0, 1, 0)
	c := b.AddNode(rrg.SINK, 0, 0, 0, 1) // ptc=1 matches fillBlockType's receiver class index
	b.AddEdge(a, mid)
	b.AddEdge(mid, c)
	return b.Build(), [3]int{a, mid, c}
}

// Diamond builds spec.md §8 scenario 2: A -> B, A -> C, B -> D, C -> D,
// every channel node weight 1. Returns the graph and node ids in
// A, B, C, D order.
func Diamond() (*rrg.RRG, [4]int) {
	b := NewBuilder()
	a := b.AddNode(rrg.SOURCE, 0, 0, 0, 0)
	bn := b.AddChannelNode(rrg.CHANX, 0, 0, 0, 0, 1, 0)
	cn := b.AddChannelNode(rrg.CHANY, 0, 0, 0, 0, 1, 0)
	d := b.AddNode(rrg.SINK, 0, 0, 0, 1) // ptc=1 matches fillBlockType's receiver class index
	b.AddEdge(a, bn)
	b.AddEdge(a, cn)
	b.AddEdge(bn, d)
	b.AddEdge(cn, d)
	return b.Build(), [4]int{a, bn, cn, d}
}

// Cycle builds spec.md §8 scenario 3: A -> B -> C -> B (a back-edge
// forcing the traversal driver's waiting-set cycle break), and B -> D.
// Returns the graph and node ids in A, B, C, D order.
func Cycle() (*rrg.RRG, [4]int) {
	b := NewBuilder()
	a := b.AddNode(rrg.SOURCE, 0, 0, 0, 0)
	bn := b.AddChannelNode(rrg.CHANX, 0, 0, 0, 0, 1, 0)
	cn := b.AddChannelNode(rrg.CHANX, 0, 0, 0, 0, 1, 0)
	d := b.AddNode(rrg.SINK, 0, 0, 0, 1) // ptc=1 matches fillBlockType's receiver class index
	b.AddEdge(a, bn)
	b.AddEdge(bn, cn)
	b.AddEdge(cn, bn)
	b.AddEdge(bn, d)
	return b.Build(), [4]int{a, bn, cn, d}
}

// GeometricPrune builds spec.md §8 scenario 4: a source at (5,5) and a
// sink at (20,20) embedded in a full bidirectional grid mesh spanning a
// much larger 26x26 area, so that straying off the direct path actually
// costs weight the geometric prune can catch (a fixture confined to the
// bounding rectangle between source and sink would never prune anything,
// since every point in that rectangle has an identical geometric lower
// bound to the destination). step controls the mesh spacing (callers
// typically pass 1 for maximum node count).
func GeometricPrune(step int) (*rrg.RRG, struct{ Source, Sink int }) {
	b := NewBuilder()
	const size = 26
	b.SetGrid(size, size)

	const (
		x0, y0 = 5, 5
		x1, y1 = 20, 20
	)

	ids := make(map[[2]int]int)
	for y := 0; y < size; y += step {
		for x := 0; x < size; x += step {
			ids[[2]int{x, y}] = b.AddChannelNode(rrg.CHANX, x, x, y, y, 1, 0)
		}
	}
	for y := 0; y < size; y += step {
		for x := 0; x < size; x += step {
			id := ids[[2]int{x, y}]
			if right, ok := ids[[2]int{x + step, y}]; ok {
				b.AddEdge(id, right)
				b.AddEdge(right, id)
			}
			if down, ok := ids[[2]int{x, y + step}]; ok {
				b.AddEdge(id, down)
				b.AddEdge(down, id)
			}
		}
	}

	source := b.AddNode(rrg.SOURCE, x0, y0, 0, 0)
	sink := b.AddNode(rrg.SINK, x1, y1, 0, 1) // ptc=1 matches fillBlockType's receiver class index
	if id, ok := ids[[2]int{x0, y0}]; ok {
		b.AddEdge(source, id)
	}
	if id, ok := ids[[2]int{x1, y1}]; ok {
		b.AddEdge(id, sink)
	}

	return b.Build(), struct{ Source, Sink int }{source, sink}
}

// CoreRegionGrid builds spec.md §8 scenario 5: a size x size grid (the
// scenario's literal seed uses 12) of fill-type tiles, each carrying one
// SOURCE/SINK pair, with horizontal and vertical CHANX/CHANY segments
// connecting orthogonal neighbors so every tile is reachable from its
// neighbors. Perimeter tiles exist (for rrg.IsCoreRegion's exclusion to
// have something to exclude) but carry no special marking beyond their
// coordinates.
func CoreRegionGrid(size int) (*rrg.RRG, map[[2]int][2]int) {
	b := NewBuilder()
	b.SetGrid(size, size)

	type pair = [2]int
	pins := make(map[pair][2]int, size*size)
	chanID := make(map[pair]int, size*size*2)

	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			src := b.AddNode(rrg.SOURCE, x, y, 0, 0)
			sink := b.AddNode(rrg.SINK, x, y, 0, 1) // ptc=1 matches fillBlockType's receiver class index
			pins[pair{x, y}] = [2]int{src, sink}
		}
	}
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			if x < size-1 {
				id := b.AddChannelNode(rrg.CHANX, x, x+1, y, y, 1, 0)
				chanID[pair{x, y}] = id
			}
			if y < size-1 {
				id := b.AddChannelNode(rrg.CHANY, x, x, y, y+1, 1, 0)
				chanID[pair{x, -y - 1}] = id
			}
		}
	}
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			here := pins[pair{x, y}]
			if x < size-1 {
				right := pins[pair{x + 1, y}]
				mid := chanID[pair{x, y}]
				b.AddEdge(here[0], mid)
				b.AddEdge(mid, right[1])
				b.AddEdge(right[0], mid)
				b.AddEdge(mid, here[1])
			}
			if y < size-1 {
				below := pins[pair{x, y + 1}]
				mid := chanID[pair{x, -y - 1}]
				b.AddEdge(here[0], mid)
				b.AddEdge(mid, below[1])
				b.AddEdge(below[0], mid)
				b.AddEdge(mid, here[1])
			}
		}
	}

	return b.Build(), pins
}

// PessimisticProbabilities builds spec.md §8 scenario 6's literal input:
// n probabilities cycling through 0.1, 0.2, ..., 1.0.
func PessimisticProbabilities(n int) []float64 {
	probs := make([]float64, n)
	for i := range probs {
		probs[i] = float64(i%10+1) * 0.1
	}
	return probs
}
