package dispatch

import (
	"github.com/shikc/wotan-core/config"
	"github.com/shikc/wotan-core/rrg"
)

// WorkItem is one (source_node_id, tile_coord) pair assigned to a shard
// (spec.md §3 "Workload item", §4.9).
type WorkItem struct {
	SourceNode int
	TileX      int
	TileY      int
}

// destination is one candidate sink tile at a given Manhattan length
// from a work item's source tile.
type destination struct {
	X, Y int
}

// Workload is the dispatcher's static partition of work: one shard of
// WorkItems per worker, plus the total number of sub-pair connections
// analyzed at each length (needed both for ENUMERATE's scaling formula
// and to size PROBABILITY's per-length lowest_probs_pqs, spec.md §4.6
// step 2, §4.8 step 3).
type Workload struct {
	Shards             [][]WorkItem
	ConnCountsByLength map[int]int
	MaxB               int
}

// Build constructs the workload (spec.md §4.9): for each test tile
// (filtered by analyze_core and fill type), for each driver pin class of
// that tile's block type, resolve the corresponding SOURCE node and
// assign it to the next shard round-robin. Receiver pin classes are
// counted with their own round-robin counter for parity bookkeeping (the
// spec calls for "separate counters for driver vs receiver pins" but
// analyze_connection is always driven from the source side, so only
// driver-class nodes become primary WorkItems).
func Build(g *rrg.RRG, tiles []config.TileCoord, numThreads, maxConnectionLength int, analyzeCore bool, maxB func(length int) int) (*Workload, error) {
	shards := make([][]WorkItem, numThreads)
	driverCounter, receiverCounter := 0, 0

	for _, tc := range tiles {
		if analyzeCore && !g.IsCoreRegion(tc.X, tc.Y) {
			continue
		}
		if !g.IsFillType(tc.X, tc.Y) {
			continue
		}

		bt := g.BlockTypeAt(tc.X, tc.Y)
		for classIdx := range bt.Classes {
			pc := &bt.Classes[classIdx]
			switch pc.Kind {
			case rrg.Driver:
				id, err := g.NodeIndex(rrg.SOURCE, tc.X, tc.Y, classIdx)
				if err != nil {
					continue
				}
				shard := driverCounter % numThreads
				shards[shard] = append(shards[shard], WorkItem{SourceNode: id, TileX: tc.X, TileY: tc.Y})
				driverCounter++
			case rrg.Receiver:
				receiverCounter++
			}
		}
	}
	_ = receiverCounter

	if driverCounter == 0 {
		return nil, ErrNoTestTiles
	}

	connCounts := make(map[int]int)
	maxWeight := 0
	for length := 1; length <= maxConnectionLength; length++ {
		w := maxB(length)
		if w > maxWeight {
			maxWeight = w
		}
		for _, shard := range shards {
			for _, item := range shard {
				connCounts[length] += countDestinations(g, item.TileX, item.TileY, length)
			}
		}
	}

	return &Workload{Shards: shards, ConnCountsByLength: connCounts, MaxB: maxWeight}, nil
}

// countDestinations counts the receiver-class sink nodes reachable as
// candidate destinations at the given length from (x, y).
func countDestinations(g *rrg.RRG, x, y, length int) int {
	n := 0
	forEachDestination(g, x, y, length, func(dx, dy int) {
		bt := g.BlockTypeAt(dx, dy)
		for i := range bt.Classes {
			if bt.Classes[i].Kind == rrg.Receiver {
				n++
			}
		}
	})
	return n
}

// forEachDestination generates the destination tiles at Manhattan
// distance length from (x, y) via spec.md §4.9's diagonal/axial formula
// and invokes fn for each one that is strictly interior and of fill
// type. For length=1 this yields the 4 axis-adjacent tiles; in general
// it walks the diamond perimeter at that Manhattan radius.
func forEachDestination(g *rrg.RRG, x, y, length int, fn func(dx, dy int)) {
	for idx := -length; idx <= length; idx++ {
		rem := length - abs(idx)
		step := 2 * rem
		if step < 1 {
			step = 1
		}
		for idy := -rem; idy <= rem; idy += step {
			dx, dy := x+idx, y+idy
			if !g.InBounds(dx, dy) || !g.IsInterior(dx, dy) || !g.IsFillType(dx, dy) {
				continue
			}
			fn(dx, dy)
		}
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
