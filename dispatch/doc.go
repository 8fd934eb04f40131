// Package dispatch implements spec.md §4.9's work dispatcher: it builds
// the (source_node, tile_coord) workload from the test tiles, shards it
// across worker goroutines by round-robin, and runs the two global
// phases (ENUMERATE, then PROBABILITY) over the whole workload in
// sequence, merging results under metrics.Results' own lock.
//
// The teacher's worker-pool shape (one goroutine per shard, errors
// joined at the end) is adapted from how lvlath/flow drives its
// augmenting-path search across a fixed set of workers, generalized
// here from a single shared graph traversal to per-shard private arenas.
package dispatch

import "errors"

// Sentinel errors for workload construction.
var (
	// ErrNoTestTiles indicates Analysis_Settings named no usable test
	// tile coordinates (every one was filtered out by the core-region
	// or fill-type checks, or the list was empty).
	ErrNoTestTiles = errors.New("dispatch: no usable test tile coordinates")
)
