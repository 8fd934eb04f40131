// Package traversal implements the weight-layered topological traversal
// driver (spec.md §4.5) that both the enumeration and probability-model
// packages fold their per-node bucket updates over.
//
// The driver is a generalized Kahn's-algorithm walk: a node is poppable
// once every legal predecessor in the current direction has already been
// finalized, and among poppable nodes the one with the smallest
// already-known distance-from-origin (computed by package distpass) goes
// first. RRGs are not acyclic — routing multiplexers create short cycles
// — so a pure in-degree-zero walk can stall with legal nodes still
// unprocessed. When that happens the driver borrows one node from an
// auxiliary waiting set, ordered by the same (distance, id) key, and
// forces it through anyway; this is the "waiting set" cycle-breaking
// approximation spec.md §9 documents as a deliberate, bounded-error
// correction rather than a topology-sort failure.
//
// Grounded on lvlath/bfs's queue-and-visited-flags traversal shape and
// lvlath/dijkstra's priority-queue walk, recombined into a single pass
// that additionally tracks per-node in-degree within the legal subgraph.
package traversal

import "errors"

// ErrEdgeMissingNode indicates an edge referenced a node ID outside the
// graph's range; this is a graph-invariant violation (spec.md §7).
var ErrEdgeMissingNode = errors.New("traversal: edge references unknown node")
