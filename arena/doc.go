// Package arena implements the per-thread node-state arena spec.md §3/§5
// describes: SS_Distances, topological bucket state, and the
// nodes-visited touched list used for O(touched) cleanup between
// connections.
//
// Each worker thread owns exactly one Arena, allocated once at dispatch
// start and reused across every (source, sink) connection it analyzes
// (spec.md §3 Lifecycle, §5 Isolation). State is addressed by dense node
// ID directly into flat slices sized NumNodes*(B+1) for the bucket rows,
// so no per-connection allocation or map lookup is on the hot path — the
// arena+index pattern spec.md §9 calls out, generalized from the same
// instinct behind lvlath/dijkstra's preallocated dist/visited maps, just
// specialized to slices since RRG node IDs are dense integers rather
// than arbitrary strings.
package arena

// Bucket is a weight-indexed (or hop-indexed) slot holding accumulated
// path count or probability mass (spec.md GLOSSARY).
type Bucket = float64
