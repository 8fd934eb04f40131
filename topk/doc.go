// Package topk implements a fixed-capacity bounded priority queue that
// retains only the k "smallest" elements seen so far under a caller
// supplied comparator (spec.md §4.2).
//
// "Smallest" is relative to the comparator: passing Less keeps the k
// smallest values (used for per-length worst-connection probabilities),
// passing Greater keeps the k largest (used for the top 5% most-demanded
// routing nodes). Internally this is a bounded max-heap ordered by the
// comparator, so the element that would be evicted first always sits at
// the root — the same lazy-extremum trick lvlath/dijkstra applies to its
// min-heap, just capped at k entries instead of V.
package topk

// Comparator reports whether a should be retained over b when the
// structure is full, i.e. whether a is "more extreme" in the wanted
// direction. Less(a, b) == a < b keeps the k smallest; Greater(a, b) ==
// a > b keeps the k largest.
type Comparator[T any] func(a, b T) bool

// Less is a Comparator that orders T by <. Retaining under Less keeps
// the k smallest items.
func Less[T int | int64 | float64](a, b T) bool { return a < b }

// Greater retains the k largest items.
func Greater[T int | int64 | float64](a, b T) bool { return a > b }
