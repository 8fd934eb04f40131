// Package boundedpq implements a monotone, bucket-indexed min-priority
// queue keyed by a small non-negative integer weight (spec.md §4.1).
//
// Because the traversal driver (package traversal) only ever pushes items
// whose weight is within [0, W] of the current minimum already popped,
// a flat array of buckets indexed by weight, plus a head pointer that
// only ever advances, gives O(1) amortized Push/Pop — no log factor, no
// comparator calls. This is the same "don't use a general heap when the
// key range is bounded" trade lvlath/dijkstra makes implicitly by relying
// on container/heap for an unbounded key range; here the key range is
// bounded by construction, so we specialize instead.
package boundedpq

import "errors"

// ErrWeightOutOfRange is returned by Push when weight > the queue's W or
// weight < 0.
var ErrWeightOutOfRange = errors.New("boundedpq: weight out of range")
