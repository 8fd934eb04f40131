// Package metrics implements the process-wide Results aggregator
// (spec.md §3, §4.10): running totals, per-length worst-probability
// top-k queues, and the node-demand percentile reduction. A single
// mutex protects every field, held only for the short increment/push
// each connection performs (spec.md §5).
//
// Grounded on package topk for the bounded queues; the aggregator shape
// itself (one struct, one mutex, short critical sections) follows
// spec.md §9's "replace process-wide state with an explicit aggregator
// passed to workers; all mutation goes through a single lock" note.
package metrics

import "errors"

// ErrUnknownLength is returned when a connection at a length the
// dispatcher never called PrepareLength for is recorded.
var ErrUnknownLength = errors.New("metrics: length has no prepared lowest-probs queue")
