package traversal

import "container/heap"

// waitingEntry is one node sitting in the cycle-breaking waiting set,
// ordered by (weight, id) — weight first so the driver still prefers the
// node closest to the origin, id as a deterministic tie-break.
type waitingEntry struct {
	id     int
	weight int
}

type waitingHeap []waitingEntry

func (h waitingHeap) Len() int { return len(h) }
func (h waitingHeap) Less(i, j int) bool {
	if h[i].weight != h[j].weight {
		return h[i].weight < h[j].weight
	}
	return h[i].id < h[j].id
}
func (h waitingHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }
func (h *waitingHeap) Push(x any)   { *h = append(*h, x.(waitingEntry)) }
func (h *waitingHeap) Pop() any {
	old := *h
	n := len(old)
	item := old[n-1]
	*h = old[:n-1]
	return item
}

// waitingSet is the auxiliary ordered structure spec.md §4.5 describes
// for cycle-breaking: nodes discovered but not yet ready sit here so the
// driver has something to force through once its ready queue runs dry.
type waitingSet struct {
	h waitingHeap
}

func newWaitingSet() *waitingSet {
	return &waitingSet{h: make(waitingHeap, 0, 64)}
}

func (s *waitingSet) Push(id, weight int) {
	heap.Push(&s.h, waitingEntry{id: id, weight: weight})
}

func (s *waitingSet) Empty() bool { return len(s.h) == 0 }

// Pop removes and returns the lowest-(weight,id) entry. Callers must
// still check whether the node has since become ready or already been
// finalized through the normal ready queue, since entries are never
// removed from the middle of the heap.
func (s *waitingSet) Pop() int {
	return heap.Pop(&s.h).(waitingEntry).id
}
