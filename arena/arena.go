package arena

// Arena holds one worker thread's entire mutable per-node state: the
// bidirectional distance/hops pass results (SS_Distances, spec.md §3),
// the topological traversal's bucket arrays and readiness bookkeeping,
// and the touched-node list that makes cleanup O(touched) instead of
// O(NumNodes) (spec.md §4.11).
type Arena struct {
	numNodes int
	maxB     int // width of a bucket row, i.e. max B across all connections this arena will see

	// SS_Distances (spec.md §3).
	sourceDist, sinkDist         []int
	sourceHops, sinkHops         []int
	fromSource, fromSink         []bool
	fromSourceHops, fromSinkHops []bool

	// Topological bucket state, flattened: row i occupies
	// [i*(maxB+1), (i+1)*(maxB+1)).
	sourceBuckets, sinkBuckets []Bucket

	level      []int
	wasVisited []bool

	// parentsRemaining backs the traversal driver's
	// readiness test (spec.md §4.5): a node is poppable once all its
	// predecessors in the current direction have been finalized.
	parentsRemaining []int

	// nodesVisited is the touched-node list: every node the current
	// connection's passes wrote any state to, in the order first
	// touched. Cleanup walks exactly this list (spec.md §4.11).
	nodesVisited []int
	touched      []bool // dedup guard so a node is appended to nodesVisited at most once per connection

	// discovered/queued back the traversal driver's dependency-counting
	// scheme (package traversal): discovered marks that
	// ParentsRemaining has been initialized for a node; queued marks
	// that the node has already been pushed into the driver's ready
	// queue, so a later pop of the same node from the waiting set (used
	// for cycle-breaking) can be recognized as stale.
	discovered []bool
	queued     []bool
}

// New allocates an Arena sized for numNodes nodes and bucket rows wide
// enough for the largest max_path_weight the caller will ever pass to a
// connection analyzed with this arena.
func New(numNodes, maxB int) *Arena {
	row := maxB + 1
	return &Arena{
		numNodes:         numNodes,
		maxB:             maxB,
		sourceDist:       make([]int, numNodes),
		sinkDist:         make([]int, numNodes),
		sourceHops:       make([]int, numNodes),
		sinkHops:         make([]int, numNodes),
		fromSource:       make([]bool, numNodes),
		fromSink:         make([]bool, numNodes),
		fromSourceHops:   make([]bool, numNodes),
		fromSinkHops:     make([]bool, numNodes),
		sourceBuckets:    make([]Bucket, numNodes*row),
		sinkBuckets:      make([]Bucket, numNodes*row),
		level:            make([]int, numNodes),
		wasVisited:       make([]bool, numNodes),
		parentsRemaining: make([]int, numNodes),
		nodesVisited:     make([]int, 0, 1024),
		touched:          make([]bool, numNodes),
		discovered:       make([]bool, numNodes),
		queued:           make([]bool, numNodes),
	}
}

// MaxB returns the arena's bucket-row width minus one (i.e. the largest
// max_path_weight it supports).
func (a *Arena) MaxB() int { return a.maxB }

// Touch records id in the touched-node list exactly once per connection,
// so cleanup (Clear) only visits nodes that were actually written.
func (a *Arena) Touch(id int) {
	if !a.touched[id] {
		a.touched[id] = true
		a.nodesVisited = append(a.nodesVisited, id)
	}
}

// NodesVisited returns the touched-node list accumulated since the last
// Clear.
func (a *Arena) NodesVisited() []int { return a.nodesVisited }

// row returns the bucket row base offset for node id.
func (a *Arena) row(id int) int { return id * (a.maxB + 1) }

// SourceBucket returns source_buckets[id][k].
func (a *Arena) SourceBucket(id, k int) Bucket { return a.sourceBuckets[a.row(id)+k] }

// SetSourceBucket sets source_buckets[id][k] = v and marks id touched.
func (a *Arena) SetSourceBucket(id, k int, v Bucket) {
	a.sourceBuckets[a.row(id)+k] = v
	a.Touch(id)
}

// AddSourceBucket adds v into source_buckets[id][k] and marks id touched.
func (a *Arena) AddSourceBucket(id, k int, v Bucket) {
	a.sourceBuckets[a.row(id)+k] += v
	a.Touch(id)
}

// SinkBucket returns sink_buckets[id][k].
func (a *Arena) SinkBucket(id, k int) Bucket { return a.sinkBuckets[a.row(id)+k] }

// SetSinkBucket sets sink_buckets[id][k] = v and marks id touched.
func (a *Arena) SetSinkBucket(id, k int, v Bucket) {
	a.sinkBuckets[a.row(id)+k] = v
	a.Touch(id)
}

// AddSinkBucket adds v into sink_buckets[id][k] and marks id touched.
func (a *Arena) AddSinkBucket(id, k int, v Bucket) {
	a.sinkBuckets[a.row(id)+k] += v
	a.Touch(id)
}

// SourceRow returns the live slice backing source_buckets[id][0:B+1].
// Callers must not retain it past the next Clear.
func (a *Arena) SourceRow(id int) []Bucket {
	r := a.row(id)
	return a.sourceBuckets[r : r+a.maxB+1]
}

// SinkRow returns the live slice backing sink_buckets[id][0:B+1].
func (a *Arena) SinkRow(id int) []Bucket {
	r := a.row(id)
	return a.sinkBuckets[r : r+a.maxB+1]
}

// Level returns the traversal level (hop distance during cutline mode)
// recorded for id.
func (a *Arena) Level(id int) int { return a.level[id] }

// SetLevel sets the level for id and marks it touched.
func (a *Arena) SetLevel(id, lvl int) {
	a.level[id] = lvl
	a.Touch(id)
}

// WasVisited reports the traversal's "was_visited" flag for id.
func (a *Arena) WasVisited(id int) bool { return a.wasVisited[id] }

// SetWasVisited sets the traversal's "was_visited" flag for id and marks
// it touched.
func (a *Arena) SetWasVisited(id int, v bool) {
	a.wasVisited[id] = v
	a.Touch(id)
}

// ParentsRemaining returns the outstanding-predecessor counter the
// traversal driver uses to decide readiness.
func (a *Arena) ParentsRemaining(id int) int { return a.parentsRemaining[id] }

// SetParentsRemaining sets the outstanding-predecessor counter for id
// and marks it touched.
func (a *Arena) SetParentsRemaining(id, n int) {
	a.parentsRemaining[id] = n
	a.Touch(id)
}

// DecParentsRemaining decrements the outstanding-predecessor counter for
// id and returns the new value.
func (a *Arena) DecParentsRemaining(id int) int {
	a.parentsRemaining[id]--
	a.Touch(id)
	return a.parentsRemaining[id]
}

// Discovered reports whether id's ParentsRemaining counter has already
// been initialized by the traversal driver.
func (a *Arena) Discovered(id int) bool { return a.discovered[id] }

// SetDiscovered marks id as discovered and touched.
func (a *Arena) SetDiscovered(id int) {
	a.discovered[id] = true
	a.Touch(id)
}

// Queued reports whether id has already been pushed into the traversal
// driver's ready queue, so a stale pop of the same node from the
// cycle-breaking waiting set can be recognized and skipped.
func (a *Arena) Queued(id int) bool { return a.queued[id] }

// SetQueued marks id as queued and touched.
func (a *Arena) SetQueued(id int) {
	a.queued[id] = true
	a.Touch(id)
}

// Clear resets every touched node's state to its zero value and empties
// the touched-node list, ready for the next connection. This is the
// O(touched) cleanup spec.md §4.11 requires instead of zeroing the
// entire arena.
func (a *Arena) Clear() {
	row := a.maxB + 1
	for _, id := range a.nodesVisited {
		a.sourceDist[id] = 0
		a.sinkDist[id] = 0
		a.sourceHops[id] = 0
		a.sinkHops[id] = 0
		a.fromSource[id] = false
		a.fromSink[id] = false
		a.fromSourceHops[id] = false
		a.fromSinkHops[id] = false
		base := id * row
		bucketRow := a.sourceBuckets[base : base+row]
		for i := range bucketRow {
			bucketRow[i] = 0
		}
		bucketRow = a.sinkBuckets[base : base+row]
		for i := range bucketRow {
			bucketRow[i] = 0
		}
		a.level[id] = 0
		a.wasVisited[id] = false
		a.parentsRemaining[id] = 0
		a.discovered[id] = false
		a.queued[id] = false
		a.touched[id] = false
	}
	a.nodesVisited = a.nodesVisited[:0]
}
