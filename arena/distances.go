package arena

// SourceDistance returns the bounded-Dijkstra distance from the
// connection's source to id, valid only if FromSource(id) is true.
func (a *Arena) SourceDistance(id int) int { return a.sourceDist[id] }

// SetSourceDistance records the forward distance to id and marks it
// visited-from-source.
func (a *Arena) SetSourceDistance(id, d int) {
	a.sourceDist[id] = d
	a.fromSource[id] = true
	a.Touch(id)
}

// FromSource reports the "visited_from_source" flag (spec.md §3).
func (a *Arena) FromSource(id int) bool { return a.fromSource[id] }

// ClearFromSource un-marks id as visited-from-source without touching
// its distance value. It is the forward-flag counterpart of
// ClearFromSink; the distance passes do not call it.
func (a *Arena) ClearFromSource(id int) { a.fromSource[id] = false }

// SinkDistance returns the bounded-Dijkstra distance from the
// connection's sink to id, valid only if FromSink(id) is true.
func (a *Arena) SinkDistance(id int) int { return a.sinkDist[id] }

// SetSinkDistance records the backward distance to id and marks it
// visited-from-sink.
func (a *Arena) SetSinkDistance(id, d int) {
	a.sinkDist[id] = d
	a.fromSink[id] = true
	a.Touch(id)
}

// FromSink reports the "visited_from_sink" flag.
func (a *Arena) FromSink(id int) bool { return a.fromSink[id] }

// ClearFromSink un-marks id as visited-from-sink without touching its
// distance value; the backward pass uses it when a relaxed node turns
// out not to satisfy is_legal (spec.md §4.3: "pruned children are
// un-marked so later paths do not inherit stale state").
func (a *Arena) ClearFromSink(id int) { a.fromSink[id] = false }

// SourceHops/SinkHops mirror the distance accessors for the independent
// BFS hop pass (spec.md §4.4), which composes with the distance pass via
// its own visited flags.
func (a *Arena) SourceHops(id int) int { return a.sourceHops[id] }

func (a *Arena) SetSourceHops(id, h int) {
	a.sourceHops[id] = h
	a.fromSourceHops[id] = true
	a.Touch(id)
}

func (a *Arena) FromSourceHops(id int) bool { return a.fromSourceHops[id] }

func (a *Arena) SinkHops(id int) int { return a.sinkHops[id] }

func (a *Arena) SetSinkHops(id, h int) {
	a.sinkHops[id] = h
	a.fromSinkHops[id] = true
	a.Touch(id)
}

func (a *Arena) FromSinkHops(id int) bool { return a.fromSinkHops[id] }

// IsLegal implements spec.md §3's is_legal predicate:
//
//	source_distance + sink_distance - node_weight <= W  &&  both visited
func (a *Arena) IsLegal(id, nodeWeight, w int) bool {
	if !a.fromSource[id] || !a.fromSink[id] {
		return false
	}

	return a.sourceDist[id]+a.sinkDist[id]-nodeWeight <= w
}
