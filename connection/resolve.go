package connection

import "github.com/shikc/wotan-core/rrg"

// resolveSource implements spec.md §4.8 step 2: if sourceID names an
// IPIN, resolve it to the synthetic SOURCE node attached to it (the
// fanout-modeling hack spec.md names but does not otherwise specify the
// wiring direction of). Both directions are checked since the synthetic
// edge's orientation is not pinned down by spec.md; a SOURCE node is
// unambiguous regardless of which edge list it turns up in.
func (an *Analyzer) resolveSource(sourceID int) (int, error) {
	n, err := an.g.Node(sourceID)
	if err != nil {
		return 0, err
	}
	if n.Type == rrg.SOURCE {
		return sourceID, nil
	}
	if n.Type != rrg.IPIN {
		return 0, ErrUnexpectedNodeType
	}

	for _, ei := range n.OutEdges {
		e := an.g.Edges[ei]
		if tn, err := an.g.Node(e.To); err == nil && tn.Type == rrg.SOURCE {
			return tn.ID, nil
		}
	}
	for _, ei := range n.InEdges {
		e := an.g.Edges[ei]
		if tn, err := an.g.Node(e.From); err == nil && tn.Type == rrg.SOURCE {
			return tn.ID, nil
		}
	}

	return 0, ErrSourceResolution
}
