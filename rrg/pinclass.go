package rrg

// Class returns the pin class at idx on this block type.
// Returns ErrPinClassNotFound if idx is out of range.
func (bt *BlockType) Class(idx int) (*PinClass, error) {
	if idx < 0 || idx >= len(bt.Classes) {
		return nil, ErrPinClassNotFound
	}

	return &bt.Classes[idx], nil
}

// NumPins returns len(pc.Pins), the pin count backing a super-source or
// super-sink (spec.md GLOSSARY: "scaling factors multiply analysis by
// pin counts").
func (pc *PinClass) NumPins() int { return len(pc.Pins) }

// SourceClass resolves the driver pin class a SOURCE node's ptc refers
// to. Returns ErrPinClassNotFound if the node is not a SOURCE or its
// class is not a driver class.
func (g *RRG) SourceClass(sourceID int) (*PinClass, error) {
	n, err := g.Node(sourceID)
	if err != nil {
		return nil, err
	}
	bt := g.BlockTypeAt(n.XLow, n.YLow)
	pc, err := bt.Class(n.PTC)
	if err != nil {
		return nil, err
	}
	if pc.Kind != Driver {
		return nil, ErrPinClassNotFound
	}

	return pc, nil
}

// SinkClass resolves the receiver pin class a SINK node's ptc refers to.
func (g *RRG) SinkClass(sinkID int) (*PinClass, error) {
	n, err := g.Node(sinkID)
	if err != nil {
		return nil, err
	}
	bt := g.BlockTypeAt(n.XLow, n.YLow)
	pc, err := bt.Class(n.PTC)
	if err != nil {
		return nil, err
	}
	if pc.Kind != Receiver {
		return nil, ErrPinClassNotFound
	}

	return pc, nil
}
