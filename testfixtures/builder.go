package testfixtures

import "github.com/shikc/wotan-core/rrg"

// Builder accumulates nodes, edges, and grid/block-type metadata for one
// fixture graph. Zero value is ready to use.
type Builder struct {
	nodes      []rrg.Node
	edges      []rrg.Edge
	gridW      int
	gridH      int
	grid       []rrg.GridTile
	blockTypes []rrg.BlockType
	fillType   int
}

// NewBuilder returns an empty Builder.
func NewBuilder() *Builder { return &Builder{} }

// AddNode appends a single-tile node (SOURCE/SINK/IPIN/OPIN) at (x, y)
// and returns its id.
func (b *Builder) AddNode(t rrg.NodeType, x, y, weight, ptc int) int {
	return b.AddChannelNode(t, x, x, y, y, weight, ptc)
}

// AddChannelNode appends a node with an arbitrary axis-aligned footprint
// (legal for CHANX/CHANY) and returns its id.
func (b *Builder) AddChannelNode(t rrg.NodeType, xlow, xhigh, ylow, yhigh, weight, ptc int) int {
	id := len(b.nodes)
	b.nodes = append(b.nodes, rrg.Node{
		ID:     id,
		Type:   t,
		XLow:   xlow,
		XHigh:  xhigh,
		YLow:   ylow,
		YHigh:  yhigh,
		Weight: weight,
		PTC:    ptc,
	})
	return id
}

// AddEdge appends a directed edge from -> to and updates both
// endpoints' edge-index lists.
func (b *Builder) AddEdge(from, to int) {
	ei := len(b.edges)
	b.edges = append(b.edges, rrg.Edge{From: from, To: to})
	b.nodes[from].OutEdges = append(b.nodes[from].OutEdges, ei)
	b.nodes[to].InEdges = append(b.nodes[to].InEdges, ei)
}

// SetGrid sizes the tile grid to w x h, every tile defaulting to
// TypeIndex 0, and registers the fill block type as the grid's
// distinguished fill type.
func (b *Builder) SetGrid(w, h int) {
	b.gridW, b.gridH = w, h
	b.grid = make([]rrg.GridTile, w*h)
	b.blockTypes = []rrg.BlockType{fillBlockType()}
	b.fillType = 0
}

// Build assembles the accumulated state into an immutable *rrg.RRG. If
// SetGrid was never called, a 1x1 grid of the fill type is assumed (the
// common case for fixtures that only exercise graph algorithms, not
// grid/tile geometry).
func (b *Builder) Build() *rrg.RRG {
	if b.grid == nil {
		b.SetGrid(1, 1)
	}
	return rrg.New(b.nodes, b.edges, b.gridW, b.gridH, b.grid, b.blockTypes, b.fillType)
}
