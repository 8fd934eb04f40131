package rrg

import "sync"

// Edge is a legal switch connection between two RRG nodes.
// Edges are directed: a legal path only follows From -> To.
type Edge struct {
	From int
	To   int
}

// Node is a single vertex of the RRG: a logical source/sink, an I/O pin,
// or a channel wire segment (spec.md §3).
//
// xlow/xhigh/ylow/yhigh is the node's axis-aligned footprint. Terminal
// node kinds (SOURCE, SINK, IPIN, OPIN) must have xlow==xhigh and
// ylow==yhigh; this is validated once at construction (RRG.Validate).
//
// OutEdges/InEdges hold indices into the owning RRG's Edges slice, not
// node indices, matching spec.md §3's "outgoing and incoming edge lists
// (indices)".
type Node struct {
	ID   int
	Type NodeType

	XLow, XHigh int
	YLow, YHigh int

	Weight int
	PTC    int

	OutEdges []int
	InEdges  []int

	// Demand is the running sum of scaled paths touching this node
	// (spec.md §3, §4.6). Written only during ENUMERATE, read only
	// during PROBABILITY; the two phases never overlap in time so this
	// field needs no lock in the common single-writer-per-node case.
	Demand float64

	// PathCountHistory maps an endpoint node ID (a source or a sink) to
	// the demand this node contributed while analyzing a connection to
	// or from that endpoint (spec.md §3, §4.11). Nil unless
	// User_Options.KeepPathCountHistory is set.
	PathCountHistory map[int]float64

	mu sync.Mutex // guards Demand/PathCountHistory for the rare cross-thread update (spec.md §5)
}

// AddDemand atomically adds delta to n.Demand. Used by ENUMERATE when a
// demand update could in principle cross worker shards (spec.md §5:
// "demand updates that would cross threads must be done via atomic
// floating-point add").
func (n *Node) AddDemand(delta float64) {
	n.mu.Lock()
	n.Demand += delta
	n.mu.Unlock()
}

// AddHistory accumulates delta into n.PathCountHistory[endpoint], used
// so that a later connection sharing only one endpoint with this one can
// still subtract its self-contribution (spec.md §3, §4.11). endpoint is
// a source or sink node ID; a single contribution is recorded under both
// of a connection's endpoints so either one alone is enough to look it
// back up.
func (n *Node) AddHistory(endpoint int, delta float64) {
	n.mu.Lock()
	if n.PathCountHistory == nil {
		n.PathCountHistory = make(map[int]float64)
	}
	n.PathCountHistory[endpoint] += delta
	n.mu.Unlock()
}

// Footprint reports the node's axis-aligned bounding box.
func (n *Node) Footprint() (xlow, xhigh, ylow, yhigh int) {
	return n.XLow, n.XHigh, n.YLow, n.YHigh
}

// GridTile describes one tile of the FPGA fabric grid (spec.md §3).
type GridTile struct {
	TypeIndex    int
	WidthOffset  int
	HeightOffset int
}

// PinClass groups pin indices of a single kind (driver or receiver) on a
// block type (spec.md §3).
type PinClass struct {
	Kind PinClassKind
	Pins []int
}

// BlockType describes one logical block (a logic tile, an I/O pad, ...).
type BlockType struct {
	Name         string
	Classes      []PinClass
	IsGlobalPin  []bool // indexed by pin index within the block type
	NumPinsTotal int
}

// RRG is the immutable routing resource graph plus the grid/block-type
// metadata the analysis needs to resolve pin classes and fill-type tiles.
//
// RRG is constructed once by an external reader (spec.md §1, §6) and is
// read-only for the engine's lifetime except for Node.Demand and
// Node.PathCountHistory.
type RRG struct {
	Nodes []Node
	Edges []Edge

	GridWidth, GridHeight int
	Grid                  []GridTile // row-major: Grid[y*GridWidth+x]

	BlockTypes []BlockType
	FillType   int

	// nodeIndex implements rr_node_index[type][x][y][ptc] -> id
	// (spec.md §6).
	nodeIndex map[nodeKey]int
}

type nodeKey struct {
	t    NodeType
	x, y int
	ptc  int
}

// New constructs an RRG from already-populated nodes/edges/grid data and
// builds the node-index lookup. Validate should be called by the caller
// (typically the external reader) before the graph is handed to the
// engine; New itself does not validate, since construction may happen
// incrementally (see testfixtures).
func New(nodes []Node, edges []Edge, gridW, gridH int, grid []GridTile, blockTypes []BlockType, fillType int) *RRG {
	g := &RRG{
		Nodes:      nodes,
		Edges:      edges,
		GridWidth:  gridW,
		GridHeight: gridH,
		Grid:       grid,
		BlockTypes: blockTypes,
		FillType:   fillType,
	}
	g.reindex()

	return g
}

// reindex rebuilds the node-index lookup from Nodes. Nodes with a
// multi-tile footprint (only legal for CHANX/CHANY) are indexed at their
// low corner, matching VPR's own convention.
func (g *RRG) reindex() {
	g.nodeIndex = make(map[nodeKey]int, len(g.Nodes))
	for i := range g.Nodes {
		n := &g.Nodes[i]
		g.nodeIndex[nodeKey{n.Type, n.XLow, n.YLow, n.PTC}] = n.ID
	}
}

// NodeIndex implements rr_node_index[type][x][y][ptc] -> id (spec.md §6).
// Returns ErrNodeNotFound if no such node exists.
func (g *RRG) NodeIndex(t NodeType, x, y, ptc int) (int, error) {
	id, ok := g.nodeIndex[nodeKey{t, x, y, ptc}]
	if !ok {
		return 0, ErrNodeNotFound
	}

	return id, nil
}

// Node returns a pointer to the node with the given id.
func (g *RRG) Node(id int) (*Node, error) {
	if id < 0 || id >= len(g.Nodes) {
		return nil, ErrNodeNotFound
	}

	return &g.Nodes[id], nil
}

// Tile returns the grid tile at (x, y).
func (g *RRG) Tile(x, y int) GridTile {
	return g.Grid[y*g.GridWidth+x]
}

// BlockTypeAt returns the block type descriptor for the tile at (x, y).
func (g *RRG) BlockTypeAt(x, y int) *BlockType {
	return &g.BlockTypes[g.Tile(x, y).TypeIndex]
}

// Validate checks the invariants spec.md §3 requires of a constructed
// RRG: terminal nodes occupy a single tile, and a fill type is
// designated. Returns ErrEmptyGraph, ErrMultiTileNode, or
// ErrUnknownFillType.
func (g *RRG) Validate() error {
	if len(g.Nodes) == 0 {
		return ErrEmptyGraph
	}
	for i := range g.Nodes {
		n := &g.Nodes[i]
		if n.Type.IsTerminal() && (n.XLow != n.XHigh || n.YLow != n.YHigh) {
			return ErrMultiTileNode
		}
	}
	if g.FillType < 0 || g.FillType >= len(g.BlockTypes) {
		return ErrUnknownFillType
	}

	return nil
}

// NumNodes returns the number of nodes in the graph.
func (g *RRG) NumNodes() int { return len(g.Nodes) }
