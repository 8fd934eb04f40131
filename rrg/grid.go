// Grid geometry helpers: bounds checking, perimeter/core classification,
// and fill-type membership. The row-major (y*Width+x) addressing and the
// InBounds shape are adapted from lvlath/gridgraph's 2D-grid-as-graph
// indexing, generalized here from "land/water" cells to FPGA tile types.
package rrg

// CoreOffset is the number of perimeter rows/columns excluded when
// User_Options.AnalyzeCore is set (spec.md §4.9, §8 scenario 5).
const CoreOffset = 3

// InBounds reports whether (x, y) lies within the grid.
func (g *RRG) InBounds(x, y int) bool {
	return x >= 0 && x < g.GridWidth && y >= 0 && y < g.GridHeight
}

// IsPerimeter reports whether (x, y) lies on the outermost ring of the
// grid (the I/O ring in a typical island-style fabric).
func (g *RRG) IsPerimeter(x, y int) bool {
	return x == 0 || y == 0 || x == g.GridWidth-1 || y == g.GridHeight-1
}

// IsInterior reports the negation of IsPerimeter.
func (g *RRG) IsInterior(x, y int) bool {
	return g.InBounds(x, y) && !g.IsPerimeter(x, y)
}

// IsCoreRegion reports whether (x, y) is at least CoreOffset tiles away
// from every edge of the grid. Used by the dispatcher's analyze_core
// filter (spec.md §4.9, §8 scenario 5): on a 12x12 grid with
// CoreOffset=3, only x,y in [3,8] qualify.
func (g *RRG) IsCoreRegion(x, y int) bool {
	return x >= CoreOffset && x <= g.GridWidth-1-CoreOffset &&
		y >= CoreOffset && y <= g.GridHeight-1-CoreOffset
}

// IsFillType reports whether the tile at (x, y) is of the grid's
// distinguished fill type (spec.md GLOSSARY).
func (g *RRG) IsFillType(x, y int) bool {
	if !g.InBounds(x, y) {
		return false
	}

	return g.Tile(x, y).TypeIndex == g.FillType
}
