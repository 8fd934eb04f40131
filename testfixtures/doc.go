// Package testfixtures builds small, hand-specified RRGs for the test
// suites of every package downstream of rrg. The functional-options
// assembly style (a Builder accumulating nodes/edges/tiles, with a
// final Build() producing the immutable graph) is adapted from
// lvlath/builder's BuildGraph(gopts, bopts, cons...) shape, narrowed
// from graph-topology constructors to the handful of literal scenarios
// spec.md §8 names.
//
// Every scenario here is grounded on a specific §8 scenario number so a
// failing test can be traced back to the exact fixture it exercises.
package testfixtures

import "github.com/shikc/wotan-core/rrg"

// fillBlockType is the single block type used by every fixture unless a
// scenario says otherwise: one driver class (the SOURCE ptc) and one
// receiver class (the SINK ptc), both with a single pin.
func fillBlockType() rrg.BlockType {
	return rrg.BlockType{
		Name: "fill",
		Classes: []rrg.PinClass{
			{Kind: rrg.Driver, Pins: []int{0}},
			{Kind: rrg.Receiver, Pins: []int{0}},
		},
		IsGlobalPin:  []bool{false},
		NumPinsTotal: 1,
	}
}
