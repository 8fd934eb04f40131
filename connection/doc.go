// Package connection implements analyze_connection (spec.md §4.8): the
// per-(source, sink, length) orchestration that resolves pin-class
// scaling factors, runs the bidirectional distance pass, dispatches to
// ENUMERATE or PROBABILITY, folds the result into the shared metrics
// aggregator, and cleans up touched arena state afterward (spec.md
// §4.11).
//
// This is the one package that knows about every other leaf package:
// rrg, arena, distpass, traversal, enumerate, probmodel, metrics,
// config. Nothing below it imports it — grounded on how lvlath/builder
// sits above core and composes constructors without core ever
// depending back on builder.
package connection

import "errors"

// Graph-invariant violations (spec.md §7).
var (
	// ErrSourceResolution is returned when an IPIN source has no
	// attached synthetic SOURCE node to resolve to (spec.md §4.8 step 2).
	ErrSourceResolution = errors.New("connection: could not resolve IPIN to a synthetic source")

	// ErrUnexpectedNodeType is returned when source/sink resolution
	// finds a node of a kind the analysis cannot start or end at.
	ErrUnexpectedNodeType = errors.New("connection: unexpected node type at source/sink")

	// ErrDemandExceeded is returned by the §4.11 history adjustment when
	// the subtracted contribution would exceed a node's current demand
	// by more than eps.
	ErrDemandExceeded = errors.New("connection: adjusted demand subtraction exceeds current demand")
)

// pinProbEps is the tolerance spec.md §4.8 step 1 allows when requiring
// all pin probabilities within a class to be equal.
const pinProbEps = 1e-9

// demandEps is the tolerance spec.md §4.11 allows the history-adjustment
// subtraction to overshoot current demand by before it is a hard error.
const demandEps = 1e-9
