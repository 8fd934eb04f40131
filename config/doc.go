// Package config resolves Analysis_Settings and User_Options (spec.md
// §6) from YAML and functional overrides into immutable, validated
// structs the rest of the engine treats as read-only for a run's
// lifetime.
//
// Functional-options shape and fail-fast validation are grounded on
// lvlath/builder's BuilderOption pattern (options.go, config.go):
// Option constructors validate their own argument and panic on a
// programmer error (such as a non-positive count baked into the call
// site), while anything that depends on the loaded file's contents is
// checked by Validate and returned as a sentinel error, never a panic.
package config

import "errors"

// Configuration errors (spec.md §7 "Configuration error": unrecognized
// mode, missing required option, non-positive sizes).
var (
	ErrNoLengthProbabilities  = errors.New("config: length_probabilities must have at least one entry")
	ErrPinProbabilityRange    = errors.New("config: pin_probabilities entries must be within [0,1]")
	ErrNonPositiveThreads     = errors.New("config: num_threads must be >= 1")
	ErrNonPositiveMaxLength   = errors.New("config: max_connection_length must be >= 1")
	ErrUnknownRRStructsMode   = errors.New("config: unrecognized rr_structs_mode")
	ErrUnknownProbabilityMode = errors.New("config: unrecognized probability_model")
	ErrInvalidDemandRange     = errors.New("config: use_routing_node_demand must be within [0,1] when set")
	ErrNonPositiveFactor      = errors.New("config: tightening_factor must be > 0")

	// ErrPinProbabilitiesNotUniform is a graph-invariant violation
	// (spec.md §7, §4.8 step 1): a pin class whose pins do not share the
	// same configured probability within eps.
	ErrPinProbabilitiesNotUniform = errors.New("config: pin probabilities within a class must be equal within eps")
)
