package config

// RRStructsMode selects how the external RRG reader interprets its input
// file (spec.md §6).
type RRStructsMode int

const (
	RRStructsVPR RRStructsMode = iota
	RRStructsSimple
)

// ProbabilityModel names one of the five interchangeable estimators of
// spec.md §4.7.
type ProbabilityModel int

const (
	ModelPropagate ProbabilityModel = iota
	ModelCutline
	ModelCutlineSimple
	ModelCutlineRecursive
	ModelReliabilityPolynomial
)

func (m ProbabilityModel) valid() bool {
	return m >= ModelPropagate && m <= ModelReliabilityPolynomial
}

// TileCoord is one (x, y) test tile coordinate (spec.md §6).
type TileCoord struct {
	X, Y int
}

// AnalysisSettings is spec.md §6's Analysis_Settings: architecture- and
// workload-level knobs supplied by the external collaborator that builds
// them from an architecture description.
type AnalysisSettings struct {
	// LengthProbabilities[ℓ] is the configured probability a connection
	// of Manhattan length ℓ is drawn, indexed from 1 (index 0 unused).
	LengthProbabilities []float64 `yaml:"length_probabilities"`

	// PinProbabilities[pin] is the per-pin probability used in the
	// Σpin_probs scaling term (spec.md §4.8).
	PinProbabilities []float64 `yaml:"pin_probabilities"`

	TestTileCoords []TileCoord `yaml:"test_tile_coords"`

	// MaxPathWeightBase backs GetMaxPathWeight's per-length budget. The
	// real architecture-dependent formula lives with the external
	// architecture reader (spec.md §1's out-of-scope collaborators); this
	// engine only needs *a* monotone function of length, so it exposes a
	// simple linear one parameterized by this base. The unexported
	// maxPathWeightFunc takes precedence when set; no Option sets it.
	MaxPathWeightBase int `yaml:"max_path_weight_base"`

	maxPathWeightFunc func(length int) int
}

// GetMaxPathWeight returns the maximum path weight the engine should
// bound a length-ℓ connection's analysis to (spec.md §6's
// get_max_path_weight(ℓ)).
func (s *AnalysisSettings) GetMaxPathWeight(length int) int {
	if s.maxPathWeightFunc != nil {
		return s.maxPathWeightFunc(length)
	}
	return length * s.MaxPathWeightBase
}

// LengthProbability returns LengthProbabilities[length], or 0 if length
// is out of range.
func (s *AnalysisSettings) LengthProbability(length int) float64 {
	if length < 0 || length >= len(s.LengthProbabilities) {
		return 0
	}
	return s.LengthProbabilities[length]
}

// SumPinProbs sums PinProbabilities over pins, requiring every entry to
// be equal within eps (spec.md §4.8 step 1's uniformity requirement).
// Returns the common value times len(pins), or an error if the pins are
// not uniform.
func (s *AnalysisSettings) SumPinProbs(pins []int, eps float64) (float64, error) {
	if len(pins) == 0 {
		return 0, nil
	}
	first := s.pinProb(pins[0])
	for _, p := range pins[1:] {
		if diff := s.pinProb(p) - first; diff > eps || diff < -eps {
			return 0, ErrPinProbabilitiesNotUniform
		}
	}
	return first * float64(len(pins)), nil
}

func (s *AnalysisSettings) pinProb(pin int) float64 {
	if pin < 0 || pin >= len(s.PinProbabilities) {
		return 0
	}
	return s.PinProbabilities[pin]
}

// UserOptions is spec.md §6's User_Options.
type UserOptions struct {
	RRStructsMode        RRStructsMode    `yaml:"rr_structs_mode"`
	NumThreads           int              `yaml:"num_threads"`
	MaxConnectionLength  int              `yaml:"max_connection_length"`
	AnalyzeCore          bool             `yaml:"analyze_core"`
	DemandMultiplier     float64          `yaml:"demand_multiplier"`
	UseRoutingNodeDemand *float64         `yaml:"use_routing_node_demand"` // nil == sentinel "unset"
	KeepPathCountHistory bool             `yaml:"keep_path_count_history"`
	ProbabilityModel     ProbabilityModel `yaml:"probability_model"`

	// TighteningFactor overrides distpass.DefaultTighteningFactor
	// (spec.md §9: "leave mechanism, expose factor as configuration").
	TighteningFactor float64 `yaml:"tightening_factor"`
}

// Validate checks every invariant spec.md §7's "Configuration error"
// category names. Call once after loading/overriding, before the
// dispatcher starts.
func (o *UserOptions) Validate() error {
	if o.NumThreads < 1 {
		return ErrNonPositiveThreads
	}
	if o.MaxConnectionLength < 1 {
		return ErrNonPositiveMaxLength
	}
	if o.RRStructsMode != RRStructsVPR && o.RRStructsMode != RRStructsSimple {
		return ErrUnknownRRStructsMode
	}
	if !o.ProbabilityModel.valid() {
		return ErrUnknownProbabilityMode
	}
	if o.UseRoutingNodeDemand != nil && (*o.UseRoutingNodeDemand < 0 || *o.UseRoutingNodeDemand > 1) {
		return ErrInvalidDemandRange
	}
	if o.TighteningFactor <= 0 {
		return ErrNonPositiveFactor
	}
	return nil
}

// Validate checks AnalysisSettings' own invariants.
func (s *AnalysisSettings) Validate() error {
	if len(s.LengthProbabilities) == 0 {
		return ErrNoLengthProbabilities
	}
	for _, p := range s.PinProbabilities {
		if p < 0 || p > 1 {
			return ErrPinProbabilityRange
		}
	}
	return nil
}
