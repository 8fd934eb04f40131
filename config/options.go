package config

import "github.com/shikc/wotan-core/distpass"

// Option customizes a UserOptions after it has been loaded from YAML.
// Like lvlath/builder's BuilderOption, an Option that receives a
// caller-supplied argument that is structurally invalid (not merely
// "out of range, checked later by Validate") panics immediately rather
// than deferring to Validate — the distinction spec.md §7 draws between
// a programmer error and a run-time configuration error.
type Option func(*UserOptions)

// DefaultUserOptions returns the engine's baseline options: one thread,
// max connection length 1, PROPAGATE model, the spec-default tightening
// factor, core-region analysis off, no demand history.
func DefaultUserOptions() UserOptions {
	return UserOptions{
		RRStructsMode:       RRStructsVPR,
		NumThreads:          1,
		MaxConnectionLength: 1,
		ProbabilityModel:    ModelPropagate,
		TighteningFactor:    distpass.DefaultTighteningFactor,
		DemandMultiplier:    1,
	}
}

// WithNumThreads overrides NumThreads. Panics if n < 1: a caller passing
// a literal non-positive thread count at the call site is a programming
// error, not a configuration file problem.
func WithNumThreads(n int) Option {
	if n < 1 {
		panic("config: WithNumThreads(n<1)")
	}
	return func(o *UserOptions) { o.NumThreads = n }
}

// WithMaxConnectionLength overrides MaxConnectionLength. Panics if n < 1.
func WithMaxConnectionLength(n int) Option {
	if n < 1 {
		panic("config: WithMaxConnectionLength(n<1)")
	}
	return func(o *UserOptions) { o.MaxConnectionLength = n }
}

// WithAnalyzeCore sets AnalyzeCore.
func WithAnalyzeCore(v bool) Option {
	return func(o *UserOptions) { o.AnalyzeCore = v }
}

// WithProbabilityModel overrides ProbabilityModel.
func WithProbabilityModel(m ProbabilityModel) Option {
	return func(o *UserOptions) { o.ProbabilityModel = m }
}

// WithUseRoutingNodeDemand sets the RELIABILITY_POLYNOMIAL demand value
// p (spec.md §4.7, §6). Panics if p is outside [0,1]: the caller is
// passing a literal, not a loaded value, so an out-of-range constant is
// a programmer error.
func WithUseRoutingNodeDemand(p float64) Option {
	if p < 0 || p > 1 {
		panic("config: WithUseRoutingNodeDemand(p outside [0,1])")
	}
	return func(o *UserOptions) { o.UseRoutingNodeDemand = &p }
}

// WithTighteningFactor overrides the distance-pass tightening factor
// (spec.md §9). Panics if factor <= 0.
func WithTighteningFactor(factor float64) Option {
	if factor <= 0 {
		panic("config: WithTighteningFactor(factor<=0)")
	}
	return func(o *UserOptions) { o.TighteningFactor = factor }
}

// WithKeepPathCountHistory sets KeepPathCountHistory.
func WithKeepPathCountHistory(v bool) Option {
	return func(o *UserOptions) { o.KeepPathCountHistory = v }
}

// Resolve applies opts over DefaultUserOptions and validates the result.
func Resolve(opts ...Option) (UserOptions, error) {
	o := DefaultUserOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if err := o.Validate(); err != nil {
		return UserOptions{}, err
	}
	return o, nil
}
