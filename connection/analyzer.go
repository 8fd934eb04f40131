package connection

import (
	"github.com/shikc/wotan-core/arena"
	"github.com/shikc/wotan-core/config"
	"github.com/shikc/wotan-core/distpass"
	"github.com/shikc/wotan-core/internal/logging"
	"github.com/shikc/wotan-core/metrics"
	"github.com/shikc/wotan-core/rrg"
)

// Phase selects which of the two global phases (spec.md §2, §5)
// AnalyzeConnection runs.
type Phase int

const (
	PhaseEnumerate Phase = iota
	PhaseProbability
)

// Analyzer runs analyze_connection (spec.md §4.8) against one worker
// thread's graph view, arena, and the shared results aggregator. Not
// safe for concurrent use from multiple goroutines — each worker owns
// its own Analyzer over its own Arena (spec.md §5 "Isolation").
type Analyzer struct {
	g        *rrg.RRG
	a        *arena.Arena
	settings *config.AnalysisSettings
	opts     config.UserOptions
	results  *metrics.Results
	logger   *logging.Logger
}

// NewAnalyzer builds an Analyzer. g, settings, and results are shared
// across workers; a is private to the calling worker. The Analyzer logs
// nothing until WithLogger attaches one.
func NewAnalyzer(g *rrg.RRG, a *arena.Arena, settings *config.AnalysisSettings, opts config.UserOptions, results *metrics.Results) *Analyzer {
	return &Analyzer{g: g, a: a, settings: settings, opts: opts, results: results}
}

// WithLogger attaches l (already scoped to this worker via
// logging.Logger.WithThread) so every fatal error Analyze returns is
// logged once, with the failing connection's fields, before it
// propagates to the dispatcher join (spec.md §2.1, §7). Returns an for
// chaining at the construction site.
func (an *Analyzer) WithLogger(l *logging.Logger) *Analyzer {
	an.logger = l
	return an
}

// Analyze runs analyze_connection for (sourceID, sinkID) at Manhattan
// length, in the given phase, and folds the result into the shared
// Results aggregator (spec.md §4.8). numConnsAtLength is the total
// number of sub-pair connections the dispatcher will analyze at this
// length, needed for the scaling factor; the dispatcher must have
// already called metrics.Results.PrepareLength(length, numConnsAtLength)
// before the first PhaseProbability call at that length.
//
// Touched arena state is always cleared before returning, even on error
// (spec.md §4.11). Any returned error is logged once, scoped to this
// connection, before propagating (spec.md §2.1: "one structured event
// per fatal invariant violation before the run aborts").
func (an *Analyzer) Analyze(sourceID, sinkID, length, numConnsAtLength int, phase Phase) (err error) {
	defer an.a.Clear()
	defer func() {
		if err != nil {
			an.logger.WithConnection(sourceID, sinkID, length).Error("analyze_connection failed", err)
		}
	}()

	resolvedSource, err := an.resolveSource(sourceID)
	if err != nil {
		return err
	}

	sourceClass, err := an.g.SourceClass(resolvedSource)
	if err != nil {
		return err
	}
	sinkClass, err := an.g.SinkClass(sinkID)
	if err != nil {
		return err
	}
	numSources := sourceClass.NumPins()
	numSinks := sinkClass.NumPins()

	sumPinProbs, err := an.settings.SumPinProbs(sourceClass.Pins, pinProbEps)
	if err != nil {
		return err
	}

	maxW := an.settings.GetMaxPathWeight(length)
	res, err := distpass.Distances(an.g, an.a, resolvedSource, sinkID, maxW, an.opts.TighteningFactor)
	if err != nil {
		return err
	}

	lengthProb := an.settings.LengthProbability(length)

	if !res.Reachable {
		return an.recordUnreachable(phase, length, numSources, numSinks)
	}

	sourceNode, err := an.g.Node(resolvedSource)
	if err != nil {
		return err
	}

	switch phase {
	case PhaseEnumerate:
		return an.runEnumerate(resolvedSource, sinkID, sourceNode.Weight, res.EffectiveW, lengthProb, sumPinProbs, numSinks, numConnsAtLength)
	default:
		return an.runProbability(resolvedSource, sinkID, res.EffectiveW, length, lengthProb, sumPinProbs, numSources, numSinks, numConnsAtLength)
	}
}

// recordUnreachable folds a connection with zero legal paths into the
// aggregator: ENUMERATE still counts it (spec.md §4.8 step 3 increments
// num_conns unconditionally), PROBABILITY records a zero estimate.
func (an *Analyzer) recordUnreachable(phase Phase, length, numSources, numSinks int) error {
	if phase == PhaseEnumerate {
		an.results.RecordEnumeration()
		return nil
	}
	return an.results.RecordProbability(length, 0, 0, numSources, numSinks)
}
