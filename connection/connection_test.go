package connection

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/shikc/wotan-core/arena"
	"github.com/shikc/wotan-core/config"
	"github.com/shikc/wotan-core/metrics"
	"github.com/shikc/wotan-core/rrg"
	"github.com/shikc/wotan-core/testfixtures"
)

func TestResolveSourcePassesThroughSource(t *testing.T) {
	g, ids := testfixtures.SingleEdge()
	an := NewAnalyzer(g, arena.New(g.NumNodes(), 5), &config.AnalysisSettings{}, config.UserOptions{}, metrics.NewResults(1))

	resolved, err := an.resolveSource(ids[0])
	require.NoError(t, err)
	require.Equal(t, ids[0], resolved)
}

func TestResolveSourceFollowsIPINToSynthesizedSource(t *testing.T) {
	b := testfixtures.NewBuilder()
	ipin := b.AddNode(rrg.IPIN, 0, 0, 0, 0)
	src := b.AddNode(rrg.SOURCE, 0, 0, 0, 0)
	b.AddEdge(ipin, src)
	g := b.Build()

	an := NewAnalyzer(g, arena.New(g.NumNodes(), 5), &config.AnalysisSettings{}, config.UserOptions{}, metrics.NewResults(1))
	resolved, err := an.resolveSource(ipin)
	require.NoError(t, err)
	require.Equal(t, src, resolved)
}

func TestResolveSourceIPINWithoutSourceFails(t *testing.T) {
	b := testfixtures.NewBuilder()
	ipin := b.AddNode(rrg.IPIN, 0, 0, 0, 0)
	g := b.Build()

	an := NewAnalyzer(g, arena.New(g.NumNodes(), 5), &config.AnalysisSettings{}, config.UserOptions{}, metrics.NewResults(1))
	_, err := an.resolveSource(ipin)
	require.ErrorIs(t, err, ErrSourceResolution)
}

func TestResolveSourceRejectsUnexpectedNodeType(t *testing.T) {
	g, ids := testfixtures.SingleEdge()
	an := NewAnalyzer(g, arena.New(g.NumNodes(), 5), &config.AnalysisSettings{}, config.UserOptions{}, metrics.NewResults(1))

	_, err := an.resolveSource(ids[1]) // the CHANX midpoint, neither SOURCE nor IPIN
	require.ErrorIs(t, err, ErrUnexpectedNodeType)
}

func TestAdjustedDemandSubtractsSelfContribution(t *testing.T) {
	g, ids := testfixtures.SingleEdge()
	an := NewAnalyzer(g, arena.New(g.NumNodes(), 5), &config.AnalysisSettings{}, config.UserOptions{DemandMultiplier: 1}, metrics.NewResults(1))

	n, err := g.Node(ids[1])
	require.NoError(t, err)
	n.AddDemand(10)
	n.AddHistory(ids[0], 4)
	n.AddHistory(ids[2], 2)

	var adjErr error
	demand := an.adjustedDemand(ids[0], ids[2], 2, 2, &adjErr)
	require.InDelta(t, 8.0, demand(ids[1]), 1e-12) // 10 - max(4/2, 2/2)
	require.NoError(t, adjErr)
}

func TestAdjustedDemandReportsOverflowThroughErrOut(t *testing.T) {
	g, ids := testfixtures.SingleEdge()
	an := NewAnalyzer(g, arena.New(g.NumNodes(), 5), &config.AnalysisSettings{}, config.UserOptions{DemandMultiplier: 1}, metrics.NewResults(1))

	n, err := g.Node(ids[1])
	require.NoError(t, err)
	n.AddDemand(1)
	n.AddHistory(ids[0], 10)

	var adjErr error
	demand := an.adjustedDemand(ids[0], ids[2], 1, 1, &adjErr)
	demand(ids[1])
	require.ErrorIs(t, adjErr, ErrDemandExceeded)
}

func analysisFixture() (*rrg.RRG, [3]int, *config.AnalysisSettings, config.UserOptions) {
	g, ids := testfixtures.SingleEdge()
	settings := &config.AnalysisSettings{
		LengthProbabilities: []float64{0, 1.0},
		PinProbabilities:    []float64{0.2},
		MaxPathWeightBase:   5,
	}
	opts := config.DefaultUserOptions()
	return g, ids, settings, opts
}

func TestAnalyzeEnumeratePhaseRecordsConnectionAndDemand(t *testing.T) {
	g, ids, settings, opts := analysisFixture()
	a, mid, c := ids[0], ids[1], ids[2]
	results := metrics.NewResults(1)
	an := NewAnalyzer(g, arena.New(g.NumNodes(), 10), settings, opts, results)

	err := an.Analyze(a, c, 1, 1, PhaseEnumerate)
	require.NoError(t, err)
	require.Equal(t, 1, results.NumConns())

	n, err := g.Node(mid)
	require.NoError(t, err)
	require.Greater(t, n.Demand, 0.0)
}

func TestAnalyzeUnreachableConnectionStillCountsEnumeration(t *testing.T) {
	g, ids, settings, _ := analysisFixture()
	a, _, c := ids[0], ids[1], ids[2]
	settings.MaxPathWeightBase = 0 // every budget is 0, nothing is reachable
	opts := config.DefaultUserOptions()
	results := metrics.NewResults(1)
	an := NewAnalyzer(g, arena.New(g.NumNodes(), 10), settings, opts, results)

	err := an.Analyze(a, c, 1, 1, PhaseEnumerate)
	require.NoError(t, err)
	require.Equal(t, 1, results.NumConns())
}

func TestAnalyzeProbabilityPhaseRecordsBoundedEstimate(t *testing.T) {
	g, ids, settings, opts := analysisFixture()
	a, _, c := ids[0], ids[1], ids[2]
	results := metrics.NewResults(1)
	results.PrepareLength(1, 1)
	an := NewAnalyzer(g, arena.New(g.NumNodes(), 10), settings, opts, results)

	require.NoError(t, an.Analyze(a, c, 1, 1, PhaseEnumerate))
	require.NoError(t, an.Analyze(a, c, 1, 1, PhaseProbability))

	require.GreaterOrEqual(t, results.TotalProb(), 0.0)
	require.LessOrEqual(t, results.TotalProb(), results.MaxPossibleTotalProb()+1e-9)
}

func TestAnalyzeProbabilityPhaseRequiresRoutingNodeDemandForReliabilityModel(t *testing.T) {
	g, ids, settings, opts := analysisFixture()
	a, _, c := ids[0], ids[1], ids[2]
	opts.ProbabilityModel = config.ModelReliabilityPolynomial
	results := metrics.NewResults(1)
	results.PrepareLength(1, 1)
	an := NewAnalyzer(g, arena.New(g.NumNodes(), 10), settings, opts, results)

	err := an.Analyze(a, c, 1, 1, PhaseProbability)
	require.Error(t, err)
}
