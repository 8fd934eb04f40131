package distpass

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/shikc/wotan-core/arena"
	"github.com/shikc/wotan-core/testfixtures"
)

func TestDistancesSingleEdge(t *testing.T) {
	g, ids := testfixtures.SingleEdge()
	a := arena.New(g.NumNodes(), 10)

	res, err := Distances(g, a, ids[0], ids[2], 3, DefaultTighteningFactor)
	require.NoError(t, err)
	require.True(t, res.Reachable)
	require.Equal(t, 1, res.MinDist)
	require.Equal(t, 2, res.EffectiveW) // ceil(1*1.3) = 2

	require.True(t, a.IsLegal(ids[1], 1, res.EffectiveW))
}

func TestDistancesDiamond(t *testing.T) {
	g, ids := testfixtures.Diamond()
	a := arena.New(g.NumNodes(), 10)

	res, err := Distances(g, a, ids[0], ids[3], 5, DefaultTighteningFactor)
	require.NoError(t, err)
	require.True(t, res.Reachable)
	require.Equal(t, 1, res.MinDist) // A->B->D and A->C->D both accumulate weight 1+0
	require.Equal(t, 2, res.EffectiveW)
	// both B and C sit on a legal path
	require.True(t, a.IsLegal(ids[1], 1, res.EffectiveW))
	require.True(t, a.IsLegal(ids[2], 1, res.EffectiveW))
}

func TestDistancesUnreachable(t *testing.T) {
	g, ids := testfixtures.SingleEdge()
	a := arena.New(g.NumNodes(), 10)

	// weight budget too small to ever reach the sink.
	res, err := Distances(g, a, ids[0], ids[2], 0, DefaultTighteningFactor)
	require.NoError(t, err)
	require.False(t, res.Reachable)
}

func TestGeometricPruneLimitsVisitedSet(t *testing.T) {
	g, ep := testfixtures.GeometricPrune(1)
	a := arena.New(g.NumNodes(), 40)

	res, err := Distances(g, a, ep.Source, ep.Sink, 40, DefaultTighteningFactor)
	require.NoError(t, err)
	require.True(t, res.Reachable)
	require.Equal(t, 31, res.MinDist) // unit-weight channels (5,5)..(20,20): 1 + (20-5)+(20-5)

	// with a tight budget the forward pass must not touch every node in
	// the lattice; it should prune far more than it keeps.
	a2 := arena.New(g.NumNodes(), 31)
	_, err = Distances(g, a2, ep.Source, ep.Sink, 31, DefaultTighteningFactor)
	require.NoError(t, err)
	require.Less(t, len(a2.NodesVisited()), g.NumNodes())
}

func TestSourceHopsPassCountsLayers(t *testing.T) {
	g, ids := testfixtures.Diamond()
	a := arena.New(g.NumNodes(), 10)

	_, err := Distances(g, a, ids[0], ids[3], 5, DefaultTighteningFactor)
	require.NoError(t, err)

	SourceHopsPass(g, a, ids[0], 5)
	require.Equal(t, 0, a.SourceHops(ids[0]))
	require.Equal(t, 1, a.SourceHops(ids[1]))
	require.Equal(t, 1, a.SourceHops(ids[2]))
	require.Equal(t, 2, a.SourceHops(ids[3]))
}
