package enumerate

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/shikc/wotan-core/arena"
	"github.com/shikc/wotan-core/distpass"
	"github.com/shikc/wotan-core/testfixtures"
)

func TestBackwardFillSinkBucketsSingleEdge(t *testing.T) {
	g, ids := testfixtures.SingleEdge()
	a, mid, c := ids[0], ids[1], ids[2]
	arn := arena.New(g.NumNodes(), 10)

	res, err := distpass.Distances(g, arn, a, c, 3, distpass.DefaultTighteningFactor)
	require.NoError(t, err)

	err = BackwardFillSinkBuckets(g, arn, c, res.EffectiveW, ByPathWeight)
	require.NoError(t, err)

	require.Equal(t, arena.Bucket(1), arn.SinkBucket(c, 0))
	require.Equal(t, arena.Bucket(1), arn.SinkBucket(mid, 1))
	require.Equal(t, arena.Bucket(1), arn.SinkBucket(a, 1))
}

func TestComputeScalingSingleEdge(t *testing.T) {
	g, ids := testfixtures.SingleEdge()
	a, _, c := ids[0], ids[1], ids[2]
	arn := arena.New(g.NumNodes(), 10)

	res, err := distpass.Distances(g, arn, a, c, 3, distpass.DefaultTighteningFactor)
	require.NoError(t, err)
	require.NoError(t, BackwardFillSinkBuckets(g, arn, c, res.EffectiveW, ByPathWeight))

	numPaths, scaledStart := ComputeScaling(arn, a, 0, res.EffectiveW, 1.0, 1.0, 1, 1)
	require.Equal(t, 1.0, numPaths)
	require.Equal(t, 1.0, scaledStart)
}

func TestComputeScalingNoConnectionsYieldsZeroScale(t *testing.T) {
	g, ids := testfixtures.SingleEdge()
	a, _, c := ids[0], ids[1], ids[2]
	arn := arena.New(g.NumNodes(), 10)

	res, err := distpass.Distances(g, arn, a, c, 3, distpass.DefaultTighteningFactor)
	require.NoError(t, err)
	require.NoError(t, BackwardFillSinkBuckets(g, arn, c, res.EffectiveW, ByPathWeight))

	numPaths, scaledStart := ComputeScaling(arn, a, 0, res.EffectiveW, 1.0, 1.0, 1, 0)
	require.Equal(t, 1.0, numPaths)
	require.Equal(t, 0.0, scaledStart)
}

func TestForwardFillAndDemandAccumulatesConservedPathWeight(t *testing.T) {
	g, ids := testfixtures.SingleEdge()
	a, mid, c := ids[0], ids[1], ids[2]
	arn := arena.New(g.NumNodes(), 10)

	res, err := distpass.Distances(g, arn, a, c, 3, distpass.DefaultTighteningFactor)
	require.NoError(t, err)
	require.NoError(t, BackwardFillSinkBuckets(g, arn, c, res.EffectiveW, ByPathWeight))
	numPaths, scaledStart := ComputeScaling(arn, a, 0, res.EffectiveW, 1.0, 1.0, 1, 1)
	require.Equal(t, 1.0, numPaths)

	total, err := ForwardFillAndDemand(g, arn, a, c, res.EffectiveW, ByPathWeight, scaledStart, true)
	require.NoError(t, err)
	require.InDelta(t, 3.0, total, 1e-9, "single path touches all three nodes")

	na, errA := g.Node(a)
	require.NoError(t, errA)
	nm, errM := g.Node(mid)
	require.NoError(t, errM)
	nc, errC := g.Node(c)
	require.NoError(t, errC)

	require.InDelta(t, 1.0, na.Demand, 1e-9)
	require.InDelta(t, 1.0, nm.Demand, 1e-9)
	require.InDelta(t, 1.0, nc.Demand, 1e-9)

	require.InDelta(t, 1.0, nm.PathCountHistory[a], 1e-9)
	require.InDelta(t, 1.0, nm.PathCountHistory[c], 1e-9)
}

func TestForwardFillAndDemandSkipsHistoryWhenNotRequested(t *testing.T) {
	g, ids := testfixtures.SingleEdge()
	a, mid, c := ids[0], ids[1], ids[2]
	arn := arena.New(g.NumNodes(), 10)

	res, err := distpass.Distances(g, arn, a, c, 3, distpass.DefaultTighteningFactor)
	require.NoError(t, err)
	require.NoError(t, BackwardFillSinkBuckets(g, arn, c, res.EffectiveW, ByPathWeight))
	_, scaledStart := ComputeScaling(arn, a, 0, res.EffectiveW, 1.0, 1.0, 1, 1)

	_, err = ForwardFillAndDemand(g, arn, a, c, res.EffectiveW, ByPathWeight, scaledStart, false)
	require.NoError(t, err)

	nm, err := g.Node(mid)
	require.NoError(t, err)
	require.Empty(t, nm.PathCountHistory)
}

func TestForwardFillBucketsLeavesDemandUntouched(t *testing.T) {
	g, ids := testfixtures.SingleEdge()
	a, mid, c := ids[0], ids[1], ids[2]
	arn := arena.New(g.NumNodes(), 10)

	res, err := distpass.Distances(g, arn, a, c, 3, distpass.DefaultTighteningFactor)
	require.NoError(t, err)
	require.NoError(t, BackwardFillSinkBuckets(g, arn, c, res.EffectiveW, ByPathWeight))
	_, scaledStart := ComputeScaling(arn, a, 0, res.EffectiveW, 1.0, 1.0, 1, 1)

	require.NoError(t, ForwardFillBuckets(g, arn, a, res.EffectiveW, ByPathWeight, scaledStart))

	require.Equal(t, scaledStart, arn.SourceBucket(a, 0))
	require.Equal(t, scaledStart, arn.SourceBucket(mid, 1))
	require.Equal(t, scaledStart, arn.SourceBucket(c, 1))

	nm, err := g.Node(mid)
	require.NoError(t, err)
	require.Equal(t, 0.0, nm.Demand)
	require.Empty(t, nm.PathCountHistory)
}

func TestModeIncrement(t *testing.T) {
	require.Equal(t, 7, ByPathWeight.increment(7))
	require.Equal(t, 1, ByPathHops.increment(7))
}
