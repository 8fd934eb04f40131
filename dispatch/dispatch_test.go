package dispatch

import (
	"bytes"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"

	"github.com/shikc/wotan-core/config"
	"github.com/shikc/wotan-core/internal/logging"
	"github.com/shikc/wotan-core/internal/telemetry"
	"github.com/shikc/wotan-core/metrics"
	"github.com/shikc/wotan-core/testfixtures"
)

func allTiles(size int) []config.TileCoord {
	tiles := make([]config.TileCoord, 0, size*size)
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			tiles = append(tiles, config.TileCoord{X: x, Y: y})
		}
	}
	return tiles
}

func TestForEachDestinationLengthOneYieldsFourAxisNeighbors(t *testing.T) {
	g, _ := testfixtures.CoreRegionGrid(7)

	var got [][2]int
	forEachDestination(g, 3, 3, 1, func(dx, dy int) { got = append(got, [2]int{dx, dy}) })

	require.ElementsMatch(t, [][2]int{{2, 3}, {4, 3}, {3, 2}, {3, 4}}, got)
}

func TestBuildAssignsOneDriverPerTileRoundRobin(t *testing.T) {
	const size = 4
	g, _ := testfixtures.CoreRegionGrid(size)

	wl, err := Build(g, allTiles(size), 2, 1, false, func(int) int { return 5 })
	require.NoError(t, err)
	require.Len(t, wl.Shards, 2)

	total := 0
	for _, shard := range wl.Shards {
		total += len(shard)
	}
	require.Equal(t, size*size, total)
	require.Len(t, wl.Shards[0], size*size/2)
	require.Len(t, wl.Shards[1], size*size/2)
}

func TestBuildComputesConnCountsByLengthFromInteriorNeighbors(t *testing.T) {
	const size = 4
	g, _ := testfixtures.CoreRegionGrid(size)

	wl, err := Build(g, allTiles(size), 1, 1, false, func(int) int { return 5 })
	require.NoError(t, err)
	// counted per source tile: every interior tile (the 2x2 center) has 2
	// interior neighbors, every edge-middle tile has 1, every corner has
	// 0: 4*2 + 8*1 + 4*0 = 16.
	require.Equal(t, 16, wl.ConnCountsByLength[1])
}

func TestBuildAnalyzeCoreOnSmallGridFindsNoTestTiles(t *testing.T) {
	const size = 4 // CoreOffset is 3, so a 4x4 grid has no tile satisfying IsCoreRegion
	g, _ := testfixtures.CoreRegionGrid(size)

	_, err := Build(g, allTiles(size), 1, 1, true, func(int) int { return 5 })
	require.ErrorIs(t, err, ErrNoTestTiles)
}

func TestRunEnumeratesEveryDestinationExactlyOnce(t *testing.T) {
	const size = 4
	g, _ := testfixtures.CoreRegionGrid(size)

	settings := &config.AnalysisSettings{
		LengthProbabilities: []float64{0, 1.0},
		PinProbabilities:    []float64{0.3},
		MaxPathWeightBase:   5,
		TestTileCoords:      allTiles(size),
	}
	opts := config.DefaultUserOptions()
	opts.NumThreads = 2
	opts.MaxConnectionLength = 1

	results := metrics.NewResults(0)
	wl, err := Run(g, settings, opts, results, nil, nil)
	require.NoError(t, err)
	require.Equal(t, 16, wl.ConnCountsByLength[1])
	require.Equal(t, 16, results.NumConns())
}

func TestRunLogsPhaseTransitionsAndPopulatesTelemetry(t *testing.T) {
	const size = 4
	g, _ := testfixtures.CoreRegionGrid(size)

	settings := &config.AnalysisSettings{
		LengthProbabilities: []float64{0, 1.0},
		PinProbabilities:    []float64{0.3},
		MaxPathWeightBase:   5,
		TestTileCoords:      allTiles(size),
	}
	opts := config.DefaultUserOptions()
	opts.NumThreads = 2
	opts.MaxConnectionLength = 1

	var buf bytes.Buffer
	logger := logging.New(logging.Config{Output: &buf, Level: logging.LevelDebug})
	reg := prometheus.NewRegistry()
	tel := telemetry.New(reg)

	results := metrics.NewResults(0)
	_, err := Run(g, settings, opts, results, logger, tel)
	require.NoError(t, err)

	require.Contains(t, buf.String(), `"message":"enumerate phase starting"`)
	require.Contains(t, buf.String(), `"message":"probability phase starting"`)
	require.Contains(t, buf.String(), `"message":"run summary"`)

	require.InDelta(t, results.TotalProb(), testutil.ToFloat64(tel.TotalProb), 1e-12)
	require.InDelta(t, float64(results.NumConns()), testutil.ToFloat64(tel.NumConns), 1e-12)
}
