package dispatch

import (
	"golang.org/x/sync/errgroup"

	"github.com/shikc/wotan-core/arena"
	"github.com/shikc/wotan-core/config"
	"github.com/shikc/wotan-core/connection"
	"github.com/shikc/wotan-core/internal/logging"
	"github.com/shikc/wotan-core/internal/telemetry"
	"github.com/shikc/wotan-core/metrics"
	"github.com/shikc/wotan-core/rrg"
)

// Run builds the workload and drives the engine's two global phases in
// sequence over it (spec.md §2, §4.9): every shard runs ENUMERATE to
// completion before PROBABILITY starts on any shard, since PROBABILITY
// reads node demand that ENUMERATE writes (spec.md §5 "Ordering").
//
// Each worker gets its own Arena, sized once for the largest
// max_path_weight any connection in the run will use, and its own
// connection.Analyzer; only the shared metrics.Results crosses shard
// boundaries, under its own lock.
//
// logger and tel are both optional observability side-channels (spec.md
// §2.1, §2.3) and may be nil: logger logs one event per phase transition
// and a final structured summary mirroring the stdout line, tel is
// populated from that same final metrics.Results snapshot once the run
// completes.
func Run(g *rrg.RRG, settings *config.AnalysisSettings, opts config.UserOptions, results *metrics.Results, logger *logging.Logger, tel *telemetry.Metrics) (*Workload, error) {
	wl, err := Build(g, settings.TestTileCoords, opts.NumThreads, opts.MaxConnectionLength, opts.AnalyzeCore, settings.GetMaxPathWeight)
	if err != nil {
		return nil, err
	}

	logger.Info("enumerate phase starting")
	if err := runPhase(g, wl, settings, opts, results, logger, connection.PhaseEnumerate); err != nil {
		return nil, err
	}

	for length, n := range wl.ConnCountsByLength {
		results.PrepareLength(length, n)
	}

	logger.Info("probability phase starting")
	if err := runPhase(g, wl, settings, opts, results, logger, connection.PhaseProbability); err != nil {
		return nil, err
	}

	summary := results.Snapshot(g)
	logger.WithFields(map[string]float64{
		"total_prob_normalized":   summary.TotalProbNormalized,
		"pessimistic_probability": summary.PessimisticProbability,
		"normalized_demand":       summary.NormalizedDemand,
		"squared_demand":          summary.SquaredDemand,
		"fraction_enumerated":     summary.FractionEnumerated,
	}).Info("run summary")

	if tel != nil {
		tel.TotalProb.Set(results.TotalProb())
		tel.MaxPossibleTotalProb.Set(results.MaxPossibleTotalProb())
		tel.PessimisticProbability.Set(summary.PessimisticProbability)
		tel.NormalizedDemand.Set(summary.NormalizedDemand)
		tel.SquaredDemand.Set(summary.SquaredDemand)
		tel.FractionEnumerated.Set(summary.FractionEnumerated)
		tel.NumConns.Set(float64(results.NumConns()))
		tel.DesiredConns.Set(float64(results.DesiredConns()))
	}

	return wl, nil
}

// runPhase fans the workload's shards out across worker goroutines, one
// per shard but the last shard run inline on the calling goroutine
// (spec.md §4.9: "Launches N−1 additional workers and runs the N-th on
// the calling thread; joins at the end").
func runPhase(g *rrg.RRG, wl *Workload, settings *config.AnalysisSettings, opts config.UserOptions, results *metrics.Results, logger *logging.Logger, phase connection.Phase) error {
	var eg errgroup.Group

	last := len(wl.Shards) - 1
	for i, shard := range wl.Shards {
		if i == last {
			continue
		}
		i, shard := i, shard
		eg.Go(func() error {
			return runShard(g, shard, wl, settings, opts, results, logger.WithThread(i), phase)
		})
	}

	if last >= 0 {
		if err := runShard(g, wl.Shards[last], wl, settings, opts, results, logger.WithThread(last), phase); err != nil {
			return err
		}
	}

	return eg.Wait()
}

// runShard analyzes every connection reachable from one shard's work
// items, for the given phase, against a private Arena and Analyzer
// (spec.md §5 "Isolation").
func runShard(g *rrg.RRG, shard []WorkItem, wl *Workload, settings *config.AnalysisSettings, opts config.UserOptions, results *metrics.Results, logger *logging.Logger, phase connection.Phase) error {
	a := arena.New(g.NumNodes(), wl.MaxB)
	an := connection.NewAnalyzer(g, a, settings, opts, results).WithLogger(logger)

	for _, item := range shard {
		for length := 1; length <= opts.MaxConnectionLength; length++ {
			numConnsAtLength := wl.ConnCountsByLength[length]
			var stepErr error
			forEachDestination(g, item.TileX, item.TileY, length, func(dx, dy int) {
				if stepErr != nil {
					return
				}
				bt := g.BlockTypeAt(dx, dy)
				for classIdx := range bt.Classes {
					if bt.Classes[classIdx].Kind != rrg.Receiver {
						continue
					}
					sinkID, err := g.NodeIndex(rrg.SINK, dx, dy, classIdx)
					if err != nil {
						continue
					}
					if err := an.Analyze(item.SourceNode, sinkID, length, numConnsAtLength, phase); err != nil {
						stepErr = err
						return
					}
				}
			})
			if stepErr != nil {
				return stepErr
			}
		}
	}

	return nil
}
