package connection

import (
	"github.com/shikc/wotan-core/config"
	"github.com/shikc/wotan-core/distpass"
	"github.com/shikc/wotan-core/probmodel"
)

// runProbability implements spec.md §4.7+§4.8's PROBABILITY dispatch:
// runs the configured model with a demand-history-adjusted free-
// probability function, then folds the scaled estimate into Results.
func (an *Analyzer) runProbability(source, sink, effW, length int, lengthProb, sumPinProbs float64, numSources, numSinks, numConnsAtLength int) error {
	var adjErr error
	demand := an.adjustedDemand(source, sink, numSources, numSinks, &adjErr)

	prob, err := an.runModel(source, sink, effW, demand)
	if err != nil {
		return err
	}
	if adjErr != nil {
		return adjErr
	}

	scaling := 0.0
	if numConnsAtLength > 0 {
		scaling = (lengthProb * float64(numSinks) * sumPinProbs) / float64(numConnsAtLength)
	}

	return an.results.RecordProbability(length, scaling, prob, numSources, numSinks)
}

func (an *Analyzer) runModel(source, sink, effW int, demand probmodel.AdjustedDemand) (float64, error) {
	switch an.opts.ProbabilityModel {
	case config.ModelPropagate:
		return probmodel.Propagate(an.g, an.a, source, sink, effW, demand)
	case config.ModelCutline:
		return probmodel.Cutline(an.g, an.a, source, sink, effW, demand)
	case config.ModelCutlineSimple:
		distpass.SourceHopsPass(an.g, an.a, source, effW)
		return probmodel.CutlineSimple(an.g, an.a, source, sink, effW, demand)
	case config.ModelCutlineRecursive:
		distpass.SourceHopsPass(an.g, an.a, source, effW)
		ctx := probmodel.NewRecursiveContext(an.g, source, sink, an.a.SourceHops(sink))
		return probmodel.CutlineRecursive(an.g, an.a, ctx, effW, demand)
	default: // config.ModelReliabilityPolynomial
		if an.opts.UseRoutingNodeDemand == nil {
			return 0, probmodel.ErrRoutingNodeDemandRequired
		}
		return probmodel.ReliabilityPolynomial(an.g, an.a, source, sink, effW, *an.opts.UseRoutingNodeDemand, true)
	}
}

// adjustedDemand implements spec.md §4.11's demand-history adjustment:
// a node's probability-of-free is computed from its aggregate demand
// minus whatever this connection's own preceding ENUMERATE pass
// contributed to it, so a connection does not see itself as contention.
// Any violation (subtraction exceeding current demand by more than eps)
// is reported through errOut rather than returned directly, since
// probmodel.AdjustedDemand has no error return.
func (an *Analyzer) adjustedDemand(source, sink, numSources, numSinks int, errOut *error) probmodel.AdjustedDemand {
	return func(id int) float64 {
		n, err := an.g.Node(id)
		if err != nil {
			*errOut = err
			return 0
		}

		var sourceContrib, sinkContrib float64
		if n.PathCountHistory != nil {
			if v, ok := n.PathCountHistory[source]; ok && numSources > 0 {
				sourceContrib = v / float64(numSources)
			}
			if v, ok := n.PathCountHistory[sink]; ok && numSinks > 0 {
				sinkContrib = v / float64(numSinks)
			}
		}
		contrib := sourceContrib
		if sinkContrib > contrib {
			contrib = sinkContrib
		}

		demand := n.Demand * an.opts.DemandMultiplier
		adjusted := demand - contrib
		if adjusted < -demandEps {
			*errOut = ErrDemandExceeded
			return 0
		}
		if adjusted < 0 {
			adjusted = 0
		}
		return adjusted
	}
}
