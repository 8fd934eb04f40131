package connection

import "github.com/shikc/wotan-core/enumerate"

// runEnumerate implements spec.md §4.6+§4.8's ENUMERATE dispatch: fill
// sink_buckets backward, compute the scaling factor, fill
// source_buckets forward while accumulating node demand, then record the
// connection as counted.
func (an *Analyzer) runEnumerate(source, sink, sourceWeight, effW int, lengthProb, sumPinProbs float64, numSinks, numConnsAtLength int) error {
	if err := enumerate.BackwardFillSinkBuckets(an.g, an.a, sink, effW, enumerate.ByPathWeight); err != nil {
		return err
	}

	_, scaledStart := enumerate.ComputeScaling(an.a, source, sourceWeight, effW, lengthProb, sumPinProbs, numSinks, numConnsAtLength)

	if _, err := enumerate.ForwardFillAndDemand(an.g, an.a, source, sink, effW, enumerate.ByPathWeight, scaledStart, an.opts.KeepPathCountHistory); err != nil {
		return err
	}

	an.results.RecordEnumeration()
	return nil
}
