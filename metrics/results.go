package metrics

import (
	"math"
	"sync"

	goccyjson "github.com/goccy/go-json"

	"github.com/shikc/wotan-core/rrg"
	"github.com/shikc/wotan-core/topk"
)

// Results is the process-wide aggregator every worker reports into
// (spec.md §3 "Results aggregator"). Zero value is not usable; build
// with NewResults.
type Results struct {
	mu sync.Mutex

	totalProb            float64
	maxPossibleTotalProb float64
	desiredConns         int
	numConns             int

	// lowestProbsPQs[length] retains the smallest per-sub-pair scaled
	// probabilities seen at that connection length (spec.md §3, §4.8,
	// §4.10). Capacity is fixed once via PrepareLength, since the
	// retention fraction (10%) is computed against the *total* number of
	// connections at that length, known to the dispatcher in advance from
	// its workload construction.
	lowestProbsPQs map[int]*topk.TopK[float64]
}

// NewResults returns an empty Results with the given DesiredConns target
// (spec.md §3, §6: the dispatcher's own bookkeeping of how many
// connections it intends to analyze).
func NewResults(desiredConns int) *Results {
	return &Results{
		desiredConns:   desiredConns,
		lowestProbsPQs: make(map[int]*topk.TopK[float64]),
	}
}

// PrepareLength sizes the per-length lowest-probability queue for
// length, given the total number of sub-pair connections the dispatcher
// will analyze at that length: k = ceil(connsAtLength * 0.10).
// Must be called once, before any RecordProbability at that length.
func (r *Results) PrepareLength(length, connsAtLength int) {
	k := int(math.Ceil(float64(connsAtLength) * 0.10))

	r.mu.Lock()
	r.lowestProbsPQs[length] = topk.New(k, topk.Less[float64])
	r.mu.Unlock()
}

// RecordEnumeration atomically increments NumConns (spec.md §4.8 step 3,
// "After ENUMERATE, atomically increment num_conns").
func (r *Results) RecordEnumeration() {
	r.mu.Lock()
	r.numConns++
	r.mu.Unlock()
}

// RecordProbability folds one connection's PROBABILITY-phase result into
// the aggregator (spec.md §4.8 step 3): total_prob += scaling*prob,
// max_possible_total_prob += scaling, and the per-sub-pair normalized
// probability is pushed into lowestProbsPQs[length].
func (r *Results) RecordProbability(length int, scaling, prob float64, numSources, numSinks int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	pq, ok := r.lowestProbsPQs[length]
	if !ok {
		return ErrUnknownLength
	}

	r.totalProb += scaling * prob
	r.maxPossibleTotalProb += scaling
	pq.Push(scaling * prob / float64(numSources*numSinks))

	return nil
}

// TotalProb, MaxPossibleTotalProb, DesiredConns, NumConns return
// snapshots of the aggregator's running totals.
func (r *Results) TotalProb() float64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.totalProb
}

func (r *Results) MaxPossibleTotalProb() float64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.maxPossibleTotalProb
}

func (r *Results) DesiredConns() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.desiredConns
}

func (r *Results) NumConns() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.numConns
}

// AnalyzeLowestProbsPQs implements spec.md §4.10's
// analyze_lowest_probs_pqs: sums every retained entry across all
// lengths. The caller normalizes by max_possible_total_prob * 0.10.
func (r *Results) AnalyzeLowestProbsPQs() float64 {
	r.mu.Lock()
	defer r.mu.Unlock()

	var sum float64
	for _, pq := range r.lowestProbsPQs {
		for _, v := range pq.Items() {
			sum += v
		}
	}
	return sum
}

// NodeDemandMetric implements spec.md §4.10's node_demand_metric: a
// fixed-size-k max-PQ over CHANX/CHANY node demands, k = ceil(0.05 *
// numRoutingNodes), returning the average of the retained k values.
func NodeDemandMetric(g *rrg.RRG) float64 {
	return topKRoutingAverage(g, func(demand float64) float64 { return demand })
}

// SquaredDemandMetric is node_demand_metric's companion (spec.md §6's
// "squared demand" stdout field): the same top-5%-by-demand routing
// nodes, averaged as demand^2 instead of demand, so a handful of
// heavily congested nodes weigh in more than their raw average would
// suggest.
func SquaredDemandMetric(g *rrg.RRG) float64 {
	return topKRoutingAverage(g, func(demand float64) float64 { return demand * demand })
}

func topKRoutingAverage(g *rrg.RRG, transform func(float64) float64) float64 {
	numRouting := 0
	for i := range g.Nodes {
		if g.Nodes[i].Type.IsChannel() {
			numRouting++
		}
	}
	if numRouting == 0 {
		return 0
	}

	k := int(math.Ceil(0.05 * float64(numRouting)))
	pq := topk.New(k, topk.Greater[float64])
	for i := range g.Nodes {
		if g.Nodes[i].Type.IsChannel() {
			pq.Push(g.Nodes[i].Demand)
		}
	}

	var sum float64
	for _, v := range pq.Items() {
		sum += transform(v)
	}
	return sum / float64(pq.Size())
}

// Summary is the machine-readable companion to spec.md §6's plain-text
// stdout line: normalized total probability, pessimistic probability,
// normalized demand, squared demand, and fraction enumerated.
type Summary struct {
	TotalProbNormalized    float64 `json:"total_prob_normalized"`
	PessimisticProbability float64 `json:"pessimistic_probability"`
	NormalizedDemand       float64 `json:"normalized_demand"`
	SquaredDemand          float64 `json:"squared_demand"`
	FractionEnumerated     float64 `json:"fraction_enumerated"`
}

// Snapshot computes a Summary from the aggregator's current totals and
// g's node demands (spec.md §6). Safe to call once the run's phases
// have completed; node demand keeps accumulating if called mid-run.
func (r *Results) Snapshot(g *rrg.RRG) Summary {
	r.mu.Lock()
	totalProb := r.totalProb
	maxPossible := r.maxPossibleTotalProb
	numConns := r.numConns
	desired := r.desiredConns
	r.mu.Unlock()

	var totalNorm, pessimistic, fraction float64
	if maxPossible > 0 {
		totalNorm = totalProb / maxPossible
		pessimistic = r.AnalyzeLowestProbsPQs() / (maxPossible * 0.10)
	}
	if desired > 0 {
		fraction = float64(numConns) / float64(desired)
	}

	return Summary{
		TotalProbNormalized:    totalNorm,
		PessimisticProbability: pessimistic,
		NormalizedDemand:       NodeDemandMetric(g),
		SquaredDemand:          SquaredDemandMetric(g),
		FractionEnumerated:     fraction,
	}
}

// EncodeJSON renders the summary as the machine-readable companion
// output spec.md §6 describes alongside the stdout line, using
// goccy/go-json's faster encoder rather than the standard library's.
func (s Summary) EncodeJSON() ([]byte, error) {
	return goccyjson.Marshal(s)
}
