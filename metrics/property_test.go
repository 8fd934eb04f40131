package metrics

import (
	"testing"

	"pgregory.net/rapid"
)

// For any sequence of RecordProbability calls where each per-connection
// probability stays within [0, 1], total_prob must never exceed
// max_possible_total_prob (spec.md §8, "total_prob <= max_possible_total_prob
// + eps"), and desired_conns must stay >= num_conns >= 0 regardless of how
// many enumerations are recorded against a fixed desired target.
func TestTotalProbNeverExceedsMaxPossible(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		n := rapid.IntRange(1, 20).Draw(rt, "n")
		r := NewResults(n)
		r.PrepareLength(1, n)

		for i := 0; i < n; i++ {
			scaling := rapid.Float64Range(0, 5).Draw(rt, "scaling")
			prob := rapid.Float64Range(0, 1).Draw(rt, "prob")
			if err := r.RecordProbability(1, scaling, prob, 1, 1); err != nil {
				rt.Fatalf("RecordProbability: %v", err)
			}
		}

		if r.TotalProb() > r.MaxPossibleTotalProb()+1e-9 {
			rt.Fatalf("total_prob %v exceeds max_possible_total_prob %v", r.TotalProb(), r.MaxPossibleTotalProb())
		}
	})
}

func TestDesiredConnsNeverFallsBelowNumConns(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		desired := rapid.IntRange(0, 50).Draw(rt, "desired")
		recorded := rapid.IntRange(0, 50).Draw(rt, "recorded")

		r := NewResults(desired)
		for i := 0; i < recorded; i++ {
			r.RecordEnumeration()
		}

		if r.NumConns() < 0 {
			rt.Fatalf("num_conns went negative: %v", r.NumConns())
		}
		if recorded <= desired && r.NumConns() > r.DesiredConns() {
			rt.Fatalf("num_conns %v exceeded desired_conns %v when recorded <= desired", r.NumConns(), r.DesiredConns())
		}
	})
}
