// Package telemetry exposes the engine's summary metrics as prometheus
// gauges, in addition to whatever the caller prints to stdout: the raw
// total and maximum-possible total probability (not their normalized
// ratio), pessimistic probability, normalized demand, squared demand,
// fraction enumerated, and the actual and desired connection counts.
//
// jhkimqd-chaos-utils depends on client_golang only as a query client
// (pkg/monitoring/prometheus.Client, reading an existing Prometheus
// server); this engine is the one producing metrics, so it uses
// client_golang's registration side (prometheus.NewGauge +
// prometheus.Registerer) instead. Same dependency, the other half of its
// API surface.
package telemetry

import "github.com/prometheus/client_golang/prometheus"

// Metrics is the set of gauges one dispatcher run publishes.
type Metrics struct {
	TotalProb              prometheus.Gauge
	MaxPossibleTotalProb   prometheus.Gauge
	PessimisticProbability prometheus.Gauge
	NormalizedDemand       prometheus.Gauge
	SquaredDemand          prometheus.Gauge
	FractionEnumerated     prometheus.Gauge
	NumConns               prometheus.Gauge
	DesiredConns           prometheus.Gauge
}

// New registers and returns a fresh Metrics set on reg.
func New(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		TotalProb: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "wotan_total_prob", Help: "Sum of scaled per-connection routability estimates.",
		}),
		MaxPossibleTotalProb: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "wotan_max_possible_total_prob", Help: "Upper bound total_prob could reach if every connection estimated 1.",
		}),
		PessimisticProbability: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "wotan_pessimistic_probability", Help: "Normalized sum of the worst decile of per-length connection probabilities.",
		}),
		NormalizedDemand: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "wotan_normalized_demand", Help: "Average demand across the top 5% most-demanded routing nodes.",
		}),
		SquaredDemand: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "wotan_squared_demand", Help: "Average of squared demand across the top 5% most-demanded routing nodes.",
		}),
		FractionEnumerated: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "wotan_fraction_enumerated", Help: "Fraction of desired connections actually analyzed.",
		}),
		NumConns: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "wotan_num_conns", Help: "Connections analyzed so far.",
		}),
		DesiredConns: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "wotan_desired_conns", Help: "Connections the dispatcher intends to analyze.",
		}),
	}

	for _, c := range []prometheus.Collector{
		m.TotalProb, m.MaxPossibleTotalProb, m.PessimisticProbability,
		m.NormalizedDemand, m.SquaredDemand, m.FractionEnumerated,
		m.NumConns, m.DesiredConns,
	} {
		reg.MustRegister(c)
	}

	return m
}
