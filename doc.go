// Package wotan implements the topological path-enumeration and
// probability-propagation engine for FPGA routability analysis
// (SPEC_FULL.md).
//
// Given a routing resource graph (package rrg) and a set of
// source/sink connections to analyze, the engine runs two global
// phases per connection (package connection, driven by package
// dispatch's sharded workload):
//
//   - ENUMERATE: a bidirectional bounded distance pass (package
//     distpass) followed by a weight-layered topological traversal
//     (package traversal) that convolves per-node path-count buckets
//     (package enumerate), accumulating node demand.
//   - PROBABILITY: one of five interchangeable routability estimators
//     (package probmodel) folds adjusted demand into a [0, 1] estimate,
//     recorded into the shared results aggregator (package metrics).
//
// Package config holds the run's tunable analysis settings and user
// options; internal/logging and internal/telemetry are the ambient
// structured-logging and metrics-export layers every worker reports
// through.
package wotan
