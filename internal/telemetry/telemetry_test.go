package telemetry

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"
)

func TestNewRegistersAllGauges(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := New(reg)
	require.NotNil(t, m)

	families, err := reg.Gather()
	require.NoError(t, err)
	require.Len(t, families, 8)

	names := make(map[string]bool, len(families))
	for _, f := range families {
		names[f.GetName()] = true
	}
	for _, want := range []string{
		"wotan_total_prob", "wotan_max_possible_total_prob", "wotan_pessimistic_probability",
		"wotan_normalized_demand", "wotan_squared_demand", "wotan_fraction_enumerated",
		"wotan_num_conns", "wotan_desired_conns",
	} {
		require.True(t, names[want], "missing gauge %s", want)
	}
}

func TestGaugesAreSettableAndObservable(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := New(reg)

	m.TotalProb.Set(0.75)
	require.InDelta(t, 0.75, testutil.ToFloat64(m.TotalProb), 1e-12)

	m.NumConns.Set(42)
	require.InDelta(t, 42.0, testutil.ToFloat64(m.NumConns), 1e-12)
}

func TestNewPanicsOnDuplicateRegistration(t *testing.T) {
	reg := prometheus.NewRegistry()
	New(reg)
	require.Panics(t, func() { New(reg) })
}
