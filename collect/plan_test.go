package collect_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/qecstress/driftbench/collect"
)

// TestLoadPlan_Standard verifies decoding and expansion of a standard plan.
func TestLoadPlan_Standard(t *testing.T) {
	doc := `
mode: standard
distances: [3, 5]
error_rates: [0.001, 0.002]
max_shots: 500
max_errors: 10
`
	plan, err := collect.LoadPlan(strings.NewReader(doc))
	require.NoError(t, err)
	require.Equal(t, collect.ModeStandard, plan.Mode)

	tasks, err := plan.Tasks()
	require.NoError(t, err)
	require.Len(t, tasks, 4)

	opts := plan.Options()
	require.Equal(t, uint64(500), opts.MaxShots)
	require.Equal(t, uint64(10), opts.MaxErrors)
}

// TestLoadPlan_Stress verifies plan values override stress defaults.
func TestLoadPlan_Stress(t *testing.T) {
	doc := `
mode: stress
distances: [3]
base_p: 0.002
drift_strength: 0.4
burst_prob: 0.01
`
	plan, err := collect.LoadPlan(strings.NewReader(doc))
	require.NoError(t, err)

	tasks, err := plan.Tasks()
	require.NoError(t, err)
	require.Len(t, tasks, 1)
	require.Equal(t, 0.002, tasks[0].Meta.P)
	require.Equal(t, 0.4, tasks[0].Meta.DriftStrength)
	require.Equal(t, 0.01, tasks[0].Meta.BurstProb)
	require.Equal(t, "Drift+Burst", tasks[0].Meta.Stress)
}

// TestLoadPlan_Sweep verifies the sweep expansion.
func TestLoadPlan_Sweep(t *testing.T) {
	doc := `
mode: sweep
distance: 3
base_p: 0.003
drift_strengths: [0.0, 0.2]
`
	plan, err := collect.LoadPlan(strings.NewReader(doc))
	require.NoError(t, err)

	tasks, err := plan.Tasks()
	require.NoError(t, err)
	require.Len(t, tasks, 2)
	require.Equal(t, 0.0, tasks[0].Meta.DriftStrength)
	require.Equal(t, 0.2, tasks[1].Meta.DriftStrength)
}

// TestPlan_UnknownMode verifies the mode sentinel.
func TestPlan_UnknownMode(t *testing.T) {
	plan := &collect.Plan{Mode: "chaos"}
	_, err := plan.Tasks()
	if !errors.Is(err, collect.ErrUnknownMode) {
		t.Errorf("Tasks() error = %v; want ErrUnknownMode", err)
	}
}

// TestLoadPlan_RejectsUnknownFields verifies typos fail loudly instead of
// becoming silently-ignored configuration.
func TestLoadPlan_RejectsUnknownFields(t *testing.T) {
	_, err := collect.LoadPlan(strings.NewReader("mode: standard\nshotz: 5\n"))
	if !errors.Is(err, collect.ErrBadPlan) {
		t.Errorf("LoadPlan(unknown field) error = %v; want ErrBadPlan", err)
	}
}

// TestLoadPlan_BadDocument verifies malformed YAML surfaces as ErrBadPlan.
func TestLoadPlan_BadDocument(t *testing.T) {
	_, err := collect.LoadPlan(strings.NewReader(":\n  - ]["))
	if !errors.Is(err, collect.ErrBadPlan) {
		t.Errorf("LoadPlan(bad yaml) error = %v; want ErrBadPlan", err)
	}
}
