package task_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/qecstress/driftbench/task"
)

// TestStandard_CrossProduct verifies 2 distances × 2 rates yield exactly 4
// tasks, each (d, p) pair exactly once, labeled "None".
func TestStandard_CrossProduct(t *testing.T) {
	tasks, err := task.Standard([]int{3, 5}, []float64{0.001, 0.002})
	require.NoError(t, err)
	require.Len(t, tasks, 4)

	seen := make(map[[2]float64]int)
	for _, tk := range tasks {
		require.Equal(t, "None", tk.Meta.Stress)
		require.Zero(t, tk.Meta.DriftStrength)
		require.Zero(t, tk.Meta.BurstProb)
		require.NotNil(t, tk.Circuit)
		require.NotNil(t, tk.Model)
		seen[[2]float64{float64(tk.Meta.Distance), tk.Meta.P}]++
	}
	for _, d := range []int{3, 5} {
		for _, p := range []float64{0.001, 0.002} {
			require.Equal(t, 1, seen[[2]float64{float64(d), p}], "(d=%d,p=%g)", d, p)
		}
	}
}

// TestSweep_NumericFields verifies sweep metadata carries drift amplitudes
// as numbers, in argument order.
func TestSweep_NumericFields(t *testing.T) {
	tasks, err := task.Sweep(5, []float64{0.0, 0.3}, 0.003)
	require.NoError(t, err)
	require.Len(t, tasks, 2)

	require.Equal(t, 0.0, tasks[0].Meta.DriftStrength)
	require.Equal(t, 0.3, tasks[1].Meta.DriftStrength)
	require.Equal(t, "Drift=0", tasks[0].Meta.Stress)
	require.Equal(t, "Drift=0.3", tasks[1].Meta.Stress)
	for _, tk := range tasks {
		require.Equal(t, 5, tk.Meta.Distance)
		require.Equal(t, 0.003, tk.Meta.P)
		require.Zero(t, tk.Meta.BurstProb)
	}
}

// TestUndeniable_StressFields verifies the drift+burst campaign carries
// both stress parameters numerically.
func TestUndeniable_StressFields(t *testing.T) {
	tasks, err := task.Undeniable([]int{3, 5}, task.DefaultStressParams())
	require.NoError(t, err)
	require.Len(t, tasks, 2)

	for i, d := range []int{3, 5} {
		require.Equal(t, d, tasks[i].Meta.Distance)
		require.Equal(t, "Drift+Burst", tasks[i].Meta.Stress)
		require.Equal(t, 0.3, tasks[i].Meta.DriftStrength)
		require.Equal(t, 0.05, tasks[i].Meta.BurstProb)
		require.Equal(t, 0.003, tasks[i].Meta.P)
		require.Equal(t, 3*d, tasks[i].Meta.Rounds)
	}
}

// TestDeterminism verifies two assemblies with identical arguments agree on
// metadata (object identity aside).
func TestDeterminism(t *testing.T) {
	a, err := task.Standard([]int{3}, []float64{0.001, 0.003})
	require.NoError(t, err)
	b, err := task.Standard([]int{3}, []float64{0.001, 0.003})
	require.NoError(t, err)

	require.Len(t, b, len(a))
	for i := range a {
		require.Equal(t, a[i].Meta, b[i].Meta)
		require.Equal(t, a[i].Model.NumMechanisms(), b[i].Model.NumMechanisms())
	}
}

// TestDefaults verifies nil arguments select the default campaigns.
func TestDefaults(t *testing.T) {
	std, err := task.Standard(nil, nil)
	require.NoError(t, err)
	require.Len(t, std, len(task.DefaultDistances)*len(task.DefaultErrorRates))

	sweep, err := task.Sweep(3, nil, 0.003)
	require.NoError(t, err)
	require.Len(t, sweep, len(task.DefaultSweepDrifts))
}

// TestEmptyConditions verifies explicit empty lists are rejected.
func TestEmptyConditions(t *testing.T) {
	_, err := task.Standard([]int{}, []float64{0.001})
	if !errors.Is(err, task.ErrNoConditions) {
		t.Errorf("Standard(empty) error = %v; want ErrNoConditions", err)
	}
	_, err = task.Sweep(3, []float64{}, 0.003)
	if !errors.Is(err, task.ErrNoConditions) {
		t.Errorf("Sweep(empty) error = %v; want ErrNoConditions", err)
	}
}

// TestBadCondition verifies generator errors propagate with context.
func TestBadCondition(t *testing.T) {
	_, err := task.Standard([]int{4}, []float64{0.001})
	require.Error(t, err)
}
