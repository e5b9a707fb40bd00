package collect_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/qecstress/driftbench/bitpack"
	"github.com/qecstress/driftbench/collect"
	"github.com/qecstress/driftbench/decoder"
	"github.com/qecstress/driftbench/dem"
	"github.com/qecstress/driftbench/task"
)

func quietOptions() collect.Options {
	opts := collect.DefaultOptions()
	opts.MaxShots = 64
	opts.BatchSize = 16
	opts.Logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	return opts
}

// alwaysWrongFactory compiles a decoder that asserts a correction on every
// shot; against a noiseless circuit every shot becomes a logical error,
// which makes budget behavior deterministic.
type alwaysWrongFactory struct{}

type alwaysWrong struct{ *decoder.Baseline }

func (alwaysWrongFactory) CompileForModel(model *dem.ErrorModel) (decoder.Decoder, error) {
	bl, err := decoder.NewBaseline(model)
	if err != nil {
		return nil, err
	}
	return alwaysWrong{bl}, nil
}

func (w alwaysWrong) DecodeBatchPacked(packed [][]byte) ([][]byte, error) {
	out := make([][]byte, len(packed))
	for i := range packed {
		row := make([]byte, bitpack.RowBytes(w.NumObservables()))
		row[0] = 0x01
		out[i] = row
	}
	return out, nil
}

// noiselessTasks builds one zero-noise task: no mechanism ever fires, so
// sampled flips are always zero.
func noiselessTasks(t *testing.T) []task.Task {
	t.Helper()
	tasks, err := task.Standard([]int{3}, []float64{0})
	require.NoError(t, err)
	require.Equal(t, 0, tasks[0].Model.NumMechanisms())
	return tasks
}

// TestRun_BaselineOnQuietCircuit verifies the full pipeline wiring: the
// baseline decoder on a noiseless circuit makes zero logical errors and
// exhausts the shot budget exactly.
func TestRun_BaselineOnQuietCircuit(t *testing.T) {
	stats, err := collect.Run(context.Background(), noiselessTasks(t),
		map[string]decoder.Factory{"baseline": decoder.BaselineFactory{}}, quietOptions())
	require.NoError(t, err)
	require.Len(t, stats, 1)
	require.Equal(t, "baseline", stats[0].Decoder)
	require.Equal(t, uint64(64), stats[0].Shots)
	require.Equal(t, uint64(0), stats[0].Errors)
	require.GreaterOrEqual(t, stats[0].MeanLatency, 0.0)
}

// TestRun_ErrorBudgetStopsEarly verifies MaxErrors trips after one batch
// when every shot errs.
func TestRun_ErrorBudgetStopsEarly(t *testing.T) {
	opts := quietOptions()
	opts.MaxErrors = 1
	stats, err := collect.Run(context.Background(), noiselessTasks(t),
		map[string]decoder.Factory{"wrong": alwaysWrongFactory{}}, opts)
	require.NoError(t, err)
	require.Equal(t, uint64(16), stats[0].Shots, "must stop after the first batch")
	require.Equal(t, uint64(16), stats[0].Errors)
}

// TestRun_UnavailableDecoderIsSkipped verifies a missing backend is fatal
// for that decoder only: the run completes and other decoders collect.
func TestRun_UnavailableDecoderIsSkipped(t *testing.T) {
	decoders := map[string]decoder.Factory{
		"baseline": decoder.BaselineFactory{},
		"mp":       decoder.MPFactory{}, // no solver factory registered
	}
	stats, err := collect.Run(context.Background(), noiselessTasks(t), decoders, quietOptions())
	require.NoError(t, err)
	require.Len(t, stats, 2)

	byName := map[string]collect.Stats{}
	for _, s := range stats {
		byName[s.Decoder] = s
	}
	require.Equal(t, uint64(64), byName["baseline"].Shots)
	require.Equal(t, uint64(0), byName["mp"].Shots, "skipped decoder reports zero shots")
}

// TestRun_ResultOrder verifies deterministic ordering: task order, then
// decoder names ascending.
func TestRun_ResultOrder(t *testing.T) {
	tasks, err := task.Standard([]int{3}, []float64{0, 0.001})
	require.NoError(t, err)

	decoders := map[string]decoder.Factory{
		"b-baseline": decoder.BaselineFactory{},
		"a-baseline": decoder.BaselineFactory{},
	}
	opts := quietOptions()
	opts.MaxShots = 16
	stats, err := collect.Run(context.Background(), tasks, decoders, opts)
	require.NoError(t, err)
	require.Len(t, stats, 4)
	require.Equal(t, "a-baseline", stats[0].Decoder)
	require.Equal(t, "b-baseline", stats[1].Decoder)
	require.Equal(t, 0.0, stats[0].Meta.P)
	require.Equal(t, 0.001, stats[2].Meta.P)
}

// TestRun_Validation verifies empty inputs are rejected.
func TestRun_Validation(t *testing.T) {
	_, err := collect.Run(context.Background(), nil,
		map[string]decoder.Factory{"baseline": decoder.BaselineFactory{}}, quietOptions())
	if !errors.Is(err, collect.ErrNoTasks) {
		t.Errorf("Run(no tasks) error = %v; want ErrNoTasks", err)
	}
	_, err = collect.Run(context.Background(), noiselessTasks(t), nil, quietOptions())
	if !errors.Is(err, collect.ErrNoDecoders) {
		t.Errorf("Run(no decoders) error = %v; want ErrNoDecoders", err)
	}
}

// TestRun_Cancellation verifies a canceled context aborts the run.
func TestRun_Cancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	opts := quietOptions()
	opts.MaxShots = 1 << 20
	_, err := collect.Run(ctx, noiselessTasks(t),
		map[string]decoder.Factory{"baseline": decoder.BaselineFactory{}}, opts)
	require.ErrorIs(t, err, context.Canceled)
}
