// Package collect: the budgeted collection driver.

package collect

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"runtime"
	"sort"

	"golang.org/x/sync/errgroup"

	"github.com/qecstress/driftbench/bitpack"
	"github.com/qecstress/driftbench/circuit"
	"github.com/qecstress/driftbench/decoder"
	"github.com/qecstress/driftbench/task"
)

// Sentinel errors for the driver. Matched via errors.Is.
var (
	// ErrNoTasks indicates an empty task list.
	ErrNoTasks = errors.New("collect: no tasks to run")
	// ErrNoDecoders indicates an empty decoder map.
	ErrNoDecoders = errors.New("collect: no decoders to run")
)

// Stats aggregates one (task, decoder) pair: total shots, total logical
// errors, and the decoder's mean single-shot latency in seconds.
type Stats struct {
	Decoder     string
	Meta        task.Metadata
	Shots       uint64
	Errors      uint64
	MeanLatency float64
}

// Options tunes the driver. Zero values select the documented defaults.
type Options struct {
	// MaxShots is the per-pair shot budget (default 10_000).
	MaxShots uint64
	// MaxErrors stops a pair early once this many logical errors are seen;
	// 0 disables the error budget.
	MaxErrors uint64
	// BatchSize is the shots-per-batch granularity (default 1024).
	BatchSize int
	// Workers bounds concurrent jobs (default GOMAXPROCS).
	Workers int
	// Seed drives per-job sampler streams; job i uses Seed+i, so runs are
	// reproducible and jobs are mutually independent.
	Seed uint64
	// Logger receives progress and skip events; nil means slog.Default().
	Logger *slog.Logger
}

// DefaultOptions returns the documented defaults.
func DefaultOptions() Options {
	return Options{MaxShots: 10_000, BatchSize: 1024}
}

func (o Options) withDefaults() Options {
	if o.MaxShots == 0 {
		o.MaxShots = 10_000
	}
	if o.BatchSize <= 0 {
		o.BatchSize = 1024
	}
	if o.Workers <= 0 {
		o.Workers = runtime.GOMAXPROCS(0)
	}
	if o.Logger == nil {
		o.Logger = slog.Default()
	}
	return o
}

// job is one (task, decoder) pair with its reserved result slot.
type job struct {
	t       task.Task
	name    string
	factory decoder.Factory
	seed    uint64
	slot    *Stats
}

// Run executes every (task × decoder) pair until its budget trips and
// returns their statistics, ordered by task then by decoder name.
//
// Decoders failing compilation with ErrSolverUnavailable are logged and
// skipped (their Stats slot reports zero shots); any other error aborts the
// run. Cancellation via ctx stops between batches.
// Complexity: O(pairs · budget · decode cost), fanned out over Workers.
func Run(ctx context.Context, tasks []task.Task, decoders map[string]decoder.Factory, opts Options) ([]Stats, error) {
	if len(tasks) == 0 {
		return nil, ErrNoTasks
	}
	if len(decoders) == 0 {
		return nil, ErrNoDecoders
	}
	opts = opts.withDefaults()

	// Deterministic job order: task order × sorted decoder names.
	names := make([]string, 0, len(decoders))
	for name := range decoders {
		names = append(names, name)
	}
	sort.Strings(names)

	results := make([]Stats, 0, len(tasks)*len(names))
	var jobs []job
	for _, t := range tasks {
		for _, name := range names {
			results = append(results, Stats{Decoder: name, Meta: t.Meta})
			jobs = append(jobs, job{
				t:       t,
				name:    name,
				factory: decoders[name],
				seed:    opts.Seed + uint64(len(jobs)),
				slot:    &results[len(results)-1],
			})
		}
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(opts.Workers)
	for _, jb := range jobs {
		jb := jb
		g.Go(func() error { return runJob(ctx, jb, opts) })
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

// runJob drives one pair to its budget.
func runJob(ctx context.Context, jb job, opts Options) error {
	log := opts.Logger.With(
		slog.String("decoder", jb.name),
		slog.Int("d", jb.t.Meta.Distance),
		slog.String("stress", jb.t.Meta.Stress),
	)

	dec, err := jb.factory.CompileForModel(jb.t.Model)
	if err != nil {
		if errors.Is(err, decoder.ErrSolverUnavailable) {
			// Fatal for this decoder only; the run continues without it.
			log.Warn("skipping decoder: backend unavailable", slog.Any("err", err))
			return nil
		}
		return fmt.Errorf("collect: compiling %q: %w", jb.name, err)
	}

	sampler, err := circuit.NewSampler(jb.t.Circuit, circuit.SamplerOptions{Seed: jb.seed})
	if err != nil {
		return fmt.Errorf("collect: sampler for %q: %w", jb.name, err)
	}

	var shots, errCount uint64
	for shots < opts.MaxShots {
		if err := ctx.Err(); err != nil {
			return err
		}
		n := opts.BatchSize
		if remaining := opts.MaxShots - shots; uint64(n) > remaining {
			n = int(remaining)
		}
		events, flips, err := sampler.Sample(n)
		if err != nil {
			return fmt.Errorf("collect: sampling: %w", err)
		}
		packed := make([][]byte, n)
		for i := range events {
			packed[i] = bitpack.Pack(events[i])
		}
		corrections, err := dec.DecodeBatchPacked(packed)
		if err != nil {
			return fmt.Errorf("collect: decoding batch for %q: %w", jb.name, err)
		}
		for i := range corrections {
			// Both sides are packed with zeroed padding, so byte equality
			// is bit equality.
			if !bytes.Equal(corrections[i], bitpack.Pack(flips[i])) {
				errCount++
			}
		}
		shots += uint64(n)
		if opts.MaxErrors > 0 && errCount >= opts.MaxErrors {
			break
		}
	}

	jb.slot.Shots = shots
	jb.slot.Errors = errCount
	jb.slot.MeanLatency = dec.AverageLatency()
	log.Info("pair complete",
		slog.Uint64("shots", shots),
		slog.Uint64("errors", errCount),
		slog.Float64("mean_latency_s", jb.slot.MeanLatency),
	)
	return nil
}
