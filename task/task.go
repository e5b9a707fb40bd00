// Package task: task types and the three campaign generators.

package task

import (
	"errors"
	"fmt"

	"github.com/qecstress/driftbench/circuit"
	"github.com/qecstress/driftbench/dem"
	"github.com/qecstress/driftbench/noise"
)

// ErrNoConditions indicates a generator was given an empty distance or
// condition list after defaulting.
var ErrNoConditions = errors.New("task: no distances or conditions to assemble")

// Metadata describes one task for downstream grouping and reporting.
// Stress-condition parameters are numeric fields; Stress is the
// human-readable label.
type Metadata struct {
	// Distance is the code distance d.
	Distance int `json:"d" yaml:"d"`
	// P is the nominal physical error rate.
	P float64 `json:"p" yaml:"p"`
	// Rounds is the structural round count of the task's circuit.
	Rounds int `json:"rounds" yaml:"rounds"`
	// Stress labels the condition: "None", "Drift+Burst", "Drift=0.3", ...
	Stress string `json:"stress" yaml:"stress"`
	// DriftStrength is the sinusoidal drift amplitude (0 when absent).
	DriftStrength float64 `json:"drift_strength,omitempty" yaml:"drift_strength,omitempty"`
	// BurstProb is the correlated-burst probability (0 when absent).
	BurstProb float64 `json:"burst_prob,omitempty" yaml:"burst_prob,omitempty"`
}

// Task is an immutable unit of work: a circuit, its derived error model and
// descriptive metadata. Consumers read; they never mutate.
type Task struct {
	Circuit *circuit.Circuit
	Model   *dem.ErrorModel
	Meta    Metadata
}

// Default campaign parameters.
var (
	// DefaultDistances are the standard-campaign code distances.
	DefaultDistances = []int{3, 5, 7}
	// DefaultErrorRates are the standard-campaign physical error rates.
	DefaultErrorRates = []float64{0.001, 0.003, 0.005}
	// DefaultStressDistances are the stress-campaign code distances.
	DefaultStressDistances = []int{5, 7, 9}
	// DefaultSweepDrifts are the sweep-campaign drift amplitudes.
	DefaultSweepDrifts = []float64{0.0, 0.1, 0.2, 0.3, 0.4}
)

// StressParams bundles the undeniable-campaign noise condition.
type StressParams struct {
	BaseP         float64
	DriftStrength float64
	BurstProb     float64
	// Rounds overrides the 3·d default when positive.
	Rounds int
}

// DefaultStressParams returns the default stress condition: 0.3% base
// rate, ±30% drift, 5% burst.
func DefaultStressParams() StressParams {
	return StressParams{BaseP: 0.003, DriftStrength: 0.3, BurstProb: 0.05}
}

// Standard assembles one task per (distance × error rate) pair under
// uniform noise, in the given order. Nil slices take the defaults.
// Complexity: O(|d|·|p|·circuit size).
func Standard(distances []int, errorRates []float64) ([]Task, error) {
	if distances == nil {
		distances = DefaultDistances
	}
	if errorRates == nil {
		errorRates = DefaultErrorRates
	}
	if len(distances) == 0 || len(errorRates) == 0 {
		return nil, ErrNoConditions
	}
	tasks := make([]Task, 0, len(distances)*len(errorRates))
	for _, d := range distances {
		for _, p := range errorRates {
			c, err := noise.Standard(d, p, noise.DefaultOptions())
			if err != nil {
				return nil, fmt.Errorf("task: standard d=%d p=%g: %w", d, p, err)
			}
			t, err := build(c, Metadata{Distance: d, P: p, Rounds: c.Rounds, Stress: "None"})
			if err != nil {
				return nil, err
			}
			tasks = append(tasks, t)
		}
	}
	return tasks, nil
}

// Undeniable assembles the drift+burst stress campaign: one task per
// distance under params. A nil distance slice takes the stress defaults.
// Complexity: O(|d|·circuit size).
func Undeniable(distances []int, params StressParams) ([]Task, error) {
	if distances == nil {
		distances = DefaultStressDistances
	}
	if len(distances) == 0 {
		return nil, ErrNoConditions
	}
	opts := noise.DefaultOptions()
	opts.Rounds = params.Rounds
	tasks := make([]Task, 0, len(distances))
	for _, d := range distances {
		c, err := noise.Stress(d, params.BaseP, params.DriftStrength, params.BurstProb, opts)
		if err != nil {
			return nil, fmt.Errorf("task: stress d=%d: %w", d, err)
		}
		t, err := build(c, Metadata{
			Distance:      d,
			P:             params.BaseP,
			Rounds:        c.Rounds,
			Stress:        "Drift+Burst",
			DriftStrength: params.DriftStrength,
			BurstProb:     params.BurstProb,
		})
		if err != nil {
			return nil, err
		}
		tasks = append(tasks, t)
	}
	return tasks, nil
}

// Sweep assembles the drift-amplitude sweep at fixed distance d: one task
// per amplitude, in place, burst disabled. A nil amplitude slice takes the
// sweep defaults.
// Complexity: O(|drifts|·circuit size).
func Sweep(d int, driftStrengths []float64, baseP float64) ([]Task, error) {
	if driftStrengths == nil {
		driftStrengths = DefaultSweepDrifts
	}
	if len(driftStrengths) == 0 {
		return nil, ErrNoConditions
	}
	tasks := make([]Task, 0, len(driftStrengths))
	for _, drift := range driftStrengths {
		c, err := noise.Stress(d, baseP, drift, 0, noise.DefaultOptions())
		if err != nil {
			return nil, fmt.Errorf("task: sweep d=%d drift=%g: %w", d, drift, err)
		}
		t, err := build(c, Metadata{
			Distance:      d,
			P:             baseP,
			Rounds:        c.Rounds,
			Stress:        fmt.Sprintf("Drift=%g", drift),
			DriftStrength: drift,
		})
		if err != nil {
			return nil, err
		}
		tasks = append(tasks, t)
	}
	return tasks, nil
}

// build derives the task's error model once, at assembly time, so every
// consumer (decoder compilation, sampling) shares one authoritative model.
func build(c *circuit.Circuit, meta Metadata) (Task, error) {
	model, err := c.ErrorModel(true)
	if err != nil {
		return Task{}, fmt.Errorf("task: deriving error model: %w", err)
	}
	return Task{Circuit: c, Model: model, Meta: meta}, nil
}
