// Package collect: declarative YAML benchmark plans.

package collect

import (
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/qecstress/driftbench/task"
)

// Plan errors. Matched via errors.Is.
var (
	// ErrUnknownMode indicates a plan mode outside {standard, stress, sweep}.
	ErrUnknownMode = errors.New("collect: unknown plan mode")
	// ErrBadPlan indicates a structurally invalid plan document.
	ErrBadPlan = errors.New("collect: invalid plan")
)

// Plan modes.
const (
	ModeStandard = "standard"
	ModeStress   = "stress"
	ModeSweep    = "sweep"
)

// Plan is a declarative benchmark campaign. It replaces ambient,
// process-wide configuration: everything a run needs is in the document.
//
// Example:
//
//	mode: stress
//	distances: [5, 7, 9]
//	base_p: 0.003
//	drift_strength: 0.3
//	burst_prob: 0.05
//	max_shots: 100000
//	max_errors: 1000
type Plan struct {
	Mode string `yaml:"mode"`

	// Standard mode.
	Distances  []int     `yaml:"distances,omitempty"`
	ErrorRates []float64 `yaml:"error_rates,omitempty"`

	// Stress mode (also uses Distances).
	BaseP         float64 `yaml:"base_p,omitempty"`
	DriftStrength float64 `yaml:"drift_strength,omitempty"`
	BurstProb     float64 `yaml:"burst_prob,omitempty"`
	Rounds        int     `yaml:"rounds,omitempty"`

	// Sweep mode.
	Distance       int       `yaml:"distance,omitempty"`
	DriftStrengths []float64 `yaml:"drift_strengths,omitempty"`

	// Driver budgets.
	MaxShots  uint64 `yaml:"max_shots,omitempty"`
	MaxErrors uint64 `yaml:"max_errors,omitempty"`
}

// LoadPlan decodes a YAML plan, rejecting unknown fields so typos surface
// as errors instead of silently-ignored configuration.
func LoadPlan(r io.Reader) (*Plan, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	var p Plan
	if err := dec.Decode(&p); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadPlan, err)
	}
	return &p, nil
}

// Tasks expands the plan into its campaign's task list.
// Returns ErrUnknownMode for an unrecognized mode.
func (p *Plan) Tasks() ([]task.Task, error) {
	switch p.Mode {
	case ModeStandard:
		return task.Standard(p.Distances, p.ErrorRates)
	case ModeStress:
		params := task.DefaultStressParams()
		if p.BaseP > 0 {
			params.BaseP = p.BaseP
		}
		if p.DriftStrength > 0 {
			params.DriftStrength = p.DriftStrength
		}
		if p.BurstProb > 0 {
			params.BurstProb = p.BurstProb
		}
		params.Rounds = p.Rounds
		return task.Undeniable(p.Distances, params)
	case ModeSweep:
		return task.Sweep(p.Distance, p.DriftStrengths, p.BaseP)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownMode, p.Mode)
	}
}

// Options projects the plan's budgets onto driver defaults.
func (p *Plan) Options() Options {
	opts := DefaultOptions()
	if p.MaxShots > 0 {
		opts.MaxShots = p.MaxShots
	}
	opts.MaxErrors = p.MaxErrors
	return opts
}
