// Package decoder: the message-passing (MP) variant.

package decoder

import (
	"fmt"
	"time"

	"github.com/qecstress/driftbench/dem"
)

// MP is the message-passing decoder: an external iterative solver
// (belief-propagation with ordered-statistics post-processing, or
// compatible) configured with the model's parity-check matrix and channel
// priors. The pipeline owns H, L and the priors; the solver owns its
// numerics.
type MP struct {
	base
	h, l      *dem.BinMatrix
	priors    []float64
	cfg       MPConfig
	solver    Solver
	numErrors int
}

// NewMP compiles a message-passing decoder for the model. newSolver may be
// nil or fail, which surfaces as ErrSolverUnavailable at construction
// time, never at decode time. Zero-valued cfg fields take the documented
// defaults.
// Complexity: matrix build O(T log T) plus solver construction.
func NewMP(model *dem.ErrorModel, cfg MPConfig, newSolver SolverFactory) (*MP, error) {
	if model == nil {
		return nil, ErrNilModel
	}
	if newSolver == nil {
		return nil, fmt.Errorf("%w: no message-passing solver factory registered", ErrSolverUnavailable)
	}
	h, l, priors, err := dem.Build(model)
	if err != nil {
		return nil, err
	}
	cfg = cfg.withDefaults()
	solver, err := newSolver(h, priors, cfg)
	if err != nil {
		return nil, fmt.Errorf("%w: constructing message-passing solver: %v", ErrSolverUnavailable, err)
	}
	return &MP{
		base:      base{numDetectors: model.NumDetectors(), numObservables: model.NumObservables()},
		h:         h,
		l:         l,
		priors:    priors,
		cfg:       cfg,
		solver:    solver,
		numErrors: model.NumMechanisms(),
	}, nil
}

// Decode solves one syndrome through the external solver and returns the
// mechanism-level estimate. Appends the call's wall time to the latency log.
// Returns ErrSyndromeLength on shape mismatch and ErrSolverContract when
// the solver's estimate has the wrong length.
func (m *MP) Decode(syndrome []uint8) ([]uint8, error) {
	if err := m.checkSyndrome(syndrome); err != nil {
		return nil, err
	}
	t0 := time.Now()
	estimate, err := m.solver.Decode(syndrome)
	m.record(time.Since(t0))
	if err != nil {
		return nil, fmt.Errorf("decoder: message-passing solve: %w", err)
	}
	if len(estimate) != m.numErrors {
		return nil, fmt.Errorf("%w: estimate length %d, want %d", ErrSolverContract, len(estimate), m.numErrors)
	}
	return estimate, nil
}

// LogicalCorrection returns (L · Decode(syndrome)) mod 2.
func (m *MP) LogicalCorrection(syndrome []uint8) ([]uint8, error) {
	estimate, err := m.Decode(syndrome)
	if err != nil {
		return nil, err
	}
	return m.l.MulVecMod2(estimate)
}

// DecodeBatchPacked decodes bit-packed shots through the shared batch path.
func (m *MP) DecodeBatchPacked(packed [][]byte) ([][]byte, error) {
	return decodeBatchPacked(m, packed)
}

// Priors returns the channel priors the solver was configured with,
// column-aligned with the model's mechanisms. Read-only.
func (m *MP) Priors() []float64 { return m.priors }

// Config returns the effective (default-filled) configuration.
func (m *MP) Config() MPConfig { return m.cfg }
