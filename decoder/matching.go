// Package decoder: the clustering/matching (CM) variant.

package decoder

import (
	"fmt"
	"time"

	"github.com/qecstress/driftbench/dem"
)

// Matching is the clustering/matching decoder: triggered syndrome bits
// become defect nodes handed to an external matching solver, which reports
// the implied observable flips directly.
//
// Defect-parity policy: the defect list is passed as-is; the Matcher
// contract obliges the solver to absorb an odd defect count via a virtual
// boundary node. Observable extraction is the solver's output verbatim.
//
// Both decode forms are exposed: LogicalCorrection returns the solver's
// observable parity; Decode returns the all-zero mechanism estimate, since
// this backend never forms a mechanism-level hypothesis. Callers needing
// mechanism estimates should use the MP variant.
type Matching struct {
	base
	h, l      *dem.BinMatrix
	matcher   Matcher
	numErrors int
}

// NewMatching compiles a clustering/matching decoder for the model.
// A nil or failing factory surfaces as ErrSolverUnavailable at construction.
func NewMatching(model *dem.ErrorModel, newMatcher MatcherFactory) (*Matching, error) {
	if model == nil {
		return nil, ErrNilModel
	}
	if newMatcher == nil {
		return nil, fmt.Errorf("%w: no matching solver factory registered", ErrSolverUnavailable)
	}
	h, l, priors, err := dem.Build(model)
	if err != nil {
		return nil, err
	}
	matcher, err := newMatcher(h, l, priors)
	if err != nil {
		return nil, fmt.Errorf("%w: constructing matching solver: %v", ErrSolverUnavailable, err)
	}
	return &Matching{
		base:      base{numDetectors: model.NumDetectors(), numObservables: model.NumObservables()},
		h:         h,
		l:         l,
		matcher:   matcher,
		numErrors: model.NumMechanisms(),
	}, nil
}

// Decode returns the all-zero mechanism estimate (see the type comment for
// the policy) after validating the syndrome shape. The call is timed and
// logged like any other single-shot decode.
func (m *Matching) Decode(syndrome []uint8) ([]uint8, error) {
	if err := m.checkSyndrome(syndrome); err != nil {
		return nil, err
	}
	t0 := time.Now()
	estimate := make([]uint8, m.numErrors)
	m.record(time.Since(t0))
	return estimate, nil
}

// LogicalCorrection maps triggered syndrome bits to defects, solves, and
// returns the solver's observable flips. This is the variant's native
// single-shot decode path; the call is timed and logged.
// Returns ErrSyndromeLength on shape mismatch and ErrSolverContract when
// the solver's correction has the wrong length.
func (m *Matching) LogicalCorrection(syndrome []uint8) ([]uint8, error) {
	if err := m.checkSyndrome(syndrome); err != nil {
		return nil, err
	}
	defects := make([]int, 0, 16)
	for i, bit := range syndrome {
		if bit != 0 {
			defects = append(defects, i)
		}
	}
	t0 := time.Now()
	correction, err := m.matcher.Match(defects)
	m.record(time.Since(t0))
	if err != nil {
		return nil, fmt.Errorf("decoder: matching solve: %w", err)
	}
	if len(correction) != m.numObservables {
		return nil, fmt.Errorf("%w: correction length %d, want %d", ErrSolverContract, len(correction), m.numObservables)
	}
	return correction, nil
}

// DecodeBatchPacked decodes bit-packed shots through the shared batch path.
func (m *Matching) DecodeBatchPacked(packed [][]byte) ([][]byte, error) {
	return decodeBatchPacked(m, packed)
}
