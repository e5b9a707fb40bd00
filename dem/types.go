// SPDX-License-Identifier: MIT

// Package dem: domain types. Mechanisms and models only; matrix machinery
// lives in matrix.go and the LLR transform in llr.go, per the package-layout
// conventions used across this module.

package dem

import "math"

// Mechanism is one independent error event of a detector error model.
// It fires with probability P and flips every listed detector and
// observable. Index order inside the slices is not significant; the
// mechanism's position in the model is (it fixes the matrix column).
type Mechanism struct {
	// P is the firing probability, in [0,1]. Zero and one are legitimate
	// (disabled or deterministic channels) and are handled by clipping at
	// LLR-conversion time rather than rejected here.
	P float64

	// Detectors lists the detector indices this mechanism flips.
	Detectors []int

	// Observables lists the logical observable indices this mechanism flips.
	Observables []int
}

// ErrorModel is an immutable, flattened detector error model: a sequence of
// mechanisms in encounter order plus authoritative dimensions. Construct via
// NewErrorModel; the constructor deep-copies its inputs so later mutation of
// caller slices cannot corrupt the model.
type ErrorModel struct {
	mechs  []Mechanism
	numDet int
	numObs int
}

// NewErrorModel validates and deep-copies mechanisms into a model with the
// given dimensions. Returns ErrBadDimensions for negative counts,
// ErrTargetRange when a mechanism references an index outside [0, numDet)
// or [0, numObs), and ErrBadProbability for P outside [0,1] or non-finite.
// A nil or empty mechanism slice yields a valid zero-mechanism model.
// Complexity: O(total incidences).
func NewErrorModel(numDetectors, numObservables int, mechs []Mechanism) (*ErrorModel, error) {
	if numDetectors < 0 || numObservables < 0 {
		return nil, ErrBadDimensions
	}
	cp := make([]Mechanism, len(mechs))
	for i, m := range mechs {
		if math.IsNaN(m.P) || m.P < 0 || m.P > 1 {
			return nil, ErrBadProbability
		}
		for _, d := range m.Detectors {
			if d < 0 || d >= numDetectors {
				return nil, ErrTargetRange
			}
		}
		for _, o := range m.Observables {
			if o < 0 || o >= numObservables {
				return nil, ErrTargetRange
			}
		}
		cp[i] = Mechanism{
			P:           m.P,
			Detectors:   append([]int(nil), m.Detectors...),
			Observables: append([]int(nil), m.Observables...),
		}
	}
	return &ErrorModel{mechs: cp, numDet: numDetectors, numObs: numObservables}, nil
}

// NumDetectors returns the model's detector count. Complexity: O(1).
func (m *ErrorModel) NumDetectors() int { return m.numDet }

// NumObservables returns the model's observable count. Complexity: O(1).
func (m *ErrorModel) NumObservables() int { return m.numObs }

// NumMechanisms returns the number of error mechanisms. Complexity: O(1).
func (m *ErrorModel) NumMechanisms() int { return len(m.mechs) }

// Flattened returns the mechanisms in encounter order. The outer slice is a
// copy; the per-mechanism target slices are shared and must be treated as
// read-only. Complexity: O(num mechanisms).
func (m *ErrorModel) Flattened() []Mechanism {
	return append([]Mechanism(nil), m.mechs...)
}
