// Package decoder: the all-zero baseline variant, used to validate the
// pipeline independent of solver correctness.

package decoder

import (
	"time"

	"github.com/qecstress/driftbench/dem"
)

// Baseline asserts no correction, ever. Its logical-error rate therefore
// equals the raw observable-flip rate, a useful pipeline sanity anchor.
type Baseline struct {
	base
	numErrors int
}

// NewBaseline compiles a baseline decoder for the model. It has no external
// dependency and never fails on a valid model.
func NewBaseline(model *dem.ErrorModel) (*Baseline, error) {
	if model == nil {
		return nil, ErrNilModel
	}
	return &Baseline{
		base:      base{numDetectors: model.NumDetectors(), numObservables: model.NumObservables()},
		numErrors: model.NumMechanisms(),
	}, nil
}

// Decode returns the all-zero estimate after validating the syndrome shape.
// The call is timed and logged.
func (b *Baseline) Decode(syndrome []uint8) ([]uint8, error) {
	if err := b.checkSyndrome(syndrome); err != nil {
		return nil, err
	}
	t0 := time.Now()
	estimate := make([]uint8, b.numErrors)
	b.record(time.Since(t0))
	return estimate, nil
}

// LogicalCorrection returns the all-zero correction after validating shape.
func (b *Baseline) LogicalCorrection(syndrome []uint8) ([]uint8, error) {
	if _, err := b.Decode(syndrome); err != nil {
		return nil, err
	}
	return make([]uint8, b.numObservables), nil
}

// DecodeBatchPacked decodes bit-packed shots through the shared batch path.
func (b *Baseline) DecodeBatchPacked(packed [][]byte) ([][]byte, error) {
	return decodeBatchPacked(b, packed)
}
