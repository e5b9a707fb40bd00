// SPDX-License-Identifier: MIT
// Package dem: sentinel error set.
// All public operations return these sentinels (possibly wrapped with
// fmt.Errorf("...: %w", ErrX) for context); callers match via errors.Is.
// No operation panics on user-triggered conditions.

package dem

import "errors"

var (
	// ErrNilModel indicates a nil *ErrorModel was passed where a model is
	// required.
	ErrNilModel = errors.New("dem: error model is nil")

	// ErrBadDimensions indicates negative detector or observable counts.
	ErrBadDimensions = errors.New("dem: detector and observable counts must be >= 0")

	// ErrTargetRange indicates a mechanism references a detector or
	// observable index outside the model's declared dimensions.
	ErrTargetRange = errors.New("dem: mechanism target index out of range")

	// ErrBadProbability indicates a mechanism probability outside [0, 1]
	// or a non-finite value.
	ErrBadProbability = errors.New("dem: mechanism probability must be in [0,1]")

	// ErrOutOfRange indicates a matrix index (row or column) outside valid
	// bounds. Public indexers return this, never panic.
	ErrOutOfRange = errors.New("dem: index out of range")

	// ErrDimensionMismatch indicates incompatible operand dimensions, e.g.
	// MulVecMod2 with a vector whose length differs from the column count.
	ErrDimensionMismatch = errors.New("dem: dimension mismatch")

	// ErrBadClip indicates an LLR clipping bound outside the open interval
	// (0, 0.5).
	ErrBadClip = errors.New("dem: clip bound must be in (0, 0.5)")
)
