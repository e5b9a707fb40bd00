// Package decoder: sentinel error set. Shape errors and configuration
// errors are deliberately distinct: the former indicate a mis-wired
// pipeline, the latter a missing optional backend.

package decoder

import "errors"

var (
	// ErrSyndromeLength indicates a syndrome whose length disagrees with
	// the compiled model's detector count. Never silently truncated or
	// padded: that would corrupt correctness statistics.
	ErrSyndromeLength = errors.New("decoder: syndrome length mismatch")

	// ErrBatchRowWidth indicates a bit-packed batch row of the wrong byte
	// width. Treated as a whole-batch failure.
	ErrBatchRowWidth = errors.New("decoder: batch row width mismatch")

	// ErrSolverUnavailable indicates the external solver backing a variant
	// is missing or failed to construct. Surfaced at compile time only;
	// fatal for that decoder, not for the run.
	ErrSolverUnavailable = errors.New("decoder: solver dependency unavailable")

	// ErrSolverContract indicates the external solver returned an estimate
	// or correction of the wrong length, violating its interface contract.
	ErrSolverContract = errors.New("decoder: solver output violates contract")

	// ErrNilModel indicates compilation was attempted against a nil model.
	ErrNilModel = errors.New("decoder: error model is nil")
)
