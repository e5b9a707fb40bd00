// SPDX-License-Identifier: MIT

// Package dem models detector error models and derives the linear-algebra
// objects a message-passing decoder consumes.
//
// A detector error model is a flat, encounter-ordered list of independent
// error mechanisms. Mechanism i fires with probability P and flips a fixed
// set of detectors and logical observables; i is its column identity in
// every derived matrix and must never be permuted.
//
// Derived objects:
//
//   - H — parity-check matrix, shape (num_detectors × num_errors),
//     H[r][c]=1 iff mechanism c flips detector r
//   - L — logical matrix, shape (num_observables × num_errors),
//     L[r][c]=1 iff mechanism c flips observable r
//   - priors — per-mechanism probabilities, index-aligned with columns
//
// Both matrices are stored as hand-rolled compressed-sparse-column boolean
// matrices (BinMatrix): each mechanism touches only a handful of detectors,
// so triplet accumulation followed by CSC materialization keeps memory
// proportional to the number of incidences, not rows×cols.
//
// The LLRs transform converts priors to log-likelihood ratios with explicit
// clipping, so zero- and unit-probability channels (legitimate inputs for
// disabled noise) stay finite.
//
// An error model with zero mechanisms is valid and yields well-typed
// zero-column matrices.
package dem
