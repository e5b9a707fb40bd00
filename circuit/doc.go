// Package circuit provides the circuit-generation and detector-sampling
// facility the decoding pipeline builds on: stim-like instruction streams
// for a rotated-surface-code memory experiment, flattening of repeated
// structure, extraction of a detector error model, and model-based sampling
// of detection events and observable flips.
//
// The package deliberately stops short of stabilizer simulation. Detector
// and observable counts are closed-form functions of (kind, distance,
// rounds), and each noise instruction maps to a deterministic space-time
// detector footprint (a phenomenological approximation of error
// propagation). Two circuits that share a skeleton but differ in noise
// probabilities therefore always share detector/observable topology, the
// property the noise synthesizer's surgery relies on.
//
// A circuit is an ordered instruction stream with an optional REPEAT block
// per round. Flatten expands repeats so every instruction is individually
// addressable, which position-keyed noise injection requires.
//
// Instruction classes, keyed by name:
//
//	reset/measure — R, M, MR (bit-flip noise attaches to their targets)
//	1-qubit gate  — H, S, X, Y, Z (single-qubit depolarizing noise)
//	2-qubit gate  — CX, CZ, SWAP (two-qubit depolarizing noise)
//	noise         — X_ERROR, Z_ERROR, DEPOLARIZE1/2, CORRELATED_ERROR
//	annotation    — TICK (round boundary), DETECTOR, OBSERVABLE_INCLUDE
//
// DETECTOR annotations inside a round body carry slice-local indices; the
// absolute detector index is (round slice)·(detectors per slice) + local.
package circuit
