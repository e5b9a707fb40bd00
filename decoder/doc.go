// Package decoder provides one decode abstraction over heterogeneous
// backends: message-passing (BP+OSD-style, "MP"), clustering/matching
// ("CM") and an all-zero baseline.
//
// All variants satisfy the Decoder interface:
//
//   - Decode: single-shot syndrome → mechanism-level error estimate
//   - LogicalCorrection: syndrome → observable parity correction
//   - DecodeBatchPacked: bit-packed rows in, bit-packed corrections out
//   - latency accessors: AverageLatency, ResetLatencies
//
// The batching and packing path is written once and shared; variants differ
// only in how a single shot is solved. The actual solver numerics are
// external black boxes injected as narrow interfaces (Solver for MP,
// Matcher for CM); a missing solver fails at construction with
// ErrSolverUnavailable, never at decode time, so a run can drop that one
// decoder and keep the rest.
//
// The CM variant solves directly for observable parity: LogicalCorrection
// returns the matcher's output, while its mechanism-level Decode reports
// the all-zero estimate. Both forms are exposed; see Matching for the
// documented defect-parity policy.
//
// A compiled decoder is bound to one error model and owns a growable,
// unsynchronized latency log. It must not be shared across concurrent
// workers; compile one instance per worker (compilation is cheap next to
// decoding).
package decoder
