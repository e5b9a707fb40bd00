// Package collect is the Monte Carlo collection driver: it runs every
// (task × decoder) pair until a shot or error budget is exhausted and
// reports aggregate statistics.
//
// Each job compiles its own decoder instance (compiled decoders carry an
// unsynchronized latency log and must never be shared across workers),
// samples batches of detection events, bit-packs them, decodes through
// DecodeBatchPacked, and counts a logical error whenever the packed
// correction disagrees with the sampled observable flips on at least one
// bit. Jobs fan out on an errgroup; the pipeline underneath stays
// synchronous.
//
// A decoder whose backend dependency is missing (ErrSolverUnavailable)
// is skipped with a log line; the rest of the run proceeds. Shape errors
// abort the run: they indicate a mis-wired pipeline, not noise.
//
// Campaigns can be described declaratively as a YAML Plan and expanded
// into tasks plus driver options; this keeps configuration explicit
// rather than ambient.
package collect
