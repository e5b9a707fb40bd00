// Package driftbench is a benchmarking pipeline for quantum error-correction
// decoders under hostile, time-varying noise.
//
// 🚀 What is driftbench?
//
//	A library that evaluates heterogeneous decoding backends against
//	synthetically generated noisy syndromes:
//		• Error-model linear algebra: sparse parity-check (H) and logical (L)
//		  matrices plus prior probabilities and LLR conversion
//		• Noise synthesis: rotated-surface-code circuits with sinusoidal
//		  drift and correlated burst injection
//		• Decoder abstraction: one interface over message-passing,
//		  matching/clustering and baseline backends, with bit-packed
//		  batch decoding and latency instrumentation
//		• Task assembly: (circuit, error model, metadata) units for
//		  standard, stress and drift-sweep benchmark campaigns
//		• Collection: a budgeted Monte Carlo driver that fans out across
//		  independently compiled decoder instances
//
// ✨ Design principles
//
//   - Determinism first — encounter-ordered matrix columns, seeded
//     samplers, reproducible task metadata
//   - Black-box solvers — BP+OSD and matching numerics live behind narrow
//     injected interfaces; the pipeline never implements them
//   - Explicit configuration — no ambient process-wide state; options are
//     passed, never discovered
//
// Package map:
//
//	dem/     — error mechanisms, H/L/priors construction, LLR transform
//	bitpack/ — little-bit-order packing shared by decoders and the driver
//	circuit/ — instruction streams, generation, DEM extraction, sampling
//	noise/   — drift + burst noise synthesis (stress & standard circuits)
//	decoder/ — the uniform decode abstraction and its three backends
//	task/    — benchmark task assembly (standard, undeniable, sweep)
//	collect/ — budgeted collection driver and YAML benchmark plans
//
// Data flow:
//
//	task → noise → circuit ──► error model ──► decoder (compile)
//	                   │                            ▲
//	                   └── sampler ── syndromes ────┘ (collect)
//
//	go get github.com/qecstress/driftbench
package driftbench
