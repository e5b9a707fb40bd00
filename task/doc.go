// Package task assembles benchmark units: immutable (circuit, error model,
// metadata) triples for the collection driver to consume.
//
// Three campaign shapes are supported:
//
//   - Standard — distances × error rates under uniform noise
//   - Undeniable — per-distance drift+burst stress conditions
//   - Sweep — drift amplitudes at a fixed distance
//
// Metadata carries the grouping keys downstream analysis filters on.
// Stress parameters appear as numeric fields, not only inside the label,
// so grouping works on numeric equality rather than string parsing.
// Assembly is deterministic: identical arguments produce identical
// metadata in identical order.
package task
