// Package decoder: state and machinery shared by every backend (the
// latency log, shape checks and the bit-packed batch path).

package decoder

import (
	"fmt"
	"time"

	"github.com/qecstress/driftbench/bitpack"
)

// base carries the per-instance state every compiled decoder owns: model
// dimensions and the append-only latency log. The log is intentionally
// unsynchronized; an instance belongs to exactly one worker.
type base struct {
	numDetectors   int
	numObservables int
	latencies      []float64
}

// NumDetectors returns the compiled model's detector count. Complexity: O(1).
func (b *base) NumDetectors() int { return b.numDetectors }

// NumObservables returns the compiled model's observable count. Complexity: O(1).
func (b *base) NumObservables() int { return b.numObservables }

// AverageLatency returns the arithmetic mean of the latency log in seconds,
// 0.0 when empty. Diagnostic only. Complexity: O(len log).
func (b *base) AverageLatency() float64 {
	if len(b.latencies) == 0 {
		return 0.0
	}
	sum := 0.0
	for _, v := range b.latencies {
		sum += v
	}
	return sum / float64(len(b.latencies))
}

// ResetLatencies clears the latency log. Complexity: O(1).
func (b *base) ResetLatencies() { b.latencies = b.latencies[:0] }

// Latencies returns the raw per-shot latency log in seconds, one entry per
// single-shot decode since the last reset. The slice is read-only.
func (b *base) Latencies() []float64 { return b.latencies }

// record appends one elapsed wall time to the log.
func (b *base) record(elapsed time.Duration) {
	b.latencies = append(b.latencies, elapsed.Seconds())
}

// checkSyndrome enforces the single-shot shape contract.
func (b *base) checkSyndrome(syndrome []uint8) error {
	if len(syndrome) != b.numDetectors {
		return fmt.Errorf("%w: got %d detectors, want %d", ErrSyndromeLength, len(syndrome), b.numDetectors)
	}
	return nil
}

// shotDecoder is what the shared batch path needs from a variant.
type shotDecoder interface {
	LogicalCorrection(syndrome []uint8) ([]uint8, error)
	NumDetectors() int
	NumObservables() int
}

// decodeBatchPacked is the one batching/packing implementation shared by
// all variants. Rows decode independently, in order; a width mismatch on
// any row fails the whole batch (it signals a mis-wired pipeline, not shot
// noise). Output rows hold ceil(NumObservables/8) bytes with zeroed
// padding bits.
// Complexity: O(shots · decode cost).
func decodeBatchPacked(d shotDecoder, packed [][]byte) ([][]byte, error) {
	rowIn := bitpack.RowBytes(d.NumDetectors())
	out := make([][]byte, len(packed))
	for i, row := range packed {
		if len(row) != rowIn {
			return nil, fmt.Errorf("%w: row %d holds %d bytes, want %d", ErrBatchRowWidth, i, len(row), rowIn)
		}
		syndrome, err := bitpack.Unpack(row, d.NumDetectors())
		if err != nil {
			return nil, fmt.Errorf("decoder: unpacking row %d: %w", i, err)
		}
		correction, err := d.LogicalCorrection(syndrome)
		if err != nil {
			return nil, fmt.Errorf("decoder: shot %d: %w", i, err)
		}
		out[i] = bitpack.Pack(correction)
	}
	return out, nil
}
