// Package noise: options and sentinel errors.

package noise

import "errors"

// Sentinel errors for noise synthesis. Matched via errors.Is.
var (
	// ErrBadDistance indicates a code distance that is not an odd integer >= 3.
	ErrBadDistance = errors.New("noise: distance must be an odd integer >= 3")
	// ErrBadProbability indicates a base error rate outside [0, 0.5].
	ErrBadProbability = errors.New("noise: base error rate must be in [0, 0.5]")
	// ErrBadDrift indicates a drift amplitude outside [0, 1].
	ErrBadDrift = errors.New("noise: drift strength must be in [0, 1]")
	// ErrBadBurst indicates a burst probability outside [0, 1].
	ErrBadBurst = errors.New("noise: burst probability must be in [0, 1]")
)

// RoundsFactor is the default rounds-per-distance multiplier: an
// unspecified round count becomes 3·d.
const RoundsFactor = 3

// Options tunes synthesis beyond the headline stress parameters.
type Options struct {
	// Rounds is the structural round count; 0 means the 3·d default.
	Rounds int

	// BurstCenter is the center of the burst window in data-qubit index
	// space; negative means the middle of the data range. The exact
	// placement approximates a physical correlated-error footprint and is
	// intentionally tunable.
	BurstCenter int

	// BurstWidth is the burst window length in data qubits; 0 means d.
	BurstWidth int
}

// DefaultOptions returns Options selecting every default: 3·d rounds, a
// d-wide burst window centered mid-lattice.
func DefaultOptions() Options {
	return Options{Rounds: 0, BurstCenter: -1, BurstWidth: 0}
}

// rounds resolves the effective round count for distance d.
func (o Options) rounds(d int) int {
	if o.Rounds > 0 {
		return o.Rounds
	}
	return RoundsFactor * d
}
