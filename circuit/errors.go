// Package circuit: sentinel error set. Matched via errors.Is; wrapped with
// context at boundaries when useful.

package circuit

import "errors"

var (
	// ErrUnknownKind indicates an unrecognized circuit kind string.
	ErrUnknownKind = errors.New("circuit: unknown circuit kind")

	// ErrBadDistance indicates a code distance that is not an odd integer >= 3.
	ErrBadDistance = errors.New("circuit: distance must be an odd integer >= 3")

	// ErrBadRounds indicates a non-positive round count.
	ErrBadRounds = errors.New("circuit: rounds must be >= 1")

	// ErrBadProbability indicates a noise parameter outside [0, 1].
	ErrBadProbability = errors.New("circuit: noise probability must be in [0,1]")

	// ErrNilCircuit indicates a nil *Circuit receiver or argument.
	ErrNilCircuit = errors.New("circuit: circuit is nil")

	// ErrBadShots indicates a negative shot count passed to a sampler.
	ErrBadShots = errors.New("circuit: shots must be >= 0")
)
