// Package circuit: model-based detection-event sampling.

package circuit

import (
	"math/rand/v2"

	"github.com/qecstress/driftbench/dem"
)

// SamplerOptions configures sampler determinism.
type SamplerOptions struct {
	// Seed drives the PCG stream. Equal seeds over equal circuits produce
	// identical shot sequences.
	Seed uint64
}

// DefaultSamplerOptions returns a fixed-seed configuration; pass your own
// seed for independent streams.
func DefaultSamplerOptions() SamplerOptions {
	return SamplerOptions{Seed: 0}
}

// Sampler draws detection events and observable flips by Bernoulli-sampling
// the circuit's error mechanisms and folding their footprints mod 2. One
// sampler owns one RNG stream; it is not safe for concurrent use.
type Sampler struct {
	mechs  []dem.Mechanism
	numDet int
	numObs int
	rng    *rand.Rand
}

// NewSampler derives the circuit's (decomposed) error model and binds a
// seeded RNG stream to it. Returns the circuit-validation sentinels from
// ErrorModel on bad input.
// Complexity: O(model size) setup.
func NewSampler(c *Circuit, opts SamplerOptions) (*Sampler, error) {
	model, err := c.ErrorModel(true)
	if err != nil {
		return nil, err
	}
	return &Sampler{
		mechs:  model.Flattened(),
		numDet: model.NumDetectors(),
		numObs: model.NumObservables(),
		rng:    rand.New(rand.NewPCG(opts.Seed, opts.Seed^0x9e3779b97f4a7c15)),
	}, nil
}

// Sample draws the given number of independent shots. It returns detection
// events of shape [shots][num_detectors] and observable flips of shape
// [shots][num_observables], both 0/1 valued. Returns ErrBadShots for a
// negative count.
// Complexity: O(shots · num mechanisms + total footprint hits).
func (s *Sampler) Sample(shots int) (events, flips [][]uint8, err error) {
	if shots < 0 {
		return nil, nil, ErrBadShots
	}
	events = make([][]uint8, shots)
	flips = make([][]uint8, shots)
	for i := 0; i < shots; i++ {
		ev := make([]uint8, s.numDet)
		fl := make([]uint8, s.numObs)
		for _, m := range s.mechs {
			if s.rng.Float64() >= m.P {
				continue
			}
			for _, d := range m.Detectors {
				ev[d] ^= 1
			}
			for _, o := range m.Observables {
				fl[o] ^= 1
			}
		}
		events[i] = ev
		flips[i] = fl
	}
	return events, flips, nil
}
