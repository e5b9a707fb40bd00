// Package noise: stress and standard circuit synthesis.

package noise

import (
	"math"

	"github.com/qecstress/driftbench/circuit"
)

// Stress generates a rotated-surface-code memory circuit with time-varying
// injected noise. baseP is the nominal physical error rate, driftStrength
// the sinusoidal drift amplitude (0.3 = ±30%), burstProb the probability of
// one correlated burst before round 0 (0 disables it).
//
// Returns ErrBadDistance, ErrBadProbability, ErrBadDrift or ErrBadBurst on
// invalid parameters; circuit-level sentinels pass through from generation.
// Complexity: O(d² · rounds).
func Stress(d int, baseP, driftStrength, burstProb float64, opts Options) (*circuit.Circuit, error) {
	if d < 3 || d%2 == 0 {
		return nil, ErrBadDistance
	}
	if baseP < 0 || baseP > 0.5 {
		return nil, ErrBadProbability
	}
	if driftStrength < 0 || driftStrength > 1 {
		return nil, ErrBadDrift
	}
	if burstProb < 0 || burstProb > 1 {
		return nil, ErrBadBurst
	}
	rounds := opts.rounds(d)

	// Noiseless skeleton, flattened so every instruction is addressable.
	base, err := circuit.Generate(circuit.RotatedMemoryZ, d, rounds, circuit.NoiseParams{})
	if err != nil {
		return nil, err
	}
	flat := base.Flatten()

	out := &circuit.Circuit{Kind: flat.Kind, Distance: d, Rounds: rounds}
	if burstProb > 0 {
		out.Instructions = append(out.Instructions, burstInstruction(d, burstProb, opts))
	}

	period := float64(rounds) / 2.0
	round := 0
	for _, in := range flat.Instructions {
		if in.Name == "TICK" {
			round++
			out.Instructions = append(out.Instructions, in)
			continue
		}
		pNow := baseP * (1 + driftStrength*math.Sin(2*math.Pi*float64(round)/period))
		out.Instructions = append(out.Instructions, in)
		switch in.Class() {
		case circuit.ClassReset, circuit.ClassMeasure:
			out.Instructions = append(out.Instructions, noiseOp("X_ERROR", in.Targets, pNow))
		case circuit.ClassGate1:
			out.Instructions = append(out.Instructions, noiseOp("DEPOLARIZE1", in.Targets, pNow))
		case circuit.ClassGate2:
			out.Instructions = append(out.Instructions, noiseOp("DEPOLARIZE2", in.Targets, pNow))
		default:
			// Annotations pass through with no noise appended.
		}
	}
	return out, nil
}

// Standard generates the same memory circuit with uniform circuit-level
// noise at rate p; no surgery is involved.
// Complexity: O(d² · rounds) expanded.
func Standard(d int, p float64, opts Options) (*circuit.Circuit, error) {
	if d < 3 || d%2 == 0 {
		return nil, ErrBadDistance
	}
	if p < 0 || p > 0.5 {
		return nil, ErrBadProbability
	}
	return circuit.Generate(circuit.RotatedMemoryZ, d, opts.rounds(d), circuit.Uniform(p))
}

// noiseOp builds a noise instruction over the same targets as the
// instruction it follows.
func noiseOp(name string, targets []circuit.Target, p float64) circuit.Instruction {
	return circuit.Instruction{Name: name, Targets: targets, Arg: p}
}

// burstInstruction builds the correlated-error event: one joint Z-type
// mechanism over a contiguous window of data qubits, occurring once before
// round 0.
func burstInstruction(d int, burstProb float64, opts Options) circuit.Instruction {
	numData := d * d
	width := opts.BurstWidth
	if width <= 0 {
		width = d
	}
	if width > numData {
		width = numData
	}
	center := opts.BurstCenter
	if center < 0 {
		center = numData / 2
	}
	start := center - width/2
	if start < 0 {
		start = 0
	}
	if start+width > numData {
		start = numData - width
	}
	targets := make([]circuit.Target, 0, width)
	for q := start; q < start+width; q++ {
		targets = append(targets, circuit.ZTarget(q))
	}
	return circuit.Instruction{Name: "CORRELATED_ERROR", Targets: targets, Arg: burstProb}
}
