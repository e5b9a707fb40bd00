// Package circuit: instruction-stream domain types.

package circuit

// TargetKind tags the interpretation of a Target's index.
type TargetKind uint8

const (
	// TargetQubit addresses a qubit by absolute index.
	TargetQubit TargetKind = iota
	// TargetDetector addresses a detector. Inside a round body the index is
	// slice-local; in the epilogue it is local to the final slice.
	TargetDetector
	// TargetObservable addresses a logical observable by index.
	TargetObservable
	// TargetPauliZ addresses a qubit with an explicit Pauli-Z flip, used by
	// CORRELATED_ERROR burst mechanisms.
	TargetPauliZ
)

// Target is one operand of an instruction.
type Target struct {
	Kind  TargetKind
	Index int
}

// Qubit builds a plain qubit target.
func Qubit(i int) Target { return Target{Kind: TargetQubit, Index: i} }

// Detector builds a (slice-local) detector target.
func Detector(i int) Target { return Target{Kind: TargetDetector, Index: i} }

// Observable builds a logical-observable target.
func Observable(i int) Target { return Target{Kind: TargetObservable, Index: i} }

// ZTarget builds a Pauli-Z qubit target for correlated error mechanisms.
func ZTarget(q int) Target { return Target{Kind: TargetPauliZ, Index: q} }

// IsQubit reports whether the target addresses a qubit (plain or Pauli-Z).
func (t Target) IsQubit() bool { return t.Kind == TargetQubit || t.Kind == TargetPauliZ }

// Instruction is one concrete operation of a circuit. For Name == "REPEAT",
// Count and Body describe the repeated block and the other fields are unused.
type Instruction struct {
	Name    string
	Targets []Target
	// Arg carries the probability argument of noise-bearing instructions.
	Arg float64

	// Count and Body are set only for REPEAT blocks.
	Count int
	Body  []Instruction
}

// Class partitions instructions by the noise treatment they receive.
type Class uint8

const (
	// ClassReset covers reset-type instructions (R).
	ClassReset Class = iota
	// ClassMeasure covers measurement-type instructions (M, MR).
	ClassMeasure
	// ClassGate1 covers single-qubit Clifford gates.
	ClassGate1
	// ClassGate2 covers two-qubit Clifford gates.
	ClassGate2
	// ClassNoise covers probabilistic error instructions.
	ClassNoise
	// ClassAnnotation covers markers that never receive noise
	// (TICK, DETECTOR, OBSERVABLE_INCLUDE).
	ClassAnnotation
	// ClassRepeat marks a REPEAT block.
	ClassRepeat
)

// Class returns the instruction's class, keyed by name. Unknown names fall
// into ClassAnnotation so they pass through noise injection unchanged.
// Complexity: O(1).
func (in Instruction) Class() Class {
	switch in.Name {
	case "R":
		return ClassReset
	case "M", "MR":
		return ClassMeasure
	case "H", "S", "X", "Y", "Z":
		return ClassGate1
	case "CX", "CZ", "SWAP":
		return ClassGate2
	case "X_ERROR", "Z_ERROR", "DEPOLARIZE1", "DEPOLARIZE2", "CORRELATED_ERROR":
		return ClassNoise
	case "REPEAT":
		return ClassRepeat
	default:
		return ClassAnnotation
	}
}

// NoiseParams configures uniform circuit-level noise at generation time.
// All probabilities must be in [0,1]; zero disables the channel.
type NoiseParams struct {
	// AfterCliffordDepolarization follows every Clifford gate
	// (DEPOLARIZE1 after 1-qubit gates, DEPOLARIZE2 after 2-qubit gates).
	AfterCliffordDepolarization float64
	// BeforeRoundDataDepolarization hits every data qubit at the start of
	// each round.
	BeforeRoundDataDepolarization float64
	// BeforeMeasureFlipProbability bit-flips measurement targets just
	// before readout.
	BeforeMeasureFlipProbability float64
	// AfterResetFlipProbability bit-flips reset targets just after reset.
	AfterResetFlipProbability float64
}

// Uniform returns NoiseParams with every channel set to p.
func Uniform(p float64) NoiseParams {
	return NoiseParams{
		AfterCliffordDepolarization:   p,
		BeforeRoundDataDepolarization: p,
		BeforeMeasureFlipProbability:  p,
		AfterResetFlipProbability:     p,
	}
}

// validate reports the first out-of-range probability.
func (np NoiseParams) validate() error {
	for _, p := range []float64{
		np.AfterCliffordDepolarization,
		np.BeforeRoundDataDepolarization,
		np.BeforeMeasureFlipProbability,
		np.AfterResetFlipProbability,
	} {
		if p < 0 || p > 1 {
			return ErrBadProbability
		}
	}
	return nil
}
