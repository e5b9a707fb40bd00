// Package circuit: circuit structure, generation and flattening.

package circuit

// RotatedMemoryZ is the supported circuit kind: a rotated surface code
// memory experiment in the Z basis.
const RotatedMemoryZ = "surface_code:rotated_memory_z"

// Circuit is an ordered instruction stream plus the lattice header the
// stream was generated for. Circuits are treated as immutable after
// construction; transformations build new circuits.
type Circuit struct {
	Kind         string
	Distance     int
	Rounds       int
	Instructions []Instruction
}

// NumDataQubits returns the number of data qubits, d². Complexity: O(1).
func (c *Circuit) NumDataQubits() int { return c.Distance * c.Distance }

// NumMeasureQubits returns the number of syndrome-measurement qubits, d²-1.
// Complexity: O(1).
func (c *Circuit) NumMeasureQubits() int { return c.Distance*c.Distance - 1 }

// DetectorsPerSlice returns the detector count of one round slice, (d²-1)/2.
// Complexity: O(1).
func (c *Circuit) DetectorsPerSlice() int { return (c.Distance*c.Distance - 1) / 2 }

// NumDetectors returns the total detector count, (rounds+1) slices of
// DetectorsPerSlice. Complexity: O(1).
func (c *Circuit) NumDetectors() int { return (c.Rounds + 1) * c.DetectorsPerSlice() }

// NumObservables returns the logical observable count (one for a memory
// experiment). Complexity: O(1).
func (c *Circuit) NumObservables() int { return 1 }

// Flatten expands every REPEAT block so each instruction is a concrete,
// individually addressable operation. Position-keyed noise injection
// requires this form. The receiver is not modified.
// Complexity: O(total expanded instructions).
func (c *Circuit) Flatten() *Circuit {
	out := &Circuit{Kind: c.Kind, Distance: c.Distance, Rounds: c.Rounds}
	out.Instructions = appendFlattened(out.Instructions, c.Instructions)
	return out
}

func appendFlattened(dst, src []Instruction) []Instruction {
	for _, in := range src {
		if in.Class() == ClassRepeat {
			for i := 0; i < in.Count; i++ {
				dst = appendFlattened(dst, in.Body)
			}
			continue
		}
		dst = append(dst, in)
	}
	return dst
}

// Generate builds a rotated-surface-code-like memory circuit at the given
// distance over the given number of structural rounds, with uniform noise
// per np (all channels zero yields a noiseless skeleton).
//
// The emitted stream is: global reset, an explicit first round, a REPEAT
// block for the remaining rounds, then data readout with the final detector
// slice and the observable annotation. One TICK terminates each round body,
// so a round counter driven by TICKs matches structural rounds exactly.
//
// Returns ErrUnknownKind, ErrBadDistance, ErrBadRounds or ErrBadProbability
// on invalid parameters.
// Complexity: O(d² · rounds) expanded instruction count, O(d²) stored.
func Generate(kind string, distance, rounds int, np NoiseParams) (*Circuit, error) {
	if kind != RotatedMemoryZ {
		return nil, ErrUnknownKind
	}
	if distance < 3 || distance%2 == 0 {
		return nil, ErrBadDistance
	}
	if rounds < 1 {
		return nil, ErrBadRounds
	}
	if err := np.validate(); err != nil {
		return nil, err
	}

	c := &Circuit{Kind: kind, Distance: distance, Rounds: rounds}
	data := qubitRange(0, distance*distance)
	measure := qubitRange(distance*distance, 2*distance*distance-1)

	// Prologue: reset everything.
	all := append(append([]Target(nil), data...), measure...)
	c.emit("R", all, 0)
	c.emitNoise("X_ERROR", all, np.AfterResetFlipProbability)

	body := c.roundBody(data, measure, np)
	c.Instructions = append(c.Instructions, body...)
	if rounds > 1 {
		c.Instructions = append(c.Instructions, Instruction{
			Name:  "REPEAT",
			Count: rounds - 1,
			Body:  body,
		})
	}

	// Epilogue: data readout, final detector slice, observable.
	c.emitNoise("X_ERROR", data, np.BeforeMeasureFlipProbability)
	c.emit("M", data, 0)
	for i := 0; i < c.DetectorsPerSlice(); i++ {
		c.emit("DETECTOR", []Target{Detector(i)}, 0)
	}
	c.emit("OBSERVABLE_INCLUDE", []Target{Observable(0)}, 0)

	return c, nil
}

// roundBody builds one structural round: optional data depolarization,
// the H/CX/H stabilizer-extraction pattern, measure-qubit readout+reset,
// a slice of DETECTOR annotations and the terminating TICK. DETECTOR
// targets are slice-local, which keeps the body identical across rounds
// and therefore REPEAT-able.
func (c *Circuit) roundBody(data, measure []Target, np NoiseParams) []Instruction {
	var body []Instruction
	emit := func(name string, targets []Target, arg float64) {
		body = append(body, Instruction{Name: name, Targets: targets, Arg: arg})
	}
	noise := func(name string, targets []Target, p float64) {
		if p > 0 {
			emit(name, targets, p)
		}
	}

	xHalf := measure[:len(measure)/2]

	noise("DEPOLARIZE1", data, np.BeforeRoundDataDepolarization)

	emit("H", xHalf, 0)
	noise("DEPOLARIZE1", xHalf, np.AfterCliffordDepolarization)

	for layer := 0; layer < 2; layer++ {
		pairs := c.cxLayer(layer)
		emit("CX", pairs, 0)
		noise("DEPOLARIZE2", pairs, np.AfterCliffordDepolarization)
	}

	emit("H", xHalf, 0)
	noise("DEPOLARIZE1", xHalf, np.AfterCliffordDepolarization)

	noise("X_ERROR", measure, np.BeforeMeasureFlipProbability)
	emit("MR", measure, 0)
	noise("X_ERROR", measure, np.AfterResetFlipProbability)

	for i := 0; i < c.DetectorsPerSlice(); i++ {
		emit("DETECTOR", []Target{Detector(i)}, 0)
	}
	emit("TICK", nil, 0)
	return body
}

// cxLayer returns flattened (measure, data) CX pairs for one entangling
// layer. The pairing is a fixed lattice walk: measure qubit k couples to
// data qubit k in layer 0 and to data qubit (k+d) mod d² in layer 1.
func (c *Circuit) cxLayer(layer int) []Target {
	d2 := c.NumDataQubits()
	pairs := make([]Target, 0, 2*c.NumMeasureQubits())
	for k := 0; k < c.NumMeasureQubits(); k++ {
		partner := k
		if layer == 1 {
			partner = (k + c.Distance) % d2
		}
		pairs = append(pairs, Qubit(d2+k), Qubit(partner))
	}
	return pairs
}

func (c *Circuit) emit(name string, targets []Target, arg float64) {
	c.Instructions = append(c.Instructions, Instruction{Name: name, Targets: targets, Arg: arg})
}

func (c *Circuit) emitNoise(name string, targets []Target, p float64) {
	if p > 0 {
		c.emit(name, targets, p)
	}
}

func qubitRange(lo, hi int) []Target {
	out := make([]Target, 0, hi-lo)
	for q := lo; q < hi; q++ {
		out = append(out, Qubit(q))
	}
	return out
}
