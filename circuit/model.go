// Package circuit: detector-error-model extraction.

package circuit

import (
	"sort"

	"github.com/qecstress/driftbench/dem"
)

// ErrorModel derives a detector error model from the circuit's noise
// instructions.
//
// Dimensions come from the circuit header alone (NumDetectors,
// NumObservables), so probability-only surgery never changes topology.
// Each noise instruction at round r on qubit q contributes a deterministic
// space-time footprint: the stabilizer column q mod (detectors per slice)
// in slice min(r, rounds), plus the same column one slice later when one
// exists. A mechanism flips the logical observable when it hits the logical
// Z string (data qubits q with q mod d == 0).
//
// decompose=true splits multi-qubit noise (DEPOLARIZE2 and friends) into
// one mechanism per qubit target, mirroring graph-like DEM decomposition;
// decompose=false keeps one joint mechanism whose footprint is the XOR of
// the per-qubit footprints. CORRELATED_ERROR is always kept joint: it
// models a single burst event.
//
// Mechanisms appear in instruction encounter order (and target order within
// a decomposed instruction), which fixes their matrix column identity.
// Zero-probability noise contributes nothing; a noiseless circuit yields a
// valid zero-mechanism model.
//
// Complexity: O(expanded instructions + total footprint size).
func (c *Circuit) ErrorModel(decompose bool) (*dem.ErrorModel, error) {
	if c == nil {
		return nil, ErrNilCircuit
	}
	if c.Kind != RotatedMemoryZ {
		return nil, ErrUnknownKind
	}

	flat := c.Flatten()
	var mechs []dem.Mechanism
	round := 0
	for _, in := range flat.Instructions {
		if in.Name == "TICK" {
			round++
			continue
		}
		if in.Class() != ClassNoise || in.Arg <= 0 {
			continue
		}
		p := in.Arg
		if p > 1 {
			p = 1
		}
		if in.Name != "CORRELATED_ERROR" && decompose {
			for _, t := range in.Targets {
				if !t.IsQubit() {
					continue
				}
				mechs = append(mechs, c.mechanismFor([]int{t.Index}, round, p))
			}
			continue
		}
		qubits := make([]int, 0, len(in.Targets))
		for _, t := range in.Targets {
			if t.IsQubit() {
				qubits = append(qubits, t.Index)
			}
		}
		mechs = append(mechs, c.mechanismFor(qubits, round, p))
	}
	return dem.NewErrorModel(c.NumDetectors(), c.NumObservables(), mechs)
}

// mechanismFor folds the space-time footprints of qubits at the given round
// into one mechanism, with XOR semantics: a detector hit an even number of
// times cancels out. Detector lists are sorted for determinism.
func (c *Circuit) mechanismFor(qubits []int, round int, p float64) dem.Mechanism {
	detToggle := make(map[int]bool)
	obsParity := false
	for _, q := range qubits {
		for _, d := range c.footprint(q, round) {
			detToggle[d] = !detToggle[d]
		}
		if c.onLogicalString(q) {
			obsParity = !obsParity
		}
	}
	mech := dem.Mechanism{P: p}
	for d, on := range detToggle {
		if on {
			mech.Detectors = append(mech.Detectors, d)
		}
	}
	sort.Ints(mech.Detectors)
	if obsParity {
		mech.Observables = []int{0}
	}
	return mech
}

// footprint maps (qubit, round) to the detectors a flip there triggers.
func (c *Circuit) footprint(q, round int) []int {
	per := c.DetectorsPerSlice()
	slice := round
	if slice > c.Rounds {
		slice = c.Rounds
	}
	stab := q % per
	a := slice*per + stab
	if slice < c.Rounds {
		return []int{a, a + per}
	}
	return []int{a}
}

// onLogicalString reports whether qubit q sits on the logical Z string
// (the left column of the data lattice).
func (c *Circuit) onLogicalString(q int) bool {
	return q < c.NumDataQubits() && q%c.Distance == 0
}
