// Package noise synthesizes stress-test workloads: rotated-surface-code
// circuits whose injected error probability drifts sinusoidally over
// structural rounds, optionally seeded with one spatially-correlated burst.
//
// Stress performs circuit surgery on a noiseless, flattened skeleton: every
// non-annotation instruction is re-emitted unchanged and followed by a noise
// operation scaled to the instantaneous rate
//
//	p_now = base_p · (1 + drift · sin(2π · round / period)), period = rounds/2
//
// so the rate completes two full drift cycles over the run (a stand-in for
// slow T1 fluctuation on hardware). Noise class follows instruction class:
// bit flips after reset/measure, single-qubit depolarizing after 1-qubit
// gates, two-qubit depolarizing after 2-qubit gates; round markers and
// annotations pass through untouched.
//
// A burst, when enabled, is one CORRELATED_ERROR over a contiguous window
// of data qubits prepended before round 0 (a cosmic-ray-like event). Window
// placement is a heuristic footprint and therefore configurable.
//
// Surgery changes probability and correlation structure only, never
// detector or observable topology, so a stress circuit and a Standard
// circuit at equal (d, rounds) derive error models of identical dimensions.
package noise
