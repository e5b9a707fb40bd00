// Package decoder: public interfaces, solver contracts and configuration.

package decoder

import (
	"github.com/qecstress/driftbench/dem"
)

// Decoder is the uniform two-tier decode contract every backend satisfies.
// Implementations are stateful (the latency log grows with each single-shot
// decode) and bound to one compiled error model.
type Decoder interface {
	// Decode solves one syndrome of length NumDetectors and returns a 0/1
	// error estimate of length equal to the model's mechanism count.
	// Side effect: appends the call's wall time to the latency log.
	Decode(syndrome []uint8) ([]uint8, error)

	// LogicalCorrection returns the observable parity correction implied
	// by the syndrome, length NumObservables. For matrix-based backends
	// this is (L · Decode(syndrome)) mod 2; backends that solve directly
	// for observable parity return their native output.
	LogicalCorrection(syndrome []uint8) ([]uint8, error)

	// DecodeBatchPacked decodes bit-packed rows (one per shot,
	// ceil(NumDetectors/8) bytes each, little bit order) independently and
	// in order, returning packed corrections of ceil(NumObservables/8)
	// bytes per row. Safe to call repeatedly; never reorders shots.
	DecodeBatchPacked(packed [][]byte) ([][]byte, error)

	// AverageLatency returns the mean of the latency log in seconds, or
	// 0.0 when the log is empty.
	AverageLatency() float64

	// ResetLatencies clears the latency log.
	ResetLatencies()

	// NumDetectors returns the compiled model's detector count.
	NumDetectors() int

	// NumObservables returns the compiled model's observable count.
	NumObservables() int
}

// Solver is the external message-passing solver contract: one estimate per
// syndrome. Implementations hold whatever iterative state they need; the
// pipeline never inspects it.
type Solver interface {
	Decode(syndrome []uint8) ([]uint8, error)
}

// SolverFactory constructs a Solver for one compiled model. H and priors
// are the objects produced by dem.Build; cfg carries the algorithm knobs.
// A nil factory marks the backend unavailable.
type SolverFactory func(h *dem.BinMatrix, priors []float64, cfg MPConfig) (Solver, error)

// Matcher is the external clustering/matching solver contract. Match
// receives the indices of triggered detectors ("defects") and returns the
// implied observable flips, length num_observables. The contract requires
// the solver to absorb an odd defect set via a virtual boundary node rather
// than fail.
type Matcher interface {
	Match(defects []int) ([]uint8, error)
}

// MatcherFactory constructs a Matcher from the model's matrices. A nil
// factory marks the backend unavailable.
type MatcherFactory func(h, l *dem.BinMatrix, priors []float64) (Matcher, error)

// Defaults for the message-passing configuration, chosen for deep-search
// accuracy over raw speed.
const (
	// DefaultBPMethod selects exact-arithmetic product-sum propagation.
	DefaultBPMethod = "product_sum"
	// DefaultMaxIter bounds propagation iterations; the only per-call
	// latency bound this layer offers.
	DefaultMaxIter = 50
	// DefaultOSDMethod selects the bounded combination-sweep post-search.
	DefaultOSDMethod = "osd_cs"
	// DefaultOSDOrder is the combination-sweep search depth.
	DefaultOSDOrder = 35
)

// MPConfig carries the message-passing backend's algorithm knobs; zero
// values select the documented defaults.
type MPConfig struct {
	// Method is the propagation variant.
	Method string
	// MaxIter bounds propagation iterations.
	MaxIter int
	// OSDMethod is the post-processing search variant.
	OSDMethod string
	// OSDOrder is the post-processing search depth.
	OSDOrder int
}

// DefaultMPConfig returns the documented default configuration.
func DefaultMPConfig() MPConfig {
	return MPConfig{
		Method:    DefaultBPMethod,
		MaxIter:   DefaultMaxIter,
		OSDMethod: DefaultOSDMethod,
		OSDOrder:  DefaultOSDOrder,
	}
}

// withDefaults fills zero-valued fields.
func (c MPConfig) withDefaults() MPConfig {
	if c.Method == "" {
		c.Method = DefaultBPMethod
	}
	if c.MaxIter == 0 {
		c.MaxIter = DefaultMaxIter
	}
	if c.OSDMethod == "" {
		c.OSDMethod = DefaultOSDMethod
	}
	if c.OSDOrder == 0 {
		c.OSDOrder = DefaultOSDOrder
	}
	return c
}

// Factory compiles decoders for error models. CompileForModel performs the
// one-time setup (matrix building, solver construction) per model; repeated
// calls with different models share no state.
type Factory interface {
	CompileForModel(model *dem.ErrorModel) (Decoder, error)
}

// MPFactory compiles message-passing decoders.
type MPFactory struct {
	Config    MPConfig
	NewSolver SolverFactory
}

// CompileForModel builds an MP decoder bound to the model.
func (f MPFactory) CompileForModel(model *dem.ErrorModel) (Decoder, error) {
	return NewMP(model, f.Config, f.NewSolver)
}

// MatchingFactory compiles clustering/matching decoders.
type MatchingFactory struct {
	NewMatcher MatcherFactory
}

// CompileForModel builds a matching decoder bound to the model.
func (f MatchingFactory) CompileForModel(model *dem.ErrorModel) (Decoder, error) {
	return NewMatching(model, f.NewMatcher)
}

// BaselineFactory compiles all-zero baseline decoders.
type BaselineFactory struct{}

// CompileForModel builds a baseline decoder bound to the model.
func (BaselineFactory) CompileForModel(model *dem.ErrorModel) (Decoder, error) {
	return NewBaseline(model)
}
