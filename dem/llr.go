// SPDX-License-Identifier: MIT

// Package dem: prior → log-likelihood-ratio conversion.

package dem

import "math"

// DefaultClipMin is the default probability clipping bound for LLRs.
// Priors of exactly 0 or 1 are clipped to this distance from the boundary
// so their LLR stays finite.
const DefaultClipMin = 1e-10

// LLRs converts prior probabilities to log-likelihood ratios:
//
//	llr_i = log((1 - clip(p_i)) / clip(p_i))
//
// where clip bounds each probability to [clipMin, 1-clipMin]. The transform
// is strictly decreasing on (0,1) and exactly zero at p = 0.5. Positive LLR
// means the mechanism is more likely quiet than fired.
//
// Returns ErrBadClip when clipMin is outside (0, 0.5) and ErrBadProbability
// when a prior is NaN (out-of-range finite priors are clipped, not
// rejected, since the clip exists precisely to absorb boundary values).
// Complexity: O(n).
func LLRs(priors []float64, clipMin float64) ([]float64, error) {
	if !(clipMin > 0 && clipMin < 0.5) {
		return nil, ErrBadClip
	}
	out := make([]float64, len(priors))
	for i, p := range priors {
		if math.IsNaN(p) {
			return nil, ErrBadProbability
		}
		pc := math.Min(math.Max(p, clipMin), 1-clipMin)
		out[i] = math.Log((1 - pc) / pc)
	}
	return out, nil
}
