// Package profile - inversion of truncation offsets from target cut-plane
// radii. Two independent sub-solves: a closed-form nose solve and a dense
// grid bracket-and-interpolate tail solve.
package profile

import "math"

// noseOffset solves the nose truncation a₀ from a target front radius.
//
// The head polynomial value at the cut plane has an exact inverse:
//
//	y  = (2·r/d)^n
//	a₀ = a·(1 − √(1−y))
//
// The target is pre-validated to [0, d/2], so y ∈ [0, 1]; y = 1 (target
// exactly d/2) yields a₀ = a, a full nose truncation.
//
// Complexity: O(1).
func noseOffset(target float64, p Params) float64 {
	y := math.Pow(2*target/p.Diameter, p.HeadExponent)

	return p.HeadLength * (1 - math.Sqrt(1-y))
}

// tailOffset solves R_tail(c−c₀) = target for c₀ ∈ [0, c).
//
// The tail cubic has no convenient closed-form inverse, so the residual
// f(c₀) = R_tail(c−c₀) − target is evaluated on a uniform grid of gridN
// points over [0, c), the first interval where f changes sign is located,
// and the root is linearly interpolated inside it. One pass, deterministic,
// no iteration-count surprises; accuracy is one grid cell, which at the
// default density is far below millimeter display precision.
//
// When no interval brackets a root (degenerate geometry, e.g. a target at
// the open supremum d/2), the grid point minimizing |f| is returned together
// with the ErrInversionImprecise warning; the caller decides whether the
// best-effort estimate is acceptable.
//
// Complexity: O(gridN) time, O(1) memory.
func tailOffset(target float64, p Params, gridN int) (c0 float64, warn error) {
	var (
		step    = p.TailLength / float64(gridN)
		prevF   float64
		best    float64
		bestAbs = math.Inf(1)
		f, absF float64
		j       int
	)

	for j = 0; j < gridN; j++ {
		c0 = float64(j) * step
		// Radii are clamped to zero like everywhere else in the profile,
		// so the residual matches what sampling would actually produce.
		f = math.Max(0, tailRadius(p.TailLength-c0, p)) - target

		if f == 0 {
			return c0, nil
		}
		if j > 0 && (prevF < 0) != (f < 0) {
			// Sign change inside (c0−step, c0]: linear interpolation.
			return c0 - step + step*prevF/(prevF-f), nil
		}

		absF = math.Abs(f)
		if absF < bestAbs {
			best, bestAbs = c0, absF
		}
		prevF = f
	}

	return best, ErrInversionImprecise
}
