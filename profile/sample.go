// Package profile - the Build entry point: validation → optional inversion
// → axial sampling, in that order. Data flows strictly forward; no stage
// depends on anything computed later.
package profile

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// Build validates p, optionally inverts the truncation offsets from target
// radii (see WithFrontRadius / WithSternRadius), and samples the resulting
// profile on a per-segment grid.
//
// Contracts:
//   - Stations are strictly increasing and cover [0, L] exactly at both ends.
//   - Segment boundaries are emitted exactly once; the radius is continuous
//     in value across them (d/2 on either side).
//   - Every radius is ≥ 0; raw negative polynomial values are clamped to
//     zero, and those beyond rounding residue are counted on Sample.Clamped.
//   - A zero-length head (full nose truncation via inversion) contributes no
//     stations; the profile then starts at the cylinder's flat cut plane.
//
// Errors: *ParamError (wrapping ErrInvalidParameter) from validation; the
// non-fatal ErrInversionImprecise is reported on Sample.Warning instead.
//
// Complexity: O(Resolution + InversionGrid) time, O(Resolution) memory.
func Build(p Params, opts ...Option) (*Sample, error) {
	o := DefaultOptions()
	var opt Option
	for _, opt = range opts {
		opt(&o)
	}
	if o.InversionGrid == 0 {
		o.InversionGrid = o.Resolution
	}

	// Stage 1: validation. No computation proceeds on invalid inputs.
	if err := validate(p, o); err != nil {
		return nil, err
	}

	// Stage 2: inversion (optional, per offset).
	var (
		a0   = p.NoseOffset
		c0   = p.TailOffset
		warn error
	)
	if o.InvertNose {
		a0 = noseOffset(o.FrontRadius, p)
	}
	if o.InvertTail {
		c0, warn = tailOffset(o.SternRadius, p, o.InversionGrid)
	}

	// Stage 3: normalization + sampling.
	var (
		aEff = p.HeadLength - a0
		b    = p.CylinderLength
		cEff = p.TailLength - c0
		l    = aEff + b + cEff
	)

	s := &Sample{
		Diameter:       p.Diameter,
		HeadLength:     aEff,
		CylinderLength: b,
		TailLength:     cEff,
		Length:         l,
		NoseOffset:     a0,
		TailOffset:     c0,
		Warning:        warn,
	}

	s.Stations = stations(aEff, b, l, o.Resolution)
	s.Radii = make([]float64, len(s.Stations))

	var (
		i int
		x float64
		r float64
	)
	for i, x = range s.Stations {
		switch {
		case x < aEff:
			r = headRadius(x-aEff, p)
		case x < aEff+b:
			r = p.Diameter / 2
		default:
			r = tailRadius(x-aEff-b, p)
		}
		if r < 0 {
			// The tail cubic is exactly zero at the untruncated tip but
			// rounds a few ulp below it; only a genuinely negative radius
			// counts as clamped geometry.
			if r < -clampTol*p.Diameter {
				s.Clamped++
			}
			r = 0
		}
		s.Radii[i] = r
	}

	return s, nil
}

// clampTol, relative to the hull diameter, separates rounding residue from
// a real excursion of the radius polynomials below the axis.
const clampTol = 1e-12

// stations lays out the axial grid: res equally spaced points per segment
// inclusive of both segment ends, with the shared boundary of consecutive
// segments emitted once. A zero-length head is skipped entirely.
func stations(aEff, b, l float64, res int) []float64 {
	var (
		xs  = make([]float64, 0, 3*res-2)
		seg = make([]float64, res)
	)

	if aEff > 0 {
		floats.Span(seg, 0, aEff)
		xs = append(xs, seg...)
	}

	floats.Span(seg, aEff, aEff+b)
	if len(xs) > 0 {
		xs = append(xs, seg[1:]...) // boundary aEff already emitted by the head
	} else {
		xs = append(xs, seg...)
	}

	floats.Span(seg, aEff+b, l)
	xs = append(xs, seg[1:]...)

	return xs
}

// headRadius evaluates the Myring head polynomial at s = x − a_eff ≤ 0,
// i.e. the distance aft of the head/cylinder junction on the full
// (untruncated) head of length a:
//
//	R(s) = (d/2)·(1 − (s/a)²)^(1/n)
//
// At the junction (s = 0) this is exactly d/2; at the forward cut plane
// (s = −a_eff) it matches the closed-form nose inversion.
func headRadius(s float64, p Params) float64 {
	t := 1 - (s/p.HeadLength)*(s/p.HeadLength)
	if t < 0 {
		return 0
	}

	return p.Diameter / 2 * math.Pow(t, 1/p.HeadExponent)
}

// tailRadius evaluates the Myring tail cubic at dx = x − (a_eff+b) ≥ 0,
// using the full tail length c and the tail half-angle θ:
//
//	R(dx) = d/2 − (1.5·d/c² − tanθ/c)·dx² + (d/c³ − tanθ/c²)·dx³
//
// The cubic reaches exactly zero at dx = c for any θ; between the cut plane
// and the tip it may dip negative for extreme angles, which the caller
// clamps to zero.
func tailRadius(dx float64, p Params) float64 {
	var (
		d    = p.Diameter
		c    = p.TailLength
		tanT = math.Tan(p.TailAngle)
	)

	return d/2 - (1.5*d/(c*c)-tanT/c)*dx*dx + (d/(c*c*c)-tanT/(c*c))*dx*dx*dx
}
