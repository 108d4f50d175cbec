// Package hydro - integral metrics over a sampled profile.
//
// Design principles:
//   - Deterministic, side-effect free; the Sample is never mutated.
//   - No logging, no panics on user input - only sentinel errors from
//     types.go.
//   - Single O(N) pass per integrand; quadrature via gonum's composite
//     trapezoid.
package hydro

import (
	"math"

	"gonum.org/v1/gonum/integrate"

	"github.com/katalvlaran/hullform/profile"
)

// Metrics computes the hydrostatic scalars of s and, when flow is non-nil,
// the ITTC-57 friction estimate.
//
// Contracts:
//   - s must hold at least two strictly increasing stations.
//   - All outputs are returned together in one Result; there is no
//     partial-result mode. A nil flow omits Friction without error, but a
//     domain failure on supplied flow values (Re_L ≤ 1, non-positive
//     fields) fails the whole call.
//   - Zero volume yields CBDefined=false and a NaN centroid instead of a
//     division by zero; volume and wetted area remain valid.
//
// Complexity: O(N) time and memory, N = len(s.Stations).
func Metrics(s *profile.Sample, flow *Flow) (Result, error) {
	if s == nil || len(s.Stations) < MinStations || len(s.Radii) != len(s.Stations) {
		return Result{}, ErrShortSample
	}

	var (
		x     = s.Stations
		areas = s.Areas()
		n     = len(x)
	)

	res := Result{
		Length: s.Length,
		Volume: integrate.Trapezoidal(x, areas),
	}

	res.LengthOverDiameter = math.NaN()
	if s.Diameter > 0 {
		res.LengthOverDiameter = s.Length / s.Diameter
	}

	// Centre of buoyancy: first moment of area over volume. Undefined for
	// a degenerate all-zero profile; reported explicitly, never a NaN that
	// leaks silently into downstream fields.
	var (
		moment = make([]float64, n)
		i      int
	)
	for i = 0; i < n; i++ {
		moment[i] = x[i] * areas[i]
	}
	res.CenterOfBuoyancy = math.NaN()
	if res.Volume > 0 {
		res.CenterOfBuoyancy = integrate.Trapezoidal(x, moment) / res.Volume
		res.CBDefined = true
	}

	// Wetted surface area of the body of revolution:
	// S = ∫ 2π·r·√(1+(dr/dx)²) dx with finite-difference slopes.
	var (
		skin  = make([]float64, n)
		slope float64
	)
	for i = 0; i < n; i++ {
		switch i {
		case 0:
			slope = (s.Radii[1] - s.Radii[0]) / (x[1] - x[0])
		case n - 1:
			slope = (s.Radii[n-1] - s.Radii[n-2]) / (x[n-1] - x[n-2])
		default:
			slope = (s.Radii[i+1] - s.Radii[i-1]) / (x[i+1] - x[i-1])
		}
		skin[i] = 2 * math.Pi * s.Radii[i] * math.Sqrt(1+slope*slope)
	}
	res.WettedArea = integrate.Trapezoidal(x, skin)

	if flow != nil {
		fr, err := friction(flow, s.Length, res.WettedArea)
		if err != nil {
			return Result{}, err
		}
		res.Friction = fr
	}

	return res, nil
}

// MinStations is the floor on sample length for trapezoidal quadrature.
const MinStations = 2

// friction evaluates the ITTC-57 correlation line.
//
// Re_L ≤ 1 would push log₁₀ out of its useful domain and is rejected as a
// hard error rather than silently producing a nonsensical coefficient.
func friction(flow *Flow, length, wetted float64) (*Friction, error) {
	if flow.Speed <= 0 || flow.Density <= 0 || flow.Viscosity <= 0 {
		return nil, ErrInvalidFlow
	}

	re := flow.Speed * length / flow.Viscosity
	if re <= 1 {
		return nil, ErrReynoldsDomain
	}

	var (
		logTerm = math.Log10(re) - 2
		cf      = 0.075 / (logTerm * logTerm)
	)

	return &Friction{
		Reynolds:    re,
		Coefficient: cf,
		Drag:        0.5 * flow.Density * flow.Speed * flow.Speed * wetted * cf,
	}, nil
}
