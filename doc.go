// Package hullform computes truncated Myring hull-of-revolution geometry
// and the hydrostatic / hydrodynamic quantities derived from it.
//
// 🚀 What is hullform?
//
//	A small, pure-Go numerical core for axisymmetric hull design:
//		• Myring profiles: polynomial nose, cylindrical mid-body, cubic tail
//		• Nose/tail truncation by raw offset or by target cut-plane radius
//		• Closed-form nose inversion, grid-bracketed tail inversion
//		• Trapezoidal volume, centre of buoyancy, wetted surface area
//		• ITTC-57 friction line: Reynolds number, Cf, friction drag
//
// ✨ Why choose hullform?
//
//   - Deterministic – every call is a pure function of its inputs
//   - Stateless – no process-wide state; safe for concurrent callers
//   - Strict sentinels – typed errors, no panics on user input, no logging
//   - SI units everywhere – meters, radians, m/s, kg/m³, m²/s
//
// Everything is organized under two subpackages:
//
//	profile/ — parameter validation, offset inversion, axial sampling
//	hydro/   — integral metrics over a sampled profile + the one-call entry
//
// Quick ASCII sketch (head | cylinder | tail):
//
//	      _____________________________
//	    /                               \
//	   |                                 \
//	   |                                  |
//	    \                                /
//	      \ ___________________________/
//	   0    a_eff               a_eff+b    L
//
// Quick start:
//
//	p := profile.Params{
//	    Diameter: 0.254, HeadExponent: 2,
//	    HeadLength: 0.155, CylinderLength: 1.987, TailLength: 0.7715,
//	    TailAngle: 0.2042,
//	}
//	flow := &hydro.Flow{Speed: 2, Density: 1030, Viscosity: 1.19e-6}
//	sample, res, err := hydro.Evaluate(p, flow)
//
// See examples/ for complete, runnable scenarios.
package hullform
