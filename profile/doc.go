// Package profile builds truncated Myring hull profiles: an axisymmetric
// body of revolution with a polynomial nose, a cylindrical mid-body, and a
// cubic tail, sampled along the hull axis.
//
// What:
//
//   - Params describes the hull in SI units: diameter d, head exponent n,
//     full segment lengths a / b / c, tail half-angle θ, and the nose/tail
//     truncation offsets a₀ / c₀.
//   - Build validates the parameters, optionally inverts a₀ / c₀ from target
//     cut-plane radii, and returns an ordered Sample of (station, radius)
//     pairs covering [0, L] with L = (a−a₀) + b + (c−c₀).
//   - Nose inversion is closed-form; tail inversion brackets the root on a
//     dense grid and interpolates linearly inside the bracketing interval.
//
// Why:
//
//   - AUV / torpedo hull design: derive the as-built geometry from a handful
//     of design parameters.
//   - Hydrostatics: the Sample feeds hydro.Metrics for volume, centre of
//     buoyancy, wetted area, and ITTC-57 friction drag.
//   - Interactive tools: every call is a pure function of its inputs, cheap
//     enough to re-run on every slider tick.
//
// Complexity:
//
//   - Build: O(R) time and memory, R = points per segment (3R−2 stations).
//   - Tail inversion: O(G) time, G = inversion grid density.
//
// Options:
//
//   - Options.Resolution: points per segment (default 200, minimum 2).
//   - Options.InversionGrid: tail-inversion grid density (default Resolution).
//   - WithFrontRadius / WithSternRadius: solve a₀ / c₀ from target radii
//     instead of taking the raw offsets from Params.
//
// Errors:
//
//   - ErrInvalidParameter: any input outside its documented domain; always
//     wrapped in a *ParamError naming the offending field.
//   - ErrInversionImprecise: non-fatal warning on Sample.Warning when the
//     tail root search finds no bracketing sign change; the returned c₀ is
//     the best-effort nearest-grid-point estimate.
package profile
