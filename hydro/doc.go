// Package hydro computes hydrostatic and hydrodynamic scalars over a
// sampled hull profile: displaced volume, centre of buoyancy, wetted
// surface area, and an ITTC-57 friction drag estimate.
//
// What:
//
//   - Metrics integrates a profile.Sample with composite trapezoidal
//     quadrature: volume from π·r²(x), centre of buoyancy from the first
//     moment, wetted area from 2π·r·√(1+(dr/dx)²) with finite-difference
//     slopes.
//   - A Flow (speed, density, kinematic viscosity) additionally yields the
//     length Reynolds number, the ITTC-57 friction coefficient
//     Cf = 0.075/(log₁₀Re − 2)², and the friction drag ½·ρ·U²·S·Cf.
//   - Evaluate is the one-call entry: profile.Build followed by Metrics.
//
// Why:
//
//   - Hull sizing: displacement and trim balance need volume and CB.
//   - Propulsion budgeting: the ITTC-57 line is the standard first-order
//     friction drag estimate for slender bodies.
//
// Complexity: O(N) time and memory over the N profile stations.
//
// Errors:
//
//   - ErrShortSample / ErrInvalidFlow / ErrReynoldsDomain - all wrap
//     profile.ErrInvalidParameter, so errors.Is against that sentinel
//     covers the whole invalid-input class.
//   - A zero-volume profile is not an error: the centre of buoyancy is
//     reported as undefined (CBDefined=false, NaN) while volume and wetted
//     area stay valid zeros.
package hydro
