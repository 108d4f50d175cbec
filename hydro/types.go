package hydro

import (
	"fmt"

	"github.com/katalvlaran/hullform/profile"
)

// Sentinel errors returned by Metrics and Evaluate. Each wraps
// profile.ErrInvalidParameter: the whole class is matchable with one
// errors.Is call at the host boundary.
var (
	// ErrShortSample indicates a sample with fewer than two stations, over
	// which trapezoidal quadrature is not defined.
	ErrShortSample = fmt.Errorf("hydro: sample needs at least two stations: %w", profile.ErrInvalidParameter)

	// ErrInvalidFlow indicates a Flow with a non-positive speed, density,
	// or kinematic viscosity.
	ErrInvalidFlow = fmt.Errorf("hydro: flow parameters must be positive: %w", profile.ErrInvalidParameter)

	// ErrReynoldsDomain indicates Re_L ≤ 1, outside the ITTC-57 correlation
	// line's log₁₀ domain.
	ErrReynoldsDomain = fmt.Errorf("hydro: Reynolds number must exceed 1 for ITTC-57: %w", profile.ErrInvalidParameter)
)

// Flow describes the forward-motion conditions for the friction estimate,
// in SI units.
//
// Speed     – forward speed U [m/s].
// Density   – fluid density ρ [kg/m³].
// Viscosity – kinematic viscosity ν [m²/s].
//
// Pass nil to Metrics/Evaluate to omit the friction outputs entirely.
type Flow struct {
	Speed     float64
	Density   float64
	Viscosity float64
}

// Friction bundles the ITTC-57 outputs.
type Friction struct {
	Reynolds    float64 // Re_L = U·L/ν
	Coefficient float64 // Cf = 0.075/(log₁₀Re_L − 2)²
	Drag        float64 // Df = ½·ρ·U²·S_wetted·Cf [N]
}

// Result carries every scalar derived from one profile evaluation. It is a
// pure output recomputed fresh on every call; no state persists between
// evaluations.
//
// CenterOfBuoyancy is the x-coordinate of the volumetric centroid. For a
// degenerate all-zero-radius profile the volume is zero and the centroid is
// undefined: CBDefined is false and CenterOfBuoyancy is NaN, while the other
// fields remain valid.
//
// LengthOverDiameter is NaN when the sample carries no diameter (hand-built
// degenerate samples).
//
// Friction is nil when no Flow was supplied.
type Result struct {
	Length             float64
	LengthOverDiameter float64
	Volume             float64
	CenterOfBuoyancy   float64
	CBDefined          bool
	WettedArea         float64
	Friction           *Friction
}
