// Package profile - validation of Params and Options before any
// computation proceeds.
//
// Design principles:
//   - Deterministic, side-effect free checks; no partial results.
//   - No logging, no panics on user input - only *ParamError values that
//     unwrap to ErrInvalidParameter.
//   - O(1) time; validation never iterates the profile.
package profile

func validate(p Params, o Options) error {
	// Stage 1: scalar domains of the raw hull parameters.
	if p.Diameter <= 0 {
		return &ParamError{Field: "Diameter", Value: p.Diameter, Reason: "must be positive"}
	}
	if p.HeadExponent <= 0 {
		return &ParamError{Field: "HeadExponent", Value: p.HeadExponent, Reason: "must be positive"}
	}
	if p.HeadLength <= 0 {
		return &ParamError{Field: "HeadLength", Value: p.HeadLength, Reason: "must be positive"}
	}
	if p.CylinderLength <= 0 {
		return &ParamError{Field: "CylinderLength", Value: p.CylinderLength, Reason: "must be positive"}
	}
	if p.TailLength <= 0 {
		return &ParamError{Field: "TailLength", Value: p.TailLength, Reason: "must be positive"}
	}

	// Stage 2: truncation offsets. A raw offset equal to the full segment
	// length would degenerate that segment to a point, so the boundary is
	// excluded here; only nose inversion may reach a₀ = a (flat cut).
	if !o.InvertNose {
		if p.NoseOffset < 0 || p.NoseOffset >= p.HeadLength {
			return &ParamError{Field: "NoseOffset", Value: p.NoseOffset, Reason: "must lie in [0, HeadLength)"}
		}
	}
	if !o.InvertTail {
		if p.TailOffset < 0 || p.TailOffset >= p.TailLength {
			return &ParamError{Field: "TailOffset", Value: p.TailOffset, Reason: "must lie in [0, TailLength)"}
		}
	}

	// Stage 3: inversion targets. A cut-plane radius cannot exceed the
	// maximum hull radius d/2 or be negative - no real truncation exists.
	if o.InvertNose {
		if o.FrontRadius < 0 || o.FrontRadius > p.Diameter/2 {
			return &ParamError{Field: "FrontRadius", Value: o.FrontRadius, Reason: "must lie in [0, Diameter/2]"}
		}
	}
	if o.InvertTail {
		if o.SternRadius < 0 || o.SternRadius > p.Diameter/2 {
			return &ParamError{Field: "SternRadius", Value: o.SternRadius, Reason: "must lie in [0, Diameter/2]"}
		}
	}

	// Stage 4: discretisation floors.
	if o.Resolution < MinResolution {
		return &ParamError{Field: "Resolution", Value: float64(o.Resolution), Reason: "must be at least 2 points per segment"}
	}
	if o.InversionGrid != 0 && o.InversionGrid < MinResolution {
		return &ParamError{Field: "InversionGrid", Value: float64(o.InversionGrid), Reason: "must be at least 2 grid points"}
	}

	return nil
}
