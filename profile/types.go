package profile

import (
	"errors"
	"fmt"
	"math"
)

// Sentinel errors returned by the profile builder.
var (
	// ErrInvalidParameter indicates an input outside its documented domain.
	// It is always wrapped in a *ParamError identifying the offending field.
	ErrInvalidParameter = errors.New("profile: invalid parameter")

	// ErrInversionImprecise is a non-fatal warning: the tail-offset root
	// search found no bracketing sign change, so the returned c₀ is the
	// grid point minimizing |f| rather than an interpolated root. It is
	// reported on Sample.Warning, never as a Build error.
	ErrInversionImprecise = errors.New("profile: tail inversion found no bracketing sign change")
)

// ParamError reports which field violated its domain. It unwraps to
// ErrInvalidParameter so callers can match the whole class with errors.Is.
type ParamError struct {
	Field  string  // Params/Options field name
	Value  float64 // offending value
	Reason string  // domain that was violated
}

func (e *ParamError) Error() string {
	return fmt.Sprintf("profile: invalid parameter %s=%g: %s", e.Field, e.Value, e.Reason)
}

// Unwrap ties ParamError into the ErrInvalidParameter sentinel class.
func (e *ParamError) Unwrap() error { return ErrInvalidParameter }

// Params describes a truncated Myring hull in SI units (meters, radians).
//
// Diameter       – maximum hull diameter d (> 0).
// HeadExponent   – Myring head exponent n (> 0); larger n blunts the nose.
// HeadLength     – full (untruncated) head length a (> 0).
// CylinderLength – mid-body cylinder length b (> 0).
// TailLength     – full (untruncated) tail length c (> 0).
// TailAngle      – tail half-angle θ at the tip, radians.
// NoseOffset     – nose truncation a₀ ∈ [0, a); ignored under WithFrontRadius.
// TailOffset     – tail truncation c₀ ∈ [0, c); ignored under WithSternRadius.
//
// Params is a value object: Build never mutates it and holds no reference
// to it after returning, so one Params may be shared across goroutines.
type Params struct {
	Diameter       float64
	HeadExponent   float64
	HeadLength     float64
	CylinderLength float64
	TailLength     float64
	TailAngle      float64
	NoseOffset     float64
	TailOffset     float64
}

// DefaultResolution is the number of stations per segment used when no
// WithResolution option is given. At meter-scale hull lengths it keeps the
// tail-inversion interpolation error well below millimeter display precision.
const DefaultResolution = 200

// MinResolution is the floor on points per segment; below two points the
// trapezoidal quadrature over a segment is not defined.
const MinResolution = 2

// Options configures Build.
//
// Resolution    – stations per segment; boundaries are emitted exactly once,
// so a full three-segment profile has 3·Resolution−2 stations.
//
// InversionGrid – grid density for the tail-offset root search; 0 means
// "same as Resolution".
//
// InvertNose / InvertTail select inversion from the target radii below in
// place of the raw Params offsets. Set them via WithFrontRadius and
// WithSternRadius rather than directly.
type Options struct {
	Resolution    int
	InversionGrid int
	InvertNose    bool
	FrontRadius   float64 // target front cut-plane radius, ∈ [0, d/2]
	InvertTail    bool
	SternRadius   float64 // target stern cut-plane radius, ∈ [0, d/2]
}

// Option is a functional option for configuring Build.
type Option func(*Options)

// WithResolution sets the number of stations per segment.
// Values below MinResolution cause ErrInvalidParameter at Build time.
func WithResolution(n int) Option {
	return func(o *Options) {
		o.Resolution = n
	}
}

// WithInversionGrid sets the tail-inversion grid density independently of
// the sampling resolution. Zero (the default) reuses Resolution.
func WithInversionGrid(n int) Option {
	return func(o *Options) {
		o.InversionGrid = n
	}
}

// WithFrontRadius solves the nose offset a₀ from a target front cut-plane
// radius (closed form), ignoring Params.NoseOffset. A target of exactly d/2
// truncates the entire head: a₀ = a and the profile starts at the cylinder.
func WithFrontRadius(r float64) Option {
	return func(o *Options) {
		o.InvertNose = true
		o.FrontRadius = r
	}
}

// WithSternRadius solves the tail offset c₀ from a target stern cut-plane
// radius via a dense grid search, ignoring Params.TailOffset. When no grid
// interval brackets the root, Build still succeeds and flags the estimate
// with Sample.Warning = ErrInversionImprecise.
func WithSternRadius(r float64) Option {
	return func(o *Options) {
		o.InvertTail = true
		o.SternRadius = r
	}
}

// DefaultOptions returns the Options used when Build receives no overrides.
//
// Defaults:
//   - Resolution:    DefaultResolution (200 stations per segment).
//   - InversionGrid: 0 (follow Resolution).
//   - InvertNose / InvertTail: false (use the raw Params offsets).
func DefaultOptions() Options {
	return Options{Resolution: DefaultResolution}
}

// Sample is an ordered axial sampling of a truncated Myring profile.
//
// Stations are strictly increasing, cover [0, Length] exactly at both ends,
// and every radius is ≥ 0 (negative polynomial values are clamped to zero;
// Clamped counts how many stations were clamped). Radius is continuous in
// value across the head/mid and mid/tail boundaries.
type Sample struct {
	Stations []float64 // axial coordinates x_i, strictly increasing
	Radii    []float64 // hull radii r_i ≥ 0, len == len(Stations)

	Diameter       float64 // d, carried for downstream L/D reporting
	HeadLength     float64 // effective head length a_eff = a − a₀
	CylinderLength float64 // b
	TailLength     float64 // effective tail length c_eff = c − c₀
	Length         float64 // L = a_eff + b + c_eff

	NoseOffset float64 // a₀ as built (solved when WithFrontRadius was used)
	TailOffset float64 // c₀ as built (solved when WithSternRadius was used)

	Clamped int   // stations clamped from genuinely negative raw radii
	Warning error // ErrInversionImprecise or nil
}

// FrontRadius reports the as-built radius at the forward cut plane (x = 0).
func (s *Sample) FrontRadius() float64 {
	if len(s.Radii) == 0 {
		return 0
	}

	return s.Radii[0]
}

// SternRadius reports the as-built radius at the stern cut plane (x = L).
func (s *Sample) SternRadius() float64 {
	if len(s.Radii) == 0 {
		return 0
	}

	return s.Radii[len(s.Radii)-1]
}

// Areas returns the cross-sectional area π·r² at every station.
// A fresh slice is allocated on each call; the Sample is never mutated.
func (s *Sample) Areas() []float64 {
	out := make([]float64, len(s.Radii))

	var (
		i int
		r float64
	)
	for i, r = range s.Radii {
		out[i] = math.Pi * r * r
	}

	return out
}
