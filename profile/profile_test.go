package profile_test

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/hullform/profile"
)

// baseParams is the reference hull used across the tests: a 1.2 m body with
// a 0.2 m diameter, parabolic head (n=2), and a ~10° tail half-angle.
func baseParams() profile.Params {
	return profile.Params{
		Diameter:       0.2,
		HeadExponent:   2,
		HeadLength:     0.3,
		CylinderLength: 0.5,
		TailLength:     0.4,
		TailAngle:      0.1745,
	}
}

// TestBuild_StationOrdering verifies the fundamental sampling contract:
// strictly increasing stations covering [0, L] exactly, radii ≥ 0, and the
// expected 3·R−2 station count.
func TestBuild_StationOrdering(t *testing.T) {
	s, err := profile.Build(baseParams())
	require.NoError(t, err)

	assert.Len(t, s.Stations, 3*profile.DefaultResolution-2, "boundaries must be emitted once")
	assert.Len(t, s.Radii, len(s.Stations))

	assert.Equal(t, 0.0, s.Stations[0], "first station must be the forward cut plane")
	assert.Equal(t, s.Length, s.Stations[len(s.Stations)-1], "last station must be the stern cut plane")

	for i := 1; i < len(s.Stations); i++ {
		require.Greater(t, s.Stations[i], s.Stations[i-1], "stations must be strictly increasing at %d", i)
	}
	for i, r := range s.Radii {
		require.GreaterOrEqual(t, r, 0.0, "radius must be non-negative at %d", i)
	}
}

// TestBuild_EffectiveLengths checks the derived a_eff / c_eff / L arithmetic
// with and without raw truncation offsets.
func TestBuild_EffectiveLengths(t *testing.T) {
	s, err := profile.Build(baseParams())
	require.NoError(t, err)
	assert.InDelta(t, 1.2, s.Length, 1e-12)
	assert.InDelta(t, 0.3, s.HeadLength, 1e-12)
	assert.InDelta(t, 0.4, s.TailLength, 1e-12)

	p := baseParams()
	p.NoseOffset = 0.05
	p.TailOffset = 0.1
	s, err = profile.Build(p)
	require.NoError(t, err)
	assert.InDelta(t, 0.25, s.HeadLength, 1e-12)
	assert.InDelta(t, 0.3, s.TailLength, 1e-12)
	assert.InDelta(t, 1.05, s.Length, 1e-12)
	assert.Equal(t, 0.05, s.NoseOffset, "raw offsets pass through unchanged")
	assert.Equal(t, 0.1, s.TailOffset)
}

// TestBuild_MidBodyRadiusExact verifies that every station strictly inside
// the cylinder carries exactly d/2, in particular the one nearest x = 0.5.
func TestBuild_MidBodyRadiusExact(t *testing.T) {
	s, err := profile.Build(baseParams())
	require.NoError(t, err)

	var (
		lo      = s.HeadLength
		hi      = s.HeadLength + s.CylinderLength
		nearest = -1
	)
	for i, x := range s.Stations {
		if x <= lo || x >= hi {
			continue
		}
		require.Equal(t, 0.1, s.Radii[i], "cylinder radius must be exactly d/2 at x=%g", x)
		if nearest < 0 || math.Abs(x-0.5) < math.Abs(s.Stations[nearest]-0.5) {
			nearest = i
		}
	}
	require.GreaterOrEqual(t, nearest, 0)
	assert.Equal(t, 0.1, s.Radii[nearest], "radius at the station nearest x=0.5")
}

// TestBuild_BoundaryContinuity checks that segment boundaries appear exactly
// once and the radius is continuous in value across them.
func TestBuild_BoundaryContinuity(t *testing.T) {
	s, err := profile.Build(baseParams())
	require.NoError(t, err)

	seen := 0
	for i, x := range s.Stations {
		if x == s.HeadLength {
			seen++
			assert.Equal(t, 0.1, s.Radii[i], "head/cylinder junction must sit at d/2")
			// Last head station approaches d/2 from below.
			assert.InDelta(t, 0.1, s.Radii[i-1], 1e-4)
		}
		if x == s.HeadLength+s.CylinderLength {
			assert.Equal(t, 0.1, s.Radii[i], "cylinder/tail junction must sit at d/2")
		}
	}
	assert.Equal(t, 1, seen, "head/cylinder boundary must be emitted exactly once")
}

// TestBuild_InvalidParams exercises the validation domains field by field.
func TestBuild_InvalidParams(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*profile.Params)
	}{
		{"zero diameter", func(p *profile.Params) { p.Diameter = 0 }},
		{"negative diameter", func(p *profile.Params) { p.Diameter = -0.2 }},
		{"zero exponent", func(p *profile.Params) { p.HeadExponent = 0 }},
		{"zero head length", func(p *profile.Params) { p.HeadLength = 0 }},
		{"zero cylinder length", func(p *profile.Params) { p.CylinderLength = 0 }},
		{"zero tail length", func(p *profile.Params) { p.TailLength = 0 }},
		{"nose offset at full head", func(p *profile.Params) { p.NoseOffset = p.HeadLength }},
		{"negative nose offset", func(p *profile.Params) { p.NoseOffset = -0.01 }},
		{"tail offset at full tail", func(p *profile.Params) { p.TailOffset = p.TailLength }},
		{"negative tail offset", func(p *profile.Params) { p.TailOffset = -0.01 }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p := baseParams()
			tc.mutate(&p)
			s, err := profile.Build(p)
			assert.Nil(t, s, "no partial result on invalid input")
			assert.ErrorIs(t, err, profile.ErrInvalidParameter)
		})
	}
}

// TestBuild_ParamErrorField verifies the typed error names the offending field.
func TestBuild_ParamErrorField(t *testing.T) {
	p := baseParams()
	p.NoseOffset = p.HeadLength // boundary excluded: a_eff would be zero

	_, err := profile.Build(p)
	require.Error(t, err)

	var pe *profile.ParamError
	require.True(t, errors.As(err, &pe))
	assert.Equal(t, "NoseOffset", pe.Field)
	assert.Equal(t, p.HeadLength, pe.Value)
}

// TestBuild_ResolutionFloor rejects resolutions below two points per
// segment, for the sampling grid and the inversion grid alike.
func TestBuild_ResolutionFloor(t *testing.T) {
	_, err := profile.Build(baseParams(), profile.WithResolution(1))
	assert.ErrorIs(t, err, profile.ErrInvalidParameter)

	_, err = profile.Build(baseParams(),
		profile.WithSternRadius(0.05),
		profile.WithInversionGrid(1),
	)
	assert.ErrorIs(t, err, profile.ErrInvalidParameter)

	s, err := profile.Build(baseParams(), profile.WithResolution(2))
	require.NoError(t, err)
	assert.Len(t, s.Stations, 4, "R=2 keeps only the segment boundaries")
}

// TestBuild_ClampedDiagnostic drives the tail cubic negative with a negative
// half-angle and checks the clamp-to-zero policy plus its diagnostic count.
func TestBuild_ClampedDiagnostic(t *testing.T) {
	p := baseParams()
	p.TailAngle = -0.5

	s, err := profile.Build(p)
	require.NoError(t, err)
	assert.Positive(t, s.Clamped, "negative raw radii must be counted")
	for i, r := range s.Radii {
		require.GreaterOrEqual(t, r, 0.0, "clamped radius at %d", i)
	}

	// An untruncated tail evaluates the cubic at dx = c, where the exact
	// zero rounds a few ulp below the axis; that residue must be snapped
	// to zero without registering as clamped geometry.
	s, err = profile.Build(baseParams())
	require.NoError(t, err)
	assert.Zero(t, s.Clamped, "well-posed geometry clamps nothing")
	assert.Equal(t, 0.0, s.SternRadius(), "tip rounding residue snaps to zero")
}

// TestBuild_CutPlaneRadii checks the as-built radii accessors: zero offsets
// close both tips at the axis.
func TestBuild_CutPlaneRadii(t *testing.T) {
	s, err := profile.Build(baseParams())
	require.NoError(t, err)
	assert.Equal(t, 0.0, s.FrontRadius(), "untruncated nose tip sits on the axis")
	assert.InDelta(t, 0.0, s.SternRadius(), 1e-12, "tail cubic reaches zero at dx=c")

	p := baseParams()
	p.NoseOffset = 0.1
	s, err = profile.Build(p)
	require.NoError(t, err)
	assert.Positive(t, s.FrontRadius(), "truncated nose leaves a flat cut above the axis")
	assert.Less(t, s.FrontRadius(), 0.1)
}

// TestBuild_Areas spot-checks the cross-sectional area helper.
func TestBuild_Areas(t *testing.T) {
	s, err := profile.Build(baseParams())
	require.NoError(t, err)

	areas := s.Areas()
	require.Len(t, areas, len(s.Radii))
	mid := len(areas) / 2
	assert.Equal(t, math.Pi*s.Radii[mid]*s.Radii[mid], areas[mid])
}
