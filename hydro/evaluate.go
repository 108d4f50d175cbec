// Package hydro - the unified entry point for one full profile evaluation.
package hydro

import "github.com/katalvlaran/hullform/profile"

// Evaluate runs the full pipeline for one parameter set: profile.Build
// (validation → optional inversion → sampling) followed by Metrics.
//
// It is the single request/response contract of the library: one Params
// value (plus profile options) in, one Sample and one Result out, or a
// typed failure. Each call is independent and stateless, so concurrent
// callers may invoke it simultaneously with their own Params values.
//
// The non-fatal tail-inversion warning, when present, rides on
// Sample.Warning; Evaluate still returns the best-effort geometry and its
// metrics in that case.
//
// Errors: those of profile.Build and Metrics; see the package docs.
//
// Complexity: O(Resolution) time and memory.
func Evaluate(p profile.Params, flow *Flow, opts ...profile.Option) (*profile.Sample, Result, error) {
	s, err := profile.Build(p, opts...)
	if err != nil {
		return nil, Result{}, err
	}

	res, err := Metrics(s, flow)
	if err != nil {
		return nil, Result{}, err
	}

	return s, res, nil
}
