package hydro_test

import (
	"fmt"

	"github.com/katalvlaran/hullform/hydro"
	"github.com/katalvlaran/hullform/profile"
)

// //////////////////////////////////////////////////////////////////////////////
// ExampleEvaluate
// //////////////////////////////////////////////////////////////////////////////
//
// Scenario:
//
//	One-call evaluation of a 1.2 m hull at 2 m/s in seawater: geometry,
//	hydrostatics, and the ITTC-57 friction estimate together.
//
// Use case:
//
//	A design UI recomputing everything on each parameter change.
//
// Complexity: O(R) time and memory.
func ExampleEvaluate() {
	p := profile.Params{
		Diameter:       0.2,
		HeadExponent:   2,
		HeadLength:     0.3,
		CylinderLength: 0.5,
		TailLength:     0.4,
		TailAngle:      0.1745,
	}
	flow := &hydro.Flow{Speed: 2, Density: 1030, Viscosity: 1.19e-6}

	s, res, err := hydro.Evaluate(p, flow)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Printf("stations=%d\n", len(s.Stations))
	fmt.Printf("L/D=%.1f\n", res.LengthOverDiameter)
	fmt.Printf("volume between cylinder and bounding cylinder: %t\n",
		res.Volume > 0.0157 && res.Volume < 0.0377)
	fmt.Printf("CB defined: %t\n", res.CBDefined)
	fmt.Printf("friction computed: %t\n", res.Friction != nil)
	// Output:
	// stations=598
	// L/D=6.0
	// volume between cylinder and bounding cylinder: true
	// CB defined: true
	// friction computed: true
}
