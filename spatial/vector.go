// Package spatial implements the spatial-algebra primitives used by the
// joint models and the Model/Data algorithms: 3-vectors (via
// github.com/golang/geo/r3), SO(3) rotations, SE(3) rigid transforms, 6D
// motion and force vectors, and 6x6 rigid-body inertia.
package spatial

import "github.com/golang/geo/r3"

// skew returns the 3x3 skew-symmetric ("cross-product") matrix [v]x such
// that [v]x * w == v.Cross(w) for any w.
func skew(v r3.Vector) [3][3]float64 {
	return [3][3]float64{
		{0, -v.Z, v.Y},
		{v.Z, 0, -v.X},
		{-v.Y, v.X, 0},
	}
}
