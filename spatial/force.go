package spatial

import "github.com/golang/geo/r3"

// Force is a 6D spatial force/wrench vector, partitioned into a linear
// force and an angular torque.
type Force struct {
	Linear  r3.Vector
	Angular r3.Vector
}

// ZeroForce returns the zero spatial force.
func ZeroForce() Force { return Force{} }

// Add returns f + other, componentwise.
func (f Force) Add(other Force) Force {
	return Force{Linear: f.Linear.Add(other.Linear), Angular: f.Angular.Add(other.Angular)}
}

// Sub returns f - other, componentwise.
func (f Force) Sub(other Force) Force {
	return Force{Linear: f.Linear.Sub(other.Linear), Angular: f.Angular.Sub(other.Angular)}
}

// Scale returns f * s.
func (f Force) Scale(s float64) Force {
	return Force{Linear: f.Linear.Mul(s), Angular: f.Angular.Mul(s)}
}

// ActDual transports f from frame x's local frame to the parent frame:
// f' = R*f, n' = R*n + p x f'.
func (x Pose) ActDual(f Force) Force {
	linear := x.Rotation.Apply(f.Linear)
	angular := x.Rotation.Apply(f.Angular).Add(x.Translation.Cross(linear))
	return Force{Linear: linear, Angular: angular}
}

// ActInverseDual transports f from the parent frame into frame x's
// local frame: the inverse of ActDual.
func (x Pose) ActInverseDual(f Force) Force {
	linear := x.Rotation.Inverse().Apply(f.Linear)
	angular := x.Rotation.Inverse().Apply(f.Angular.Sub(x.Translation.Cross(f.Linear)))
	return Force{Linear: linear, Angular: angular}
}
