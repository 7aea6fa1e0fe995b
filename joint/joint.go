// Package joint implements the closed set of joint variants (Revolute,
// Continuous, Prismatic, Fixed) that make up the joints of a kinematic
// tree, each exposing a uniform contract for configuration sizing,
// neutral/random sampling, transforms, motion subspaces and integration.
package joint

import (
	"math/rand"

	"go.viam.com/dynamics/spatial"
)

// Type identifies which of the closed set of joint variants a Model is.
type Type int

const (
	// TypeFixed joints have no degrees of freedom.
	TypeFixed Type = iota
	// TypeRevolute joints rotate about a fixed axis, parameterized by an angle.
	TypeRevolute
	// TypeContinuous joints rotate about a fixed axis without limits,
	// parameterized by (cos, sin) of the angle.
	TypeContinuous
	// TypePrismatic joints translate along a fixed axis.
	TypePrismatic
)

func (t Type) String() string {
	switch t {
	case TypeFixed:
		return "Fixed"
	case TypeRevolute:
		return "Revolute"
	case TypeContinuous:
		return "Continuous"
	case TypePrismatic:
		return "Prismatic"
	default:
		return "Unknown"
	}
}

// Model is the uniform contract every joint variant implements. All
// methods are pure except Update, which writes computed state into a
// Data value owned by the caller.
type Model interface {
	// Type reports which variant this is.
	Type() Type
	// NQ returns the number of configuration (position) variables.
	NQ() int
	// NV returns the number of velocity variables.
	NV() int
	// Neutral returns this joint's neutral configuration.
	Neutral() []float64
	// Random samples a configuration uniformly at random using rng.
	Random(rng *rand.Rand) []float64
	// Transform computes X_J(q), the joint's local SE(3) transform.
	Transform(q []float64) (spatial.Pose, error)
	// MotionSubspace returns the constant 6xNV matrix S, in this
	// joint's local frame, as one Motion per column.
	MotionSubspace() []spatial.Motion
	// SubspaceDual returns S^T * f, the nv-vector of generalized forces.
	SubspaceDual(f spatial.Force) []float64
	// Bias returns this joint's bias motion c (zero for every variant
	// in this closed set; reserved for future q-dependent-S variants).
	Bias() spatial.Motion
	// Integrate returns q plus the velocity v applied over one step,
	// respecting the variant's configuration parameterization.
	Integrate(q, v []float64) ([]float64, error)
	// Update writes the joint's local transform (and, if v is
	// non-nil, the local spatial velocity S*v) into data.
	Update(data *Data, q, v []float64) error
}

// Data is the mutable per-joint runtime state, sized and interpreted
// according to the joint's Model. It is owned by the root package's
// Data value, never by the joint Model itself.
type Data struct {
	Q         []float64
	V         []float64
	Transform spatial.Pose
	Velocity  spatial.Motion
}
