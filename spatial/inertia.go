package spatial

import (
	"math"

	"github.com/golang/geo/r3"
	"go.viam.com/dynamics/dynerr"
)

// Inertia is the 6x6 spatial rigid-body inertia of a single body,
// expressed in a joint's local frame. Rather than storing the full dense
// 6x6 matrix, it stores (mass, center of mass, rotational inertia about
// the frame origin), which keeps Apply and Add constant time.
type Inertia struct {
	Mass   float64
	COM    r3.Vector
	Origin Symmetric3 // rotational inertia about the frame origin, not the COM
}

// ZeroInertia returns the inertia of a massless, dimensionless body.
func ZeroInertia() Inertia {
	return Inertia{}
}

// NewInertia builds an Inertia from mass, center of mass, and the
// rotational inertia tensor about the center of mass.
func NewInertia(mass float64, com r3.Vector, aboutCOM Symmetric3) Inertia {
	return Inertia{Mass: mass, COM: com, Origin: aboutCOM.Add(outerSelf(com, mass))}
}

// NewSphereInertia builds the inertia of a uniform solid sphere of the
// given mass and radius, centered at the frame origin.
func NewSphereInertia(mass, radius float64) (Inertia, error) {
	if mass <= 0 {
		return Inertia{}, dynerr.NewInvalidParameter("mass")
	}
	if radius <= 0 {
		return Inertia{}, dynerr.NewInvalidParameter("radius")
	}
	i := (2.0 / 5.0) * mass * radius * radius
	return NewInertia(mass, r3.Vector{}, NewSymmetric3(i, i, i, 0, 0, 0)), nil
}

// Apply computes the spatial momentum/force I*m for a spatial motion m,
// using Featherstone's block formula for (mass, com, rotational inertia
// about the origin):
//
//	f.Linear  = mass*(m.Linear + m.Angular x com)
//	f.Angular = mass*(com x m.Linear) + Origin*m.Angular
func (i Inertia) Apply(m Motion) Force {
	linear := m.Linear.Add(m.Angular.Cross(i.COM)).Mul(i.Mass)
	angular := i.COM.Cross(m.Linear).Mul(i.Mass).Add(i.Origin.MulVector(m.Angular))
	return Force{Linear: linear, Angular: angular}
}

// Add returns the inertia of the union of the two bodies (their
// spatial inertias simply add).
func (i Inertia) Add(other Inertia) Inertia {
	totalMass := i.Mass + other.Mass
	var com r3.Vector
	if totalMass != 0 {
		com = i.COM.Mul(i.Mass).Add(other.COM.Mul(other.Mass)).Mul(1 / totalMass)
	}
	return Inertia{
		Mass:   totalMass,
		COM:    com,
		Origin: i.Origin.Add(other.Origin),
	}
}

// Transport re-expresses i, currently given about its own frame's
// origin, in a frame related to it by x (x is the placement of i's
// frame in the target frame). Used by Model.AppendBodyToJoint when a
// body's inertia is authored about a placement offset from its joint.
func (i Inertia) Transport(x Pose) Inertia {
	aboutCOM := i.Origin.Add(outerSelf(i.COM, -i.Mass))
	rotatedAboutCOM := aboutCOM.Conjugate(x.Rotation)
	com := x.Point(i.COM)
	return Inertia{
		Mass:   i.Mass,
		COM:    com,
		Origin: rotatedAboutCOM.Add(outerSelf(com, i.Mass)),
	}
}

// IsPositiveDefinite reports whether the inertia's Origin block has a
// strictly positive trace and mass. It is a cheap necessary check, not a
// full positive-definiteness test; model construction does not call it.
func (i Inertia) IsPositiveDefinite() bool {
	trace := i.Origin.m11 + i.Origin.m22 + i.Origin.m33
	return i.Mass > 0 && trace > 0 && !math.IsNaN(trace)
}
