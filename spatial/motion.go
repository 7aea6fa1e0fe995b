package spatial

import "github.com/golang/geo/r3"

// Motion is a 6D spatial velocity/acceleration vector, partitioned into a
// linear part and an angular part.
type Motion struct {
	Linear  r3.Vector
	Angular r3.Vector
}

// ZeroMotion returns the zero spatial motion.
func ZeroMotion() Motion { return Motion{} }

// MotionFromRotationalAxis builds the spatial motion basis column for a
// revolute/continuous joint whose angular velocity is along axis.
func MotionFromRotationalAxis(axis r3.Vector) Motion {
	return Motion{Angular: axis}
}

// MotionFromTranslationalAxis builds the spatial motion basis column for
// a prismatic joint whose linear velocity is along axis.
func MotionFromTranslationalAxis(axis r3.Vector) Motion {
	return Motion{Linear: axis}
}

// Add returns m + other, componentwise.
func (m Motion) Add(other Motion) Motion {
	return Motion{Linear: m.Linear.Add(other.Linear), Angular: m.Angular.Add(other.Angular)}
}

// Scale returns m * s.
func (m Motion) Scale(s float64) Motion {
	return Motion{Linear: m.Linear.Mul(s), Angular: m.Angular.Mul(s)}
}

// Cross computes the spatial motion cross product m x other:
// (omega1 x v2 + v1 x omega2, omega1 x omega2).
func (m Motion) Cross(other Motion) Motion {
	return Motion{
		Linear:  m.Angular.Cross(other.Linear).Add(m.Linear.Cross(other.Angular)),
		Angular: m.Angular.Cross(other.Angular),
	}
}

// CrossForce computes the dual cross product m x* f used to transport a
// spatial force by a spatial velocity: (omega x f, omega x n + v x f).
func (m Motion) CrossForce(f Force) Force {
	return Force{
		Linear:  m.Angular.Cross(f.Linear),
		Angular: m.Angular.Cross(f.Angular).Add(m.Linear.Cross(f.Linear)),
	}
}

// CrossStar computes the dual motion cross product m x* other for an
// operand held as a Motion. RNEA/ABA do not call it: their
// velocity-product bias v x (S*v_i) uses Cross, and their v x* h term
// uses CrossForce. It equals -cross_matrix(m)^T * other, and is defined
// directly here in terms of CrossForce so the transpose is never
// materialized:
//
//	(m x* other).Linear  = m.Angular x other.Linear
//	(m x* other).Angular = m.Angular x other.Angular + m.Linear x other.Linear
//
// which is exactly CrossForce reinterpreted over a Motion operand; the
// algebra is identical because -cross_matrix^T applied to a 6-vector has
// the same block structure as the dual-force action.
func (m Motion) CrossStar(other Motion) Motion {
	f := m.CrossForce(Force{Linear: other.Linear, Angular: other.Angular})
	return Motion{Linear: f.Linear, Angular: f.Angular}
}

// Inner returns the inner product of the two 6-vectors.
func (m Motion) Inner(other Motion) float64 {
	return m.Linear.Dot(other.Linear) + m.Angular.Dot(other.Angular)
}

// DotForce returns the pairing of a motion with a force, S^T*F in
// Featherstone's notation: the work done by f through the velocity m.
func (m Motion) DotForce(f Force) float64 {
	return m.Linear.Dot(f.Linear) + m.Angular.Dot(f.Angular)
}

// Act transports m from frame a (this pose's local frame) to the parent
// frame: omega' = R*omega, v' = R*v + p x omega'.
func (x Pose) Act(m Motion) Motion {
	angular := x.Rotation.Apply(m.Angular)
	linear := x.Rotation.Apply(m.Linear).Add(x.Translation.Cross(angular))
	return Motion{Linear: linear, Angular: angular}
}

// ActInverse transports m from the parent frame into frame x's local
// frame: the inverse of Act.
func (x Pose) ActInverse(m Motion) Motion {
	angular := x.Rotation.Inverse().Apply(m.Angular)
	linear := x.Rotation.Inverse().Apply(m.Linear.Sub(x.Translation.Cross(m.Angular)))
	return Motion{Linear: linear, Angular: angular}
}
