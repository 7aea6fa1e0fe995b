package spatial

import "github.com/golang/geo/r3"

// Pose is an SE(3) rigid transform: a rotation R and a translation p,
// acting on points as p' = R*p_in + p.
type Pose struct {
	Rotation    Rotation
	Translation r3.Vector
}

// IdentityPose returns (R, p) = (I, 0).
func IdentityPose() Pose {
	return Pose{Rotation: IdentityRotation()}
}

// NewPose builds a Pose from a rotation and a translation.
func NewPose(rotation Rotation, translation r3.Vector) Pose {
	return Pose{Rotation: rotation, Translation: translation}
}

// Compose returns X = a * b: b's frame expressed in a's parent frame.
// (R, p) = (Ra*Rb, Ra*pb + pa).
func (a Pose) Compose(b Pose) Pose {
	return Pose{
		Rotation:    a.Rotation.Compose(b.Rotation),
		Translation: a.Rotation.Apply(b.Translation).Add(a.Translation),
	}
}

// Inverse returns X^-1 = (R^T, -R^T*p).
func (a Pose) Inverse() Pose {
	rInv := a.Rotation.Inverse()
	return Pose{
		Rotation:    rInv,
		Translation: rInv.Apply(a.Translation).Mul(-1),
	}
}

// Point transforms a 3D point from the local frame to the parent frame.
func (a Pose) Point(p r3.Vector) r3.Vector {
	return a.Rotation.Apply(p).Add(a.Translation)
}
