package spatial

import (
	"math"

	"github.com/golang/geo/r3"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/num/quat"
)

// Rotation is an element of SO(3), backed by a dense 3x3 matrix so that
// composition is a plain matrix multiply and inversion is a transpose.
type Rotation struct {
	m *mat.Dense
}

// IdentityRotation returns R = I_3.
func IdentityRotation() Rotation {
	return Rotation{m: identity3()}
}

func identity3() *mat.Dense {
	d := mat.NewDense(3, 3, nil)
	d.Set(0, 0, 1)
	d.Set(1, 1, 1)
	d.Set(2, 2, 1)
	return d
}

// NewRotationFromAxisAngle builds the rotation of `angle` radians about
// `axis` (need not be normalized; the zero vector yields the identity)
// using Rodrigues' formula.
func NewRotationFromAxisAngle(axis r3.Vector, angle float64) Rotation {
	n := axis.Norm()
	if n == 0 {
		return IdentityRotation()
	}
	a := axis.Mul(1 / n)
	k := skew(a)
	c, s := math.Cos(angle), math.Sin(angle)

	comp := [3]float64{a.X, a.Y, a.Z}
	d := mat.NewDense(3, 3, nil)
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			id := delta(i, j)
			d.Set(i, j, id*c+(1-c)*comp[i]*comp[j]+s*k[i][j])
		}
	}
	return Rotation{m: d}
}

func delta(i, j int) float64 {
	if i == j {
		return 1
	}
	return 0
}

// NewRotationFromEuler builds R = Rz(yaw) * Ry(pitch) * Rx(roll), the
// standard intrinsic roll-pitch-yaw convention.
func NewRotationFromEuler(roll, pitch, yaw float64) Rotation {
	rx := NewRotationFromAxisAngle(r3.Vector{X: 1}, roll)
	ry := NewRotationFromAxisAngle(r3.Vector{Y: 1}, pitch)
	rz := NewRotationFromAxisAngle(r3.Vector{Z: 1}, yaw)
	return rz.Compose(ry).Compose(rx)
}

// Compose returns r * other (apply other first, then r).
func (r Rotation) Compose(other Rotation) Rotation {
	out := mat.NewDense(3, 3, nil)
	out.Mul(r.m, other.m)
	return Rotation{m: out}
}

// Inverse returns the transpose of r, which is r's inverse since R is orthonormal.
func (r Rotation) Inverse() Rotation {
	out := mat.NewDense(3, 3, nil)
	out.CloneFrom(r.m.T())
	return Rotation{m: out}
}

// Apply rotates v by r.
func (r Rotation) Apply(v r3.Vector) r3.Vector {
	x := r.m.At(0, 0)*v.X + r.m.At(0, 1)*v.Y + r.m.At(0, 2)*v.Z
	y := r.m.At(1, 0)*v.X + r.m.At(1, 1)*v.Y + r.m.At(1, 2)*v.Z
	z := r.m.At(2, 0)*v.X + r.m.At(2, 1)*v.Y + r.m.At(2, 2)*v.Z
	return r3.Vector{X: x, Y: y, Z: z}
}

// At returns element (i, j) of the underlying 3x3 matrix.
func (r Rotation) At(i, j int) float64 {
	return r.m.At(i, j)
}

// Angle returns the rotation angle in [0, pi], derived from the trace.
func (r Rotation) Angle() float64 {
	tr := r.m.At(0, 0) + r.m.At(1, 1) + r.m.At(2, 2)
	cos := (tr - 1) / 2
	cos = math.Max(-1, math.Min(1, cos))
	return math.Acos(cos)
}

// Quaternion converts r to a unit quaternion via the standard
// trace-based extraction, falling back to a per-axis form near the
// pi-angle singularity where the trace method loses precision.
func (r Rotation) Quaternion() quat.Number {
	tr := r.m.At(0, 0) + r.m.At(1, 1) + r.m.At(2, 2)
	w := math.Sqrt(math.Max(0, 1+tr)) / 2
	var x, y, z float64
	if w > 1e-8 {
		x = (r.m.At(2, 1) - r.m.At(1, 2)) / (4 * w)
		y = (r.m.At(0, 2) - r.m.At(2, 0)) / (4 * w)
		z = (r.m.At(1, 0) - r.m.At(0, 1)) / (4 * w)
	} else {
		// Fallback for angles near pi, where w is near zero: the largest
		// component comes from the diagonal, the other two (with their
		// signs) from the symmetric off-diagonal sums.
		x = math.Sqrt(math.Max(0, 1+r.m.At(0, 0)-r.m.At(1, 1)-r.m.At(2, 2))) / 2
		y = math.Sqrt(math.Max(0, 1-r.m.At(0, 0)+r.m.At(1, 1)-r.m.At(2, 2))) / 2
		z = math.Sqrt(math.Max(0, 1-r.m.At(0, 0)-r.m.At(1, 1)+r.m.At(2, 2))) / 2
		switch {
		case x >= y && x >= z:
			y = (r.m.At(0, 1) + r.m.At(1, 0)) / (4 * x)
			z = (r.m.At(0, 2) + r.m.At(2, 0)) / (4 * x)
		case y >= z:
			x = (r.m.At(0, 1) + r.m.At(1, 0)) / (4 * y)
			z = (r.m.At(1, 2) + r.m.At(2, 1)) / (4 * y)
		default:
			x = (r.m.At(0, 2) + r.m.At(2, 0)) / (4 * z)
			y = (r.m.At(1, 2) + r.m.At(2, 1)) / (4 * z)
		}
	}
	return quat.Number{Real: w, Imag: x, Jmag: y, Kmag: z}
}

// FromQuaternion builds a Rotation from a (not necessarily unit) quaternion.
func FromQuaternion(q quat.Number) Rotation {
	n := quat.Abs(q)
	if n == 0 {
		return IdentityRotation()
	}
	q = quat.Scale(1/n, q)
	w, x, y, z := q.Real, q.Imag, q.Jmag, q.Kmag

	d := mat.NewDense(3, 3, nil)
	d.Set(0, 0, 1-2*(y*y+z*z))
	d.Set(0, 1, 2*(x*y-z*w))
	d.Set(0, 2, 2*(x*z+y*w))
	d.Set(1, 0, 2*(x*y+z*w))
	d.Set(1, 1, 1-2*(x*x+z*z))
	d.Set(1, 2, 2*(y*z-x*w))
	d.Set(2, 0, 2*(x*z-y*w))
	d.Set(2, 1, 2*(y*z+x*w))
	d.Set(2, 2, 1-2*(x*x+y*y))
	return Rotation{m: d}
}

// Flip returns the antipodal quaternion (-q), which represents the same
// rotation; used to pick the shorter-angle representative when comparing
// or interpolating between two quaternions.
func Flip(q quat.Number) quat.Number {
	return quat.Scale(-1, q)
}
