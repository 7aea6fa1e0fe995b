package spatial

import "github.com/golang/geo/r3"

// Symmetric3 is a symmetric 3x3 matrix, stored as its six unique
// elements [m11, m22, m33, m12, m13, m23].
type Symmetric3 struct {
	m11, m22, m33 float64
	m12, m13, m23 float64
}

// NewSymmetric3 builds a Symmetric3 from its diagonal and off-diagonal entries.
func NewSymmetric3(m11, m22, m33, m12, m13, m23 float64) Symmetric3 {
	return Symmetric3{m11: m11, m22: m22, m33: m33, m12: m12, m13: m13, m23: m23}
}

// Symmetric3FromDiagonal builds a diagonal Symmetric3 matrix.
func Symmetric3FromDiagonal(d r3.Vector) Symmetric3 {
	return Symmetric3{m11: d.X, m22: d.Y, m33: d.Z}
}

// Get returns element (row, col), 0-indexed.
func (s Symmetric3) Get(row, col int) float64 {
	switch {
	case row == 0 && col == 0:
		return s.m11
	case row == 1 && col == 1:
		return s.m22
	case row == 2 && col == 2:
		return s.m33
	case (row == 0 && col == 1) || (row == 1 && col == 0):
		return s.m12
	case (row == 0 && col == 2) || (row == 2 && col == 0):
		return s.m13
	case (row == 1 && col == 2) || (row == 2 && col == 1):
		return s.m23
	default:
		panic("spatial: Symmetric3 index out of bounds")
	}
}

// MulVector returns S*v.
func (s Symmetric3) MulVector(v r3.Vector) r3.Vector {
	return r3.Vector{
		X: s.m11*v.X + s.m12*v.Y + s.m13*v.Z,
		Y: s.m12*v.X + s.m22*v.Y + s.m23*v.Z,
		Z: s.m13*v.X + s.m23*v.Y + s.m33*v.Z,
	}
}

// Add returns s + other.
func (s Symmetric3) Add(other Symmetric3) Symmetric3 {
	return Symmetric3{
		m11: s.m11 + other.m11, m22: s.m22 + other.m22, m33: s.m33 + other.m33,
		m12: s.m12 + other.m12, m13: s.m13 + other.m13, m23: s.m23 + other.m23,
	}
}

// Conjugate returns R*s*R^T, the rotation of a symmetric tensor into a
// new frame's orientation (no translation involved; used to rotate a
// COM-centered inertia tensor before re-applying the parallel axis
// theorem about a new origin).
func (s Symmetric3) Conjugate(r Rotation) Symmetric3 {
	var sm [3][3]float64
	for row := 0; row < 3; row++ {
		for col := 0; col < 3; col++ {
			sm[row][col] = s.Get(row, col)
		}
	}
	var rs [3][3]float64
	for row := 0; row < 3; row++ {
		for col := 0; col < 3; col++ {
			var acc float64
			for k := 0; k < 3; k++ {
				acc += r.At(row, k) * sm[k][col]
			}
			rs[row][col] = acc
		}
	}
	var out [3][3]float64
	for row := 0; row < 3; row++ {
		for col := 0; col < 3; col++ {
			var acc float64
			for k := 0; k < 3; k++ {
				acc += rs[row][k] * r.At(col, k) // times R^T
			}
			out[row][col] = acc
		}
	}
	return Symmetric3{
		m11: out[0][0], m22: out[1][1], m33: out[2][2],
		m12: (out[0][1] + out[1][0]) / 2,
		m13: (out[0][2] + out[2][0]) / 2,
		m23: (out[1][2] + out[2][1]) / 2,
	}
}

// outerSelf returns m*[c]x*[c]x^T as a Symmetric3, the parallel-axis
// correction used to shift a COM inertia to one about the origin.
func outerSelf(c r3.Vector, mass float64) Symmetric3 {
	// [c]x*[c]x^T = (c.c)*I - c*c^T, the standard parallel-axis identity.
	d := c.Dot(c)
	return Symmetric3{
		m11: mass * (d - c.X*c.X), m22: mass * (d - c.Y*c.Y), m33: mass * (d - c.Z*c.Z),
		m12: mass * (-c.X * c.Y), m13: mass * (-c.X * c.Z), m23: mass * (-c.Y * c.Z),
	}
}
