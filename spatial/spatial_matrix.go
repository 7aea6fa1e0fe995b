package spatial

import "github.com/golang/geo/r3"

// SpatialMatrix6 is a general dense 6x6 spatial operator: linear rows/cols
// 0-2, angular rows/cols 3-5. Unlike Inertia, which only ever stores a
// single rigid body's (mass, com, origin-inertia) compact form, an
// articulated-body inertia accumulated by ABA's backward pass is not in
// general expressible that way once the U*D^-1*U^T correction has been
// subtracted, so the backward recursion carries this dense form instead.
type SpatialMatrix6 struct {
	rows [6][6]float64
}

// ZeroSpatialMatrix6 returns the all-zero 6x6 operator.
func ZeroSpatialMatrix6() SpatialMatrix6 {
	return SpatialMatrix6{}
}

// SpatialMatrix6FromInertia expands a rigid-body Inertia into its dense
// 6x6 form, seeding the articulated inertia at the start of ABA's
// backward pass (Y_A[i] = I_i before any children are folded in).
func SpatialMatrix6FromInertia(i Inertia) SpatialMatrix6 {
	var m SpatialMatrix6
	mass := i.Mass
	c := i.COM
	// linear-linear block: mass*I_3
	m.rows[0][0], m.rows[1][1], m.rows[2][2] = mass, mass, mass
	// linear-angular block: mass*[c]x^T = -mass*[c]x ; angular-linear: mass*[c]x
	cx := skew(c)
	for r := 0; r < 3; r++ {
		for col := 0; col < 3; col++ {
			m.rows[r][3+col] = -mass * cx[r][col]
			m.rows[3+r][col] = mass * cx[r][col]
		}
	}
	// angular-angular block: Origin
	for r := 0; r < 3; r++ {
		for col := 0; col < 3; col++ {
			m.rows[3+r][3+col] = i.Origin.Get(r, col)
		}
	}
	return m
}

// At returns element (row, col), 0-indexed, 0-5 each.
func (m SpatialMatrix6) At(row, col int) float64 {
	return m.rows[row][col]
}

// Apply returns Y*m as a spatial force.
func (y SpatialMatrix6) Apply(m Motion) Force {
	v := [6]float64{m.Linear.X, m.Linear.Y, m.Linear.Z, m.Angular.X, m.Angular.Y, m.Angular.Z}
	var out [6]float64
	for r := 0; r < 6; r++ {
		var s float64
		for c := 0; c < 6; c++ {
			s += y.rows[r][c] * v[c]
		}
		out[r] = s
	}
	return Force{
		Linear:  r3.Vector{X: out[0], Y: out[1], Z: out[2]},
		Angular: r3.Vector{X: out[3], Y: out[4], Z: out[5]},
	}
}

// Add returns y + other.
func (y SpatialMatrix6) Add(other SpatialMatrix6) SpatialMatrix6 {
	var out SpatialMatrix6
	for r := 0; r < 6; r++ {
		for c := 0; c < 6; c++ {
			out.rows[r][c] = y.rows[r][c] + other.rows[r][c]
		}
	}
	return out
}

// Sub returns y - other.
func (y SpatialMatrix6) Sub(other SpatialMatrix6) SpatialMatrix6 {
	var out SpatialMatrix6
	for r := 0; r < 6; r++ {
		for c := 0; c < 6; c++ {
			out.rows[r][c] = y.rows[r][c] - other.rows[r][c]
		}
	}
	return out
}

// Outer returns the rank-1 update u * scale * u^T as a dense
// operator; used by ABA's backward pass to build U_i * D_i^-1 * U_i^T
// when D_i is a scalar (every joint in this model has nv <= 1).
func Outer(u Force, scale float64) SpatialMatrix6 {
	v := [6]float64{u.Linear.X, u.Linear.Y, u.Linear.Z, u.Angular.X, u.Angular.Y, u.Angular.Z}
	var out SpatialMatrix6
	for r := 0; r < 6; r++ {
		for c := 0; c < 6; c++ {
			out.rows[r][c] = v[r] * scale * v[c]
		}
	}
	return out
}

// basisMotions spans R^6 in the fixed (linear, angular) order used
// throughout this package.
var basisMotions = [6]Motion{
	{Linear: r3.Vector{X: 1}}, {Linear: r3.Vector{Y: 1}}, {Linear: r3.Vector{Z: 1}},
	{Angular: r3.Vector{X: 1}}, {Angular: r3.Vector{Y: 1}}, {Angular: r3.Vector{Z: 1}},
}

// ActDual transports a dense articulated inertia expressed in frame x's
// local frame into x's parent frame, i.e. the operator Y' such that for
// every motion m in the parent frame, Y'.Apply(m) == x.ActDual(y.Apply(x.ActInverse(m))).
// This is exactly Featherstone's congruence transform Y' = X* Y X^-1,
// built column by column since X* and X^-1 are already implemented as
// the Act/ActDual family rather than as materialized 6x6 matrices.
func (y SpatialMatrix6) ActDual(x Pose) SpatialMatrix6 {
	var cols [6]Force
	for k, bm := range basisMotions {
		cols[k] = x.ActDual(y.Apply(x.ActInverse(bm)))
	}
	var out SpatialMatrix6
	for c := 0; c < 6; c++ {
		out.rows[0][c] = cols[c].Linear.X
		out.rows[1][c] = cols[c].Linear.Y
		out.rows[2][c] = cols[c].Linear.Z
		out.rows[3][c] = cols[c].Angular.X
		out.rows[4][c] = cols[c].Angular.Y
		out.rows[5][c] = cols[c].Angular.Z
	}
	return out
}
