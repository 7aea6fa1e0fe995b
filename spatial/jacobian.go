package spatial

import (
	"github.com/golang/geo/r3"
	"gonum.org/v1/gonum/mat"
)

// Jacobian is a 6xnv matrix of spatial motion columns, one per degree of
// freedom of the model it was computed for. It is backed by *mat.Dense so
// that downstream linear-algebra consumers (least-squares, pseudoinverse)
// can operate on it directly with gonum.
type Jacobian struct {
	m *mat.Dense
}

// NewJacobian allocates a zeroed 6xnv Jacobian.
func NewJacobian(nv int) Jacobian {
	return Jacobian{m: mat.NewDense(6, nv, nil)}
}

// NV returns the number of columns (degrees of freedom).
func (j Jacobian) NV() int {
	_, c := j.m.Dims()
	return c
}

// SetColumn overwrites column i with the spatial motion m.
func (j Jacobian) SetColumn(i int, m Motion) {
	j.m.Set(0, i, m.Linear.X)
	j.m.Set(1, i, m.Linear.Y)
	j.m.Set(2, i, m.Linear.Z)
	j.m.Set(3, i, m.Angular.X)
	j.m.Set(4, i, m.Angular.Y)
	j.m.Set(5, i, m.Angular.Z)
}

// Column returns column i as a spatial motion.
func (j Jacobian) Column(i int) Motion {
	return Motion{
		Linear:  r3.Vector{X: j.m.At(0, i), Y: j.m.At(1, i), Z: j.m.At(2, i)},
		Angular: r3.Vector{X: j.m.At(3, i), Y: j.m.At(4, i), Z: j.m.At(5, i)},
	}
}

// Dense exposes the underlying gonum matrix for consumers that need raw
// linear algebra (e.g. damped-least-squares solves for velocity IK).
func (j Jacobian) Dense() *mat.Dense {
	return j.m
}
