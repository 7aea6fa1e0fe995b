package spatial

import (
	"testing"

	"github.com/golang/geo/r3"
	"go.viam.com/test"
)

func TestJacobianColumnRoundTrip(t *testing.T) {
	j := NewJacobian(3)
	test.That(t, j.NV(), test.ShouldEqual, 3)

	m := Motion{Linear: r3.Vector{X: 1, Y: 2, Z: 3}, Angular: r3.Vector{X: 4, Y: 5, Z: 6}}
	j.SetColumn(1, m)
	got := j.Column(1)
	test.That(t, got.Linear.X, test.ShouldAlmostEqual, 1.0)
	test.That(t, got.Angular.Z, test.ShouldAlmostEqual, 6.0)

	zero := j.Column(0)
	test.That(t, zero.Linear.Norm(), test.ShouldAlmostEqual, 0.0)
}
