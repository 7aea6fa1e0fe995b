package spatial

import (
	"testing"

	"github.com/golang/geo/r3"
	"go.viam.com/test"
)

func TestMotionCross(t *testing.T) {
	m1 := Motion{Angular: r3.Vector{Z: 1}}
	m2 := Motion{Linear: r3.Vector{X: 1}}
	got := m1.Cross(m2)
	// omega x v2 = (0,0,1) x (1,0,0) = (0,1,0)
	test.That(t, got.Linear.X, test.ShouldAlmostEqual, 0.0)
	test.That(t, got.Linear.Y, test.ShouldAlmostEqual, 1.0)
	test.That(t, got.Linear.Z, test.ShouldAlmostEqual, 0.0)
	test.That(t, got.Angular.Norm(), test.ShouldAlmostEqual, 0.0)
}

func TestMotionCrossForceMatchesCrossStar(t *testing.T) {
	m := Motion{Linear: r3.Vector{X: 0.5, Y: -1, Z: 2}, Angular: r3.Vector{X: 1, Y: 0.3, Z: -0.2}}
	other := Motion{Linear: r3.Vector{X: 1, Y: 2, Z: 3}, Angular: r3.Vector{X: -1, Y: 0.5, Z: 0.1}}

	asForce := m.CrossForce(Force{Linear: other.Linear, Angular: other.Angular})
	star := m.CrossStar(other)
	test.That(t, star.Linear.X, test.ShouldAlmostEqual, asForce.Linear.X, 1e-12)
	test.That(t, star.Angular.Z, test.ShouldAlmostEqual, asForce.Angular.Z, 1e-12)
}

func TestMotionInner(t *testing.T) {
	m := Motion{Linear: r3.Vector{X: 1, Y: 2, Z: 3}, Angular: r3.Vector{X: 1, Y: 0, Z: 0}}
	test.That(t, m.Inner(m), test.ShouldAlmostEqual, 1.0+4.0+9.0+1.0)
}
