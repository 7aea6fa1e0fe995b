package spatial

import (
	"math"
	"testing"

	"github.com/golang/geo/r3"
	"go.viam.com/test"
)

func TestPoseComposeInverse(t *testing.T) {
	a := NewPose(NewRotationFromAxisAngle(r3.Vector{Z: 1}, math.Pi/3), r3.Vector{X: 1, Y: 2, Z: 3})
	id := a.Compose(a.Inverse())
	p := r3.Vector{X: 4, Y: -1, Z: 0.5}
	got := id.Point(p)
	test.That(t, got.X, test.ShouldAlmostEqual, p.X, 1e-9)
	test.That(t, got.Y, test.ShouldAlmostEqual, p.Y, 1e-9)
	test.That(t, got.Z, test.ShouldAlmostEqual, p.Z, 1e-9)
}

func TestPointTranslation(t *testing.T) {
	a := NewPose(IdentityRotation(), r3.Vector{X: 1, Y: 0, Z: 0})
	got := a.Point(r3.Vector{X: 0, Y: 0, Z: 0})
	test.That(t, got.X, test.ShouldAlmostEqual, 1.0)
	test.That(t, got.Y, test.ShouldAlmostEqual, 0.0)
	test.That(t, got.Z, test.ShouldAlmostEqual, 0.0)
}

func TestActActInverseRoundTrip(t *testing.T) {
	x := NewPose(NewRotationFromAxisAngle(r3.Vector{X: 0.1, Y: 0.4, Z: 1}, 0.9), r3.Vector{X: 1, Y: -2, Z: 0.3})
	m := Motion{Linear: r3.Vector{X: 1, Y: 2, Z: 3}, Angular: r3.Vector{X: 0.1, Y: 0.2, Z: 0.3}}
	got := x.ActInverse(x.Act(m))
	test.That(t, got.Linear.X, test.ShouldAlmostEqual, m.Linear.X, 1e-9)
	test.That(t, got.Linear.Y, test.ShouldAlmostEqual, m.Linear.Y, 1e-9)
	test.That(t, got.Linear.Z, test.ShouldAlmostEqual, m.Linear.Z, 1e-9)
	test.That(t, got.Angular.X, test.ShouldAlmostEqual, m.Angular.X, 1e-9)
	test.That(t, got.Angular.Y, test.ShouldAlmostEqual, m.Angular.Y, 1e-9)
	test.That(t, got.Angular.Z, test.ShouldAlmostEqual, m.Angular.Z, 1e-9)
}

func TestActDualActInverseDualRoundTrip(t *testing.T) {
	x := NewPose(NewRotationFromAxisAngle(r3.Vector{X: 0.2, Y: 0.1, Z: 0.3}, 1.4), r3.Vector{X: -1, Y: 2, Z: 0.2})
	f := Force{Linear: r3.Vector{X: 1, Y: -1, Z: 2}, Angular: r3.Vector{X: 0.4, Y: 0.2, Z: -0.1}}
	got := x.ActInverseDual(x.ActDual(f))
	test.That(t, got.Linear.X, test.ShouldAlmostEqual, f.Linear.X, 1e-9)
	test.That(t, got.Angular.Z, test.ShouldAlmostEqual, f.Angular.Z, 1e-9)
}
