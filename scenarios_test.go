package dynamics

import (
	"math"
	"math/rand"
	"testing"

	"github.com/golang/geo/r3"
	"go.viam.com/dynamics/joint"
	"go.viam.com/dynamics/spatial"
	"go.viam.com/test"
)

// Scenario 1: single revolute about X, body a sphere(m=1, r=0.1) at the
// joint's own origin. q = [pi/2] must produce a pure rotation about X,
// zero translation.
func TestScenarioSingleRevoluteX(t *testing.T) {
	m := NewModel("pendulum")
	idx, err := m.AddJoint(rootIndex, joint.NewRevoluteX("j1"), spatial.IdentityPose(), "j1")
	test.That(t, err, test.ShouldBeNil)
	sphere, err := spatial.NewSphereInertia(1, 0.1)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, m.AppendBodyToJoint(idx, sphere, spatial.IdentityPose()), test.ShouldBeNil)

	d := m.CreateData()
	test.That(t, ForwardKinematics(m, d, []float64{math.Pi / 2}, nil, nil), test.ShouldBeNil)

	test.That(t, d.OMi[idx].Rotation.Angle(), test.ShouldAlmostEqual, math.Pi/2, 1e-12)
	test.That(t, d.OMi[idx].Translation.Norm(), test.ShouldAlmostEqual, 0.0, 1e-12)
}

// Scenario 2: two revolute-Z joints, each placed by translating (1,0,0)
// from its parent. q = [pi/2, 0]. Because oMi[i] = oMi[parent]*X_T(i)*X_J_i,
// joint 2's (1,0,0) offset is expressed in joint 1's already-rotated
// frame, so the tip lands at (1,1,0), not merely the offset rotated in
// isolation.
func TestScenarioFKTwoLinks(t *testing.T) {
	m := twoLinkRevoluteZModel(t)
	d := m.CreateData()
	test.That(t, ForwardKinematics(m, d, []float64{math.Pi / 2, 0}, nil, nil), test.ShouldBeNil)

	tip := d.OMi[2].Translation
	test.That(t, tip.X, test.ShouldAlmostEqual, 1.0, 1e-12)
	test.That(t, tip.Y, test.ShouldAlmostEqual, 1.0, 1e-12)
	test.That(t, tip.Z, test.ShouldAlmostEqual, 0.0, 1e-12)
}

func twoLinkRevoluteZModel(t *testing.T) *Model {
	t.Helper()
	m := NewModel("arm")
	offset := spatial.NewPose(spatial.IdentityRotation(), r3.Vector{X: 1})
	j1, err := m.AddJoint(rootIndex, joint.NewRevoluteZ("j1"), offset, "j1")
	test.That(t, err, test.ShouldBeNil)
	j2, err := m.AddJoint(j1, joint.NewRevoluteZ("j2"), offset, "j2")
	test.That(t, err, test.ShouldBeNil)
	test.That(t, j1, test.ShouldEqual, 1)
	test.That(t, j2, test.ShouldEqual, 2)

	sphere, err := spatial.NewSphereInertia(1, 0.05)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, m.AppendBodyToJoint(j1, sphere, spatial.IdentityPose()), test.ShouldBeNil)
	test.That(t, m.AppendBodyToJoint(j2, sphere, spatial.IdentityPose()), test.ShouldBeNil)
	return m
}

func pendulumModel(t *testing.T) *Model {
	t.Helper()
	m := NewModel("pendulum")
	idx, err := m.AddJoint(rootIndex, joint.NewRevoluteY("j1"), spatial.IdentityPose(), "j1")
	test.That(t, err, test.ShouldBeNil)
	inertia := spatial.NewInertia(1, r3.Vector{Z: -1}, spatial.Symmetric3FromDiagonal(r3.Vector{X: 1e-4, Y: 1e-4, Z: 1e-4}))
	test.That(t, m.AppendBodyToJoint(idx, inertia, spatial.IdentityPose()), test.ShouldBeNil)
	return m
}

// Scenario 3: stationary 1-dof pendulum hanging straight down — the COM
// is directly below the pivot, so gravity produces no torque.
func TestScenarioRNEAStationaryPendulum(t *testing.T) {
	m := pendulumModel(t)
	d := m.CreateData()
	err := InverseDynamics(m, d, []float64{0}, []float64{0}, []float64{0}, nil)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, d.Tau[0], test.ShouldAlmostEqual, 0.0, 1e-10)
}

// Scenario 4: the same pendulum rotated to horizontal (q=pi/2); gravity
// now produces a torque of m*g*L = 9.81.
func TestScenarioRNEAHorizontalPendulum(t *testing.T) {
	m := pendulumModel(t)
	d := m.CreateData()
	err := InverseDynamics(m, d, []float64{math.Pi / 2}, []float64{0}, []float64{0}, nil)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, d.Tau[0], test.ShouldAlmostEqual, 9.81, 1e-10)
}

// Scenario 5: ABA inverts RNEA for the two-link arm at a random (q, v, a).
func TestScenarioABAInvertsRNEA(t *testing.T) {
	m := twoLinkRevoluteZModel(t)
	rng := rand.New(rand.NewSource(42))
	q := m.RandomConfiguration(rng)
	v := []float64{rng.NormFloat64(), rng.NormFloat64()}
	a := []float64{rng.NormFloat64(), rng.NormFloat64()}

	rneaData := m.CreateData()
	test.That(t, InverseDynamics(m, rneaData, q, v, a, nil), test.ShouldBeNil)

	abaData := m.CreateData()
	test.That(t, ForwardDynamics(m, abaData, q, v, rneaData.Tau, nil), test.ShouldBeNil)

	for i := range a {
		test.That(t, abaData.Ddq[i], test.ShouldAlmostEqual, a[i], 1e-8)
	}
}

// Scenario 6: integrating a continuous joint by a quarter turn moves
// (1,0) to (0,1) and preserves unit norm.
func TestScenarioIntegrateContinuousJoint(t *testing.T) {
	j := joint.NewContinuousZ("wheel")
	q, err := j.Integrate([]float64{1, 0}, []float64{math.Pi / 2})
	test.That(t, err, test.ShouldBeNil)
	test.That(t, q[0], test.ShouldAlmostEqual, 0.0, 1e-9)
	test.That(t, q[1], test.ShouldAlmostEqual, 1.0, 1e-9)
	norm := math.Hypot(q[0], q[1])
	test.That(t, norm, test.ShouldBeBetween, 0.999, 1.001)
}

// Property 4: zero gravity yields zero torque for any configuration
// when v = a = 0.
func TestPropertyZeroGravityZeroTorque(t *testing.T) {
	m := pendulumModel(t)
	m.Gravity = r3.Vector{}
	d := m.CreateData()
	test.That(t, InverseDynamics(m, d, []float64{1.3}, []float64{0}, []float64{0}, nil), test.ShouldBeNil)
	test.That(t, d.Tau[0], test.ShouldAlmostEqual, 0.0, 1e-12)
}

// Property 5: integrate round-trips for small v on a revolute joint.
func TestPropertyIntegrateRoundTrip(t *testing.T) {
	j := joint.NewRevoluteZ("j")
	q := []float64{0.4}
	v := []float64{0.01}
	forward, err := j.Integrate(q, v)
	test.That(t, err, test.ShouldBeNil)
	back, err := j.Integrate(forward, []float64{-v[0]})
	test.That(t, err, test.ShouldBeNil)
	test.That(t, back[0], test.ShouldAlmostEqual, q[0], 1e-12)
}

// Property 7: every real joint's parent index is strictly less than its
// own, by construction (AddJoint only accepts an already-present parent).
func TestPropertyTopologicalOrder(t *testing.T) {
	m := twoLinkRevoluteZModel(t)
	for i := 1; i < m.NJoints(); i++ {
		test.That(t, m.Parent(i), test.ShouldBeLessThan, i)
	}
}
