package dynamics

import (
	"math/rand"
	"testing"

	"go.viam.com/dynamics/joint"
	"go.viam.com/dynamics/spatial"
	"go.viam.com/test"
)

func TestModelAddJointRejectsBadParent(t *testing.T) {
	m := NewModel("robot")
	_, err := m.AddJoint(5, joint.NewRevoluteZ("j1"), spatial.IdentityPose(), "j1")
	test.That(t, err, test.ShouldNotBeNil)
}

func TestModelAddJointRejectsDuplicateName(t *testing.T) {
	m := NewModel("robot")
	_, err := m.AddJoint(0, joint.NewRevoluteZ("j1"), spatial.IdentityPose(), "j1")
	test.That(t, err, test.ShouldBeNil)
	_, err = m.AddJoint(0, joint.NewRevoluteZ("j1"), spatial.IdentityPose(), "j1")
	test.That(t, err, test.ShouldNotBeNil)
}

func TestModelJointIndexByName(t *testing.T) {
	m := NewModel("robot")
	idx, err := m.AddJoint(0, joint.NewRevoluteZ("j1"), spatial.IdentityPose(), "j1")
	test.That(t, err, test.ShouldBeNil)
	found, ok := m.JointIndexByName("j1")
	test.That(t, ok, test.ShouldBeTrue)
	test.That(t, found, test.ShouldEqual, idx)

	_, ok = m.JointIndexByName("nonexistent")
	test.That(t, ok, test.ShouldBeFalse)
}

func singleRevoluteXModel(t *testing.T) *Model {
	t.Helper()
	m := NewModel("single")
	idx, err := m.AddJoint(0, joint.NewRevoluteX("joint1"), spatial.IdentityPose(), "joint1")
	test.That(t, err, test.ShouldBeNil)
	inertia, err := spatial.NewSphereInertia(1, 0.1)
	test.That(t, err, test.ShouldBeNil)
	err = m.AppendBodyToJoint(idx, inertia, spatial.IdentityPose())
	test.That(t, err, test.ShouldBeNil)
	return m
}

func TestNeutralAndRandomConfigurationSizes(t *testing.T) {
	m := singleRevoluteXModel(t)
	test.That(t, len(m.Neutral()), test.ShouldEqual, m.NQ())
	test.That(t, len(m.RandomConfiguration(rand.New(rand.NewSource(1)))), test.ShouldEqual, m.NQ())
}

func TestIntegrateSizeMismatch(t *testing.T) {
	m := singleRevoluteXModel(t)
	_, err := m.Integrate([]float64{0, 0}, []float64{0})
	test.That(t, err, test.ShouldNotBeNil)
}

func TestModelStringIncludesJointNames(t *testing.T) {
	m := singleRevoluteXModel(t)
	s := m.String()
	test.That(t, s, test.ShouldContainSubstring, "joint1")
}
