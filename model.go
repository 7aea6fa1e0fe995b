// Package dynamics is the computational core of a rigid-body dynamics
// library for articulated, tree-structured mechanisms. Given a Model —
// joints, their parent topology, local placements, and body inertias —
// it evaluates forward kinematics, inverse dynamics (RNEA) and forward
// dynamics (ABA), plus the integration and sampling helpers that
// accompany them.
//
// The package defines no file format, no wire protocol, and performs no
// IO or logging; it is a pure computational library meant to be
// embedded by a host application (a URDF parser, a component driver, a
// planner) that owns those concerns.
package dynamics

import (
	"math/rand"

	"github.com/golang/geo/r3"
	"go.viam.com/dynamics/dynerr"
	"go.viam.com/dynamics/joint"
	"go.viam.com/dynamics/spatial"
)

// DefaultGravity is the gravity vector used by NewModel, matching
// Earth's standard gravity pointing along -Z.
var DefaultGravity = r3.Vector{X: 0, Y: 0, Z: -9.81}

// rootIndex is the implicit world joint: every model has one, it is
// never returned from AddJoint, and it never appears in JointIndexByName.
const rootIndex = 0

// Model is the immutable description of a kinematic tree: an ordered
// joint list (index 0 is the implicit, fixed world root; every other
// joint's parent index is strictly less than its own), per-joint local
// placements, per-joint body inertias, and gravity. It is built once and
// then shared read-only across any number of concurrently-executing
// Data instances.
type Model struct {
	Name string

	jointNames []string
	parents    []int
	placements []spatial.Pose
	models     []joint.Model
	inertias   []spatial.Inertia

	qOffset []int // qOffset[i] is the start of joint i's q slice
	vOffset []int // vOffset[i] is the start of joint i's v slice
	nq      int
	nv      int

	nameIndex map[string]int

	Gravity r3.Vector
}

// NewModel builds an empty Model (just the implicit world root) with
// the given name and default gravity.
func NewModel(name string) *Model {
	m := &Model{
		Name:      name,
		Gravity:   DefaultGravity,
		nameIndex: make(map[string]int),
	}
	// index 0: implicit world root, a Fixed joint with no parent.
	m.jointNames = append(m.jointNames, "world")
	m.parents = append(m.parents, -1)
	m.placements = append(m.placements, spatial.IdentityPose())
	m.models = append(m.models, joint.NewFixed("world"))
	m.inertias = append(m.inertias, spatial.ZeroInertia())
	m.qOffset = append(m.qOffset, 0)
	m.vOffset = append(m.vOffset, 0)
	return m
}

// NQ returns the total number of configuration variables across every
// real joint (excluding the implicit root).
func (m *Model) NQ() int { return m.nq }

// NV returns the total number of velocity variables across every real
// joint (excluding the implicit root).
func (m *Model) NV() int { return m.nv }

// NJoints returns the number of entries in the joint list, including
// the implicit world root at index 0.
func (m *Model) NJoints() int { return len(m.models) }

// Parent returns the parent index of joint i. The root (index 0) has no
// parent and returns -1.
func (m *Model) Parent(i int) int { return m.parents[i] }

// Placement returns X_T(i), the constant placement of joint i's frame
// in its parent's frame.
func (m *Model) Placement(i int) spatial.Pose { return m.placements[i] }

// JointModel returns the joint.Model implementing joint i's contract.
func (m *Model) JointModel(i int) joint.Model { return m.models[i] }

// Inertia returns the spatial inertia of the body attached downstream
// of joint i, expressed in joint i's frame.
func (m *Model) Inertia(i int) spatial.Inertia { return m.inertias[i] }

// JointName returns the name of joint i.
func (m *Model) JointName(i int) string { return m.jointNames[i] }

// AddJoint appends a new joint to the model, parented at parentIndex,
// with the given local placement and joint model. It returns the new
// joint's index.
func (m *Model) AddJoint(parentIndex int, model joint.Model, placement spatial.Pose, name string) (int, error) {
	if parentIndex < 0 || parentIndex >= len(m.models) {
		return 0, dynerr.NewParentDoesNotExist(parentIndex)
	}
	if existing, ok := m.nameIndex[name]; ok {
		return 0, dynerr.NewNameAlreadyUsed(name, existing)
	}
	idx := len(m.models)
	m.jointNames = append(m.jointNames, name)
	m.parents = append(m.parents, parentIndex)
	m.placements = append(m.placements, placement)
	m.models = append(m.models, model)
	m.inertias = append(m.inertias, spatial.ZeroInertia())
	m.qOffset = append(m.qOffset, m.nq)
	m.vOffset = append(m.vOffset, m.nv)
	m.nq += model.NQ()
	m.nv += model.NV()
	m.nameIndex[name] = idx
	return idx, nil
}

// AddFrame is shorthand for AddJoint with a Fixed joint: a named,
// zero-dof frame rigidly attached to its parent.
func (m *Model) AddFrame(placement spatial.Pose, name string, parentIndex int) (int, error) {
	return m.AddJoint(parentIndex, joint.NewFixed(name), placement, name)
}

// AppendBodyToJoint attaches a body's inertia to joint index, offset
// from the joint's frame by placement. The inertia is transported so
// that Model.Inertia(index) is always expressed directly in joint
// index's own frame, as FK/RNEA/ABA require.
func (m *Model) AppendBodyToJoint(index int, inertia spatial.Inertia, placement spatial.Pose) error {
	if index < 0 || index >= len(m.models) {
		return dynerr.NewParentDoesNotExist(index)
	}
	m.inertias[index] = m.inertias[index].Add(inertia.Transport(placement))
	return nil
}

// JointIndexByName returns the index of the joint with the given name,
// and whether it was found.
func (m *Model) JointIndexByName(name string) (int, bool) {
	idx, ok := m.nameIndex[name]
	return idx, ok
}

// Neutral concatenates every real joint's neutral configuration.
func (m *Model) Neutral() []float64 {
	q := make([]float64, 0, m.nq)
	for i := 1; i < len(m.models); i++ {
		q = append(q, m.models[i].Neutral()...)
	}
	return q
}

// RandomConfiguration concatenates every real joint's randomly sampled
// configuration.
func (m *Model) RandomConfiguration(rng *rand.Rand) []float64 {
	q := make([]float64, 0, m.nq)
	for i := 1; i < len(m.models); i++ {
		q = append(q, m.models[i].Random(rng)...)
	}
	return q
}

// Integrate partitions q and v per joint and delegates to each joint's
// own integrate rule, returning the concatenated result.
func (m *Model) Integrate(q, v []float64) ([]float64, error) {
	if len(q) != m.nq {
		return nil, dynerr.NewSizeMismatch("q", m.nq, len(q))
	}
	if len(v) != m.nv {
		return nil, dynerr.NewSizeMismatch("v", m.nv, len(v))
	}
	out := make([]float64, 0, m.nq)
	for i := 1; i < len(m.models); i++ {
		jm := m.models[i]
		qi := q[m.qOffset[i] : m.qOffset[i]+jm.NQ()]
		vi := v[m.vOffset[i] : m.vOffset[i]+jm.NV()]
		qNext, err := jm.Integrate(qi, vi)
		if err != nil {
			return nil, err
		}
		out = append(out, qNext...)
	}
	return out, nil
}

// qSlice returns joint i's slice of q.
func (m *Model) qSlice(q []float64, i int) []float64 {
	jm := m.models[i]
	return q[m.qOffset[i] : m.qOffset[i]+jm.NQ()]
}

// vSlice returns joint i's slice of v (or tau, ddq — anything sized by nv).
func (m *Model) vSlice(v []float64, i int) []float64 {
	jm := m.models[i]
	return v[m.vOffset[i] : m.vOffset[i]+jm.NV()]
}

// String renders a short debug summary of the model's topology: the
// model name and, per real joint, its name and its parent's name.
// Placements and joint model internals are not printed.
func (m *Model) String() string {
	s := "Model(" + m.Name + ") {\n"
	for i := 1; i < len(m.models); i++ {
		s += "  " + m.jointNames[i] + " <- parent " + m.jointNames[m.parents[i]] + "\n"
	}
	s += "}"
	return s
}

// GoString implements fmt.GoStringer for %#v formatting.
func (m *Model) GoString() string {
	return m.String()
}
