package dynamics

import (
	"github.com/pkg/errors"
	"go.viam.com/dynamics/dynerr"
	"go.viam.com/dynamics/spatial"
)

// ForwardKinematics propagates joint placements and, if v (and
// optionally a) is supplied, spatial velocities and accelerations from
// root to leaves in topological order. q must have length model.NQ(); v
// and a, if non-nil, must have length model.NV(). a may only be given
// together with v; a non-nil a with a nil v is an InvalidParameterError.
//
// Only JointData and OMi (and, if requested, V/A) are written; no other
// Data field is touched.
func ForwardKinematics(m *Model, d *Data, q, v, a []float64) error {
	if len(q) != m.nq {
		return dynerr.NewSizeMismatch("q", m.nq, len(q))
	}
	if v != nil && len(v) != m.nv {
		return dynerr.NewSizeMismatch("v", m.nv, len(v))
	}
	if a != nil && len(a) != m.nv {
		return dynerr.NewSizeMismatch("a", m.nv, len(a))
	}
	if a != nil && v == nil {
		return dynerr.NewInvalidParameter("a supplied without v")
	}

	d.OMi[rootIndex] = spatial.IdentityPose()
	d.V[rootIndex] = spatial.ZeroMotion()
	d.A[rootIndex] = spatial.ZeroMotion()

	for i := 1; i < len(m.models); i++ {
		if err := updateAndPropagate(m, d, i, q, v, a); err != nil {
			return errors.Wrapf(err, "forward kinematics at joint %q", m.jointNames[i])
		}
	}
	return nil
}

// updateAndPropagate slices q/v/a for joint i, updates its joint data,
// and writes oMi[i] and (if requested) v[i]/a[i] from the parent's
// already-computed values. Shared by ForwardKinematics and the forward
// pass of InverseDynamics; ForwardDynamics runs its own pass 1.
func updateAndPropagate(m *Model, d *Data, i int, q, v, a []float64) error {
	jm := m.models[i]
	parent := m.parents[i]

	qi := m.qSlice(q, i)
	var vi []float64
	if v != nil {
		vi = m.vSlice(v, i)
	}
	if err := jm.Update(&d.JointData[i], qi, vi); err != nil {
		return err
	}

	xLambda := m.placements[i].Compose(d.JointData[i].Transform)
	d.OMi[i] = d.OMi[parent].Compose(xLambda)

	if v == nil {
		return nil
	}
	subspace := jm.MotionSubspace()
	vJ := d.JointData[i].Velocity
	vi2 := xLambda.ActInverse(d.V[parent]).Add(vJ)
	d.V[i] = vi2

	if a == nil {
		return nil
	}
	ai := m.vSlice(a, i)
	sDotA := spatial.ZeroMotion()
	for k, s := range subspace {
		sDotA = sDotA.Add(s.Scale(ai[k]))
	}
	bias := vi2.Cross(vJ).Add(jm.Bias())
	d.A[i] = xLambda.ActInverse(d.A[parent]).Add(sDotA).Add(bias)
	return nil
}
