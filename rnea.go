package dynamics

import (
	"github.com/pkg/errors"
	"go.viam.com/dynamics/dynerr"
	"go.viam.com/dynamics/spatial"
)

// InverseDynamics computes joint torques tau via the Recursive
// Newton-Euler Algorithm (RNEA). fExt, if non-nil, holds one external
// wrench per joint index (length model.NJoints()) expressed in that
// joint's local frame; a nil fExt applies no external wrench.
//
// Gravity is folded in by seeding the root's acceleration to -gravity,
// equivalent to adding -m*g to every body's external force. Populates
// Data.Tau (size model.NV()); OMi/V/A/H/F reflect this pass's
// intermediate state.
func InverseDynamics(m *Model, d *Data, q, v, a []float64, fExt []spatial.Force) error {
	if len(q) != m.nq {
		return dynerr.NewSizeMismatch("q", m.nq, len(q))
	}
	if len(v) != m.nv {
		return dynerr.NewSizeMismatch("v", m.nv, len(v))
	}
	if len(a) != m.nv {
		return dynerr.NewSizeMismatch("a", m.nv, len(a))
	}
	if fExt != nil && len(fExt) != len(m.models) {
		return dynerr.NewSizeMismatch("fExt", len(m.models), len(fExt))
	}

	d.OMi[rootIndex] = spatial.IdentityPose()
	d.V[rootIndex] = spatial.ZeroMotion()
	d.A[rootIndex] = spatial.Motion{Linear: m.Gravity.Mul(-1)}

	for i := 1; i < len(m.models); i++ {
		if err := updateAndPropagate(m, d, i, q, v, a); err != nil {
			return errors.Wrapf(err, "inverse dynamics forward pass at joint %q", m.jointNames[i])
		}
		inertia := m.inertias[i]
		d.H[i] = inertia.Apply(d.V[i])
		f := inertia.Apply(d.A[i]).Add(d.V[i].CrossForce(d.H[i]))
		if fExt != nil {
			f = f.Sub(fExt[i])
		}
		d.F[i] = f
	}

	for i := len(m.models) - 1; i >= 1; i-- {
		jm := m.models[i]
		tauI := m.vSlice(d.Tau, i)
		copy(tauI, jm.SubspaceDual(d.F[i]))

		parent := m.parents[i]
		if parent != rootIndex {
			xLambda := m.placements[i].Compose(d.JointData[i].Transform)
			d.F[parent] = d.F[parent].Add(xLambda.ActDual(d.F[i]))
		}
	}
	return nil
}
