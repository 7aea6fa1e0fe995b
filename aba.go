package dynamics

import (
	"math"

	"github.com/pkg/errors"
	"go.viam.com/dynamics/dynerr"
	"go.viam.com/dynamics/spatial"
)

// singularPivotTolerance is the threshold below which a 1-dof joint's
// scalar D_i is treated as numerically singular.
const singularPivotTolerance = 1e-12

// ForwardDynamics computes joint accelerations ddq via the Articulated
// Body Algorithm (ABA), local convention (every quantity expressed in
// its own joint's local frame). fExt, if non-nil, holds one external
// wrench per joint index (length model.NJoints()), expressed in that
// joint's local frame; a nil fExt applies no external wrench.
//
// Every joint model in this package has nv in {0, 1}, so D_i is always
// either vacuous (Fixed) or a scalar; ForwardDynamics exploits that
// directly rather than carrying a general n-by-n solve.
func ForwardDynamics(m *Model, d *Data, q, v, tau []float64, fExt []spatial.Force) error {
	if len(q) != m.nq {
		return dynerr.NewSizeMismatch("q", m.nq, len(q))
	}
	if len(v) != m.nv {
		return dynerr.NewSizeMismatch("v", m.nv, len(v))
	}
	if len(tau) != m.nv {
		return dynerr.NewSizeMismatch("tau", m.nv, len(tau))
	}
	if fExt != nil && len(fExt) != len(m.models) {
		return dynerr.NewSizeMismatch("fExt", len(m.models), len(fExt))
	}

	d.OMi[rootIndex] = spatial.IdentityPose()
	d.V[rootIndex] = spatial.ZeroMotion()
	d.A[rootIndex] = spatial.Motion{Linear: m.Gravity.Mul(-1)}

	// Pass 1: update joint data, compute oMi/v, the velocity-product
	// bias c[i], and seed the articulated quantities from each body's
	// own (constant) inertia.
	for i := 1; i < len(m.models); i++ {
		jm := m.models[i]
		qi := m.qSlice(q, i)
		vi := m.vSlice(v, i)
		if err := jm.Update(&d.JointData[i], qi, vi); err != nil {
			return errors.Wrapf(err, "forward dynamics pass 1 at joint %q", m.jointNames[i])
		}

		parent := m.parents[i]
		xLambda := m.placements[i].Compose(d.JointData[i].Transform)
		d.OMi[i] = d.OMi[parent].Compose(xLambda)

		vJ := d.JointData[i].Velocity
		d.V[i] = xLambda.ActInverse(d.V[parent]).Add(vJ)
		d.C[i] = d.V[i].Cross(vJ).Add(jm.Bias())

		inertia := m.inertias[i]
		d.YA[i] = spatial.SpatialMatrix6FromInertia(inertia)
		h := inertia.Apply(d.V[i])
		pA := d.V[i].CrossForce(h)
		if fExt != nil {
			pA = pA.Sub(fExt[i])
		}
		d.PA[i] = pA
	}

	// Pass 2: backward, accumulate articulated inertia/bias into parents.
	for i := len(m.models) - 1; i >= 1; i-- {
		jm := m.models[i]
		subspace := jm.MotionSubspace()
		nv := len(subspace)

		var u spatial.Force
		var dScalar float64
		if nv == 1 {
			u = d.YA[i].Apply(subspace[0])
			dScalar = subspace[0].DotForce(u)
			if math.Abs(dScalar) < singularPivotTolerance {
				return dynerr.NewJointFailure(m.jointNames[i], dynerr.SingularPivot)
			}
		}
		d.U[i] = u
		d.D[i] = dScalar

		tauI := m.vSlice(tau, i)
		pAI := jm.SubspaceDual(d.PA[i])
		var uScalar float64
		if nv == 1 {
			uScalar = tauI[0] - pAI[0]
		}
		d.u[i] = uScalar

		parent := m.parents[i]
		if parent == rootIndex {
			continue
		}
		xLambda := m.placements[i].Compose(d.JointData[i].Transform)

		yaStar := d.YA[i]
		pAStar := d.PA[i]
		if nv == 1 {
			invD := 1 / dScalar
			yaStar = yaStar.Sub(spatial.Outer(u, invD))
			pAStar = pAStar.Add(yaStar.Apply(d.C[i])).Add(u.Scale(invD * uScalar))
		}

		d.YA[parent] = d.YA[parent].Add(yaStar.ActDual(xLambda))
		d.PA[parent] = d.PA[parent].Add(xLambda.ActDual(pAStar))
	}

	// Pass 3: forward, compute accelerations and ddq from the cached
	// per-joint U_i/D_i/u_i.
	for i := 1; i < len(m.models); i++ {
		jm := m.models[i]
		parent := m.parents[i]
		xLambda := m.placements[i].Compose(d.JointData[i].Transform)

		aPrime := xLambda.ActInverse(d.A[parent]).Add(d.C[i])

		subspace := jm.MotionSubspace()
		if len(subspace) == 1 {
			ddqI := (d.u[i] - aPrime.DotForce(d.U[i])) / d.D[i]
			m.vSlice(d.Ddq, i)[0] = ddqI
			d.A[i] = aPrime.Add(subspace[0].Scale(ddqI))
		} else {
			d.A[i] = aPrime
		}
	}
	return nil
}
