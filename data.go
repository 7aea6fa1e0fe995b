package dynamics

import (
	"go.viam.com/dynamics/joint"
	"go.viam.com/dynamics/spatial"
)

// Data is the mutable per-joint runtime state allocated from a Model by
// CreateData. Every array is indexed exactly like the Model's joint
// list (index 0 is the world root). Joint data is owned by Data, joint
// models are owned by Model; a Data value must never be shared across
// concurrent algorithm calls, but the Model it was created from can be
// shared read-only across any number of Data values.
type Data struct {
	model *Model

	JointData []joint.Data

	OMi []spatial.Pose  // absolute placement of joint i in world frame
	V   []spatial.Motion // spatial velocity of joint i, local frame
	A   []spatial.Motion // spatial acceleration of joint i, local frame
	H   []spatial.Force  // momentum at joint i
	F   []spatial.Force  // force at joint i

	// ABA-only working storage.
	YA []spatial.SpatialMatrix6 // articulated inertia
	PA []spatial.Force          // articulated bias force
	C  []spatial.Motion         // velocity-product bias c[i]
	U  []spatial.Force          // U_i = Y_A[i] * S_i (nv=1 joints: one column)
	D  []float64                // D_i = S_i^T * U_i (nv=1 joints: a scalar)
	u  []float64                // u_i = tau_i - S_i^T * p_A[i]

	Tau []float64 // size model.NV(); RNEA output / ABA input
	Ddq []float64 // size model.NV(); ABA output
}

// CreateData allocates a new Data for this model. Every Data created
// from the same Model is independent; the Model itself is never
// mutated.
func (m *Model) CreateData() *Data {
	n := len(m.models)
	d := &Data{
		model:     m,
		JointData: make([]joint.Data, n),
		OMi:       make([]spatial.Pose, n),
		V:         make([]spatial.Motion, n),
		A:         make([]spatial.Motion, n),
		H:         make([]spatial.Force, n),
		F:         make([]spatial.Force, n),
		YA:        make([]spatial.SpatialMatrix6, n),
		PA:        make([]spatial.Force, n),
		C:         make([]spatial.Motion, n),
		U:         make([]spatial.Force, n),
		D:         make([]float64, n),
		u:         make([]float64, n),
		Tau:       make([]float64, m.nv),
		Ddq:       make([]float64, m.nv),
	}
	for i := range d.OMi {
		d.OMi[i] = spatial.IdentityPose()
	}
	return d
}
