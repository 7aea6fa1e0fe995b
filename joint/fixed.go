package joint

import (
	"math/rand"

	"go.viam.com/dynamics/spatial"
)

// Fixed carries no degrees of freedom; it rigidly welds two bodies
// together. It exists so the model's joint list, topological traversal
// and indexing machinery do not need a special case for fixed joints or
// frames: a frame is just a Fixed joint named for lookup purposes.
type Fixed struct {
	Name string
}

// NewFixed builds a Fixed joint.
func NewFixed(name string) Fixed { return Fixed{Name: name} }

func (j Fixed) Type() Type { return TypeFixed }
func (j Fixed) NQ() int    { return 0 }
func (j Fixed) NV() int    { return 0 }

func (j Fixed) Neutral() []float64 { return nil }

func (j Fixed) Random(rng *rand.Rand) []float64 { return nil }

func (j Fixed) Transform(q []float64) (spatial.Pose, error) {
	return spatial.IdentityPose(), nil
}

func (j Fixed) MotionSubspace() []spatial.Motion { return nil }

func (j Fixed) SubspaceDual(f spatial.Force) []float64 { return nil }

func (j Fixed) Bias() spatial.Motion { return spatial.ZeroMotion() }

func (j Fixed) Integrate(q, v []float64) ([]float64, error) { return nil, nil }

func (j Fixed) Update(data *Data, q, v []float64) error {
	data.Q = nil
	data.Transform = spatial.IdentityPose()
	if v != nil {
		data.V = nil
		data.Velocity = spatial.ZeroMotion()
	}
	return nil
}
