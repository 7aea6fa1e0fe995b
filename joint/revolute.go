package joint

import (
	"math/rand"

	"github.com/golang/geo/r3"
	"go.viam.com/dynamics/dynerr"
	"go.viam.com/dynamics/spatial"
)

// Revolute constrains two bodies to rotate about a fixed axis,
// parameterized by a single angle.
type Revolute struct {
	Name   string
	Axis   r3.Vector
	Limits Limits
}

// NewRevolute builds a Revolute joint rotating about axis (normalized
// internally), with unbounded limits.
func NewRevolute(name string, axis r3.Vector) Revolute {
	return Revolute{Name: name, Axis: axis.Normalize(), Limits: NewUnboundedLimits(1)}
}

// NewRevoluteX, NewRevoluteY and NewRevoluteZ build a Revolute joint
// about the corresponding world axis.
func NewRevoluteX(name string) Revolute { return NewRevolute(name, r3.Vector{X: 1}) }
func NewRevoluteY(name string) Revolute { return NewRevolute(name, r3.Vector{Y: 1}) }
func NewRevoluteZ(name string) Revolute { return NewRevolute(name, r3.Vector{Z: 1}) }

func (j Revolute) Type() Type { return TypeRevolute }
func (j Revolute) NQ() int    { return 1 }
func (j Revolute) NV() int    { return 1 }

func (j Revolute) Neutral() []float64 { return []float64{0} }

func (j Revolute) Random(rng *rand.Rand) []float64 {
	return randomUniform(rng, j.Limits.MinConfiguration, j.Limits.MaxConfiguration)
}

func (j Revolute) Transform(q []float64) (spatial.Pose, error) {
	if len(q) != 1 {
		return spatial.Pose{}, dynerr.NewSizeMismatch(j.Name+".q", 1, len(q))
	}
	return spatial.NewPose(spatial.NewRotationFromAxisAngle(j.Axis, q[0]), r3.Vector{}), nil
}

func (j Revolute) MotionSubspace() []spatial.Motion {
	return []spatial.Motion{spatial.MotionFromRotationalAxis(j.Axis)}
}

func (j Revolute) SubspaceDual(f spatial.Force) []float64 {
	return []float64{f.Angular.Dot(j.Axis)}
}

func (j Revolute) Bias() spatial.Motion { return spatial.ZeroMotion() }

func (j Revolute) Integrate(q, v []float64) ([]float64, error) {
	if len(q) != 1 || len(v) != 1 {
		return nil, dynerr.NewSizeMismatch(j.Name+".integrate", 1, len(q))
	}
	return []float64{q[0] + v[0]}, nil
}

func (j Revolute) Update(data *Data, q, v []float64) error {
	if len(q) != 1 {
		return dynerr.NewJointFailure(j.Name, dynerr.InconsistentShape)
	}
	if v != nil && len(v) != 1 {
		return dynerr.NewJointFailure(j.Name, dynerr.InconsistentShape)
	}
	pose, err := j.Transform(q)
	if err != nil {
		return err
	}
	data.Q = q
	data.Transform = pose
	if v != nil {
		data.V = v
		data.Velocity = spatial.MotionFromRotationalAxis(j.Axis.Mul(v[0]))
	}
	return nil
}
