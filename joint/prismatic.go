package joint

import (
	"math/rand"

	"github.com/golang/geo/r3"
	"go.viam.com/dynamics/dynerr"
	"go.viam.com/dynamics/spatial"
)

// Prismatic constrains two bodies to translate along a fixed axis.
type Prismatic struct {
	Name   string
	Axis   r3.Vector
	Limits Limits
}

// NewPrismatic builds a Prismatic joint translating along axis
// (normalized internally), with unbounded limits.
func NewPrismatic(name string, axis r3.Vector) Prismatic {
	return Prismatic{Name: name, Axis: axis.Normalize(), Limits: NewUnboundedLimits(1)}
}

// NewPrismaticX, NewPrismaticY and NewPrismaticZ build a Prismatic joint
// along the corresponding world axis.
func NewPrismaticX(name string) Prismatic { return NewPrismatic(name, r3.Vector{X: 1}) }
func NewPrismaticY(name string) Prismatic { return NewPrismatic(name, r3.Vector{Y: 1}) }
func NewPrismaticZ(name string) Prismatic { return NewPrismatic(name, r3.Vector{Z: 1}) }

func (j Prismatic) Type() Type { return TypePrismatic }
func (j Prismatic) NQ() int    { return 1 }
func (j Prismatic) NV() int    { return 1 }

func (j Prismatic) Neutral() []float64 { return []float64{0} }

func (j Prismatic) Random(rng *rand.Rand) []float64 {
	return randomUniform(rng, j.Limits.MinConfiguration, j.Limits.MaxConfiguration)
}

func (j Prismatic) Transform(q []float64) (spatial.Pose, error) {
	if len(q) != 1 {
		return spatial.Pose{}, dynerr.NewSizeMismatch(j.Name+".q", 1, len(q))
	}
	return spatial.NewPose(spatial.IdentityRotation(), j.Axis.Mul(q[0])), nil
}

func (j Prismatic) MotionSubspace() []spatial.Motion {
	return []spatial.Motion{spatial.MotionFromTranslationalAxis(j.Axis)}
}

func (j Prismatic) SubspaceDual(f spatial.Force) []float64 {
	return []float64{f.Linear.Dot(j.Axis)}
}

func (j Prismatic) Bias() spatial.Motion { return spatial.ZeroMotion() }

func (j Prismatic) Integrate(q, v []float64) ([]float64, error) {
	if len(q) != 1 || len(v) != 1 {
		return nil, dynerr.NewSizeMismatch(j.Name+".integrate", 1, len(q))
	}
	return []float64{q[0] + v[0]}, nil
}

func (j Prismatic) Update(data *Data, q, v []float64) error {
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
		data.Velocity = spatial.MotionFromTranslationalAxis(j.Axis.Mul(v[0]))
	}
	return nil
}
