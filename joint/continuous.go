package joint

import (
	"math"
	"math/rand"

	"github.com/golang/geo/r3"
	"go.viam.com/dynamics/dynerr"
	"go.viam.com/dynamics/spatial"
)

// Continuous constrains two bodies to rotate about a fixed axis with no
// limits, parameterized as (cos theta, sin theta) rather than a raw
// angle so that integration never has to wrap at +/-pi.
type Continuous struct {
	Name   string
	Axis   r3.Vector
	Limits Limits
}

// NewContinuous builds a Continuous joint rotating about axis
// (normalized internally).
func NewContinuous(name string, axis r3.Vector) Continuous {
	limits := NewUnboundedLimits(2)
	limits.MinConfiguration[0], limits.MaxConfiguration[0] = -1.01, 1.01
	limits.MinConfiguration[1], limits.MaxConfiguration[1] = -1.01, 1.01
	return Continuous{Name: name, Axis: axis.Normalize(), Limits: limits}
}

// NewContinuousX, NewContinuousY and NewContinuousZ build a Continuous
// joint about the corresponding world axis.
func NewContinuousX(name string) Continuous { return NewContinuous(name, r3.Vector{X: 1}) }
func NewContinuousY(name string) Continuous { return NewContinuous(name, r3.Vector{Y: 1}) }
func NewContinuousZ(name string) Continuous { return NewContinuous(name, r3.Vector{Z: 1}) }

func (j Continuous) Type() Type { return TypeContinuous }
func (j Continuous) NQ() int    { return 2 }
func (j Continuous) NV() int    { return 1 }

func (j Continuous) Neutral() []float64 { return []float64{1, 0} }

func (j Continuous) Random(rng *rand.Rand) []float64 {
	theta := rng.Float64() * 2 * math.Pi
	return []float64{math.Cos(theta), math.Sin(theta)}
}

func (j Continuous) Transform(q []float64) (spatial.Pose, error) {
	if len(q) != 2 {
		return spatial.Pose{}, dynerr.NewSizeMismatch(j.Name+".q", 2, len(q))
	}
	angle := math.Atan2(q[1], q[0])
	return spatial.NewPose(spatial.NewRotationFromAxisAngle(j.Axis, angle), r3.Vector{}), nil
}

func (j Continuous) MotionSubspace() []spatial.Motion {
	return []spatial.Motion{spatial.MotionFromRotationalAxis(j.Axis)}
}

func (j Continuous) SubspaceDual(f spatial.Force) []float64 {
	return []float64{f.Angular.Dot(j.Axis)}
}

func (j Continuous) Bias() spatial.Motion { return spatial.ZeroMotion() }

// Integrate rotates (c, s) by the angular delta v[0]:
//
//	c' = c*cos(dtheta) - s*sin(dtheta)
//	s' = c*sin(dtheta) + s*cos(dtheta)
//
// Renormalization to the unit circle is left to the caller.
func (j Continuous) Integrate(q, v []float64) ([]float64, error) {
	if len(q) != 2 {
		return nil, dynerr.NewSizeMismatch(j.Name+".integrate.q", 2, len(q))
	}
	if len(v) != 1 {
		return nil, dynerr.NewSizeMismatch(j.Name+".integrate.v", 1, len(v))
	}
	c, s := q[0], q[1]
	dc, ds := math.Cos(v[0]), math.Sin(v[0])
	return []float64{c*dc - s*ds, c*ds + s*dc}, nil
}

func (j Continuous) Update(data *Data, q, v []float64) error {
	if len(q) != 2 {
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
