package joint

import "math"

// Limits carries a joint's physical constraints and dynamical
// properties. No algorithm in this module enforces them; they are
// metadata consumed only by Random.
type Limits struct {
	Effort           float64
	Velocity         float64
	MinConfiguration []float64
	MaxConfiguration []float64
	Friction         float64
	Damping          float64
	FrictionLoss     float64
}

// NewUnboundedLimits returns Limits with infinite effort/velocity
// bounds, min/max configuration at -/+infinity, and zero
// friction/damping/friction-loss, for a joint with nq configuration
// variables.
func NewUnboundedLimits(nq int) Limits {
	min := make([]float64, nq)
	max := make([]float64, nq)
	for i := range min {
		min[i] = math.Inf(-1)
		max[i] = math.Inf(1)
	}
	return Limits{
		Effort:           math.Inf(1),
		Velocity:         math.Inf(1),
		MinConfiguration: min,
		MaxConfiguration: max,
	}
}

func randomUniform(rng randSource, min, max []float64) []float64 {
	q := make([]float64, len(min))
	for i := range q {
		lo, hi := min[i], max[i]
		if math.IsInf(lo, -1) || math.IsInf(hi, 1) {
			// An unbounded axis samples from a fixed practical
			// range rather than +/-Inf, which would always yield NaN.
			lo, hi = -math.Pi, math.Pi
		}
		q[i] = lo + rng.Float64()*(hi-lo)
	}
	return q
}

// randSource is the minimal surface of *rand.Rand used by Random,
// factored out so it's trivial to see exactly what joint sampling needs.
type randSource interface {
	Float64() float64
}
