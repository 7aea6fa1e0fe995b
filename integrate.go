package dynamics

import "math/rand"

// Integrate partitions q and v by joint and delegates to each joint's
// integrate rule, returning q+. Sizes must match model.NQ()/model.NV().
func Integrate(m *Model, q, v []float64) ([]float64, error) {
	return m.Integrate(q, v)
}

// Neutral concatenates every joint's neutral configuration.
func Neutral(m *Model) []float64 {
	return m.Neutral()
}

// RandomConfiguration concatenates every joint's randomly sampled configuration.
func RandomConfiguration(m *Model, rng *rand.Rand) []float64 {
	return m.RandomConfiguration(rng)
}
