package common

import "math/rand/v2"

func Lerp(a, b, t float64) float64 {
	return a + t*(b-a)
}

// FloatBetween returns a uniform value in [min, max).
func FloatBetween(rng *rand.Rand, min, max float64) float64 {
	if max <= min {
		return min
	}
	return Lerp(min, max, rng.Float64())
}

// Between returns a uniform integer in [min, max], both ends included.
func Between(rng *rand.Rand, min, max int) int {
	if max <= min {
		return min
	}
	return min + rng.IntN(max-min+1)
}

// NewRand returns a seeded generator. A zero seed draws one from the runtime.
func NewRand(seed uint64) *rand.Rand {
	if seed == 0 {
		seed = rand.Uint64()
	}
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}
