package testutil

import (
	"math"
	"math/rand/v2"
)

// RadialSine returns amplitude*sin(omega*n) for n = 0..length-1.
func RadialSine(omega, amplitude float64, length int) []float64 {
	out := make([]float64, length)
	for i := range out {
		out[i] = amplitude * math.Sin(omega*float64(i))
	}
	return out
}

// GaussianNoise returns reproducible zero-mean normal samples with the given
// standard deviation.
func GaussianNoise(seed uint64, stdDev float64, length int) []float64 {
	out := make([]float64, length)
	rng := rand.New(rand.NewPCG(seed, seed+1))
	for i := range out {
		out[i] = rng.NormFloat64() * stdDev
	}
	return out
}

// Impulse generates a unit impulse at the given position.
func Impulse(length, pos int) []float64 {
	out := make([]float64, length)
	if pos >= 0 && pos < length {
		out[pos] = 1
	}
	return out
}

// DC generates a constant-valued signal.
func DC(value float64, length int) []float64 {
	out := make([]float64, length)
	for i := range out {
		out[i] = value
	}
	return out
}
