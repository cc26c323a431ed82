package testutil

import "math/rand"

// DeterministicMatrix returns a width x height row-major matrix of uniform
// noise in [-amplitude, amplitude), seeded for reproducibility.
func DeterministicMatrix(seed int64, width, height int, amplitude float64) []float64 {
	out := make([]float64, width*height)
	rng := rand.New(rand.NewSource(seed))
	for i := range out {
		out[i] = (rng.Float64()*2 - 1) * amplitude
	}
	return out
}

// IndexRamp returns 0, 1, ..., n-1. Every element is unique, which makes it
// the input of choice for index-mapping checks.
func IndexRamp(n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = float64(i)
	}
	return out
}

// Identity returns the n x n identity matrix in row-major order.
func Identity(n int) []float64 {
	out := make([]float64, n*n)
	for i := 0; i < n; i++ {
		out[i*n+i] = 1
	}
	return out
}

// DC returns a constant-valued buffer of length n.
func DC(value float64, n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = value
	}
	return out
}
