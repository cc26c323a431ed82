package dct

import "math"

// naivePlan evaluates X[k] = Σ x[n]·cos(π(2n+1)k / 2N) directly from a
// precomputed N x N cosine table.
type naivePlan struct {
	n     int
	basis []float64 // basis[k*n+i]
}

func newNaivePlan(n int) *naivePlan {
	return &naivePlan{n: n, basis: cosineBasis(n)}
}

func cosineBasis(n int) []float64 {
	basis := make([]float64, n*n)
	step := math.Pi / float64(2*n)
	for k := 0; k < n; k++ {
		row := basis[k*n : (k+1)*n]
		for i := range row {
			row[i] = math.Cos(step * float64((2*i+1)*k))
		}
	}
	return basis
}

func (p *naivePlan) Len() int { return p.n }

func (p *naivePlan) Apply(dst, src []float64) {
	checkPlanLengths(p.n, dst, src)
	for k := range dst {
		row := p.basis[k*p.n : (k+1)*p.n]
		sum := 0.0
		for i, v := range src {
			sum += v * row[i]
		}
		dst[k] = sum
	}
}
