package dct

import "gonum.org/v1/gonum/mat"

// matrixPlan computes the transform as a dense matrix-vector product with
// the N x N cosine basis.
type matrixPlan struct {
	n     int
	basis *mat.Dense
}

func newMatrixPlan(n int) *matrixPlan {
	return &matrixPlan{n: n, basis: mat.NewDense(n, n, cosineBasis(n))}
}

func (p *matrixPlan) Len() int { return p.n }

func (p *matrixPlan) Apply(dst, src []float64) {
	checkPlanLengths(p.n, dst, src)
	x := mat.NewVecDense(p.n, src)
	y := mat.NewVecDense(p.n, dst)
	y.MulVec(p.basis, x)
}
