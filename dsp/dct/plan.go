package dct

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-vecmath"
)

// Plan applies a forward DCT-II of one fixed length.
//
// Apply writes the transform of src into dst. Both must have length Len()
// and must not overlap. Mismatched lengths are a programmer error and panic.
// Plans may keep internal scratch, so a Plan must not be used from several
// goroutines at once.
type Plan interface {
	Len() int
	Apply(dst, src []float64)
}

// Provider hands out plans by length. Implementations are expected to cache
// plans so repeated requests for one length are cheap.
type Provider interface {
	Plan(n int) (Plan, error)
}

// Planner is the default Provider. It builds plans with the configured
// algorithm and caches them by length.
//
// A Planner is not safe for concurrent use; use one per goroutine.
type Planner struct {
	algorithm   Algorithm
	orthonormal bool
	plans       map[int]Plan
}

// NewPlanner returns an empty Planner.
func NewPlanner(opts ...Option) *Planner {
	cfg := applyOptions(opts)
	return &Planner{
		algorithm:   cfg.algorithm,
		orthonormal: cfg.orthonormal,
		plans:       make(map[int]Plan),
	}
}

// Plan returns the cached plan for length n, building it on first use.
func (p *Planner) Plan(n int) (Plan, error) {
	if plan, ok := p.plans[n]; ok {
		return plan, nil
	}
	if n < 1 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidLength, n)
	}

	plan, err := p.build(n)
	if err != nil {
		return nil, err
	}
	if p.orthonormal {
		plan = newScaledPlan(plan)
	}

	p.plans[n] = plan
	return plan, nil
}

// Len returns the number of cached plans.
func (p *Planner) Len() int {
	return len(p.plans)
}

// Algorithm returns the configured algorithm.
func (p *Planner) Algorithm() Algorithm {
	return p.algorithm
}

func (p *Planner) build(n int) (Plan, error) {
	switch p.algorithm {
	case AlgorithmNaive:
		return newNaivePlan(n), nil
	case AlgorithmFFT:
		return newFFTPlan(n)
	case AlgorithmMatrix:
		return newMatrixPlan(n), nil
	case AlgorithmButterfly:
		if n != butterflyLen {
			return nil, fmt.Errorf("%w: butterfly supports only length %d, got %d", ErrInvalidLength, butterflyLen, n)
		}
		return NewButterfly8(), nil
	}

	switch {
	case n == butterflyLen:
		return NewButterfly8(), nil
	case n >= fftMinLength:
		if plan, err := newFFTPlan(n); err == nil {
			return plan, nil
		}
	}
	return newNaivePlan(n), nil
}

// orthonormalScale returns the per-coefficient factors that turn the
// unnormalized DCT-II into the orthonormal one.
func orthonormalScale(n int) []float64 {
	scale := make([]float64, n)
	scale[0] = math.Sqrt(1 / float64(n))
	rest := math.Sqrt(2 / float64(n))
	for k := 1; k < n; k++ {
		scale[k] = rest
	}
	return scale
}

// scaledPlan post-multiplies the output of another plan.
type scaledPlan struct {
	inner Plan
	scale []float64
}

func newScaledPlan(inner Plan) *scaledPlan {
	return &scaledPlan{inner: inner, scale: orthonormalScale(inner.Len())}
}

func (p *scaledPlan) Len() int { return p.inner.Len() }

func (p *scaledPlan) Apply(dst, src []float64) {
	p.inner.Apply(dst, src)
	vecmath.MulBlockInPlace(dst, p.scale)
}

func checkPlanLengths(n int, dst, src []float64) {
	if len(dst) != n || len(src) != n {
		panic(fmt.Sprintf("dct: plan of length %d applied to dst %d, src %d", n, len(dst), len(src)))
	}
}
