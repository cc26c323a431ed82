package dct

import (
	"fmt"

	"github.com/cwbudde/algo-vecmath"
)

// Strategy identifies how a Pipeline computes its transform.
type Strategy int

const (
	// StrategyGeneral runs separable 1D plans around two transposes.
	StrategyGeneral Strategy = iota
	// StrategyFixed8x8 runs the in-place 8-point butterfly on 8x8 blocks.
	StrategyFixed8x8
)

func (s Strategy) String() string {
	switch s {
	case StrategyGeneral:
		return "general"
	case StrategyFixed8x8:
		return "fixed8x8"
	default:
		return fmt.Sprintf("Strategy(%d)", int(s))
	}
}

// kernel2D is implemented by the two strategies. data has already been
// validated against the pipeline dimensions.
type kernel2D interface {
	strategy() Strategy
	apply(data []float64)
}

type generalKernel struct {
	width, height int
	rowPlan       Plan
	colPlan       Plan
	scratch       []float64
}

func (k *generalKernel) strategy() Strategy { return StrategyGeneral }

func (k *generalKernel) apply(data []float64) {
	if len(data) == 0 {
		return
	}
	separable(k.rowPlan, k.colPlan, data, k.scratch, k.width, k.height)
}

type fixedKernel struct {
	butterfly *Butterfly8
	scratch   [butterflyLen * butterflyLen]float64
}

func (k *fixedKernel) strategy() Strategy { return StrategyFixed8x8 }

func (k *fixedKernel) apply(data []float64) {
	apply8x8(k.butterfly, data, k.scratch[:])
}

// Pipeline computes the 2D DCT-II of matrices of one fixed size.
//
// The strategy, plans and scratch memory are settled by NewPipeline, so
// Apply neither allocates nor looks anything up. 8x8 pipelines use the
// fixed butterfly unless an explicit provider or non-default algorithm is
// configured, or WithoutFixed8x8 is given.
//
// With WithOrthonormal the pipeline scales its output after the
// unnormalized transform; supplied providers must not scale their plans.
//
// A Pipeline is not safe for concurrent use.
type Pipeline struct {
	width, height int
	kernel        kernel2D
	scale         []float64 // nil unless orthonormal
}

// NewPipeline returns a Pipeline for width x height matrices.
func NewPipeline(width, height int, opts ...Option) (*Pipeline, error) {
	if err := validateDimensions(width, height); err != nil {
		return nil, err
	}
	cfg := applyOptions(opts)

	p := &Pipeline{width: width, height: height}

	useFixed := width == butterflyLen && height == butterflyLen &&
		cfg.fixed8x8 && cfg.provider == nil &&
		(cfg.algorithm == AlgorithmAuto || cfg.algorithm == AlgorithmButterfly)

	if useFixed {
		p.kernel = &fixedKernel{butterfly: NewButterfly8()}
	} else {
		k, err := newGeneralKernel(width, height, cfg)
		if err != nil {
			return nil, err
		}
		p.kernel = k
	}

	if cfg.orthonormal && width*height > 0 {
		p.scale = orthonormalScale2D(width, height)
	}

	return p, nil
}

func newGeneralKernel(width, height int, cfg config) (*generalKernel, error) {
	k := &generalKernel{width: width, height: height}
	if width*height == 0 {
		return k, nil
	}

	provider := cfg.provider
	if provider == nil {
		provider = NewPlanner(WithAlgorithm(cfg.algorithm))
	}

	var err error
	if k.rowPlan, err = planFor(provider, width); err != nil {
		return nil, err
	}
	if k.colPlan, err = planFor(provider, height); err != nil {
		return nil, err
	}
	k.scratch = make([]float64, width*height)
	return k, nil
}

// orthonormalScale2D is the outer product of the row and column scale
// vectors, laid out like the matrix.
func orthonormalScale2D(width, height int) []float64 {
	rows := orthonormalScale(width)
	cols := orthonormalScale(height)
	scale := make([]float64, width*height)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			scale[y*width+x] = rows[x] * cols[y]
		}
	}
	return scale
}

// Width returns the matrix width.
func (p *Pipeline) Width() int { return p.width }

// Height returns the matrix height.
func (p *Pipeline) Height() int { return p.height }

// Strategy returns the strategy chosen at construction.
func (p *Pipeline) Strategy() Strategy { return p.kernel.strategy() }

// Apply replaces data with its 2D DCT-II. data must hold Width()*Height()
// samples; otherwise ErrInvalidDimensions is returned and data is unchanged.
func (p *Pipeline) Apply(data []float64) error {
	if len(data) != p.width*p.height {
		return fmt.Errorf("%w: data length %d, want %d (%dx%d)", ErrInvalidDimensions, len(data), p.width*p.height, p.width, p.height)
	}

	p.kernel.apply(data)
	if p.scale != nil {
		vecmath.MulBlockInPlace(data, p.scale)
	}
	return nil
}
