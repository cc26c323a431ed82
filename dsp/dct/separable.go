package dct

import (
	"fmt"
	"math"
	"sync"

	"github.com/cwbudde/algo-dct/dsp/transpose"
	"github.com/cwbudde/algo-dct/internal/alias"
)

// scratchBuf holds pooled scratch memory for one-shot 2D transforms.
type scratchBuf struct {
	data []float64
}

var scratchPool = sync.Pool{
	New: func() any { return &scratchBuf{} },
}

func getScratch(n int) *scratchBuf {
	buf := scratchPool.Get().(*scratchBuf)
	if cap(buf.data) < n {
		buf.data = make([]float64, n)
	} else {
		buf.data = buf.data[:n]
	}
	return buf
}

// Apply2D replaces the width x height row-major matrix in data with its 2D
// DCT-II, using plans from p. Scratch memory is taken from an internal pool.
func Apply2D(p Provider, data []float64, width, height int) error {
	if err := validateMatrix(data, width, height); err != nil {
		return err
	}

	buf := getScratch(len(data))
	defer scratchPool.Put(buf)

	return Apply2DScratch(p, data, buf.data, width, height)
}

// Apply2DScratch is Apply2D with a caller-owned scratch buffer of the same
// length as data. Scratch contents are overwritten; scratch and data must
// not overlap.
//
// All arguments are checked and both plans obtained before data is touched,
// so a returned error leaves data unchanged.
func Apply2DScratch(p Provider, data, scratch []float64, width, height int) error {
	if err := validateMatrix(data, width, height); err != nil {
		return err
	}
	if len(scratch) != len(data) {
		return fmt.Errorf("%w: scratch length %d, want %d", ErrInvalidDimensions, len(scratch), len(data))
	}
	if alias.Overlap(data, scratch) {
		return fmt.Errorf("%w: data and scratch overlap", ErrInvalidDimensions)
	}
	if len(data) == 0 {
		return nil
	}

	rowPlan, err := planFor(p, width)
	if err != nil {
		return err
	}
	colPlan, err := planFor(p, height)
	if err != nil {
		return err
	}

	separable(rowPlan, colPlan, data, scratch, width, height)
	return nil
}

func validateDimensions(width, height int) error {
	if width < 0 || height < 0 {
		return fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, width, height)
	}
	if width != 0 && height > math.MaxInt/width {
		return fmt.Errorf("%w: %dx%d overflows int", ErrInvalidDimensions, width, height)
	}
	return nil
}

func validateMatrix(data []float64, width, height int) error {
	if err := validateDimensions(width, height); err != nil {
		return err
	}
	if len(data) != width*height {
		return fmt.Errorf("%w: data length %d, want %d (%dx%d)", ErrInvalidDimensions, len(data), width*height, width, height)
	}
	return nil
}

func planFor(p Provider, n int) (Plan, error) {
	plan, err := p.Plan(n)
	if err != nil {
		return nil, err
	}
	if plan.Len() != n {
		return nil, fmt.Errorf("%w: provider returned plan of length %d for %d", ErrInvalidLength, plan.Len(), n)
	}
	return plan, nil
}

// separable runs the four stages: rows into scratch, transpose into data,
// columns into scratch, transpose back into data. Arguments are assumed
// valid.
func separable(rowPlan, colPlan Plan, data, scratch []float64, width, height int) {
	for y := 0; y < height; y++ {
		rowPlan.Apply(scratch[y*width:(y+1)*width], data[y*width:(y+1)*width])
	}

	mustTranspose(width, height, scratch, data)

	for x := 0; x < width; x++ {
		colPlan.Apply(scratch[x*height:(x+1)*height], data[x*height:(x+1)*height])
	}

	mustTranspose(height, width, scratch, data)
}

func mustTranspose(width, height int, input, output []float64) {
	if err := transpose.Transpose(width, height, input, output); err != nil {
		panic(fmt.Sprintf("dct: %v", err))
	}
}
