package dct

import (
	"fmt"
	"math"
	"math/cmplx"

	algofft "github.com/MeKo-Christian/algo-fft"
)

// fftPlan computes an N-point DCT-II with one N-point complex FFT.
//
// The input is reordered so even samples run forward and odd samples run
// backward, v = x0 x2 x4 ... x5 x3 x1. Then X[k] = Re(V[k]·e^(-iπk/2N)).
type fftPlan struct {
	n       int
	fft     *algofft.Plan[complex128]
	seq     []complex128
	freq    []complex128
	twiddle []complex128
}

func newFFTPlan(n int) (*fftPlan, error) {
	plan, err := algofft.NewPlan64(n)
	if err != nil {
		return nil, fmt.Errorf("dct: failed to create FFT plan of length %d: %w", n, err)
	}

	twiddle := make([]complex128, n)
	for k := range twiddle {
		twiddle[k] = cmplx.Exp(complex(0, -math.Pi*float64(k)/float64(2*n)))
	}

	return &fftPlan{
		n:       n,
		fft:     plan,
		seq:     make([]complex128, n),
		freq:    make([]complex128, n),
		twiddle: twiddle,
	}, nil
}

func (p *fftPlan) Len() int { return p.n }

func (p *fftPlan) Apply(dst, src []float64) {
	checkPlanLengths(p.n, dst, src)

	n := p.n
	for i := 0; i < (n+1)/2; i++ {
		p.seq[i] = complex(src[2*i], 0)
	}
	for i := 0; i < n/2; i++ {
		p.seq[n-1-i] = complex(src[2*i+1], 0)
	}

	if err := p.fft.Forward(p.freq, p.seq); err != nil {
		// Lengths are fixed at construction; an error here is a bug.
		panic(fmt.Sprintf("dct: FFT of length %d failed: %v", n, err))
	}

	for k := range dst {
		dst[k] = real(p.freq[k] * p.twiddle[k])
	}
}
