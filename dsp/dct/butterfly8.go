package dct

import "math"

const butterflyLen = 8

// Butterfly8 is a fixed 8-point DCT-II.
//
// The transform splits the input into sums and differences of mirrored
// samples. The sums feed a 4-point DCT-II giving the even coefficients, the
// differences feed a 4-point DCT-IV giving the odd ones. Construct it once
// and reuse it; a Butterfly8 is read-only after construction and safe for
// concurrent use.
type Butterfly8 struct {
	// cos(kπ/16) for k = 1..7, index 0 unused
	c [8]float64
}

// NewButterfly8 returns a Butterfly8 with its constants precomputed.
func NewButterfly8() *Butterfly8 {
	b := &Butterfly8{}
	for k := 1; k < len(b.c); k++ {
		b.c[k] = math.Cos(float64(k) * math.Pi / 16)
	}
	return b
}

// Len returns 8.
func (b *Butterfly8) Len() int { return butterflyLen }

// Apply writes the DCT-II of src into dst.
func (b *Butterfly8) Apply(dst, src []float64) {
	checkPlanLengths(butterflyLen, dst, src)
	copy(dst, src)
	b.ApplyInPlace(dst)
}

// ApplyInPlace replaces the 8 samples in buf with their DCT-II.
func (b *Butterfly8) ApplyInPlace(buf []float64) {
	checkPlanLengths(butterflyLen, buf, buf)
	x := (*[8]float64)(buf)
	c := &b.c

	s0, d0 := x[0]+x[7], x[0]-x[7]
	s1, d1 := x[1]+x[6], x[1]-x[6]
	s2, d2 := x[2]+x[5], x[2]-x[5]
	s3, d3 := x[3]+x[4], x[3]-x[4]

	// even half: 4-point DCT-II of s
	e0, e3 := s0+s3, s0-s3
	e1, e2 := s1+s2, s1-s2

	x[0] = e0 + e1
	x[4] = (e0 - e1) * c[4]
	x[2] = e3*c[2] + e2*c[6]
	x[6] = e3*c[6] - e2*c[2]

	// odd half: 4-point DCT-IV of d
	x[1] = d0*c[1] + d1*c[3] + d2*c[5] + d3*c[7]
	x[3] = d0*c[3] - d1*c[7] - d2*c[1] - d3*c[5]
	x[5] = d0*c[5] - d1*c[1] + d2*c[7] + d3*c[3]
	x[7] = d0*c[7] - d1*c[5] + d2*c[3] - d3*c[1]
}
