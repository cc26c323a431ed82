// Package dct computes the forward 2D discrete cosine transform (DCT-II) of
// flat row-major matrices.
//
// The 2D transform is separable: a 1D DCT-II over every row, a transpose,
// a 1D DCT-II over every former column, and a transpose back. The transposes
// use the cache-blocked [transpose.Transpose] so that the column pass reads
// contiguous memory.
//
// # 1D transforms
//
// One-dimensional transforms are supplied through the [Provider] interface,
// which hands out length-keyed [Plan] values. [Planner] is the default
// provider and caches one plan per length. Available algorithms:
//
//   - AlgorithmNaive: direct O(N²) sum with a precomputed cosine table
//   - AlgorithmFFT: one complex FFT of length N (algo-fft)
//   - AlgorithmMatrix: dense basis matrix times vector (gonum)
//   - AlgorithmButterfly: the fixed 8-point [Butterfly8]
//   - AlgorithmAuto: butterfly for 8, FFT from 32 upwards, naive otherwise
//
// Coefficients are unnormalized, X[k] = Σ x[n]·cos(π(2n+1)k / 2N), unless
// [WithOrthonormal] is given.
//
// # Usage
//
// One-shot transforms borrow scratch memory from an internal pool:
//
//	planner := dct.NewPlanner()
//	err := dct.Apply2D(planner, data, width, height)
//
// For repeated transforms of one size, build a [Pipeline]. It resolves its
// plans and scratch once; 8x8 pipelines switch to the in-place butterfly:
//
//	p, err := dct.NewPipeline(8, 8)
//	for _, block := range blocks {
//		if err := p.Apply(block); err != nil { ... }
//	}
//
// # Concurrency
//
// Planner, Pipeline and the plans they return keep mutable scratch and are
// not safe for concurrent use. Use one instance per goroutine. [Butterfly8]
// is read-only and may be shared.
package dct
