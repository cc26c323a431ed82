// Package transpose provides a cache-blocked matrix transpose for flat,
// row-major buffers.
//
// A naive transpose strides through either the source or the destination
// with a step of width or height, so nearly every access touches a new cache
// line once the matrix outgrows the cache. [Transpose] instead walks the
// matrix in square tiles of [BlockSize] elements per edge, which keeps the
// working set of both orientations small:
//
//	in := []float64{
//		1, 2, 3,
//		4, 5, 6,
//	}
//	out := make([]float64, len(in))
//	err := transpose.Transpose(3, 2, in, out) // out = 1 4 2 5 3 6
//
// Tiles that do not fit evenly at the right and bottom edges are clipped
// to the remaining extent, so every element is copied exactly once.
//
// Input and output must be distinct buffers. Overlapping buffers are
// rejected with [ErrInvalidDimensions] before anything is written.
package transpose
