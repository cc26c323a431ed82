package dct

import "math"

// referenceDCT1D is the textbook DCT-II, evaluated without any table.
func referenceDCT1D(x []float64) []float64 {
	n := len(x)
	out := make([]float64, n)
	for k := range out {
		sum := 0.0
		for i, v := range x {
			sum += v * math.Cos(math.Pi*float64(k)*float64(2*i+1)/float64(2*n))
		}
		out[k] = sum
	}
	return out
}

// referenceDCT2D evaluates the 2D DCT-II directly from its double sum.
func referenceDCT2D(data []float64, width, height int) []float64 {
	out := make([]float64, len(data))
	for v := 0; v < height; v++ {
		for u := 0; u < width; u++ {
			sum := 0.0
			for y := 0; y < height; y++ {
				cy := math.Cos(math.Pi * float64(v) * float64(2*y+1) / float64(2*height))
				for x := 0; x < width; x++ {
					cx := math.Cos(math.Pi * float64(u) * float64(2*x+1) / float64(2*width))
					sum += data[y*width+x] * cx * cy
				}
			}
			out[v*width+u] = sum
		}
	}
	return out
}
