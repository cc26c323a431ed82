package dct

import "fmt"

// Apply8x8 replaces the 64 samples in data, an 8x8 row-major block, with
// their 2D DCT-II using t for both rows and columns. Rows and columns are
// transformed in place; the only scratch is a 64-element array on the stack.
func Apply8x8(t *Butterfly8, data []float64) error {
	if len(data) != butterflyLen*butterflyLen {
		return fmt.Errorf("%w: data length %d, want 64 (8x8)", ErrInvalidDimensions, len(data))
	}

	var scratch [butterflyLen * butterflyLen]float64
	apply8x8(t, data, scratch[:])
	return nil
}

func apply8x8(t *Butterfly8, data, scratch []float64) {
	for i := 0; i < len(data); i += butterflyLen {
		t.ApplyInPlace(data[i : i+butterflyLen])
	}

	mustTranspose(butterflyLen, butterflyLen, data, scratch)

	for i := 0; i < len(scratch); i += butterflyLen {
		t.ApplyInPlace(scratch[i : i+butterflyLen])
	}

	mustTranspose(butterflyLen, butterflyLen, scratch, data)
}
