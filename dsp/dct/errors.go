package dct

import (
	"errors"

	"github.com/cwbudde/algo-dct/dsp/transpose"
)

// Errors returned by the transform functions.
var (
	// ErrInvalidDimensions reports a width/height that does not match the
	// buffers, or buffers that overlap where distinct memory is required.
	// It is the same value as [transpose.ErrInvalidDimensions].
	ErrInvalidDimensions = transpose.ErrInvalidDimensions

	ErrInvalidLength    = errors.New("dct: invalid transform length")
	ErrUnknownAlgorithm = errors.New("dct: unknown algorithm")
)
