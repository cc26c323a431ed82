package dct

import (
	"fmt"
	"strings"
)

// Algorithm selects how a [Planner] computes 1D transforms.
type Algorithm int

const (
	// AlgorithmAuto uses Butterfly8 for length 8, an FFT for long
	// transforms and the direct sum otherwise.
	AlgorithmAuto Algorithm = iota
	// AlgorithmNaive evaluates the O(N²) cosine sum with a precomputed table.
	AlgorithmNaive
	// AlgorithmFFT computes the transform through one complex FFT of length N.
	AlgorithmFFT
	// AlgorithmMatrix multiplies by a dense N x N cosine basis.
	AlgorithmMatrix
	// AlgorithmButterfly uses the fixed 8-point butterfly. Only length 8.
	AlgorithmButterfly
)

// fftMinLength is the shortest length AlgorithmAuto hands to the FFT.
const fftMinLength = 32

var algorithmNames = map[Algorithm]string{
	AlgorithmAuto:      "auto",
	AlgorithmNaive:     "naive",
	AlgorithmFFT:       "fft",
	AlgorithmMatrix:    "matrix",
	AlgorithmButterfly: "butterfly",
}

func (a Algorithm) String() string {
	if name, ok := algorithmNames[a]; ok {
		return name
	}
	return fmt.Sprintf("Algorithm(%d)", int(a))
}

// ParseAlgorithm returns the Algorithm with the given (case-insensitive) name.
func ParseAlgorithm(name string) (Algorithm, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for a, n := range algorithmNames {
		if n == name {
			return a, nil
		}
	}
	return AlgorithmAuto, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, name)
}

// Option configures a Planner or Pipeline.
type Option func(*config)

type config struct {
	algorithm   Algorithm
	orthonormal bool
	provider    Provider
	fixed8x8    bool
}

func defaultConfig() config {
	return config{
		algorithm: AlgorithmAuto,
		fixed8x8:  true,
	}
}

func applyOptions(opts []Option) config {
	cfg := defaultConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}

// WithAlgorithm selects the 1D algorithm. Unknown values are ignored.
func WithAlgorithm(a Algorithm) Option {
	return func(c *config) {
		if _, ok := algorithmNames[a]; ok {
			c.algorithm = a
		}
	}
}

// WithOrthonormal scales coefficients by sqrt(1/N) for k = 0 and sqrt(2/N)
// otherwise, so the transform matrix is orthogonal.
//
// A Pipeline applies this scaling to the 2D output itself and expects the
// plans it uses to be unnormalized. When combined with WithProvider, the
// provider must hand out unnormalized plans, otherwise the output is scaled
// twice.
func WithOrthonormal() Option {
	return func(c *config) {
		c.orthonormal = true
	}
}

// WithProvider makes a Pipeline obtain its plans from p instead of an
// internal Planner. Implies the general strategy. Ignored by NewPlanner.
// Plans from p must be unnormalized if WithOrthonormal is also given.
func WithProvider(p Provider) Option {
	return func(c *config) {
		if p != nil {
			c.provider = p
		}
	}
}

// WithoutFixed8x8 disables the fixed 8x8 strategy in Pipeline.
func WithoutFixed8x8() Option {
	return func(c *config) {
		c.fixed8x8 = false
	}
}
