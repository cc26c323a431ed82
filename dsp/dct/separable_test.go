package dct

import (
	"errors"
	"fmt"
	"math"
	"math/bits"
	"testing"

	"github.com/cwbudde/algo-dct/internal/testutil"
)

// countingProvider records how often each length is requested from and
// built by the wrapped Planner.
type countingProvider struct {
	planner  *Planner
	requests map[int]int
}

func newCountingProvider(opts ...Option) *countingProvider {
	return &countingProvider{planner: NewPlanner(opts...), requests: make(map[int]int)}
}

func (c *countingProvider) Plan(n int) (Plan, error) {
	c.requests[n]++
	return c.planner.Plan(n)
}

type failingProvider struct{ err error }

func (f failingProvider) Plan(int) (Plan, error) { return nil, f.err }

type wrongLengthProvider struct{}

func (wrongLengthProvider) Plan(n int) (Plan, error) { return newNaivePlan(n + 1), nil }

var separableSizes = []struct {
	width, height int
}{
	{1, 1},
	{4, 4},
	{8, 8},
	{5, 13},
	{13, 5},
	{16, 9},
	{32, 16},
	{64, 8},
}

func TestApply2DMatchesReference(t *testing.T) {
	for _, alg := range []Algorithm{AlgorithmAuto, AlgorithmNaive, AlgorithmMatrix} {
		for _, sz := range separableSizes {
			t.Run(fmt.Sprintf("%s/%dx%d", alg, sz.width, sz.height), func(t *testing.T) {
				data := testutil.DeterministicMatrix(int64(sz.width*100+sz.height), sz.width, sz.height, 128)
				want := referenceDCT2D(data, sz.width, sz.height)

				if err := Apply2D(NewPlanner(WithAlgorithm(alg)), data, sz.width, sz.height); err != nil {
					t.Fatalf("Apply2D: %v", err)
				}
				testutil.RequireRelNearlyEqual(t, data, want, 1e-10)
			})
		}
	}
}

func TestApply2DFFTMatchesReference(t *testing.T) {
	data := testutil.DeterministicMatrix(9, 32, 64, 1)
	want := referenceDCT2D(data, 32, 64)

	if err := Apply2D(NewPlanner(WithAlgorithm(AlgorithmFFT)), data, 32, 64); err != nil {
		t.Fatalf("Apply2D: %v", err)
	}
	testutil.RequireRelNearlyEqual(t, data, want, 1e-10)
}

func TestApply2DIdentityGolden(t *testing.T) {
	// Rows of the DCT-II basis are orthogonal with squared norm N for k = 0
	// and N/2 otherwise, so the identity maps to a diagonal.
	data := testutil.Identity(4)
	want := []float64{
		4, 0, 0, 0,
		0, 2, 0, 0,
		0, 0, 2, 0,
		0, 0, 0, 2,
	}

	if err := Apply2D(NewPlanner(), data, 4, 4); err != nil {
		t.Fatalf("Apply2D: %v", err)
	}
	testutil.RequireSliceNearlyEqual(t, data, want, 1e-12)
}

func TestApply2DOrthonormalConstant(t *testing.T) {
	const c = 10.0
	data := testutil.DC(c, 16)

	if err := Apply2D(NewPlanner(WithOrthonormal()), data, 4, 4); err != nil {
		t.Fatalf("Apply2D: %v", err)
	}
	if math.Abs(data[0]-c*4) > 1e-9 {
		t.Errorf("DC = %v, want %v", data[0], c*4)
	}
	for i := 1; i < len(data); i++ {
		if math.Abs(data[i]) > 1e-9 {
			t.Errorf("data[%d] = %v, want ~0", i, data[i])
		}
	}
}

func TestApply2DZeroInput(t *testing.T) {
	data := make([]float64, 64)
	if err := Apply2D(NewPlanner(WithAlgorithm(AlgorithmNaive)), data, 8, 8); err != nil {
		t.Fatalf("Apply2D: %v", err)
	}
	testutil.RequireFinite(t, data)
	testutil.RequireSliceNearlyEqual(t, data, make([]float64, 64), 0)
}

func TestApply2DDeterministic(t *testing.T) {
	input := testutil.DeterministicMatrix(77, 24, 17, 1000)
	a := append([]float64(nil), input...)
	b := append([]float64(nil), input...)

	if err := Apply2D(NewPlanner(), a, 24, 17); err != nil {
		t.Fatalf("Apply2D: %v", err)
	}
	if err := Apply2D(NewPlanner(), b, 24, 17); err != nil {
		t.Fatalf("Apply2D: %v", err)
	}
	for i := range a {
		if math.Float64bits(a[i]) != math.Float64bits(b[i]) {
			t.Fatalf("index %d: %v vs %v", i, a[i], b[i])
		}
	}
}

func TestApply2DDegenerateSizes(t *testing.T) {
	provider := newCountingProvider()
	for _, sz := range [][2]int{{0, 0}, {0, 7}, {5, 0}} {
		if err := Apply2D(provider, nil, sz[0], sz[1]); err != nil {
			t.Errorf("%dx%d: unexpected error %v", sz[0], sz[1], err)
		}
	}
	if len(provider.requests) != 0 {
		t.Errorf("empty matrices requested plans: %v", provider.requests)
	}

	single := []float64{3.5}
	if err := Apply2D(provider, single, 1, 1); err != nil {
		t.Fatalf("1x1: %v", err)
	}
	if single[0] != 3.5 {
		t.Errorf("1x1 result = %v, want 3.5", single[0])
	}
}

func TestApply2DReusesPlans(t *testing.T) {
	provider := newCountingProvider(WithAlgorithm(AlgorithmNaive))
	data := make([]float64, 16*9)

	var first Plan
	for i := 0; i < 5; i++ {
		if err := Apply2D(provider, data, 16, 9); err != nil {
			t.Fatalf("Apply2D: %v", err)
		}
		plan, _ := provider.planner.Plan(16)
		if first == nil {
			first = plan
		} else if plan != first {
			t.Fatal("plan for length 16 was rebuilt")
		}
	}
	if provider.planner.Len() != 2 {
		t.Errorf("planner holds %d plans, want 2", provider.planner.Len())
	}

	if err := Apply2D(provider, make([]float64, 9*16), 9, 16); err != nil {
		t.Fatalf("Apply2D: %v", err)
	}
	if provider.planner.Len() != 2 {
		t.Errorf("swapped dimensions built new plans: %d cached", provider.planner.Len())
	}
}

func TestApply2DScratchReuse(t *testing.T) {
	planner := NewPlanner()
	scratch := make([]float64, 6*10)

	for seed := int64(0); seed < 3; seed++ {
		data := testutil.DeterministicMatrix(seed, 6, 10, 1)
		want := referenceDCT2D(data, 6, 10)
		if err := Apply2DScratch(planner, data, scratch, 6, 10); err != nil {
			t.Fatalf("Apply2DScratch: %v", err)
		}
		testutil.RequireRelNearlyEqual(t, data, want, 1e-10)
	}
}

func TestApply2DErrorsLeaveDataUnchanged(t *testing.T) {
	buf := testutil.IndexRamp(40)
	providerErr := errors.New("provider exhausted")

	tests := []struct {
		name          string
		provider      Provider
		data, scratch []float64
		width, height int
		want          error
	}{
		{"negative width", NewPlanner(), buf[:0], buf[:0], -1, 4, ErrInvalidDimensions},
		{"short data", NewPlanner(), buf[:11], make([]float64, 12), 4, 3, ErrInvalidDimensions},
		{"long data", NewPlanner(), buf[:13], make([]float64, 13), 4, 3, ErrInvalidDimensions},
		{"short scratch", NewPlanner(), buf[:12], make([]float64, 11), 4, 3, ErrInvalidDimensions},
		{"scratch aliases data", NewPlanner(), buf[:12], buf[:12], 4, 3, ErrInvalidDimensions},
		{"scratch overlaps data", NewPlanner(), buf[:12], buf[10:22], 4, 3, ErrInvalidDimensions},
		{"provider failure", failingProvider{providerErr}, buf[:12], make([]float64, 12), 4, 3, providerErr},
		{"wrong plan length", wrongLengthProvider{}, buf[:12], make([]float64, 12), 4, 3, ErrInvalidLength},
		{"product wraps to zero", NewPlanner(), nil, nil, 4, 1 << (bits.UintSize - 2), ErrInvalidDimensions},
		{"square product wraps to zero", NewPlanner(), nil, nil, 1 << (bits.UintSize / 2), 1 << (bits.UintSize / 2), ErrInvalidDimensions},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			snapshot := append([]float64(nil), tt.data...)
			err := Apply2DScratch(tt.provider, tt.data, tt.scratch, tt.width, tt.height)
			if !errors.Is(err, tt.want) {
				t.Fatalf("expected %v, got %v", tt.want, err)
			}
			testutil.RequireSliceNearlyEqual(t, tt.data, snapshot, 0)
		})
	}

	if err := Apply2D(NewPlanner(), buf[:5], 2, 3); !errors.Is(err, ErrInvalidDimensions) {
		t.Errorf("Apply2D: expected ErrInvalidDimensions, got %v", err)
	}
	side := 1 << (bits.UintSize / 2)
	if err := Apply2D(NewPlanner(), nil, side, side); !errors.Is(err, ErrInvalidDimensions) {
		t.Errorf("Apply2D %dx%d: expected ErrInvalidDimensions, got %v", side, side, err)
	}
}
