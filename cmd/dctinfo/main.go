// Command dctinfo prints the 2D DCT-II of generated test patterns.
//
// Usage:
//
//	dctinfo [flags] [pattern ...]
//
// Without arguments it transforms the identity pattern.
//
// Examples:
//
//	dctinfo
//	dctinfo -width 8 -height 8 ramp impulse
//	dctinfo -width 16 -height 9 -algo fft noise
//	dctinfo -ortho -fixed=false ones
//	dctinfo -list
package main

import (
	"flag"
	"fmt"
	"io"
	"math"
	"math/rand"
	"os"
	"sort"
	"strings"
	"text/tabwriter"

	"github.com/cwbudde/algo-dct/dsp/dct"
	"github.com/cwbudde/algo-vecmath/cpu"
)

type patternEntry struct {
	name string
	desc string
	gen  func(width, height int, rng *rand.Rand) []float64
}

var registry = []patternEntry{
	{"identity", "1 on the main diagonal", identity},
	{"ones", "constant 1", constant(1)},
	{"zero", "constant 0", constant(0)},
	{"impulse", "single 1 at the origin", impulse},
	{"ramp", "x + y*width", ramp},
	{"noise", "uniform noise in [-1, 1)", noise},
}

func main() {
	width := flag.Int("width", 8, "matrix width")
	height := flag.Int("height", 8, "matrix height")
	algo := flag.String("algo", "auto", "1D algorithm: auto, naive, fft, matrix, butterfly")
	ortho := flag.Bool("ortho", false, "orthonormal scaling")
	fixed := flag.Bool("fixed", true, "allow the fixed 8x8 butterfly strategy")
	seed := flag.Int64("seed", 1, "seed for the noise pattern")
	precision := flag.Int("prec", 3, "decimal places in the output")
	list := flag.Bool("list", false, "list available patterns")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: dctinfo [flags] [pattern ...]\n\n")
		fmt.Fprintf(os.Stderr, "Prints the 2D DCT-II of generated test patterns.\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  dctinfo -width 8 -height 8 ramp impulse\n")
		fmt.Fprintf(os.Stderr, "  dctinfo -width 16 -height 9 -algo fft noise\n")
		fmt.Fprintf(os.Stderr, "  dctinfo -list\n")
	}
	flag.Parse()

	if *list {
		printList(os.Stdout)
		return
	}

	alg, err := dct.ParseAlgorithm(*algo)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(2)
	}

	opts := []dct.Option{dct.WithAlgorithm(alg)}
	if *ortho {
		opts = append(opts, dct.WithOrthonormal())
	}
	if !*fixed {
		opts = append(opts, dct.WithoutFixed8x8())
	}

	p, err := dct.NewPipeline(*width, *height, opts...)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	names := flag.Args()
	if len(names) == 0 {
		names = []string{"identity"}
	}
	entries := resolveEntries(names)
	if len(entries) == 0 {
		fmt.Fprintf(os.Stderr, "error: no matching patterns\n")
		os.Exit(1)
	}

	fmt.Printf("size %dx%d, algorithm %s, strategy %s, simd %+v\n\n", p.Width(), p.Height(), alg, p.Strategy(), cpu.DetectFeatures())

	rng := rand.New(rand.NewSource(*seed))
	for _, e := range entries {
		data := e.gen(*width, *height, rng)
		if err := p.Apply(data); err != nil {
			fmt.Fprintf(os.Stderr, "error: %s: %v\n", e.name, err)
			os.Exit(1)
		}
		fmt.Printf("%s:\n", e.name)
		if err := printMatrix(os.Stdout, data, *width, *height, *precision); err != nil {
			fmt.Fprintf(os.Stderr, "error: failed to write output: %v\n", err)
			os.Exit(1)
		}
		fmt.Println()
	}
}

func printList(w io.Writer) {
	sorted := append([]patternEntry(nil), registry...)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].name < sorted[j].name })

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	for _, e := range sorted {
		_, _ = fmt.Fprintf(tw, "%s\t%s\n", e.name, e.desc)
	}
	_ = tw.Flush()
}

func resolveEntries(names []string) []patternEntry {
	byName := make(map[string]patternEntry, len(registry))
	for _, e := range registry {
		byName[e.name] = e
	}

	var result []patternEntry
	for _, name := range names {
		name = strings.ToLower(strings.TrimSpace(name))
		e, ok := byName[name]
		if !ok {
			fmt.Fprintf(os.Stderr, "warning: unknown pattern %q (use -list to see available)\n", name)
			continue
		}
		result = append(result, e)
	}
	return result
}

func printMatrix(w io.Writer, data []float64, width, height, precision int) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', tabwriter.AlignRight)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			v := data[y*width+x]
			if math.Abs(v) < 0.5*math.Pow10(-precision) {
				v = 0
			}
			if _, err := fmt.Fprintf(tw, "%.*f\t", precision, v); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintln(tw); err != nil {
			return err
		}
	}
	return tw.Flush()
}

func identity(width, height int, _ *rand.Rand) []float64 {
	out := make([]float64, width*height)
	for i := 0; i < width && i < height; i++ {
		out[i*width+i] = 1
	}
	return out
}

func constant(value float64) func(int, int, *rand.Rand) []float64 {
	return func(width, height int, _ *rand.Rand) []float64 {
		out := make([]float64, width*height)
		for i := range out {
			out[i] = value
		}
		return out
	}
}

func impulse(width, height int, _ *rand.Rand) []float64 {
	out := make([]float64, width*height)
	if len(out) > 0 {
		out[0] = 1
	}
	return out
}

func ramp(width, height int, _ *rand.Rand) []float64 {
	out := make([]float64, width*height)
	for i := range out {
		out[i] = float64(i)
	}
	return out
}

func noise(width, height int, rng *rand.Rand) []float64 {
	out := make([]float64, width*height)
	for i := range out {
		out[i] = rng.Float64()*2 - 1
	}
	return out
}
