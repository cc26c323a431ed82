package transpose

import (
	"errors"
	"fmt"
	"iter"
	"math"

	"github.com/cwbudde/algo-dct/internal/alias"
)

// BlockSize is the edge length of the square tiles used by [Transpose].
const BlockSize = 8

// ErrInvalidDimensions is returned when the declared width and height do not
// match the buffers, or when input and output overlap.
var ErrInvalidDimensions = errors.New("invalid matrix dimensions")

// tile is a rectangular region of the input, in element coordinates.
// Regular tiles are BlockSize x BlockSize, endcaps are clipped.
type tile struct {
	x, y          int
	width, height int
}

// Transpose writes the transpose of the width x height row-major matrix in
// input to output, so that output[y+x*height] == input[x+y*width].
//
// Both buffers must hold exactly width*height elements and must not overlap.
// Zero-sized matrices are valid and leave output untouched.
func Transpose[T any](width, height int, input, output []T) error {
	if err := validate(width, height, len(input), len(output)); err != nil {
		return err
	}
	if alias.Overlap(input, output) {
		return fmt.Errorf("%w: input and output overlap", ErrInvalidDimensions)
	}

	for t := range tiles(width, height) {
		transposeTile(input, output, width, height, t)
	}

	return nil
}

func validate(width, height, inLen, outLen int) error {
	if width < 0 || height < 0 {
		return fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, width, height)
	}
	if width != 0 && height > math.MaxInt/width {
		return fmt.Errorf("%w: %dx%d overflows int", ErrInvalidDimensions, width, height)
	}
	n := width * height
	if inLen != n {
		return fmt.Errorf("%w: input length %d, want %d (%dx%d)", ErrInvalidDimensions, inLen, n, width, height)
	}
	if outLen != n {
		return fmt.Errorf("%w: output length %d, want %d (%dx%d)", ErrInvalidDimensions, outLen, n, width, height)
	}
	return nil
}

// tiles yields the full tiles of each block row followed by that row's
// right endcap, then the bottom endcaps and finally the corner endcap.
// Together they cover the matrix exactly once.
func tiles(width, height int) iter.Seq[tile] {
	return func(yield func(tile) bool) {
		xBlocks := width / BlockSize
		yBlocks := height / BlockSize
		remX := width - xBlocks*BlockSize
		remY := height - yBlocks*BlockSize

		for by := 0; by < yBlocks; by++ {
			y := by * BlockSize
			for bx := 0; bx < xBlocks; bx++ {
				if !yield(tile{x: bx * BlockSize, y: y, width: BlockSize, height: BlockSize}) {
					return
				}
			}
			if remX > 0 {
				if !yield(tile{x: xBlocks * BlockSize, y: y, width: remX, height: BlockSize}) {
					return
				}
			}
		}

		if remY == 0 {
			return
		}
		y := yBlocks * BlockSize
		for bx := 0; bx < xBlocks; bx++ {
			if !yield(tile{x: bx * BlockSize, y: y, width: BlockSize, height: remY}) {
				return
			}
		}
		if remX > 0 {
			yield(tile{x: xBlocks * BlockSize, y: y, width: remX, height: remY})
		}
	}
}

// transposeTile copies one tile. The inner loop walks y so that writes to
// output stay contiguous within the tile column.
func transposeTile[T any](input, output []T, width, height int, t tile) {
	for x := t.x; x < t.x+t.width; x++ {
		dst := output[x*height+t.y : x*height+t.y+t.height]
		for i := range dst {
			dst[i] = input[x+(t.y+i)*width]
		}
	}
}
