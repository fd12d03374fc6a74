package gridio

import (
	"fmt"

	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/cubicalripser/cubical"
)

// preallocLimit caps the value capacity reserved from a header before any
// value has been read.
const preallocLimit = 1 << 16

// Image is a decoded voxel image: extents per axis and values with axis 0
// varying fastest.
type Image struct {
	Extents []int
	Values  []float64
}

// Len returns Π Extents.
func (im Image) Len() int {
	n := 1
	for _, a := range im.Extents {
		n *= a
	}

	return n
}

// Range returns the smallest and largest value. An empty image reports
// (0, 0).
func (im Image) Range() (lo, hi float64) {
	if len(im.Values) == 0 {
		return 0, 0
	}

	return floats.Min(im.Values), floats.Max(im.Values)
}

func (im Image) validate() error {
	if len(im.Extents) == 0 {
		return fmt.Errorf("no extents: %w", ErrFormat)
	}
	for i, a := range im.Extents {
		if a < 1 {
			return fmt.Errorf("axis %d extent %d: %w", i, a, ErrFormat)
		}
	}
	if len(im.Values) != im.Len() {
		return fmt.Errorf("%d values for extents %v: %w", len(im.Values), im.Extents, ErrFormat)
	}

	return nil
}

// checkDim rejects header dimensions no cubical.Grid supports.
func checkDim(dim int64) error {
	if dim < 2 || dim > cubical.MaxDim {
		return fmt.Errorf("dimension %d: %w", dim, ErrFormat)
	}

	return nil
}

// checkExtent rejects an extent outside [1, cubical.MaxExtent(dim)]. Called
// per axis as the header is read, before any value storage is reserved.
func checkExtent(dim, axis int, a int64) error {
	if a < 1 || a > int64(cubical.MaxExtent(dim)) {
		return fmt.Errorf("axis %d extent %d: %w: %w", axis, a, ErrFormat, cubical.ErrExtent)
	}

	return nil
}
