package cubical

import "errors"

// Configuration errors. They are returned before any reduction starts, so a
// failed call never yields partial output. Context is attached with
// fmt.Errorf("...: %w", ErrX); match with errors.Is.
var (
	// ErrDimension indicates a grid dimensionality outside {2,3,4}.
	ErrDimension = errors.New("cubical: grid dimension must be 2, 3 or 4")

	// ErrExtent indicates an extent < 1 or one that would alias under the
	// CellID bit packing (see MaxExtent).
	ErrExtent = errors.New("cubical: extent out of range")

	// ErrValueCount indicates that the number of voxel values differs from
	// the product of the extents.
	ErrValueCount = errors.New("cubical: value count does not match extents")

	// ErrThreshold indicates a NaN threshold.
	ErrThreshold = errors.New("cubical: threshold must not be NaN")

	// ErrMethod indicates an unknown reduction strategy.
	ErrMethod = errors.New("cubical: unknown method")

	// ErrNilGrid indicates that a nil *Grid was passed to Compute.
	ErrNilGrid = errors.New("cubical: grid is nil")
)
