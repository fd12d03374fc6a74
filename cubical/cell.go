package cubical

import (
	"fmt"
	"math/bits"
)

// MaxDim is the largest supported grid dimensionality.
const MaxDim = 4

// typeBits is the width of the orientation field. C(4,2) = 6 is the largest
// number of orientations a cell dimension can have.
const typeBits = 3

// CellID is a bit-packed cell identifier:
//
//	id = type << (d·B) | c[d-1] << ((d-1)·B) | … | c[1] << B | c[0]
//
// B is the per-axis width chosen by the dimensionality (see axisBits). The
// orientation type sits in the highest bits, so ordering ids first orders by
// orientation and then by anchor position.
type CellID uint32

// Coords is a fixed-size coordinate tuple; only the first d entries are used.
type Coords [MaxDim]int

// axisBits returns the per-axis bit width for dimensionality d, or 0 when d
// is unsupported. d·B + typeBits never exceeds 32.
func axisBits(d int) uint {
	switch d {
	case 2:
		return 13
	case 3:
		return 9
	case 4:
		return 7
	}

	return 0
}

// MaxExtent returns the largest extent per axis for dimensionality d, or 0
// when d is unsupported. Coordinates range over [0, extent+1] (the padding
// included), all of which must fit in the per-axis field.
func MaxExtent(d int) int {
	b := axisBits(d)
	if b == 0 {
		return 0
	}

	return 1<<b - 2
}

// Encoding converts between CellIDs and (coordinates, orientation type) for
// one dimensionality. The zero value is unusable; build with NewEncoding.
//
// Orientation types of k-cells enumerate the k-element axis subsets in
// ascending order of their bitmask (axis i ↔ bit i). For d = 3:
//
//	k=1: {x}, {y}, {z}
//	k=2: {x,y}, {x,z}, {y,z}
//
// 0-cells and d-cells have the single type 0.
type Encoding struct {
	dim       int
	bits      uint
	axisMask  uint32
	coordMask CellID
	types     [MaxDim + 1][]uint8
	typeOf    [MaxDim + 1][1 << MaxDim]int8
}

// NewEncoding returns the encoding for dimensionality d.
// Returns ErrDimension when d is not 2, 3 or 4.
func NewEncoding(d int) (Encoding, error) {
	b := axisBits(d)
	if b == 0 {
		return Encoding{}, fmt.Errorf("dimension %d: %w", d, ErrDimension)
	}
	e := Encoding{
		dim:       d,
		bits:      b,
		axisMask:  1<<b - 1,
		coordMask: CellID(1)<<(uint(d)*b) - 1,
	}
	for k := range e.typeOf {
		for m := range e.typeOf[k] {
			e.typeOf[k][m] = -1
		}
	}
	for mask := 0; mask < 1<<d; mask++ {
		k := bits.OnesCount8(uint8(mask))
		e.typeOf[k][mask] = int8(len(e.types[k]))
		e.types[k] = append(e.types[k], uint8(mask))
	}

	return e, nil
}

// Dim returns the dimensionality the encoding was built for.
func (e Encoding) Dim() int { return e.dim }

// Bits returns the per-axis bit width.
func (e Encoding) Bits() uint { return e.bits }

// Types returns the number of orientation types of dim-cells, C(d, dim).
func (e Encoding) Types(dim int) int {
	if dim < 0 || dim > e.dim {
		return 0
	}

	return len(e.types[dim])
}

// Axes returns the bitmask of axes spanned by a dim-cell of the given type.
func (e Encoding) Axes(dim, typ int) uint8 {
	return e.types[dim][typ]
}

// TypeOf returns the orientation type of the dim-cell spanning axes, or -1.
func (e Encoding) TypeOf(dim int, axes uint8) int {
	if dim < 0 || dim > e.dim || int(axes) >= 1<<e.dim {
		return -1
	}

	return int(e.typeOf[dim][axes])
}

// Encode packs coordinates and an orientation type into a CellID.
// Coordinates are truncated to the per-axis width; callers keep them within
// [0, 2^B).
func (e Encoding) Encode(c Coords, typ int) CellID {
	id := CellID(typ) << (uint(e.dim) * e.bits)
	for i := 0; i < e.dim; i++ {
		id |= CellID(uint32(c[i])&e.axisMask) << (uint(i) * e.bits)
	}

	return id
}

// Decode unpacks a CellID into coordinates and orientation type.
func (e Encoding) Decode(id CellID) (Coords, int) {
	var c Coords
	for i := 0; i < e.dim; i++ {
		c[i] = int(uint32(id>>(uint(i)*e.bits)) & e.axisMask)
	}

	return c, int(id >> (uint(e.dim) * e.bits))
}

// withType replaces the orientation field of an anchor-only id.
func (e Encoding) withType(anchor CellID, typ int) CellID {
	return anchor&e.coordMask | CellID(typ)<<(uint(e.dim)*e.bits)
}

// Cell is a cell of the complex together with its birthday.
type Cell struct {
	Birthday float64
	ID       CellID
	Dim      int
}

// Before reports whether c precedes o in the column order: larger birthday
// first, ties broken by ascending id.
func (c Cell) Before(o Cell) bool {
	if c.Birthday != o.Birthday {
		return c.Birthday > o.Birthday
	}

	return c.ID < o.ID
}

// String renders the cell as "dim:id@birthday".
func (c Cell) String() string {
	return fmt.Sprintf("%d:%d@%g", c.Dim, c.ID, c.Birthday)
}
