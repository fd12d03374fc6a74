package cubical

import (
	"sort"

	"github.com/RoaringBitmap/roaring/v2"
)

// ColumnSet is the ordered list of cells of one dimension that take part in
// a reduction pass, sorted by Cell.Before.
type ColumnSet struct {
	dim   int
	cells []Cell
}

// BuildColumns collects every finite dim-cell whose id is not in excluded
// (nil excludes nothing) and sorts them by descending birthday, ties by
// ascending id. Excluding the pivots of the previous dimension clears cells
// that are already paired.
//
// Complexity: O(N·C(d,dim)·2^dim + M log M), M the number of columns.
func BuildColumns(g *Grid, dim int, excluded *roaring.Bitmap) *ColumnSet {
	cs := &ColumnSet{dim: dim}
	g.forEachCell(dim, func(c Cell) {
		if excluded != nil && excluded.Contains(uint32(c.ID)) {
			return
		}
		cs.cells = append(cs.cells, c)
	})
	cs.sort()

	return cs
}

// newColumnSet wraps already collected cells and sorts them.
func newColumnSet(dim int, cells []Cell) *ColumnSet {
	cs := &ColumnSet{dim: dim, cells: cells}
	cs.sort()

	return cs
}

func (cs *ColumnSet) sort() {
	sort.Slice(cs.cells, func(i, j int) bool { return cs.cells[i].Before(cs.cells[j]) })
}

// Dim returns the cell dimension of the set.
func (cs *ColumnSet) Dim() int { return cs.dim }

// Len returns the number of columns.
func (cs *ColumnSet) Len() int { return len(cs.cells) }

// At returns column i.
func (cs *ColumnSet) At(i int) Cell { return cs.cells[i] }

// Cells returns a copy of the columns in order.
func (cs *ColumnSet) Cells() []Cell {
	out := make([]Cell, len(cs.cells))
	copy(out, cs.cells)

	return out
}
