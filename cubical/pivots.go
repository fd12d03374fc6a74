package cubical

import "github.com/RoaringBitmap/roaring/v2"

// PivotIndex maps a coface id acting as a pivot to the column that owns it.
// The owned ids are mirrored in a roaring bitmap, which doubles as the
// exclusion set when the next dimension's columns are built.
type PivotIndex struct {
	owner map[CellID]int
	ids   *roaring.Bitmap
}

// NewPivotIndex returns an empty index sized for about capacity pivots.
func NewPivotIndex(capacity int) *PivotIndex {
	return &PivotIndex{
		owner: make(map[CellID]int, capacity),
		ids:   roaring.New(),
	}
}

// Owner returns the column owning id, if any.
func (p *PivotIndex) Owner(id CellID) (int, bool) {
	col, ok := p.owner[id]

	return col, ok
}

// Contains reports whether id is already a pivot.
func (p *PivotIndex) Contains(id CellID) bool {
	return p.ids.Contains(uint32(id))
}

// Set records column as the owner of id.
func (p *PivotIndex) Set(id CellID, column int) {
	p.owner[id] = column
	p.ids.Add(uint32(id))
}

// Len returns the number of pivots.
func (p *PivotIndex) Len() int { return len(p.owner) }

// IDs returns the bitmap of pivot ids. The bitmap is shared, not copied.
func (p *PivotIndex) IDs() *roaring.Bitmap { return p.ids }
