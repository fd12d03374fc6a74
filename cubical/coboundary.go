package cubical

import "iter"

// CoboundaryEnumerator produces the finite cofaces of one source cell.
//
// Order: for a k-cell spanning axis set S, the axes a ∉ S are visited by
// descending orientation type of S∪{a}; each axis yields the "+" coface
// (same anchor) before the "−" coface (anchor shifted by −1 along a). Since
// the type occupies the highest id bits, cofaces come out in strictly
// descending id order. Cofaces whose birthday reaches threshold are skipped.
//
// An enumerator is single pass: once Next reports false it stays exhausted
// until Reset binds it to another cell. It is not safe for concurrent use.
type CoboundaryEnumerator struct {
	g      *Grid
	src    Cell
	base   int
	anchor CellID
	verts  []int
	ext    []extension
	pos    int
}

// NewCoboundaryEnumerator returns an unbound enumerator over g.
func NewCoboundaryEnumerator(g *Grid) *CoboundaryEnumerator {
	return &CoboundaryEnumerator{g: g}
}

// Reset binds the enumerator to c and rewinds it. Cells of dimension d (or
// out of range) have no cofaces.
func (e *CoboundaryEnumerator) Reset(c Cell) {
	e.src = c
	e.pos = 0
	e.ext = nil
	e.verts = nil
	if c.Dim < 0 || c.Dim >= e.g.enc.dim {
		return
	}
	coords, typ := e.g.enc.Decode(c.ID)
	if typ >= len(e.g.shapes[c.Dim]) || !e.g.InBounds(coords) {
		return
	}
	o := &e.g.shapes[c.Dim][typ]
	e.base = e.g.offset(coords)
	e.anchor = c.ID & e.g.enc.coordMask
	e.verts = o.vertices
	e.ext = o.extend
}

// Next returns the next finite coface, or false once exhausted.
//
// The coface birthday is max(source birthday, values of the vertices added
// by the extension): the source cell's vertices shifted by ±1 along the
// extension axis.
func (e *CoboundaryEnumerator) Next() (Cell, bool) {
	for e.pos < 2*len(e.ext) {
		x := e.ext[e.pos>>1]
		minus := e.pos&1 == 1
		e.pos++

		anchor, shift := e.anchor, x.stride
		if minus {
			anchor -= x.idStep
			shift = -x.stride
		}
		b := e.src.Birthday
		for _, off := range e.verts {
			if v := e.g.values[e.base+off+shift]; v > b {
				b = v
			}
		}
		if b >= e.g.threshold {
			continue
		}

		return Cell{Birthday: b, ID: e.g.enc.withType(anchor, x.typ), Dim: e.src.Dim + 1}, true
	}

	return Cell{}, false
}

// Cofaces returns the coboundary of c as a lazy sequence, in the same order
// as CoboundaryEnumerator.
func (g *Grid) Cofaces(c Cell) iter.Seq[Cell] {
	return func(yield func(Cell) bool) {
		e := NewCoboundaryEnumerator(g)
		e.Reset(c)
		for {
			cf, ok := e.Next()
			if !ok || !yield(cf) {
				return
			}
		}
	}
}
