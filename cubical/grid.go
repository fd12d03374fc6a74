package cubical

import (
	"fmt"
	"math"
	"sort"
)

// Grid is an immutable d-dimensional voxel image padded by one cell of
// threshold on every side of every axis.
//
// Storage is a flat []float64 with axis 0 varying fastest; the offset of
// coordinate c is Σ c[i]·stride[i], coordinates ranging over [0, extent+1].
// Voxel values >= threshold (and NaN) are stored as threshold, so a cell is
// present in the filtration iff its birthday is below threshold.
type Grid struct {
	enc       Encoding
	extents   [MaxDim]int
	strides   [MaxDim]int
	values    []float64
	threshold float64
	shapes    [MaxDim + 1][]orientation
}

// orientation caches the geometry of one (cell dimension, type) pair.
type orientation struct {
	axes     uint8
	vertices []int       // flat offsets of the 2^k vertices relative to the anchor
	extend   []extension // coboundary rules, descending by coface type
}

// extension describes the two cofaces obtained by growing a cell along axis.
type extension struct {
	axis   int
	typ    int    // orientation type of the cofaces
	stride int    // flat step along axis
	idStep CellID // id step along axis
}

// NewGrid builds a Grid from extents (one per axis), values (len == Π
// extents, axis 0 varying fastest) and threshold.
//
// Errors:
//   - ErrDimension  if len(extents) ∉ {2,3,4}.
//   - ErrThreshold  if threshold is NaN.
//   - ErrExtent     if any extent is < 1 or > MaxExtent(d).
//   - ErrValueCount if len(values) != Π extents.
//
// Complexity: O(Π(extent+2)) time and memory.
func NewGrid(extents []int, values []float64, threshold float64) (*Grid, error) {
	d := len(extents)
	enc, err := NewEncoding(d)
	if err != nil {
		return nil, err
	}
	if math.IsNaN(threshold) {
		return nil, ErrThreshold
	}

	limit := MaxExtent(d)
	total := 1
	for i, a := range extents {
		if a < 1 || a > limit {
			return nil, fmt.Errorf("axis %d extent %d not in [1,%d]: %w", i, a, limit, ErrExtent)
		}
		total *= a
	}
	if len(values) != total {
		return nil, fmt.Errorf("got %d values for %v: %w", len(values), extents, ErrValueCount)
	}

	g := &Grid{enc: enc, threshold: threshold}
	padded := 1
	for i := 0; i < d; i++ {
		g.extents[i] = extents[i]
		g.strides[i] = padded
		padded *= extents[i] + 2
	}

	g.values = make([]float64, padded)
	for i := range g.values {
		g.values[i] = threshold
	}
	for i, v := range values {
		off, rem := 0, i
		for a := 0; a < d; a++ {
			off += (rem%extents[a] + 1) * g.strides[a]
			rem /= extents[a]
		}
		if !(v < threshold) {
			v = threshold
		}
		g.values[off] = v
	}
	g.buildShapes()

	return g, nil
}

// buildShapes precomputes vertex offsets and coboundary rules for every
// (cell dimension, orientation type).
func (g *Grid) buildShapes() {
	d := g.enc.dim
	for k := 0; k <= d; k++ {
		g.shapes[k] = make([]orientation, len(g.enc.types[k]))
		for t, axes := range g.enc.types[k] {
			o := orientation{axes: axes}
			for sub := axes; ; sub = (sub - 1) & axes {
				off := 0
				for a := 0; a < d; a++ {
					if sub&(1<<a) != 0 {
						off += g.strides[a]
					}
				}
				o.vertices = append(o.vertices, off)
				if sub == 0 {
					break
				}
			}
			if k < d {
				for a := 0; a < d; a++ {
					if axes&(1<<a) != 0 {
						continue
					}
					o.extend = append(o.extend, extension{
						axis:   a,
						typ:    g.enc.TypeOf(k+1, axes|1<<a),
						stride: g.strides[a],
						idStep: CellID(1) << (uint(a) * g.enc.bits),
					})
				}
				// Descending coface type keeps the enumeration in descending id order.
				sort.Slice(o.extend, func(i, j int) bool { return o.extend[i].typ > o.extend[j].typ })
			}
			g.shapes[k][t] = o
		}
	}
}

// Dim returns the dimensionality d.
func (g *Grid) Dim() int { return g.enc.dim }

// Extents returns a copy of the per-axis extents.
func (g *Grid) Extents() []int {
	out := make([]int, g.enc.dim)
	copy(out, g.extents[:g.enc.dim])

	return out
}

// Threshold returns the "never born" sentinel.
func (g *Grid) Threshold() float64 { return g.threshold }

// Encoding returns the CellID encoding used by the grid.
func (g *Grid) Encoding() Encoding { return g.enc }

// InBounds reports whether c lies within [1, extent] on every axis.
func (g *Grid) InBounds(c Coords) bool {
	for a := 0; a < g.enc.dim; a++ {
		if c[a] < 1 || c[a] > g.extents[a] {
			return false
		}
	}

	return true
}

// Value returns the stored voxel value at c (1-based), or threshold outside
// the grid.
func (g *Grid) Value(c Coords) float64 {
	if !g.InBounds(c) {
		return g.threshold
	}

	return g.values[g.offset(c)]
}

// Values returns the interior voxel values, axis 0 varying fastest, after
// threshold normalization.
func (g *Grid) Values() []float64 {
	var out []float64
	g.forEachAnchor(func(_ Coords, base int) {
		out = append(out, g.values[base])
	})

	return out
}

// Birthday returns the filtration value of the dim-cell id: the stored value
// for a vertex, the maximum over its 2^dim vertices otherwise. Cells reaching
// outside [1, extent] and ids with an invalid type read as threshold.
func (g *Grid) Birthday(id CellID, dim int) float64 {
	if dim < 0 || dim > g.enc.dim {
		return g.threshold
	}
	c, typ := g.enc.Decode(id)
	if typ >= len(g.shapes[dim]) {
		return g.threshold
	}
	o := &g.shapes[dim][typ]
	for a := 0; a < g.enc.dim; a++ {
		hi := g.extents[a]
		if o.axes&(1<<a) != 0 {
			hi--
		}
		if c[a] < 1 || c[a] > hi {
			return g.threshold
		}
	}

	return g.birthdayAt(g.offset(c), o)
}

// CellCount returns the number of finite dim-cells.
func (g *Grid) CellCount(dim int) int {
	n := 0
	g.forEachCell(dim, func(Cell) { n++ })

	return n
}

// birthdayAt is the max over the orientation's vertices anchored at base.
func (g *Grid) birthdayAt(base int, o *orientation) float64 {
	b := math.Inf(-1)
	for _, off := range o.vertices {
		if v := g.values[base+off]; v > b {
			b = v
		}
	}

	return b
}

func (g *Grid) offset(c Coords) int {
	off := 0
	for a := 0; a < g.enc.dim; a++ {
		off += c[a] * g.strides[a]
	}

	return off
}

// edgeEnds returns the flat offsets of the two vertices of a 1-cell.
func (g *Grid) edgeEnds(id CellID) (int, int) {
	c, typ := g.enc.Decode(id)
	base := g.offset(c)
	axes := g.enc.types[1][typ]
	for a := 0; a < g.enc.dim; a++ {
		if axes&(1<<a) != 0 {
			return base, base + g.strides[a]
		}
	}

	return base, base
}

// forEachAnchor visits every interior coordinate, axis 0 varying fastest.
func (g *Grid) forEachAnchor(fn func(c Coords, base int)) {
	d := g.enc.dim
	var c Coords
	for a := 0; a < d; a++ {
		c[a] = 1
	}
	base := g.offset(c)
	for {
		fn(c, base)
		a := 0
		for ; a < d; a++ {
			if c[a] < g.extents[a] {
				c[a]++
				base += g.strides[a]
				break
			}
			base -= (c[a] - 1) * g.strides[a]
			c[a] = 1
		}
		if a == d {
			return
		}
	}
}

// forEachCell visits every finite dim-cell. Cells are anchored at their
// lowest vertex, so interior anchors cover the whole complex.
func (g *Grid) forEachCell(dim int, fn func(Cell)) {
	if dim < 0 || dim > g.enc.dim {
		return
	}
	shapes := g.shapes[dim]
	g.forEachAnchor(func(c Coords, base int) {
		anchor := g.enc.Encode(c, 0)
		for t := range shapes {
			b := g.birthdayAt(base, &shapes[t])
			if b >= g.threshold {
				continue
			}
			fn(Cell{Birthday: b, ID: g.enc.withType(anchor, t), Dim: dim})
		}
	})
}
