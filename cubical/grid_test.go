package cubical

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// randomGrid returns a grid with integer values in [0, levels) drawn from a
// fixed seed. Values equal to threshold are absent from the filtration.
func randomGrid(t testing.TB, seed int64, levels int, threshold float64, extents ...int) *Grid {
	t.Helper()
	rng := rand.New(rand.NewSource(seed))
	n := 1
	for _, a := range extents {
		n *= a
	}
	values := make([]float64, n)
	for i := range values {
		values[i] = float64(rng.Intn(levels))
	}
	g, err := NewGrid(extents, values, threshold)
	require.NoError(t, err)

	return g
}

// facets returns the 2k facets of the k-cell id (k ≥ 1).
func facets(g *Grid, id CellID, k int) []CellID {
	enc := g.Encoding()
	c, typ := enc.Decode(id)
	axes := enc.Axes(k, typ)
	var out []CellID
	for a := 0; a < g.Dim(); a++ {
		if axes&(1<<a) == 0 {
			continue
		}
		ft := enc.TypeOf(k-1, axes&^(1<<a))
		out = append(out, enc.Encode(c, ft))
		up := c
		up[a]++
		out = append(out, enc.Encode(up, ft))
	}

	return out
}

func TestNewGrid_Errors(t *testing.T) {
	cases := []struct {
		name      string
		extents   []int
		values    []float64
		threshold float64
		want      error
	}{
		{"1D", []int{3}, []float64{0, 1, 2}, 9, ErrDimension},
		{"5D", []int{1, 1, 1, 1, 1}, []float64{0}, 9, ErrDimension},
		{"ZeroExtent", []int{0, 2}, nil, 9, ErrExtent},
		{"TooLarge3D", []int{MaxExtent(3) + 1, 1, 1}, make([]float64, MaxExtent(3)+1), 9, ErrExtent},
		{"ShortValues", []int{2, 2}, []float64{0, 1, 2}, 9, ErrValueCount},
		{"NaNThreshold", []int{2, 2}, []float64{0, 1, 2, 3}, math.NaN(), ErrThreshold},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			g, err := NewGrid(tc.extents, tc.values, tc.threshold)
			assert.ErrorIs(t, err, tc.want)
			assert.Nil(t, g)
		})
	}
}

func TestNewGrid_MaxExtentAccepted(t *testing.T) {
	ext := MaxExtent(4)
	g, err := NewGrid([]int{ext, 1, 1, 1}, make([]float64, ext), 1)
	require.NoError(t, err)
	assert.Equal(t, []int{ext, 1, 1, 1}, g.Extents())
}

// TestGrid_Birthday2D walks the cells of a 2×2 image
//
//	y=2: 3 4
//	y=1: 1 2
func TestGrid_Birthday2D(t *testing.T) {
	g, err := NewGrid([]int{2, 2}, []float64{1, 2, 3, 4}, 9)
	require.NoError(t, err)
	enc := g.Encoding()

	xEdge := enc.TypeOf(1, 0b01)
	yEdge := enc.TypeOf(1, 0b10)

	cases := []struct {
		name string
		c    Coords
		dim  int
		typ  int
		want float64
	}{
		{"Vertex11", Coords{1, 1}, 0, 0, 1},
		{"Vertex21", Coords{2, 1}, 0, 0, 2},
		{"Vertex22", Coords{2, 2}, 0, 0, 4},
		{"EdgeX", Coords{1, 1}, 1, xEdge, 2},
		{"EdgeY", Coords{1, 1}, 1, yEdge, 3},
		{"EdgeXTop", Coords{1, 2}, 1, xEdge, 4},
		{"Square", Coords{1, 1}, 2, 0, 4},
		{"EdgeOutside", Coords{2, 1}, 1, xEdge, 9},
		{"VertexPadding", Coords{0, 1}, 0, 0, 9},
		{"SquareOutside", Coords{2, 2}, 2, 0, 9},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, g.Birthday(enc.Encode(tc.c, tc.typ), tc.dim))
		})
	}

	assert.Equal(t, 9.0, g.Birthday(0, -1), "negative dimension")
	assert.Equal(t, 9.0, g.Birthday(0, 3), "dimension above d")
}

func TestGrid_Normalization(t *testing.T) {
	g, err := NewGrid([]int{2, 2}, []float64{0, 12, math.NaN(), 3}, 5)
	require.NoError(t, err)

	assert.Equal(t, []float64{0, 5, 5, 3}, g.Values())
	assert.Equal(t, 5.0, g.Value(Coords{2, 1}))
	assert.Equal(t, 5.0, g.Value(Coords{1, 2}))
	assert.Equal(t, 2, g.CellCount(0))
	assert.Zero(t, g.CellCount(1), "the two finite vertices are diagonal")
	assert.Zero(t, g.CellCount(2))
}

func TestGrid_ValueOutOfRange(t *testing.T) {
	g, err := NewGrid([]int{2, 3, 2}, make([]float64, 12), 7)
	require.NoError(t, err)

	for _, c := range []Coords{{0, 1, 1}, {3, 1, 1}, {1, 4, 1}, {1, 1, -5}} {
		assert.Equal(t, 7.0, g.Value(c), "%v", c)
		assert.False(t, g.InBounds(c))
	}
	assert.Equal(t, 0.0, g.Value(Coords{2, 3, 2}))
}

// TestGrid_ValuesOrder checks axis 0 varies fastest in and out.
func TestGrid_ValuesOrder(t *testing.T) {
	values := []float64{0, 1, 2, 3, 4, 5}
	g, err := NewGrid([]int{3, 2}, values, 9)
	require.NoError(t, err)

	assert.Equal(t, values, g.Values())
	assert.Equal(t, 2.0, g.Value(Coords{3, 1}))
	assert.Equal(t, 3.0, g.Value(Coords{1, 2}))
}

// TestGrid_CellCount3x2 counts a 3×2 image: 6 vertices, 4+3 edges, 2 squares.
func TestGrid_CellCount3x2(t *testing.T) {
	g, err := NewGrid([]int{3, 2}, make([]float64, 6), 1)
	require.NoError(t, err)

	assert.Equal(t, 6, g.CellCount(0))
	assert.Equal(t, 7, g.CellCount(1))
	assert.Equal(t, 2, g.CellCount(2))
	assert.Zero(t, g.CellCount(3))
}

// TestGrid_Monotonicity checks every facet of a finite cell is born no later
// than the cell itself.
func TestGrid_Monotonicity(t *testing.T) {
	grids := []*Grid{
		randomGrid(t, 1, 6, 5, 5, 4),
		randomGrid(t, 2, 6, 5, 4, 3, 3),
		randomGrid(t, 3, 6, 5, 3, 3, 2, 2),
	}
	for _, g := range grids {
		for k := 1; k <= g.Dim(); k++ {
			g.forEachCell(k, func(c Cell) {
				require.Equal(t, c.Birthday, g.Birthday(c.ID, k))
				for _, f := range facets(g, c.ID, k) {
					assert.LessOrEqual(t, g.Birthday(f, k-1), c.Birthday)
				}
			})
		}
	}
}
