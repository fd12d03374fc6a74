package cubical

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDisjointSet_ElderRule(t *testing.T) {
	s := NewDisjointSet([]float64{3, 1, 2, 5})

	s.Link(0, 1)
	assert.Equal(t, 1, s.Find(0), "older root survives")
	assert.Equal(t, 1.0, s.Birth(s.Find(0)))
	assert.Equal(t, 3.0, s.TimeMax(s.Find(0)))

	s.Link(1, 3)
	root := s.Find(3)
	assert.Equal(t, 1, root)
	assert.Equal(t, 5.0, s.TimeMax(root))
	assert.Equal(t, root, s.Find(0))
	assert.Equal(t, 2, s.Find(2), "untouched vertex is its own root")
}

func TestDisjointSet_TieGoesToSecond(t *testing.T) {
	s := NewDisjointSet([]float64{4, 4, 4})

	s.Link(0, 1)
	assert.Equal(t, 1, s.Find(0))

	s.Link(1, 2)
	assert.Equal(t, 2, s.Find(0))
	assert.Equal(t, 2, s.Find(1))
}

func TestDisjointSet_LinkSameSet(t *testing.T) {
	s := NewDisjointSet([]float64{0, 1})
	s.Link(0, 1)
	s.Link(1, 0)

	assert.Equal(t, 0, s.Find(1))
	assert.Equal(t, 1.0, s.TimeMax(0))
}

// TestDisjointSet_PathCompression builds a chain and checks Find flattens it.
func TestDisjointSet_PathCompression(t *testing.T) {
	const n = 64
	values := make([]float64, n)
	for i := range values {
		values[i] = float64(n - i)
	}
	s := NewDisjointSet(values)
	for i := 0; i < n-1; i++ {
		s.Link(i, i+1)
	}

	root := s.Find(0)
	assert.Equal(t, n-1, root)
	for i := 0; i < n; i++ {
		assert.Equal(t, root, s.parent[i], "i=%d", i)
	}
	assert.Equal(t, float64(n), s.TimeMax(root))
	assert.Equal(t, 1.0, s.Birth(root))
}
