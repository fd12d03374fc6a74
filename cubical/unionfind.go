package cubical

// DisjointSet is a union-find forest over grid vertices, indexed by their
// flat offset in the padded storage. Every root r carries
//
//	Birth(r)   = min birthday over the vertices merged into r,
//	TimeMax(r) = max birthday over the same vertices.
//
// Only Link mutates the forest (besides path compression in Find).
type DisjointSet struct {
	parent    []int
	birthtime []float64
	timeMax   []float64
}

// NewDisjointSet makes every vertex its own root, born at its own value.
// Complexity: O(len(values)).
func NewDisjointSet(values []float64) *DisjointSet {
	s := &DisjointSet{
		parent:    make([]int, len(values)),
		birthtime: make([]float64, len(values)),
		timeMax:   make([]float64, len(values)),
	}
	for i, v := range values {
		s.parent[i] = i
		s.birthtime[i] = v
		s.timeMax[i] = v
	}

	return s
}

// Find returns the root of x and compresses the path to it.
// Iterative: one pass to locate the root, one pass to repoint.
func (s *DisjointSet) Find(x int) int {
	root := x
	for s.parent[root] != root {
		root = s.parent[root]
	}
	for s.parent[x] != root {
		next := s.parent[x]
		s.parent[x] = root
		x = next
	}

	return root
}

// Link merges the sets of x and y. The root with the smaller birth time
// survives (elder rule); on equal birth times the root of y survives. The
// survivor's TimeMax becomes the max of both.
func (s *DisjointSet) Link(x, y int) {
	x, y = s.Find(x), s.Find(y)
	if x == y {
		return
	}
	if s.birthtime[x] < s.birthtime[y] {
		x, y = y, x
	}
	// y survives: it is strictly older, or the tie goes to y.
	s.parent[x] = y
	if s.timeMax[x] > s.timeMax[y] {
		s.timeMax[y] = s.timeMax[x]
	}
}

// Birth returns the birth time stored at x (meaningful for roots).
func (s *DisjointSet) Birth(x int) float64 { return s.birthtime[x] }

// TimeMax returns the max time stored at x (meaningful for roots).
func (s *DisjointSet) TimeMax(x int) float64 { return s.timeMax[x] }
