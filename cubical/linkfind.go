package cubical

import "sort"

// linkFind computes the dimension-0 pairs with union-find and returns the
// dimension-1 columns: the edges that close a cycle instead of merging two
// components.
//
// Steps:
//  1. Collect every finite edge; walk them by ascending birthday (ties by
//     descending id), i.e. the column order reversed.
//  2. For edge (u,v) with roots ru, rv:
//     – ru == rv: the edge closes a cycle; carry it into dimension 1.
//     – otherwise the younger component dies: birth = max(Birth(ru), Birth(rv)),
//     death = max(TimeMax(ru), TimeMax(rv)); Link(ru, rv).
//  3. Every component left over is essential, born at its root's birth time,
//     ascending by birth (ties by root offset). On a connected complex that
//     is the single class born at the running minimum of the roots' birth
//     times. A disconnected complex yields one essential pair per
//     component, matching ComputePairs on the same grid, instead of a
//     single minimum-birth pair.
//
// Complexity: O(E log E + E·α(V)).
func (r *run) linkFind() *ColumnSet {
	g := r.g
	edges := BuildColumns(g, 1, nil)
	set := NewDisjointSet(g.values)
	stats := DimStats{Dim: 0}

	var carry []Cell
	oldest := g.threshold
	for i := edges.Len() - 1; i >= 0; i-- {
		e := edges.At(i)
		u, v := g.edgeEnds(e.ID)
		ru, rv := set.Find(u), set.Find(v)
		if m := min(set.Birth(ru), set.Birth(rv)); m < oldest {
			oldest = m
		}
		if ru == rv {
			carry = append(carry, e)
			continue
		}

		birth := max(set.Birth(ru), set.Birth(rv))
		death := max(set.TimeMax(ru), set.TimeMax(rv))
		if r.emit(0, birth, death) {
			stats.Emitted++
		}
		set.Link(ru, rv)
		stats.Pivots++
	}

	// Roots of all finite vertices, oldest first; ties by offset.
	seen := make(map[int]struct{})
	var roots []int
	g.forEachAnchor(func(_ Coords, base int) {
		if g.values[base] >= g.threshold {
			return
		}
		stats.Columns++
		root := set.Find(base)
		if _, ok := seen[root]; ok {
			return
		}
		seen[root] = struct{}{}
		roots = append(roots, root)
	})
	sort.Slice(roots, func(i, j int) bool {
		bi, bj := set.Birth(roots[i]), set.Birth(roots[j])
		if bi != bj {
			return bi < bj
		}
		return roots[i] < roots[j]
	})
	for _, root := range roots {
		if r.emit(0, set.Birth(root), g.threshold) {
			stats.Emitted++
		}
		stats.Essential++
	}
	r.log.Debug("components merged", "edges", edges.Len(), "cycles", len(carry), "oldest", oldest)
	r.record(stats)

	return newColumnSet(1, carry)
}
