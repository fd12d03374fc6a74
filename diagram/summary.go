package diagram

import (
	"slices"
	"sort"

	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/cubicalripser/cubical"
)

// DimSummary aggregates the pairs of one dimension. Essential pairs are
// counted separately and excluded from the persistence figures.
type DimSummary struct {
	Dim       int
	Count     int
	Essential int
	Total     float64 // Σ persistence of finite pairs
	Max       float64
	Mean      float64
}

// Summarize groups pairs by dimension (EssentialDim included, first) and
// returns one DimSummary per dimension present, ascending.
func Summarize(pairs []cubical.Pair) []DimSummary {
	lengths := make(map[int][]float64)
	counts := make(map[int]int)
	for _, p := range pairs {
		counts[p.Dim]++
		if !p.Essential() {
			lengths[p.Dim] = append(lengths[p.Dim], p.Persistence())
		}
	}

	dims := make([]int, 0, len(counts))
	for d := range counts {
		dims = append(dims, d)
	}
	sort.Ints(dims)

	out := make([]DimSummary, 0, len(dims))
	for _, d := range dims {
		s := DimSummary{Dim: d, Count: counts[d]}
		if d == cubical.EssentialDim {
			s.Essential = counts[d]
		}
		if l := lengths[d]; len(l) > 0 {
			s.Total = floats.Sum(l)
			s.Max = floats.Max(l)
			s.Mean = s.Total / float64(len(l))
		}
		out = append(out, s)
	}

	return out
}

// Betti returns, per dimension, the number of classes with
// Birth <= t < Death. Essential pairs are reported under EssentialDim.
func Betti(pairs []cubical.Pair, t float64) map[int]int {
	out := make(map[int]int)
	for _, p := range pairs {
		if p.Birth <= t && t < p.Death {
			out[p.Dim]++
		}
	}

	return out
}

// Sorted returns a copy of pairs ordered by (Dim, Birth, Death).
func Sorted(pairs []cubical.Pair) []cubical.Pair {
	out := slices.Clone(pairs)
	sort.Slice(out, func(i, j int) bool { return less(out[i], out[j]) })

	return out
}

// Equal reports whether a and b hold the same pairs, ignoring order.
func Equal(a, b []cubical.Pair) bool {
	if len(a) != len(b) {
		return false
	}

	return slices.Equal(Sorted(a), Sorted(b))
}

// Filter returns the pairs with Persistence() >= minPersistence; essential
// pairs are always kept.
func Filter(pairs []cubical.Pair, minPersistence float64) []cubical.Pair {
	var out []cubical.Pair
	for _, p := range pairs {
		if p.Essential() || p.Persistence() >= minPersistence {
			out = append(out, p)
		}
	}

	return out
}

func less(a, b cubical.Pair) bool {
	if a.Dim != b.Dim {
		return a.Dim < b.Dim
	}
	if a.Birth != b.Birth {
		return a.Birth < b.Birth
	}

	return a.Death < b.Death
}
