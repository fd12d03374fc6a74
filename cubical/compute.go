package cubical

import (
	"time"

	"github.com/RoaringBitmap/roaring/v2"
)

// Compute returns the persistence pairs of g, dimension by dimension, in
// emission order. See ComputeWithStats.
func Compute(g *Grid, opts ...Option) ([]Pair, error) {
	res, err := ComputeWithStats(g, opts...)
	if err != nil {
		return nil, err
	}

	return res.Pairs, nil
}

// ComputeWithStats runs the selected strategy over g and returns the pairs
// together with per-dimension statistics.
//
// Steps (LinkFind):
//  1. Union-find over the 1-cells yields the dimension-0 pairs and the
//     dimension-1 columns (edges closing a cycle).
//  2. For dim = 1..d-1: reduce; rebuild the next columns without the pivots.
//
// Steps (ComputePairs):
//  1. For dim = 0..d-1: build columns without the previous pivots; reduce.
//
// Errors: ErrNilGrid, ErrMethod. The computation itself cannot fail.
//
// Determinism: no map iteration feeds the output; two runs on the same
// grid return identical slices.
func ComputeWithStats(g *Grid, opts ...Option) (Result, error) {
	if g == nil {
		return Result{}, ErrNilGrid
	}
	o, err := gatherOptions(opts...)
	if err != nil {
		return Result{}, err
	}

	start := time.Now()
	r := &run{g: g, log: o.Logger.WithMethod(o.Method)}
	switch o.Method {
	case LinkFind:
		r.linkFindPipeline()
	case ComputePairs:
		r.computePairsPipeline()
	}
	r.log.LogCompute(g, len(r.pairs), time.Since(start))

	return Result{Method: o.Method, Pairs: r.pairs, Stats: r.stats}, nil
}

// run owns the state of one computation.
type run struct {
	g     *Grid
	log   *Logger
	pairs []Pair
	stats []DimStats
}

func (r *run) linkFindPipeline() {
	cols := r.linkFind()
	for dim := 1; dim < r.g.Dim(); dim++ {
		excluded := r.reduce(cols)
		if dim+1 < r.g.Dim() {
			cols = BuildColumns(r.g, dim+1, excluded)
		}
	}
}

func (r *run) computePairsPipeline() {
	var excluded *roaring.Bitmap
	for dim := 0; dim < r.g.Dim(); dim++ {
		excluded = r.reduce(BuildColumns(r.g, dim, excluded))
	}
}

// emit appends a pair unless birth == death; a death at threshold turns the
// pair essential. Reports whether the pair was kept.
func (r *run) emit(dim int, birth, death float64) bool {
	if birth == death {
		return false
	}
	if death == r.g.threshold {
		dim = EssentialDim
	}
	r.pairs = append(r.pairs, Pair{Dim: dim, Birth: birth, Death: death})

	return true
}

func (r *run) record(s DimStats) {
	r.stats = append(r.stats, s)
	r.log.LogDimension(s)
}
