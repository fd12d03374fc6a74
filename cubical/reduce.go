package cubical

import "github.com/RoaringBitmap/roaring/v2"

// columnReducer reduces the coboundary matrix of one dimension. Columns are
// the cells of cols (column order); rows are their cofaces.
type columnReducer struct {
	g       *Grid
	cols    *ColumnSet
	pivots  *PivotIndex
	cache   map[int][]Cell // column index → final working coboundary
	enum    *CoboundaryEnumerator
	cofaces []Cell
	emit    func(dim int, birth, death float64) bool
	stats   DimStats
}

// reduce runs one dimension's pass over cols, records its statistics and
// returns the pivot ids (the cells to clear from the next dimension).
func (r *run) reduce(cols *ColumnSet) *roaring.Bitmap {
	cr := &columnReducer{
		g:      r.g,
		cols:   cols,
		pivots: NewPivotIndex(cols.Len()),
		cache:  make(map[int][]Cell),
		enum:   NewCoboundaryEnumerator(r.g),
		emit:   r.emit,
		stats:  DimStats{Dim: cols.Dim(), Columns: cols.Len()},
	}
	for i := 0; i < cols.Len(); i++ {
		cr.reduceColumn(i)
	}
	cr.stats.Pivots = cr.pivots.Len()
	cr.stats.Cached = len(cr.cache)
	r.record(cr.stats)

	return cr.pivots.IDs()
}

// reduceColumn settles column i.
//
//  1. Apparent pair: cofaces arrive in descending id order, so the first one
//     sharing the column's birthday is the pivot of the unreduced column. If
//     no other column owns it yet, the pair is settled without reduction.
//  2. Otherwise add columns lazily: starting from j = i, add column j into
//     the working heap (cached final heap if j has one, the enumerated
//     cofaces on the first visit, a fresh enumeration otherwise) and look
//     for the pivot. An owned pivot sends j to its owner; an empty heap
//     means the class is essential; a new pivot pairs the column.
func (cr *columnReducer) reduceColumn(i int) {
	col := cr.cols.At(i)
	birth := col.Birthday
	dim := cr.cols.Dim()

	cr.cofaces = cr.cofaces[:0]
	cr.enum.Reset(col)
	apparent := true
	for {
		cf, ok := cr.enum.Next()
		if !ok {
			break
		}
		cr.cofaces = append(cr.cofaces, cf)
		if !apparent || cf.Birthday != birth {
			continue
		}
		if !cr.pivots.Contains(cf.ID) {
			cr.pivots.Set(cf.ID, i)
			cr.stats.Apparent++
			cr.count(cr.emit(dim, birth, cf.Birthday))
			return
		}
		apparent = false
	}

	var wc workingCoboundary
	for j := i; ; {
		if cached, ok := cr.cache[j]; ok {
			wc.addAll(cached)
		} else if j == i {
			wc.addAll(cr.cofaces)
		} else {
			cr.enum.Reset(cr.cols.At(j))
			for cf, ok := cr.enum.Next(); ok; cf, ok = cr.enum.Next() {
				wc.push(cf)
			}
		}

		pivot, ok := wc.pivot()
		if !ok {
			cr.stats.Essential++
			cr.count(cr.emit(dim, birth, cr.g.threshold))
			return
		}
		if owner, owned := cr.pivots.Owner(pivot.ID); owned {
			j = owner
			continue
		}
		cr.cache[i] = []Cell(wc)
		cr.pivots.Set(pivot.ID, i)
		cr.count(cr.emit(dim, birth, pivot.Birthday))
		return
	}
}

func (cr *columnReducer) count(kept bool) {
	if kept {
		cr.stats.Emitted++
	}
}
