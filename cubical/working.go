package cubical

import "container/heap"

// workingCoboundary is a column of the coboundary matrix under reduction,
// kept as a binary heap whose top is the LAST cell in column order
// (smallest birthday, ties: largest id). Entries with equal ids cancel in
// pairs (GF(2)); cancellation is lazy and happens while looking for the
// pivot.
type workingCoboundary []Cell

// Compile-time check that workingCoboundary satisfies heap.Interface.
var _ heap.Interface = (*workingCoboundary)(nil)

func (w workingCoboundary) Len() int           { return len(w) }
func (w workingCoboundary) Less(i, j int) bool { return w[j].Before(w[i]) }
func (w workingCoboundary) Swap(i, j int)      { w[i], w[j] = w[j], w[i] }

// Push appends a cell; called by heap.Push.
func (w *workingCoboundary) Push(x any) { *w = append(*w, x.(Cell)) }

// Pop removes the last slice element; called by heap.Pop.
func (w *workingCoboundary) Pop() any {
	old := *w
	n := len(old)
	c := old[n-1]
	*w = old[:n-1]

	return c
}

func (w *workingCoboundary) push(c Cell) { heap.Push(w, c) }

func (w *workingCoboundary) addAll(cells []Cell) {
	for _, c := range cells {
		heap.Push(w, c)
	}
}

// popPivot removes and returns the top entry that survives cancellation.
// A top entry followed by an equal id cancels with it; both are dropped and
// the search restarts from the new top.
func (w *workingCoboundary) popPivot() (Cell, bool) {
	if w.Len() == 0 {
		return Cell{}, false
	}
	pivot := heap.Pop(w).(Cell)
	for w.Len() > 0 && (*w)[0].ID == pivot.ID {
		heap.Pop(w)
		if w.Len() == 0 {
			return Cell{}, false
		}
		pivot = heap.Pop(w).(Cell)
	}

	return pivot, true
}

// pivot returns the surviving top entry without removing it.
func (w *workingCoboundary) pivot() (Cell, bool) {
	p, ok := w.popPivot()
	if ok {
		heap.Push(w, p)
	}

	return p, ok
}
