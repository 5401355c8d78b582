package binpack

import (
	"github.com/emirpasic/gods/trees/binaryheap"
	"github.com/emirpasic/gods/utils"
)

// maxRestLinear tries only the open bin with the largest residual capacity,
// that is the smallest fill. First one found wins on ties.
func maxRestLinear(inst Instance) Result {
	t := newTracker(inst, false)

	for i, w := range inst.Weights {
		loosest := -1

		for j, fill := range t.fills {
			if loosest < 0 || fill < t.fills[loosest] {
				loosest = j
			}
		}

		if loosest >= 0 && t.fits(loosest, w) {
			t.place(i, loosest, w)
		} else {
			t.open(i, w)
		}
	}

	return t.result()
}

// maxRestHeap keeps open bins in a min heap by fill. The top is the only
// candidate; an accepted item replaces the top with the updated fill unless
// the bin closes.
func maxRestHeap(inst Instance) Result {
	threshold := inst.CloseThreshold()
	h := newFillHeap(false, 64)
	bins := 0

	for _, w := range inst.Weights {
		if h.Len() == 0 || h.Peek() > inst.Capacity-w {
			bins++
			if w <= threshold {
				h.Push(w)
			}

			continue
		}

		if fill := h.Peek() + w; fill > threshold {
			h.Pop()
		} else {
			h.ReplaceTop(fill)
		}
	}

	return Result{Bins: bins}
}

// maxRestQueue is maxRestHeap on top of a library priority queue, using only
// its public peek, pop and push.
func maxRestQueue(inst Instance) Result {
	threshold := inst.CloseThreshold()
	pq := binaryheap.NewWith(utils.UInt64Comparator)
	bins := 0

	for _, w := range inst.Weights {
		top, ok := pq.Peek()
		if !ok || top.(uint64) > inst.Capacity-w {
			bins++
			if w <= threshold {
				pq.Push(w)
			}

			continue
		}

		pq.Pop()
		if fill := top.(uint64) + w; fill <= threshold {
			pq.Push(fill)
		}
	}

	return Result{Bins: bins}
}
