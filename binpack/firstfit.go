package binpack

// firstFitLinear scans the open bins in opening order and takes the first one
// with enough residual capacity. O(n^2) in the worst case.
func firstFitLinear(inst Instance) Result {
	t := newTracker(inst, true)

	for i, w := range inst.Weights {
		if j := t.firstFit(t.head, w); j >= 0 {
			t.place(i, j, w)
		} else {
			t.open(i, w)
		}
	}

	return t.result()
}

// firstFitIndexed remembers, per weight, the bin that took the last item of
// that weight. Every bin before it rejected such an item once, and fills only
// grow, so the next item of the same weight starts its scan there. The cached
// slot is only a starting point: no bin that could take the item is skipped.
//
// On decreasing input the scan for a run of equal weights resumes where the
// previous one stopped, which keeps the whole pass close to linear.
func firstFitIndexed(inst Instance) Result {
	t := newTracker(inst, true)
	last := make(map[uint64]int)

	for i, w := range inst.Weights {
		j := t.firstFit(max(t.head, last[w]), w)
		if j >= 0 {
			t.place(i, j, w)
		} else {
			j = t.open(i, w)
		}

		last[w] = j
	}

	return t.result()
}

func (t *tracker) firstFit(from int, w uint64) int {
	for j := from; j < len(t.fills); j++ {
		if t.fits(j, w) {
			return j
		}
	}

	return -1
}
