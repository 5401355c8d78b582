package binpack

// nextFitLinear only ever considers the most recently opened bin. Opening a
// new bin closes the previous one, since Next-Fit never looks back. O(n).
func nextFitLinear(inst Instance) Result {
	t := newTracker(inst, true)

	for i, w := range inst.Weights {
		j := len(t.fills) - 1

		if j >= 0 && t.fits(j, w) {
			t.place(i, j, w)
			continue
		}

		if t.isOpen(j) {
			t.close(j)
		}

		t.open(i, w)
	}

	return t.result()
}
