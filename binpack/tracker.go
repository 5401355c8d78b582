package binpack

// tracker is the array-backed capacity tracker used by the linear and
// map-indexed strategies. It keeps the fill level of every bin still in the
// active set together with the opening-order label of that bin.
//
// In ordered mode bins never move: a closed bin stays in place and is marked
// shut, which First-Fit needs to keep scanning in opening order. Otherwise a
// closed bin is swapped out with the last open one.
type tracker struct {
	capacity  uint64
	threshold uint64
	ordered   bool

	fills  []uint64
	labels []int
	shut   []bool
	head   int

	opened    int
	closed    int
	positions []int
}

func newTracker(inst Instance, ordered bool) *tracker {
	t := &tracker{
		capacity:  inst.Capacity,
		threshold: inst.CloseThreshold(),
		ordered:   ordered,
		positions: make([]int, inst.Len()),
	}

	if ordered {
		t.shut = make([]bool, 0, 16)
	}

	return t
}

// fits reports whether the bin at slot j can take weight w.
func (t *tracker) fits(j int, w uint64) bool {
	if t.ordered && t.shut[j] {
		return false
	}

	return t.fills[j] <= t.capacity-w
}

// open starts a new bin holding item i and returns its slot.
func (t *tracker) open(i int, w uint64) int {
	j := len(t.fills)

	t.fills = append(t.fills, w)
	t.labels = append(t.labels, t.opened)
	if t.ordered {
		t.shut = append(t.shut, false)
	}

	t.positions[i] = t.opened
	t.opened++

	if w > t.threshold {
		t.close(j)
	}

	return j
}

// place adds item i to the bin at slot j and reports whether the bin closed.
func (t *tracker) place(i, j int, w uint64) bool {
	t.fills[j] += w
	t.positions[i] = t.labels[j]

	if t.fills[j] > t.threshold {
		t.close(j)

		return true
	}

	return false
}

// close removes the bin at slot j from the active set for good.
func (t *tracker) close(j int) {
	t.closed++

	if t.ordered {
		t.shut[j] = true
		for t.head < len(t.fills) && t.shut[t.head] {
			t.head++
		}

		return
	}

	last := len(t.fills) - 1
	t.fills[j], t.labels[j] = t.fills[last], t.labels[last]
	t.fills, t.labels = t.fills[:last], t.labels[:last]
}

func (t *tracker) isOpen(j int) bool {
	return j >= 0 && j < len(t.fills) && (!t.ordered || !t.shut[j])
}

func (t *tracker) numOpen() int {
	return t.opened - t.closed
}

func (t *tracker) result() Result {
	return Result{
		Bins:      t.numOpen() + t.closed,
		Positions: t.positions,
	}
}
