package binpack

// fillHeap is a binary heap over bin fill levels. With max set the largest
// fill sits on top, otherwise the smallest one.
//
// Only the operations the placement loops need are exposed: peek at the top,
// replace the top with its updated value, update or remove an arbitrary node,
// and (max order) probe for the largest fill not above a limit.
type fillHeap struct {
	values []uint64
	max    bool
	queue  []int
}

func newFillHeap(maxOrder bool, size int) *fillHeap {
	return &fillHeap{
		values: make([]uint64, 0, size),
		max:    maxOrder,
	}
}

func (h *fillHeap) Len() int {
	return len(h.values)
}

func (h *fillHeap) Peek() uint64 {
	return h.values[0]
}

func (h *fillHeap) At(i int) uint64 {
	return h.values[i]
}

func (h *fillHeap) Push(v uint64) {
	h.values = append(h.values, v)
	h.reheapUp(len(h.values) - 1)
}

func (h *fillHeap) Pop() uint64 {
	top := h.values[0]
	h.RemoveAt(0)

	return top
}

// ReplaceTop overwrites the top value and restores the heap order.
func (h *fillHeap) ReplaceTop(v uint64) {
	h.Update(0, v)
}

// Update sets the value of node i and moves it to its new place.
func (h *fillHeap) Update(i int, v uint64) {
	old := h.values[i]
	h.values[i] = v

	if h.above(v, old) {
		h.reheapUp(i)
	} else {
		h.reheapDown(i)
	}
}

func (h *fillHeap) RemoveAt(i int) {
	last := len(h.values) - 1
	if i != last {
		h.values[i] = h.values[last]
	}
	h.values = h.values[:last]

	if i < last {
		h.reheapDown(i)
		h.reheapUp(i)
	}
}

// Probe returns the node holding the largest value <= limit, or -1. It walks
// the max heap breadth first and does not descend below a node whose value
// already fits: all of that node's descendants are smaller. Nodes above the
// limit are expanded. A node equal to the limit ends the walk.
func (h *fillHeap) Probe(limit uint64) int {
	if !h.max {
		panic("binpack: probe on a min-ordered heap")
	}

	best := -1
	var bestValue uint64

	h.queue = append(h.queue[:0], 0)
	for k := 0; k < len(h.queue); k++ {
		i := h.queue[k]
		if i >= len(h.values) {
			continue
		}

		v := h.values[i]
		if v <= limit {
			if best < 0 || v > bestValue {
				best, bestValue = i, v
				if v == limit {
					break
				}
			}

			continue
		}

		h.queue = append(h.queue, 2*i+1, 2*i+2)
	}

	return best
}

// above reports whether a belongs above b.
func (h *fillHeap) above(a, b uint64) bool {
	if h.max {
		return a > b
	}

	return a < b
}

func (h *fillHeap) reheapUp(child int) {
	for child > 0 {
		parent := (child - 1) / 2
		if !h.above(h.values[child], h.values[parent]) {
			return
		}

		h.values[parent], h.values[child] = h.values[child], h.values[parent]
		child = parent
	}
}

func (h *fillHeap) reheapDown(parent int) {
	n := len(h.values)

	for {
		child := 2*parent + 1
		if child >= n {
			return
		}

		if right := child + 1; right < n && h.above(h.values[right], h.values[child]) {
			child = right
		}

		if !h.above(h.values[child], h.values[parent]) {
			return
		}

		h.values[parent], h.values[child] = h.values[child], h.values[parent]
		parent = child
	}
}
