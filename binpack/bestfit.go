package binpack

import (
	"github.com/emirpasic/gods/trees/redblacktree"
	"github.com/emirpasic/gods/utils"
)

// bestFitLinear puts every item into the open bin it fills most tightly. On
// ties the first bin found wins.
func bestFitLinear(inst Instance) Result {
	t := newTracker(inst, false)

	for i, w := range inst.Weights {
		limit := inst.Capacity - w
		best := -1

		for j, fill := range t.fills {
			if fill <= limit && (best < 0 || fill > t.fills[best]) {
				best = j
			}
		}

		if best >= 0 {
			t.place(i, best, w)
		} else {
			t.open(i, w)
		}
	}

	return t.result()
}

// bestFitHeap keeps open bins in a max heap by fill and probes it for the
// largest fill that still admits the item, pruning every subtree whose root
// already fits.
func bestFitHeap(inst Instance) Result {
	threshold := inst.CloseThreshold()
	h := newFillHeap(true, 64)
	bins := 0

	for _, w := range inst.Weights {
		i := h.Probe(inst.Capacity - w)
		if i < 0 {
			bins++
			if w <= threshold {
				h.Push(w)
			}

			continue
		}

		if fill := h.At(i) + w; fill > threshold {
			h.RemoveAt(i)
		} else {
			h.Update(i, fill)
		}
	}

	return Result{Bins: bins}
}

// bestFitTree keeps open bins in an ordered multiset of fill levels and picks
// the floor of the residual limit, erasing and reinserting the updated bin.
func bestFitTree(inst Instance) Result {
	threshold := inst.CloseThreshold()
	fills := newFillSet()
	bins := 0

	for _, w := range inst.Weights {
		node, ok := fills.tree.Floor(inst.Capacity - w)
		if !ok {
			bins++
			if w <= threshold {
				fills.add(w)
			}

			continue
		}

		fill := node.Key.(uint64)
		fills.remove(fill)

		if fill += w; fill <= threshold {
			fills.add(fill)
		}
	}

	return Result{Bins: bins}
}

// fillSet is a multiset of fill levels: a red-black tree from fill to the
// number of open bins at that fill.
type fillSet struct {
	tree *redblacktree.Tree
}

func newFillSet() fillSet {
	return fillSet{tree: redblacktree.NewWith(utils.UInt64Comparator)}
}

func (s fillSet) add(fill uint64) {
	n := 0
	if v, ok := s.tree.Get(fill); ok {
		n = v.(int)
	}

	s.tree.Put(fill, n+1)
}

func (s fillSet) remove(fill uint64) {
	v, ok := s.tree.Get(fill)
	if !ok {
		return
	}

	if n := v.(int); n > 1 {
		s.tree.Put(fill, n-1)
	} else {
		s.tree.Remove(fill)
	}
}
