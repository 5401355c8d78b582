package binpack

import (
	"math/rand"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func checkHeap(t *testing.T, h *fillHeap) {
	t.Helper()

	for i := 1; i < h.Len(); i++ {
		parent := (i - 1) / 2
		require.False(t, h.above(h.values[i], h.values[parent]), "node %d above its parent", i)
	}
}

func TestFillHeap_Order(t *testing.T) {
	rnd := rand.New(rand.NewSource(1))

	for _, maxOrder := range []bool{false, true} {
		h := newFillHeap(maxOrder, 0)
		var values []uint64

		for i := 0; i < 200; i++ {
			v := uint64(rnd.Intn(1000))
			h.Push(v)
			values = append(values, v)
		}
		checkHeap(t, h)

		slices.Sort(values)
		if maxOrder {
			slices.Reverse(values)
		}

		for _, v := range values {
			assert.Equal(t, v, h.Pop())
		}
		assert.Equal(t, 0, h.Len())
	}
}

func TestFillHeap_UpdateAndRemove(t *testing.T) {
	rnd := rand.New(rand.NewSource(2))
	h := newFillHeap(true, 0)

	for i := 0; i < 100; i++ {
		h.Push(uint64(rnd.Intn(100)))
	}

	for i := 0; i < 300; i++ {
		j := rnd.Intn(h.Len())

		switch rnd.Intn(3) {
		case 0:
			h.Update(j, uint64(rnd.Intn(200)))
		case 1:
			h.RemoveAt(j)
			h.Push(uint64(rnd.Intn(100)))
		default:
			h.ReplaceTop(uint64(rnd.Intn(200)))
		}

		checkHeap(t, h)
	}
}

func TestFillHeap_Probe(t *testing.T) {
	rnd := rand.New(rand.NewSource(3))
	h := newFillHeap(true, 0)

	for i := 0; i < 300; i++ {
		h.Push(uint64(rnd.Intn(1000)))
	}

	for limit := uint64(0); limit < 1100; limit += 7 {
		var expected uint64
		found := false

		for _, v := range h.values {
			if v <= limit && (!found || v > expected) {
				expected, found = v, true
			}
		}

		i := h.Probe(limit)
		if !found {
			assert.Equal(t, -1, i)
			continue
		}

		require.GreaterOrEqual(t, i, 0)
		assert.Equal(t, expected, h.At(i), "limit %d", limit)
	}
}

func TestFillHeap_ProbeEmpty(t *testing.T) {
	h := newFillHeap(true, 0)

	assert.Equal(t, -1, h.Probe(10))
}

func TestFillHeap_ProbeMinHeapPanics(t *testing.T) {
	h := newFillHeap(false, 0)

	assert.Panics(t, func() { h.Probe(1) })
}
