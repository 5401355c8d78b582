package binpack

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewInstance(t *testing.T) {
	inst, err := NewInstance(10, []uint64{2, 2, 3, 4, 5, 6})
	require.NoError(t, err)

	assert.Equal(t, 6, inst.Len())
	assert.Equal(t, uint64(2), inst.MinWeight)
	assert.Equal(t, uint64(6), inst.MaxWeight)
	assert.Equal(t, uint64(22), inst.SumWeight)
	assert.Equal(t, 3, inst.LowerBound())
	assert.Equal(t, uint64(8), inst.CloseThreshold())
}

func TestNewInstance_Invalid(t *testing.T) {
	cases := []struct {
		name     string
		capacity uint64
		weights  []uint64
		err      error
	}{
		{"empty", 10, nil, ErrEmptyInstance},
		{"zero capacity", 0, []uint64{1}, ErrZeroCapacity},
		{"zero weight", 10, []uint64{3, 0}, ErrZeroWeight},
		{"oversize", 10, []uint64{3, 11}, ErrUnplaceableItem},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, err := NewInstance(c.capacity, c.weights)
			assert.ErrorIs(t, err, c.err)
		})
	}
}

func TestInstance_LowerBoundExact(t *testing.T) {
	inst, err := NewInstance(5, []uint64{5, 5, 5})
	require.NoError(t, err)

	assert.Equal(t, 3, inst.LowerBound())
	assert.Equal(t, uint64(0), inst.CloseThreshold())
}

func TestNewInstance_WeightOverflow(t *testing.T) {
	_, err := NewInstance(1<<63+1, []uint64{1 << 63, 1 << 63})
	assert.ErrorIs(t, err, ErrWeightOverflow)
}

func TestInstance_LowerBoundLargeCapacity(t *testing.T) {
	inst, err := NewInstance(math.MaxUint64, []uint64{math.MaxUint64})
	require.NoError(t, err)
	assert.Equal(t, 1, inst.LowerBound())

	inst, err = NewInstance(1<<63, []uint64{1 << 62, 1 << 62, 1})
	require.NoError(t, err)
	assert.Equal(t, 2, inst.LowerBound())
}
