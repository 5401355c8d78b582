// Package binpack implements the classic bin packing heuristics Next-Fit,
// First-Fit, Best-Fit and Max-Rest, their decreasing variants, and several
// search strategies per heuristic that all yield the same bin counts.
package binpack

import (
	"errors"
	"fmt"
	"math/bits"
)

var (
	ErrEmptyInstance   = errors.New("instance has no items")
	ErrZeroCapacity    = errors.New("bin capacity must be positive")
	ErrZeroWeight      = errors.New("item weight must be positive")
	ErrUnplaceableItem = errors.New("item weight exceeds bin capacity")
	ErrWeightOverflow  = errors.New("total weight overflows uint64")
)

// Instance is an immutable bin packing problem: a single capacity shared by
// all bins and the item weights in input order.
type Instance struct {
	Capacity  uint64
	Weights   []uint64
	MinWeight uint64
	MaxWeight uint64
	SumWeight uint64
}

func NewInstance(capacity uint64, weights []uint64) (Instance, error) {
	if len(weights) == 0 {
		return Instance{}, ErrEmptyInstance
	}

	if capacity == 0 {
		return Instance{}, ErrZeroCapacity
	}

	inst := Instance{
		Capacity:  capacity,
		Weights:   weights,
		MinWeight: capacity,
	}

	for i, w := range weights {
		if w == 0 {
			return Instance{}, fmt.Errorf("item %d: %w", i, ErrZeroWeight)
		}

		if w > capacity {
			return Instance{}, fmt.Errorf("item %d (%d > %d): %w", i, w, capacity, ErrUnplaceableItem)
		}

		if w < inst.MinWeight {
			inst.MinWeight = w
		}

		if w > inst.MaxWeight {
			inst.MaxWeight = w
		}

		var carry uint64
		if inst.SumWeight, carry = bits.Add64(inst.SumWeight, w, 0); carry != 0 {
			return Instance{}, fmt.Errorf("item %d: %w", i, ErrWeightOverflow)
		}
	}

	return inst, nil
}

func (inst Instance) Len() int {
	return len(inst.Weights)
}

// LowerBound returns ceil(SumWeight / Capacity), the trivial lower bound on
// the number of bins of any feasible packing.
func (inst Instance) LowerBound() int {
	lb := inst.SumWeight / inst.Capacity
	if inst.SumWeight%inst.Capacity != 0 {
		lb++
	}

	return int(lb)
}

// CloseThreshold is the fill level above which a bin can not take any item of
// the instance, since every weight is at least MinWeight.
func (inst Instance) CloseThreshold() uint64 {
	return inst.Capacity - inst.MinWeight
}

// WithWeights returns a copy of the instance over a permutation of its weights.
func (inst Instance) WithWeights(weights []uint64) Instance {
	inst.Weights = weights

	return inst
}
