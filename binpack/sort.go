package binpack

import (
	"cmp"
	"errors"
	"fmt"
	"slices"
)

// DefaultCountingRange caps the counter table of CountingSort when no
// explicit MaxRange is given.
const DefaultCountingRange = 1 << 24

// Without an explicit MaxRange the counter table may also not outgrow the
// input by more than countingFactor, with a floor of minCountingRange.
const (
	minCountingRange = 1 << 12
	countingFactor   = 8
)

var ErrRangeTooLarge = errors.New("weight range too large for counting sort")

// Sorter orders weights non-increasingly in place.
type Sorter interface {
	SortDescending(weights []uint64) error
}

// ComparisonSort is an O(n log n) comparison sort. Ties are not kept stable.
type ComparisonSort struct{}

func (ComparisonSort) SortDescending(weights []uint64) error {
	slices.SortFunc(weights, func(a, b uint64) int {
		return cmp.Compare(b, a)
	})

	return nil
}

func (ComparisonSort) String() string {
	return "comparison"
}

// CountingSort buckets weights by value. It runs in O(n + range) and is only
// usable while max-min+1 stays within MaxRange. A zero MaxRange limits the
// range to countingFactor*n, at least minCountingRange and at most
// DefaultCountingRange.
type CountingSort struct {
	MaxRange uint64
}

func (s CountingSort) SortDescending(weights []uint64) error {
	if len(weights) < 2 {
		return nil
	}

	lo, hi := weights[0], weights[0]
	for _, w := range weights[1:] {
		lo = min(lo, w)
		hi = max(hi, w)
	}

	limit := s.limit(len(weights))
	span := hi - lo + 1
	if span > limit {
		return fmt.Errorf("%w: %d values, limit %d", ErrRangeTooLarge, span, limit)
	}

	count := make([]int, span)
	for _, w := range weights {
		count[w-lo]++
	}

	z := 0
	for v := int(span) - 1; v >= 0; v-- {
		for c := count[v]; c > 0; c-- {
			weights[z] = lo + uint64(v)
			z++
		}
	}

	return nil
}

func (s CountingSort) limit(n int) uint64 {
	if s.MaxRange != 0 {
		return s.MaxRange
	}

	return min(DefaultCountingRange, max(minCountingRange, countingFactor*uint64(n)))
}

func (CountingSort) String() string {
	return "counting"
}

// SortedCopy returns the instance over a privately sorted copy of its weights.
// The input instance is left untouched.
func SortedCopy(inst Instance, sorter Sorter) (Instance, error) {
	weights := slices.Clone(inst.Weights)

	if err := sorter.SortDescending(weights); err != nil {
		return Instance{}, err
	}

	return inst.WithWeights(weights), nil
}
