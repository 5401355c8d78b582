package binpack

import (
	"errors"
	"fmt"
)

var (
	ErrIncomplete      = errors.New("placement incomplete")
	ErrInfeasible      = errors.New("bin over capacity")
	ErrBelowLowerBound = errors.New("bin count below lower bound")
)

// Verify checks a result against its instance. Every result must use at least
// LowerBound bins. Results with positions must also assign every item to one
// of the reported bins and keep every bin within capacity.
func Verify(inst Instance, res Result) error {
	if lb := inst.LowerBound(); res.Bins < lb {
		return fmt.Errorf("%w: %d < %d", ErrBelowLowerBound, res.Bins, lb)
	}

	if !res.HasPositions() {
		return nil
	}

	if len(res.Positions) != inst.Len() {
		return fmt.Errorf("%w: %d positions for %d items", ErrIncomplete, len(res.Positions), inst.Len())
	}

	for i, bin := range res.Positions {
		if bin < 0 || bin >= res.Bins {
			return fmt.Errorf("%w: item %d in bin %d of %d", ErrIncomplete, i, bin, res.Bins)
		}
	}

	for bin, fill := range res.Fills(inst) {
		if fill > inst.Capacity {
			return fmt.Errorf("%w: bin %d holds %d > %d", ErrInfeasible, bin, fill, inst.Capacity)
		}
	}

	return nil
}
