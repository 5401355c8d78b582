package internal

import (
	"errors"
	"fmt"

	"github.com/gaarutyunov/binpacking/binpack"
	"github.com/gaarutyunov/binpacking/dataset"
	"github.com/gaarutyunov/binpacking/plan"
	"github.com/gaarutyunov/binpacking/utils"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var ErrPlanMismatch = errors.New("plan does not match instance")

const (
	unassigned = -1
	remainder  = -2
)

// Check validates a plan file against the instance it was packed from.
func Check(cmd *cobra.Command, args []string) error {
	planPath, err := cmd.PersistentFlags().GetString("plan")
	if err != nil {
		return err
	}

	in, err := cmd.PersistentFlags().GetString("in")
	if err != nil {
		return err
	}

	planFile, err := plan.Open(utils.ExpandPath(planPath))
	if err != nil {
		return fmt.Errorf("%s: %w", planPath, err)
	}

	fin, err := utils.OpenInput(in, cmd.InOrStdin())
	if err != nil {
		return err
	}
	defer fin.Close()

	capacity, weights, err := dataset.ReadRaw(fin)
	if err != nil {
		return fmt.Errorf("%s: %w", in, err)
	}

	if total := planFile.Total(false, false); total != len(weights) {
		return fmt.Errorf("%w: %d items planned, %d in instance", ErrPlanMismatch, total, len(weights))
	}

	positions, err := assign(planFile, capacity, weights)
	if err != nil {
		return err
	}

	var packed []uint64
	var bins []int
	for i, bin := range positions {
		if bin != remainder {
			packed = append(packed, weights[i])
			bins = append(bins, bin)
		}
	}

	if len(packed) > 0 {
		inst, err := binpack.NewInstance(capacity, packed)
		if err != nil {
			return err
		}

		for bin, fill := range planFile.Fills() {
			if fill > capacity {
				return fmt.Errorf("%w: bin %d holds %d > %d", binpack.ErrInfeasible, bin, fill, capacity)
			}
		}

		if err = binpack.Verify(inst, binpack.Result{Bins: len(planFile.Bins), Positions: bins}); err != nil {
			return err
		}
	}

	logrus.Infof("%s is a valid plan for %s", planPath, in)

	_, err = fmt.Fprintf(cmd.OutOrStdout(), "%d items in %d bins, %d in remainder\n",
		len(packed), len(planFile.Bins), planFile.Total(false, true))

	return err
}

// assign maps every instance item to its plan bin, or to remainder. Each item
// must appear exactly once with its instance weight, and only items heavier
// than the capacity may sit in the remainder.
func assign(planFile plan.File, capacity uint64, weights []uint64) ([]int, error) {
	positions := make([]int, len(weights))
	for i := range positions {
		positions[i] = unassigned
	}

	bin := 0
	for items, isRemainder := range planFile.Iter(false, false) {
		for _, item := range items {
			i := item.Index()

			switch {
			case i < 0 || i >= len(weights):
				return nil, fmt.Errorf("%w: item %d out of range", ErrPlanMismatch, i)
			case positions[i] != unassigned:
				return nil, fmt.Errorf("%w: item %d planned twice", ErrPlanMismatch, i)
			case item.Weight() != weights[i]:
				return nil, fmt.Errorf("%w: item %d planned with weight %d, instance has %d", ErrPlanMismatch, i, item.Weight(), weights[i])
			case isRemainder && item.Weight() <= capacity:
				return nil, fmt.Errorf("%w: item %d fits but is in the remainder", ErrPlanMismatch, i)
			}

			if isRemainder {
				positions[i] = remainder
			} else {
				positions[i] = bin
			}
		}

		if !isRemainder {
			bin++
		}
	}

	return positions, nil
}
