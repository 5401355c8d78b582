package internal

import (
	"fmt"
	"io"

	"github.com/gaarutyunov/binpacking/binpack"
	"github.com/gaarutyunov/binpacking/dataset"
	"github.com/gaarutyunov/binpacking/plan"
	"github.com/gaarutyunov/binpacking/utils"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

func Pack(cmd *cobra.Command, args []string) (err error) {
	in, err := cmd.PersistentFlags().GetString("in")
	if err != nil {
		return err
	}

	out, err := cmd.PersistentFlags().GetString("out")
	if err != nil {
		return err
	}

	name, err := cmd.PersistentFlags().GetString("algorithm")
	if err != nil {
		return err
	}

	skipOversize, err := cmd.PersistentFlags().GetBool("skip-oversize")
	if err != nil {
		return err
	}

	algorithm, err := binpack.ParseAlgorithm(name)
	if err != nil {
		return err
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

	items := plan.Items(weights)

	var remainder []plan.Item
	if skipOversize {
		items, remainder = binpack.Split(items, capacity)
		if len(remainder) > 0 {
			logrus.Warnf("%d items do not fit into capacity %d", len(remainder), capacity)
		}
	}

	inst, err := binpack.NewInstance(capacity, binpack.Weights(items))
	if err != nil {
		return err
	}

	res, err := algorithm.Pack(inst)
	if err != nil {
		return err
	}

	if !res.HasPositions() {
		return fmt.Errorf("%s does not track item positions", algorithm.Name())
	}

	if err = binpack.Verify(inst, res); err != nil {
		return err
	}

	logrus.Infof("%s packed %d items into %d bins", algorithm.Name(), inst.Len(), res.Bins)

	planFile := plan.New(binpack.Group(items, res), remainder)

	fout, err := utils.OpenOutput(out, cmd.OutOrStdout())
	if err != nil {
		return err
	}
	defer func() {
		if cerr := fout.Close(); err == nil {
			err = cerr
		}
	}()

	_, err = io.WriteString(fout, planFile.String())

	return err
}
