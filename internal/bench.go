package internal

import (
	"fmt"
	"strings"
	"time"

	"github.com/cheggaaa/pb/v3"
	"github.com/gaarutyunov/binpacking/binpack"
	"github.com/gaarutyunov/binpacking/dataset"
	"github.com/gaarutyunov/binpacking/report"
	"github.com/gaarutyunov/binpacking/utils"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

const allAlgorithms = "all"

func Bench(cmd *cobra.Command, args []string) (err error) {
	in, err := cmd.PersistentFlags().GetString("in")
	if err != nil {
		return err
	}

	out, err := cmd.PersistentFlags().GetString("out")
	if err != nil {
		return err
	}

	names, err := cmd.PersistentFlags().GetString("algorithms")
	if err != nil {
		return err
	}

	formatName, err := cmd.PersistentFlags().GetString("format")
	if err != nil {
		return err
	}

	format, err := report.ParseFormat(formatName)
	if err != nil {
		return err
	}

	concurrency, err := cmd.PersistentFlags().GetInt("concurrency")
	if err != nil {
		return err
	}

	if concurrency < 1 {
		concurrency = 1
	}

	verify, err := cmd.PersistentFlags().GetBool("verify")
	if err != nil {
		return err
	}

	algorithms, err := parseAlgorithms(names)
	if err != nil {
		return err
	}

	fin, err := utils.OpenInput(in, cmd.InOrStdin())
	if err != nil {
		return err
	}
	defer fin.Close()

	inst, err := dataset.Read(fin)
	if err != nil {
		return fmt.Errorf("%s: %w", in, err)
	}

	logrus.WithFields(logrus.Fields{
		"objects":  inst.Len(),
		"capacity": inst.Capacity,
		"min":      inst.MinWeight,
		"max":      inst.MaxWeight,
	}).Info("instance loaded")

	rep := report.New(inst)
	entries := make([]report.Entry, len(algorithms))

	bar := pb.New(len(algorithms)).SetWriter(cmd.ErrOrStderr()).Start()
	defer bar.Finish()

	var wg errgroup.Group
	wg.SetLimit(concurrency)

	for i, algorithm := range algorithms {
		wg.Go(func() error {
			defer bar.Increment()

			start := time.Now()
			res, err := algorithm.Pack(inst)
			elapsed := time.Since(start)

			if err != nil {
				logrus.Errorf("error for %s: %s", algorithm.Name(), err)
			} else if verify {
				if err := binpack.Verify(inst, res); err != nil {
					return fmt.Errorf("%s: %w", algorithm.Name(), err)
				}
			}

			logrus.WithFields(logrus.Fields{
				"algorithm": algorithm.Name(),
				"bins":      res.Bins,
				"elapsed":   elapsed,
			}).Debug("packed")

			entries[i] = rep.Entry(algorithm.Name(), res, elapsed, err)

			return nil
		})
	}

	if err = wg.Wait(); err != nil {
		return err
	}

	rep.Add(entries...)

	fout, err := utils.OpenOutput(out, cmd.OutOrStdout())
	if err != nil {
		return err
	}
	defer func() {
		if cerr := fout.Close(); err == nil {
			err = cerr
		}
	}()

	return rep.Write(fout, format)
}

// parseAlgorithms resolves a comma separated list of algorithm names.
func parseAlgorithms(names string) ([]binpack.Algorithm, error) {
	if strings.TrimSpace(names) == allAlgorithms {
		return binpack.Algorithms(), nil
	}

	var algorithms []binpack.Algorithm

	for _, name := range strings.Split(names, ",") {
		if strings.TrimSpace(name) == "" {
			continue
		}

		algorithm, err := binpack.ParseAlgorithm(name)
		if err != nil {
			return nil, err
		}

		algorithms = append(algorithms, algorithm)
	}

	if len(algorithms) == 0 {
		return nil, fmt.Errorf("no algorithms selected")
	}

	return algorithms, nil
}
