package internal

import (
	"fmt"
	"path/filepath"

	"github.com/cheggaaa/pb/v3"
	"github.com/gaarutyunov/binpacking/dataset"
	"github.com/gaarutyunov/binpacking/utils"
	"github.com/spf13/cobra"
	"github.com/xxjwxc/gowp/workpool"
)

func Generate(cmd *cobra.Command, args []string) error {
	outDir, err := cmd.PersistentFlags().GetString("out")
	if err != nil {
		return err
	}
	outDir = utils.ExpandPath(outDir)

	count, err := cmd.PersistentFlags().GetInt("count")
	if err != nil {
		return err
	}

	items, err := cmd.PersistentFlags().GetInt("items")
	if err != nil {
		return err
	}

	capacity, err := cmd.PersistentFlags().GetUint64("capacity")
	if err != nil {
		return err
	}

	distribution, err := cmd.PersistentFlags().GetString("distribution")
	if err != nil {
		return err
	}

	minWeight, err := cmd.PersistentFlags().GetUint64("min")
	if err != nil {
		return err
	}

	maxWeight, err := cmd.PersistentFlags().GetUint64("max")
	if err != nil {
		return err
	}

	extreme, err := cmd.PersistentFlags().GetFloat64("extreme")
	if err != nil {
		return err
	}

	seed, err := cmd.PersistentFlags().GetInt64("seed")
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

	generator := dataset.Generator{
		Count:          items,
		Capacity:       capacity,
		Distribution:   dataset.Distribution(distribution),
		Min:            minWeight,
		Max:            maxWeight,
		ExtremePercent: extreme,
	}

	pool := workpool.New(concurrency)
	bar := pb.New(count).SetWriter(cmd.ErrOrStderr()).Start()
	defer bar.Finish()

	for i := 0; i < count; i++ {
		pool.Do(func() error {
			defer bar.Increment()

			g := generator
			g.Seed = seed + int64(i)

			inst, err := g.Generate()
			if err != nil {
				return err
			}

			fout, err := utils.TryCreate(filepath.Join(outDir, fmt.Sprintf("instance-%03d.txt", i)))
			if err != nil {
				return err
			}

			if err = dataset.Write(fout, inst); err != nil {
				_ = fout.Close()
				return err
			}

			return fout.Close()
		})
	}

	return pool.Wait()
}
