package main

import (
	"runtime"
	"strings"

	"github.com/gaarutyunov/binpacking/dataset"
	"github.com/gaarutyunov/binpacking/internal"
	"github.com/gaarutyunov/binpacking/report"
	"github.com/gaarutyunov/binpacking/utils"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	rootCmd = &cobra.Command{
		Use:          "binpacking",
		Short:        "Benchmark bin packing heuristics",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := internal.BindEnv(cmd); err != nil {
				return err
			}

			verbosity, err := cmd.Root().PersistentFlags().GetString("verbosity")
			if err != nil {
				return err
			}

			level, err := logrus.ParseLevel(verbosity)
			if err != nil {
				return err
			}

			logrus.SetLevel(level)

			return nil
		},
	}

	benchCmd = &cobra.Command{
		Use:   "bench",
		Short: "Run heuristics on an instance and report bin counts",
		Long: "This command packs the instance with every selected heuristic and reports the bin count, " +
			"the deviation from the lower bound ceil(sum/K) and the elapsed time",
		RunE: internal.Bench,
	}

	packCmd = &cobra.Command{
		Use:   "pack",
		Short: "Pack an instance and write the per-bin plan",
		RunE:  internal.Pack,
	}

	generateCmd = &cobra.Command{
		Use:   "generate",
		Short: "Generate random instances",
		RunE:  internal.Generate,
	}

	checkCmd = &cobra.Command{
		Use:   "check",
		Short: "Validate a plan file against its instance",
		RunE:  internal.Check,
	}

	listCmd = &cobra.Command{
		Use:   "list",
		Short: "List available algorithms",
		RunE:  internal.List,
	}
)

func init() {
	pFlags := rootCmd.PersistentFlags()
	levels := make([]string, 0, len(logrus.AllLevels))
	for _, level := range logrus.AllLevels {
		levels = append(levels, level.String())
	}
	pFlags.StringP("verbosity", "v", logrus.ErrorLevel.String(), "Verbosity level: "+strings.Join(levels, ", "))

	// bench
	pFlags = benchCmd.PersistentFlags()
	pFlags.StringP("in", "i", utils.Stdio, "Instance file, - for stdin")
	pFlags.StringP("out", "o", utils.Stdio, "Report file, - for stdout")
	pFlags.StringP("algorithms", "a", "all", "Comma separated algorithm names, or all")
	pFlags.StringP("format", "f", string(report.Text), "Report format: text, yaml")
	pFlags.IntP("concurrency", "c", runtime.NumCPU(), "Number of algorithms run in parallel")
	pFlags.Bool("verify", false, "Check every placement for feasibility and completeness")

	// pack
	pFlags = packCmd.PersistentFlags()
	pFlags.StringP("in", "i", utils.Stdio, "Instance file, - for stdin")
	pFlags.StringP("out", "o", "plan.csv", "Plan file path, - for stdout")
	pFlags.StringP("algorithm", "a", "first-fit-decreasing/map", "Algorithm tracking item positions")
	pFlags.Bool("skip-oversize", false, "Put items heavier than the capacity into the plan remainder")

	// check
	pFlags = checkCmd.PersistentFlags()
	pFlags.StringP("plan", "p", "plan.csv", "Plan file path")
	pFlags.StringP("in", "i", utils.Stdio, "Instance file, - for stdin")

	// generate
	pFlags = generateCmd.PersistentFlags()
	pFlags.StringP("out", "o", "instances", "Output directory")
	pFlags.IntP("count", "n", 1, "Number of instances")
	pFlags.IntP("items", "m", 1000, "Items per instance")
	pFlags.Uint64P("capacity", "k", 1000, "Bin capacity")
	pFlags.StringP("distribution", "d", string(dataset.Uniform), "Weight distribution: uniform, exponential")
	pFlags.Uint64("min", 1, "Smallest weight")
	pFlags.Uint64("max", 0, "Largest weight, 0 for the capacity")
	pFlags.Float64("extreme", 0.05, "Share of extreme weights for the exponential distribution")
	pFlags.Int64P("seed", "s", 1, "Seed of the first instance, incremented per instance")
	pFlags.IntP("concurrency", "c", 10, "Generation concurrency")

	rootCmd.AddCommand(
		benchCmd,
		packCmd,
		generateCmd,
		checkCmd,
		listCmd,
	)
}
