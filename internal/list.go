package internal

import (
	"fmt"

	"github.com/gaarutyunov/binpacking/binpack"
	"github.com/spf13/cobra"
)

func List(cmd *cobra.Command, args []string) error {
	for _, algorithm := range binpack.Algorithms() {
		if _, err := fmt.Fprintln(cmd.OutOrStdout(), algorithm.Name()); err != nil {
			return err
		}
	}

	return nil
}
