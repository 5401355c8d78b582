package internal

import (
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const EnvPrefix = "BINPACK"

// BindEnv fills every flag of cmd that was not given on the command line from
// the environment, e.g. --skip-oversize from BINPACK_SKIP_OVERSIZE.
func BindEnv(cmd *cobra.Command) error {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	var err error

	cmd.Flags().VisitAll(func(f *pflag.Flag) {
		if err != nil || f.Changed || !v.IsSet(f.Name) {
			return
		}

		err = cmd.Flags().Set(f.Name, v.GetString(f.Name))
	})

	return err
}
