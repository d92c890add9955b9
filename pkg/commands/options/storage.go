// Package options defines shared flag helpers for CLI commands.
package options

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// AddStorageArgs registers the storage flags on cmd and binds them to the
// matching config keys so flags override file and environment values.
func AddStorageArgs(cmd *cobra.Command) {
	flags := cmd.PersistentFlags()
	flags.String("path", "", "Storage directory. Defaults to ~/.todo.db.")
	flags.String("driver", "", `Storage backend, "diskv" or "sqlite".`)
	flags.String("seed", "", "HTML file with the initial list markup, used when storage is empty.")

	for _, name := range []string{"path", "driver", "seed"} {
		_ = viper.BindPFlag(name, flags.Lookup(name))
	}
}
