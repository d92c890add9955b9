package commands

import (
	"github.com/spf13/cobra"

	"tableflip.dev/todo/pkg/commands/options"
	"tableflip.dev/todo/pkg/runner/remove"
)

func addRemove(topLevel *cobra.Command) {
	io := &options.IDOptions{}

	cmd := &cobra.Command{
		Use:     "rm <item id>",
		Aliases: []string{"remove", "delete"},
		Short:   "Delete an item",
		Example: `
todo rm 3
`,
		Args: func(_ *cobra.Command, args []string) error {
			return io.ParseID(args)
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			s, _, err := openStore(cmd.Context())
			if err != nil {
				return err
			}
			defer s.Close()

			r := remove.Remove{
				ID:    io.ID,
				Store: s,
				Out:   cmd.OutOrStdout(),
			}
			return r.Do(cmd.Context())
		},
	}

	topLevel.AddCommand(cmd)
}
