package commands

import (
	"github.com/spf13/cobra"

	"tableflip.dev/todo/pkg/commands/options"
	"tableflip.dev/todo/pkg/runner/check"
)

func addCheck(topLevel *cobra.Command) {
	topLevel.AddCommand(
		checkCommand("check", []string{"done", "complete"}, "Mark an item done", true),
		checkCommand("uncheck", []string{"undo", "reopen"}, "Mark an item not done", false),
	)
}

func checkCommand(use string, aliases []string, short string, checked bool) *cobra.Command {
	io := &options.IDOptions{}

	return &cobra.Command{
		Use:     use + " <item id>",
		Aliases: aliases,
		Short:   short,
		Example: `
todo ` + use + ` 2
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

			c := check.Check{
				ID:      io.ID,
				Checked: checked,
				Store:   s,
				Out:     cmd.OutOrStdout(),
			}
			return c.Do(cmd.Context())
		},
	}
}
