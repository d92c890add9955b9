package commands

import (
	"github.com/spf13/cobra"

	"tableflip.dev/todo/pkg/commands/options"
	"tableflip.dev/todo/pkg/runner/list"
)

func addList(topLevel *cobra.Command) {
	oo := &options.OutputOptions{}

	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "Show the todo list",
		Example: `
todo list
todo list --json
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			s, _, err := openStore(cmd.Context())
			if err != nil {
				return oo.HandleError(cmd.OutOrStdout(), err)
			}
			defer s.Close()

			l := list.List{
				Title: "TODO",
				JSON:  oo.JSON,
				Store: s,
				Out:   cmd.OutOrStdout(),
			}
			return oo.HandleError(cmd.OutOrStdout(), l.Do(cmd.Context()))
		},
	}

	options.AddOutputArg(cmd, oo)
	topLevel.AddCommand(cmd)
}
