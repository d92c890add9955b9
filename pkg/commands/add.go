package commands

import (
	"strings"

	"github.com/spf13/cobra"

	"tableflip.dev/todo/pkg/prompt"
	"tableflip.dev/todo/pkg/runner/add"
)

func addAdd(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:     "add [text]",
		Aliases: []string{"new"},
		Short:   "Add an item, asking for its text when none is given",
		Example: `
todo add buy milk
todo add
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			s, _, err := openStore(cmd.Context())
			if err != nil {
				return err
			}
			defer s.Close()

			a := add.Add{
				Text:     strings.Join(args, " "),
				Prompter: prompt.Line{},
				Store:    s,
				Out:      cmd.OutOrStdout(),
			}
			return a.Do(cmd.Context())
		},
	}

	topLevel.AddCommand(cmd)
}
