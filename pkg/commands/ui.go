package commands

import (
	"github.com/spf13/cobra"

	teaui "tableflip.dev/todo/pkg/runner/tea"
)

func addUI(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "ui",
		Short: "open the interactive terminal view",
		Example: `
todo ui
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			s, cfg, err := openStore(cmd.Context())
			if err != nil {
				return err
			}
			defer s.Close()

			u := teaui.UI{BasePath: cfg.BasePath(), Store: s}
			return u.Do(cmd.Context())
		},
	}

	topLevel.AddCommand(cmd)
}
