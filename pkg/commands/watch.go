package commands

import (
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"tableflip.dev/todo/pkg/runner/watch"
)

func addWatch(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Print the counters whenever the stored list changes",
		Example: `
todo watch
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
			defer stop()

			s, cfg, err := openStore(ctx)
			if err != nil {
				return err
			}
			defer s.Close()

			w := watch.Watch{
				BasePath: cfg.BasePath(),
				Store:    s,
				Out:      cmd.OutOrStdout(),
			}
			return w.Do(ctx)
		},
	}

	topLevel.AddCommand(cmd)
}
