package commands

import (
	"io"
	"os"

	"github.com/spf13/cobra"

	"tableflip.dev/todo/pkg/commands/options"
	"tableflip.dev/todo/pkg/runner/export"
)

func addExport(topLevel *cobra.Command) {
	eo := &options.ExportOptions{}

	cmd := &cobra.Command{
		Use:     "export",
		Aliases: []string{"render"},
		Short:   "Render the list as HTML, a full page, markdown or JSON",
		Example: `
todo export
todo export --format page -o index.html
todo export --format markdown --pretty
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			s, _, err := openStore(cmd.Context())
			if err != nil {
				return err
			}
			defer s.Close()

			var out io.Writer = cmd.OutOrStdout()
			if eo.File != "" {
				f, err := os.Create(eo.File)
				if err != nil {
					return err
				}
				defer f.Close()
				out = f
			}

			e := export.Export{
				Format: eo.Format,
				Title:  eo.Title,
				Pretty: eo.Pretty,
				Store:  s,
				Out:    out,
			}
			return e.Do(cmd.Context())
		},
	}

	options.AddExportArgs(cmd, eo, export.Formats)
	_ = cmd.RegisterFlagCompletionFunc("format", func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
		return export.Formats, cobra.ShellCompDirectiveNoFileComp
	})
	topLevel.AddCommand(cmd)
}
