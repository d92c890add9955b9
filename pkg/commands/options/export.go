package options

import (
	"strings"

	"github.com/spf13/cobra"
)

// ExportOptions
type ExportOptions struct {
	Format string
	File   string
	Title  string
	Pretty bool
}

func AddExportArgs(cmd *cobra.Command, o *ExportOptions, formats []string) {
	cmd.Flags().StringVarP(&o.Format, "format", "f", formats[0],
		"Output format. One of "+strings.Join(formats, ", ")+".")
	cmd.Flags().StringVarP(&o.File, "output", "o", "",
		"Write to this file instead of stdout.")
	cmd.Flags().StringVar(&o.Title, "title", "TODO",
		"Page title for the page format.")
	cmd.Flags().BoolVar(&o.Pretty, "pretty", false,
		"Render markdown for the terminal.")
}
