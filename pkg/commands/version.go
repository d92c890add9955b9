package commands

import (
	"fmt"
	"runtime/debug"

	"github.com/spf13/cobra"
	goversion "go.hein.dev/go-version"
)

// Set by -ldflags "-X tableflip.dev/todo/pkg/commands.version=..." on release
// builds. Anything left at its default is filled from the binary's build info.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// buildInfo reports version, commit and date, preferring linker-set values
// over what the go toolchain stamped into the binary.
func buildInfo() (string, string, string) {
	v, c, d := version, commit, date
	bi, ok := debug.ReadBuildInfo()
	if !ok {
		return v, c, d
	}
	if v == "dev" && bi.Main.Version != "" && bi.Main.Version != "(devel)" {
		v = bi.Main.Version
	}
	vcs := make(map[string]string, len(bi.Settings))
	for _, s := range bi.Settings {
		vcs[s.Key] = s.Value
	}
	if rev := vcs["vcs.revision"]; c == "none" && rev != "" {
		c = rev
		if vcs["vcs.modified"] == "true" {
			c += "-dirty"
		}
	}
	if t := vcs["vcs.time"]; d == "unknown" && t != "" {
		d = t
	}
	return v, c, d
}

func addVersion(topLevel *cobra.Command) {
	shortened := false
	output := goversion.JSON
	cmd := &cobra.Command{
		Use:   "version",
		Short: "print the todo build version",
		Example: `
todo version
todo version --short
todo version -o yaml
`,
		Args: cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			v, c, d := buildInfo()
			fmt.Fprint(cmd.OutOrStdout(), goversion.FuncWithOutput(shortened, v, c, d, output))
		},
	}

	cmd.Flags().BoolVarP(&shortened, "short", "s", false, "Print the version fields as plain lines.")
	cmd.Flags().StringVarP(&output, "output", "o", goversion.JSON, "Output format. One of 'yaml' or 'json'.")

	topLevel.AddCommand(cmd)
}
