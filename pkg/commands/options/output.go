package options

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

// OutputOptions selects machine readable output.
type OutputOptions struct {
	JSON bool
}

func AddOutputArg(cmd *cobra.Command, po *OutputOptions) {
	cmd.Flags().BoolVar(&po.JSON, "json", false,
		"Output as JSON.")
}

// HandleError prints err as {"error": ...} on w when JSON output was asked
// for, and swallows it so cobra does not print it again.
func (o *OutputOptions) HandleError(w io.Writer, err error) error {
	if !o.JSON || err == nil {
		return err
	}
	if w == nil {
		w = color.Output
	}
	b, merr := json.Marshal(map[string]string{"error": err.Error()})
	if merr != nil {
		return merr
	}
	_, _ = fmt.Fprintln(w, string(b))
	return nil
}
