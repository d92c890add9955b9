// Package export renders the todo list to a file or stream.
package export

import (
	"context"
	"errors"
	"fmt"
	"io"

	"tableflip.dev/todo/pkg/item"
	"tableflip.dev/todo/pkg/render"
	"tableflip.dev/todo/pkg/store"
)

const (
	FormatHTML     = "html"
	FormatPage     = "page"
	FormatMarkdown = "markdown"
	FormatJSON     = "json"
)

// Formats lists the accepted values of Export.Format.
var Formats = []string{FormatHTML, FormatPage, FormatMarkdown, FormatJSON}

// Export writes the list in Format. Pretty renders markdown for the terminal.
type Export struct {
	Format string
	Title  string
	Pretty bool
	Store  *store.Store
	Out    io.Writer
}

func (n *Export) Do(_ context.Context) error {
	if n.Store == nil {
		return errors.New("can not export, no store")
	}
	out, err := n.render(n.Store.Items())
	if err != nil {
		return err
	}
	_, err = io.WriteString(n.Out, out)
	return err
}

func (n *Export) render(l item.List) (string, error) {
	switch n.Format {
	case FormatHTML, "":
		return render.HTML{}.Render(l) + "\n", nil
	case FormatPage:
		return render.Page(l, n.Title), nil
	case FormatMarkdown:
		md := render.Markdown(l)
		if n.Pretty {
			return render.Glamour(md)
		}
		return md, nil
	case FormatJSON:
		b, err := item.Marshal(l)
		if err != nil {
			return "", err
		}
		return string(b) + "\n", nil
	default:
		return "", fmt.Errorf("export: unknown format %q, expected one of %v", n.Format, Formats)
	}
}
