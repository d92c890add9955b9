package render

import (
	"bytes"
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"

	"tableflip.dev/todo/pkg/item"
)

// PrettyPrint writes the list as a colored table.
type PrettyPrint struct {
	Out io.Writer
}

func (pp *PrettyPrint) out() io.Writer {
	if pp.Out == nil {
		return color.Output
	}
	return pp.Out
}

func (pp *PrettyPrint) Title(title string) {
	t := color.New(color.Bold, color.Underline)
	_, _ = t.Fprintln(pp.out(), title)
}

func (pp *PrettyPrint) List(l item.List) {
	if len(l) == 0 {
		f := color.New(color.Faint, color.Italic)
		_, _ = f.Fprint(pp.out(), " none\n\n")
		return
	}

	done := color.New(color.FgGreen, color.CrossedOut)
	id := color.New(color.FgHiYellow, color.Faint)

	table := uitable.New()
	table.MaxColWidth = 72
	table.Wrap = true
	for _, it := range l {
		box, text := "[ ]", Sanitize(it.Text)
		if it.Checked {
			box, text = "[x]", done.Sprint(text)
		}
		table.AddRow(id.Sprint(it.ID), box, text)
	}
	_, _ = fmt.Fprintln(pp.out(), table)
	_, _ = fmt.Fprintln(pp.out())
}

func (pp *PrettyPrint) Counts(c item.Counts) {
	f := color.New(color.Faint)
	noun := "items"
	if c.Total == 1 {
		noun = "item"
	}
	_, _ = f.Fprintf(pp.out(), "%d %s, %d unchecked\n", c.Total, noun, c.Unchecked)
}

// Table renders the list with PrettyPrint into a string.
type Table struct{}

func (Table) Render(l item.List) string {
	var b bytes.Buffer
	pp := PrettyPrint{Out: &b}
	pp.List(l)
	return b.String()
}

// Console is a view that prints each re-render followed by the counters.
type Console struct {
	Out   io.Writer
	Title string
}

func (c Console) Replace(markup string, counts item.Counts) {
	pp := PrettyPrint{Out: c.Out}
	if c.Title != "" {
		pp.Title(c.Title)
	}
	_, _ = io.WriteString(pp.out(), markup)
	pp.Counts(counts)
}
