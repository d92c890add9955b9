package render

import (
	"strings"

	"github.com/charmbracelet/glamour"

	"tableflip.dev/todo/pkg/item"
)

// Markdown renders the list as a task list.
func Markdown(l item.List) string {
	var b strings.Builder
	for _, it := range l {
		if it.Checked {
			b.WriteString("- [x] ")
		} else {
			b.WriteString("- [ ] ")
		}
		b.WriteString(Sanitize(it.Text))
		b.WriteString("\n")
	}
	return b.String()
}

// Glamour renders markdown for the terminal.
func Glamour(md string) (string, error) {
	return glamour.Render(md, "dark")
}
