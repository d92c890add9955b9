package render

import (
	"strings"

	"github.com/charmbracelet/lipgloss/v2"
	"github.com/muesli/reflow/wordwrap"

	"tableflip.dev/todo/pkg/item"
)

var (
	checkedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("2")).Strikethrough(true)
	cursorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("212")).Bold(true)
	emptyStyle   = lipgloss.NewStyle().Faint(true).Italic(true)
)

// Terminal renders one row per item: a cursor column, a [ ] or [x] toggle and
// the text, struck through in green when checked. Cursor < 0 hides the cursor.
type Terminal struct {
	Width  int
	Cursor int
}

func (t Terminal) Render(l item.List) string {
	if len(l) == 0 {
		return emptyStyle.Render("  nothing to do")
	}

	rows := make([]string, 0, len(l))
	for i, it := range l {
		pointer, box := "  ", "[ ]"
		if i == t.Cursor {
			pointer = cursorStyle.Render("→") + " "
		}
		if it.Checked {
			box = "[x]"
		}

		text := Sanitize(it.Text)
		if t.Width > 8 {
			text = wordwrap.String(text, t.Width-6)
		}
		lines := strings.Split(text, "\n")
		for j, line := range lines {
			if it.Checked {
				line = checkedStyle.Render(line)
			}
			if j == 0 {
				rows = append(rows, pointer+box+" "+line)
			} else {
				rows = append(rows, "      "+line)
			}
		}
	}
	return strings.Join(rows, "\n")
}
