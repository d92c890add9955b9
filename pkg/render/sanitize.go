package render

import (
	"strings"
	"unicode"

	xansi "github.com/charmbracelet/x/ansi"
)

// Sanitize makes item text safe to print on a terminal: escape sequences are
// removed, tabs and line breaks become spaces and any other C0/C1 control
// rune is dropped.
func Sanitize(s string) string {
	return strings.Map(func(r rune) rune {
		switch {
		case r == '\t' || r == '\n' || r == '\r':
			return ' '
		case unicode.IsControl(r):
			return -1
		}
		return r
	}, xansi.Strip(s))
}
