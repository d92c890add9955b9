// Package teaui is the interactive terminal view. Key presses are routed
// through router.Router the same way the HTML view's clicks and changes are.
package teaui

import (
	"context"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea/v2"

	"tableflip.dev/todo/pkg/store"
)

// UI runs the interactive view against Store, reloading when files under
// BasePath change.
type UI struct {
	BasePath string
	Store    *store.Store
}

func (u *UI) Do(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	var events <-chan store.Event
	if u.BasePath != "" {
		ch, err := store.Watch(ctx, u.BasePath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "ui: watch disabled: %v\n", err)
		} else {
			events = ch
		}
	}

	p := tea.NewProgram(New(u.Store, events), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
