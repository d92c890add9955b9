// Package check provides the runner logic for checking and unchecking items.
package check

import (
	"context"
	"errors"
	"io"

	"tableflip.dev/todo/pkg/render"
	"tableflip.dev/todo/pkg/router"
	"tableflip.dev/todo/pkg/store"
)

// Check sets the checked flag of the item with ID.
type Check struct {
	ID      int
	Checked bool
	Store   *store.Store
	Out     io.Writer
}

// Do executes the toggle intent and prints the resulting list.
func (n *Check) Do(_ context.Context) error {
	if n.Store == nil {
		return errors.New("can not check, no store")
	}
	r := router.New(n.Store, render.Table{}, render.Console{Out: n.Out}, nil)
	r.OnToggle(n.ID, n.Checked)
	return nil
}
