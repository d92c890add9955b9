// Package add provides the runner logic for creating todo items.
package add

import (
	"context"
	"errors"
	"io"

	"tableflip.dev/todo/pkg/render"
	"tableflip.dev/todo/pkg/router"
	"tableflip.dev/todo/pkg/store"
)

// Add creates an item from Text, or asks the Prompter when Text is empty.
type Add struct {
	Text     string
	Prompter router.Prompter

	Store *store.Store
	Out   io.Writer
}

// Do runs the create intent and prints the resulting list.
func (n *Add) Do(ctx context.Context) error {
	if n.Store == nil {
		return errors.New("can not add, no store")
	}

	r := router.New(n.Store, render.Table{}, render.Console{Out: n.Out}, n.Prompter)

	var added bool
	if n.Text != "" {
		added = r.OnCreate(n.Text)
	} else {
		added = r.Create(ctx)
	}
	if !added {
		r.Refresh()
	}
	return nil
}
