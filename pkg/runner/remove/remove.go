// Package remove provides the runner logic for deleting todo items.
package remove

import (
	"context"
	"errors"
	"io"

	"tableflip.dev/todo/pkg/render"
	"tableflip.dev/todo/pkg/router"
	"tableflip.dev/todo/pkg/store"
)

// Remove deletes the item with ID. A missing ID is not an error.
type Remove struct {
	ID    int
	Store *store.Store
	Out   io.Writer
}

// Do executes the delete intent and prints the resulting list.
func (n *Remove) Do(_ context.Context) error {
	if n.Store == nil {
		return errors.New("can not remove, no store")
	}
	r := router.New(n.Store, render.Table{}, render.Console{Out: n.Out}, nil)
	r.OnDelete(n.ID)
	return nil
}
