// Package list provides the runner logic for printing the todo list.
package list

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"tableflip.dev/todo/pkg/item"
	"tableflip.dev/todo/pkg/render"
	"tableflip.dev/todo/pkg/router"
	"tableflip.dev/todo/pkg/store"
)

// List prints the current list and its counters.
type List struct {
	Title string
	JSON  bool
	Store *store.Store
	Out   io.Writer
}

type listJSON struct {
	Items item.List `json:"items"`
	item.Counts
}

func (n *List) Do(_ context.Context) error {
	if n.Store == nil {
		return errors.New("can not list, no store")
	}
	if n.JSON {
		l := n.Store.Items()
		b, err := json.MarshalIndent(listJSON{Items: l, Counts: l.Counts()}, "", "  ")
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(n.Out, string(b))
		return err
	}
	r := router.New(n.Store, render.Table{}, render.Console{Out: n.Out, Title: n.Title}, nil)
	r.Refresh()
	return nil
}
