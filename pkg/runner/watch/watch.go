// Package watch follows the stored list and reports its counters as it
// changes.
package watch

import (
	"context"
	"errors"
	"fmt"
	"io"

	"tableflip.dev/todo/pkg/item"
	"tableflip.dev/todo/pkg/router"
	"tableflip.dev/todo/pkg/store"
)

// Watch prints the counters once, then again after every storage change,
// until ctx is done.
type Watch struct {
	BasePath string
	Store    *store.Store
	Out      io.Writer
}

func (n *Watch) Do(ctx context.Context) error {
	if n.Store == nil {
		return errors.New("can not watch, no store")
	}
	events, err := store.Watch(ctx, n.BasePath)
	if err != nil {
		return err
	}

	last := item.Counts{Total: -1}
	view := router.ViewFunc(func(_ string, c item.Counts) {
		if c == last {
			return
		}
		last = c
		_, _ = fmt.Fprintf(n.Out, "%d items, %d unchecked\n", c.Total, c.Unchecked)
	})
	r := router.New(n.Store, nil, view, nil)
	r.Refresh()

	for {
		select {
		case <-ctx.Done():
			return nil
		case _, ok := <-events:
			if !ok {
				return nil
			}
			if n.Store.Reload() {
				r.Refresh()
			}
		}
	}
}
