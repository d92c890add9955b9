package options

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// IDOptions holds the item id a command targets.
type IDOptions struct {
	ID int
}

// ParseID reads the item id from the first positional argument.
func (o *IDOptions) ParseID(args []string) error {
	if len(args) < 1 {
		return errors.New("requires an item id")
	}
	if len(args) > 1 {
		return fmt.Errorf("expected one item id, got %d arguments", len(args))
	}
	id, err := strconv.Atoi(strings.TrimSpace(args[0]))
	if err != nil {
		return fmt.Errorf("item id must be a number, got %q", args[0])
	}
	o.ID = id
	return nil
}
