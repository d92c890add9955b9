// Package item holds the todo Item and the ordered List the rest of the
// program projects into storage and views.
package item

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
)

// Item is a single todo entry.
type Item struct {
	ID      int    `json:"id"`
	Text    string `json:"text"`
	Checked bool   `json:"checked"`
}

// New returns an unchecked item with trimmed text.
func New(id int, text string) Item {
	return Item{ID: id, Text: strings.TrimSpace(text)}
}

func (i Item) String() string {
	mark := " "
	if i.Checked {
		mark = "x"
	}
	return fmt.Sprintf("%d [%s] %s", i.ID, mark, i.Text)
}

// List is the ordered collection. Insertion order is display order and no two
// items share an id.
type List []Item

// Counts are the two readouts derived from a List.
type Counts struct {
	Total     int `json:"total"`
	Unchecked int `json:"unchecked"`
}

// NextID is the largest id in the list plus one, or 1 for an empty list.
func (l List) NextID() int {
	max := 0
	for _, it := range l {
		if it.ID > max {
			max = it.ID
		}
	}
	return max + 1
}

// Index returns the position of id in the list, or -1.
func (l List) Index(id int) int {
	for i, it := range l {
		if it.ID == id {
			return i
		}
	}
	return -1
}

// Clone returns a copy that shares nothing with l.
func (l List) Clone() List {
	if l == nil {
		return List{}
	}
	out := make(List, len(l))
	copy(out, l)
	return out
}

// Counts recomputes the total and unchecked readouts.
func (l List) Counts() Counts {
	c := Counts{Total: len(l)}
	for _, it := range l {
		if !it.Checked {
			c.Unchecked++
		}
	}
	return c
}

// Marshal serializes the list as a JSON array of {id, text, checked} records.
func Marshal(l List) ([]byte, error) {
	if l == nil {
		l = List{}
	}
	var b bytes.Buffer
	enc := json.NewEncoder(&b)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(l); err != nil {
		return nil, err
	}
	return bytes.TrimRight(b.Bytes(), "\n"), nil
}

// Unmarshal decodes a JSON array written by Marshal. Duplicate ids are
// reported as an error since such a value cannot be a valid List.
func Unmarshal(data []byte) (List, error) {
	var l List
	if err := json.Unmarshal(data, &l); err != nil {
		return nil, err
	}
	if l == nil {
		return List{}, nil
	}
	seen := make(map[int]struct{}, len(l))
	for _, it := range l {
		if _, dup := seen[it.ID]; dup {
			return nil, fmt.Errorf("item: duplicate id %d", it.ID)
		}
		seen[it.ID] = struct{}{}
	}
	return l, nil
}
