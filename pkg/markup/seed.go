// Package markup recovers a todo list from existing list markup. It is used
// once, at bootstrap, when nothing usable is in storage.
package markup

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"tableflip.dev/todo/pkg/item"
)

// ContainerID is the id of the element that holds the list rows.
const ContainerID = "todo-list"

// Seed parses r and returns one item per list row, in document order.
//
// Rows are the li elements under the #todo-list container, or every li in the
// document when there is no container. Nested li elements are rows too. A
// row's id comes from its first checkbox's id attribute and falls back to its
// 1-based position. Its text is the first span inside a label.
func Seed(r io.Reader) (item.List, error) {
	doc, err := html.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("markup: parse: %w", err)
	}

	root := findByID(doc, ContainerID)
	if root == nil {
		root = doc
	}

	var rows []*html.Node
	walk(root, func(n *html.Node) bool {
		if n != root && n.Type == html.ElementNode && n.DataAtom == atom.Li {
			rows = append(rows, n)
		}
		return true
	})

	list := make(item.List, 0, len(rows))
	seen := make(map[int]struct{}, len(rows))
	for i, li := range rows {
		it := rowItem(li, i)
		if _, dup := seen[it.ID]; dup {
			it.ID = list.NextID()
		}
		seen[it.ID] = struct{}{}
		list = append(list, it)
	}
	return list, nil
}

func rowItem(li *html.Node, i int) item.Item {
	it := item.Item{ID: i + 1}

	if input := find(li, isCheckbox); input != nil {
		if id, ok := numericAttr(input, "id"); ok {
			it.ID = id
		}
		_, it.Checked = attr(input, "checked")
	}

	if span := find(li, isLabelSpan); span != nil {
		it.Text = strings.TrimSpace(textContent(span))
	}
	if it.Text == "" {
		it.Text = fmt.Sprintf("Todo %d", i+1)
	}
	return it
}

// isLabelSpan matches a span with a label somewhere above it.
func isLabelSpan(n *html.Node) bool {
	if n.DataAtom != atom.Span {
		return false
	}
	for p := n.Parent; p != nil; p = p.Parent {
		if p.Type == html.ElementNode && p.DataAtom == atom.Label {
			return true
		}
	}
	return false
}

func isCheckbox(n *html.Node) bool {
	if n.DataAtom != atom.Input {
		return false
	}
	typ, _ := attr(n, "type")
	return strings.EqualFold(typ, "checkbox")
}

// numericAttr mirrors Number(x) || fallback: only non-zero finite numbers count.
func numericAttr(n *html.Node, key string) (int, bool) {
	v, ok := attr(n, key)
	if !ok {
		return 0, false
	}
	f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
	if err != nil || f == 0 || f != float64(int(f)) {
		return 0, false
	}
	return int(f), true
}

func attr(n *html.Node, key string) (string, bool) {
	for _, a := range n.Attr {
		if a.Namespace == "" && a.Key == key {
			return a.Val, true
		}
	}
	return "", false
}

func findByID(n *html.Node, id string) *html.Node {
	return find(n, func(c *html.Node) bool {
		if c.Type != html.ElementNode {
			return false
		}
		v, ok := attr(c, "id")
		return ok && v == id
	})
}

// find returns the first element below n (depth first) matching match.
func find(n *html.Node, match func(*html.Node) bool) *html.Node {
	var found *html.Node
	walk(n, func(c *html.Node) bool {
		if found != nil {
			return false
		}
		if c != n && c.Type == html.ElementNode && match(c) {
			found = c
			return false
		}
		return true
	})
	return found
}

// walk visits n and its descendants; returning false skips the children.
func walk(n *html.Node, visit func(*html.Node) bool) {
	if !visit(n) {
		return
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		walk(c, visit)
	}
}

func textContent(n *html.Node) string {
	var b strings.Builder
	walk(n, func(c *html.Node) bool {
		if c.Type == html.TextNode {
			b.WriteString(c.Data)
		}
		return true
	})
	return b.String()
}
