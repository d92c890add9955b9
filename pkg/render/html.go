// Package render projects a todo list into views. Renderers own no state;
// every call rebuilds the whole view from the list it is given.
package render

import (
	"fmt"
	"io"
	"strings"

	"tableflip.dev/todo/pkg/item"
)

// Renderer turns the full list into a view representation.
type Renderer interface {
	Render(l item.List) string
}

// RendererFunc adapts a function to a Renderer.
type RendererFunc func(item.List) string

func (f RendererFunc) Render(l item.List) string { return f(l) }

// CheckedClass is applied to the label text of checked rows.
const CheckedClass = "text-success text-decoration-line-through"

var escaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"'", "&#39;",
)

// Escape replaces the characters that could be read as markup with their
// entities.
func Escape(s string) string {
	return escaper.Replace(s)
}

// HTML renders list rows for the #todo-list container. Each row carries its
// id in data-id and as the checkbox id.
type HTML struct{}

func (HTML) Render(l item.List) string {
	var b strings.Builder
	for _, it := range l {
		writeRow(&b, it)
	}
	return b.String()
}

func writeRow(w io.Writer, it item.Item) {
	checked, class := "", ""
	if it.Checked {
		checked, class = "checked", CheckedClass
	}
	fmt.Fprintf(w, `
<li class="list-group-item" data-id="%d">
  <input type="checkbox" class="form-check-input me-2" id="%d" %s />
  <label for="%d">
    <span class="%s">
      %s
    </span>
  </label>
  <button class="btn btn-danger btn-sm float-end">delete</button>
</li>`, it.ID, it.ID, checked, it.ID, class, Escape(it.Text))
}

// Page renders a standalone document: the counters, the list container with
// its rows and the create button. Page output is valid seed markup.
func Page(l item.List, title string) string {
	c := l.Counts()
	return fmt.Sprintf(pageTemplate,
		Escape(title), Escape(title), c.Total, c.Unchecked, HTML{}.Render(l))
}

const pageTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="utf-8">
  <title>%s</title>
  <link rel="stylesheet" href="https://cdn.jsdelivr.net/npm/bootstrap@5.3.3/dist/css/bootstrap.min.css">
</head>
<body>
<div class="container">
  <h1 class="text-center">%s</h1>
  <div class="mb-2">Item count: <span id="item-count">%d</span></div>
  <div class="mb-3">Unchecked count: <span id="unchecked-count">%d</span></div>
  <button class="btn btn-primary mb-3" onclick="newTodo()">New TODO</button>
  <ul id="todo-list" class="list-group">%s
  </ul>
</div>
</body>
</html>
`
