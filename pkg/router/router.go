// Package router turns user interactions into Store operations and pushes
// the re-rendered list into a View.
package router

import (
	"context"
	"strconv"
	"strings"

	"tableflip.dev/todo/pkg/item"
	"tableflip.dev/todo/pkg/render"
)

// CreateLabel is shown when asking for the text of a new item.
const CreateLabel = "New TODO"

// Store is the part of store.Store the router drives.
type Store interface {
	Items() item.List
	Add(text string) (item.Item, bool)
	Remove(id int)
	SetChecked(id int, checked bool)
	SetListener(fn func(item.List))
}

// View receives every re-render. The markup replaces the previous list view
// wholesale and counts replace both readouts.
type View interface {
	Replace(markup string, counts item.Counts)
}

// ViewFunc adapts a function to a View.
type ViewFunc func(markup string, counts item.Counts)

func (f ViewFunc) Replace(markup string, counts item.Counts) { f(markup, counts) }

// Prompter asks the user for one line of text.
type Prompter interface {
	Prompt(ctx context.Context, label string) (string, error)
}

// PromptFunc adapts a function to a Prompter.
type PromptFunc func(ctx context.Context, label string) (string, error)

func (f PromptFunc) Prompt(ctx context.Context, label string) (string, error) {
	return f(ctx, label)
}

// Router binds the named intents to a Store and re-renders after each one.
type Router struct {
	store    Store
	renderer render.Renderer
	view     View
	prompter Prompter
}

// New wires a Router and registers it as the store's change listener.
func New(s Store, r render.Renderer, v View, p Prompter) *Router {
	rt := &Router{store: s, renderer: r, view: v, prompter: p}
	s.SetListener(rt.show)
	return rt
}

// Refresh renders the current list, e.g. for the initial paint.
func (r *Router) Refresh() {
	r.show(r.store.Items())
}

func (r *Router) show(l item.List) {
	if r.view == nil {
		return
	}
	markup := ""
	if r.renderer != nil {
		markup = r.renderer.Render(l)
	}
	r.view.Replace(markup, l.Counts())
}

// OnDelete removes the item with id.
func (r *Router) OnDelete(id int) {
	r.store.Remove(id)
}

// OnToggle sets the checked state of the item with id.
func (r *Router) OnToggle(id int, checked bool) {
	r.store.SetChecked(id, checked)
}

// OnCreate adds an item; blank text is discarded.
func (r *Router) OnCreate(text string) bool {
	_, ok := r.store.Add(text)
	return ok
}

// Create asks the prompter for text and adds it. A failed or cancelled
// prompt and blank input are discarded without error.
func (r *Router) Create(ctx context.Context) bool {
	if r.prompter == nil {
		return false
	}
	text, err := r.prompter.Prompt(ctx, CreateLabel)
	if err != nil || strings.TrimSpace(text) == "" {
		return false
	}
	return r.OnCreate(text)
}

// EventType is the kind of interaction observed on the view.
type EventType int

const (
	Click EventType = iota
	Change
)

// Target describes the element an event fired on.
type Target struct {
	// Tag is the lower case element name, e.g. "button" or "input".
	Tag string
	// Type is the input type, e.g. "checkbox".
	Type string
	// InList reports whether the element sits inside the list container.
	InList bool
	// RowID is the data-id of the enclosing row.
	RowID string
	// ID is the element's own id attribute.
	ID string
	// Checked is the checkbox state after the change.
	Checked bool
}

// Event is one observed interaction.
type Event struct {
	Type   EventType
	Target Target
}

// Dispatch routes a view-level event. Only a click on a button inside the
// list and a change of a checkbox inside the list do anything; it reports
// whether the event was handled.
func (r *Router) Dispatch(e Event) bool {
	t := e.Target
	if !t.InList {
		return false
	}
	switch {
	case e.Type == Click && strings.EqualFold(t.Tag, "button"):
		id, ok := parseID(t.RowID)
		if !ok {
			return false
		}
		r.OnDelete(id)
		return true
	case e.Type == Change && strings.EqualFold(t.Tag, "input") && strings.EqualFold(t.Type, "checkbox"):
		id, ok := parseID(t.ID)
		if !ok {
			return false
		}
		r.OnToggle(id, t.Checked)
		return true
	}
	return false
}

func parseID(s string) (int, bool) {
	id, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, false
	}
	return id, true
}
