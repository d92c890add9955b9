package teaui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/v2/textinput"
	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/charmbracelet/lipgloss/v2"

	"tableflip.dev/todo/pkg/item"
	"tableflip.dev/todo/pkg/render"
	"tableflip.dev/todo/pkg/router"
	"tableflip.dev/todo/pkg/store"
)

type mode int

const (
	modeNormal mode = iota
	modeInsert
)

const help = "j/k move · x toggle · d delete · n new · q quit"

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Underline(true)
	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

// screen is what the router last pushed, plus the cursor the renderer reads.
// Model copies share it.
type screen struct {
	cursor int
	width  int
	size   int
	markup string
	counts item.Counts
}

type changedMsg struct{ store.Event }

// Model contains UI state.
type Model struct {
	store  *store.Store
	router *router.Router
	screen *screen
	events <-chan store.Event

	mode   mode
	input  textinput.Model
	status string
}

// New creates a model driving s. events may be nil.
func New(s *store.Store, events <-chan store.Event) Model {
	sc := &screen{}

	renderer := render.RendererFunc(func(l item.List) string {
		sc.size = len(l)
		if sc.cursor >= sc.size {
			sc.cursor = sc.size - 1
		}
		if sc.cursor < 0 {
			sc.cursor = 0
		}
		return render.Terminal{Width: sc.width, Cursor: sc.cursor}.Render(l)
	})
	view := router.ViewFunc(func(markup string, counts item.Counts) {
		sc.markup = markup
		sc.counts = counts
	})

	ti := textinput.New()
	ti.Placeholder = "What needs doing?"
	ti.CharLimit = 256
	ti.Prompt = ""

	m := Model{
		store:  s,
		router: router.New(s, renderer, view, nil),
		screen: sc,
		events: events,
		mode:   modeNormal,
		input:  ti,
		status: help,
	}
	m.router.Refresh()
	return m
}

// Init starts listening for storage changes.
func (m Model) Init() tea.Cmd {
	return waitForChange(m.events)
}

func waitForChange(ch <-chan store.Event) tea.Cmd {
	if ch == nil {
		return nil
	}
	return func() tea.Msg {
		ev, ok := <-ch
		if !ok {
			return nil
		}
		return changedMsg{ev}
	}
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.screen.width = msg.Width
		m.router.Refresh()
		return m, nil

	case changedMsg:
		if m.store.Reload() {
			m.router.Refresh()
		}
		return m, waitForChange(m.events)

	case tea.KeyPressMsg:
		if m.mode == modeInsert {
			return m.updateInsert(msg)
		}
		return m.updateNormal(msg)
	}

	if m.mode == modeInsert {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m Model) updateNormal(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c", "esc":
		return m, tea.Quit
	case "j", "down":
		m.move(1)
	case "k", "up":
		m.move(-1)
	case "g", "home":
		m.move(-m.screen.size)
	case "G", "end":
		m.move(m.screen.size)
	case "x", " ", "space", "enter":
		if it, ok := m.current(); ok {
			m.router.OnToggle(it.ID, !it.Checked)
			verb := "checked"
			if it.Checked {
				verb = "unchecked"
			}
			m.status = fmt.Sprintf("%s %q", verb, it.Text)
		}
	case "d", "delete", "backspace":
		if it, ok := m.current(); ok {
			m.router.OnDelete(it.ID)
			m.status = fmt.Sprintf("deleted %q", it.Text)
		}
	case "n", "a", "o":
		m.mode = modeInsert
		m.input.Reset()
		m.status = "enter to add · esc to cancel"
		return m, m.input.Focus()
	}
	return m, nil
}

func (m Model) updateInsert(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc", "ctrl+c":
		m.leaveInsert(help)
		return m, nil
	case "enter":
		text := m.input.Value()
		if m.router.OnCreate(text) {
			m.move(m.screen.size)
			m.leaveInsert(fmt.Sprintf("added %q", strings.TrimSpace(text)))
		} else {
			m.leaveInsert(help)
		}
		return m, nil
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *Model) leaveInsert(status string) {
	m.mode = modeNormal
	m.input.Blur()
	m.input.Reset()
	m.status = status
}

func (m *Model) move(delta int) {
	m.screen.cursor += delta
	m.router.Refresh()
}

func (m Model) current() (item.Item, bool) {
	l := m.store.Items()
	if m.screen.cursor < 0 || m.screen.cursor >= len(l) {
		return item.Item{}, false
	}
	return l[m.screen.cursor], true
}

// View renders the list, the create input when active, and the counters.
func (m Model) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("TODO"))
	b.WriteString("\n\n")
	b.WriteString(m.screen.markup)
	b.WriteString("\n\n")
	if m.mode == modeInsert {
		b.WriteString(router.CreateLabel + ": " + m.input.View())
		b.WriteString("\n\n")
	}
	b.WriteString(fmt.Sprintf("Item count: %d · Unchecked count: %d\n", m.screen.counts.Total, m.screen.counts.Unchecked))
	b.WriteString(statusStyle.Render(m.status))
	return b.String()
}
